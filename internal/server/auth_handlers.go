package server

import (
	"fmt"
	"time"

	"devconnector/internal/models"
	"devconnector/internal/service"
	"devconnector/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type registerRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles user registration
func (s *Server) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if errs := validation.ValidateRegister(req.Name, req.Email, req.Password, req.Password2); !errs.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(errs)
	}

	user, err := s.userService.Register(c.UserContext(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return writeServiceError(c, err)
	}

	// Password never serializes; the created account is safe to echo back.
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login verifies credentials and issues a signed JWT
func (s *Server) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if errs := validation.ValidateLogin(req.Email, req.Password); !errs.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(errs)
	}

	user, err := s.userService.Authenticate(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return writeServiceError(c, err)
	}

	token, err := s.generateToken(user)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.JSON(fiber.Map{
		"success": true,
		"token":   "Bearer " + token,
	})
}

// CurrentUser returns the authenticated user's identity
func (s *Server) CurrentUser(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}

	user, err := s.userService.GetByID(c.UserContext(), userID)
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"id":     user.ID,
		"name":   user.Name,
		"email":  user.Email,
		"avatar": user.Avatar,
	})
}

func (s *Server) generateToken(user *models.User) (string, error) {
	ttl := time.Duration(s.config.TokenTTLHours) * time.Hour
	if ttl <= 0 {
		ttl = time.Hour
	}
	now := time.Now()

	claims := jwt.MapClaims{
		"sub":    fmt.Sprintf("%d", user.ID),
		"name":   user.Name,
		"avatar": user.Avatar,
		"iss":    tokenIssuer,
		"aud":    tokenAudience,
		"exp":    now.Add(ttl).Unix(),
		"iat":    now.Unix(),
		"nbf":    now.Unix(),
		"jti":    generateJTI(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// generateJTI creates a unique token identifier
func generateJTI() string {
	return fmt.Sprintf("%d-%s", time.Now().Unix(), uuid.New().String()[:8])
}
