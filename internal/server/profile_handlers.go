package server

import (
	"devconnector/internal/models"
	"devconnector/internal/service"
	"devconnector/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type profileRequest struct {
	Handle         string  `json:"handle"`
	Status         string  `json:"status"`
	Skills         string  `json:"skills"`
	Company        *string `json:"company"`
	Website        *string `json:"website"`
	Location       *string `json:"location"`
	Bio            *string `json:"bio"`
	GithubUsername *string `json:"githubusername"`
	Youtube        *string `json:"youtube"`
	Twitter        *string `json:"twitter"`
	Facebook       *string `json:"facebook"`
	Linkedin       *string `json:"linkedin"`
	Instagram      *string `json:"instagram"`
}

type experienceRequest struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	From        string `json:"from"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

type educationRequest struct {
	School       string `json:"school"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldofstudy"`
	From         string `json:"from"`
	To           string `json:"to"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// GetCurrentProfile returns the authenticated user's profile
func (s *Server) GetCurrentProfile(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}

	profile, err := s.profileService.GetByUserID(c.UserContext(), userID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(profile)
}

// GetAllProfiles returns every profile with user details
func (s *Server) GetAllProfiles(c *fiber.Ctx) error {
	profiles, err := s.profileService.List(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewFieldNotFoundError("profile", "There are no profiles"))
	}
	if profiles == nil {
		// An empty feed is not an error. Keep the array shape stable.
		profiles = []models.Profile{}
	}
	return c.JSON(profiles)
}

// GetProfileByHandle returns a profile looked up by its handle
func (s *Server) GetProfileByHandle(c *fiber.Ctx) error {
	handle := c.Params("handle")
	if handle == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Handle is required"))
	}

	profile, err := s.profileService.GetByHandle(c.UserContext(), handle)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(profile)
}

// GetProfileByUserID returns a profile looked up by its owner's user ID
func (s *Server) GetProfileByUserID(c *fiber.Ctx) error {
	userID, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	profile, err := s.profileService.GetByUserID(c.UserContext(), userID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(profile)
}

// UpsertProfile creates the authenticated user's profile or updates the
// fields present in the request.
func (s *Server) UpsertProfile(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}

	var req profileRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	errs := validation.ValidateProfile(validation.ProfileFields{
		Handle:    req.Handle,
		Status:    req.Status,
		Skills:    req.Skills,
		Website:   deref(req.Website),
		Youtube:   deref(req.Youtube),
		Twitter:   deref(req.Twitter),
		Facebook:  deref(req.Facebook),
		Linkedin:  deref(req.Linkedin),
		Instagram: deref(req.Instagram),
	})
	if !errs.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(errs)
	}

	profile, err := s.profileService.Upsert(c.UserContext(), service.UpsertProfileInput{
		UserID:         userID,
		Handle:         req.Handle,
		Status:         req.Status,
		Skills:         req.Skills,
		Company:        req.Company,
		Website:        req.Website,
		Location:       req.Location,
		Bio:            req.Bio,
		GithubUsername: req.GithubUsername,
		Youtube:        req.Youtube,
		Twitter:        req.Twitter,
		Facebook:       req.Facebook,
		Linkedin:       req.Linkedin,
		Instagram:      req.Instagram,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(profile)
}

// AddExperience appends an experience entry to the user's profile
func (s *Server) AddExperience(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}

	var req experienceRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if errs := validation.ValidateExperience(req.Title, req.Company, req.From); !errs.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(errs)
	}

	profile, err := s.profileService.AddExperience(c.UserContext(), service.ExperienceInput{
		UserID:      userID,
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        req.From,
		To:          req.To,
		Current:     req.Current,
		Description: req.Description,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(profile)
}

// DeleteExperience removes an experience entry from the user's profile
func (s *Server) DeleteExperience(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}
	expID, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	profile, err := s.profileService.DeleteExperience(c.UserContext(), userID, expID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(profile)
}

// AddEducation appends an education entry to the user's profile
func (s *Server) AddEducation(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}

	var req educationRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if errs := validation.ValidateEducation(req.School, req.Degree, req.FieldOfStudy, req.From); !errs.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(errs)
	}

	profile, err := s.profileService.AddEducation(c.UserContext(), service.EducationInput{
		UserID:       userID,
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         req.From,
		To:           req.To,
		Current:      req.Current,
		Description:  req.Description,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(profile)
}

// DeleteEducation removes an education entry from the user's profile
func (s *Server) DeleteEducation(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}
	eduID, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	profile, err := s.profileService.DeleteEducation(c.UserContext(), userID, eduID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(profile)
}

// DeleteAccount removes the user's profile and account
func (s *Server) DeleteAccount(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}

	if err := s.profileService.DeleteAccount(c.UserContext(), userID); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
