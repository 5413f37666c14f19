package service

import (
	"context"
	"strings"

	"devconnector/internal/models"
	"devconnector/internal/repository"
)

// ProfileService handles profile upserts, entry management and account
// deletion.
type ProfileService struct {
	profileRepo repository.ProfileRepository
}

// UpsertProfileInput is a partial patch: nil pointers mean "leave unchanged"
// on update and "zero value" on create. Skills is the raw comma-separated
// string from the request.
type UpsertProfileInput struct {
	UserID         uint
	Handle         string
	Status         string
	Skills         string
	Company        *string
	Website        *string
	Location       *string
	Bio            *string
	GithubUsername *string
	Youtube        *string
	Twitter        *string
	Facebook       *string
	Linkedin       *string
	Instagram      *string
}

// ExperienceInput carries an already-validated experience payload.
type ExperienceInput struct {
	UserID      uint
	Title       string
	Company     string
	Location    string
	From        string
	To          string
	Current     bool
	Description string
}

// EducationInput carries an already-validated education payload.
type EducationInput struct {
	UserID       uint
	School       string
	Degree       string
	FieldOfStudy string
	From         string
	To           string
	Current      bool
	Description  string
}

// NewProfileService returns a new ProfileService.
func NewProfileService(profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

func (s *ProfileService) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	return s.profileRepo.GetByUserID(ctx, userID)
}

func (s *ProfileService) GetByHandle(ctx context.Context, handle string) (*models.Profile, error) {
	return s.profileRepo.GetByHandle(ctx, handle)
}

func (s *ProfileService) List(ctx context.Context) ([]models.Profile, error) {
	return s.profileRepo.List(ctx)
}

// splitSkills turns the comma-separated skills string into a trimmed slice,
// dropping empty entries.
func splitSkills(csv string) []string {
	parts := strings.Split(csv, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

func applyIfSet(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// Upsert creates the caller's profile or patches the existing one. Handle and
// status always come from the request; optional fields only overwrite when
// present. Skills is replaced wholesale.
func (s *ProfileService) Upsert(ctx context.Context, in UpsertProfileInput) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, in.UserID)
	if err != nil {
		var appErr *models.AppError
		if !asAppError(err, &appErr) || appErr.Code != models.CodeNotFound {
			return nil, err
		}
		profile = nil
	}

	creating := profile == nil
	if creating {
		// Reject early when another user owns the handle. The unique index
		// still backstops races.
		if existing, herr := s.profileRepo.GetByHandle(ctx, in.Handle); herr == nil && existing != nil {
			return nil, models.NewConflictError("handle", "That handle already exists")
		}
		profile = &models.Profile{UserID: in.UserID}
	}

	profile.Handle = in.Handle
	profile.Status = in.Status
	profile.Skills = splitSkills(in.Skills)
	applyIfSet(&profile.Company, in.Company)
	applyIfSet(&profile.Website, in.Website)
	applyIfSet(&profile.Location, in.Location)
	applyIfSet(&profile.Bio, in.Bio)
	applyIfSet(&profile.GithubUsername, in.GithubUsername)
	applyIfSet(&profile.Social.Youtube, in.Youtube)
	applyIfSet(&profile.Social.Twitter, in.Twitter)
	applyIfSet(&profile.Social.Facebook, in.Facebook)
	applyIfSet(&profile.Social.Linkedin, in.Linkedin)
	applyIfSet(&profile.Social.Instagram, in.Instagram)

	if creating {
		if err := s.profileRepo.Create(ctx, profile); err != nil {
			return nil, err
		}
	} else {
		if err := s.profileRepo.Update(ctx, profile); err != nil {
			return nil, err
		}
	}
	return s.profileRepo.GetByUserID(ctx, in.UserID)
}

// AddExperience inserts a work history entry and returns the updated profile.
func (s *ProfileService) AddExperience(ctx context.Context, in ExperienceInput) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	exp := &models.Experience{
		ProfileID:   profile.ID,
		Title:       in.Title,
		Company:     in.Company,
		Location:    in.Location,
		From:        in.From,
		To:          in.To,
		Current:     in.Current,
		Description: in.Description,
	}
	if err := s.profileRepo.AddExperience(ctx, exp); err != nil {
		return nil, err
	}
	return s.profileRepo.GetByUserID(ctx, in.UserID)
}

// DeleteExperience removes an entry that belongs to the caller's profile.
func (s *ProfileService) DeleteExperience(ctx context.Context, userID, expID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.profileRepo.DeleteExperience(ctx, profile.ID, expID); err != nil {
		return nil, err
	}
	return s.profileRepo.GetByUserID(ctx, userID)
}

// AddEducation inserts a schooling entry and returns the updated profile.
func (s *ProfileService) AddEducation(ctx context.Context, in EducationInput) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	edu := &models.Education{
		ProfileID:    profile.ID,
		School:       in.School,
		Degree:       in.Degree,
		FieldOfStudy: in.FieldOfStudy,
		From:         in.From,
		To:           in.To,
		Current:      in.Current,
		Description:  in.Description,
	}
	if err := s.profileRepo.AddEducation(ctx, edu); err != nil {
		return nil, err
	}
	return s.profileRepo.GetByUserID(ctx, in.UserID)
}

// DeleteEducation removes an entry that belongs to the caller's profile.
func (s *ProfileService) DeleteEducation(ctx context.Context, userID, eduID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.profileRepo.DeleteEducation(ctx, profile.ID, eduID); err != nil {
		return nil, err
	}
	return s.profileRepo.GetByUserID(ctx, userID)
}

// DeleteAccount removes the caller's profile and account together.
func (s *ProfileService) DeleteAccount(ctx context.Context, userID uint) error {
	return s.profileRepo.DeleteWithUser(ctx, userID)
}
