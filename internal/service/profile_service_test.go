package service

import (
	"context"
	"testing"

	"devconnector/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// profileRepoStub is a stub for repository.ProfileRepository.
type profileRepoStub struct {
	getByUserIDFn      func(context.Context, uint) (*models.Profile, error)
	getByHandleFn      func(context.Context, string) (*models.Profile, error)
	listFn             func(context.Context) ([]models.Profile, error)
	createFn           func(context.Context, *models.Profile) error
	updateFn           func(context.Context, *models.Profile) error
	deleteWithUserFn   func(context.Context, uint) error
	addExperienceFn    func(context.Context, *models.Experience) error
	deleteExperienceFn func(context.Context, uint, uint) error
	addEducationFn     func(context.Context, *models.Education) error
	deleteEducationFn  func(context.Context, uint, uint) error
}

func (s *profileRepoStub) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	return s.getByUserIDFn(ctx, userID)
}
func (s *profileRepoStub) GetByHandle(ctx context.Context, handle string) (*models.Profile, error) {
	return s.getByHandleFn(ctx, handle)
}
func (s *profileRepoStub) List(ctx context.Context) ([]models.Profile, error) {
	return s.listFn(ctx)
}
func (s *profileRepoStub) Create(ctx context.Context, profile *models.Profile) error {
	return s.createFn(ctx, profile)
}
func (s *profileRepoStub) Update(ctx context.Context, profile *models.Profile) error {
	return s.updateFn(ctx, profile)
}
func (s *profileRepoStub) DeleteWithUser(ctx context.Context, userID uint) error {
	return s.deleteWithUserFn(ctx, userID)
}
func (s *profileRepoStub) AddExperience(ctx context.Context, exp *models.Experience) error {
	return s.addExperienceFn(ctx, exp)
}
func (s *profileRepoStub) DeleteExperience(ctx context.Context, profileID, expID uint) error {
	return s.deleteExperienceFn(ctx, profileID, expID)
}
func (s *profileRepoStub) AddEducation(ctx context.Context, edu *models.Education) error {
	return s.addEducationFn(ctx, edu)
}
func (s *profileRepoStub) DeleteEducation(ctx context.Context, profileID, eduID uint) error {
	return s.deleteEducationFn(ctx, profileID, eduID)
}

func noProfile() (*models.Profile, error) {
	return nil, models.NewFieldNotFoundError("noprofile", "There is no profile for this user")
}

func TestSplitSkills(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		csv  string
		want []string
	}{
		{"Simple", "Go,SQL", []string{"Go", "SQL"}},
		{"Whitespace Trimmed", " Go , SQL ", []string{"Go", "SQL"}},
		{"Empty Entries Dropped", "Go,,SQL,", []string{"Go", "SQL"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitSkills(tt.csv))
		})
	}
}

func TestProfileService_Upsert_Create(t *testing.T) {
	t.Parallel()
	var created *models.Profile
	fetches := 0
	repo := &profileRepoStub{
		getByUserIDFn: func(_ context.Context, _ uint) (*models.Profile, error) {
			fetches++
			if created == nil {
				return noProfile()
			}
			return created, nil
		},
		getByHandleFn: func(_ context.Context, _ string) (*models.Profile, error) {
			return nil, models.NewFieldNotFoundError("noprofile", "There is no profile for this user")
		},
		createFn: func(_ context.Context, p *models.Profile) error {
			p.ID = 1
			created = p
			return nil
		},
	}
	svc := NewProfileService(repo)

	website := "https://johndoe.dev"
	profile, err := svc.Upsert(context.Background(), UpsertProfileInput{
		UserID:  1,
		Handle:  "johndoe",
		Status:  "Developer",
		Skills:  "Go, SQL, Docker",
		Website: &website,
	})
	require.NoError(t, err)

	assert.Equal(t, "johndoe", profile.Handle)
	assert.Equal(t, []string{"Go", "SQL", "Docker"}, profile.Skills)
	assert.Equal(t, website, profile.Website)
	assert.Empty(t, profile.Company)
}

func TestProfileService_Upsert_HandleTaken(t *testing.T) {
	t.Parallel()
	repo := &profileRepoStub{
		getByUserIDFn: func(_ context.Context, _ uint) (*models.Profile, error) {
			return noProfile()
		},
		getByHandleFn: func(_ context.Context, handle string) (*models.Profile, error) {
			return &models.Profile{ID: 9, UserID: 2, Handle: handle}, nil
		},
	}
	svc := NewProfileService(repo)

	_, err := svc.Upsert(context.Background(), UpsertProfileInput{
		UserID: 1,
		Handle: "taken",
		Status: "Developer",
		Skills: "Go",
	})

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeConflict, appErr.Code)
	assert.Equal(t, "handle", appErr.Field)
	assert.Equal(t, "That handle already exists", appErr.Message)
}

func TestProfileService_Upsert_PatchLeavesUnsetFields(t *testing.T) {
	t.Parallel()
	existing := &models.Profile{
		ID:       1,
		UserID:   1,
		Handle:   "johndoe",
		Status:   "Developer",
		Company:  "Acme",
		Location: "Berlin",
		Skills:   []string{"Go"},
	}
	repo := &profileRepoStub{
		getByUserIDFn: func(_ context.Context, _ uint) (*models.Profile, error) {
			return existing, nil
		},
		updateFn: func(_ context.Context, p *models.Profile) error {
			existing = p
			return nil
		},
	}
	svc := NewProfileService(repo)

	location := "Hamburg"
	profile, err := svc.Upsert(context.Background(), UpsertProfileInput{
		UserID:   1,
		Handle:   "johndoe",
		Status:   "Senior Developer",
		Skills:   "Go,Kubernetes",
		Location: &location,
	})
	require.NoError(t, err)

	assert.Equal(t, "Senior Developer", profile.Status)
	assert.Equal(t, "Hamburg", profile.Location)
	assert.Equal(t, []string{"Go", "Kubernetes"}, profile.Skills)
	// Company was not in the patch and must survive.
	assert.Equal(t, "Acme", profile.Company)
}

func TestProfileService_AddExperience_NoProfile(t *testing.T) {
	t.Parallel()
	repo := &profileRepoStub{
		getByUserIDFn: func(_ context.Context, _ uint) (*models.Profile, error) {
			return noProfile()
		},
	}
	svc := NewProfileService(repo)

	_, err := svc.AddExperience(context.Background(), ExperienceInput{
		UserID: 1, Title: "Engineer", Company: "Acme", From: "2020-01-01",
	})

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
	assert.Equal(t, "noprofile", appErr.Field)
}

func TestProfileService_DeleteExperience_ScopedToOwnProfile(t *testing.T) {
	t.Parallel()
	profile := &models.Profile{ID: 7, UserID: 1, Handle: "johndoe"}

	var gotProfileID uint
	repo := &profileRepoStub{
		getByUserIDFn: func(_ context.Context, _ uint) (*models.Profile, error) {
			return profile, nil
		},
		deleteExperienceFn: func(_ context.Context, profileID, expID uint) error {
			gotProfileID = profileID
			return nil
		},
	}
	svc := NewProfileService(repo)

	_, err := svc.DeleteExperience(context.Background(), 1, 3)
	require.NoError(t, err)
	assert.Equal(t, profile.ID, gotProfileID)
}

func TestProfileService_DeleteAccount(t *testing.T) {
	t.Parallel()
	deleted := false
	repo := &profileRepoStub{
		deleteWithUserFn: func(_ context.Context, userID uint) error {
			deleted = true
			assert.Equal(t, uint(1), userID)
			return nil
		},
	}
	svc := NewProfileService(repo)

	require.NoError(t, svc.DeleteAccount(context.Background(), 1))
	assert.True(t, deleted)
}
