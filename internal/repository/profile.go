package repository

import (
	"context"
	"errors"

	"devconnector/internal/cache"
	"devconnector/internal/models"
	"devconnector/internal/observability"

	"gorm.io/gorm"
)

// ProfileRepository defines persistence operations for profiles and their
// experience and education entries.
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID uint) (*models.Profile, error)
	GetByHandle(ctx context.Context, handle string) (*models.Profile, error)
	List(ctx context.Context) ([]models.Profile, error)
	Create(ctx context.Context, profile *models.Profile) error
	Update(ctx context.Context, profile *models.Profile) error
	DeleteWithUser(ctx context.Context, userID uint) error
	AddExperience(ctx context.Context, exp *models.Experience) error
	DeleteExperience(ctx context.Context, profileID, expID uint) error
	AddEducation(ctx context.Context, edu *models.Education) error
	DeleteEducation(ctx context.Context, profileID, eduID uint) error
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository returns a new ProfileRepository implementation.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// withDetails preloads the owning user and both entry collections,
// most-recent-first.
func withDetails(db *gorm.DB) *gorm.DB {
	return db.
		Preload("User").
		Preload("Experience", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Preload("Education", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		})
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	defer observability.TrackQuery("select", "profiles")()

	var profile models.Profile
	err := cache.Aside(ctx, cache.ProfileUserKey(userID), &profile, cache.ProfileTTL, func() error {
		if err := withDetails(r.db.WithContext(ctx)).
			Where("user_id = ?", userID).
			First(&profile).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewFieldNotFoundError("noprofile", "There is no profile for this user")
			}
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) GetByHandle(ctx context.Context, handle string) (*models.Profile, error) {
	defer observability.TrackQuery("select", "profiles")()

	var profile models.Profile
	err := cache.Aside(ctx, cache.ProfileHandleKey(handle), &profile, cache.ProfileTTL, func() error {
		if err := withDetails(r.db.WithContext(ctx)).
			Where("handle = ?", handle).
			First(&profile).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewFieldNotFoundError("noprofile", "There is no profile for this user")
			}
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) List(ctx context.Context) ([]models.Profile, error) {
	defer observability.TrackQuery("select", "profiles")()

	var profiles []models.Profile
	if err := withDetails(r.db.WithContext(ctx)).
		Order("created_at DESC").
		Find(&profiles).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return profiles, nil
}

func (r *profileRepository) Create(ctx context.Context, profile *models.Profile) error {
	defer observability.TrackQuery("insert", "profiles")()

	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("handle", "That handle already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *profileRepository) Update(ctx context.Context, profile *models.Profile) error {
	defer observability.TrackQuery("update", "profiles")()

	// profile.Handle already carries the new value here. Capture the stored
	// handle first so a rename drops the old handle's cache entry too.
	var prevHandle string
	if cache.Enabled() {
		var stored models.Profile
		if err := r.db.WithContext(ctx).Select("handle").First(&stored, profile.ID).Error; err == nil {
			prevHandle = stored.Handle
		}
	}

	if err := r.db.WithContext(ctx).Save(profile).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("handle", "That handle already exists")
		}
		return models.NewInternalError(err)
	}
	cache.InvalidateProfile(ctx, profile.UserID, profile.Handle, prevHandle)
	return nil
}

// DeleteWithUser removes the user's profile together with the account in a
// single transaction.
func (r *profileRepository) DeleteWithUser(ctx context.Context, userID uint) error {
	defer observability.TrackQuery("delete", "profiles")()

	var handle string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var profile models.Profile
		if err := tx.Where("user_id = ?", userID).First(&profile).Error; err == nil {
			handle = profile.Handle
			if err := tx.Where("profile_id = ?", profile.ID).Delete(&models.Experience{}).Error; err != nil {
				return err
			}
			if err := tx.Where("profile_id = ?", profile.ID).Delete(&models.Education{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&profile).Error; err != nil {
				return err
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Delete(&models.User{}, userID).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateProfile(ctx, userID, handle)
	return nil
}

func (r *profileRepository) AddExperience(ctx context.Context, exp *models.Experience) error {
	defer observability.TrackQuery("insert", "experiences")()

	if err := r.db.WithContext(ctx).Create(exp).Error; err != nil {
		return models.NewInternalError(err)
	}
	r.invalidateByProfileID(ctx, exp.ProfileID)
	return nil
}

func (r *profileRepository) DeleteExperience(ctx context.Context, profileID, expID uint) error {
	defer observability.TrackQuery("delete", "experiences")()

	res := r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Delete(&models.Experience{}, expID)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewFieldNotFoundError("experience", "Experience entry not found")
	}
	r.invalidateByProfileID(ctx, profileID)
	return nil
}

func (r *profileRepository) AddEducation(ctx context.Context, edu *models.Education) error {
	defer observability.TrackQuery("insert", "educations")()

	if err := r.db.WithContext(ctx).Create(edu).Error; err != nil {
		return models.NewInternalError(err)
	}
	r.invalidateByProfileID(ctx, edu.ProfileID)
	return nil
}

func (r *profileRepository) DeleteEducation(ctx context.Context, profileID, eduID uint) error {
	defer observability.TrackQuery("delete", "educations")()

	res := r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Delete(&models.Education{}, eduID)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewFieldNotFoundError("education", "Education entry not found")
	}
	r.invalidateByProfileID(ctx, profileID)
	return nil
}

func (r *profileRepository) invalidateByProfileID(ctx context.Context, profileID uint) {
	if !cache.Enabled() {
		return
	}
	var profile models.Profile
	if err := r.db.WithContext(ctx).Select("user_id", "handle").First(&profile, profileID).Error; err != nil {
		return
	}
	cache.InvalidateProfile(ctx, profile.UserID, profile.Handle)
}
