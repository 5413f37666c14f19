// Package seed provides helpers to create demo data for development and
// testing. Not intended for production databases.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"devconnector/internal/gravatar"
	"devconnector/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedOptions tune factory behaviour.
type SeedOptions struct {
	// DryRun skips all DB writes and assigns synthetic IDs.
	DryRun bool
	// SkipBcrypt stores the plaintext password. Fast mode for local dev.
	SkipBcrypt bool
	// MaxDays spreads created_at timestamps over this many days back.
	MaxDays int
}

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	opts SeedOptions
	// synthetic ID counter when running in DryRun mode
	nextID uint
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts SeedOptions) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{db: db, opts: opts, nextID: 1000}
}

// CreateUser constructs and persists a sample user. All seed users share the
// password "password123". Optional override functions may modify the user
// before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	name := gofakeit.Name()
	email := fmt.Sprintf("%s%d@example.com",
		strings.ToLower(gofakeit.Username()), gofakeit.Number(100, 999))

	user := &models.User{
		Name:   name,
		Email:  email,
		Avatar: gravatar.URL(email),
	}

	if f.opts.SkipBcrypt {
		user.Password = "password123"
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		user.Password = string(hashedPassword)
	}

	for _, override := range overrides {
		override(user)
	}

	if f.opts.DryRun {
		f.nextID++
		user.ID = f.nextID
		log.Printf("[dry-run] CreateUser: %s <%s>", user.Name, user.Email)
		return user, nil
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateProfile constructs and persists a developer profile for the given
// user, including a couple of experience and education entries.
func (f *Factory) CreateProfile(user *models.User, overrides ...func(*models.Profile)) (*models.Profile, error) {
	handle := fmt.Sprintf("%s%d", strings.ToLower(gofakeit.Username()), gofakeit.Number(10, 99))

	profile := &models.Profile{
		UserID:         user.ID,
		Handle:         handle,
		Status:         gofakeit.JobTitle(),
		Company:        gofakeit.Company(),
		Website:        gofakeit.URL(),
		Location:       fmt.Sprintf("%s, %s", gofakeit.City(), gofakeit.StateAbr()),
		Bio:            gofakeit.Sentence(12),
		GithubUsername: strings.ToLower(gofakeit.Username()),
		Skills:         randomSkills(),
	}

	// Roughly half the profiles carry social links.
	if gofakeit.Bool() {
		profile.Social = models.SocialLinks{
			Youtube:  fmt.Sprintf("https://www.youtube.com/@%s", handle),
			Twitter:  fmt.Sprintf("https://twitter.com/%s", handle),
			Linkedin: fmt.Sprintf("https://www.linkedin.com/in/%s", handle),
		}
	}

	for _, override := range overrides {
		override(profile)
	}

	if f.opts.DryRun {
		f.nextID++
		profile.ID = f.nextID
		log.Printf("[dry-run] CreateProfile: handle=%s user=%d", profile.Handle, profile.UserID)
		return profile, nil
	}

	if err := f.db.Create(profile).Error; err != nil {
		return nil, err
	}

	for i := 0; i < gofakeit.Number(1, 3); i++ {
		exp := &models.Experience{
			ProfileID:   profile.ID,
			Title:       gofakeit.JobTitle(),
			Company:     gofakeit.Company(),
			Location:    gofakeit.City(),
			From:        randomDate(f.maxDays() + 365*3),
			Description: gofakeit.Sentence(10),
		}
		if i == 0 {
			exp.Current = true
		} else {
			exp.To = randomDate(f.maxDays())
		}
		if err := f.db.Create(exp).Error; err != nil {
			return nil, err
		}
	}

	edu := &models.Education{
		ProfileID:    profile.ID,
		School:       fmt.Sprintf("%s University", gofakeit.City()),
		Degree:       "BSc",
		FieldOfStudy: "Computer Science",
		From:         randomDate(365 * 8),
		To:           randomDate(365 * 4),
		Description:  gofakeit.Sentence(8),
	}
	if err := f.db.Create(edu).Error; err != nil {
		return nil, err
	}

	return profile, nil
}

// CreatePost constructs and persists a sample post for the given user with
// the author's name and avatar denormalized, matching what the service does.
func (f *Factory) CreatePost(user *models.User, overrides ...func(*models.Post)) (*models.Post, error) {
	post := &models.Post{
		Text:   gofakeit.Paragraph(1, 2, 8, " "),
		Name:   user.Name,
		Avatar: user.Avatar,
		UserID: user.ID,
	}

	// realistic created_at spread
	post.CreatedAt = time.Now().Add(-randomBackoff(f.maxDays()))

	for _, override := range overrides {
		override(post)
	}

	if f.opts.DryRun {
		f.nextID++
		post.ID = f.nextID
		log.Printf("[dry-run] CreatePost: user=%d text=%.40q", post.UserID, post.Text)
		return post, nil
	}

	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateComment constructs and persists a comment on the provided post
// authored by the provided user.
func (f *Factory) CreateComment(user *models.User, post *models.Post, overrides ...func(*models.Comment)) (*models.Comment, error) {
	comment := &models.Comment{
		PostID: post.ID,
		UserID: user.ID,
		Text:   gofakeit.Sentence(8),
		Name:   user.Name,
		Avatar: user.Avatar,
	}

	for _, override := range overrides {
		override(comment)
	}

	if f.opts.DryRun {
		f.nextID++
		comment.ID = f.nextID
		return comment, nil
	}

	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateLike persists a like from user on post. Duplicate likes hit the
// unique index and are reported as an error.
func (f *Factory) CreateLike(user *models.User, post *models.Post) error {
	if f.opts.DryRun {
		return nil
	}
	like := &models.Like{
		UserID: user.ID,
		PostID: post.ID,
	}
	return f.db.Create(like).Error
}

func (f *Factory) maxDays() int {
	if f.opts.MaxDays <= 0 {
		return 90
	}
	return f.opts.MaxDays
}

var skillPool = []string{
	"Go", "JavaScript", "TypeScript", "Python", "Rust", "SQL", "PostgreSQL",
	"Redis", "Docker", "Kubernetes", "React", "Vue", "Node.js", "GraphQL",
	"AWS", "GCP", "Terraform", "Linux", "Git", "CI/CD",
}

func randomSkills() []string {
	n := gofakeit.Number(2, 6)
	picked := make([]string, 0, n)
	seen := make(map[string]struct{}, n)
	for len(picked) < n {
		s := skillPool[gofakeit.Number(0, len(skillPool)-1)]
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		picked = append(picked, s)
	}
	return picked
}

// randomDate returns a YYYY-MM-DD string up to maxDaysBack days in the past.
func randomDate(maxDaysBack int) string {
	if maxDaysBack <= 0 {
		maxDaysBack = 1
	}
	//nolint:gosec // Weak random number generator is fine for seeding
	back := time.Duration(rand.Intn(maxDaysBack)) * 24 * time.Hour
	return time.Now().Add(-back).Format("2006-01-02")
}

func randomBackoff(maxDays int) time.Duration {
	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	daysBack := r.Intn(maxDays)
	hoursBack := r.Intn(24)
	minsBack := r.Intn(60)
	return time.Duration(daysBack)*24*time.Hour +
		time.Duration(hoursBack)*time.Hour +
		time.Duration(minsBack)*time.Minute
}
