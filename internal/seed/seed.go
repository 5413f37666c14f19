package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"devconnector/internal/database"
	"devconnector/internal/models"

	"gorm.io/gorm"
)

// Seeder orchestrates demo data creation through a Factory.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
}

// NewSeeder creates a Seeder with default options.
func NewSeeder(db *gorm.DB) *Seeder {
	return NewSeederWithOptions(db, SeedOptions{})
}

// NewSeederWithOptions creates a Seeder with explicit factory options.
func NewSeederWithOptions(db *gorm.DB, opts SeedOptions) *Seeder {
	return &Seeder{db: db, factory: NewFactory(db, opts)}
}

// Factory exposes the underlying factory for tests and presets.
func (s *Seeder) Factory() *Factory {
	return s.factory
}

// clearStatements returns the SQL that wipes every seeded table on the given
// dialect. Postgres resets the whole graph in one truncate; other dialects
// delete child tables before their parents.
func clearStatements(dialect string) []string {
	if dialect == "postgres" {
		return []string{`TRUNCATE TABLE comments, likes, posts, educations, experiences, profiles, users RESTART IDENTITY CASCADE;`}
	}
	tables := database.Tables()
	stmts := make([]string, 0, len(tables))
	for i := len(tables) - 1; i >= 0; i-- {
		stmts = append(stmts, fmt.Sprintf("DELETE FROM %s;", tables[i]))
	}
	return stmts
}

// ClearAll wipes every seeded table using statements suited to the connected
// database.
func (s *Seeder) ClearAll() error {
	log.Println("🗑️  Clearing existing data...")
	for _, stmt := range clearStatements(s.db.Dialector.Name()) {
		if err := s.db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedCommunity creates numUsers accounts. Roughly seven in ten get a
// developer profile with experience and education. A few fixed accounts are
// always created first so logins stay predictable across reseeds.
func (s *Seeder) SeedCommunity(numUsers int) ([]models.User, error) {
	users := make([]models.User, 0, numUsers)

	wellKnown := []struct{ name, email string }{
		{"John Doe", "john@example.com"},
		{"Jane Doe", "jane@example.com"},
		{"Test User", "test@example.com"},
	}
	if numUsers >= len(wellKnown) {
		for _, w := range wellKnown {
			w := w
			user, err := s.factory.CreateUser(func(u *models.User) {
				u.Name = w.name
				u.Email = w.email
			})
			if err != nil {
				// Usually means they survived a previous seed run.
				log.Printf("skipping well-known user %s: %v", w.email, err)
				continue
			}
			users = append(users, *user)
		}
	}

	for i := len(users); i < numUsers; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			log.Printf("Failed to create user: %v", err)
			continue
		}
		users = append(users, *user)

		if i > 0 && i%100 == 0 {
			log.Printf("Created %d users...", i)
		}
	}

	profiles := 0
	for i := range users {
		//nolint:gosec // Weak random number generator is fine for seeding
		if rand.Float32() < 0.7 {
			if _, err := s.factory.CreateProfile(&users[i]); err != nil {
				log.Printf("Failed to create profile for user %d: %v", users[i].ID, err)
				continue
			}
			profiles++
		}
	}

	log.Printf("✓ %d users and %d profiles created", len(users), profiles)
	return users, nil
}

// SeedEngagement creates numPosts posts spread across users, each with a
// random sprinkling of likes and comments.
func (s *Seeder) SeedEngagement(users []models.User, numPosts int) ([]models.Post, error) {
	if len(users) == 0 {
		return nil, fmt.Errorf("no users to attribute posts to")
	}

	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	posts := make([]models.Post, 0, numPosts)

	for i := 0; i < numPosts; i++ {
		author := users[r.Intn(len(users))]
		post, err := s.factory.CreatePost(&author)
		if err != nil {
			return nil, err
		}

		numLikes := r.Intn(min(len(users), 10))
		for _, idx := range r.Perm(len(users))[:numLikes] {
			if err := s.factory.CreateLike(&users[idx], post); err != nil {
				log.Printf("Failed to like post %d: %v", post.ID, err)
			}
		}

		numComments := r.Intn(4)
		for j := 0; j < numComments; j++ {
			commenter := users[r.Intn(len(users))]
			if _, err := s.factory.CreateComment(&commenter, post); err != nil {
				log.Printf("Failed to comment on post %d: %v", post.ID, err)
			}
		}

		posts = append(posts, *post)
		if i > 0 && i%100 == 0 {
			log.Printf("Created %d posts...", i)
		}
	}

	log.Printf("✓ %d posts created", len(posts))
	return posts, nil
}
