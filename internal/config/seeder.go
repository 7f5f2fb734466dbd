package config

import (
	"context"
	"errors"
	"fmt"
	"log"

	"library-management/internal/adapters/persistence/models"
	"library-management/internal/adapters/persistence/repositories"
	"library-management/internal/core/domain"
	"library-management/internal/pkg/password"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	roleRepo repositories.RoleRepository
	userRepo repositories.UserRepository
	cfg      SeedConfig
}

// NewSeeder creates a new seeder instance
func NewSeeder(roleRepo repositories.RoleRepository, userRepo repositories.UserRepository, cfg SeedConfig) *Seeder {
	return &Seeder{
		roleRepo: roleRepo,
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// Run executes all seeders. Running it again is a no-op.
func (s *Seeder) Run(ctx context.Context) error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedRoles(ctx); err != nil {
		return err
	}

	if err := s.seedAdminUser(ctx); err != nil {
		log.Printf("⚠️ Admin seeder skipped: %v", err)
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedRoles makes sure every role row exists
func (s *Seeder) seedRoles(ctx context.Context) error {
	for _, name := range domain.Roles {
		if _, err := s.roleRepo.Ensure(ctx, name); err != nil {
			return fmt.Errorf("seed role %s: %w", name, err)
		}
	}
	return nil
}

// seedAdminUser creates the bootstrap admin when credentials are configured
func (s *Seeder) seedAdminUser(ctx context.Context) error {
	if s.cfg.AdminUsername == "" || s.cfg.AdminPassword == "" {
		return nil
	}

	_, err := s.userRepo.GetByUsername(ctx, s.cfg.AdminUsername)
	if err == nil {
		return nil // Admin already exists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if !password.ValidatePassword(s.cfg.AdminPassword) {
		return fmt.Errorf("admin password must be %d to %d bytes", password.MinLength, password.MaxLength)
	}

	role, err := s.roleRepo.GetByName(ctx, domain.RoleAdmin)
	if err != nil {
		return err
	}

	hashedPassword, err := password.Hash(s.cfg.AdminPassword)
	if err != nil {
		return err
	}

	admin := &models.User{
		Username: s.cfg.AdminUsername,
		Email:    s.cfg.AdminEmail,
		Password: hashedPassword,
		RoleID:   role.ID,
	}
	if err := s.userRepo.Create(ctx, admin); err != nil {
		return err
	}

	log.Printf("✅ Admin user created: %s", admin.Username)
	return nil
}
