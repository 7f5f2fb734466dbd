package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"library-management/internal/adapters/persistence/models"
	"library-management/internal/adapters/persistence/repositories"
	"library-management/internal/core/domain"
	"library-management/internal/pkg/password"

	"gorm.io/gorm"
)

// UserService handles user management business logic
type UserService struct {
	userRepo repositories.UserRepository
	roleRepo repositories.RoleRepository
}

// NewUserService creates a new user service
func NewUserService(
	userRepo repositories.UserRepository,
	roleRepo repositories.RoleRepository,
) *UserService {
	return &UserService{
		userRepo: userRepo,
		roleRepo: roleRepo,
	}
}

// CreateUserInput represents registration input
type CreateUserInput struct {
	Username    string `json:"userName" validate:"required,min=3,max=50"`
	Email       string `json:"email" validate:"omitempty,email,max=100"`
	FirstName   string `json:"firstName" validate:"max=100"`
	LastName    string `json:"lastName" validate:"max=100"`
	Address     string `json:"address" validate:"max=255"`
	Gender      string `json:"gender" validate:"max=20"`
	PhoneNumber string `json:"phoneNumber" validate:"max=30"`
	Nationality string `json:"nationality" validate:"max=60"`
	Password    string `json:"password" validate:"required,min=6,max=72"`
	Role        string `json:"role"`
}

// UpdateUserInput represents update user input. Empty password and role keep the current values.
type UpdateUserInput struct {
	Email       string `json:"email" validate:"omitempty,email,max=100"`
	FirstName   string `json:"firstName" validate:"max=100"`
	LastName    string `json:"lastName" validate:"max=100"`
	Address     string `json:"address" validate:"max=255"`
	Gender      string `json:"gender" validate:"max=20"`
	PhoneNumber string `json:"phoneNumber" validate:"max=30"`
	Nationality string `json:"nationality" validate:"max=60"`
	Password    string `json:"password" validate:"omitempty,min=6,max=72"`
	Role        string `json:"role"`
}

// CreateUser registers a new user
func (s *UserService) CreateUser(ctx context.Context, input *CreateUserInput) (*models.UserResponse, error) {
	username := strings.TrimSpace(input.Username)

	// 1. Check if username already exists
	exists, err := s.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrUserAlreadyExists
	}

	// 2. Resolve role
	role, err := s.resolveRole(ctx, input.Role)
	if err != nil {
		return nil, err
	}

	// 3. Hash password
	hashedPassword, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	// 4. Create user
	user := &models.User{
		Username:    username,
		Email:       input.Email,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Address:     input.Address,
		Gender:      input.Gender,
		PhoneNumber: input.PhoneNumber,
		Nationality: input.Nationality,
		Password:    hashedPassword,
		RoleID:      role.ID,
		Role:        role,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrUserAlreadyExists
		}
		return nil, err
	}

	log.Printf("✅ User registered: %s (role: %s)", user.Username, role.Name)

	return user.ToResponse(), nil
}

// GetUsers lists all users
func (s *UserService) GetUsers(ctx context.Context) ([]*models.UserResponse, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.UserResponse, len(users))
	for i, user := range users {
		responses[i] = user.ToResponse()
	}
	return responses, nil
}

// GetUser gets a user by ID
func (s *UserService) GetUser(ctx context.Context, userID uint) (*models.UserResponse, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.ToResponse(), nil
}

// Me returns the user the current token belongs to
func (s *UserService) Me(ctx context.Context, userID uint) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	return user.ToResponse(), nil
}

// UpdateUser overwrites the mutable fields of a user
func (s *UserService) UpdateUser(ctx context.Context, userID uint, input *UpdateUserInput) (*models.UserResponse, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Email = input.Email
	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.Address = input.Address
	user.Gender = input.Gender
	user.PhoneNumber = input.PhoneNumber
	user.Nationality = input.Nationality

	if input.Password != "" {
		hashedPassword, err := password.Hash(input.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashedPassword
	}

	if strings.TrimSpace(input.Role) != "" {
		role, err := s.resolveRole(ctx, input.Role)
		if err != nil {
			return nil, err
		}
		user.RoleID = role.ID
		user.Role = role
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	log.Printf("✅ User updated: %s", user.Username)

	return user.ToResponse(), nil
}

// DeleteUser deletes a user
func (s *UserService) DeleteUser(ctx context.Context, userID uint) error {
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	log.Printf("🗑️ User deleted: %d", userID)
	return nil
}

func (s *UserService) findUser(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// resolveRole maps a requested role name to its seeded row. Anything but Admin is User.
func (s *UserService) resolveRole(ctx context.Context, requested string) (*models.Role, error) {
	role, err := s.roleRepo.GetByName(ctx, domain.ParseRole(requested))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRoleNotSeeded
		}
		return nil, err
	}
	return role, nil
}
