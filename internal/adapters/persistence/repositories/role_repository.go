package repositories

import (
	"context"

	"library-management/internal/adapters/persistence/models"
	"library-management/internal/core/domain"

	"gorm.io/gorm"
)

// roleRepository implements RoleRepository interface
type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository creates a new role repository
func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db: db}
}

// GetByName gets a role by name
func (r *roleRepository) GetByName(ctx context.Context, name domain.Role) (*models.Role, error) {
	var role models.Role
	err := r.db.WithContext(ctx).Where("name = ?", string(name)).First(&role).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// Ensure returns the named role, creating it if missing
func (r *roleRepository) Ensure(ctx context.Context, name domain.Role) (*models.Role, error) {
	role := models.Role{Name: string(name)}
	err := r.db.WithContext(ctx).Where(models.Role{Name: string(name)}).FirstOrCreate(&role).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}
