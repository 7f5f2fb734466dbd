package models

import (
	"time"

	"library-management/internal/core/domain"

	"gorm.io/gorm"
)

// ============================================================
// Accounts
// ============================================================

// Role represents roles table
type Role struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:20;not null" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Role) TableName() string {
	return "roles"
}

// User represents users table
type User struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Username    string         `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Email       string         `gorm:"size:100" json:"email"`
	FirstName   string         `gorm:"size:100" json:"first_name"`
	LastName    string         `gorm:"size:100" json:"last_name"`
	Address     string         `gorm:"size:255" json:"address"`
	Gender      string         `gorm:"size:20" json:"gender"`
	PhoneNumber string         `gorm:"size:30" json:"phone_number"`
	Nationality string         `gorm:"size:60" json:"nationality"`
	Password    string         `gorm:"size:255;not null" json:"-"`
	RoleID      uint           `gorm:"not null;index" json:"role_id"`
	Role        *Role          `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// RoleName returns the assigned role, defaulting to User when the relation is not loaded
func (u *User) RoleName() domain.Role {
	if u.Role == nil {
		return domain.RoleUser
	}
	return domain.ParseRole(u.Role.Name)
}

// UserResponse DTO
type UserResponse struct {
	ID          uint      `json:"id"`
	Username    string    `json:"userName"`
	Email       string    `json:"email"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Address     string    `json:"address"`
	Gender      string    `json:"gender"`
	PhoneNumber string    `json:"phoneNumber"`
	Nationality string    `json:"nationality"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Address:     u.Address,
		Gender:      u.Gender,
		PhoneNumber: u.PhoneNumber,
		Nationality: u.Nationality,
		Role:        string(u.RoleName()),
		CreatedAt:   u.CreatedAt,
	}
}

// ============================================================
// Catalog
// ============================================================

// Book represents books table
type Book struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Title         string         `gorm:"size:255;not null;index" json:"title"`
	Author        string         `gorm:"size:255;not null" json:"author"`
	ISBN          string         `gorm:"column:isbn;size:20;index" json:"isbn"`
	Publisher     string         `gorm:"size:255" json:"publisher"`
	Category      string         `gorm:"size:100" json:"category"`
	PublishedYear int            `json:"publishedYear"`
	Quantity      int            `gorm:"not null;default:1" json:"quantity"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Book) TableName() string {
	return "books"
}

// ============================================================
// Lending
// ============================================================

// Borrowing represents borrowings table
type Borrowing struct {
	ID         uint                   `gorm:"primaryKey" json:"id"`
	BookID     uint                   `gorm:"not null;index" json:"bookId"`
	BookName   string                 `gorm:"size:255;not null;index" json:"bookName"`
	UserID     uint                   `gorm:"not null;index" json:"userId"`
	Username   string                 `gorm:"size:50;not null" json:"userName"`
	IssueDate  time.Time              `gorm:"not null" json:"issueDate"`
	DueDate    time.Time              `gorm:"not null;index" json:"dueDate"`
	ReturnDate *time.Time             `json:"returnDate"`
	Status     domain.BorrowingStatus `gorm:"size:20;not null;default:'ISSUED';index" json:"status"`
	Fee        float64                `gorm:"type:decimal(12,2);not null;default:0" json:"fee"`
	CreatedAt  time.Time              `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time              `gorm:"autoUpdateTime" json:"updatedAt"`

	// Relations
	Book *Book `gorm:"foreignKey:BookID" json:"-"`
	User *User `gorm:"foreignKey:UserID" json:"-"`
}

func (Borrowing) TableName() string {
	return "borrowings"
}

// IsOverdue reports whether an open borrowing is past its due date at now
func (b *Borrowing) IsOverdue(now time.Time) bool {
	return b.Status == domain.BorrowingIssued && now.After(b.DueDate)
}

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Role{},
		&User{},
		&Book{},
		&Borrowing{},
	)
}
