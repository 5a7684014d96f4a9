package domain

import (
	"time" // Timestamps

	"github.com/google/uuid" // UUID generation
	"gorm.io/gorm"           // GORM ORM library
)

// User Model
type User struct {
	ID        string    `gorm:"type:char(36);primaryKey"`               // Primary key (UUID)
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null"` // Unique email
	Password  string    `gorm:"not null"`                               // Hashed password
	FirstName string    `gorm:"type:varchar(100)"`                      // First name
	LastName  string    `gorm:"type:varchar(100)"`                      // Last name
	CreatedAt time.Time // Set by GORM on insert
	UpdatedAt time.Time // Set by GORM on insert and update
}

// BeforeCreate assigns a UUID when the caller did not set one
func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// UserProfile is the public view of a user; it never carries the password hash
type UserProfile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Profile maps the stored user to its public view
func (u *User) Profile() UserProfile {
	return UserProfile{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
