// Package model contains the GORM persistence models mirroring the database schema.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. The unique index on username is the
// real uniqueness guarantee for registration: two concurrent registrations can
// both pass the application-level existence check, but only one insert wins.
// Usernames are stored lowercase; callers normalize before hitting the store.
type UserModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Username           string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	PasswordHash       string    `gorm:"type:varchar(255);not null"`
	RecoveryQuestion   string    `gorm:"type:varchar(255);not null"`
	RecoveryAnswerHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
