package models

import (
	"time"

	"github.com/tradesift-io/tradesift/internal/shared/constants"
)

// AdminModel is the persistence model for operator accounts.
type AdminModel struct {
	ID           uint   `gorm:"primarykey"`
	Email        string `gorm:"uniqueIndex;not null;size:255"`
	FullName     string `gorm:"not null;size:100"`
	PasswordHash string `gorm:"not null;size:255"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (AdminModel) TableName() string {
	return constants.TableAdmins
}
