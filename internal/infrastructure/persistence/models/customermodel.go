package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/tradesift-io/tradesift/internal/shared/constants"
)

// CustomerModel is the persistence model for customer accounts. Each
// direction's subscription is flattened into its own column set so the
// quota decrement can target a single column.
type CustomerModel struct {
	ID           uint   `gorm:"primarykey"`
	Email        string `gorm:"uniqueIndex;not null;size:255"`
	FullName     string `gorm:"not null;size:100"`
	CompanyName  string `gorm:"size:200"`
	PasswordHash string `gorm:"not null;size:255"`

	ExportCodes             datatypes.JSON `gorm:"type:json"`
	ExportValidUpto         *time.Time
	ExportDownloadRemaining int `gorm:"not null;default:0"`

	ImportCodes             datatypes.JSON `gorm:"type:json"`
	ImportValidUpto         *time.Time
	ImportDownloadRemaining int `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (CustomerModel) TableName() string {
	return constants.TableCustomers
}
