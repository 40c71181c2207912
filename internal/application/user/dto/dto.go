package dto

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/tradesift-io/tradesift/internal/domain/customer"
	"github.com/tradesift-io/tradesift/internal/domain/shipment"
	"github.com/tradesift-io/tradesift/internal/shared/errors"
)

var validate = validator.New()

// Validate runs struct-tag validation and wraps failures as
// client-fixable validation errors.
func Validate(v interface{}) error {
	if err := validate.Struct(v); err != nil {
		return errors.NewValidationError(err.Error())
	}
	return nil
}

type RegisterCustomerRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	FullName    string `json:"full_name" validate:"required"`
	CompanyName string `json:"company_name"`
}

type CreateAdminRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

// RenewSubscriptionRequest replaces one direction's subscription state
// for a customer. Direction is "export" or "import".
type RenewSubscriptionRequest struct {
	Direction         string    `json:"direction" validate:"required,oneof=export import"`
	Codes             []string  `json:"codes" validate:"required,min=1"`
	ValidUpto         time.Time `json:"valid_upto" validate:"required"`
	DownloadRemaining int       `json:"download_remaining" validate:"min=0"`
}

// SubscriptionDTO is the outward view of one direction's subscription.
type SubscriptionDTO struct {
	Codes             []string  `json:"codes"`
	ValidUpto         time.Time `json:"valid_upto"`
	DownloadRemaining int       `json:"download_remaining"`
}

// CustomerProfileDTO is the outward view of a customer account. The
// password hash never leaves the domain.
type CustomerProfileDTO struct {
	ID          uint            `json:"id"`
	Email       string          `json:"email"`
	FullName    string          `json:"full_name"`
	CompanyName string          `json:"company_name"`
	ExportSub   SubscriptionDTO `json:"export_subscription"`
	ImportSub   SubscriptionDTO `json:"import_subscription"`
	CreatedAt   time.Time       `json:"created_at"`
}

// LoginResponse pairs the issued tokens with the account profile.
type LoginResponse struct {
	AccessToken  string              `json:"access_token"`
	RefreshToken string              `json:"refresh_token"`
	Profile      *CustomerProfileDTO `json:"profile,omitempty"`
}

// ToCustomerProfileDTO maps a customer aggregate onto its outward view.
func ToCustomerProfileDTO(c *customer.Customer) *CustomerProfileDTO {
	return &CustomerProfileDTO{
		ID:          c.ID(),
		Email:       c.Email(),
		FullName:    c.FullName(),
		CompanyName: c.CompanyName(),
		ExportSub:   toSubscriptionDTO(c.Subscription(shipment.DirectionExport)),
		ImportSub:   toSubscriptionDTO(c.Subscription(shipment.DirectionImport)),
		CreatedAt:   c.CreatedAt(),
	}
}

func toSubscriptionDTO(sub customer.CodeSubscription) SubscriptionDTO {
	return SubscriptionDTO{
		Codes:             sub.Codes,
		ValidUpto:         sub.ValidUpto,
		DownloadRemaining: sub.DownloadRemaining,
	}
}
