package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateUserInput struct {
	Username string  `json:"username" validate:"required,min=3,max=50"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6"`
	FullName string  `json:"full_name" validate:"notblank"`
	Phone    *string `json:"phone"`
	Role     Role    `json:"role" validate:"required,enum"`
}

type CreateChildInput struct {
	FullName        string          `json:"full_name" validate:"notblank"`
	BirthDate       Date            `json:"birth_date" validate:"required"`
	Gender          Gender          `json:"gender" validate:"required,enum"`
	EducationStatus EducationStatus `json:"education_status" validate:"required,enum"`
	HealthHistory   *string         `json:"health_history"`
	GuardianInfo    *string         `json:"guardian_info"`
	Notes           *string         `json:"notes"`
}

// UpdateChildInput changes only the fields present in the request.
type UpdateChildInput struct {
	ID              string                    `json:"id"`
	FullName        Optional[string]          `json:"full_name"`
	BirthDate       Optional[Date]            `json:"birth_date"`
	Gender          Optional[Gender]          `json:"gender"`
	EducationStatus Optional[EducationStatus] `json:"education_status"`
	HealthHistory   Optional[string]          `json:"health_history"`
	GuardianInfo    Optional[string]          `json:"guardian_info"`
	Notes           Optional[string]          `json:"notes"`
	IsActive        Optional[bool]            `json:"is_active"`
}

type CreateDonorInput struct {
	FullName string  `json:"full_name" validate:"notblank"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	UserID   *string `json:"user_id" validate:"omitempty,uuid"`
}

type CreateDonationInput struct {
	DonorID         string           `json:"donor_id" validate:"required,uuid"`
	Type            DonationType     `json:"type" validate:"required,enum"`
	Amount          *decimal.Decimal `json:"amount"`
	ItemDescription *string          `json:"item_description"`
	ItemQuantity    *int             `json:"item_quantity"`
	DonationDate    Date             `json:"donation_date" validate:"required"`
	Notes           *string          `json:"notes"`
}

type CreateExpenseInput struct {
	Category    ExpenseCategory `json:"category" validate:"required,enum"`
	Description string          `json:"description" validate:"notblank"`
	Amount      decimal.Decimal `json:"amount"`
	ExpenseDate Date            `json:"expense_date" validate:"required"`
	ReceiptURL  *string         `json:"receipt_url"`
	Notes       *string         `json:"notes"`
	CreatedBy   string          `json:"created_by" validate:"required,uuid"`
}

type CreateActivityInput struct {
	Title         string       `json:"title" validate:"notblank"`
	Description   *string      `json:"description"`
	Type          ActivityType `json:"type" validate:"required,enum"`
	ScheduledDate time.Time    `json:"scheduled_date" validate:"required"`
	EndDate       *time.Time   `json:"end_date"`
	Location      *string      `json:"location"`
	Participants  *string      `json:"participants"`
	Photos        *string      `json:"photos"`
	CreatedBy     string       `json:"created_by" validate:"required,uuid"`
}

type UpdateActivityInput struct {
	ID            string                   `json:"id"`
	Title         Optional[string]         `json:"title"`
	Description   Optional[string]         `json:"description"`
	Type          Optional[ActivityType]   `json:"type"`
	ScheduledDate Optional[time.Time]      `json:"scheduled_date"`
	EndDate       Optional[time.Time]      `json:"end_date"`
	Location      Optional[string]         `json:"location"`
	Participants  Optional[string]         `json:"participants"`
	Photos        Optional[string]         `json:"photos"`
	Status        Optional[ActivityStatus] `json:"status"`
}

// DateRangeInput is an inclusive window of calendar days.
type DateRangeInput struct {
	StartDate Date `json:"start_date" validate:"required"`
	EndDate   Date `json:"end_date" validate:"required"`
}

type DonationQuery struct {
	DateRangeInput
	DonorID *string `json:"donor_id" validate:"omitempty,uuid"`
}

type ExpenseQuery struct {
	DateRangeInput
	Category *ExpenseCategory `json:"category" validate:"omitempty,enum"`
}

type ActivityQuery struct {
	DateRangeInput
	Type *ActivityType `json:"type" validate:"omitempty,enum"`
}
