package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Money travels as a JSON number, not a quoted string.
	decimal.MarshalJSONWithoutQuotes = true
}

type User struct {
	ID           string     `db:"id" json:"id"`
	Username     string     `db:"username" json:"username"`
	Email        string     `db:"email" json:"email"`
	PasswordHash string     `db:"password_hash" json:"-"`
	FullName     string     `db:"full_name" json:"full_name"`
	Phone        *string    `db:"phone" json:"phone"`
	Role         Role       `db:"role" json:"role"`
	IsActive     bool       `db:"is_active" json:"is_active"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    *time.Time `db:"updated_at" json:"updated_at"`
}

type Child struct {
	ID              string          `json:"id"`
	FullName        string          `json:"full_name"`
	BirthDate       Date            `json:"birth_date"`
	Gender          Gender          `json:"gender"`
	EducationStatus EducationStatus `json:"education_status"`
	HealthHistory   *string         `json:"health_history"`
	GuardianInfo    *string         `json:"guardian_info"`
	Notes           *string         `json:"notes"`
	IsActive        bool            `json:"is_active"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       *time.Time      `json:"updated_at"`
}

type Donor struct {
	ID        string     `db:"id" json:"id"`
	FullName  string     `db:"full_name" json:"full_name"`
	Email     *string    `db:"email" json:"email"`
	Phone     *string    `db:"phone" json:"phone"`
	Address   *string    `db:"address" json:"address"`
	UserID    *string    `db:"user_id" json:"user_id"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt *time.Time `db:"updated_at" json:"updated_at"`
}

// Donation carries Amount for money gifts and ItemDescription/ItemQuantity for goods.
type Donation struct {
	ID              string           `json:"id"`
	DonorID         string           `json:"donor_id"`
	Type            DonationType     `json:"type"`
	Amount          *decimal.Decimal `json:"amount"`
	ItemDescription *string          `json:"item_description"`
	ItemQuantity    *int             `json:"item_quantity"`
	DonationDate    Date             `json:"donation_date"`
	Notes           *string          `json:"notes"`
	CreatedAt       time.Time        `json:"created_at"`
}

type Expense struct {
	ID          string          `json:"id"`
	Category    ExpenseCategory `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	ExpenseDate Date            `json:"expense_date"`
	ReceiptURL  *string         `json:"receipt_url"`
	Notes       *string         `json:"notes"`
	CreatedBy   string          `json:"created_by"`
	CreatedAt   time.Time       `json:"created_at"`
}

type Activity struct {
	ID            string         `db:"id" json:"id"`
	Title         string         `db:"title" json:"title"`
	Description   *string        `db:"description" json:"description"`
	Type          ActivityType   `db:"type" json:"type"`
	ScheduledDate time.Time      `db:"scheduled_date" json:"scheduled_date"`
	EndDate       *time.Time     `db:"end_date" json:"end_date"`
	Location      *string        `db:"location" json:"location"`
	Participants  *string        `db:"participants" json:"participants"`
	Photos        *string        `db:"photos" json:"photos"`
	Status        ActivityStatus `db:"status" json:"status"`
	CreatedBy     string         `db:"created_by" json:"created_by"`
	CreatedAt     time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt     *time.Time     `db:"updated_at" json:"updated_at"`
}

type MediaAsset struct {
	ID          string    `db:"id" json:"id"`
	OwnerUserID *string   `db:"owner_user_id" json:"owner_user_id"`
	Bucket      string    `db:"bucket" json:"bucket"`
	StorageKey  string    `db:"storage_key" json:"-"`
	Filename    *string   `db:"filename" json:"filename"`
	ContentType string    `db:"content_type" json:"content_type"`
	SizeBytes   int64     `db:"size_bytes" json:"size_bytes"`
	Sha256      string    `db:"sha256" json:"sha256"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// FinancialReport summarises money movement over an inclusive date window.
// DonationsByType.Barang counts donated items, not money.
type FinancialReport struct {
	Period             string                              `json:"period"`
	StartDate          Date                                `json:"start_date"`
	EndDate            Date                                `json:"end_date"`
	TotalDonations     decimal.Decimal                     `json:"total_donations"`
	TotalExpenses      decimal.Decimal                     `json:"total_expenses"`
	Balance            decimal.Decimal                     `json:"balance"`
	DonationsByType    DonationTotals                      `json:"donations_by_type"`
	ExpensesByCategory map[ExpenseCategory]decimal.Decimal `json:"expenses_by_category"`
	DonationCount      int                                 `json:"donation_count"`
	ExpenseCount       int                                 `json:"expense_count"`
}

type DonationTotals struct {
	Uang   decimal.Decimal `json:"uang"`
	Barang int64           `json:"barang"`
}
