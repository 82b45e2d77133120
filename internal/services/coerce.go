package services

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/appdotbuilder/panti-asuhan-manajemen-sub000/internal/models"
	"github.com/shopspring/decimal"
)

// Storage hands money and calendar dates back as text (NUMERIC and DATE cast to
// TEXT on Postgres, plain TEXT on SQLite). Everything crossing that boundary
// goes through the helpers below.

func parseAmount(raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("stored amount %q: %w", raw, err)
	}
	return d, nil
}

func parseNullableAmount(raw sql.NullString) (*decimal.Decimal, error) {
	if !raw.Valid {
		return nil, nil
	}
	d, err := parseAmount(raw.String)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func parseStoredDate(raw string) (models.Date, error) {
	d, err := models.ParseDate(raw)
	if err != nil {
		return models.Date{}, fmt.Errorf("stored date: %w", err)
	}
	return d, nil
}

func formatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func formatNullableAmount(d *decimal.Decimal) interface{} {
	if d == nil {
		return nil
	}
	return formatAmount(*d)
}

func formatDate(d models.Date) string {
	return d.Format(models.DateLayout)
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}

// now is the write timestamp. Microseconds match the Postgres timestamp resolution.
var now = func() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

type childRow struct {
	ID              string     `db:"id"`
	FullName        string     `db:"full_name"`
	BirthDate       string     `db:"birth_date"`
	Gender          string     `db:"gender"`
	EducationStatus string     `db:"education_status"`
	HealthHistory   *string    `db:"health_history"`
	GuardianInfo    *string    `db:"guardian_info"`
	Notes           *string    `db:"notes"`
	IsActive        bool       `db:"is_active"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       *time.Time `db:"updated_at"`
}

func (r childRow) toModel() (models.Child, error) {
	birth, err := parseStoredDate(r.BirthDate)
	if err != nil {
		return models.Child{}, fmt.Errorf("child %s: %w", r.ID, err)
	}
	return models.Child{
		ID:              r.ID,
		FullName:        r.FullName,
		BirthDate:       birth,
		Gender:          models.Gender(r.Gender),
		EducationStatus: models.EducationStatus(r.EducationStatus),
		HealthHistory:   r.HealthHistory,
		GuardianInfo:    r.GuardianInfo,
		Notes:           r.Notes,
		IsActive:        r.IsActive,
		CreatedAt:       r.CreatedAt.UTC(),
		UpdatedAt:       utcPtr(r.UpdatedAt),
	}, nil
}

type donationRow struct {
	ID              string         `db:"id"`
	DonorID         string         `db:"donor_id"`
	Type            string         `db:"type"`
	Amount          sql.NullString `db:"amount"`
	ItemDescription *string        `db:"item_description"`
	ItemQuantity    *int           `db:"item_quantity"`
	DonationDate    string         `db:"donation_date"`
	Notes           *string        `db:"notes"`
	CreatedAt       time.Time      `db:"created_at"`
}

func (r donationRow) toModel() (models.Donation, error) {
	amount, err := parseNullableAmount(r.Amount)
	if err != nil {
		return models.Donation{}, fmt.Errorf("donation %s: %w", r.ID, err)
	}
	day, err := parseStoredDate(r.DonationDate)
	if err != nil {
		return models.Donation{}, fmt.Errorf("donation %s: %w", r.ID, err)
	}
	return models.Donation{
		ID:              r.ID,
		DonorID:         r.DonorID,
		Type:            models.DonationType(r.Type),
		Amount:          amount,
		ItemDescription: r.ItemDescription,
		ItemQuantity:    r.ItemQuantity,
		DonationDate:    day,
		Notes:           r.Notes,
		CreatedAt:       r.CreatedAt.UTC(),
	}, nil
}

type expenseRow struct {
	ID          string    `db:"id"`
	Category    string    `db:"category"`
	Description string    `db:"description"`
	Amount      string    `db:"amount"`
	ExpenseDate string    `db:"expense_date"`
	ReceiptURL  *string   `db:"receipt_url"`
	Notes       *string   `db:"notes"`
	CreatedBy   string    `db:"created_by"`
	CreatedAt   time.Time `db:"created_at"`
}

func (r expenseRow) toModel() (models.Expense, error) {
	amount, err := parseAmount(r.Amount)
	if err != nil {
		return models.Expense{}, fmt.Errorf("expense %s: %w", r.ID, err)
	}
	day, err := parseStoredDate(r.ExpenseDate)
	if err != nil {
		return models.Expense{}, fmt.Errorf("expense %s: %w", r.ID, err)
	}
	return models.Expense{
		ID:          r.ID,
		Category:    models.ExpenseCategory(r.Category),
		Description: r.Description,
		Amount:      amount,
		ExpenseDate: day,
		ReceiptURL:  r.ReceiptURL,
		Notes:       r.Notes,
		CreatedBy:   r.CreatedBy,
		CreatedAt:   r.CreatedAt.UTC(),
	}, nil
}

func convertRows[R any, M any](rows []R, convert func(R) (M, error)) ([]M, error) {
	items := make([]M, 0, len(rows))
	for _, row := range rows {
		item, err := convert(row)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
