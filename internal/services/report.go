package services

import (
	"context"

	"github.com/appdotbuilder/panti-asuhan-manajemen-sub000/internal/models"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

// GetFinancialReport aggregates donations and expenses dated within the window.
func GetFinancialReport(ctx context.Context, db *sqlx.DB, window models.DateRangeInput) (models.FinancialReport, error) {
	if err := window.Validate(); err != nil {
		return models.FinancialReport{}, err
	}
	donations, err := GetDonationsByDateRange(ctx, db, models.DonationQuery{DateRangeInput: window})
	if err != nil {
		return models.FinancialReport{}, err
	}
	expenses, err := GetExpensesByDateRange(ctx, db, models.ExpenseQuery{DateRangeInput: window})
	if err != nil {
		return models.FinancialReport{}, err
	}
	return BuildFinancialReport(window, donations, expenses), nil
}

// BuildFinancialReport folds already-filtered records into a report.
// Goods donations add their item count to DonationsByType.Barang and nothing to
// the money totals. Every expense category is present, zero when unused.
func BuildFinancialReport(window models.DateRangeInput, donations []models.Donation, expenses []models.Expense) models.FinancialReport {
	report := models.FinancialReport{
		Period:             window.StartDate.String() + "/" + window.EndDate.String(),
		StartDate:          window.StartDate,
		EndDate:            window.EndDate,
		TotalDonations:     decimal.Zero,
		TotalExpenses:      decimal.Zero,
		DonationsByType:    models.DonationTotals{Uang: decimal.Zero},
		ExpensesByCategory: make(map[models.ExpenseCategory]decimal.Decimal, len(models.ExpenseCategories)),
		DonationCount:      len(donations),
		ExpenseCount:       len(expenses),
	}
	for _, category := range models.ExpenseCategories {
		report.ExpensesByCategory[category] = decimal.Zero
	}

	for _, d := range donations {
		switch d.Type {
		case models.DonationUang:
			if d.Amount != nil {
				report.DonationsByType.Uang = report.DonationsByType.Uang.Add(*d.Amount)
			}
		case models.DonationBarang:
			if d.ItemQuantity != nil {
				report.DonationsByType.Barang += int64(*d.ItemQuantity)
			}
		}
	}
	report.TotalDonations = report.DonationsByType.Uang

	for _, e := range expenses {
		report.TotalExpenses = report.TotalExpenses.Add(e.Amount)
		report.ExpensesByCategory[e.Category] = report.ExpensesByCategory[e.Category].Add(e.Amount)
	}
	report.Balance = report.TotalDonations.Sub(report.TotalExpenses)
	return report
}
