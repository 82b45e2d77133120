package services

import (
	"context"

	"github.com/appdotbuilder/panti-asuhan-manajemen-sub000/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const expenseColumns = `id, category, description, CAST(amount AS TEXT) AS amount,
CAST(expense_date AS TEXT) AS expense_date, receipt_url, notes, created_by, created_at`

func CreateExpense(ctx context.Context, db *sqlx.DB, in models.CreateExpenseInput) (models.Expense, error) {
	if err := in.Validate(); err != nil {
		return models.Expense{}, err
	}
	id := uuid.NewString()
	var expense models.Expense
	err := inTx(ctx, db, func(tx *sqlx.Tx) error {
		if err := ensureExists(ctx, tx, "users", "user", in.CreatedBy); err != nil {
			return err
		}
		_, err := execx(ctx, tx, `
INSERT INTO expenses (id, category, description, amount, expense_date, receipt_url, notes, created_by, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			id, string(in.Category), in.Description, formatAmount(in.Amount), formatDate(in.ExpenseDate),
			in.ReceiptURL, in.Notes, in.CreatedBy, now())
		if err != nil {
			return asConstraintError(err, "insert expense")
		}
		expense, err = loadExpense(ctx, tx, id)
		return err
	})
	return expense, err
}

// GetExpensesByDateRange returns expenses dated within the inclusive window,
// optionally limited to one category, in date order.
func GetExpensesByDateRange(ctx context.Context, db *sqlx.DB, q models.ExpenseQuery) ([]models.Expense, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE expense_date >= ? AND expense_date <= ?`
	args := []interface{}{formatDate(q.StartDate), formatDate(q.EndDate)}
	if q.Category != nil {
		query += ` AND category = ?`
		args = append(args, string(*q.Category))
	}
	query += ` ORDER BY expense_date ASC, created_at ASC, id ASC`

	rows := []expenseRow{}
	if err := selectx(ctx, db, &rows, query, args...); err != nil {
		return nil, WrapError(err, "list expenses")
	}
	return convertRows(rows, expenseRow.toModel)
}

func loadExpense(ctx context.Context, q sqlx.ExtContext, id string) (models.Expense, error) {
	var row expenseRow
	if err := getx(ctx, q, &row, `SELECT `+expenseColumns+` FROM expenses WHERE id = ?`, id); err != nil {
		return models.Expense{}, notFoundOr(err, "expense", id)
	}
	return row.toModel()
}
