package services

import (
	"context"

	"github.com/appdotbuilder/panti-asuhan-manajemen-sub000/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const donationColumns = `id, donor_id, type, CAST(amount AS TEXT) AS amount, item_description, item_quantity,
CAST(donation_date AS TEXT) AS donation_date, notes, created_at`

// CreateDonation records a money or goods donation from an existing donor.
func CreateDonation(ctx context.Context, db *sqlx.DB, in models.CreateDonationInput) (models.Donation, error) {
	if err := in.Validate(); err != nil {
		return models.Donation{}, err
	}
	id := uuid.NewString()
	var donation models.Donation
	err := inTx(ctx, db, func(tx *sqlx.Tx) error {
		if err := ensureExists(ctx, tx, "donors", "donor", in.DonorID); err != nil {
			return err
		}
		_, err := execx(ctx, tx, `
INSERT INTO donations (id, donor_id, type, amount, item_description, item_quantity, donation_date, notes, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			id, in.DonorID, string(in.Type), formatNullableAmount(in.Amount), in.ItemDescription, in.ItemQuantity,
			formatDate(in.DonationDate), in.Notes, now())
		if err != nil {
			return asConstraintError(err, "insert donation")
		}
		donation, err = loadDonation(ctx, tx, id)
		return err
	})
	return donation, err
}

// GetDonationsByDateRange returns donations dated within the inclusive window,
// optionally for one donor, in date order.
func GetDonationsByDateRange(ctx context.Context, db *sqlx.DB, q models.DonationQuery) ([]models.Donation, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	query := `SELECT ` + donationColumns + ` FROM donations WHERE donation_date >= ? AND donation_date <= ?`
	args := []interface{}{formatDate(q.StartDate), formatDate(q.EndDate)}
	if q.DonorID != nil {
		query += ` AND donor_id = ?`
		args = append(args, *q.DonorID)
	}
	query += ` ORDER BY donation_date ASC, created_at ASC, id ASC`

	rows := []donationRow{}
	if err := selectx(ctx, db, &rows, query, args...); err != nil {
		return nil, WrapError(err, "list donations")
	}
	return convertRows(rows, donationRow.toModel)
}

func loadDonation(ctx context.Context, q sqlx.ExtContext, id string) (models.Donation, error) {
	var row donationRow
	if err := getx(ctx, q, &row, `SELECT `+donationColumns+` FROM donations WHERE id = ?`, id); err != nil {
		return models.Donation{}, notFoundOr(err, "donation", id)
	}
	return row.toModel()
}
