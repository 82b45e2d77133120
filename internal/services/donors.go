package services

import (
	"context"

	"github.com/appdotbuilder/panti-asuhan-manajemen-sub000/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const donorColumns = `id, full_name, email, phone, address, user_id, created_at, updated_at`

// CreateDonor records a donor, optionally linked to an existing user account.
func CreateDonor(ctx context.Context, db *sqlx.DB, in models.CreateDonorInput) (models.Donor, error) {
	if err := in.Validate(); err != nil {
		return models.Donor{}, err
	}
	id := uuid.NewString()
	var donor models.Donor
	err := inTx(ctx, db, func(tx *sqlx.Tx) error {
		if in.UserID != nil {
			if err := ensureExists(ctx, tx, "users", "user", *in.UserID); err != nil {
				return err
			}
		}
		_, err := execx(ctx, tx, `
INSERT INTO donors (id, full_name, email, phone, address, user_id, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
			id, in.FullName, in.Email, in.Phone, in.Address, in.UserID, now())
		if err != nil {
			return asConstraintError(err, "insert donor")
		}
		donor, err = loadDonor(ctx, tx, id)
		return err
	})
	return donor, err
}

// GetDonors lists every donor, oldest first.
func GetDonors(ctx context.Context, db *sqlx.DB) ([]models.Donor, error) {
	donors := []models.Donor{}
	if err := selectx(ctx, db, &donors, `SELECT `+donorColumns+` FROM donors ORDER BY created_at ASC, id ASC`); err != nil {
		return nil, WrapError(err, "list donors")
	}
	for i := range donors {
		normalizeDonor(&donors[i])
	}
	return donors, nil
}

func loadDonor(ctx context.Context, q sqlx.ExtContext, id string) (models.Donor, error) {
	var donor models.Donor
	if err := getx(ctx, q, &donor, `SELECT `+donorColumns+` FROM donors WHERE id = ?`, id); err != nil {
		return models.Donor{}, notFoundOr(err, "donor", id)
	}
	normalizeDonor(&donor)
	return donor, nil
}

func normalizeDonor(d *models.Donor) {
	d.CreatedAt = d.CreatedAt.UTC()
	d.UpdatedAt = utcPtr(d.UpdatedAt)
}
