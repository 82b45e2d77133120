package services

import (
	"context"

	"github.com/appdotbuilder/panti-asuhan-manajemen-sub000/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const childColumns = `id, full_name, CAST(birth_date AS TEXT) AS birth_date, gender, education_status,
health_history, guardian_info, notes, is_active, created_at, updated_at`

// CreateChild registers a child as active with no update timestamp.
func CreateChild(ctx context.Context, db *sqlx.DB, in models.CreateChildInput) (models.Child, error) {
	if err := in.Validate(); err != nil {
		return models.Child{}, err
	}
	id := uuid.NewString()
	var child models.Child
	err := inTx(ctx, db, func(tx *sqlx.Tx) error {
		_, err := execx(ctx, tx, `
INSERT INTO children (id, full_name, birth_date, gender, education_status, health_history, guardian_info, notes, is_active, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			id, in.FullName, formatDate(in.BirthDate), string(in.Gender), string(in.EducationStatus),
			in.HealthHistory, in.GuardianInfo, in.Notes, true, now())
		if err != nil {
			return asConstraintError(err, "insert child")
		}
		child, err = loadChild(ctx, tx, id)
		return err
	})
	return child, err
}

// GetChildren lists active children, oldest registration first.
func GetChildren(ctx context.Context, db *sqlx.DB) ([]models.Child, error) {
	rows := []childRow{}
	if err := selectx(ctx, db, &rows, `SELECT `+childColumns+` FROM children WHERE is_active = ? ORDER BY created_at ASC, id ASC`, true); err != nil {
		return nil, WrapError(err, "list children")
	}
	return convertRows(rows, childRow.toModel)
}

func GetChild(ctx context.Context, db *sqlx.DB, id string) (models.Child, error) {
	return loadChild(ctx, db, id)
}

func loadChild(ctx context.Context, q sqlx.ExtContext, id string) (models.Child, error) {
	var row childRow
	if err := getx(ctx, q, &row, `SELECT `+childColumns+` FROM children WHERE id = ?`, id); err != nil {
		return models.Child{}, notFoundOr(err, "child", id)
	}
	return row.toModel()
}

// UpdateChild applies the present fields of in to the stored child and stamps updated_at.
// Deactivation goes through here too: set is_active to false.
func UpdateChild(ctx context.Context, db *sqlx.DB, in models.UpdateChildInput) (models.Child, error) {
	if err := in.Validate(); err != nil {
		return models.Child{}, err
	}
	var child models.Child
	err := inTx(ctx, db, func(tx *sqlx.Tx) error {
		current, err := loadChild(ctx, tx, in.ID)
		if err != nil {
			return err
		}
		merged := current
		merged.FullName = models.Merge(in.FullName, current.FullName)
		merged.BirthDate = models.Merge(in.BirthDate, current.BirthDate)
		merged.Gender = models.Merge(in.Gender, current.Gender)
		merged.EducationStatus = models.Merge(in.EducationStatus, current.EducationStatus)
		merged.HealthHistory = models.MergeNullable(in.HealthHistory, current.HealthHistory)
		merged.GuardianInfo = models.MergeNullable(in.GuardianInfo, current.GuardianInfo)
		merged.Notes = models.MergeNullable(in.Notes, current.Notes)
		merged.IsActive = models.Merge(in.IsActive, current.IsActive)

		_, err = execx(ctx, tx, `
UPDATE children
SET full_name = ?, birth_date = ?, gender = ?, education_status = ?, health_history = ?,
    guardian_info = ?, notes = ?, is_active = ?, updated_at = ?
WHERE id = ?`,
			merged.FullName, formatDate(merged.BirthDate), string(merged.Gender), string(merged.EducationStatus),
			merged.HealthHistory, merged.GuardianInfo, merged.Notes, merged.IsActive, now(), in.ID)
		if err != nil {
			return asConstraintError(err, "update child")
		}
		child, err = loadChild(ctx, tx, in.ID)
		return err
	})
	return child, err
}
