package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Queries are written with ? placeholders and rebound for the active driver.

func getx(ctx context.Context, q sqlx.ExtContext, dest interface{}, query string, args ...interface{}) error {
	return sqlx.GetContext(ctx, q, dest, q.Rebind(query), args...)
}

func selectx(ctx context.Context, q sqlx.ExtContext, dest interface{}, query string, args ...interface{}) error {
	return sqlx.SelectContext(ctx, q, dest, q.Rebind(query), args...)
}

func execx(ctx context.Context, q sqlx.ExtContext, query string, args ...interface{}) (sql.Result, error) {
	return q.ExecContext(ctx, q.Rebind(query), args...)
}

func inTx(ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return WrapError(err, "begin tx")
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return asConstraintError(err, "commit tx")
	}
	return nil
}

// ensureExists returns *NotFoundError when table has no row with id.
func ensureExists(ctx context.Context, q sqlx.ExtContext, table, entity, id string) error {
	var found bool
	if err := getx(ctx, q, &found, `SELECT EXISTS(SELECT 1 FROM `+table+` WHERE id = ?)`, id); err != nil {
		return WrapError(err, fmt.Sprintf("lookup %s", entity))
	}
	if !found {
		return &NotFoundError{Entity: entity, ID: id}
	}
	return nil
}

func notFoundOr(err error, entity, id string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return &NotFoundError{Entity: entity, ID: id}
	}
	return WrapError(err, "load "+entity)
}
