package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/appdotbuilder/panti-asuhan-manajemen-sub000/internal/db"
	"github.com/appdotbuilder/panti-asuhan-manajemen-sub000/internal/migrations"
	"github.com/appdotbuilder/panti-asuhan-manajemen-sub000/internal/models"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

var testTokens = TokenService{
	Secret:     []byte("test-secret-0123456789"),
	Issuer:     "panti-test",
	AccessTTL:  15 * time.Minute,
	RefreshTTL: time.Hour,
}

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	database, err := db.Open(db.DriverSQLite, filepath.Join(t.TempDir(), "panti.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	if err := migrations.Apply(database, db.DriverSQLite); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return database
}

func seedUser(t *testing.T, database *sqlx.DB, username string) models.User {
	t.Helper()
	user, err := CreateUser(context.Background(), database, testTokens, models.CreateUserInput{
		Username: username,
		Email:    username + "@panti.test",
		Password: "rahasia123",
		FullName: "Pengurus " + username,
		Role:     models.RolePengurus,
	})
	if err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
	return user
}

func seedDonor(t *testing.T, database *sqlx.DB, name string) models.Donor {
	t.Helper()
	donor, err := CreateDonor(context.Background(), database, models.CreateDonorInput{FullName: name})
	if err != nil {
		t.Fatalf("seed donor %s: %v", name, err)
	}
	return donor
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func day(s string) models.Date {
	d, err := models.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func window(start, end string) models.DateRangeInput {
	return models.DateRangeInput{StartDate: day(start), EndDate: day(end)}
}

func wantNotFound(t *testing.T, err error, entity, id string) {
	t.Helper()
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected *NotFoundError, got %T: %v", err, err)
	}
	if nf.Entity != entity || nf.ID != id {
		t.Fatalf("not found names %s %s, want %s %s", nf.Entity, nf.ID, entity, id)
	}
}

func wantValidation(t *testing.T, err error, field string) {
	t.Helper()
	var verr *models.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *models.ValidationError, got %T: %v", err, err)
	}
	if !verr.Has(field) {
		t.Fatalf("validation error lacks field %s: %v", field, verr)
	}
}

// stepClock makes now advance one second per call so creation order is stable.
func stepClock(t *testing.T, start time.Time) {
	t.Helper()
	prev := now
	current := start.UTC()
	now = func() time.Time {
		current = current.Add(time.Second)
		return current
	}
	t.Cleanup(func() { now = prev })
}
