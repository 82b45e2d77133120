package services

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/appdotbuilder/panti-asuhan-manajemen-sub000/internal/models"
	"golang.org/x/crypto/bcrypt"
)

func TestCreateUser(t *testing.T) {
	database := newTestDB(t)
	ctx := context.Background()

	user, err := CreateUser(ctx, database, testTokens, models.CreateUserInput{
		Username: "siti",
		Email:    "Siti@Panti.Test",
		Password: "rahasia123",
		FullName: "Siti Aminah",
		Phone:    strPtr("08123"),
		Role:     models.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if user.ID == "" || !user.IsActive || user.UpdatedAt != nil {
		t.Fatalf("unexpected server fields: %+v", user)
	}
	if user.Email != "siti@panti.test" {
		t.Fatalf("email not normalised: %s", user.Email)
	}
	if user.PasswordHash == "rahasia123" || !strings.HasPrefix(user.PasswordHash, "$argon2id$") {
		t.Fatalf("password stored in clear or wrong scheme: %s", user.PasswordHash)
	}
	if user.Phone == nil || *user.Phone != "08123" {
		t.Fatalf("phone = %v", user.Phone)
	}

	got, err := GetUser(ctx, database, user.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Username != "siti" || got.Role != models.RoleAdmin {
		t.Fatalf("reloaded user mismatch: %+v", got)
	}
}

func TestCreateUserRejectsDuplicates(t *testing.T) {
	database := newTestDB(t)
	seedUser(t, database, "budi")

	tests := []struct {
		name       string
		in         models.CreateUserInput
		constraint string
	}{
		{
			name:       "username",
			in:         models.CreateUserInput{Username: "budi", Email: "other@panti.test", Password: "rahasia123", FullName: "Budi", Role: models.RoleDonatur},
			constraint: "users_username_key",
		},
		{
			name:       "email case insensitive",
			in:         models.CreateUserInput{Username: "budi2", Email: "BUDI@panti.test", Password: "rahasia123", FullName: "Budi", Role: models.RoleDonatur},
			constraint: "users_email_key",
		},
	}
	for _, tt := range tests {
		_, err := CreateUser(context.Background(), database, testTokens, tt.in)
		var cerr *ConstraintError
		if !errors.As(err, &cerr) {
			t.Fatalf("%s: expected *ConstraintError, got %T: %v", tt.name, err, err)
		}
		if cerr.Constraint != tt.constraint {
			t.Fatalf("%s: constraint = %s, want %s", tt.name, cerr.Constraint, tt.constraint)
		}
	}
}

func TestCreateUserValidates(t *testing.T) {
	database := newTestDB(t)
	_, err := CreateUser(context.Background(), database, testTokens, models.CreateUserInput{
		Username: "ab",
		Email:    "not-an-email",
		Password: "123",
		FullName: "X",
		Role:     models.RoleAdmin,
	})
	wantValidation(t, err, "username")
	wantValidation(t, err, "email")
	wantValidation(t, err, "password")
}

func TestGetUserNotFound(t *testing.T) {
	database := newTestDB(t)
	_, err := GetUser(context.Background(), database, "0b7d3c1a-8a0e-4d55-9c1b-2f4f5d6e7a8b")
	wantNotFound(t, err, "user", "0b7d3c1a-8a0e-4d55-9c1b-2f4f5d6e7a8b")
}

func TestAuthenticate(t *testing.T) {
	database := newTestDB(t)
	ctx := context.Background()
	user := seedUser(t, database, "rina")

	got, err := Authenticate(ctx, database, testTokens, " rina ", "rahasia123")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if got.ID != user.ID {
		t.Fatalf("authenticated %s, want %s", got.ID, user.ID)
	}

	tests := []struct {
		name     string
		username string
		password string
		status   int
	}{
		{"wrong password", "rina", "salah", http.StatusUnauthorized},
		{"unknown user", "nobody", "rahasia123", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		_, err := Authenticate(ctx, database, testTokens, tt.username, tt.password)
		var serr ServiceError
		if !errors.As(err, &serr) || serr.Status != tt.status {
			t.Fatalf("%s: got %v, want status %d", tt.name, err, tt.status)
		}
	}

	if _, err := database.ExecContext(ctx, `UPDATE users SET is_active = 0 WHERE id = ?`, user.ID); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	_, err = Authenticate(ctx, database, testTokens, "rina", "rahasia123")
	var serr ServiceError
	if !errors.As(err, &serr) || serr.Status != http.StatusForbidden {
		t.Fatalf("inactive account: got %v, want 403", err)
	}
}

func TestListUsers(t *testing.T) {
	database := newTestDB(t)
	for _, name := range []string{"andi", "bayu", "citra", "dewi", "eko"} {
		seedUser(t, database, name)
	}
	ctx := context.Background()

	users, total, err := ListUsers(ctx, database, UserListQuery{Page: 2, PageSize: 2})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 5 || len(users) != 2 {
		t.Fatalf("total=%d len=%d, want 5 and 2", total, len(users))
	}
	if users[0].Username != "citra" || users[1].Username != "dewi" {
		t.Fatalf("page 2 = %s,%s", users[0].Username, users[1].Username)
	}

	users, total, err = ListUsers(ctx, database, UserListQuery{Search: "DEW"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if total != 1 || len(users) != 1 || users[0].Username != "dewi" {
		t.Fatalf("search returned %d/%d: %+v", len(users), total, users)
	}
}

func TestTokenService(t *testing.T) {
	user := models.User{ID: "u-1", Username: "siti", Role: models.RolePengurus}
	pair, err := testTokens.IssuePair(user)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := testTokens.ParseToken(pair.AccessToken, TokenTypeAccess)
	if err != nil {
		t.Fatalf("parse access: %v", err)
	}
	if claims.Subject != "u-1" || claims.Role != models.RolePengurus || claims.Username != "siti" {
		t.Fatalf("claims = %+v", claims)
	}
	if _, err := testTokens.ParseToken(pair.AccessToken, TokenTypeRefresh); err == nil {
		t.Fatalf("access token accepted as refresh token")
	}
	if _, err := testTokens.ParseToken(pair.RefreshToken, TokenTypeRefresh); err != nil {
		t.Fatalf("parse refresh: %v", err)
	}

	other := testTokens
	other.Secret = []byte("another-secret-0123456789")
	if _, err := other.ParseToken(pair.AccessToken, TokenTypeAccess); err == nil {
		t.Fatalf("token verified with the wrong secret")
	}
	other = testTokens
	other.Issuer = "someone-else"
	if _, err := other.ParseToken(pair.AccessToken, TokenTypeAccess); err == nil {
		t.Fatalf("token verified with the wrong issuer")
	}

	expired := testTokens
	expired.AccessTTL = -time.Minute
	stale, _, err := expired.CreateAccessToken(user)
	if err != nil {
		t.Fatalf("create expired: %v", err)
	}
	if _, err := testTokens.ParseToken(stale, TokenTypeAccess); err == nil {
		t.Fatalf("expired token accepted")
	}
}

func TestVerifyPassword(t *testing.T) {
	hashed, err := testTokens.HashPassword("rahasia123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	legacy, err := bcrypt.GenerateFromPassword([]byte("rahasia123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	tests := []struct {
		hash string
		raw  string
		want bool
	}{
		{hashed, "rahasia123", true},
		{hashed, "rahasia124", false},
		{string(legacy), "rahasia123", true},
		{string(legacy), "nope", false},
		{"garbage", "rahasia123", false},
	}
	for i, tt := range tests {
		if got := testTokens.VerifyPassword(tt.raw, tt.hash); got != tt.want {
			t.Fatalf("case %d: VerifyPassword = %v, want %v", i, got, tt.want)
		}
	}
}

func TestChangePassword(t *testing.T) {
	database := newTestDB(t)
	ctx := context.Background()
	user := seedUser(t, database, "gita")

	var serr ServiceError
	if err := ChangePassword(ctx, database, testTokens, user.ID, "salah", "barubaru"); !errors.As(err, &serr) || serr.Status != http.StatusUnauthorized {
		t.Fatalf("wrong current password: %v", err)
	}
	wantValidation(t, ChangePassword(ctx, database, testTokens, user.ID, "rahasia123", "123"), "new_password")

	if err := ChangePassword(ctx, database, testTokens, user.ID, "rahasia123", "barubaru"); err != nil {
		t.Fatalf("change: %v", err)
	}
	if _, err := Authenticate(ctx, database, testTokens, "gita", "barubaru"); err != nil {
		t.Fatalf("login with new password: %v", err)
	}
	if _, err := Authenticate(ctx, database, testTokens, "gita", "rahasia123"); err == nil {
		t.Fatalf("old password still accepted")
	}
}
