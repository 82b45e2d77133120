package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/appdotbuilder/panti-asuhan-manajemen-sub000/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const userColumns = `id, username, email, password_hash, full_name, phone, role, is_active, created_at, updated_at`

// CreateUser stores a new account with an argon2id password hash.
// Username and email must be unused; a clash is a *ConstraintError.
func CreateUser(ctx context.Context, db *sqlx.DB, tokens TokenService, in models.CreateUserInput) (models.User, error) {
	if err := in.Validate(); err != nil {
		return models.User{}, err
	}
	hash, err := tokens.HashPassword(in.Password)
	if err != nil {
		return models.User{}, WrapError(err, "hash password")
	}
	id := uuid.NewString()
	email := strings.ToLower(strings.TrimSpace(in.Email))

	var user models.User
	err = inTx(ctx, db, func(tx *sqlx.Tx) error {
		if err := ensureUnique(ctx, tx, "username", in.Username); err != nil {
			return err
		}
		if err := ensureUnique(ctx, tx, "email", email); err != nil {
			return err
		}
		_, err := execx(ctx, tx, `
INSERT INTO users (id, username, email, password_hash, full_name, phone, role, is_active, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			id, in.Username, email, hash, in.FullName, in.Phone, string(in.Role), true, now())
		if err != nil {
			return asConstraintError(err, "insert user")
		}
		user, err = loadUser(ctx, tx, `id = ?`, id)
		return err
	})
	return user, err
}

func ensureUnique(ctx context.Context, q sqlx.ExtContext, column, value string) error {
	var taken bool
	if err := getx(ctx, q, &taken, `SELECT EXISTS(SELECT 1 FROM users WHERE `+column+` = ?)`, value); err != nil {
		return WrapError(err, "check "+column)
	}
	if taken {
		return &ConstraintError{
			Constraint: "users_" + column + "_key",
			Message:    fmt.Sprintf("%s %q is already registered", column, value),
		}
	}
	return nil
}

func GetUser(ctx context.Context, db sqlx.ExtContext, id string) (models.User, error) {
	user, err := loadUser(ctx, db, `id = ?`, id)
	if err != nil {
		return models.User{}, notFoundOr(err, "user", id)
	}
	return user, nil
}

func GetUserByUsername(ctx context.Context, db sqlx.ExtContext, username string) (models.User, error) {
	user, err := loadUser(ctx, db, `username = ?`, username)
	if err != nil {
		return models.User{}, notFoundOr(err, "user", username)
	}
	return user, nil
}

func loadUser(ctx context.Context, q sqlx.ExtContext, where string, arg interface{}) (models.User, error) {
	var user models.User
	if err := getx(ctx, q, &user, `SELECT `+userColumns+` FROM users WHERE `+where, arg); err != nil {
		return models.User{}, err
	}
	user.CreatedAt = user.CreatedAt.UTC()
	user.UpdatedAt = utcPtr(user.UpdatedAt)
	return user, nil
}

// UserListQuery selects one page of accounts. Page is 1-based; Search matches
// username, email or full name case-insensitively.
type UserListQuery struct {
	Page     int
	PageSize int
	Search   string
}

// ListUsers returns one page of accounts ordered by creation time, plus the total count.
func ListUsers(ctx context.Context, db *sqlx.DB, q UserListQuery) ([]models.User, int, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 || q.PageSize > 100 {
		q.PageSize = 20
	}
	where := ""
	args := []interface{}{}
	if search := strings.ToLower(strings.TrimSpace(q.Search)); search != "" {
		where = ` WHERE lower(username) LIKE ? OR lower(email) LIKE ? OR lower(full_name) LIKE ?`
		pattern := "%" + search + "%"
		args = append(args, pattern, pattern, pattern)
	}
	var total int
	if err := getx(ctx, db, &total, `SELECT COUNT(*) FROM users`+where, args...); err != nil {
		return nil, 0, WrapError(err, "count users")
	}
	users := []models.User{}
	err := selectx(ctx, db, &users, `SELECT `+userColumns+` FROM users`+where+` ORDER BY created_at ASC, id ASC LIMIT ? OFFSET ?`,
		append(args, q.PageSize, (q.Page-1)*q.PageSize)...)
	if err != nil {
		return nil, 0, WrapError(err, "list users")
	}
	for i := range users {
		users[i].CreatedAt = users[i].CreatedAt.UTC()
		users[i].UpdatedAt = utcPtr(users[i].UpdatedAt)
	}
	return users, total, nil
}

// Authenticate resolves a username and password to an active account.
func Authenticate(ctx context.Context, db *sqlx.DB, tokens TokenService, username, password string) (models.User, error) {
	user, err := GetUserByUsername(ctx, db, strings.TrimSpace(username))
	if err != nil {
		var nf *NotFoundError
		if errors.As(err, &nf) {
			return models.User{}, ErrUnauthorized("invalid username or password")
		}
		return models.User{}, err
	}
	if !tokens.VerifyPassword(password, user.PasswordHash) {
		return models.User{}, ErrUnauthorized("invalid username or password")
	}
	if !user.IsActive {
		return models.User{}, ErrForbidden("account is disabled")
	}
	return user, nil
}

// ChangePassword replaces the password of userID after checking the current one.
func ChangePassword(ctx context.Context, db *sqlx.DB, tokens TokenService, userID, current, next string) error {
	if len(next) < 6 {
		return models.NewValidationError("new_password", "min", "must be at least 6 characters")
	}
	user, err := GetUser(ctx, db, userID)
	if err != nil {
		return err
	}
	if !tokens.VerifyPassword(current, user.PasswordHash) {
		return ErrUnauthorized("current password is incorrect")
	}
	hash, err := tokens.HashPassword(next)
	if err != nil {
		return WrapError(err, "hash password")
	}
	_, err = execx(ctx, db, `UPDATE users SET password_hash = ?, updated_at = ? WHERE id = ?`, hash, now(), userID)
	return WrapError(err, "update password")
}
