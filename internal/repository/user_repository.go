package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	guuid "github.com/google/uuid"

	"github.com/bookform/bookform-api/internal/model"
	"github.com/bookform/bookform-api/internal/utils"
)

// UserRepository declares the persistence capabilities the core needs from
// a user store. Inputs are value objects and entities only: validation has
// already happened by the time a call reaches this layer. Any storage
// engine conforming to this contract is interchangeable.
type UserRepository interface {
	// SaveUser updates the row when the id already exists; otherwise it
	// inserts, but only after checking the email is not taken by a
	// different id (Conflict error otherwise).
	SaveUser(ctx context.Context, user model.User) error

	// SaveUserPassword stores the bcrypt hash of password on the row.
	SaveUserPassword(ctx context.Context, id model.Uuid, password model.Name) error

	// GetUsers lists non-removed users filtered by optional name/email
	// fragments and the status flag.
	GetUsers(ctx context.Context, name model.NameOptional, email model.NameOptional, status model.Bool) ([]model.User, error)

	// GetUserByID resolves a user or fails with a NotFound error.
	GetUserByID(ctx context.Context, id model.Uuid) (model.User, error)

	// GetUserByEmail is an optional lookup: nil when no user carries the
	// email. When excludeID is present, a row with that id is ignored.
	GetUserByEmail(ctx context.Context, email model.Name, excludeID model.UuidOptional) (*model.User, error)

	// GetUserByAccessToken resolves an active, non-removed user holding
	// the token, or fails with a NotFound error.
	GetUserByAccessToken(ctx context.Context, token model.Uuid) (model.User, error)

	// CreateAccessToken rotates the user's access token and returns the
	// new one. The previous token stops resolving.
	CreateAccessToken(ctx context.Context, id model.Uuid) (model.Uuid, error)

	// UpdateLastLogin stamps the row with the current time.
	UpdateLastLogin(ctx context.Context, id model.Uuid) error

	// ActiveRemoveUser soft-deletes the row.
	ActiveRemoveUser(ctx context.Context, id model.Uuid) error

	// CheckPassword compares plain against the stored hash. Any failure
	// (missing row, no hash set, mismatch) collapses into one opaque
	// incorrect-password error.
	CheckPassword(ctx context.Context, id model.Uuid, plain model.Name) error
}

// UserRepo is the MySQL adapter for UserRepository.
type UserRepo struct {
	DB   *sql.DB
	Cost int // bcrypt cost for stored passwords
}

func NewUserRepo(db *sql.DB, bcryptCost int) *UserRepo {
	return &UserRepo{DB: db, Cost: bcryptCost}
}

const userColumns = "id, name, status, email"

func scanUser(row *sql.Row) (model.User, error) {
	var p model.UserPrimitives
	if err := row.Scan(&p.ID, &p.Name, &p.Status, &p.Email); err != nil {
		return model.User{}, err
	}
	return model.UserFromPrimitives(p)
}

// SaveUser implements the upsert policy described on the interface.
func (r *UserRepo) SaveUser(ctx context.Context, user model.User) error {
	p := user.Primitives()

	var exists int
	err := r.DB.QueryRowContext(ctx,
		"SELECT 1 FROM users WHERE id=? LIMIT 1", p.ID).Scan(&exists)
	switch {
	case err == nil:
		_, err = r.DB.ExecContext(ctx,
			"UPDATE users SET name=?, email=?, status=? WHERE id=?",
			p.Name, p.Email, p.Status, p.ID)
		return err
	case !errors.Is(err, sql.ErrNoRows):
		return err
	}

	taken, err := r.GetUserByEmail(ctx, user.Email(), model.NoUuid())
	if err != nil {
		return err
	}
	if taken != nil {
		return model.NewConflictError("El email ya existe")
	}

	// New rows start with a fresh access token; the user obtains it by
	// logging in, which rotates it again.
	_, err = r.DB.ExecContext(ctx,
		"INSERT INTO users (id, name, email, status, access_token) VALUES (?,?,?,?,?)",
		p.ID, p.Name, p.Email, p.Status, guuid.NewString())
	if err != nil && strings.Contains(strings.ToLower(err.Error()), "1062") {
		return model.NewConflictError("El email ya existe")
	}
	return err
}

// SaveUserPassword hashes and stores the password.
func (r *UserRepo) SaveUserPassword(ctx context.Context, id model.Uuid, password model.Name) error {
	hash, err := utils.HashPassword(password.Value(), r.Cost)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx,
		"UPDATE users SET password=? WHERE id=?", hash, id.Value())
	return err
}

// GetUsers applies the optional name/email fragment filters the way the
// original dashboard does: match at the start or the end of the column.
func (r *UserRepo) GetUsers(ctx context.Context, name model.NameOptional, email model.NameOptional, status model.Bool) ([]model.User, error) {
	q := "SELECT " + userColumns + " FROM users WHERE status=? AND `remove`=FALSE"
	args := []interface{}{status.Value()}
	if name.Present() {
		q += " AND (name LIKE ? OR name LIKE ?)"
		args = append(args, name.Value()+"%", "%"+name.Value())
	}
	if email.Present() {
		q += " AND (email LIKE ? OR email LIKE ?)"
		args = append(args, email.Value()+"%", "%"+email.Value())
	}

	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var p model.UserPrimitives
		if err := rows.Scan(&p.ID, &p.Name, &p.Status, &p.Email); err != nil {
			return nil, err
		}
		u, err := model.UserFromPrimitives(p)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// GetUserByID fetches a user by id.
func (r *UserRepo) GetUserByID(ctx context.Context, id model.Uuid) (model.User, error) {
	u, err := scanUser(r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id=? LIMIT 1", id.Value()))
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, model.NewNotFoundError("usuario no encontrado")
	}
	return u, err
}

// GetUserByEmail fetches a user by email, skipping excludeID when present.
func (r *UserRepo) GetUserByEmail(ctx context.Context, email model.Name, excludeID model.UuidOptional) (*model.User, error) {
	q := "SELECT " + userColumns + " FROM users WHERE email=?"
	args := []interface{}{email.Value()}
	if excludeID.Present() {
		q += " AND id<>?"
		args = append(args, excludeID.Value())
	}
	u, err := scanUser(r.DB.QueryRowContext(ctx, q+" LIMIT 1", args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUserByAccessToken resolves the token to an active, non-removed user.
func (r *UserRepo) GetUserByAccessToken(ctx context.Context, token model.Uuid) (model.User, error) {
	u, err := scanUser(r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE access_token=? AND `remove`=FALSE AND status=TRUE LIMIT 1",
		token.Value()))
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, model.NewNotFoundError("token no encontrado")
	}
	return u, err
}

// CreateAccessToken rotates the stored token.
func (r *UserRepo) CreateAccessToken(ctx context.Context, id model.Uuid) (model.Uuid, error) {
	token, err := model.NewUuid(guuid.NewString())
	if err != nil {
		return model.Uuid{}, err
	}
	_, err = r.DB.ExecContext(ctx,
		"UPDATE users SET access_token=? WHERE id=?", token.Value(), id.Value())
	if err != nil {
		return model.Uuid{}, err
	}
	return token, nil
}

// UpdateLastLogin stamps the row in UTC.
func (r *UserRepo) UpdateLastLogin(ctx context.Context, id model.Uuid) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE users SET last_login=? WHERE id=?", time.Now().UTC(), id.Value())
	return err
}

// ActiveRemoveUser flips the soft-delete flag.
func (r *UserRepo) ActiveRemoveUser(ctx context.Context, id model.Uuid) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE users SET `remove`=TRUE WHERE id=?", id.Value())
	return err
}

// CheckPassword collapses every failure cause into the same opaque error
// so callers cannot tell a missing hash from a mismatch.
func (r *UserRepo) CheckPassword(ctx context.Context, id model.Uuid, plain model.Name) error {
	var hash sql.NullString
	err := r.DB.QueryRowContext(ctx,
		"SELECT password FROM users WHERE id=? LIMIT 1", id.Value()).Scan(&hash)
	if err != nil || !hash.Valid || hash.String == "" {
		return model.NewCredentialsError()
	}
	if !utils.VerifyPassword(hash.String, plain.Value()) {
		return model.NewCredentialsError()
	}
	return nil
}
