package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	createUserSQL = `
		INSERT INTO users (id, username, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, username, password_hash, created_at
	`
	getUserByUsernameSQL = `
		SELECT id, username, password_hash, created_at
		FROM users WHERE username = $1
	`
	getUserByIDSQL = `
		SELECT id, username, password_hash, created_at
		FROM users WHERE id = $1
	`
)

// UserStore persists accounts. Passwords arrive already hashed: internal/auth
// owns the bcrypt call, this package only stores the result.
type UserStore struct {
	db *DB
}

func NewUserStore(db *DB) *UserStore {
	return &UserStore{db: db}
}

func scanUser(scan func(dest ...any) error) (*User, error) {
	var u User
	if err := scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *UserStore) Create(username, passwordHash string) (*User, error) {
	ctx, cancel := dbContext()
	defer cancel()

	id := uuid.New().String()
	u, err := scanUser(s.db.Pool.QueryRow(ctx, createUserSQL, id, username, passwordHash).Scan)
	if err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrUsernameExists
		}
		return nil, fmt.Errorf("store: failed to create user: %w", err)
	}
	return u, nil
}

func (s *UserStore) GetByUsername(username string) (*User, error) {
	ctx, cancel := dbContext()
	defer cancel()

	u, err := scanUser(s.db.Pool.QueryRow(ctx, getUserByUsernameSQL, username).Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("store: failed to get user: %w", err)
	}
	return u, nil
}

func (s *UserStore) GetByID(id string) (*User, error) {
	ctx, cancel := dbContext()
	defer cancel()

	u, err := scanUser(s.db.Pool.QueryRow(ctx, getUserByIDSQL, id).Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("store: failed to get user: %w", err)
	}
	return u, nil
}

func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "23505") || strings.Contains(errStr, "duplicate key")
}
