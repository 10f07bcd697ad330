package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dukerupert/orderflow/internal/domain"
)

// UserRepository is a PostgreSQL-backed user store.
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a PostgreSQL-backed user repository.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (*domain.User, error) {
	const op = "postgres.user.create"

	var (
		id        int64
		createdAt time.Time
	)
	err := r.pool.QueryRow(ctx, `
		INSERT INTO users (name, email, password_hash, created_at)
		VALUES ($1, $2, $3, now())
		RETURNING id, created_at`,
		user.Name.String(), strings.ToLower(user.Email.String()), user.PasswordHash,
	).Scan(&id, &createdAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.Conflict(op, "email is already registered")
		}
		return nil, domain.Internal(err, op, "failed to insert user")
	}

	user.ID = id
	user.CreatedAt = createdAt
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	const op = "postgres.user.find"

	var (
		id           int64
		name         string
		storedEmail  string
		passwordHash string
		createdAt    time.Time
	)
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, email, password_hash, created_at
		FROM users WHERE email = $1`, strings.ToLower(email)).
		Scan(&id, &name, &storedEmail, &passwordHash, &createdAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.NotFound(op, "user", email)
	}
	if err != nil {
		return nil, domain.Internal(err, op, "failed to load user")
	}

	personName, err := domain.NewPersonName(name)
	if err != nil {
		return nil, domain.Internal(err, op, "stored user name is invalid")
	}
	address, err := domain.NewEmailAddress(storedEmail)
	if err != nil {
		return nil, domain.Internal(err, op, "stored email is invalid")
	}

	return &domain.User{
		ID:           id,
		Name:         personName,
		Email:        address,
		PasswordHash: passwordHash,
		CreatedAt:    createdAt,
	}, nil
}
