package postgres

import (
	"context"
	"errors"

	"tablebook/internal/domain/user"
	"tablebook/internal/infra"
	"tablebook/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, first_name, last_name, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6)`,
		u.ID(), u.Email().String(), u.PasswordHash(), u.FirstName(), u.LastName(), u.CreatedAt(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert user", err)
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*readmodel.UserRM, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, email, password_hash, first_name, last_name, created_at FROM users WHERE email=$1`, email)

	var rm readmodel.UserRM
	if err := row.Scan(&rm.ID, &rm.Email, &rm.PasswordHash, &rm.FirstName, &rm.LastName, &rm.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	return &rm, nil
}
