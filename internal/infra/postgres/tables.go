package postgres

import (
	"context"
	"errors"

	"tablebook/internal/domain/booking"
	"tablebook/internal/infra"
	"tablebook/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01"
)

type TableRepository struct {
	pool *pgxpool.Pool
}

func NewTableRepository(pool *pgxpool.Pool) *TableRepository {
	return &TableRepository{pool: pool}
}

func (r *TableRepository) Create(ctx context.Context, table *booking.Table) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO tables (id, number, places, is_vip, min_order) VALUES ($1,$2,$3,$4,$5)`,
		table.ID(), table.Number(), table.Places(), table.IsVip(), table.MinOrder(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return infra.WrapRepoErr("table already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert table", err)
	}
	return nil
}

func (r *TableRepository) FindByNumber(ctx context.Context, number int) (*readmodel.TableRM, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, number, places, is_vip, min_order FROM tables WHERE number=$1`, number)

	var rm readmodel.TableRM
	if err := row.Scan(&rm.ID, &rm.Number, &rm.Places, &rm.IsVip, &rm.MinOrder); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("table not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find table by number", err)
	}
	return &rm, nil
}

func (r *TableRepository) List(ctx context.Context) ([]*readmodel.TableRM, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, number, places, is_vip, min_order FROM tables ORDER BY number`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list tables", err)
	}
	defer rows.Close()

	var tables []*readmodel.TableRM
	for rows.Next() {
		var rm readmodel.TableRM
		if err := rows.Scan(&rm.ID, &rm.Number, &rm.Places, &rm.IsVip, &rm.MinOrder); err != nil {
			return nil, infra.WrapRepoErr("failed to scan table row", err)
		}
		tables = append(tables, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate tables", err)
	}
	return tables, nil
}
