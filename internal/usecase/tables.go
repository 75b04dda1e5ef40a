package usecase

import (
	"context"
	"time"

	"tablebook/internal/domain/booking"
	"tablebook/internal/infra"
	"tablebook/internal/pkg/errs"
	"tablebook/internal/usecase/readmodel"
)

// TableRepository is the catalog collaborator. Number is the booking key;
// ID is the administrative identity checked for duplicates on create.
type TableRepository interface {
	FindByNumber(ctx context.Context, number int) (*readmodel.TableRM, error)
	List(ctx context.Context) ([]*readmodel.TableRM, error)
	Create(ctx context.Context, table *booking.Table) error
}

type CreateTableParams struct {
	ID       int
	Number   int
	Places   int
	IsVip    bool
	MinOrder *int
}

// Validate reports the first missing or malformed field; it never attempts
// partial acceptance.
func (p CreateTableParams) Validate() error {
	switch {
	case p.ID <= 0:
		return validationError("id", "must be a positive number")
	case p.Number <= 0:
		return validationError("number", "must be a positive number")
	case p.Places <= 0:
		return validationError("places", "must be a positive number")
	case p.MinOrder != nil && *p.MinOrder < 0:
		return validationError("minOrder", "cannot be negative")
	}
	return nil
}

type TablesUseCase interface {
	List(ctx context.Context) ([]*readmodel.TableRM, error)
	Create(ctx context.Context, params CreateTableParams) (int, error)
	GetByNumber(ctx context.Context, number int) (*readmodel.TableRM, error)
}

type tablesUseCaseImpl struct {
	tableRepo    TableRepository
	storeTimeout time.Duration
}

func NewTablesUseCase(tableRepo TableRepository, storeTimeout time.Duration) TablesUseCase {
	return &tablesUseCaseImpl{
		tableRepo:    tableRepo,
		storeTimeout: storeTimeout,
	}
}

func (u *tablesUseCaseImpl) List(ctx context.Context) ([]*readmodel.TableRM, error) {
	ctx, cancel := context.WithTimeout(ctx, u.storeTimeout)
	defer cancel()

	tables, err := u.tableRepo.List(ctx)
	if err != nil {
		return nil, classifyStoreErr(err, "failed to list tables")
	}
	return tables, nil
}

func (u *tablesUseCaseImpl) Create(ctx context.Context, params CreateTableParams) (int, error) {
	if err := params.Validate(); err != nil {
		return 0, err
	}

	table, err := booking.NewTable(params.ID, params.Number, params.Places, params.IsVip, params.MinOrder)
	if err != nil {
		return 0, errs.Mark(err, ErrValidation)
	}

	ctx, cancel := context.WithTimeout(ctx, u.storeTimeout)
	defer cancel()

	if err := u.tableRepo.Create(ctx, table); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return 0, ErrTableAlreadyExists
		}
		return 0, classifyStoreErr(err, "failed to create table")
	}

	return table.ID(), nil
}

func (u *tablesUseCaseImpl) GetByNumber(ctx context.Context, number int) (*readmodel.TableRM, error) {
	ctx, cancel := context.WithTimeout(ctx, u.storeTimeout)
	defer cancel()

	table, err := u.tableRepo.FindByNumber(ctx, number)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTableNotFound
		}
		return nil, classifyStoreErr(err, "failed to find table")
	}
	return table, nil
}

func validationError(field, reason string) error {
	return errs.Mark(errs.Newf("%s: %s", field, reason), ErrValidation)
}

// classifyStoreErr maps collaborator failures onto the taxonomy: timeouts
// surface as DependencyUnavailable (retryable by the caller, never here),
// everything else as a database operation failure.
func classifyStoreErr(err error, msg string) error {
	if infra.IsKind(err, infra.KindUnavailable) {
		return errs.Mark(errs.Wrap(err, msg), ErrDependencyUnavailable)
	}
	return errs.Mark(errs.Wrap(err, msg), ErrDatabaseOperationFailed)
}
