package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"tablebook/internal/domain/booking"
	"tablebook/internal/infra"
	"tablebook/internal/pkg/errs"
	"tablebook/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// ReservationRepository persists reservations. ListByTableAndDate returns
// the snapshot the overlap check runs against; no ordering is guaranteed.
type ReservationRepository interface {
	ListByTableAndDate(ctx context.Context, tableNumber int, date string) ([]*booking.Reservation, error)
	List(ctx context.Context) ([]*readmodel.ReservationRM, error)
	Create(ctx context.Context, reservation *booking.Reservation) error
}

// EventPublisher emits reservation lifecycle events. Publishing is
// best-effort: a failed publish never fails the booking.
type EventPublisher interface {
	ReservationCreated(ctx context.Context, reservation *readmodel.ReservationRM)
}

type CreateReservationParams struct {
	TableNumber   int
	ClientName    string
	PhoneNumber   string
	Date          string
	SlotTimeStart string
	SlotTimeEnd   string
}

// Validate reports the first missing or malformed field, before any
// collaborator is consulted.
func (p CreateReservationParams) Validate() error {
	if p.TableNumber <= 0 {
		return validationError("tableNumber", "must be a positive number")
	}
	if p.ClientName == "" {
		return validationError("clientName", "is required")
	}
	if p.PhoneNumber == "" {
		return validationError("phoneNumber", "is required")
	}
	if _, err := booking.NewDate(p.Date); err != nil {
		return validationError("date", "must be a calendar date (2006-01-02)")
	}
	if _, err := booking.NewTimeSlot(p.SlotTimeStart, p.SlotTimeEnd); err != nil {
		if errors.Is(err, booking.ErrInvalidTimeSlot) {
			return validationError("slotTimeEnd", "must be after slotTimeStart")
		}
		return validationError("slotTimeStart", "must be a time of day (15:04)")
	}
	return nil
}

func (p CreateReservationParams) toDomain() (*booking.Reservation, error) {
	date, err := booking.NewDate(p.Date)
	if err != nil {
		return nil, err
	}
	slot, err := booking.NewTimeSlot(p.SlotTimeStart, p.SlotTimeEnd)
	if err != nil {
		return nil, err
	}
	return booking.NewReservation(p.TableNumber, p.ClientName, p.PhoneNumber, date, slot)
}

type ReservationsUseCase interface {
	Create(ctx context.Context, params CreateReservationParams) (uuid.UUID, error)
	List(ctx context.Context) ([]*readmodel.ReservationRM, error)
}

type reservationsUseCaseImpl struct {
	reservationRepo ReservationRepository
	tableRepo       TableRepository
	publisher       EventPublisher
	storeTimeout    time.Duration
}

func NewReservationsUseCase(
	reservationRepo ReservationRepository,
	tableRepo TableRepository,
	publisher EventPublisher,
	storeTimeout time.Duration,
) ReservationsUseCase {
	return &reservationsUseCaseImpl{
		reservationRepo: reservationRepo,
		tableRepo:       tableRepo,
		publisher:       publisher,
		storeTimeout:    storeTimeout,
	}
}

// Create runs the booking flow: validate, verify the table exists, check
// the candidate against the existing snapshot, persist. The check and the
// write are two separate store calls; the Postgres store additionally
// enforces the invariant with an exclusion constraint, the DynamoDB store
// reproduces the original non-atomic sequence.
func (u *reservationsUseCaseImpl) Create(ctx context.Context, params CreateReservationParams) (uuid.UUID, error) {
	if err := params.Validate(); err != nil {
		return uuid.Nil, err
	}

	candidate, err := params.toDomain()
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrValidation)
	}

	ctx, cancel := context.WithTimeout(ctx, u.storeTimeout)
	defer cancel()

	if _, err := u.tableRepo.FindByNumber(ctx, candidate.TableNumber()); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, ErrTableNotFound
		}
		return uuid.Nil, classifyStoreErr(err, "failed to verify table")
	}

	existing, err := u.reservationRepo.ListByTableAndDate(ctx, candidate.TableNumber(), candidate.Date().String())
	if err != nil {
		return uuid.Nil, classifyStoreErr(err, "failed to load existing reservations")
	}

	if conflict := booking.FirstConflict(candidate, existing); conflict != nil {
		slog.Info("reservation rejected",
			"tableNumber", candidate.TableNumber(),
			"date", candidate.Date().String(),
			"slot", candidate.Slot().String(),
			"conflictsWith", conflict.ID().String(),
		)
		return uuid.Nil, ErrReservationConflict
	}

	if err := u.reservationRepo.Create(ctx, candidate); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return uuid.Nil, ErrReservationConflict
		}
		return uuid.Nil, classifyStoreErr(err, "failed to create reservation")
	}

	u.publisher.ReservationCreated(ctx, toReservationRM(candidate))

	return candidate.ID(), nil
}

func (u *reservationsUseCaseImpl) List(ctx context.Context) ([]*readmodel.ReservationRM, error) {
	ctx, cancel := context.WithTimeout(ctx, u.storeTimeout)
	defer cancel()

	reservations, err := u.reservationRepo.List(ctx)
	if err != nil {
		return nil, classifyStoreErr(err, "failed to list reservations")
	}
	return reservations, nil
}

func toReservationRM(r *booking.Reservation) *readmodel.ReservationRM {
	return &readmodel.ReservationRM{
		ID:            r.ID().String(),
		TableNumber:   r.TableNumber(),
		ClientName:    r.ClientName(),
		PhoneNumber:   r.PhoneNumber(),
		Date:          r.Date().String(),
		SlotTimeStart: r.Slot().Start(),
		SlotTimeEnd:   r.Slot().End(),
	}
}
