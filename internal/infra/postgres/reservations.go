package postgres

import (
	"context"
	"errors"
	"time"

	"tablebook/internal/domain/booking"
	"tablebook/internal/infra"
	"tablebook/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const dateLayout = "2006-01-02"

// ReservationRepository is the hardened store: the insert is guarded by the
// reservations_no_overlap exclusion constraint, so a conflicting write that
// slipped past the in-core check fails here instead of double-booking.
type ReservationRepository struct {
	pool *pgxpool.Pool
}

func NewReservationRepository(pool *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{pool: pool}
}

func (r *ReservationRepository) Create(ctx context.Context, reservation *booking.Reservation) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO reservations (id, table_number, client_name, phone_number, date, slot_start, slot_end)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		reservation.ID(),
		reservation.TableNumber(),
		reservation.ClientName(),
		reservation.PhoneNumber(),
		reservation.Date().String(),
		reservation.Slot().StartMinutes(),
		reservation.Slot().EndMinutes(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgExclusionViolation:
				return infra.WrapRepoErr("overlapping reservation exists", err, infra.KindConflict)
			case pgUniqueViolation:
				return infra.WrapRepoErr("duplicate reservation id", err, infra.KindDuplicateKey)
			}
		}
		return infra.WrapRepoErr("failed to insert reservation", err)
	}
	return nil
}

func (r *ReservationRepository) ListByTableAndDate(ctx context.Context, tableNumber int, date string) ([]*booking.Reservation, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, table_number, client_name, phone_number, date, slot_start, slot_end
		 FROM reservations WHERE table_number=$1 AND date=$2`,
		tableNumber, date,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query reservations", err)
	}
	defer rows.Close()

	var reservations []*booking.Reservation
	for rows.Next() {
		reservation, err := scanReservation(rows.Scan)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, reservation)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservations", err)
	}
	return reservations, nil
}

func (r *ReservationRepository) List(ctx context.Context) ([]*readmodel.ReservationRM, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, table_number, client_name, phone_number, date, slot_start, slot_end
		 FROM reservations ORDER BY date, slot_start`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query reservations", err)
	}
	defer rows.Close()

	var reservations []*readmodel.ReservationRM
	for rows.Next() {
		reservation, err := scanReservation(rows.Scan)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, &readmodel.ReservationRM{
			ID:            reservation.ID().String(),
			TableNumber:   reservation.TableNumber(),
			ClientName:    reservation.ClientName(),
			PhoneNumber:   reservation.PhoneNumber(),
			Date:          reservation.Date().String(),
			SlotTimeStart: reservation.Slot().Start(),
			SlotTimeEnd:   reservation.Slot().End(),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservations", err)
	}
	return reservations, nil
}

func scanReservation(scan func(dest ...any) error) (*booking.Reservation, error) {
	var (
		id          uuid.UUID
		tableNumber int
		clientName  string
		phoneNumber string
		day         time.Time
		slotStart   int
		slotEnd     int
	)
	if err := scan(&id, &tableNumber, &clientName, &phoneNumber, &day, &slotStart, &slotEnd); err != nil {
		return nil, infra.WrapRepoErr("failed to scan reservation row", err)
	}

	date, err := booking.NewDate(day.Format(dateLayout))
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt reservation date", err)
	}
	slot, err := booking.NewTimeSlotFromMinutes(slotStart, slotEnd)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt reservation slot", err)
	}

	return booking.ReconstructReservation(id, tableNumber, clientName, phoneNumber, date, slot), nil
}
