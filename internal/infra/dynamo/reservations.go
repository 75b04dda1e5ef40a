package dynamo

import (
	"context"

	"tablebook/internal/domain/booking"
	"tablebook/internal/infra"
	"tablebook/internal/usecase/readmodel"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// ReservationRepository reproduces the original storage behavior: the
// overlap snapshot is a filtered scan and the subsequent put is
// unconditional, so the check-then-write sequence is not atomic. Two
// concurrent bookings for the same slot can both pass the check; the
// Postgres store closes that race where stronger guarantees are needed.
type ReservationRepository struct {
	client    *dynamodb.Client
	tableName string
}

func NewReservationRepository(client *dynamodb.Client, tableName string) *ReservationRepository {
	return &ReservationRepository{client: client, tableName: tableName}
}

func (r *ReservationRepository) Create(ctx context.Context, reservation *booking.Reservation) error {
	_, err := r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item: map[string]types.AttributeValue{
			"id":            stringAttr(reservation.ID().String()),
			"tableNumber":   numberAttr(reservation.TableNumber()),
			"clientName":    stringAttr(reservation.ClientName()),
			"phoneNumber":   stringAttr(reservation.PhoneNumber()),
			"date":          stringAttr(reservation.Date().String()),
			"slotTimeStart": stringAttr(reservation.Slot().Start()),
			"slotTimeEnd":   stringAttr(reservation.Slot().End()),
		},
	})
	if err != nil {
		return infra.WrapRepoErr("failed to put reservation", err)
	}
	return nil
}

func (r *ReservationRepository) ListByTableAndDate(ctx context.Context, tableNumber int, date string) ([]*booking.Reservation, error) {
	out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
		TableName:                aws.String(r.tableName),
		FilterExpression:         aws.String("tableNumber = :tableNumber AND #date = :date"),
		ExpressionAttributeNames: map[string]string{"#date": "date"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tableNumber": numberAttr(tableNumber),
			":date":        stringAttr(date),
		},
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan reservations", err)
	}

	reservations := make([]*booking.Reservation, 0, len(out.Items))
	for _, item := range out.Items {
		reservation, err := reservationFromItem(item)
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt reservation item", err)
		}
		reservations = append(reservations, reservation)
	}
	return reservations, nil
}

func (r *ReservationRepository) List(ctx context.Context) ([]*readmodel.ReservationRM, error) {
	out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan reservations", err)
	}

	reservations := make([]*readmodel.ReservationRM, len(out.Items))
	for i, item := range out.Items {
		reservations[i] = &readmodel.ReservationRM{
			ID:            itemString(item, "id"),
			TableNumber:   itemInt(item, "tableNumber"),
			ClientName:    itemString(item, "clientName"),
			PhoneNumber:   itemString(item, "phoneNumber"),
			Date:          itemString(item, "date"),
			SlotTimeStart: itemString(item, "slotTimeStart"),
			SlotTimeEnd:   itemString(item, "slotTimeEnd"),
		}
	}
	return reservations, nil
}

func reservationFromItem(item map[string]types.AttributeValue) (*booking.Reservation, error) {
	id, err := uuid.Parse(itemString(item, "id"))
	if err != nil {
		return nil, err
	}
	date, err := booking.NewDate(itemString(item, "date"))
	if err != nil {
		return nil, err
	}
	slot, err := booking.NewTimeSlot(itemString(item, "slotTimeStart"), itemString(item, "slotTimeEnd"))
	if err != nil {
		return nil, err
	}

	return booking.ReconstructReservation(
		id,
		itemInt(item, "tableNumber"),
		itemString(item, "clientName"),
		itemString(item, "phoneNumber"),
		date,
		slot,
	), nil
}
