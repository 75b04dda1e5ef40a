package dynamo

import (
	"context"
	"errors"
	"time"

	"tablebook/internal/domain/user"
	"tablebook/internal/infra"
	"tablebook/internal/usecase/readmodel"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// UserRepository stores accounts keyed by email.
type UserRepository struct {
	client    *dynamodb.Client
	tableName string
}

func NewUserRepository(client *dynamodb.Client, tableName string) *UserRepository {
	return &UserRepository{client: client, tableName: tableName}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	_, err := r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item: map[string]types.AttributeValue{
			"email":        stringAttr(u.Email().String()),
			"id":           stringAttr(u.ID().String()),
			"passwordHash": stringAttr(u.PasswordHash()),
			"firstName":    stringAttr(u.FirstName()),
			"lastName":     stringAttr(u.LastName()),
			"createdAt":    stringAttr(u.CreatedAt().UTC().Format(time.RFC3339)),
		},
		ConditionExpression: aws.String("attribute_not_exists(email)"),
	})
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to put user", err)
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*readmodel.UserRM, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"email": stringAttr(email),
		},
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get user", err)
	}
	if out.Item == nil {
		return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}

	id, err := uuid.Parse(itemString(out.Item, "id"))
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt user item", err)
	}
	createdAt, _ := time.Parse(time.RFC3339, itemString(out.Item, "createdAt"))

	return &readmodel.UserRM{
		ID:           id,
		Email:        itemString(out.Item, "email"),
		PasswordHash: itemString(out.Item, "passwordHash"),
		FirstName:    itemString(out.Item, "firstName"),
		LastName:     itemString(out.Item, "lastName"),
		CreatedAt:    createdAt,
	}, nil
}
