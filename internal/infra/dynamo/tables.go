package dynamo

import (
	"context"
	"errors"

	"tablebook/internal/domain/booking"
	"tablebook/internal/infra"
	"tablebook/internal/usecase/readmodel"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// TableRepository keeps the catalog in a DynamoDB table keyed by the
// administrative id. Number lookups scan with a filter expression, the way
// the original API did; the catalog is small enough that this stays cheap.
type TableRepository struct {
	client    *dynamodb.Client
	tableName string
}

func NewTableRepository(client *dynamodb.Client, tableName string) *TableRepository {
	return &TableRepository{client: client, tableName: tableName}
}

func (r *TableRepository) Create(ctx context.Context, table *booking.Table) error {
	item := map[string]types.AttributeValue{
		"id":     numberAttr(table.ID()),
		"number": numberAttr(table.Number()),
		"places": numberAttr(table.Places()),
		"isVip":  boolAttr(table.IsVip()),
	}
	if table.MinOrder() != nil {
		item["minOrder"] = numberAttr(*table.MinOrder())
	}

	_, err := r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	})
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return infra.WrapRepoErr("table id already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to put table", err)
	}

	return nil
}

func (r *TableRepository) FindByNumber(ctx context.Context, number int) (*readmodel.TableRM, error) {
	out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
		TableName:                aws.String(r.tableName),
		FilterExpression:         aws.String("#number = :number"),
		ExpressionAttributeNames: map[string]string{"#number": "number"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":number": numberAttr(number),
		},
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan tables", err)
	}
	if len(out.Items) == 0 {
		return nil, infra.WrapRepoErr("table not found", nil, infra.KindNotFound)
	}

	return tableFromItem(out.Items[0]), nil
}

func (r *TableRepository) List(ctx context.Context) ([]*readmodel.TableRM, error) {
	out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan tables", err)
	}

	tables := make([]*readmodel.TableRM, len(out.Items))
	for i, item := range out.Items {
		tables[i] = tableFromItem(item)
	}
	return tables, nil
}

func tableFromItem(item map[string]types.AttributeValue) *readmodel.TableRM {
	return &readmodel.TableRM{
		ID:       itemInt(item, "id"),
		Number:   itemInt(item, "number"),
		Places:   itemInt(item, "places"),
		IsVip:    itemBool(item, "isVip"),
		MinOrder: itemIntPtr(item, "minOrder"),
	}
}
