package dynamo

import (
	"strconv"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Attribute helpers for the raw item maps the original tables use. The
// tables predate this service, so the item shapes are fixed wire format.

func stringAttr(value string) types.AttributeValue {
	return &types.AttributeValueMemberS{Value: value}
}

func numberAttr(value int) types.AttributeValue {
	return &types.AttributeValueMemberN{Value: strconv.Itoa(value)}
}

func boolAttr(value bool) types.AttributeValue {
	return &types.AttributeValueMemberBOOL{Value: value}
}

func itemString(item map[string]types.AttributeValue, key string) string {
	if attr, ok := item[key].(*types.AttributeValueMemberS); ok {
		return attr.Value
	}
	return ""
}

func itemInt(item map[string]types.AttributeValue, key string) int {
	if attr, ok := item[key].(*types.AttributeValueMemberN); ok {
		n, err := strconv.Atoi(attr.Value)
		if err == nil {
			return n
		}
	}
	return 0
}

func itemBool(item map[string]types.AttributeValue, key string) bool {
	if attr, ok := item[key].(*types.AttributeValueMemberBOOL); ok {
		return attr.Value
	}
	return false
}

func itemIntPtr(item map[string]types.AttributeValue, key string) *int {
	if attr, ok := item[key].(*types.AttributeValueMemberN); ok {
		if n, err := strconv.Atoi(attr.Value); err == nil {
			return &n
		}
	}
	return nil
}
