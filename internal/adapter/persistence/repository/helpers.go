package repository

import (
	"encoding/base64"
	"os"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// Page tokens wrap the table's LastEvaluatedKey id so list endpoints can
// hand clients an opaque cursor.

func encodePageToken(lastKey map[string]types.AttributeValue) string {
	if len(lastKey) == 0 {
		return ""
	}
	id, ok := lastKey["id"].(*types.AttributeValueMemberS)
	if !ok {
		return ""
	}
	return base64.URLEncoding.EncodeToString([]byte(id.Value))
}

func decodePageToken(token string) map[string]types.AttributeValue {
	if token == "" {
		return nil
	}
	raw, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return nil
	}
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: string(raw)},
	}
}
