package graphqlapi

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Argument extraction helpers. graphql-go delivers coerced argument
// values as interface{}: String as string, Int as int, Float as float64,
// DateTime as time.Time, ID as string, lists as []interface{}.

func stringArg(args map[string]interface{}, key string) string {
	if value, ok := args[key].(string); ok {
		return value
	}
	return ""
}

func boolArg(args map[string]interface{}, key string) bool {
	value, _ := args[key].(bool)
	return value
}

func intArg(args map[string]interface{}, key string) *int {
	if value, ok := args[key].(int); ok {
		return &value
	}
	return nil
}

func intArgOr(args map[string]interface{}, key string, fallback int) int {
	if value, ok := args[key].(int); ok {
		return value
	}
	return fallback
}

func decimalArg(args map[string]interface{}, key string) *decimal.Decimal {
	switch value := args[key].(type) {
	case float64:
		d := decimal.NewFromFloat(value)
		return &d
	case int:
		d := decimal.NewFromInt(int64(value))
		return &d
	}
	return nil
}

func timeArg(args map[string]interface{}, key string) *time.Time {
	if value, ok := args[key].(time.Time); ok {
		return &value
	}
	return nil
}

func idArg(args map[string]interface{}, key string) (int64, error) {
	return parseID(args[key], key)
}

func optionalIDArg(args map[string]interface{}, key string) *int64 {
	if args[key] == nil {
		return nil
	}
	id, err := parseID(args[key], key)
	if err != nil {
		return nil
	}
	return &id
}

func idListArg(args map[string]interface{}, key string) ([]int64, error) {
	raw, ok := args[key].([]interface{})
	if !ok {
		return nil, fmt.Errorf("argument %q must be a list of IDs", key)
	}
	ids := make([]int64, 0, len(raw))
	for _, value := range raw {
		id, err := parseID(value, key)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func orderByArg(args map[string]interface{}, key string) []string {
	raw, ok := args[key].([]interface{})
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(raw))
	for _, value := range raw {
		if s, ok := value.(string); ok {
			keys = append(keys, s)
		}
	}
	return keys
}

func parseID(value interface{}, key string) (int64, error) {
	switch v := value.(type) {
	case string:
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("argument %q is not a numeric ID: %q", key, v)
		}
		return id, nil
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	}
	return 0, fmt.Errorf("argument %q is not a valid ID", key)
}
