package transaction

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/amirhossein-jamali/sales-analytics/internal/domain/entity"
)

// Payload field names as they appear in the JSON body
const (
	FieldProductID    = "product_id"
	FieldProductName  = "product_name"
	FieldCustomerID   = "customer_id"
	FieldCustomerName = "customer_name"
	FieldQuantity     = "quantity"
	FieldPrice        = "price"
	FieldTimestamp    = "timestamp"
)

// fieldRule normalizes one payload field into the input.
// apply returns a violation message, or "" when the value is accepted.
type fieldRule struct {
	field    string
	required bool
	apply    func(raw any, in *entity.TransactionInput) string
}

// Rules run in this order so violations are reported in field order
var fieldRules = []fieldRule{
	{field: FieldProductID, required: true, apply: applyProductID},
	{field: FieldProductName, apply: applyProductName},
	{field: FieldCustomerID, required: true, apply: applyCustomerID},
	{field: FieldCustomerName, apply: applyCustomerName},
	{field: FieldQuantity, required: true, apply: applyQuantity},
	{field: FieldPrice, required: true, apply: applyPrice},
	{field: FieldTimestamp, apply: applyTimestamp},
}

// ValidatePayload normalizes a decoded JSON object into a TransactionInput
// and collects every violation. With partial set, required fields may be
// absent. Unknown fields are ignored.
func ValidatePayload(payload map[string]any, partial bool) (entity.TransactionInput, []string) {
	var (
		input      entity.TransactionInput
		violations []string
	)

	for _, rule := range fieldRules {
		raw, present := payload[rule.field]
		if !present {
			if rule.required && !partial {
				violations = append(violations, rule.field+" is required")
			}
			continue
		}
		if msg := rule.apply(raw, &input); msg != "" {
			violations = append(violations, msg)
		}
	}

	if input.Quantity.Set && input.Price.Set && !entity.IsFiniteTotal(input.Quantity.Value, input.Price.Value) {
		violations = append(violations, entity.TotalNotFiniteMessage)
	}

	return input, violations
}

func applyProductID(raw any, in *entity.TransactionInput) string {
	id := identifier(raw)
	if id == "" {
		return FieldProductID + " cannot be empty"
	}
	in.ProductID = entity.Some(id)
	return ""
}

func applyCustomerID(raw any, in *entity.TransactionInput) string {
	id := identifier(raw)
	if id == "" {
		return FieldCustomerID + " cannot be empty"
	}
	in.CustomerID = entity.Some(id)
	return ""
}

func applyProductName(raw any, in *entity.TransactionInput) string {
	in.ProductName = entity.Some(displayName(raw))
	return ""
}

func applyCustomerName(raw any, in *entity.TransactionInput) string {
	in.CustomerName = entity.Some(displayName(raw))
	return ""
}

func applyQuantity(raw any, in *entity.TransactionInput) string {
	qty, ok := positiveInt(raw)
	if !ok {
		return "quantity must be a positive integer"
	}
	in.Quantity = entity.Some(qty)
	return ""
}

func applyPrice(raw any, in *entity.TransactionInput) string {
	price, ok := nonNegativeFloat(raw)
	if !ok {
		return "price must be a non-negative number"
	}
	in.Price = entity.Some(price)
	return ""
}

func applyTimestamp(raw any, in *entity.TransactionInput) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		if strings.TrimSpace(v) == "" {
			return ""
		}
		ts, err := entity.ParseTimestamp(v)
		if err != nil {
			return err.Error()
		}
		in.Timestamp = entity.Some(ts)
		return ""
	default:
		return entity.ErrTimestampFormat.Error()
	}
}

// identifier renders a grouping key; numbers are accepted and printed without exponent
func identifier(raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

// displayName returns nil for null, blank or non-string values
func displayName(raw any) *string {
	s, ok := raw.(string)
	if !ok {
		if raw == nil {
			return nil
		}
		s = fmt.Sprint(raw)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func positiveInt(raw any) (int64, bool) {
	var n int64
	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) || v < 1 || v >= math.MaxInt64 {
			return 0, false
		}
		n = int64(v)
	case json.Number:
		parsed, err := v.Int64()
		if err != nil {
			return 0, false
		}
		n = parsed
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, false
		}
		n = parsed
	default:
		return 0, false
	}
	return n, n > 0
}

func nonNegativeFloat(raw any) (float64, bool) {
	var f float64
	switch v := raw.(type) {
	case float64:
		f = v
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0, false
	}
	return f, true
}
