package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var jsonNull = []byte("null")

// FlexDecimal accepts a JSON number or a numeric string and tracks whether the key was sent.
// null and "" decode to a present-but-null value.
type FlexDecimal struct {
	Set   bool
	Value decimal.NullDecimal
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexDecimal) UnmarshalJSON(data []byte) error {
	raw, isNull, err := scalarText(data)
	if err != nil {
		return err
	}
	f.Set = true
	if isNull {
		f.Value = decimal.NullDecimal{}
		return nil
	}
	parsed, err := ParseFlexDecimal(raw)
	if err != nil {
		return err
	}
	f.Value = parsed.Value
	return nil
}

// ParseFlexDecimal parses form input; blank means null.
func ParseFlexDecimal(raw string) (FlexDecimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return FlexDecimal{Set: true}, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return FlexDecimal{}, fmt.Errorf("%q is not a number", raw)
	}
	return FlexDecimal{Set: true, Value: decimal.NullDecimal{Decimal: d, Valid: true}}, nil
}

// OrZero returns the value or 0 when absent or null.
func (f FlexDecimal) OrZero() decimal.Decimal {
	if f.Value.Valid {
		return f.Value.Decimal
	}
	return decimal.Zero
}

// FlexInt accepts a JSON integer or an integer string and tracks whether the key was sent.
type FlexInt struct {
	Set   bool
	Value *int
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	raw, isNull, err := scalarText(data)
	if err != nil {
		return err
	}
	f.Set = true
	if isNull {
		f.Value = nil
		return nil
	}
	parsed, err := ParseFlexInt(raw)
	if err != nil {
		return err
	}
	f.Value = parsed.Value
	return nil
}

// ParseFlexInt parses form input; blank means null. Whole-valued decimals like "50.0" are accepted.
func ParseFlexInt(raw string) (FlexInt, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return FlexInt{Set: true}, nil
	}
	if v, err := strconv.Atoi(raw); err == nil {
		return FlexInt{Set: true, Value: &v}, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || !d.Equal(d.Truncate(0)) {
		return FlexInt{}, fmt.Errorf("%q is not an integer", raw)
	}
	whole := d.BigInt()
	if !whole.IsInt64() || whole.Int64() > math.MaxInt || whole.Int64() < math.MinInt {
		return FlexInt{}, fmt.Errorf("%q is out of range", raw)
	}
	v := int(whole.Int64())
	return FlexInt{Set: true, Value: &v}, nil
}

// OrZero returns the value or 0 when absent or null.
func (f FlexInt) OrZero() int {
	if f.Value != nil {
		return *f.Value
	}
	return 0
}

// FlexBool is true only for true, 1, "true" and "1" (strings compared case-insensitively).
// Anything else, null included, is false.
type FlexBool struct {
	Set   bool
	Value bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexBool) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil
	}
	f.Set = true
	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		f.Value = ParseFlexBool(s).Value
	case 't':
		f.Value = bytes.Equal(trimmed, []byte("true"))
	default:
		var n json.Number
		if err := json.Unmarshal(trimmed, &n); err == nil {
			f.Value = n.String() == "1"
			return nil
		}
		f.Value = false
	}
	return nil
}

// ParseFlexBool parses form input.
func ParseFlexBool(raw string) FlexBool {
	v := strings.ToLower(strings.TrimSpace(raw))
	return FlexBool{Set: true, Value: v == "true" || v == "1"}
}

// EmbeddedJSON holds a JSON value that clients may send either directly or as a
// JSON-encoded string, e.g. {"comprador": {...}} or {"comprador": "{...}"}.
type EmbeddedJSON struct {
	Raw json.RawMessage
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *EmbeddedJSON) UnmarshalJSON(data []byte) error {
	e.Raw = append(e.Raw[:0], bytes.TrimSpace(data)...)
	return nil
}

// IsZero reports whether the value was absent or null.
func (e EmbeddedJSON) IsZero() bool {
	return len(e.Raw) == 0 || bytes.Equal(e.Raw, jsonNull)
}

// Decode unwraps a string-encoded document if needed and unmarshals into v.
func (e EmbeddedJSON) Decode(v any) error {
	if e.IsZero() {
		return fmt.Errorf("value is required")
	}
	payload := []byte(e.Raw)
	if payload[0] == '"' {
		var text string
		if err := json.Unmarshal(payload, &text); err != nil {
			return err
		}
		payload = []byte(strings.TrimSpace(text))
		if len(payload) == 0 {
			return fmt.Errorf("value is required")
		}
	}
	if err := json.Unmarshal(payload, v); err != nil {
		return fmt.Errorf("malformed JSON: %w", err)
	}
	return nil
}

// scalarText returns the textual form of a JSON number or string.
func scalarText(data []byte) (string, bool, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, jsonNull) {
		return "", true, nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return "", false, err
		}
		if strings.TrimSpace(s) == "" {
			return "", true, nil
		}
		return s, false, nil
	}
	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return "", false, fmt.Errorf("%s is not a number", string(trimmed))
	}
	return n.String(), false, nil
}
