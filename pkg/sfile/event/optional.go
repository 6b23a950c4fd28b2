package event

import (
	"encoding/json"
	"strconv"
)

// Float is an optional float64. The zero value is "not present".
//
// Nordic S-files leave numeric columns blank when a value was never
// measured; Float keeps that distinct from an actual 0.0 reading.
type Float struct {
	Value float64
	Valid bool
}

// FloatOf returns a present Float holding v.
func FloatOf(v float64) Float {
	return Float{Value: v, Valid: true}
}

// Or returns the value if present, otherwise def.
func (f Float) Or(def float64) float64 {
	if f.Valid {
		return f.Value
	}
	return def
}

// MarshalJSON encodes an absent Float as null.
func (f Float) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// UnmarshalJSON decodes null as absent.
func (f *Float) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = Float{}
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*f = FloatOf(v)
	return nil
}

// Int is an optional int. The zero value is "not present".
type Int struct {
	Value int
	Valid bool
}

// IntOf returns a present Int holding v.
func IntOf(v int) Int {
	return Int{Value: v, Valid: true}
}

// Or returns the value if present, otherwise def.
func (i Int) Or(def int) int {
	if i.Valid {
		return i.Value
	}
	return def
}

// MarshalJSON encodes an absent Int as null.
func (i Int) MarshalJSON() ([]byte, error) {
	if !i.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(i.Value)
}

// UnmarshalJSON decodes null as absent.
func (i *Int) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*i = Int{}
		return nil
	}
	v, err := strconv.Atoi(string(data))
	if err != nil {
		return err
	}
	*i = IntOf(v)
	return nil
}
