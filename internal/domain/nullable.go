package domain

import (
	"bytes"
	"encoding/json"
)

// NullableString tells apart a field missing from a JSON body (Present false),
// an explicit null (Present true, Valid false) and a value.
type NullableString struct {
	Present bool
	Valid   bool
	Value   string
}

// NewNullableString returns a present, valid value.
func NewNullableString(v string) NullableString {
	return NullableString{Present: true, Valid: true, Value: v}
}

// Ptr returns nil for null or absent values.
func (n NullableString) Ptr() *string {
	if !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}

// UnmarshalJSON is only invoked for keys present in the body. A value of the
// wrong JSON type leaves n untouched.
func (n *NullableString) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*n = NullableString{Present: true}
		return nil
	}
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*n = NewNullableString(v)
	return nil
}

func (n NullableString) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}
