package serialize

import (
	"bytes"
	"encoding/json"
)

// Field is a single name/value pair of a serialized record.
type Field struct {
	Name  string
	Value any
}

// Payload is a JSON object that preserves field order when marshalled.
// encoding/json maps would lose the canonical record order, so the object
// is kept as an ordered slice of fields instead.
type Payload []Field

// MarshalJSON renders the payload as a JSON object with fields in slice order.
func (p Payload) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		value, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Get returns the value of the named field and whether it is present.
func (p Payload) Get(name string) (any, bool) {
	for _, f := range p {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Names returns the field names in payload order.
func (p Payload) Names() []string {
	names := make([]string, len(p))
	for i, f := range p {
		names[i] = f.Name
	}
	return names
}

// Filter returns a copy of p narrowed by policy, preserving order.
// Filtering an already-filtered payload with the same policy yields an
// identical payload.
func (p Payload) Filter(policy FieldPolicy) Payload {
	out := make(Payload, 0, len(p))
	for _, f := range p {
		if policy.Allows(f.Name) {
			out = append(out, f)
		}
	}
	return out
}
