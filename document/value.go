package document

import (
	"fmt"
	"sort"

	"github.com/goccy/go-yaml"
)

// Kind identifies the shape of a Value node.
type Kind int

// The four node shapes a configuration tree can hold.
const (
	KindNull Kind = iota
	KindScalar
	KindSequence
	KindMapping
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is one immutable node of a parsed configuration tree.
//
// A key that is present with an explicit null is represented as a Value of
// KindNull; an absent key has no Value at all. The two are never conflated:
// lookups report presence separately from nullness.
type Value struct {
	kind   Kind
	scalar any
	items  []*Value
	keys   []string
	fields map[string]*Value
}

// Field is a single key/value pair used to construct a Mapping.
type Field struct {
	Key   string
	Value *Value
}

// Null returns a Value representing an explicit null.
func Null() *Value {
	return &Value{kind: KindNull}
}

// String returns a scalar Value holding a string.
func String(s string) *Value {
	return &Value{kind: KindScalar, scalar: s}
}

// Int returns a scalar Value holding an integer.
func Int(i int64) *Value {
	return &Value{kind: KindScalar, scalar: i}
}

// Float returns a scalar Value holding a floating-point number.
func Float(f float64) *Value {
	return &Value{kind: KindScalar, scalar: f}
}

// Bool returns a scalar Value holding a boolean.
func Bool(b bool) *Value {
	return &Value{kind: KindScalar, scalar: b}
}

// Sequence returns a sequence Value holding the given items in order.
func Sequence(items ...*Value) *Value {
	copied := make([]*Value, len(items))
	copy(copied, items)

	return &Value{kind: KindSequence, items: copied}
}

// Mapping returns a mapping Value holding the given fields in order.
// Duplicate keys keep the last value but the first position.
func Mapping(fields ...Field) *Value {
	value := &Value{
		kind:   KindMapping,
		keys:   make([]string, 0, len(fields)),
		fields: make(map[string]*Value, len(fields)),
	}

	for _, field := range fields {
		if _, exists := value.fields[field.Key]; !exists {
			value.keys = append(value.keys, field.Key)
		}

		value.fields[field.Key] = field.Value
	}

	return value
}

// Kind returns the shape of the node.
func (v *Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether the node is an explicit null.
func (v *Value) IsNull() bool {
	return v.kind == KindNull
}

// Scalar returns the underlying scalar as parsed (string, bool, integer or
// float). It returns nil for non-scalar nodes.
func (v *Value) Scalar() any {
	if v.kind != KindScalar {
		return nil
	}

	return v.scalar
}

// AsString returns the scalar as a string.
func (v *Value) AsString() (string, bool) {
	s, ok := v.scalar.(string)

	return s, ok && v.kind == KindScalar
}

// AsInt returns the scalar as an int64, converting from any integer
// representation the parser produced.
func (v *Value) AsInt() (int64, bool) {
	if v.kind != KindScalar {
		return 0, false
	}

	switch n := v.scalar.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case uint64:
		return int64(n), true
	default:
		return 0, false
	}
}

// AsFloat returns the scalar as a float64. Integer scalars convert.
func (v *Value) AsFloat() (float64, bool) {
	if v.kind != KindScalar {
		return 0, false
	}

	switch n := v.scalar.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

// AsBool returns the scalar as a bool.
func (v *Value) AsBool() (bool, bool) {
	b, ok := v.scalar.(bool)

	return b, ok && v.kind == KindScalar
}

// Len returns the number of items in a sequence or fields in a mapping.
func (v *Value) Len() int {
	switch v.kind {
	case KindSequence:
		return len(v.items)
	case KindMapping:
		return len(v.keys)
	default:
		return 0
	}
}

// Index returns the i-th item of a sequence, or nil when out of range or the
// node is not a sequence.
func (v *Value) Index(i int) *Value {
	if v.kind != KindSequence || i < 0 || i >= len(v.items) {
		return nil
	}

	return v.items[i]
}

// Keys returns the mapping keys in document order. The slice is a copy.
func (v *Value) Keys() []string {
	if v.kind != KindMapping {
		return nil
	}

	keys := make([]string, len(v.keys))
	copy(keys, v.keys)

	return keys
}

// Field returns the value stored under key and whether the key is present.
// A key present with an explicit null yields (Null value, true).
func (v *Value) Field(key string) (*Value, bool) {
	if v.kind != KindMapping {
		return nil, false
	}

	field, ok := v.fields[key]

	return field, ok
}

// Equal reports whether two trees are structurally identical, including
// mapping key order.
func (v *Value) Equal(other *Value) bool {
	if v == nil || other == nil {
		return v == other
	}

	if v.kind != other.kind {
		return false
	}

	switch v.kind {
	case KindNull:
		return true
	case KindScalar:
		return v.scalar == other.scalar
	case KindSequence:
		if len(v.items) != len(other.items) {
			return false
		}

		for i, item := range v.items {
			if !item.Equal(other.items[i]) {
				return false
			}
		}

		return true
	case KindMapping:
		if len(v.keys) != len(other.keys) {
			return false
		}

		for i, key := range v.keys {
			if key != other.keys[i] {
				return false
			}

			if !v.fields[key].Equal(other.fields[key]) {
				return false
			}
		}

		return true
	default:
		return false
	}
}

// raw converts the tree back to the plain representation goccy/go-yaml
// marshals, preserving mapping key order via yaml.MapSlice.
func (v *Value) raw() any {
	switch v.kind {
	case KindNull:
		return nil
	case KindScalar:
		return v.scalar
	case KindSequence:
		items := make([]any, len(v.items))
		for i, item := range v.items {
			items[i] = item.raw()
		}

		return items
	case KindMapping:
		slice := make(yaml.MapSlice, 0, len(v.keys))
		for _, key := range v.keys {
			slice = append(slice, yaml.MapItem{Key: key, Value: v.fields[key].raw()})
		}

		return slice
	default:
		return nil
	}
}

// MarshalYAML implements the goccy/go-yaml interface marshaler, allowing a
// Value (or any struct embedding one) to be serialized directly.
func (v *Value) MarshalYAML() (any, error) {
	return v.raw(), nil
}

// fromRaw converts a goccy/go-yaml decode result into a Value tree.
func fromRaw(raw any) *Value {
	switch typed := raw.(type) {
	case nil:
		return Null()
	case yaml.MapSlice:
		fields := make([]Field, 0, len(typed))
		for _, item := range typed {
			fields = append(fields, Field{
				Key:   fmt.Sprint(item.Key),
				Value: fromRaw(item.Value),
			})
		}

		return Mapping(fields...)
	case map[string]any:
		// Only reachable when ordered decoding is bypassed; keep it
		// deterministic anyway.
		fields := make([]Field, 0, len(typed))
		for _, key := range sortedKeys(typed) {
			fields = append(fields, Field{Key: key, Value: fromRaw(typed[key])})
		}

		return Mapping(fields...)
	case []any:
		items := make([]*Value, 0, len(typed))
		for _, item := range typed {
			items = append(items, fromRaw(item))
		}

		return Sequence(items...)
	default:
		return &Value{kind: KindScalar, scalar: typed}
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}
