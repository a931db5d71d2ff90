package templet

import (
	"fmt"
	"reflect"
	"strconv"
)

// Kind identifies the variant held by a Value.
type Kind int

const (
	KindString Kind = iota // scalar leaf
	KindList               // ordered, 0-indexed sequence
	KindMap                // name -> Value, names unique
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	}
	return "invalid"
}

// Value is one node of the context tree a template is rendered against.
// The set of variants is closed: StringValue, ListValue, MapValue. A Value
// never changes variant after construction; renders never mutate the tree.
type Value interface {
	Kind() Kind
	// Empty reports an empty string, empty list, or empty map.
	Empty() bool

	value()
}

// StringValue is a scalar leaf. Only leaves may be printed by a template.
type StringValue string

func (s StringValue) Kind() Kind  { return KindString }
func (s StringValue) Empty() bool { return len(s) == 0 }
func (StringValue) value()        {}

// ListValue is an ordered sequence of values, addressable with [n].
type ListValue []Value

func (l ListValue) Kind() Kind  { return KindList }
func (l ListValue) Empty() bool { return len(l) == 0 }
func (ListValue) value()        {}

// MapValue maps names to values. The root context of every render is a
// MapValue; dot notation descends only into maps.
type MapValue map[string]Value

func (m MapValue) Kind() Kind  { return KindMap }
func (m MapValue) Empty() bool { return len(m) == 0 }
func (MapValue) value()        {}

// Strings wraps a slice of strings as a list of leaves.
func Strings(items ...string) ListValue {
	out := make(ListValue, 0, len(items))
	for _, s := range items {
		out = append(out, StringValue(s))
	}
	return out
}

// FromGo converts a plain Go value into a Value. Strings, bools, and
// numbers become leaves (numbers and bools in their usual textual form),
// slices become lists, and string-keyed maps become maps, recursively.
// nil becomes an empty leaf.
func FromGo(v any) (Value, error) {
	if v == nil {
		return StringValue(""), nil
	}
	switch t := v.(type) {
	case Value:
		return t, nil
	case string:
		return StringValue(t), nil
	case []byte:
		return StringValue(t), nil
	case bool:
		return StringValue(strconv.FormatBool(t)), nil
	case int:
		return StringValue(strconv.Itoa(t)), nil
	case int32:
		return StringValue(strconv.FormatInt(int64(t), 10)), nil
	case int64:
		return StringValue(strconv.FormatInt(t, 10)), nil
	case uint:
		return StringValue(strconv.FormatUint(uint64(t), 10)), nil
	case uint64:
		return StringValue(strconv.FormatUint(t, 10)), nil
	case float32:
		return StringValue(strconv.FormatFloat(float64(t), 'g', -1, 32)), nil
	case float64:
		return StringValue(strconv.FormatFloat(t, 'g', -1, 64)), nil
	case []string:
		return Strings(t...), nil
	case map[string]any:
		out := make(MapValue, len(t))
		for k, item := range t {
			cv, err := FromGo(item)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			out[k] = cv
		}
		return out, nil
	case []any:
		out := make(ListValue, 0, len(t))
		for i, item := range t {
			cv, err := FromGo(item)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			out = append(out, cv)
		}
		return out, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make(ListValue, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			cv, err := FromGo(rv.Index(i).Interface())
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			out = append(out, cv)
		}
		return out, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("map keys must be strings, got %s", rv.Type().Key())
		}
		out := make(MapValue, rv.Len())
		it := rv.MapRange()
		for it.Next() {
			k := it.Key().String()
			cv, err := FromGo(it.Value().Interface())
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			out[k] = cv
		}
		return out, nil
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return StringValue(""), nil
		}
		return FromGo(rv.Elem().Interface())
	}
	return nil, fmt.Errorf("unsupported value type %T", v)
}

// MapFromGo converts a map[string]any into a root MapValue.
func MapFromGo(m map[string]any) (MapValue, error) {
	out := make(MapValue, len(m))
	for k, v := range m {
		cv, err := FromGo(v)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		out[k] = cv
	}
	return out, nil
}
