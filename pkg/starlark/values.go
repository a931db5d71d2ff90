package starlark

import (
	"fmt"
	"strconv"

	"go.starlark.net/starlark"

	"github.com/templet/templet/pkg/templet"
)

// ToStarlark converts a template value into its Starlark counterpart.
// Leaves become strings, lists become lists, maps become dicts.
func ToStarlark(v templet.Value) (starlark.Value, error) {
	switch tv := v.(type) {
	case nil:
		return starlark.None, nil
	case templet.StringValue:
		return starlark.String(tv), nil
	case templet.ListValue:
		items := make([]starlark.Value, len(tv))
		for i, item := range tv {
			sv, err := ToStarlark(item)
			if err != nil {
				return nil, err
			}
			items[i] = sv
		}
		return starlark.NewList(items), nil
	case templet.MapValue:
		dict := starlark.NewDict(len(tv))
		for key, item := range tv {
			sv, err := ToStarlark(item)
			if err != nil {
				return nil, err
			}
			if err := dict.SetKey(starlark.String(key), sv); err != nil {
				return nil, err
			}
		}
		return dict, nil
	default:
		return nil, fmt.Errorf("cannot convert %T to starlark", v)
	}
}

// FromStarlark converts a Starlark value into a template value. Scalars
// collapse to leaves in their textual form; None becomes the empty leaf.
func FromStarlark(v starlark.Value) (templet.Value, error) {
	switch sv := v.(type) {
	case starlark.NoneType:
		return templet.StringValue(""), nil
	case starlark.Bool:
		if bool(sv) {
			return templet.StringValue("true"), nil
		}
		return templet.StringValue("false"), nil
	case starlark.String:
		return templet.StringValue(sv), nil
	case starlark.Int:
		return templet.StringValue(sv.String()), nil
	case starlark.Float:
		return templet.StringValue(strconv.FormatFloat(float64(sv), 'g', -1, 64)), nil
	case starlark.Tuple:
		list := make(templet.ListValue, len(sv))
		for i, item := range sv {
			tv, err := FromStarlark(item)
			if err != nil {
				return nil, err
			}
			list[i] = tv
		}
		return list, nil
	case *starlark.List:
		list := make(templet.ListValue, 0, sv.Len())
		iter := sv.Iterate()
		defer iter.Done()
		var item starlark.Value
		for iter.Next(&item) {
			tv, err := FromStarlark(item)
			if err != nil {
				return nil, err
			}
			list = append(list, tv)
		}
		return list, nil
	case *starlark.Dict:
		m := make(templet.MapValue, sv.Len())
		for _, kv := range sv.Items() {
			key, ok := kv[0].(starlark.String)
			if !ok {
				return nil, fmt.Errorf("dict key %s is not a string", kv[0].String())
			}
			tv, err := FromStarlark(kv[1])
			if err != nil {
				return nil, err
			}
			m[string(key)] = tv
		}
		return m, nil
	default:
		return nil, fmt.Errorf("cannot convert starlark %s to a template value", v.Type())
	}
}
