package templet

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// A path expression addresses a value in the context tree:
//
//	name ('[' digits ']')* ('.' name ('[' digits ']')*)*
//
// with name drawn from [A-Za-z0-9_-]+. Dot notation descends into maps,
// bracket indices into lists.

type pathSegment struct {
	name    string
	indices []int
}

// ValidatePath checks a path expression against the tag grammar without
// resolving it. Parsers call this at node-construction time so that
// malformed paths fail when the template is parsed, not when rendered.
func ValidatePath(path string) error {
	_, err := parsePath(path)
	return err
}

func parsePath(path string) ([]pathSegment, error) {
	if path == "" {
		return nil, &InvalidTagError{Reason: "empty tag name"}
	}
	parts := strings.Split(path, ".")
	segs := make([]pathSegment, 0, len(parts))
	for _, part := range parts {
		seg, err := parseSegment(part)
		if err != nil {
			return nil, err
		}
		segs = append(segs, seg)
	}
	return segs, nil
}

func parseSegment(in string) (pathSegment, error) {
	name := in
	rest := ""
	if br := strings.IndexByte(in, '['); br >= 0 {
		name, rest = in[:br], in[br:]
	}
	if name == "" {
		return pathSegment{}, &InvalidTagError{Reason: "path segment must have a name"}
	}
	if !validName(name) {
		return pathSegment{}, &InvalidTagError{Reason: "tag name must only contain a-zA-Z0-9_-"}
	}
	seg := pathSegment{name: name}
	for rest != "" {
		if rest[0] != '[' {
			return pathSegment{}, &InvalidTagError{Reason: "unexpected text after array index"}
		}
		close := strings.IndexByte(rest, ']')
		if close < 0 {
			return pathSegment{}, &InvalidTagError{Reason: "array index must be enclosed with []"}
		}
		idx, err := parseIndex(rest[1:close])
		if err != nil {
			return pathSegment{}, err
		}
		seg.indices = append(seg.indices, idx)
		rest = rest[close+1:]
	}
	return seg, nil
}

// parseIndex accepts a plain base-10 integer. Negative indices are never
// valid, and an index too large for int is rejected rather than wrapped.
func parseIndex(raw string) (int, error) {
	if strings.HasPrefix(raw, "+") {
		return 0, &InvalidTagError{Reason: "array index must be an integer"}
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, &InvalidTagError{Reason: "array index is out of range"}
		}
		return 0, &InvalidTagError{Reason: "array index must be an integer"}
	}
	if n < 0 {
		return 0, &InvalidTagError{Reason: "array index must not be negative"}
	}
	return n, nil
}

func validName(name string) bool {
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_' || c == '-':
		default:
			return false
		}
	}
	return len(name) > 0
}

// Resolve walks a path expression against scope and returns the value it
// addresses. A nil Value with a nil error is a soft miss: the name was
// absent or a list index fell out of range. Structural defects in the path
// or a type mismatch along the way return a hard error.
func Resolve(path string, scope MapValue) (Value, error) {
	segs, err := parsePath(path)
	if err != nil {
		return nil, err
	}
	cur := scope
	for i, seg := range segs {
		v, ok := cur[seg.name]
		if !ok {
			return nil, nil
		}
		for _, idx := range seg.indices {
			list, ok := v.(ListValue)
			if !ok {
				return nil, &InvalidTagError{Reason: fmt.Sprintf("only lists support array indexes, %q is a %s", seg.name, v.Kind())}
			}
			if idx >= len(list) {
				return nil, nil
			}
			v = list[idx]
		}
		if i == len(segs)-1 {
			return v, nil
		}
		m, ok := v.(MapValue)
		if !ok {
			return nil, &InvalidTagError{Reason: fmt.Sprintf("name %q does not reference a map", seg.name)}
		}
		cur = m
	}
	return nil, nil
}
