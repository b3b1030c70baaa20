package engine

import (
	"strconv"
	"strings"
)

// Resolve locates the value named by field inside data.
//
// Object data is walked as a dotted path: "missions.count" indexes
// data["missions"]["count"]. Empty segments produced by leading, trailing or
// doubled dots are discarded. Array and string data treat field as a base-10
// index into the sequence. The second return value reports whether the field
// was found; a path through a missing key or a non-object intermediate, a
// non-numeric index, and an out-of-range index are all "not found".
func Resolve(data any, field string) (any, bool) {
	switch d := data.(type) {
	case map[string]any:
		return resolvePath(d, field)
	case []any:
		idx, ok := parseIndex(field)
		if !ok || idx < 0 || idx >= len(d) {
			return nil, false
		}
		return d[idx], true
	case string:
		idx, ok := parseIndex(field)
		runes := []rune(d)
		if !ok || idx < 0 || idx >= len(runes) {
			return nil, false
		}
		return string(runes[idx]), true
	}
	return nil, false
}

func resolvePath(m map[string]any, field string) (any, bool) {
	var current any = m
	for _, segment := range strings.Split(field, ".") {
		if segment == "" {
			continue
		}
		obj, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		if current, ok = obj[segment]; !ok {
			return nil, false
		}
	}
	return current, true
}

// parseIndex extracts a leading base-10 integer from field, ignoring
// surrounding whitespace and trailing garbage ("12abc" parses as 12).
func parseIndex(field string) (int, bool) {
	s := strings.TrimSpace(field)
	start := 0
	if start < len(s) && (s[start] == '+' || s[start] == '-') {
		start++
	}
	end := start
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
