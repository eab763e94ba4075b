package spp

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// IsInteger reports whether v is a JSON integer and returns it.
// Strings are not accepted.
func IsInteger(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return int(n), true
	}
	return 0, false
}

// ParseInt reports whether v is integer-parseable: a JSON integer or a
// string holding a base-10 integer.
func ParseInt(v any) (int, bool) {
	if s, ok := v.(string); ok {
		i, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return 0, false
		}
		return i, true
	}
	return IsInteger(v)
}
