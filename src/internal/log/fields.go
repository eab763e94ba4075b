package log

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

func sortedKeys(data map[string]interface{}) []string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func formatField(v interface{}) string {
	s := fmt.Sprint(v)
	if strings.ContainsAny(s, " \t\"=") {
		return strconv.Quote(s)
	}
	return s
}
