// Package binding resolves `${path.to.value}` references against decoded
// JSON data, so one layout file can be sized from external input.
package binding

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var exprPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// Interpolate 将文本中的 ${path} 替换为 data 中的值。
// data 为空或路径不存在时保留原占位符，由调用方决定如何报错。
func Interpolate(text string, data any) string {
	if data == nil || !strings.Contains(text, "${") {
		return text
	}
	return exprPattern.ReplaceAllStringFunc(text, func(match string) string {
		path := strings.TrimSpace(match[2 : len(match)-1])
		if val, ok := Lookup(data, path); ok {
			return format(val)
		}
		return match
	})
}

// Unresolved returns the placeholders left in text after interpolation.
func Unresolved(text string) []string {
	return exprPattern.FindAllString(text, -1)
}

// Lookup walks path (`a.b[0].c`) through maps and slices produced by
// encoding/json.
func Lookup(data any, path string) (any, bool) {
	if path == "" {
		return nil, false
	}
	current := data
	for _, segment := range strings.Split(path, ".") {
		key, indexes, ok := splitSegment(segment)
		if !ok {
			return nil, false
		}
		if key != "" {
			m, isMap := current.(map[string]any)
			if !isMap {
				return nil, false
			}
			if current, ok = m[key]; !ok {
				return nil, false
			}
		}
		for _, idx := range indexes {
			items, isSlice := current.([]any)
			if !isSlice || idx < 0 || idx >= len(items) {
				return nil, false
			}
			current = items[idx]
		}
	}
	return current, true
}

// splitSegment splits `items[2][0]` into "items" and [2 0].
func splitSegment(segment string) (string, []int, bool) {
	open := strings.IndexByte(segment, '[')
	if open == -1 {
		return segment, nil, segment != ""
	}
	key := segment[:open]
	var indexes []int
	rest := segment[open:]
	for rest != "" {
		end := strings.IndexByte(rest, ']')
		if rest[0] != '[' || end == -1 {
			return "", nil, false
		}
		idx, err := strconv.Atoi(rest[1:end])
		if err != nil {
			return "", nil, false
		}
		indexes = append(indexes, idx)
		rest = rest[end+1:]
	}
	return key, indexes, true
}

// format renders JSON numbers without exponent noise so they can be glued
// to a unit suffix (`${w}px`).
func format(v any) string {
	switch n := v.(type) {
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	case string:
		return n
	default:
		return fmt.Sprint(v)
	}
}
