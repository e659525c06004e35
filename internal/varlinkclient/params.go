package varlinkclient

import (
	"regexp"
	"strconv"
	"strings"

	"vsh/internal/record"
)

var floatGrammar = regexp.MustCompile(`^-?[0-9]+\.[0-9]+([eE][-+]?[0-9]+)?$`)
var intGrammar = regexp.MustCompile(`^-?[0-9]+$`)

// CoerceParam applies a k=v typed coercion to a single raw
// argument value: "true"/"false" -> Bool, an integer literal -> Int, a
// float literal -> Float, a leading "{" or "[" that parses as JSON ->
// that JSON value, else the raw string.
func CoerceParam(raw string) record.Value {
	switch raw {
	case "true":
		return record.Bool(true)
	case "false":
		return record.Bool(false)
	}
	if intGrammar.MatchString(raw) {
		if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return record.Int(i)
		}
	}
	if floatGrammar.MatchString(raw) {
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return record.Float(f)
		}
	}
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		if v, err := record.Decode([]byte(raw)); err == nil {
			return v
		}
	}
	return record.String(raw)
}

// ParseKV parses a "k=v" argument into its key and coerced Value. ok is
// false when arg contains no "=".
func ParseKV(arg string) (key string, val record.Value, ok bool) {
	k, v, found := strings.Cut(arg, "=")
	if !found {
		return "", record.Value{}, false
	}
	return k, CoerceParam(v), true
}
