// Package toon implements the TOON text serialization format, a compact
// indentation-based alternative to JSON used for token-efficient LLM context.
//
// Objects nest by two-space indent. Arrays render in one of three forms:
//
//	users[2]{id,name}:    tabular: uniform record arrays, one row per record
//	  1,alice
//	  2,bob
//	tags[3]: a,b,c        inline: scalar arrays
//	mixed[2]:             list: anything else, one "- " item per element
//	  - 42
//	  -
//	    nested: true
//
// Scalars are null, true/false, JSON numbers, or strings. Strings and keys
// are double-quoted when bare text would be ambiguous. Round-trip equality
// holds for trees of scalars, scalar arrays, and uniform-keyed object
// arrays; heterogeneous arrays take the list form and round-trip on a
// best-effort basis.
package toon

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const indentUnit = "  "

// Bare tokens matching this pattern are decoded as numbers; anything the
// encoder emits unquoted must either match it or be a keyword.
var numberRe = regexp.MustCompile(`^-?(?:0|[1-9][0-9]*)(?:\.[0-9]+)?(?:[eE][+-]?[0-9]+)?$`)

func isKeyword(s string) bool {
	return s == "null" || s == "true" || s == "false"
}

// needsQuote reports whether a string must be quoted to survive a decode
// as the same string value.
func needsQuote(s string) bool {
	if s == "" || s == "-" {
		return true
	}
	if s != strings.TrimSpace(s) {
		return true
	}
	if strings.ContainsAny(s, ",:\"\n[") {
		return true
	}
	if strings.HasPrefix(s, "- ") || s[0] == '[' || s[0] == '{' || s[0] == '#' {
		return true
	}
	return isKeyword(s) || numberRe.MatchString(s)
}

func quoteIfNeeded(s string) string {
	if needsQuote(s) {
		return strconv.Quote(s)
	}
	return s
}

func formatScalar(v any) (string, error) {
	switch s := v.(type) {
	case nil:
		return "null", nil
	case bool:
		return strconv.FormatBool(s), nil
	case string:
		return quoteIfNeeded(s), nil
	case float64:
		return strconv.FormatFloat(s, 'g', -1, 64), nil
	case float32:
		return strconv.FormatFloat(float64(s), 'g', -1, 32), nil
	case int:
		return strconv.Itoa(s), nil
	case int64:
		return strconv.FormatInt(s, 10), nil
	case json.Number:
		return s.String(), nil
	default:
		return "", errors.Errorf("unsupported scalar type %T", v)
	}
}

func isScalar(v any) bool {
	switch v.(type) {
	case nil, bool, string, float64, float32, int, int64, json.Number:
		return true
	default:
		return false
	}
}

func parseScalar(token string) (any, error) {
	switch {
	case token == "null":
		return nil, nil
	case token == "true":
		return true, nil
	case token == "false":
		return false, nil
	case strings.HasPrefix(token, "\""):
		s, err := strconv.Unquote(token)
		if err != nil {
			return nil, errors.Wrapf(err, "malformed quoted string %s", token)
		}
		return s, nil
	case numberRe.MatchString(token):
		f, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "malformed number %q", token)
		}
		return f, nil
	default:
		return token, nil
	}
}

// splitValues splits a comma-separated value list, honoring double quotes
// and backslash escapes inside them.
func splitValues(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	var tokens []string
	var cur strings.Builder
	inQuote := false

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case inQuote && c == '\\' && i+1 < len(s):
			cur.WriteByte(c)
			i++
			cur.WriteByte(s[i])
		case c == '"':
			inQuote = !inQuote
			cur.WriteByte(c)
		case c == ',' && !inQuote:
			tokens = append(tokens, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	tokens = append(tokens, strings.TrimSpace(cur.String()))
	return tokens
}
