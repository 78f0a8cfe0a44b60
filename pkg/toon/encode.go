package toon

import (
	"encoding/json"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type arrayForm int

const (
	formInline arrayForm = iota
	formTabular
	formList
)

// Marshal encodes a JSON-compatible value tree (maps, slices, scalars) as
// TOON text. Object keys and tabular field names are emitted in sorted
// order so output is deterministic.
func Marshal(value any) ([]byte, error) {
	var sb strings.Builder

	switch v := value.(type) {
	case map[string]any:
		if err := writeObject(&sb, v, 0); err != nil {
			return nil, err
		}
	case []any:
		if err := writeArray(&sb, "", false, v, 0); err != nil {
			return nil, err
		}
	default:
		s, err := formatScalar(v)
		if err != nil {
			return nil, err
		}
		sb.WriteString(s)
		sb.WriteString("\n")
	}

	return []byte(sb.String()), nil
}

func writeObject(sb *strings.Builder, m map[string]any, depth int) error {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if err := writeField(sb, k, m[k], depth); err != nil {
			return errors.Wrapf(err, "key %q", k)
		}
	}
	return nil
}

func writeField(sb *strings.Builder, key string, v any, depth int) error {
	indent := strings.Repeat(indentUnit, depth)

	switch val := v.(type) {
	case map[string]any:
		sb.WriteString(indent + quoteIfNeeded(key) + ":\n")
		return writeObject(sb, val, depth+1)
	case []any:
		return writeArray(sb, key, true, val, depth)
	default:
		s, err := formatScalar(v)
		if err != nil {
			return err
		}
		sb.WriteString(indent + quoteIfNeeded(key) + ": " + s + "\n")
		return nil
	}
}

func writeArray(sb *strings.Builder, key string, hasKey bool, items []any, depth int) error {
	indent := strings.Repeat(indentUnit, depth)

	prefix := indent
	if hasKey {
		prefix += quoteIfNeeded(key)
	}
	length := strconv.Itoa(len(items))

	switch classifyArray(items) {
	case formInline:
		tokens := make([]string, len(items))
		for i, item := range items {
			s, err := formatScalar(item)
			if err != nil {
				return err
			}
			tokens[i] = s
		}
		if len(tokens) == 0 {
			sb.WriteString(prefix + "[0]:\n")
		} else {
			sb.WriteString(prefix + "[" + length + "]: " + strings.Join(tokens, ",") + "\n")
		}
		return nil

	case formTabular:
		fields := tabularFields(items[0].(map[string]any))
		quoted := make([]string, len(fields))
		for i, f := range fields {
			quoted[i] = quoteIfNeeded(f)
		}
		sb.WriteString(prefix + "[" + length + "]{" + strings.Join(quoted, ",") + "}:\n")

		rowIndent := strings.Repeat(indentUnit, depth+1)
		for _, item := range items {
			record := item.(map[string]any)
			cells := make([]string, len(fields))
			for i, f := range fields {
				s, err := formatScalar(record[f])
				if err != nil {
					return err
				}
				cells[i] = s
			}
			sb.WriteString(rowIndent + strings.Join(cells, ",") + "\n")
		}
		return nil

	default: // formList
		sb.WriteString(prefix + "[" + length + "]:\n")
		itemIndent := strings.Repeat(indentUnit, depth+1)
		for _, item := range items {
			switch val := item.(type) {
			case map[string]any:
				sb.WriteString(itemIndent + "-\n")
				if err := writeObject(sb, val, depth+2); err != nil {
					return err
				}
			case []any:
				sb.WriteString(itemIndent + "-\n")
				if err := writeArray(sb, "", false, val, depth+2); err != nil {
					return err
				}
			default:
				s, err := formatScalar(item)
				if err != nil {
					return err
				}
				sb.WriteString(itemIndent + "- " + s + "\n")
			}
		}
		return nil
	}
}

// classifyArray picks the densest form the elements allow: inline for all
// scalars, tabular for records sharing one flat key set, list otherwise.
func classifyArray(items []any) arrayForm {
	if len(items) == 0 {
		return formInline
	}

	allScalar := true
	for _, item := range items {
		if !isScalar(item) {
			allScalar = false
			break
		}
	}
	if allScalar {
		return formInline
	}

	first, ok := items[0].(map[string]any)
	if !ok || len(first) == 0 {
		return formList
	}
	fields := tabularFields(first)

	for _, item := range items {
		record, ok := item.(map[string]any)
		if !ok || len(record) != len(fields) {
			return formList
		}
		for _, f := range fields {
			v, exists := record[f]
			if !exists || !isScalar(v) {
				return formList
			}
			// Braces in a field name would corrupt the {f1,f2} header.
			if strings.ContainsAny(f, "{}") {
				return formList
			}
		}
	}
	return formTabular
}

func tabularFields(record map[string]any) []string {
	fields := make([]string, 0, len(record))
	for k := range record {
		fields = append(fields, k)
	}
	sort.Strings(fields)
	return fields
}

// VerifyRoundTrip encodes the value, decodes the result, and returns an
// error when the decoded tree differs from the input. json.Number values
// compare as float64, matching how Unmarshal decodes numbers.
func VerifyRoundTrip(value any) error {
	encoded, err := Marshal(value)
	if err != nil {
		return err
	}
	decoded, err := Unmarshal(encoded)
	if err != nil {
		return errors.Wrap(err, "decoding encoded output")
	}
	if !reflect.DeepEqual(normalizeNumbers(value), decoded) {
		return errors.New("decoded value differs from input")
	}
	return nil
}

func normalizeNumbers(value any) any {
	switch v := value.(type) {
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return string(v)
		}
		return f
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case map[string]any:
		m := make(map[string]any, len(v))
		for k, item := range v {
			m[k] = normalizeNumbers(item)
		}
		return m
	case []any:
		items := make([]any, len(v))
		for i, item := range v {
			items[i] = normalizeNumbers(item)
		}
		return items
	default:
		return value
	}
}
