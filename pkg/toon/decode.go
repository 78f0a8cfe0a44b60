package toon

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Unmarshal parses TOON text back into a JSON-compatible value tree.
// Objects decode to map[string]any, arrays to []any, numbers to float64,
// matching the encoding/json conventions for untyped decoding.
func Unmarshal(data []byte) (any, error) {
	d, err := newDecoder(string(data))
	if err != nil {
		return nil, err
	}
	// An empty object encodes to zero lines, so a blank document reads
	// back as the empty object.
	if len(d.lines) == 0 {
		return map[string]any{}, nil
	}

	var value any
	first := d.lines[0]
	switch {
	case first.depth != 0:
		return nil, errors.Errorf("line %d: unexpected indentation at top level", first.num)
	case strings.HasPrefix(first.text, "["):
		h, err := parseHeader(first.text, false)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", first.num)
		}
		h.lineNum = first.num
		d.pos++
		value, err = d.parseArrayBody(h, 0)
		if err != nil {
			return nil, err
		}
	case len(d.lines) == 1 && !isFieldLine(first.text):
		d.pos++
		v, err := parseScalar(first.text)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", first.num)
		}
		value = v
	default:
		v, err := d.parseObject(0)
		if err != nil {
			return nil, err
		}
		value = v
	}

	if d.pos < len(d.lines) {
		return nil, errors.Errorf("line %d: unexpected content after document", d.lines[d.pos].num)
	}
	return value, nil
}

type line struct {
	num   int
	depth int
	text  string
}

type decoder struct {
	lines []line
	pos   int
}

func newDecoder(input string) (*decoder, error) {
	d := &decoder{}
	for i, raw := range strings.Split(input, "\n") {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		indent := len(raw) - len(strings.TrimLeft(raw, " "))
		text := raw[indent:]
		if strings.HasPrefix(text, "\t") {
			return nil, errors.Errorf("line %d: tab indentation is not allowed", i+1)
		}
		if indent%2 != 0 {
			return nil, errors.Errorf("line %d: indentation must be a multiple of two spaces", i+1)
		}
		d.lines = append(d.lines, line{num: i + 1, depth: indent / 2, text: text})
	}
	return d, nil
}

func (d *decoder) peek() (line, bool) {
	if d.pos >= len(d.lines) {
		return line{}, false
	}
	return d.lines[d.pos], true
}

func (d *decoder) parseObject(depth int) (map[string]any, error) {
	m := make(map[string]any)

	for {
		ln, ok := d.peek()
		if !ok || ln.depth < depth {
			return m, nil
		}
		if ln.depth > depth {
			return nil, errors.Errorf("line %d: unexpected indentation", ln.num)
		}

		h, err := parseHeader(ln.text, true)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", ln.num)
		}
		h.lineNum = ln.num
		if _, dup := m[h.key]; dup {
			return nil, errors.Errorf("line %d: duplicate key %q", ln.num, h.key)
		}
		d.pos++

		value, err := d.parseFieldValue(h, ln, depth)
		if err != nil {
			return nil, err
		}
		m[h.key] = value
	}
}

func (d *decoder) parseFieldValue(h header, ln line, depth int) (any, error) {
	if !h.isArray {
		if h.rest != "" {
			v, err := parseScalar(h.rest)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", ln.num)
			}
			return v, nil
		}
		// Bare "key:" introduces a nested object; no deeper lines means
		// the object is empty.
		if next, ok := d.peek(); ok && next.depth == depth+1 {
			return d.parseObject(depth + 1)
		}
		return map[string]any{}, nil
	}
	return d.parseArrayBody(h, depth)
}

// parseArrayBody consumes the body of an array whose header sits at the
// given depth. The header line itself has already been consumed.
func (d *decoder) parseArrayBody(h header, depth int) (any, error) {
	switch {
	case h.hasFields:
		return d.parseTabularRows(h, depth)
	case h.rest != "":
		return parseInlineValues(h)
	case h.count == 0:
		return []any{}, nil
	default:
		return d.parseListItems(h, depth)
	}
}

func parseInlineValues(h header) ([]any, error) {
	tokens := splitValues(h.rest)
	if len(tokens) != h.count {
		return nil, errors.Errorf("line %d: array declares %d values but has %d", h.lineNum, h.count, len(tokens))
	}
	items := make([]any, len(tokens))
	for i, tok := range tokens {
		v, err := parseScalar(tok)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", h.lineNum)
		}
		items[i] = v
	}
	return items, nil
}

func (d *decoder) parseTabularRows(h header, depth int) ([]any, error) {
	items := make([]any, 0, h.count)

	for {
		ln, ok := d.peek()
		if !ok || ln.depth <= depth {
			break
		}
		if ln.depth != depth+1 {
			return nil, errors.Errorf("line %d: unexpected indentation in table", ln.num)
		}
		d.pos++

		cells := splitValues(ln.text)
		if len(cells) != len(h.fields) {
			return nil, errors.Errorf("line %d: row has %d cells but %d fields declared", ln.num, len(cells), len(h.fields))
		}
		record := make(map[string]any, len(h.fields))
		for i, f := range h.fields {
			v, err := parseScalar(cells[i])
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", ln.num)
			}
			record[f] = v
		}
		items = append(items, record)
	}

	if len(items) != h.count {
		return nil, errors.Errorf("line %d: array declares %d rows but has %d", h.lineNum, h.count, len(items))
	}
	return items, nil
}

func (d *decoder) parseListItems(h header, depth int) ([]any, error) {
	items := make([]any, 0, h.count)

	for {
		ln, ok := d.peek()
		if !ok || ln.depth <= depth {
			break
		}
		if ln.depth != depth+1 {
			return nil, errors.Errorf("line %d: unexpected indentation in list", ln.num)
		}

		switch {
		case ln.text == "-":
			d.pos++
			item, err := d.parseListBlock(depth + 1)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		case strings.HasPrefix(ln.text, "- "):
			d.pos++
			v, err := parseScalar(strings.TrimSpace(ln.text[2:]))
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", ln.num)
			}
			items = append(items, v)
		default:
			return nil, errors.Errorf("line %d: expected list item starting with %q", ln.num, "- ")
		}
	}

	if len(items) != h.count {
		return nil, errors.Errorf("line %d: array declares %d items but has %d", h.lineNum, h.count, len(items))
	}
	return items, nil
}

// parseListBlock handles the block after a bare "-" item marker: either a
// nested object or, when the next line opens with a key-less array header,
// a nested array.
func (d *decoder) parseListBlock(depth int) (any, error) {
	ln, ok := d.peek()
	if !ok || ln.depth <= depth {
		return map[string]any{}, nil
	}
	if strings.HasPrefix(ln.text, "[") {
		h, err := parseHeader(ln.text, false)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", ln.num)
		}
		h.lineNum = ln.num
		d.pos++
		return d.parseArrayBody(h, depth+1)
	}
	return d.parseObject(depth + 1)
}

type header struct {
	key       string
	isArray   bool
	count     int
	fields    []string
	hasFields bool
	rest      string
	lineNum   int
}

func isFieldLine(text string) bool {
	_, err := parseHeader(text, true)
	return err == nil
}

// parseHeader dissects a single field or array header line:
//
//	key: value
//	key:
//	key[N]: v1,v2
//	key[N]{f1,f2}:
//	key[N]:
//
// With keyed=false the key is absent and the line starts at "[".
func parseHeader(text string, keyed bool) (header, error) {
	h := header{}
	i := 0

	if keyed {
		var err error
		h.key, i, err = parseKey(text)
		if err != nil {
			return h, err
		}
	}

	if i < len(text) && text[i] == '[' {
		h.isArray = true
		end := strings.IndexByte(text[i:], ']')
		if end < 0 {
			return h, errors.New("unterminated array length")
		}
		count, err := strconv.Atoi(text[i+1 : i+end])
		if err != nil || count < 0 {
			return h, errors.Errorf("invalid array length %q", text[i+1:i+end])
		}
		h.count = count
		i += end + 1

		if i < len(text) && text[i] == '{' {
			end := strings.IndexByte(text[i:], '}')
			if end < 0 {
				return h, errors.New("unterminated field list")
			}
			h.hasFields = true
			fields, err := parseFieldNames(text[i+1 : i+end])
			if err != nil {
				return h, err
			}
			h.fields = fields
			i += end + 1
		}
	}

	if i >= len(text) || text[i] != ':' {
		return h, errors.Errorf("expected ':' in %q", text)
	}
	h.rest = strings.TrimSpace(text[i+1:])

	if h.hasFields && h.rest != "" {
		return h, errors.New("tabular header cannot carry inline values")
	}
	return h, nil
}

func parseKey(text string) (string, int, error) {
	if strings.HasPrefix(text, "\"") {
		end := quotedEnd(text)
		if end < 0 {
			return "", 0, errors.Errorf("unterminated quoted key in %q", text)
		}
		key, err := strconv.Unquote(text[:end+1])
		if err != nil {
			return "", 0, errors.Wrapf(err, "malformed quoted key in %q", text)
		}
		return key, end + 1, nil
	}

	idx := strings.IndexAny(text, ":[")
	if idx <= 0 {
		return "", 0, errors.Errorf("missing key in %q", text)
	}
	return text[:idx], idx, nil
}

// quotedEnd returns the index of the closing quote of a string that starts
// with one, or -1.
func quotedEnd(s string) int {
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return i
		}
	}
	return -1
}

func parseFieldNames(s string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return nil, errors.New("empty field list")
	}
	tokens := splitValues(s)
	fields := make([]string, len(tokens))
	for i, tok := range tokens {
		if strings.HasPrefix(tok, "\"") {
			f, err := strconv.Unquote(tok)
			if err != nil {
				return nil, errors.Wrapf(err, "malformed quoted field %q", tok)
			}
			fields[i] = f
		} else {
			fields[i] = tok
		}
	}
	return fields, nil
}
