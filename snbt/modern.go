package snbt

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/MinecraftDataGenerator/mc-nbt/nbt"
)

var (
	floatPattern        = regexp.MustCompile(`(?i)^[-+]?(?:[0-9]+[.]?|[0-9]*[.][0-9]+)(?:e[-+]?[0-9]+)?f$`)
	bytePattern         = regexp.MustCompile(`(?i)^[-+]?(?:0|[1-9][0-9]*)b$`)
	shortPattern        = regexp.MustCompile(`(?i)^[-+]?(?:0|[1-9][0-9]*)s$`)
	longPattern         = regexp.MustCompile(`(?i)^[-+]?(?:0|[1-9][0-9]*)l$`)
	intPattern          = regexp.MustCompile(`^[-+]?(?:0|[1-9][0-9]*)$`)
	doublePattern       = regexp.MustCompile(`(?i)^[-+]?(?:[0-9]+[.]?|[0-9]*[.][0-9]+)(?:e[-+]?[0-9]+)?d$`)
	doublePatternNoSfx  = regexp.MustCompile(`(?i)^[-+]?(?:[0-9]+[.]|[0-9]*[.][0-9]+)(?:e[-+]?[0-9]+)?$`)
)

// modernParser is a cursor-based recursive descent parser for the modern
// (1.12+) SNBT grammar.
type modernParser struct {
	c *cursor
	p Profile
}

func parseModern(s string, p Profile) (*nbt.Node, error) {
	m := &modernParser{c: newCursor(s), p: p}
	v, err := m.parseValue()
	if err != nil {
		return nil, err
	}
	m.c.skipWhitespace()
	if m.c.canRead() {
		return nil, fmt.Errorf("%w: %w", ErrTrailingData, parseErr(s, m.c.index, "Unexpected input after value"))
	}
	return v, nil
}

func (m *modernParser) isQuote(c byte) bool {
	return c == '"' || (m.p.AllowSingleQuotes && c == '\'')
}

func (m *modernParser) parseValue() (*nbt.Node, error) {
	m.c.skipWhitespace()
	if !m.c.canRead() {
		return nil, parseErr(m.c.buf, m.c.index, "Expected value")
	}
	switch m.c.peek() {
	case '{':
		return m.parseCompound()
	case '[':
		return m.parseListOrArray()
	default:
		return m.parsePrimitive()
	}
}

func (m *modernParser) parseCompound() (*nbt.Node, error) {
	if err := m.c.expect('{'); err != nil {
		return nil, err
	}
	m.c.skipWhitespace()

	compound := nbt.NewCompound()
	for m.c.canRead() && m.c.peek() != '}' {
		key, err := m.readKey()
		if err != nil {
			return nil, err
		}
		if key == "" {
			return nil, parseErr(m.c.buf, m.c.index, "Expected key")
		}
		if err := m.c.expect(':'); err != nil {
			return nil, err
		}
		v, err := m.parseValue()
		if err != nil {
			return nil, err
		}
		if _, err := compound.Put(key, v); err != nil {
			return nil, err
		}
		if !m.hasNext() {
			break
		}
	}
	if err := m.c.expect('}'); err != nil {
		return nil, err
	}
	return compound, nil
}

func (m *modernParser) parseListOrArray() (*nbt.Node, error) {
	if m.c.canReadN(3) && !m.isQuote(m.c.peekAt(1)) && m.c.peekAt(2) == ';' {
		return m.parseArray()
	}
	return m.parseList()
}

func (m *modernParser) parseArray() (*nbt.Node, error) {
	if err := m.c.expect('['); err != nil {
		return nil, err
	}
	kind := m.c.read()
	m.c.read() // ';'
	m.c.skipWhitespace()

	switch kind {
	case 'B':
		var list []int8
		for m.c.peek() != ']' {
			v, err := m.readNumberFor("byte")
			if err != nil {
				return nil, err
			}
			list = append(list, v.AsByteWidening())
			if !m.hasNext() {
				break
			}
		}
		if err := m.c.expect(']'); err != nil {
			return nil, err
		}
		return nbt.NewByteArray(list), nil
	case 'I':
		var list []int32
		for m.c.peek() != ']' {
			v, err := m.readNumberFor("int")
			if err != nil {
				return nil, err
			}
			list = append(list, v.AsIntWidening())
			if !m.hasNext() {
				break
			}
		}
		if err := m.c.expect(']'); err != nil {
			return nil, err
		}
		return nbt.NewIntArray(list), nil
	case 'L':
		var list []int64
		for m.c.peek() != ']' {
			v, err := m.readNumberFor("long")
			if err != nil {
				return nil, err
			}
			list = append(list, v.AsLongWidening())
			if !m.hasNext() {
				break
			}
		}
		if err := m.c.expect(']'); err != nil {
			return nil, err
		}
		return nbt.NewLongArray(list), nil
	default:
		return nil, parseErr(m.c.buf, m.c.index, "Invalid array type %c", kind)
	}
}

func (m *modernParser) readNumberFor(expected string) (*nbt.Node, error) {
	v, err := m.parseValue()
	if err != nil {
		return nil, err
	}
	if !v.Kind().IsNumeric() {
		return nil, parseErr(m.c.buf, m.c.index, "Expected %s", expected)
	}
	return v, nil
}

func (m *modernParser) parseList() (*nbt.Node, error) {
	if err := m.c.expect('['); err != nil {
		return nil, err
	}
	m.c.skipWhitespace()
	if !m.c.canRead() {
		return nil, parseErr(m.c.buf, m.c.index, "Unexpected end")
	}

	list := nbt.NewList()
	for m.c.peek() != ']' {
		v, err := m.parseValue()
		if err != nil {
			return nil, err
		}
		if err := list.Append(v); err != nil {
			return nil, err
		}
		if !m.hasNext() {
			break
		}
	}
	if err := m.c.expect(']'); err != nil {
		return nil, err
	}
	return list, nil
}

func (m *modernParser) parsePrimitive() (*nbt.Node, error) {
	m.c.skipWhitespace()
	if m.isQuote(m.c.peek()) {
		s, err := m.c.readQuotedString()
		if err != nil {
			return nil, err
		}
		return nbt.NewString(s), nil
	}
	token := m.c.readUnquotedString()
	if token == "" {
		return nil, parseErr(m.c.buf, m.c.index, "Expected value")
	}
	return primitiveFromToken(token), nil
}

// primitiveFromToken classifies an unquoted token by first-match-wins
// regex cascade, exactly mirroring the Notchian ordering: float, byte,
// short, long, int, double-with-suffix, double-without-suffix, boolean,
// then string as the final fallback.
func primitiveFromToken(s string) *nbt.Node {
	switch {
	case floatPattern.MatchString(s):
		if f, err := strconv.ParseFloat(s[:len(s)-1], 32); err == nil {
			return nbt.NewFloat(float32(f))
		}
	case bytePattern.MatchString(s):
		if v, err := strconv.ParseInt(s[:len(s)-1], 10, 8); err == nil {
			return nbt.NewByte(int8(v))
		}
	case shortPattern.MatchString(s):
		if v, err := strconv.ParseInt(s[:len(s)-1], 10, 16); err == nil {
			return nbt.NewShort(int16(v))
		}
	case longPattern.MatchString(s):
		if v, err := strconv.ParseInt(s[:len(s)-1], 10, 64); err == nil {
			return nbt.NewLong(v)
		}
	case intPattern.MatchString(s):
		if v, err := strconv.ParseInt(s, 10, 32); err == nil {
			return nbt.NewInt(int32(v))
		}
	case doublePattern.MatchString(s):
		if f, err := strconv.ParseFloat(s[:len(s)-1], 64); err == nil {
			return nbt.NewDouble(f)
		}
	case doublePatternNoSfx.MatchString(s):
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return nbt.NewDouble(f)
		}
	}
	switch {
	case equalFold(s, "true"):
		return nbt.NewByte(1)
	case equalFold(s, "false"):
		return nbt.NewByte(0)
	}
	return nbt.NewString(s)
}

func equalFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if ca >= 'A' && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if cb >= 'A' && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}

func (m *modernParser) readKey() (string, error) {
	m.c.skipWhitespace()
	if !m.c.canRead() {
		return "", nil
	}
	if m.isQuote(m.c.peek()) {
		return m.c.readQuotedString()
	}
	return m.c.readUnquotedString(), nil
}

func (m *modernParser) hasNext() bool {
	m.c.skipWhitespace()
	if m.c.canRead() && m.c.peek() == ',' {
		m.c.skip()
		m.c.skipWhitespace()
		return true
	}
	return false
}
