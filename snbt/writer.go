package snbt

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/MinecraftDataGenerator/mc-nbt/nbt"
	"github.com/MinecraftDataGenerator/mc-nbt/tag"
)

var noQuotePattern = regexp.MustCompile(`^[A-Za-z0-9._+-]+$`)

// formatDecimal renders v the way Minecraft's SNBT writer does: shortest
// round-trip decimal representation that always keeps a decimal point, so
// that a value like 5.0 is written "5.0" rather than strconv's bare "5".
func formatDecimal(v float64, bitSize int) string {
	s := strconv.FormatFloat(v, 'f', -1, bitSize)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// Write serializes value to SNBT text using profile's quoting rules. The
// legacy dialects share the modern serializer except that compound keys
// are written raw, never quoted (see writeKey); numeric suffixes are
// written for every profile.
func Write(value *nbt.Node, profile Profile) string {
	var sb strings.Builder
	writeNode(&sb, value, profile)
	return sb.String()
}

func writeNode(sb *strings.Builder, n *nbt.Node, p Profile) {
	switch n.Kind() {
	case tag.Byte:
		v, _ := n.AsByte()
		sb.WriteString(strconv.FormatInt(int64(v), 10))
		sb.WriteByte('b')
	case tag.Short:
		v, _ := n.AsShort()
		sb.WriteString(strconv.FormatInt(int64(v), 10))
		sb.WriteByte('s')
	case tag.Int:
		v, _ := n.AsInt()
		sb.WriteString(strconv.FormatInt(int64(v), 10))
	case tag.Long:
		v, _ := n.AsLong()
		sb.WriteString(strconv.FormatInt(v, 10))
		sb.WriteByte('L')
	case tag.Float:
		v, _ := n.AsFloat()
		sb.WriteString(formatDecimal(float64(v), 32))
		sb.WriteByte('f')
	case tag.Double:
		v, _ := n.AsDouble()
		sb.WriteString(formatDecimal(v, 64))
		sb.WriteByte('d')
	case tag.ByteArray:
		v, _ := n.AsByteArray()
		sb.WriteString("[B;")
		for i, x := range v {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.FormatInt(int64(x), 10))
			sb.WriteByte('B')
		}
		sb.WriteByte(']')
	case tag.IntArray:
		v, _ := n.AsIntArray()
		sb.WriteString("[I;")
		for i, x := range v {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.FormatInt(int64(x), 10))
		}
		sb.WriteByte(']')
	case tag.LongArray:
		v, _ := n.AsLongArray()
		sb.WriteString("[L;")
		for i, x := range v {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.FormatInt(x, 10))
			sb.WriteByte('L')
		}
		sb.WriteByte(']')
	case tag.String:
		s, _ := n.AsString()
		sb.WriteString(quoteValue(s, p))
	case tag.List:
		sb.WriteByte('[')
		items, _ := n.Items()
		for i, item := range items {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeNode(sb, item, p)
		}
		sb.WriteByte(']')
	case tag.Compound:
		sb.WriteByte('{')
		first := true
		n.Range(func(name string, v *nbt.Node) bool {
			if !first {
				sb.WriteByte(',')
			}
			first = false
			sb.WriteString(writeKey(name, p))
			sb.WriteByte(':')
			writeNode(sb, v, p)
			return true
		})
		sb.WriteByte('}')
	}
}

// writeKey renders a compound key. Legacy profiles never escape keys at
// all; modern profiles may leave an unquoted-safe key bare.
func writeKey(key string, p Profile) string {
	if p.LegacyParser {
		return key
	}
	if p.unquoteStrings && noQuotePattern.MatchString(key) {
		return key
	}
	return quoted(key, p)
}

// quoteValue renders a TAG_String payload. String values are always
// quoted, unlike keys: only keys may be left bare under modern profiles.
func quoteValue(s string, p Profile) string {
	return quoted(s, p)
}

func quoted(s string, p Profile) string {
	quote := byte('"')
	if p.AllowSingleQuotes && strings.ContainsRune(s, '"') && !strings.ContainsRune(s, '\'') {
		quote = '\''
	}

	var sb strings.Builder
	sb.WriteByte(quote)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' || c == quote {
			sb.WriteByte('\\')
		}
		sb.WriteByte(c)
	}
	sb.WriteByte(quote)
	return sb.String()
}
