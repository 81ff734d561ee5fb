// Package tag defines the NBT tag kind identifiers and their wire ids.
package tag

import "fmt"

// Kind identifies the type of a single NBT tag, matching the one-byte id
// written immediately before a tag's name on the wire.
type Kind byte

const (
	End       Kind = 0
	Byte      Kind = 1
	Short     Kind = 2
	Int       Kind = 3
	Long      Kind = 4
	Float     Kind = 5
	Double    Kind = 6
	ByteArray Kind = 7
	String    Kind = 8
	List      Kind = 9
	Compound  Kind = 10
	IntArray  Kind = 11
	LongArray Kind = 12
)

var names = map[Kind]string{
	End:       "TAG_End",
	Byte:      "TAG_Byte",
	Short:     "TAG_Short",
	Int:       "TAG_Int",
	Long:      "TAG_Long",
	Float:     "TAG_Float",
	Double:    "TAG_Double",
	ByteArray: "TAG_Byte_Array",
	String:    "TAG_String",
	List:      "TAG_List",
	Compound:  "TAG_Compound",
	IntArray:  "TAG_Int_Array",
	LongArray: "TAG_Long_Array",
}

// String returns the Notchian tag name, e.g. "TAG_Compound".
func (k Kind) String() string {
	if s, ok := names[k]; ok {
		return s
	}
	return fmt.Sprintf("TAG_Unknown(%d)", byte(k))
}

// GoString renders the kind with its numeric id, useful in debug dumps.
func (k Kind) GoString() string {
	return fmt.Sprintf("%s (0x%02x)", k.String(), byte(k))
}

// Valid reports whether k is one of the 13 defined tag ids.
func (k Kind) Valid() bool {
	_, ok := names[k]
	return ok
}

// IsNumeric reports whether k holds a single numeric scalar payload.
func (k Kind) IsNumeric() bool {
	switch k {
	case Byte, Short, Int, Long, Float, Double:
		return true
	default:
		return false
	}
}

// IsArray reports whether k holds a fixed-width primitive array payload.
func (k Kind) IsArray() bool {
	switch k {
	case ByteArray, IntArray, LongArray:
		return true
	default:
		return false
	}
}

// IsContainer reports whether k holds nested tags (List or Compound).
func (k Kind) IsContainer() bool {
	return k == List || k == Compound
}

// IsPrimitive reports whether k holds a single scalar payload: a number or
// a string.
func (k Kind) IsPrimitive() bool {
	return k.IsNumeric() || k == String
}

// IsIterable reports whether k holds a sequence of values that can be
// walked by index or by entry: a primitive array, a list, or a compound.
// Unlike IsContainer, this includes the fixed-width array kinds.
func (k Kind) IsIterable() bool {
	return k.IsArray() || k.IsContainer()
}

var tokens = map[Kind]string{
	End:       "end",
	Byte:      "byte",
	Short:     "short",
	Int:       "int",
	Long:      "long",
	Float:     "float",
	Double:    "double",
	ByteArray: "byte_array",
	String:    "string",
	List:      "list",
	Compound:  "compound",
	IntArray:  "int_array",
	LongArray: "long_array",
}

var tokensByName map[string]Kind

func init() {
	tokensByName = make(map[string]Kind, len(tokens))
	for k, s := range tokens {
		tokensByName[s] = k
	}
}

// Name returns the lowercase snake_case token for k, e.g. "long_array".
func (k Kind) Name() string {
	if s, ok := tokens[k]; ok {
		return s
	}
	return ""
}

// ByName looks up a kind by its lowercase token (the inverse of Name),
// e.g. "long_array" -> LongArray.
func ByName(name string) (Kind, bool) {
	k, ok := tokensByName[name]
	return k, ok
}

// All returns every defined kind in ascending id order, End first.
func All() []Kind {
	return []Kind{End, Byte, Short, Int, Long, Float, Double, ByteArray, String, List, Compound, IntArray, LongArray}
}
