package snbt

// Profile bundles the syntax flags that distinguish SNBT dialects across
// Minecraft versions.
type Profile struct {
	name string

	// LegacyParser selects the 1.7/1.8 string-splitting parser over the
	// modern cursor-based recursive descent parser.
	LegacyParser bool

	// AllowSingleQuotes permits ' as an alternative quote character for
	// both parsing and writing.
	AllowSingleQuotes bool

	// UseTypeSuffix records whether the dialect uses numeric type suffixes
	// (b, s, L, f, d). Write appends the suffixes for every profile; it
	// does not consult this flag.
	UseTypeSuffix bool

	// ModernArrays records whether the dialect has "[I; ...]"-style typed
	// arrays. Neither parser nor writer consults it: the modern parser
	// recognizes typed arrays for every non-legacy profile.
	ModernArrays bool

	// unquoteStrings controls whether the writer may emit a bare,
	// unquoted string/key when it matches the identifier pattern. The
	// Notchian writer this package is grounded on only sets the
	// equivalent check for V1_12/V1_13/V1_14, leaving V1_21_5 to always
	// quote; that is treated as a reference-implementation gap here
	// (see DESIGN.md) rather than carried forward, since it breaks
	// round-tripping unquoted-key input under V1_21_5.
	unquoteStrings bool
}

func (p Profile) String() string { return p.name }

var (
	// V1_7 covers Minecraft 1.7 up to 1.8.
	V1_7 = Profile{name: "1.7", LegacyParser: true}
	// V1_8 covers Minecraft 1.8 up to 1.12.
	V1_8 = Profile{name: "1.8", LegacyParser: true}
	// V1_12 covers Minecraft 1.12 up to 1.13.
	V1_12 = Profile{name: "1.12", UseTypeSuffix: true, unquoteStrings: true}
	// V1_13 covers Minecraft 1.13 up to 1.14. Parsing is the same grammar
	// as V1_12 with no legacy tolerance.
	V1_13 = Profile{name: "1.13", UseTypeSuffix: true, unquoteStrings: true}
	// V1_14 covers Minecraft 1.14 up to 1.21.5.
	V1_14 = Profile{name: "1.14", AllowSingleQuotes: true, UseTypeSuffix: true, unquoteStrings: true}
	// V1_21_5 covers Minecraft 1.21.5 onward. unquoteStrings is true here
	// even though the Notchian writer this is grounded on only unquotes
	// for V1_12/V1_13/V1_14 — see Profile.unquoteStrings and DESIGN.md.
	V1_21_5 = Profile{name: "1.21.5", AllowSingleQuotes: true, UseTypeSuffix: true, ModernArrays: true, unquoteStrings: true}
)
