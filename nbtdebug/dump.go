// Package nbtdebug provides a human-readable, optionally colorized tree
// printer for NBT values, grounded on the per-kind color table the
// teacher's encode package keeps for its own IR and on the indented
// recursive printer shape of a domain-sibling's debug.go.
package nbtdebug

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/MinecraftDataGenerator/mc-nbt/nbt"
	"github.com/MinecraftDataGenerator/mc-nbt/tag"
)

// colorFunc renders a string in a tag-kind-specific color.
type colorFunc func(string, ...any) string

var colorsByKind = map[tag.Kind]colorFunc{
	tag.Byte:      color.RGB(128, 216, 236).SprintfFunc(),
	tag.Short:     color.RGB(128, 216, 236).SprintfFunc(),
	tag.Int:       color.RGB(128, 216, 236).SprintfFunc(),
	tag.Long:      color.RGB(128, 216, 236).SprintfFunc(),
	tag.Float:     color.RGB(128, 216, 236).SprintfFunc(),
	tag.Double:    color.RGB(128, 216, 236).SprintfFunc(),
	tag.String:    color.RGB(8, 196, 16).SprintfFunc(),
	tag.ByteArray: color.RGB(196, 96, 16).SprintfFunc(),
	tag.IntArray:  color.RGB(196, 96, 16).SprintfFunc(),
	tag.LongArray: color.RGB(196, 96, 16).SprintfFunc(),
	tag.List:      color.RGB(128, 168, 196).SprintfFunc(),
	tag.Compound:  color.RGB(74, 92, 138).SprintfFunc(),
}

func colorDefault(s string, _ ...any) string { return s }

// Options configures Dump.
type Options struct {
	// Color forces colorized output on or off. If nil, color is enabled
	// only when w looks like a terminal (via go-isatty).
	Color *bool
}

// Dump writes an indented textual representation of value to w, with
// name as the root tag's key.
func Dump(w io.Writer, name string, value *nbt.Node, opts *Options) error {
	colorize := isTerminal(w)
	if opts != nil && opts.Color != nil {
		colorize = *opts.Color
	}
	var sb strings.Builder
	dump(&sb, name, value, 0, colorize)
	_, err := io.WriteString(w, sb.String())
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func colorOf(k tag.Kind, enabled bool) colorFunc {
	if !enabled {
		return colorDefault
	}
	if f, ok := colorsByKind[k]; ok {
		return f
	}
	return colorDefault
}

func dump(sb *strings.Builder, name string, n *nbt.Node, depth int, colorize bool) {
	indent := strings.Repeat("  ", depth)
	c := colorOf(n.Kind(), colorize)
	label := name
	if name != "" {
		label = name + ": "
	}

	switch n.Kind() {
	case tag.Compound:
		fmt.Fprintf(sb, "%s%s%s {\n", indent, label, c(n.Kind().String()))
		n.Range(func(childName string, v *nbt.Node) bool {
			dump(sb, childName, v, depth+1, colorize)
			return true
		})
		fmt.Fprintf(sb, "%s}\n", indent)
	case tag.List:
		elemKind, _ := n.ElementKind()
		fmt.Fprintf(sb, "%s%s%s<%s> [\n", indent, label, c(n.Kind().String()), elemKind)
		items, _ := n.Items()
		for i, item := range items {
			dump(sb, fmt.Sprintf("[%d]", i), item, depth+1, colorize)
		}
		fmt.Fprintf(sb, "%s]\n", indent)
	default:
		fmt.Fprintf(sb, "%s%s%s\n", indent, label, c(scalarString(n)))
	}
}

func scalarString(n *nbt.Node) string {
	switch n.Kind() {
	case tag.Byte:
		v, _ := n.AsByte()
		return fmt.Sprintf("%db", v)
	case tag.Short:
		v, _ := n.AsShort()
		return fmt.Sprintf("%ds", v)
	case tag.Int:
		v, _ := n.AsInt()
		return fmt.Sprintf("%d", v)
	case tag.Long:
		v, _ := n.AsLong()
		return fmt.Sprintf("%dL", v)
	case tag.Float:
		v, _ := n.AsFloat()
		return fmt.Sprintf("%gf", v)
	case tag.Double:
		v, _ := n.AsDouble()
		return fmt.Sprintf("%gd", v)
	case tag.String:
		v, _ := n.AsString()
		return fmt.Sprintf("%q", v)
	case tag.ByteArray:
		v, _ := n.AsByteArray()
		return fmt.Sprintf("byte[%d]", len(v))
	case tag.IntArray:
		v, _ := n.AsIntArray()
		return fmt.Sprintf("int[%d]", len(v))
	case tag.LongArray:
		v, _ := n.AsLongArray()
		return fmt.Sprintf("long[%d]", len(v))
	default:
		return n.Kind().String()
	}
}

// Logf writes a formatted diagnostic line to w, rendering any
// *nbt.Node argument through Dump instead of Go's default struct
// formatting.
func Logf(w io.Writer, msg string, args ...any) {
	rendered := make([]any, len(args))
	for i, a := range args {
		if n, ok := a.(*nbt.Node); ok {
			var sb strings.Builder
			dump(&sb, "", n, 0, false)
			rendered[i] = sb.String()
		} else {
			rendered[i] = a
		}
	}
	fmt.Fprintf(w, msg, rendered...)
}
