package argbind

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

const (
	tableIndent   = 2
	columnPadding = 4

	// minHelpWidth is the narrowest help column worth wrapping into; below it, help text is not wrapped at all.
	minHelpWidth = 20
)

type usagePrinter struct {
	optional []usageRow
	required []usageRow
	commands []usageRow
	width    int
	heading  *color.Color
}

func newUsagePrinter(root *node, width int, colorize bool) *usagePrinter {
	up := &usagePrinter{width: width, heading: color.New(color.Bold)}
	if colorize {
		up.heading.EnableColor()
	} else {
		up.heading.DisableColor()
	}
	for _, n := range root.chain() {
		up.collect(n)
	}
	return up
}

// collect gathers the usage rows of a single node. Named arguments are prepended to their section, so that they
// are listed in reverse declaration order before any flags. Subcommands are only listed by the leaf, since a
// node with an active child has already had its choice made.
func (up *usagePrinter) collect(n *node) {
	for _, r := range n.roles {
		row := usageOf(r)
		switch r := r.(type) {
		case *FlagRole:
			up.optional = append(up.optional, row)
		case *NamedRole:
			if r.required {
				up.required = slices.Insert(up.required, 0, row)
			} else {
				up.optional = slices.Insert(up.optional, 0, row)
			}
		case *PositionalRole:
			if n.child == nil {
				up.required = append(up.required, row)
			}
		case *SubcommandRole:
			if n.child == nil {
				up.commands = append(up.commands, row)
			}
		}
	}
}

// synopsis renders the arguments part of the usage line, e.g. "[-o output] [--verbose] -i input FILE".
func (up *usagePrinter) synopsis() string {
	var tokens []string
	for _, row := range up.optional {
		tokens = append(tokens, "["+synopsisName(row)+"]")
	}
	for _, row := range up.required {
		tokens = append(tokens, synopsisName(row))
	}
	return strings.Join(tokens, " ")
}

func synopsisName(row usageRow) string {
	if short, long, found := strings.Cut(row.name, "|--"); found {
		return short + " " + long
	}
	return row.name
}

func (up *usagePrinter) printTable(w io.Writer, title string, rows []usageRow) {
	_, _ = up.heading.Fprintln(w, title)

	nameWidth, typeWidth := 0, 0
	for _, row := range rows {
		nameWidth = max(nameWidth, utf8.RuneCountInString(row.name))
		typeWidth = max(typeWidth, utf8.RuneCountInString(row.typeName))
	}
	nameWidth += columnPadding
	typeWidth += columnPadding

	helpColumn := tableIndent + nameWidth + typeWidth
	helpWidth := 0
	if up.width-helpColumn >= minHelpWidth {
		helpWidth = up.width - helpColumn
	}

	indent := strings.Repeat(" ", tableIndent)
	for _, row := range rows {
		lines := wrapText(row.help, helpWidth)
		_, _ = fmt.Fprintf(w, "%s%-*s%-*s%s\n", indent, nameWidth, row.name, typeWidth, row.typeName, lines[0])
		for _, line := range lines[1:] {
			_, _ = fmt.Fprintf(w, "%s%s\n", strings.Repeat(" ", helpColumn), line)
		}
	}
	_, _ = fmt.Fprintln(w)
}

// printUsage renders the usage screen of the given command chain: the version line, the synopsis, and then the
// optional arguments, required arguments and available subcommands tables (each only if not empty).
func printUsage(w io.Writer, root *node, versionLine string, width int, colorize bool) error {
	up := newUsagePrinter(root, width, colorize)
	fullName := root.fullName()
	b := &strings.Builder{}

	_, _ = fmt.Fprintln(b, versionLine)
	_, _ = fmt.Fprintln(b, strings.TrimRight("Usage: "+fullName+" "+up.synopsis(), " "))
	if leaf := root.leaf(); leaf != root && leaf.help != "" {
		_, _ = fmt.Fprintln(b, leaf.help)
	}

	if len(up.optional) > 0 {
		up.printTable(b, "Optional Arguments", up.optional)
	}
	if len(up.required) > 0 {
		up.printTable(b, "Required Arguments", up.required)
	}
	if len(up.commands) > 0 {
		up.printTable(b, "Additional Commands", up.commands)
		_, _ = fmt.Fprintf(b, "For more information run: %s [command] --help\n", fullName)
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}
	return nil
}
