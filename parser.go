package argbind

import (
	"fmt"
	"io"
	"os"
	"slices"
)

type ExitCode int

const (
	ExitCodeSuccess          ExitCode = 0
	ExitCodeError            ExitCode = 1
	ExitCodeMisconfiguration ExitCode = 2
)

// PostParseHook is implemented by configuration objects that need to post-process their values once the whole
// command chain was successfully parsed.
type PostParseHook interface {
	PostParse() error
}

type PostParseHookFunc func() error

func (i PostParseHookFunc) PostParse() error {
	if i != nil {
		return i()
	} else {
		return nil
	}
}

// Parser binds command-line arguments into configuration objects. Its fields are policy settings only; every
// parse call builds and owns its own command chain, so a Parser may be reused.
type Parser struct {
	// Name is the executable name shown in the usage and version texts; defaults to the invoked executable.
	Name string

	// Version is shown by "--version" as "<major>.<minor>.<patch>"; defaults to the main module's build version.
	Version string

	// Output receives usage, version and error texts; defaults to os.Stdout.
	Output io.Writer

	// ExitAfterPrint terminates the process after printing usage, version or an error.
	ExitAfterPrint bool

	// PrintHelpOnError prints the usage screen after a parse error.
	PrintHelpOnError bool

	// Width is the terminal width used to wrap help texts; zero disables wrapping.
	Width int

	// Color renders usage section headings in bold.
	Color bool

	// Hooks are invoked after the post-parse hooks of the configuration objects.
	Hooks []PostParseHook

	exit func(code int)
}

// NewParser creates a parser that prints to os.Stdout, exits the process after printing usage, version or an
// error, and wraps help texts to the terminal's width.
func NewParser() *Parser {
	return &Parser{
		Name:             getProcessName(),
		Version:          getBuildVersion(),
		Output:           os.Stdout,
		ExitAfterPrint:   true,
		PrintHelpOnError: true,
		Width:            getTerminalWidth(),
	}
}

// ParseNew allocates a new T and populates it from the given arguments using [Parser.ParseInto].
func ParseNew[T any](p *Parser, args []string) (*T, error) {
	target := new(T)
	if err := p.ParseInto(args, target); err != nil {
		return nil, err
	}
	return target, nil
}

// ParseInto populates the given configuration object (and any subcommand objects it activates) from the given
// arguments.
//
// If "--help" or "--version" is given, the usage screen or version line is printed instead, and ErrHelp or
// ErrVersion is returned unless the parser exits. Declaration errors are returned before any argument is
// consumed. On failure the target is left partially populated and should be discarded.
func (p *Parser) ParseInto(args []string, target any) error {
	w := p.output()

	root, err := buildTree(p.name(), "", target, args, 0)
	if err != nil {
		_, _ = fmt.Fprintln(w, err)
		p.terminate(ExitCodeMisconfiguration)
		return err
	}

	if slices.Contains(args, "--help") {
		if err := printUsage(w, root, p.versionLine(), p.Width, p.Color); err != nil {
			return err
		}
		p.terminate(ExitCodeSuccess)
		return ErrHelp
	} else if slices.Contains(args, "--version") {
		if _, err := fmt.Fprintln(w, p.versionLine()); err != nil {
			return err
		}
		p.terminate(ExitCodeSuccess)
		return ErrVersion
	}

	if err := consume(root, newTokenBuffer(args)); err != nil {
		return p.fail(w, root, err)
	}

	// Invoke post-parse hooks on the whole chain (starting at the root), then the parser's own
	for _, n := range root.chain() {
		if h, ok := n.target.(PostParseHook); ok {
			if err := h.PostParse(); err != nil {
				return p.fail(w, root, err)
			}
		}
	}
	for _, h := range p.Hooks {
		if err := h.PostParse(); err != nil {
			return p.fail(w, root, err)
		}
	}
	return nil
}

func (p *Parser) fail(w io.Writer, root *node, err error) error {
	_, _ = fmt.Fprintln(w, err)
	if p.PrintHelpOnError {
		if uerr := printUsage(w, root, p.versionLine(), p.Width, p.Color); uerr != nil {
			_, _ = fmt.Fprintln(w, uerr)
		}
	}
	p.terminate(ExitCodeError)
	return err
}

func (p *Parser) terminate(code ExitCode) {
	if !p.ExitAfterPrint {
		return
	} else if p.exit != nil {
		p.exit(int(code))
	} else {
		os.Exit(int(code))
	}
}

func (p *Parser) output() io.Writer {
	if p.Output == nil {
		return os.Stdout
	}
	return p.Output
}

func (p *Parser) name() string {
	if p.Name == "" {
		return getProcessName()
	}
	return p.Name
}

func (p *Parser) versionLine() string {
	version := p.Version
	if version == "" {
		version = getBuildVersion()
	}
	return fmt.Sprintf("%s (%s)", p.name(), formatVersion(version))
}

// LookupNamed returns the value following the first "-short" or "--long" token in the given arguments, without
// binding or consuming anything. The boolean result is false if the name is not present or has no value.
func LookupNamed[T Scalar](args []string, short rune, long string) (T, bool, error) {
	var zero T
	buf := &tokenBuffer{tokens: args}
	i := buf.indexOf(optionTokens(short, long)...)
	if i < 0 || i == len(args)-1 || isOption(args[i+1]) {
		return zero, false, nil
	}
	v, err := coerce[T](args[i+1])
	if err != nil {
		return zero, false, err
	}
	return v, true, nil
}
