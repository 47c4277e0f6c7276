package argbind

import (
	"errors"
	"slices"
	"strings"
	"unicode"
)

// reservedNames may not be used as the long name of a flag or a named argument.
var reservedNames = []string{"help", "version"}

// Role describes how a single configuration field binds to command-line tokens. It is one of *FlagRole,
// *NamedRole, *PositionalRole or *SubcommandRole.
type Role interface {
	declarationError() error
}

// Declarer is implemented by configuration objects that declare their roles explicitly instead of through
// struct tags.
type Declarer interface {
	Roles() []Role
}

// FlagRole binds a boolean field that is set to true when its token is present, e.g. "--verbose".
type FlagRole struct {
	short  rune
	long   string
	help   string
	target *bool
	err    error
}

// Flag declares a boolean flag. Either the short or the long name may be omitted (using 0 or "" respectively).
func Flag(p *bool, short rune, long, help string) *FlagRole {
	r := &FlagRole{short: short, long: long, help: help, target: p}
	if p == nil {
		r.err = nilTarget(strings.Join(optionTokens(short, long), "|"))
	} else {
		r.err = validateOptionNames(short, long)
	}
	return r
}

func (r *FlagRole) declarationError() error { return r.err }

func (r *FlagRole) tokens() []string { return optionTokens(r.short, r.long) }

// NamedRole binds a field to the token following its name, e.g. "--output /tmp/out.txt".
type NamedRole struct {
	short    rune
	long     string
	help     string
	required bool
	value    value
	err      error
}

// Named declares a named argument whose value is coerced into the type of the given field.
func Named[T Scalar](p *T, short rune, long, help string) *NamedRole {
	r := &NamedRole{short: short, long: long, help: help, value: &scalarValue[T]{target: p}}
	if p == nil {
		r.err = nilTarget(strings.Join(optionTokens(short, long), "|"))
	} else {
		r.err = validateOptionNames(short, long)
	}
	return r
}

// Required marks the named argument as mandatory.
func (r *NamedRole) Required() *NamedRole {
	r.required = true
	return r
}

func (r *NamedRole) declarationError() error { return r.err }

func (r *NamedRole) tokens() []string { return optionTokens(r.short, r.long) }

// displayName is the name used in error messages, preferring the long form.
func (r *NamedRole) displayName() string {
	t := r.tokens()
	return t[len(t)-1]
}

// PositionalRole binds a field to the next unclaimed token. Positional arguments are always required and are
// consumed in declaration order, by the deepest active command only.
type PositionalRole struct {
	name  string
	help  string
	value value
	err   error
}

// Positional declares a positional argument whose value is coerced into the type of the given field.
func Positional[T Scalar](p *T, name, help string) *PositionalRole {
	r := &PositionalRole{name: name, help: help, value: &scalarValue[T]{target: p}}
	if p == nil {
		r.err = nilTarget(name)
	} else if name == "" {
		r.err = &ErrInvalidName{Name: name, Reason: "positional arguments must have a name"}
	}
	return r
}

func (r *PositionalRole) declarationError() error { return r.err }

// SubcommandRole activates a nested configuration object when its name is given at the matching depth.
type SubcommandRole struct {
	name     string
	help     string
	activate func() any
	err      error
}

// Subcommand declares a nested command. When activated, a new T is allocated and stored in the given field.
func Subcommand[T any](p **T, name, help string) *SubcommandRole {
	r := newSubcommandRole(name, help, func() any {
		*p = new(T)
		return *p
	})
	if p == nil {
		r.err = nilTarget(name)
	}
	return r
}

func newSubcommandRole(name, help string, activate func() any) *SubcommandRole {
	r := &SubcommandRole{name: name, help: help, activate: activate}
	if name == "" {
		r.err = &ErrInvalidName{Name: name, Reason: "subcommands must have a name"}
	} else if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		r.err = &ErrInvalidName{Name: name, Reason: "subcommand names may not contain whitespace"}
	}
	return r
}

func (r *SubcommandRole) declarationError() error { return r.err }

func nilTarget(name string) error {
	return &ErrInvalidDeclaration{Field: name, Cause: errors.New("target must not be a nil pointer")}
}

func validateOptionNames(short rune, long string) error {
	if short == 0 && long == "" {
		return &ErrInvalidName{Name: "", Reason: "must have a short name, a long name, or both"}
	}
	if short != 0 && (short == '-' || unicode.IsSpace(short) || !unicode.IsPrint(short)) {
		return &ErrInvalidName{Name: string(short), Reason: "illegal short name"}
	}
	if long != "" {
		if slices.Contains(reservedNames, long) {
			return &ErrInvalidName{Name: long, Reason: "reserved names may not be used: " + strings.Join(reservedNames, ",")}
		} else if strings.HasPrefix(long, "-") || strings.IndexFunc(long, unicode.IsSpace) >= 0 {
			return &ErrInvalidName{Name: long, Reason: "illegal long name"}
		}
	}
	return nil
}

// optionTokens returns the literal tokens matching an option, short form first.
func optionTokens(short rune, long string) []string {
	var tokens []string
	if short != 0 {
		tokens = append(tokens, "-"+string(short))
	}
	if long != "" {
		tokens = append(tokens, "--"+long)
	}
	return tokens
}

// usageRow is the (name, type, help) triple a role renders as in usage tables.
type usageRow struct {
	name     string
	typeName string
	help     string
}

func usageOf(r Role) usageRow {
	switch r := r.(type) {
	case *FlagRole:
		return usageRow{name: strings.Join(r.tokens(), "|"), help: r.help}
	case *NamedRole:
		return usageRow{name: strings.Join(r.tokens(), "|"), typeName: r.value.typeLabel(), help: r.help}
	case *PositionalRole:
		return usageRow{name: r.name, typeName: r.value.typeLabel(), help: r.help}
	case *SubcommandRole:
		return usageRow{name: r.name, help: r.help}
	default:
		panic("unknown role type")
	}
}
