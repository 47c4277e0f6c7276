package argbind

import (
	"errors"
	"fmt"
)

var (
	// ErrHelp is returned when the usage screen was printed because "--help" was given, and the parser was
	// configured not to exit.
	ErrHelp = errors.New("help requested")

	// ErrVersion is returned when the version line was printed because "--version" was given, and the parser was
	// configured not to exit.
	ErrVersion = errors.New("version requested")
)

// ErrUnknownArgument is returned when a token was not claimed by any role in the command chain.
type ErrUnknownArgument struct {
	Arg string
}

func (e *ErrUnknownArgument) Error() string {
	return fmt.Sprintf("unknown argument: %s", e.Arg)
}

// ErrInvalidName is returned when a role declares a reserved, malformed or duplicate name.
type ErrInvalidName struct {
	Name   string
	Reason string
}

func (e *ErrInvalidName) Error() string {
	return fmt.Sprintf("invalid name '%s': %s", e.Name, e.Reason)
}

// ErrMissingValue is returned when a named argument is the last token, or is followed by another option token.
type ErrMissingValue struct {
	Arg string
}

func (e *ErrMissingValue) Error() string {
	return fmt.Sprintf("missing value for argument: %s", e.Arg)
}

// ErrIncompatibleValue is returned when a token cannot be coerced into the target's type.
type ErrIncompatibleValue struct {
	Cause error
	Value string
	Type  string
}

func (e *ErrIncompatibleValue) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("'%s' does not match the expected type %s: %s", e.Value, e.Type, e.Cause)
	}
	return fmt.Sprintf("'%s' does not match the expected type %s", e.Value, e.Type)
}

func (e *ErrIncompatibleValue) Unwrap() error {
	return e.Cause
}

// ErrRequiredArgument is returned when a required named argument or a positional argument received no value.
type ErrRequiredArgument struct {
	Arg string
}

func (e *ErrRequiredArgument) Error() string {
	return fmt.Sprintf("missing required argument: %s", e.Arg)
}

// ErrInvalidDeclaration is returned when a configuration field cannot serve the role it was declared with.
type ErrInvalidDeclaration struct {
	Cause error
	Field string
}

func (e *ErrInvalidDeclaration) Error() string {
	return fmt.Sprintf("invalid field '%s': %s", e.Field, e.Cause)
}

func (e *ErrInvalidDeclaration) Unwrap() error {
	return e.Cause
}

type ErrInvalidTag struct {
	Cause error
	Tag   Tag
	Value string
}

func (e *ErrInvalidTag) Error() string {
	return fmt.Sprintf("invalid tag '%s=%s': %s", e.Tag, e.Value, e.Cause)
}

func (e *ErrInvalidTag) Unwrap() error {
	return e.Cause
}
