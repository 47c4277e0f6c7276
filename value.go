package argbind

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Char is a single character value. It is a distinct type so that it is not confused with int32.
type Char rune

func (c Char) String() string {
	return string(c)
}

// Scalar is the closed set of types a named or positional argument can be bound to.
type Scalar interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64 |
		Char | decimal.Decimal | string
}

// value is the accessor a role uses to assign a token to its target field.
type value interface {
	set(s string) error
	typeLabel() string
}

type scalarValue[T Scalar] struct {
	target *T
}

func (v *scalarValue[T]) set(s string) error {
	parsed, err := coerce[T](s)
	if err != nil {
		return err
	}
	*v.target = parsed
	return nil
}

func (v *scalarValue[T]) typeLabel() string {
	return typeLabel[T]()
}

// typeLabel returns the type name shown in usage tables and coercion errors.
func typeLabel[T Scalar]() string {
	var zero T
	switch any(zero).(type) {
	case Char:
		return "char"
	case decimal.Decimal:
		return "decimal"
	default:
		return fmt.Sprintf("%T", zero)
	}
}

// coerce converts a single token into T. Out-of-range and malformed literals fail; values are never truncated.
func coerce[T Scalar](s string) (T, error) {
	var zero T
	var result any
	var err error
	switch any(zero).(type) {
	case string:
		return any(s).(T), nil
	case int:
		result, err = parseSigned[int](s, strconv.IntSize)
	case int8:
		result, err = parseSigned[int8](s, 8)
	case int16:
		result, err = parseSigned[int16](s, 16)
	case int32:
		result, err = parseSigned[int32](s, 32)
	case int64:
		result, err = parseSigned[int64](s, 64)
	case uint:
		result, err = parseUnsigned[uint](s, strconv.IntSize)
	case uint8:
		result, err = parseUnsigned[uint8](s, 8)
	case uint16:
		result, err = parseUnsigned[uint16](s, 16)
	case uint32:
		result, err = parseUnsigned[uint32](s, 32)
	case uint64:
		result, err = parseUnsigned[uint64](s, 64)
	case float32:
		var f float64
		f, err = strconv.ParseFloat(s, 32)
		result = float32(f)
	case float64:
		result, err = strconv.ParseFloat(s, 64)
	case Char:
		if !utf8.ValidString(s) {
			err = errors.New("invalid UTF-8")
		} else if utf8.RuneCountInString(s) != 1 {
			err = errors.New("must be exactly one character")
		} else {
			r, _ := utf8.DecodeRuneInString(s)
			result = Char(r)
		}
	case decimal.Decimal:
		result, err = decimal.NewFromString(s)
	default:
		return zero, fmt.Errorf("%w: type is '%T'", errors.ErrUnsupported, zero)
	}
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) {
			err = ne.Err
		}
		return zero, &ErrIncompatibleValue{Cause: err, Value: s, Type: typeLabel[T]()}
	}
	return result.(T), nil
}

func parseSigned[T int | int8 | int16 | int32 | int64](s string, bitSize int) (T, error) {
	i, err := strconv.ParseInt(s, 10, bitSize)
	if err != nil {
		return 0, err
	}
	return T(i), nil
}

func parseUnsigned[T uint | uint8 | uint16 | uint32 | uint64](s string, bitSize int) (T, error) {
	ui, err := strconv.ParseUint(s, 10, bitSize)
	if err != nil {
		return 0, err
	}
	return T(ui), nil
}
