package argbind

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

type Tag string

const (
	TagArg         Tag = "arg"
	TagShort       Tag = "short"
	TagLong        Tag = "long"
	TagName        Tag = "name"
	TagDescription Tag = "desc"
	TagRequired    Tag = "required"
)

// Values of the "arg" tag.
const (
	ArgFlag       = "flag"
	ArgNamed      = "named"
	ArgPositional = "positional"
	ArgSubcommand = "subcommand"
)

var decimalType = reflect.TypeFor[decimal.Decimal]()

// collectRoles returns the roles declared by the given configuration object, either through the Declarer
// interface or through struct tags. Every role is validated before it is returned.
func collectRoles(target any) ([]Role, error) {
	var roles []Role
	if d, ok := target.(Declarer); ok {
		roles = d.Roles()
		for i, r := range roles {
			if r == nil || reflect.ValueOf(r).IsNil() {
				return nil, &ErrInvalidDeclaration{Field: fmt.Sprintf("%T.Roles()[%d]", target, i), Cause: errors.New("nil role")}
			} else if err := r.declarationError(); err != nil {
				return nil, err
			}
		}
	} else {
		v := reflect.ValueOf(target)
		if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
			return nil, &ErrInvalidDeclaration{
				Field: fmt.Sprintf("%T", target),
				Cause: errors.New("configuration must be a non-nil struct pointer or implement Declarer"),
			}
		}
		var err error
		if roles, err = readRolesFromStruct(v.Elem(), roles); err != nil {
			return nil, err
		}
	}
	if err := validateRoles(roles); err != nil {
		return nil, err
	}
	return roles, nil
}

// validateRoles ensures no two roles of the same command share a name.
func validateRoles(roles []Role) error {
	seen := make(map[string]bool)
	for _, r := range roles {
		var names []string
		switch r := r.(type) {
		case *FlagRole:
			names = r.tokens()
		case *NamedRole:
			names = r.tokens()
		case *SubcommandRole:
			names = []string{r.name}
		}
		for _, name := range names {
			if seen[name] {
				return &ErrInvalidName{Name: name, Reason: "already declared by another argument"}
			}
			seen[name] = true
		}
	}
	return nil
}

func readRolesFromStruct(s reflect.Value, roles []Role) ([]Role, error) {
	for i := 0; i < s.NumField(); i++ {
		fieldValue := s.Field(i)
		structField := s.Type().Field(i)
		var err error
		if roles, err = readRoleFromField(fieldValue, structField, roles); err != nil {
			var de *ErrInvalidDeclaration
			if errors.As(err, &de) {
				return nil, err
			}
			return nil, &ErrInvalidDeclaration{Field: s.Type().String() + "." + structField.Name, Cause: err}
		}
	}
	return roles, nil
}

func readRoleFromField(fieldValue reflect.Value, structField reflect.StructField, roles []Role) ([]Role, error) {
	kind, tagged := structField.Tag.Lookup(string(TagArg))
	if !tagged {
		// Untagged structs are only containers for other fields
		if fieldValue.Kind() == reflect.Struct && fieldValue.Type() != decimalType {
			return readRolesFromStruct(fieldValue, roles)
		}
		return roles, nil
	} else if !fieldValue.CanAddr() {
		return nil, errors.New("not addressable")
	} else if !fieldValue.CanSet() {
		return nil, errors.New("not settable")
	}

	var short rune
	if tag, ok := structField.Tag.Lookup(string(TagShort)); ok {
		if utf8.RuneCountInString(tag) != 1 {
			return nil, &ErrInvalidTag{Cause: errors.New("must be a single character"), Tag: TagShort, Value: tag}
		}
		short, _ = utf8.DecodeRuneInString(tag)
	}
	long, hasLong := structField.Tag.Lookup(string(TagLong))
	if hasLong && long == "" {
		return nil, &ErrInvalidTag{Cause: errors.New("must not be empty"), Tag: TagLong, Value: long}
	} else if !hasLong && short == 0 {
		long = fieldNameToFlagName(structField.Name)
	}
	name, hasName := structField.Tag.Lookup(string(TagName))
	if hasName && name == "" {
		return nil, &ErrInvalidTag{Cause: errors.New("must not be empty"), Tag: TagName, Value: name}
	} else if !hasName {
		name = fieldNameToFlagName(structField.Name)
	}
	help := structField.Tag.Get(string(TagDescription))
	var required bool
	if tag, ok := structField.Tag.Lookup(string(TagRequired)); ok {
		if kind != ArgNamed {
			return nil, &ErrInvalidTag{Cause: errors.New("only supported for named arguments"), Tag: TagRequired, Value: tag}
		} else if v, err := strconv.ParseBool(tag); err != nil {
			var ne *strconv.NumError
			if errors.As(err, &ne) {
				err = ne.Err
			}
			return nil, &ErrInvalidTag{Cause: err, Tag: TagRequired, Value: tag}
		} else {
			required = v
		}
	}

	var role Role
	switch kind {
	case ArgFlag:
		if fieldValue.Kind() != reflect.Bool {
			return nil, fmt.Errorf("flags cannot be applied to %s fields", fieldValue.Type())
		}
		role = Flag(fieldValue.Addr().Convert(reflect.TypeFor[*bool]()).Interface().(*bool), short, long, help)
	case ArgNamed:
		v, err := valueOf(fieldValue)
		if err != nil {
			return nil, err
		}
		named := &NamedRole{short: short, long: long, help: help, required: required, value: v}
		named.err = validateOptionNames(short, long)
		role = named
	case ArgPositional:
		v, err := valueOf(fieldValue)
		if err != nil {
			return nil, err
		}
		role = &PositionalRole{name: name, help: help, value: v}
	case ArgSubcommand:
		if fieldValue.Kind() != reflect.Pointer || fieldValue.Type().Elem().Kind() != reflect.Struct {
			return nil, fmt.Errorf("subcommands must be typed as struct pointers, not %s", fieldValue.Type())
		}
		role = newSubcommandRole(name, help, func() any {
			fieldValue.Set(reflect.New(fieldValue.Type().Elem()))
			return fieldValue.Interface()
		})
	default:
		return nil, &ErrInvalidTag{Cause: errors.New("unknown argument kind"), Tag: TagArg, Value: kind}
	}
	if err := role.declarationError(); err != nil {
		return nil, err
	}
	return append(roles, role), nil
}

// valueOf returns an accessor for the given addressable field, based on its underlying type.
func valueOf(fieldValue reflect.Value) (value, error) {
	p := fieldValue.Addr()
	switch {
	case fieldValue.Type() == reflect.TypeFor[Char]():
		return bindValue[Char](p), nil
	case fieldValue.Kind() == reflect.Struct && p.Type().ConvertibleTo(reflect.TypeFor[*decimal.Decimal]()):
		return bindValue[decimal.Decimal](p), nil
	}
	switch fieldValue.Kind() {
	case reflect.Int:
		return bindValue[int](p), nil
	case reflect.Int8:
		return bindValue[int8](p), nil
	case reflect.Int16:
		return bindValue[int16](p), nil
	case reflect.Int32:
		return bindValue[int32](p), nil
	case reflect.Int64:
		return bindValue[int64](p), nil
	case reflect.Uint:
		return bindValue[uint](p), nil
	case reflect.Uint8:
		return bindValue[uint8](p), nil
	case reflect.Uint16:
		return bindValue[uint16](p), nil
	case reflect.Uint32:
		return bindValue[uint32](p), nil
	case reflect.Uint64:
		return bindValue[uint64](p), nil
	case reflect.Float32:
		return bindValue[float32](p), nil
	case reflect.Float64:
		return bindValue[float64](p), nil
	case reflect.String:
		return bindValue[string](p), nil
	default:
		return nil, fmt.Errorf("%w: field type is '%s'", errors.ErrUnsupported, fieldValue.Type())
	}
}

func bindValue[T Scalar](p reflect.Value) value {
	return &scalarValue[T]{target: p.Convert(reflect.TypeFor[*T]()).Interface().(*T)}
}
