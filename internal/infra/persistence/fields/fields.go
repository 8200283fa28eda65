// Package fields maps the JSON field names used in repository criteria onto
// entity struct fields and database columns. Both repository backends share it.
package fields

import (
	"cmp"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm/schema"

	"bizdesk/internal/domain/repository"
	"bizdesk/internal/errors"
)

var (
	timeType = reflect.TypeOf(time.Time{})
	naming   = schema.NamingStrategy{}
	cache    sync.Map // reflect.Type -> *Set
)

// Field describes one queryable entity field.
type Field struct {
	// Name is the JSON name used as criteria and sort key.
	Name string
	// Column is the database column.
	Column string
	// Type is the field type with pointer indirection removed.
	Type reflect.Type

	index []int
}

// Condition is a resolved criteria entry: a field and a value coerced to the field's type.
type Condition struct {
	Field Field
	Value any
}

// OrderColumn is a resolved sort key.
type OrderColumn struct {
	Field Field
	Desc  bool
}

// Set is the queryable field set of an entity type.
type Set struct {
	byName map[string]Field
}

// For returns the field set of E, which must be a struct or a pointer to a struct.
func For[E any]() *Set {
	return Of(reflect.TypeFor[E]())
}

// Of returns the field set of typ, which must be a struct or a pointer to a struct.
func Of(typ reflect.Type) *Set {
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}

	if cached, ok := cache.Load(typ); ok {
		return cached.(*Set)
	}

	set := &Set{byName: make(map[string]Field)}
	for _, sf := range reflect.VisibleFields(typ) {
		if sf.Anonymous || !sf.IsExported() {
			continue
		}

		name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = sf.Name
		}

		fieldType := sf.Type
		for fieldType.Kind() == reflect.Pointer {
			fieldType = fieldType.Elem()
		}

		set.byName[name] = Field{
			Name:   name,
			Column: columnName(sf),
			Type:   fieldType,
			index:  sf.Index,
		}
	}

	actual, _ := cache.LoadOrStore(typ, set)

	return actual.(*Set)
}

func columnName(sf reflect.StructField) string {
	for _, setting := range strings.Split(sf.Tag.Get("gorm"), ";") {
		key, value, found := strings.Cut(setting, ":")
		if found && strings.EqualFold(strings.TrimSpace(key), "column") {
			return strings.TrimSpace(value)
		}
	}

	return naming.ColumnName("", sf.Name)
}

// Lookup returns the field with the given JSON name.
func (s *Set) Lookup(name string) (Field, error) {
	field, ok := s.byName[name]
	if !ok {
		return Field{}, errors.Wrapf(repository.ErrInvalidCriteria, "unknown field %q", name)
	}

	return field, nil
}

// Conditions resolves criteria into conditions sorted by field name.
func (s *Set) Conditions(criteria repository.Criteria) ([]Condition, error) {
	conditions := make([]Condition, 0, len(criteria))
	for name, raw := range criteria {
		field, err := s.Lookup(name)
		if err != nil {
			return nil, err
		}

		value, err := Coerce(field, raw)
		if err != nil {
			return nil, err
		}

		conditions = append(conditions, Condition{Field: field, Value: value})
	}

	slices.SortFunc(conditions, func(a, b Condition) int {
		return cmp.Compare(a.Field.Name, b.Field.Name)
	})

	return conditions, nil
}

// Order resolves a sort specification.
func (s *Set) Order(order repository.Order) ([]OrderColumn, error) {
	columns := make([]OrderColumn, 0, len(order))
	for _, key := range order {
		field, err := s.Lookup(key.Field)
		if err != nil {
			return nil, err
		}

		columns = append(columns, OrderColumn{Field: field, Desc: key.Desc})
	}

	return columns, nil
}

// Coerce converts raw to the field's type. Strings are parsed, which lets
// query-string values filter numeric, boolean and time fields.
func Coerce(field Field, raw any) (any, error) {
	if raw == nil {
		return nil, errors.Wrapf(repository.ErrInvalidCriteria, "field %q: nil value", field.Name)
	}

	value := reflect.ValueOf(raw)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil, errors.Wrapf(repository.ErrInvalidCriteria, "field %q: nil value", field.Name)
		}
		value = value.Elem()
	}

	if value.Type() == field.Type {
		return value.Interface(), nil
	}

	if text, ok := value.Interface().(string); ok && field.Type.Kind() != reflect.String {
		parsed, err := parse(field.Type, text)
		if err != nil {
			return nil, errors.Wrapf(repository.ErrInvalidCriteria, "field %q: %v", field.Name, err)
		}

		return parsed, nil
	}

	if !isConvertible(value.Type(), field.Type) {
		return nil, errors.Wrapf(repository.ErrInvalidCriteria, "field %q: cannot use %s as %s", field.Name, value.Type(), field.Type)
	}

	return value.Convert(field.Type).Interface(), nil
}

// isConvertible restricts reflect conversions to same-family kinds so that, for
// example, an int never silently becomes a string.
func isConvertible(from, to reflect.Type) bool {
	if !from.ConvertibleTo(to) {
		return false
	}

	return kindFamily(from.Kind()) == kindFamily(to.Kind())
}

func kindFamily(kind reflect.Kind) int {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return 1
	case reflect.Float32, reflect.Float64:
		return 2
	case reflect.String:
		return 3
	case reflect.Bool:
		return 4
	default:
		return 5
	}
}

func parse(typ reflect.Type, text string) (any, error) {
	if typ == timeType {
		for _, layout := range []string{time.RFC3339Nano, time.DateTime, time.DateOnly} {
			if t, err := time.Parse(layout, text); err == nil {
				return t, nil
			}
		}

		return nil, errors.Errorf("invalid time %q", text)
	}

	out := reflect.New(typ).Elem()
	switch typ.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(text, 10, typ.Bits())
		if err != nil {
			return nil, errors.Errorf("invalid integer %q", text)
		}
		out.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(text, 10, typ.Bits())
		if err != nil {
			return nil, errors.Errorf("invalid unsigned integer %q", text)
		}
		out.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(text, typ.Bits())
		if err != nil {
			return nil, errors.Errorf("invalid number %q", text)
		}
		out.SetFloat(f)
	case reflect.Bool:
		b, err := strconv.ParseBool(text)
		if err != nil {
			return nil, errors.Errorf("invalid boolean %q", text)
		}
		out.SetBool(b)
	default:
		return nil, errors.Errorf("field type %s cannot be filtered", typ)
	}

	return out.Interface(), nil
}

// Value reads the field from e, following pointers. It reports false when a
// pointer on the way is nil.
func (f Field) Value(e any) (any, bool) {
	v := reflect.ValueOf(e)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, false
		}
		v = v.Elem()
	}

	fv, err := v.FieldByIndexErr(f.index)
	if err != nil {
		return nil, false
	}
	for fv.Kind() == reflect.Pointer {
		if fv.IsNil() {
			return nil, false
		}
		fv = fv.Elem()
	}

	return fv.Interface(), true
}
