package phrasal

import (
	"errors"
	"reflect"

	"github.com/tidwall/gjson"
)

// ErrInvalidJSON is returned when the input is not valid JSON.
var ErrInvalidJSON = errors.New("invalid JSON")

// Target is the object a phrasal function is layered over. Its own members
// take precedence over the grammar for the first word of a phrase.
type Target interface {
	// Member returns the value of the named member, or false if the target
	// has no such member.
	Member(name string) (any, bool)

	// Receiver returns the value templates are bound to when their Bind
	// field is nil.
	Receiver() any
}

// Empty returns a Target with no members and a nil receiver. Use it when
// the phrasal function is only a call builder.
func Empty() Target {
	return empty{}
}

type empty struct{}

func (empty) Member(string) (any, bool) { return nil, false }
func (empty) Receiver() any             { return nil }

// Map returns a Target whose members are the entries of m. The receiver
// is m itself.
func Map(m map[string]any) Target {
	return mapTarget(m)
}

type mapTarget map[string]any

func (m mapTarget) Member(name string) (any, bool) {
	v, ok := m[name]
	return v, ok
}

func (m mapTarget) Receiver() any { return map[string]any(m) }

// Struct returns a Target whose members are the exported fields and
// methods of v. A field tagged `phrasal:"name"` is exposed under that name
// instead of its Go name; a tag of "-" hides it. Methods are returned as
// bound method values. The receiver is v itself.
func Struct(v any) Target {
	return structTarget{v: v}
}

type structTarget struct {
	v any
}

func (s structTarget) Member(name string) (any, bool) {
	rv := reflect.ValueOf(s.v)
	if !rv.IsValid() {
		return nil, false
	}
	if m := rv.MethodByName(name); m.IsValid() {
		return m.Interface(), true
	}

	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, false
	}

	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}
		fieldName := f.Name
		if tag, ok := f.Tag.Lookup("phrasal"); ok {
			if tag == "-" {
				continue
			}
			fieldName = tag
		}
		if fieldName == name {
			return rv.Field(i).Interface(), true
		}
	}
	return nil, false
}

func (s structTarget) Receiver() any { return s.v }

// JSON returns a Target whose members are the top-level fields of a JSON
// object, read with gjson. The receiver is the parsed gjson.Result.
func JSON(raw []byte) (Target, error) {
	if !gjson.ValidBytes(raw) {
		return nil, ErrInvalidJSON
	}
	return jsonTarget{raw: raw}, nil
}

type jsonTarget struct {
	raw []byte
}

func (t jsonTarget) Member(name string) (any, bool) {
	r := gjson.GetBytes(t.raw, gjson.Escape(name))
	if !r.Exists() {
		return nil, false
	}
	return r.Value(), true
}

func (t jsonTarget) Receiver() any { return gjson.ParseBytes(t.raw) }
