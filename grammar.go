package phrasal

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/tidwall/gjson"
)

// DecodeTemplates reads templates from a JSON grammar document. Functions
// are looked up by name in funcs; a template's "fn" defaults to its
// "name".
//
// The document is either an array of templates or an object with a
// "templates" array:
//
//	{"templates": [{
//	    "name": "make",
//	    "path": [
//	        {"key": "who", "values": ["my", "your"]},
//	        {"key": "what", "values": ["day", "hour", "minute"]}
//	    ],
//	    "floating": ["not"]
//	}]}
//
// A segment is either a string, which is a fixed word, or an object with a
// "key" and optional "values". Values are a list of words, or an object
// mapping the word bound to "case" onto a list of words:
//
//	{"key": "action", "case": "animal", "values": {"dog": ["barking"], "cat": ["purring"]}}
//
// Every problem in the document is reported, not only the first.
func DecodeTemplates[R any](raw []byte, funcs map[string]Func[R]) ([]Template[R], error) {
	if !gjson.ValidBytes(raw) {
		return nil, ErrInvalidJSON
	}

	list := gjson.ParseBytes(raw)
	if list.IsObject() {
		list = list.Get("templates")
	}
	if !list.IsArray() {
		return nil, fmt.Errorf("%w: expected an array of templates", ErrInvalidGrammar)
	}

	var (
		out  []Template[R]
		errs *multierror.Error
	)
	for i, t := range list.Array() {
		tmpl, err := decodeTemplate(t, funcs)
		if err != nil {
			errs = multierror.Append(errs, &templateError{index: i, name: t.Get("name").String(), err: err})
			continue
		}
		out = append(out, tmpl)
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return out, nil
}

func decodeTemplate[R any](t gjson.Result, funcs map[string]Func[R]) (Template[R], error) {
	if !t.IsObject() {
		return Template[R]{}, fmt.Errorf("%w: template must be an object", ErrInvalidGrammar)
	}

	name := t.Get("name").String()
	fnName := t.Get("fn").String()
	if fnName == "" {
		fnName = name
	}
	fn, ok := funcs[fnName]
	if !ok {
		return Template[R]{}, fmt.Errorf("%w: %q", ErrUnknownFunc, fnName)
	}

	path, err := decodeSegments(t.Get("path"))
	if err != nil {
		return Template[R]{}, fmt.Errorf("path: %w", err)
	}
	floating, err := decodeSegments(t.Get("floating"))
	if err != nil {
		return Template[R]{}, fmt.Errorf("floating: %w", err)
	}

	return Template[R]{Name: name, Fn: fn, Path: path, Floating: floating}, nil
}

func decodeSegments(r gjson.Result) ([]Segment, error) {
	if !r.Exists() {
		return nil, nil
	}
	if !r.IsArray() {
		return nil, fmt.Errorf("%w: expected an array of segments", ErrInvalidGrammar)
	}
	var segs []Segment
	for _, s := range r.Array() {
		seg, err := decodeSegment(s)
		if err != nil {
			return nil, err
		}
		segs = append(segs, seg)
	}
	return segs, nil
}

func decodeSegment(s gjson.Result) (Segment, error) {
	if s.Type == gjson.String {
		return Word(s.String()), nil
	}
	if !s.IsObject() {
		return Segment{}, fmt.Errorf("%w: segment must be a string or an object", ErrInvalidGrammar)
	}

	key := s.Get("key").String()
	values := s.Get("values")
	switch {
	case !values.Exists():
		return Word(key), nil
	case values.IsArray():
		words, err := decodeWords(values)
		if err != nil {
			return Segment{}, fmt.Errorf("segment %s: %w", key, err)
		}
		return OneOf(key, words...), nil
	case values.IsObject():
		on := s.Get("case").String()
		if on == "" {
			return Segment{}, fmt.Errorf("%w: segment %s: values object requires \"case\"", ErrInvalidGrammar, key)
		}
		cases := make(map[string][]string)
		var err error
		values.ForEach(func(k, v gjson.Result) bool {
			var words []string
			if !v.IsArray() {
				err = fmt.Errorf("%w: segment %s: case %s must be an array", ErrInvalidGrammar, key, k.String())
				return false
			}
			if words, err = decodeWords(v); err != nil {
				return false
			}
			cases[k.String()] = words
			return true
		})
		if err != nil {
			return Segment{}, err
		}
		return Dynamic(key, Case(on, cases)), nil
	default:
		return Segment{}, fmt.Errorf("%w: segment %s: values must be an array or an object", ErrInvalidGrammar, key)
	}
}

func decodeWords(r gjson.Result) ([]string, error) {
	var words []string
	for _, w := range r.Array() {
		if w.Type != gjson.String {
			return nil, fmt.Errorf("%w: word %s is not a string", ErrInvalidGrammar, w.Raw)
		}
		words = append(words, w.String())
	}
	return words, nil
}
