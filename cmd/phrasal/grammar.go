package main

import (
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/tidwall/gjson"

	"github.com/bjaus/phrasal"
)

// loadGrammar decodes a grammar document, converting YAML to JSON first
// when the file extension asks for it. Every function the grammar names is
// bound to one that reports the match.
func loadGrammar(name string, raw []byte) ([]phrasal.Template[match], error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		js, err := yaml.YAMLToJSON(raw)
		if err != nil {
			return nil, err
		}
		raw = js
	}
	return phrasal.DecodeTemplates(raw, reporters(raw))
}

// reporters returns a function for every "fn" (or "name") in the document.
func reporters(raw []byte) map[string]phrasal.Func[match] {
	list := gjson.ParseBytes(raw)
	if list.IsObject() {
		list = list.Get("templates")
	}

	funcs := make(map[string]phrasal.Func[match])
	for _, t := range list.Array() {
		fn := t.Get("fn").String()
		if fn == "" {
			fn = t.Get("name").String()
		}
		funcs[fn] = report(fn)
	}
	return funcs
}

func report(fn string) phrasal.Func[match] {
	return func(_ any, opts phrasal.Options, args ...any) (match, error) {
		if args == nil {
			args = []any{}
		}
		return match{Func: fn, Options: opts, Args: args}, nil
	}
}
