package phrasal

import (
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const grammarDoc = `{
	"templates": [
		{
			"name": "make",
			"path": [
				{"key": "who", "values": ["my", "your"]},
				{"key": "what", "values": ["day", "hour", "minute"]}
			],
			"floating": ["not"]
		},
		{
			"name": "pet",
			"fn": "animal",
			"path": [
				{"key": "animal", "values": ["dog", "cat"]},
				"is",
				{"key": "action", "case": "animal", "values": {
					"dog": ["barking", "chewing", "playing"],
					"cat": ["purring", "playing"]
				}}
			]
		}
	]
}`

func TestDecodeTemplates(t *testing.T) {
	funcs := map[string]Func[call]{
		"make":   record("make"),
		"animal": record("animal"),
	}

	t.Run("decodes document", func(t *testing.T) {
		templates, err := DecodeTemplates([]byte(grammarDoc), funcs)
		require.NoError(t, err)
		require.Len(t, templates, 2)

		assert.Equal(t, "make", templates[0].Name)
		assert.Len(t, templates[0].Path, 2)
		assert.Len(t, templates[0].Floating, 1)
		assert.Equal(t, "pet", templates[1].Name)
		assert.Len(t, templates[1].Path, 3)

		root, err := Build(Empty(), templates...)
		require.NoError(t, err)

		got, err := root.Call("not.your.hour")
		require.NoError(t, err)
		assert.Equal(t, "make", got.id)
		assert.Equal(t, []string{"not", "who", "what"}, got.keys)

		got, err = root.Call("cat.is.purring")
		require.NoError(t, err)
		assert.Equal(t, "animal", got.id)
		assert.Equal(t, map[string]string{"animal": "cat", "is": "is", "action": "purring"}, got.opts)

		_, err = root.Call("dog.is.purring")
		assert.ErrorIs(t, err, ErrUnknownTerm)
	})

	t.Run("accepts bare array", func(t *testing.T) {
		templates, err := DecodeTemplates([]byte(`[{"name": "make", "path": ["make", "it"]}]`), funcs)
		require.NoError(t, err)
		require.Len(t, templates, 1)

		root, err := Build(Empty(), templates...)
		require.NoError(t, err)

		got, err := root.Call("make.it")
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"make": "make", "it": "it"}, got.opts)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		_, err := DecodeTemplates([]byte(`{nope`), funcs)
		assert.ErrorIs(t, err, ErrInvalidJSON)
	})

	t.Run("not a template list", func(t *testing.T) {
		_, err := DecodeTemplates([]byte(`{"templates": 3}`), funcs)
		assert.ErrorIs(t, err, ErrInvalidGrammar)

		_, err = DecodeTemplates([]byte(`"make"`), funcs)
		assert.ErrorIs(t, err, ErrInvalidGrammar)
	})

	t.Run("reports every bad template", func(t *testing.T) {
		doc := `[
			{"name": "missing", "path": ["a"]},
			{"name": "make", "path": [{"key": "a", "values": 3}]},
			{"name": "make", "path": [{"key": "a", "values": {"x": ["y"]}}]},
			{"name": "make", "floating": [7], "path": ["a"]},
			{"name": "make", "path": [{"key": "a", "values": [1]}]},
			"nope"
		]`
		_, err := DecodeTemplates([]byte(doc), funcs)
		require.Error(t, err)

		var merr *multierror.Error
		require.ErrorAs(t, err, &merr)
		assert.Len(t, merr.Errors, 6)
		assert.ErrorIs(t, err, ErrUnknownFunc)
		assert.ErrorIs(t, err, ErrInvalidGrammar)
		assert.Contains(t, err.Error(), "template 0 (missing)")
	})
}
