package phrasal

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions(t *testing.T) {
	t.Run("zero value is empty", func(t *testing.T) {
		var o Options
		assert.Equal(t, 0, o.Len())
		assert.False(t, o.Has("who"))
		assert.Empty(t, o.Keys())
		assert.Equal(t, map[string]string{}, o.Map())
		assert.Equal(t, "{}", o.String())
	})

	t.Run("keeps match order", func(t *testing.T) {
		o := Options{}.with("who", "my").with("not", "not").with("what", "day")

		assert.Equal(t, []string{"who", "not", "what"}, o.Keys())
		assert.Equal(t, "{who:my not:not what:day}", o.String())

		w, ok := o.Get("not")
		assert.True(t, ok)
		assert.Equal(t, "not", w)
	})

	t.Run("with does not modify receiver", func(t *testing.T) {
		base := Options{}.with("who", "my")
		a := base.with("what", "day")
		b := base.with("what", "hour")

		assert.Equal(t, 1, base.Len())
		wa, _ := a.Get("what")
		wb, _ := b.Get("what")
		assert.Equal(t, "day", wa)
		assert.Equal(t, "hour", wb)
	})

	t.Run("accessors return copies", func(t *testing.T) {
		o := Options{}.with("who", "my")

		o.Keys()[0] = "x"
		o.Map()["who"] = "x"

		assert.Equal(t, []string{"who"}, o.Keys())
		w, _ := o.Get("who")
		assert.Equal(t, "my", w)
	})

	t.Run("marshals in match order", func(t *testing.T) {
		o := Options{}.with("who", "my").with("what", "day")

		raw, err := json.Marshal(o)
		require.NoError(t, err)
		assert.Equal(t, `{"who":"my","what":"day"}`, string(raw))

		raw, err = json.Marshal(Options{})
		require.NoError(t, err)
		assert.Equal(t, `{}`, string(raw))
	})
}
