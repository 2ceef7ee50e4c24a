package result

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult(t *testing.T) {
	t.Run("ok holds value and no error", func(t *testing.T) {
		r := Ok(42)
		require.True(t, r.IsOk())
		v, ok := r.Value()
		assert.True(t, ok)
		assert.Equal(t, 42, v)
		assert.NoError(t, r.Err())
		assert.Equal(t, 42, r.MustValue())
	})

	t.Run("fail holds error and zero value", func(t *testing.T) {
		boom := errors.New("boom")
		r := Fail[*int](boom)
		require.False(t, r.IsOk())
		v, ok := r.Value()
		assert.False(t, ok)
		assert.Nil(t, v)
		assert.ErrorIs(t, r.Err(), boom)

		uv, err := r.Unwrap()
		assert.Nil(t, uv)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("fail with nil error panics", func(t *testing.T) {
		assert.Panics(t, func() { Fail[string](nil) })
	})

	t.Run("must value panics on failure", func(t *testing.T) {
		r := Fail[string](errors.New("nope"))
		assert.PanicsWithValue(t, "result: MustValue on failed result: nope", func() { r.MustValue() })
	})
}
