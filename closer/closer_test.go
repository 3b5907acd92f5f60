package closer

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	errFirstClose  = errors.New("first close failed")
	errSecondClose = errors.New("second close failed")
)

// mockCloser is a test implementation of io.Closer.
type mockCloser struct {
	closeCount int
	closeError error
}

func (m *mockCloser) Close() error {
	m.closeCount++

	return m.closeError
}

func TestCloser(t *testing.T) {
	t.Parallel()

	t.Run("closes in registration order", func(t *testing.T) {
		t.Parallel()

		var order []string

		multi := NewCloser()
		multi.Add(CustomCloser(func() error {
			order = append(order, "decoder")

			return nil
		}))
		multi.Add(CustomCloser(func() error {
			order = append(order, "file")

			return nil
		}))

		require.NoError(t, multi.Close())
		assert.Equal(t, []string{"decoder", "file"}, order)
	})

	t.Run("collects all errors", func(t *testing.T) {
		t.Parallel()

		first := &mockCloser{closeError: errFirstClose}
		second := &mockCloser{closeError: errSecondClose}

		multi := NewCloser(first, second)

		err := multi.Close()
		require.ErrorIs(t, err, errFirstClose)
		require.ErrorIs(t, err, errSecondClose)
		assert.Equal(t, 1, first.closeCount)
		assert.Equal(t, 1, second.closeCount)
	})

	t.Run("skips nil closers", func(t *testing.T) {
		t.Parallel()

		multi := NewCloser(nil)
		multi.Add(nil)

		assert.NoError(t, multi.Close())
	})
}

func TestCustomCloser(t *testing.T) {
	t.Parallel()

	t.Run("nil function", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, CustomCloser(nil))
	})

	t.Run("propagates errors", func(t *testing.T) {
		t.Parallel()

		c := CustomCloser(func() error { return errFirstClose })
		assert.ErrorIs(t, c.Close(), errFirstClose)
	})
}

func TestForReader(t *testing.T) {
	t.Parallel()

	underlying := &mockCloser{}
	rc := ForReader(strings.NewReader("payload"), underlying)

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))

	require.NoError(t, rc.Close())
	assert.Equal(t, 1, underlying.closeCount)
}
