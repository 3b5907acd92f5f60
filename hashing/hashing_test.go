package hashing

import (
	"errors"
	"hash"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSha256(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    Hashable
		expected string
	}{
		{
			name:     "empty string",
			input:    HashableString(""),
			expected: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			name:     "simple string",
			input:    HashableString("hello"),
			expected: "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		},
		{
			name:     "string with spaces",
			input:    HashableString("hello world"),
			expected: "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := Sha256(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestXXH3(t *testing.T) {
	t.Parallel()

	t.Run("same input produces same hash", func(t *testing.T) {
		t.Parallel()

		hash1, err := XXH3(HashableString("hello"))
		require.NoError(t, err)

		hash2, err := XXH3(HashableString("hello"))
		require.NoError(t, err)

		assert.Equal(t, hash1, hash2)
		assert.NotEmpty(t, hash1)
	})

	t.Run("different inputs produce different hashes", func(t *testing.T) {
		t.Parallel()

		hash1, err := XXH3(HashableString("hello"))
		require.NoError(t, err)

		hash2, err := XXH3(HashableString("world"))
		require.NoError(t, err)

		assert.NotEqual(t, hash1, hash2)
	})
}

// mockHashable is a test implementation of Hashable that can return errors.
type mockHashable struct {
	err error
}

func (m mockHashable) UpdateHash(h hash.Hash) error {
	if m.err != nil {
		return m.err
	}

	_, err := h.Write([]byte("test"))

	return err
}

var errHashTest = errors.New("hash error")

func TestHashFunctions_Error(t *testing.T) {
	t.Parallel()

	mock := mockHashable{err: errHashTest}

	t.Run("Sha256 error", func(t *testing.T) {
		t.Parallel()

		result, err := Sha256(mock)
		require.Error(t, err)
		assert.Equal(t, errHashTest, err)
		assert.Empty(t, result)
	})

	t.Run("XXH3 error", func(t *testing.T) {
		t.Parallel()

		result, err := XXH3(mock)
		require.Error(t, err)
		assert.Equal(t, errHashTest, err)
		assert.Empty(t, result)
	})
}

func TestHashableString_Equals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a        HashableString
		b        HashableString
		expected bool
	}{
		{
			name:     "equal strings",
			a:        HashableString("hello"),
			b:        HashableString("hello"),
			expected: true,
		},
		{
			name:     "different strings",
			a:        HashableString("hello"),
			b:        HashableString("world"),
			expected: false,
		},
		{
			name:     "empty strings",
			a:        HashableString(""),
			b:        HashableString(""),
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := tt.a.Equals(tt.b)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestHashFunc(t *testing.T) {
	t.Parallel()

	var hashFunc HashFunc = Sha256

	result, err := hashFunc(HashableString("test"))
	require.NoError(t, err)
	assert.NotEmpty(t, result)

	expected, err := Sha256(HashableString("test"))
	require.NoError(t, err)
	assert.Equal(t, expected, result)
}
