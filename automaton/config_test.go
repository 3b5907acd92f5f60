package automaton

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const endsInOneYAML = `
name: ends-in-one
states: [t0, t1]
alphabet: ["0", "1"]
start: t0
accepting: [t1]
transitions:
  - {from: t0, symbol: "0", to: t0}
  - {from: t0, symbol: "1", to: t1}
  - {from: t1, symbol: "0", to: t0}
  - {from: t1, symbol: "1", to: t1}
`

func TestParseDefinition(t *testing.T) {
	t.Parallel()

	t.Run("decodes a full definition", func(t *testing.T) {
		t.Parallel()

		def, err := ParseDefinition([]byte(endsInOneYAML))
		require.NoError(t, err)

		assert.Equal(t, "ends-in-one", def.Name)
		assert.Equal(t, []string{"t0", "t1"}, def.States)
		assert.Equal(t, "t0", def.Start)
		assert.Len(t, def.Transitions, 4)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		t.Parallel()

		_, err := ParseDefinition([]byte("states: [unterminated"))
		require.ErrorIs(t, err, ErrInvalidDefinition)
	})
}

func TestDefinition_Automaton(t *testing.T) {
	t.Parallel()

	t.Run("equivalent to the textual form", func(t *testing.T) {
		t.Parallel()

		def, err := ParseDefinition([]byte(endsInOneYAML))
		require.NoError(t, err)

		built, err := def.Automaton()
		require.NoError(t, err)

		parsed := mustParse(t, descEndsInOne)
		assert.Equal(t, parsed.Description(), built.Description())
	})

	t.Run("validation failures wrap ErrInvalidDefinition", func(t *testing.T) {
		t.Parallel()

		def := &Definition{
			States:   []string{"t0"},
			Alphabet: []string{"0"},
			Start:    "nowhere",
		}

		_, err := def.Automaton()
		require.ErrorIs(t, err, ErrInvalidDefinition)
		require.ErrorIs(t, err, ErrStartStateUnknown)
	})
}

func TestLoadDefinitionFile(t *testing.T) {
	t.Parallel()

	t.Run("round trip through a file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "ends-in-one.yaml")
		require.NoError(t, os.WriteFile(path, []byte(endsInOneYAML), 0o600))

		def, err := LoadDefinitionFile(path)
		require.NoError(t, err)
		assert.Equal(t, "ends-in-one", def.Name)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := LoadDefinitionFile(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})
}
