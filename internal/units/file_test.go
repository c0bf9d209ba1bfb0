package units

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConversionFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "units.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("extends the defaults", func(t *testing.T) {
		path := writeConversionFile(t, `
pairs:
  - from: barspoon
    to: ml
    ratio: "5"
`)
		table, err := Load(path)
		require.NoError(t, err)

		got, err := table.Convert(d("2"), "barspoon", "ml")
		require.NoError(t, err)
		assert.True(t, d("10").Equal(got))

		// defaults still present
		assert.True(t, table.CanConvert("oz", "ml"))
	})

	t.Run("replace drops the defaults", func(t *testing.T) {
		path := writeConversionFile(t, `
replace: true
pairs:
  - from: keg
    to: pint
    ratio: "124"
`)
		table, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 1, table.Len())
		assert.False(t, table.CanConvert("oz", "ml"))
	})

	t.Run("duplicate of a default fails the load", func(t *testing.T) {
		path := writeConversionFile(t, `
pairs:
  - from: ml
    to: l
    ratio: "0.001"
`)
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate")
	})

	t.Run("invalid ratio string fails the load", func(t *testing.T) {
		path := writeConversionFile(t, `
pairs:
  - from: a
    to: b
    ratio: "lots"
`)
		_, err := Load(path)
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeConversionFile(t, "pairs: [unclosed")
		_, err := Load(path)
		require.Error(t, err)
	})
}
