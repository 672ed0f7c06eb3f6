package runner

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const validIndex = `{
  "indexType": "IborIndex",
  "tenor": "6M",
  "dayCounter": "Actual360",
  "currency": "CLP",
  "fixingDays": 0,
  "calendar": "NullCalendar",
  "endOfMonth": false,
  "convention": "Unadjusted"
}`

const validIndexYAML = `indexType: OvernightIndex
tenor: 1D
dayCounter: Actual360
currency: USD
fixingDays: 0
calendar: UnitedStates
endOfMonth: false
convention: Following
`

// badTenor has a compound tenor.
const badTenor = `{
  "indexType": "IborIndex",
  "tenor": "1Y6M",
  "dayCounter": "Actual360",
  "currency": "CLP",
  "fixingDays": 0,
  "calendar": "NullCalendar",
  "endOfMonth": false,
  "convention": "Unadjusted"
}`

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// writeDocs writes the given files under a fresh temporary directory and returns it
// with the path of each file by name.
func writeDocs(t *testing.T, files map[string]string) (string, map[string]string) {
	t.Helper()
	root := t.TempDir()
	paths := make(map[string]string, len(files))
	for name, content := range files {
		p := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
		paths[name] = p
	}
	return root, paths
}
