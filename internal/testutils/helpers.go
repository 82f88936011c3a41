package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// EndsInOne accepts binary words containing a 1; its last rule is shadowed.
const EndsInOne = `{
	"initial": 0, "final": [1], "white": "_",
	"transitions": [
		{"from": 0, "read": "0", "to": 0, "write": "0", "dir": "R"},
		{"from": 0, "read": "1", "to": 1, "write": "1", "dir": "R"},
		{"from": 0, "read": "1", "to": 0, "write": "1", "dir": "R"}
	]
}`

// EvenOnes accepts binary words with an even number of 1s.
const EvenOnes = `
initial: 0
final: [2]
white: "_"
transitions:
  - {from: 0, read: "0", to: 0, write: "0", dir: R}
  - {from: 0, read: "1", to: 1, write: "1", dir: R}
  - {from: 1, read: "0", to: 1, write: "0", dir: R}
  - {from: 1, read: "1", to: 0, write: "1", dir: R}
  - {from: 0, read: "_", to: 2, write: "_", dir: L}
`

// SetupMachineDir writes files (name -> content) into a fresh temporary
// directory and returns its absolute path.
// It fails the test immediately on error.
func SetupMachineDir(t *testing.T, files map[string]string) string {
	t.Helper()

	absPath, err := filepath.Abs(t.TempDir())
	require.NoError(t, err, "Failed to get absolute path for temp dir")

	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(absPath, name), []byte(content), 0644), "Failed to write %s", name)
	}
	return absPath
}

// WriteFile writes a single file into a fresh temporary directory and returns its path.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()
	return filepath.Join(SetupMachineDir(t, map[string]string{name: content}), name)
}
