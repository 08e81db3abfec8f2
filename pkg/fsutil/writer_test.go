package fsutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uelms/dbsetup/pkg/fsutil"
)

const (
	testContent     = "test content"
	originalContent = "original content"
)

func readFile(t *testing.T, path string) string {
	t.Helper()

	//nolint:gosec // G304: path is created by the test (temp directory).
	content, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(content)
}

func TestWriteFile_EmptyOutput(t *testing.T) {
	t.Parallel()

	err := fsutil.WriteFile(testContent, "", false)

	require.ErrorIs(t, err, fsutil.ErrEmptyOutputPath)
}

func TestWriteFile_NewFileInNewDirectory(t *testing.T) {
	t.Parallel()

	output := filepath.Join(t.TempDir(), "nested", "dir", "railway.yaml")

	require.NoError(t, fsutil.WriteFile(testContent, output, false))
	assert.Equal(t, testContent, readFile(t, output))

	info, err := os.Stat(output)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestWriteFile_ExistingFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		force    bool
		wantErr  error
		expected string
	}{
		{name: "no force keeps the file", force: false, wantErr: fsutil.ErrFileExists, expected: originalContent},
		{name: "force overwrites", force: true, expected: testContent},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			output := filepath.Join(t.TempDir(), "existing.yaml")
			require.NoError(t, os.WriteFile(output, []byte(originalContent), 0o600))

			err := fsutil.WriteFile(testContent, output, testCase.force)

			if testCase.wantErr != nil {
				require.ErrorIs(t, err, testCase.wantErr)
				assert.Contains(t, err.Error(), output)
			} else {
				require.NoError(t, err)
			}

			assert.Equal(t, testCase.expected, readFile(t, output))
		})
	}
}

func TestWriteFile_DirectoryError(t *testing.T) {
	t.Parallel()

	parent := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(parent, []byte("not a directory"), 0o600))

	err := fsutil.WriteFile(testContent, filepath.Join(parent, "railway.yaml"), true)

	require.ErrorContains(t, err, "failed to create directory")
}

func TestExpandHomePath(t *testing.T) {
	t.Parallel()

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	cwd, err := os.Getwd()
	require.NoError(t, err)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty", input: "", expected: ""},
		{name: "home only", input: "~", expected: home},
		{name: "home relative", input: "~/.uelms/railway.yaml", expected: filepath.Join(home, ".uelms", "railway.yaml")},
		{name: "relative", input: "railway.yaml", expected: filepath.Join(cwd, "railway.yaml")},
		{name: "absolute", input: "/etc/railway.yaml", expected: "/etc/railway.yaml"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			actual, err := fsutil.ExpandHomePath(testCase.input)

			require.NoError(t, err)
			assert.Equal(t, testCase.expected, actual)
		})
	}
}
