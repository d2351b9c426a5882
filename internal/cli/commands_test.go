package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	root := newRootCommand()
	outBuf, errBuf := new(bytes.Buffer), new(bytes.Buffer)
	root.SetOut(outBuf)
	root.SetErr(errBuf)
	root.SetArgs(args)
	err = root.Execute()
	return outBuf.String(), errBuf.String(), err
}

func TestParseCommandTextOutput(t *testing.T) {
	// parse reads stdin when given "-"; redirect it to a pipe carrying SQL.
	r, w, perr := os.Pipe()
	require.NoError(t, perr)
	_, werr := w.WriteString("SELECT 1")
	require.NoError(t, werr)
	require.NoError(t, w.Close())

	orig := os.Stdin
	os.Stdin = r
	defer func() { os.Stdin = orig }()

	root := newRootCommand()
	outBuf := new(bytes.Buffer)
	root.SetOut(outBuf)
	root.SetArgs([]string{"parse", "--dialect", "generic", "-"})
	require.NoError(t, root.Execute())
	assert.Contains(t, outBuf.String(), "QueryStatement")
}

func TestParseCommandFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "q.sql")
	require.NoError(t, os.WriteFile(path, []byte("SELECT 1"), 0o644))

	root := newRootCommand()
	outBuf := new(bytes.Buffer)
	root.SetOut(outBuf)
	root.SetArgs([]string{"parse", "--dialect", "generic", path})
	require.NoError(t, root.Execute())
	assert.Contains(t, outBuf.String(), "QueryStatement")
}

func TestParseCommandUnknownDialectErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "q.sql")
	require.NoError(t, os.WriteFile(path, []byte("SELECT 1"), 0o644))

	_, _, err := execute(t, "parse", "--dialect", "oracle", path)
	require.Error(t, err)
}

func TestCheckCommandReportsOkAndFail(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.sql")
	bad := filepath.Join(dir, "bad.sql")
	require.NoError(t, os.WriteFile(good, []byte("SELECT 1"), 0o644))
	require.NoError(t, os.WriteFile(bad, []byte("SELECT (1"), 0o644))

	out, _, err := execute(t, "check", "--dialect", "generic", good)
	require.NoError(t, err)
	assert.Contains(t, out, "OK: 1 statement")

	_, _, err = execute(t, "check", "--dialect", "generic", bad)
	require.Error(t, err)
}

func TestDialectsCommandListsAllRegisteredNames(t *testing.T) {
	out, _, err := execute(t, "dialects")
	require.NoError(t, err)
	for _, name := range []string{"generic", "postgresql", "mysql", "duckdb"} {
		assert.Contains(t, out, name)
	}
}

func TestDialectsCommandVerboseShowsCapabilities(t *testing.T) {
	out, _, err := execute(t, "dialects", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, out, "supports trailing commas")
}

func TestHumanizeInsertsSpacesBeforeCapitals(t *testing.T) {
	assert.Equal(t, "supports trailing commas", humanize("SupportsTrailingCommas"))
	assert.Equal(t, "connect by", humanize("ConnectBy"))
}
