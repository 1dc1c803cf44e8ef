package cli

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// execute runs the command tree with args and stdin, returning stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand(&RootOptions{Logger: zap.NewNop()})
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "bimatch", cmd.Use)
	assert.Contains(t, cmd.Long, "Hungarian")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"solve", "generate", "serve", "version"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verbose := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "v", verbose.Shorthand)
	assert.Equal(t, "false", verbose.DefValue)

	cfg := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, cfg)
	assert.Equal(t, "", cfg.DefValue)
}

func TestSolve_File(t *testing.T) {
	out, err := execute(t, "", "solve", filepath.Join("testdata", "teams.json"))
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"assignment\": {\n    \"alice\": \"web\",\n    \"bob\": \"db\"\n  },\n  \"weight\": 3\n}\n", out)
}

func TestSolve_StdinMaximizeText(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "teams.json"))
	require.NoError(t, err)

	out, err := execute(t, string(data), "solve", "--maximize", "--format", "text")
	require.NoError(t, err)
	assert.Equal(t, "alice -> db (3)\nbob -> web (4)\ntotal: 7\n", out)

	out, err = execute(t, string(data), "solve", "-", "--objective", "max", "-f", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "total: 7")
}

func TestSolve_YAMLInput(t *testing.T) {
	out, err := execute(t, "a: {x: 2}\n", "solve", "-i", "yaml", "-f", "yaml")
	require.NoError(t, err)
	assert.Equal(t, "assignment:\n  a: x\nweight: 2\n", out)
}

func TestSolve_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bimatch.yaml")
	require.NoError(t, os.WriteFile(path, []byte("objective: max\nformat: text\n"), 0o600))

	out, err := execute(t, "", "--config", path, "solve", filepath.Join("testdata", "teams.json"))
	require.NoError(t, err)
	assert.Contains(t, out, "total: 7")

	_, err = execute(t, "", "--config", filepath.Join(t.TempDir(), "nope.yaml"), "solve")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestSolve_ExitCodes(t *testing.T) {
	cases := []struct {
		name  string
		stdin string
		args  []string
		code  int
	}{
		{"malformed", `[]`, nil, ExitFailure},
		{"unequal", `{"a": {"x": 1, "y": 1}}`, nil, ExitFailure},
		{"odd cycle", `{"a": {"b": 1}, "b": {"c": 1}, "c": {"a": 1}}`, nil, ExitFailure},
		{"bad objective", `{}`, []string{"--objective", "up"}, ExitCommandError},
		{"bad format", `{}`, []string{"--format", "xml"}, ExitCommandError},
		{"text input", `{}`, []string{"-i", "text"}, ExitCommandError},
		{"missing file", ``, []string{filepath.Join("testdata", "missing.json")}, ExitCommandError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := execute(t, tc.stdin, append([]string{"solve"}, tc.args...)...)
			require.Error(t, err)
			assert.Equal(t, tc.code, GetExitCode(err))
		})
	}
}

func TestGenerate_PipesIntoSolve(t *testing.T) {
	doc, err := execute(t, "", "generate", "-n", "5", "--seed", "9", "--max", "20")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(doc, "{\n  \"L0\": {\"R0\": "), doc)

	again, err := execute(t, "", "generate", "-n", "5", "--seed", "9", "--max", "20")
	require.NoError(t, err)
	assert.Equal(t, doc, again, "same seed, same document")

	out, err := execute(t, doc, "solve", "-f", "text")
	require.NoError(t, err)
	assert.Equal(t, 6, strings.Count(out, "\n"), "five pairs plus the total line")

	yamlDoc, err := execute(t, "", "generate", "-n", "3", "-f", "yaml", "--density", "0.5")
	require.NoError(t, err)
	_, err = execute(t, yamlDoc, "solve", "-i", "yaml")
	require.NoError(t, err)
}

func TestGenerate_Errors(t *testing.T) {
	for name, args := range map[string][]string{
		"n":       {"-n", "0"},
		"range":   {"--min", "5", "--max", "1"},
		"density": {"--density", "2"},
		"format":  {"-f", "text"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := execute(t, "", append([]string{"generate"}, args...)...)
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
		})
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "bimatch dev\n", out)
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("plain")))
	wrapped := WrapExitError(ExitCommandError, "outer", errors.New("inner"))
	assert.Equal(t, ExitCommandError, GetExitCode(wrapped))
	assert.Equal(t, "outer: inner", wrapped.Error())
	assert.Equal(t, "bare", (&ExitError{Code: 1, Message: "bare"}).Error())
}

func TestServe_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	srv := &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()}

	done := make(chan error, 1)
	go func() { done <- serve(ctx, zap.NewNop(), srv) }()
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after cancel")
	}
}

func TestServe_ListenError(t *testing.T) {
	err := serve(context.Background(), zap.NewNop(), &http.Server{Addr: "256.0.0.1:bad"})
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
