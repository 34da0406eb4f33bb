package process

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/aretw0/nbserve/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("relies on a POSIX shell")
	}
}

func TestRunner_Execute(t *testing.T) {
	skipOnWindows(t)

	runner := NewRunner()
	runner.Register("greet", "echo", "hello")

	t.Run("Executes Registered Command", func(t *testing.T) {
		result, err := runner.Execute(context.Background(), domain.Invocation{Name: "greet"})
		require.NoError(t, err)
		assert.Equal(t, 0, result.ExitCode)
		assert.Equal(t, "hello\n", result.Stdout)
	})

	t.Run("Appends Invocation Args", func(t *testing.T) {
		result, err := runner.Execute(context.Background(), domain.Invocation{Name: "greet", Args: []string{"world"}})
		require.NoError(t, err)
		assert.Equal(t, "hello world\n", result.Stdout)
	})

	t.Run("Args Are Not Shell Expanded", func(t *testing.T) {
		result, err := runner.Execute(context.Background(), domain.Invocation{Name: "greet", Args: []string{"; rm -rf /"}})
		require.NoError(t, err)
		assert.Equal(t, "hello ; rm -rf /\n", result.Stdout)
	})

	t.Run("Fails For Unregistered Command", func(t *testing.T) {
		_, err := runner.Execute(context.Background(), domain.Invocation{Name: "hacker_script"})
		assert.ErrorIs(t, err, domain.ErrCommandNotRegistered)
	})
}

func TestRunner_ExecuteFailureIncludesStderr(t *testing.T) {
	skipOnWindows(t)

	runner := NewRunner()
	runner.Register("fail", "sh", "-c", "echo broken pipe >&2; exit 3")

	result, err := runner.Execute(context.Background(), domain.Invocation{Name: "fail"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken pipe")
	assert.Equal(t, 3, result.ExitCode)
}

func TestRunner_ExecuteHonorsContext(t *testing.T) {
	skipOnWindows(t)

	runner := NewRunner()
	runner.Register("slow", "sleep", "10")

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := runner.Execute(ctx, domain.Invocation{Name: "slow"})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestRunner_WithRegistryAndEnv(t *testing.T) {
	skipOnWindows(t)

	runner := NewRunner(WithRegistry(map[string]ProcessConfig{
		"env": {Name: "env", Command: "sh", Args: []string{"-c", "echo $NBSERVE_TEST"}, Environment: map[string]string{"NBSERVE_TEST": "SecretMessage"}},
	}))

	result, err := runner.Execute(context.Background(), domain.Invocation{Name: "env"})
	require.NoError(t, err)
	assert.Contains(t, result.Stdout, "SecretMessage")
}

func TestRunner_WithBaseDir(t *testing.T) {
	skipOnWindows(t)

	dir := t.TempDir()
	runner := NewRunner(WithBaseDir(dir))
	runner.Register("touch", "touch")

	_, err := runner.Execute(context.Background(), domain.Invocation{Name: "touch", Args: []string{"marker"}})
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "marker"))
}

func TestLoadTools(t *testing.T) {
	dir := t.TempDir()

	t.Run("Missing File Is Empty", func(t *testing.T) {
		tools, err := LoadTools(filepath.Join(dir, "absent.yaml"))
		require.NoError(t, err)
		assert.Empty(t, tools)
	})

	t.Run("YAML", func(t *testing.T) {
		path := filepath.Join(dir, "tools.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
tools:
  - name: dot
    command: /usr/local/bin/dot
    args: ["-Gdpi=150"]
  - command: nameless
`), 0644))

		tools, err := LoadTools(path)
		require.NoError(t, err)
		require.Len(t, tools, 1)
		assert.Equal(t, "/usr/local/bin/dot", tools["dot"].Command)
		assert.Equal(t, []string{"-Gdpi=150"}, tools["dot"].Args)
	})

	t.Run("JSON", func(t *testing.T) {
		path := filepath.Join(dir, "tools.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"tools":[{"name":"dot","command":"dot"}]}`), 0644))

		tools, err := LoadTools(path)
		require.NoError(t, err)
		assert.Equal(t, "dot", tools["dot"].Command)
	})

	t.Run("Malformed", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("tools: [unclosed"), 0644))

		_, err := LoadTools(path)
		assert.Error(t, err)
	})
}
