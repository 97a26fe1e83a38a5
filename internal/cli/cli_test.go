package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kleinwareio/liketype"
	"github.com/kleinwareio/liketype/codec"
	"github.com/kleinwareio/liketype/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeInput(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRenderStrategies(t *testing.T) {
	path := writeInput(t, "orders.json", []byte(`[1, 2, 3]`))

	tests := []struct {
		strategy string
		want     string
	}{
		{"count-only", "Orders[3]\n"},
		{"single-line", "Orders[3] = { '1', '2', '3' }\n"},
		{"multi-line", "Orders[3] = {\n  '1',\n  '2',\n  '3' }\n"},
	}
	for _, tt := range tests {
		t.Run(tt.strategy, func(t *testing.T) {
			stdout, _, err := run(t, "", "render", path, "--type", "Orders", "--strategy", tt.strategy)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestRenderDefaults(t *testing.T) {
	path := writeInput(t, "values.yaml", []byte("- a\n- null\n- c\n"))

	stdout, _, err := run(t, "", "render", path)
	require.NoError(t, err)
	assert.Equal(t, "Values[3]\n", stdout)

	stdout, _, err = run(t, "", "render", path, "--strategy", "single")
	require.NoError(t, err)
	assert.Equal(t, "Values[3] = { 'a', null, 'c' }\n", stdout)
}

func TestRenderFromStdin(t *testing.T) {
	stdout, _, err := run(t, `["x"]`, "render", "--strategy", "single-line")
	require.NoError(t, err)
	assert.Equal(t, "Values[1] = { 'x' }\n", stdout)
}

func TestRenderMsgpack(t *testing.T) {
	data := codec.MustEncode(codec.NewMsgpackCodec(), []string{"p", "q"})
	path := writeInput(t, "values.bin", data)

	stdout, _, err := run(t, "", "render", path, "--format", "msgpack", "--strategy", "single-line")
	require.NoError(t, err)
	assert.Equal(t, "Values[2] = { 'p', 'q' }\n", stdout)
}

func TestRenderErrors(t *testing.T) {
	t.Run("absent list", func(t *testing.T) {
		path := writeInput(t, "null.json", []byte(`null`))
		_, _, err := run(t, "", "render", path)
		assert.ErrorIs(t, err, liketype.ErrMissingValue)
	})

	t.Run("unknown extension", func(t *testing.T) {
		path := writeInput(t, "values.txt", []byte(`[1]`))
		_, _, err := run(t, "", "render", path)
		assert.Error(t, err)
	})

	t.Run("unknown strategy", func(t *testing.T) {
		path := writeInput(t, "values.json", []byte(`[1]`))
		_, _, err := run(t, "", "render", path, "--strategy", "sideways")
		assert.Error(t, err)
	})

	t.Run("malformed input is logged", func(t *testing.T) {
		path := writeInput(t, "values.json", []byte(`[1,`))
		_, stderr, err := run(t, "", "render", path)
		assert.Error(t, err)
		assert.Contains(t, stderr, "cannot decode input")
	})
}

func TestCompare(t *testing.T) {
	a := writeInput(t, "a.json", []byte(`[1, 2, 3]`))
	b := writeInput(t, "b.yaml", []byte("- 1\n- 2\n- 3\n"))
	c := writeInput(t, "c.json", []byte(`[3, 2, 1]`))
	d := writeInput(t, "d.json", []byte(`[1, 2, 3]`))

	stdout, _, err := run(t, "", "compare", a, d)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "equal", lines[0])
	assert.Equal(t, strings.Fields(lines[1])[1], strings.Fields(lines[2])[1])

	stdout, _, err = run(t, "", "compare", a, c)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "not equal\n"))

	// YAML integers and JSON numbers decode to different Go types.
	stdout, _, err = run(t, "", "compare", a, b)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "not equal\n"))

	_, _, err = run(t, "", "compare", a)
	assert.Error(t, err)
}

func TestSettingsPrecedence(t *testing.T) {
	configFile := writeInput(t, "liketype.yaml", []byte("render:\n  type: FromFile\n  strategy: multi-line\nlog:\n  level: debug\n"))
	input := writeInput(t, "values.json", []byte(`[1]`))

	t.Run("config file", func(t *testing.T) {
		stdout, stderr, err := run(t, "", "render", input, "--config", configFile)
		require.NoError(t, err)
		assert.Equal(t, "FromFile[1] = {\n  '1' }\n", stdout)
		assert.Contains(t, stderr, "settings resolved")
		assert.Contains(t, stderr, `"strategy_source":"file"`)
	})

	t.Run("environment over file", func(t *testing.T) {
		t.Setenv("LIKETYPE_RENDER_TYPE", "FromEnv")
		stdout, _, err := run(t, "", "render", input, "--config", configFile)
		require.NoError(t, err)
		assert.Equal(t, "FromEnv[1] = {\n  '1' }\n", stdout)
	})

	t.Run("flags over environment", func(t *testing.T) {
		t.Setenv("LIKETYPE_RENDER_TYPE", "FromEnv")
		stdout, _, err := run(t, "", "render", input, "--config", configFile, "--type", "FromFlag", "--strategy", "count")
		require.NoError(t, err)
		assert.Equal(t, "FromFlag[1]\n", stdout)
	})

	t.Run("missing config file", func(t *testing.T) {
		_, _, err := run(t, "", "render", input, "--config", filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}

func TestLoggerLevel(t *testing.T) {
	input := writeInput(t, "values.json", []byte(`[1]`))

	_, stderr, err := run(t, "", "render", input, "--log-level", "info")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"message":"rendered"`)
	assert.Contains(t, stderr, `"correlation_id"`)

	_, stderr, err = run(t, "", "render", input, "--log-level", "error")
	require.NoError(t, err)
	assert.Empty(t, stderr)

	_, _, err = run(t, "", "render", input, "--log-level", "loud")
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, logging.LevelWarn)
	require.NoError(t, err)
	assert.False(t, logger.Enabled(logging.LevelInfo))
	assert.True(t, logger.Enabled(logging.LevelWarn))
}
