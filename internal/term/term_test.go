package term

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/backmassage/partname/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigure(t *testing.T) {
	t.Cleanup(func() { Configure(config.ColorNever) })

	Configure(config.ColorAlways)
	assert.True(t, Enabled())
	assert.Equal(t, "\033[0m", NC)

	Configure(config.ColorNever)
	assert.False(t, Enabled())
	assert.Empty(t, Red)
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(nil))

	f, err := os.Create(filepath.Join(t.TempDir(), "plain"))
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, IsTerminal(f), "regular file is not a TTY")
}

func TestWantColor(t *testing.T) {
	env := func(vars map[string]string) func(string) string {
		return func(k string) string { return vars[k] }
	}
	cases := []struct {
		name string
		mode config.ColorMode
		vars map[string]string
		want bool
	}{
		{"always ignores NO_COLOR", config.ColorAlways, map[string]string{"NO_COLOR": "1"}, true},
		{"never", config.ColorNever, nil, false},
		{"auto NO_COLOR", config.ColorAuto, map[string]string{"NO_COLOR": "1"}, false},
		{"auto dumb terminal", config.ColorAuto, map[string]string{"TERM": "DUMB"}, false},
		{"auto without a TTY", config.ColorAuto, map[string]string{"TERM": "xterm"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, wantColor(tc.mode, nil, env(tc.vars)))
		})
	}
}
