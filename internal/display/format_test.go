package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/backmassage/partname/internal/config"
	"github.com/backmassage/partname/internal/term"
	"github.com/stretchr/testify/assert"
)

func TestFormatParts(t *testing.T) {
	tests := []struct {
		name  string
		parts []string
		want  string
	}{
		{"empty", nil, "(none)"},
		{"one", []string{"report"}, `{0}="report"`},
		{"three", []string{"alpha", "beta", "gamma"}, `{0}="alpha" {1}="beta" {2}="gamma"`},
		{"empty part", []string{"a", ""}, `{0}="a" {1}=""`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatParts(tt.parts))
		})
	}
}

func TestFormatRename(t *testing.T) {
	assert.Equal(t, "alpha_beta_gamma.pdf -> gamma_alpha_beta.pdf",
		FormatRename("alpha_beta_gamma.pdf", "gamma_alpha_beta.pdf"))
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "0 files", FormatCount(0, "file"))
	assert.Equal(t, "1 file", FormatCount(1, "file"))
	assert.Equal(t, "12 files", FormatCount(12, "file"))
}

func TestPrintBanner(t *testing.T) {
	term.Configure(config.ColorNever)
	var buf bytes.Buffer
	PrintBanner(&buf, "1.2.3")
	out := buf.String()
	assert.NotContains(t, out, "\033[")
	assert.Contains(t, out, "version 1.2.3")

	term.Configure(config.ColorAlways)
	defer term.Configure(config.ColorNever)
	buf.Reset()
	PrintBanner(&buf, "")
	assert.True(t, strings.HasPrefix(buf.String(), "\033[1;95m"))
	assert.NotContains(t, buf.String(), "version")
}
