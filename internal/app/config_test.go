package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/examgen/internal/examerr"
	"github.com/abhisek/examgen/internal/examgen"
)

func lookupMap(env map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
}

func baseEnv() map[string]string {
	return map[string]string{
		EnvInput:                  "bio.pdf",
		examgen.EnvMultipleChoice: "2",
		examgen.EnvFillInBlank:    "1",
		examgen.EnvTrueFalse:      "1",
	}
}

func TestParseSplit(t *testing.T) {
	tests := []struct {
		in      string
		want    bool
		wantErr bool
	}{
		{"", false, false},
		{"true", true, false},
		{" YES ", true, false},
		{"1", true, false},
		{"on", true, false},
		{"Split", true, false},
		{"false", false, false},
		{"0", false, false},
		{"off", false, false},
		{"combined", false, false},
		{"Do Not Split", false, false},
		{"maybe", false, true},
		{"2", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSplit(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, examerr.Is(err, examerr.InvalidConfiguration))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfigFromEnv_Defaults(t *testing.T) {
	cfg, err := ConfigFromEnv(lookupMap(baseEnv()))
	require.NoError(t, err)

	assert.Equal(t, "bio.pdf", cfg.Input)
	assert.Empty(t, cfg.Supplements)
	assert.Equal(t, "output", cfg.OutputDir)
	assert.Equal(t, "GENERATED MOCK EXAM", cfg.Title)
	assert.False(t, cfg.Split)
	assert.True(t, cfg.Timestamp)
	assert.False(t, cfg.SaveText)
	assert.False(t, cfg.Generator.Structured)
	assert.Equal(t, examgen.Spec{MultipleChoice: 2, FillInBlank: 1, TrueFalse: 1, Language: "English"}, cfg.Spec)
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	env := baseEnv()
	env[EnvSupplement1] = "notes.pdf"
	env[EnvSupplement2] = " "
	env[EnvOutputDir] = "/tmp/exams"
	env[EnvTitle] = "Chemistry Midterm"
	env[EnvSplit] = "yes"
	env[EnvTimestamp] = "off"
	env[EnvStructured] = "true"
	env[EnvSaveText] = "1"
	env[EnvFont] = "/fonts/DejaVuSans.ttf"
	env[examgen.EnvLanguage] = "German"

	cfg, err := ConfigFromEnv(lookupMap(env))
	require.NoError(t, err)

	assert.Equal(t, []string{"notes.pdf"}, cfg.Supplements)
	assert.Equal(t, "/tmp/exams", cfg.OutputDir)
	assert.Equal(t, "Chemistry Midterm", cfg.Title)
	assert.True(t, cfg.Split)
	assert.False(t, cfg.Timestamp)
	assert.True(t, cfg.Generator.Structured)
	assert.True(t, cfg.SaveText)
	assert.Equal(t, "/fonts/DejaVuSans.ttf", cfg.FontPath)
	assert.Equal(t, "German", cfg.Spec.Language)
}

func TestConfigFromEnv_CollectsErrors(t *testing.T) {
	env := baseEnv()
	delete(env, examgen.EnvTrueFalse)
	env[EnvSplit] = "sometimes"
	env[EnvTimestamp] = "later"

	_, err := ConfigFromEnv(lookupMap(env))
	require.Error(t, err)
	assert.True(t, examerr.Is(err, examerr.InvalidConfiguration))
	for _, key := range []string{examgen.EnvTrueFalse, EnvSplit, EnvTimestamp} {
		assert.Contains(t, err.Error(), key)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.Validate()
	assert.True(t, examerr.Is(err, examerr.InvalidConfiguration), "missing input")

	cfg.Input = "a.pdf"
	assert.NoError(t, cfg.Validate())

	cfg.Supplements = []string{"b.pdf", "c.pdf", "d.pdf"}
	assert.True(t, examerr.Is(cfg.Validate(), examerr.InvalidConfiguration))
}

func TestConfigCheckInput(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()

	cfg.Input = filepath.Join(dir, "missing.pdf")
	err := cfg.CheckInput()
	assert.True(t, examerr.Is(err, examerr.NotFound))
	assert.Equal(t, 2, examerr.ExitCode(err))

	cfg.Input = dir
	assert.True(t, examerr.Is(cfg.CheckInput(), examerr.ExtractionFailure))

	cfg.Input = filepath.Join(dir, "notes.pdf")
	require.NoError(t, os.WriteFile(cfg.Input, []byte("%PDF-1.4"), 0o644))
	assert.NoError(t, cfg.CheckInput())
}
