package examgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/examgen/internal/examerr"
)

func envLookup(env map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
}

func TestParseSpec_Valid(t *testing.T) {
	spec, err := ParseSpec(envLookup(map[string]string{
		EnvMultipleChoice: "5",
		EnvFillInBlank:    " 2 ",
		EnvTrueFalse:      "0",
		EnvLanguage:       "Spanish",
	}))
	require.NoError(t, err)
	assert.Equal(t, Spec{MultipleChoice: 5, FillInBlank: 2, TrueFalse: 0, Language: "Spanish"}, spec)
	assert.Equal(t, 7, spec.Total())
}

func TestParseSpec_DefaultLanguage(t *testing.T) {
	spec, err := ParseSpec(envLookup(map[string]string{
		EnvMultipleChoice: "1",
		EnvFillInBlank:    "1",
		EnvTrueFalse:      "1",
	}))
	require.NoError(t, err)
	assert.Equal(t, "English", spec.Language)
}

// Every combination with at least one count missing is rejected.
func TestParseSpec_AnyMissingCountIsInvalid(t *testing.T) {
	keys := []string{EnvMultipleChoice, EnvFillInBlank, EnvTrueFalse}
	for mask := 0; mask < 7; mask++ {
		env := map[string]string{}
		for i, k := range keys {
			if mask&(1<<i) != 0 {
				env[k] = "3"
			}
		}
		_, err := ParseSpec(envLookup(env))
		require.Error(t, err, "mask %03b", mask)
		assert.True(t, examerr.Is(err, examerr.InvalidConfiguration), "mask %03b: %v", mask, err)
		for i, k := range keys {
			if mask&(1<<i) == 0 {
				assert.Contains(t, err.Error(), k)
			}
		}
	}
}

func TestParseSpec_BadValues(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"non-numeric", "five"},
		{"float", "2.5"},
		{"negative", "-1"},
		{"blank", "   "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSpec(envLookup(map[string]string{
				EnvMultipleChoice: "1",
				EnvFillInBlank:    tt.value,
				EnvTrueFalse:      "1",
			}))
			require.Error(t, err)
			assert.True(t, examerr.Is(err, examerr.InvalidConfiguration))
			assert.Contains(t, err.Error(), EnvFillInBlank)
		})
	}
}

func TestSpecValidate(t *testing.T) {
	assert.NoError(t, Spec{}.Validate())
	err := Spec{MultipleChoice: 1, TrueFalse: -2}.Validate()
	require.Error(t, err)
	assert.True(t, examerr.Is(err, examerr.InvalidConfiguration))
	assert.Contains(t, err.Error(), "true/false")
}
