// Package examgen asks the generation service for a mock exam built from
// extracted source text and cleans up what comes back.
package examgen

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/examgen/internal/examerr"
)

// Environment keys read by ParseSpec.
const (
	EnvMultipleChoice = "EXAMGEN_MCQ_COUNT"
	EnvFillInBlank    = "EXAMGEN_FIB_COUNT"
	EnvTrueFalse      = "EXAMGEN_TF_COUNT"
	EnvLanguage       = "EXAMGEN_LANGUAGE"
)

// DefaultLanguage is used when no language is configured.
const DefaultLanguage = "English"

// Spec is the requested exam composition.
type Spec struct {
	MultipleChoice int
	FillInBlank    int
	TrueFalse      int
	Language       string
}

// Total returns the number of questions across all categories.
func (s Spec) Total() int {
	return s.MultipleChoice + s.FillInBlank + s.TrueFalse
}

// Validate rejects negative counts.
func (s Spec) Validate() error {
	var bad []string
	if s.MultipleChoice < 0 {
		bad = append(bad, "multiple choice")
	}
	if s.FillInBlank < 0 {
		bad = append(bad, "fill in the blank")
	}
	if s.TrueFalse < 0 {
		bad = append(bad, "true/false")
	}
	if len(bad) > 0 {
		return examerr.New(examerr.InvalidConfiguration, "validate spec",
			fmt.Errorf("negative question count for %s", strings.Join(bad, ", ")))
	}
	return nil
}

// ParseSpec reads the question counts and language through lookup, which
// has the signature of os.LookupEnv. Every count is required; a missing,
// non-numeric or negative count is an InvalidConfiguration error naming
// each offending key.
func ParseSpec(lookup func(string) (string, bool)) (Spec, error) {
	var (
		spec Spec
		errs []error
	)

	counts := []struct {
		key string
		dst *int
	}{
		{EnvMultipleChoice, &spec.MultipleChoice},
		{EnvFillInBlank, &spec.FillInBlank},
		{EnvTrueFalse, &spec.TrueFalse},
	}
	for _, c := range counts {
		raw, ok := lookup(c.key)
		raw = strings.TrimSpace(raw)
		if !ok || raw == "" {
			errs = append(errs, fmt.Errorf("%s is not set", c.key))
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s must be an integer, got %q", c.key, raw))
			continue
		}
		if n < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %d", c.key, n))
			continue
		}
		*c.dst = n
	}

	spec.Language = DefaultLanguage
	if lang, ok := lookup(EnvLanguage); ok && strings.TrimSpace(lang) != "" {
		spec.Language = strings.TrimSpace(lang)
	}

	if len(errs) > 0 {
		return Spec{}, examerr.New(examerr.InvalidConfiguration, "parse exam spec", errors.Join(errs...))
	}
	return spec, nil
}
