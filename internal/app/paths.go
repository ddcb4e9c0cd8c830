package app

import (
	"path/filepath"
	"time"
)

const stampLayout = "20060102_150405"

// Output file base names.
const (
	combinedName  = "mock_exam"
	questionsName = "mock_exam_questions"
	answersName   = "mock_exam_answers"
)

// OutputPaths returns the document paths for a run: one combined file, or
// the questions file followed by the answers file in split mode.
func OutputPaths(cfg Config, at time.Time) []string {
	if cfg.Split {
		return []string{
			outputPath(cfg, questionsName, ".pdf", at),
			outputPath(cfg, answersName, ".pdf", at),
		}
	}
	return []string{outputPath(cfg, combinedName, ".pdf", at)}
}

// TextPath returns where the exam text is saved when SaveText is on.
func TextPath(cfg Config, at time.Time) string {
	return outputPath(cfg, combinedName, ".txt", at)
}

func outputPath(cfg Config, base, ext string, at time.Time) string {
	name := base
	if cfg.Timestamp {
		name += "_" + at.Format(stampLayout)
	}
	return filepath.Join(cfg.OutputDir, name+ext)
}
