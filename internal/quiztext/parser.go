// Package quiztext turns the raw plain-text response of the generation
// backend into structured quiz questions. The expected shape is the one the
// generation prompt asks for:
//
//	1) Question text
//	A) ...
//	B) ...
//	C) ...
//	D) ...
//	Correct answer: X
//
// Parsing is best-effort by design: a backend that reorders or omits fields
// degrades to fewer questions, never to an error.
package quiztext

import (
	"regexp"
	"strings"

	"learnbyte/internal/domain"
)

var (
	questionMarker = regexp.MustCompile(`^[1-5]\)\s*(.*)$`)
	optionMarker   = regexp.MustCompile(`^[A-D]\)`)
	answerMarker   = regexp.MustCompile(`(?i)^correct\s+answer\s*:\s*(.*)$`)
)

// Parse extracts zero or more complete questions from rawText, preserving
// input order. It is a pure function: malformed input yields fewer or zero
// questions, never an error. A question in progress that is missing its text,
// options or correct label when the next marker (or end of input) arrives is
// discarded silently.
func Parse(rawText string) []domain.GeneratedQuestion {
	var (
		questions  []domain.GeneratedQuestion
		current    domain.GeneratedQuestion
		collecting bool
	)

	for _, line := range strings.Split(rawText, "\n") {
		line = strings.TrimSpace(line)

		switch {
		case questionMarker.MatchString(line):
			if collecting && current.Complete() {
				questions = append(questions, current)
			}
			m := questionMarker.FindStringSubmatch(line)
			current = domain.GeneratedQuestion{Text: strings.TrimSpace(m[1])}
			collecting = true

		case optionMarker.MatchString(line):
			if collecting {
				// The full line is kept verbatim, label included.
				current.Options = append(current.Options, line)
			}

		case answerMarker.MatchString(line):
			if collecting {
				m := answerMarker.FindStringSubmatch(line)
				current.CorrectLabel = strings.TrimSpace(m[1])
			}
		}
		// Anything else (blank lines, prose) is ignored.
	}

	if collecting && current.Complete() {
		questions = append(questions, current)
	}
	return questions
}
