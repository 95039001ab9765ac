package quiztext

import (
	"testing"

	"learnbyte/internal/domain"

	"github.com/stretchr/testify/assert"
)

const wellFormedResponse = `1) What pigment is key to photosynthesis?
A) Chlorophyll
B) Melanin
C) Keratin
D) Collagen
Correct answer: A

2) Which organelle performs photosynthesis?
A) Mitochondrion
B) Chloroplast
C) Ribosome
D) Nucleus
Correct answer: B`

func TestParse_WellFormed(t *testing.T) {
	questions := Parse(wellFormedResponse)

	assert.Len(t, questions, 2)

	assert.Equal(t, "What pigment is key to photosynthesis?", questions[0].Text)
	assert.Equal(t, []string{"A) Chlorophyll", "B) Melanin", "C) Keratin", "D) Collagen"}, questions[0].Options)
	assert.Equal(t, "A", questions[0].CorrectLabel)

	assert.Equal(t, "Which organelle performs photosynthesis?", questions[1].Text)
	assert.Equal(t, "B", questions[1].CorrectLabel)
}

func TestParse_IncompleteTrailingQuestionDropped(t *testing.T) {
	input := `1) What pigment is key to photosynthesis?
A) Chlorophyll
B) Melanin
C) Keratin
D) Collagen
Correct answer: A
2) incomplete question with no options`

	questions := Parse(input)

	assert.Len(t, questions, 1)
	assert.Equal(t, "What pigment is key to photosynthesis?", questions[0].Text)
}

func TestParse_IncompleteQuestionBeforeNextMarkerDropped(t *testing.T) {
	input := `1) A question with options but no answer line
A) one
B) two
2) A complete question
A) yes
Correct answer: A`

	questions := Parse(input)

	assert.Len(t, questions, 1)
	assert.Equal(t, "A complete question", questions[0].Text)
}

func TestParse_CompletenessInvariant(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"empty input", "", 0},
		{"prose only", "The backend refused to cooperate today.\nSorry.", 0},
		{"marker with empty question text", "1)\nA) option\nCorrect answer: A", 0},
		{"answer without options", "1) Question?\nCorrect answer: A", 0},
		{"options without answer", "1) Question?\nA) option", 0},
		{"single option suffices", "1) Question?\nA) option\nCorrect answer: A", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			questions := Parse(tt.input)
			assert.Len(t, questions, tt.want)
			for _, q := range questions {
				assert.NotEmpty(t, q.Text)
				assert.NotEmpty(t, q.Options)
				assert.NotEmpty(t, q.CorrectLabel)
			}
		})
	}
}

func TestParse_AnswerMarkerToleratesCaseAndSpacing(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"lower case", "correct answer: C"},
		{"upper case", "CORRECT ANSWER: C"},
		{"space before colon", "Correct answer : C"},
		{"no space after colon", "Correct answer:C"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			questions := Parse("1) Question?\nA) opt\n" + tt.line)
			assert.Len(t, questions, 1)
			assert.Equal(t, "C", questions[0].CorrectLabel)
		})
	}
}

func TestParse_OrphanLinesIgnored(t *testing.T) {
	// Option and answer lines before any question marker must not leak into
	// a later question.
	input := `A) stray option
Correct answer: Z
1) Real question
A) real option
Correct answer: A`

	questions := Parse(input)

	assert.Len(t, questions, 1)
	assert.Equal(t, []string{"A) real option"}, questions[0].Options)
	assert.Equal(t, "A", questions[0].CorrectLabel)
}

func TestParse_OrderPreserved(t *testing.T) {
	input := `1) first
A) a
Correct answer: A
2) second
A) a
Correct answer: A
3) third
A) a
Correct answer: A`

	questions := Parse(input)

	assert.Len(t, questions, 3)
	assert.Equal(t, "first", questions[0].Text)
	assert.Equal(t, "second", questions[1].Text)
	assert.Equal(t, "third", questions[2].Text)
}

func TestParse_Pure(t *testing.T) {
	first := Parse(wellFormedResponse)
	second := Parse(wellFormedResponse)
	assert.Equal(t, first, second)
}

func TestParse_LaterAnswerLineOverwritesLabel(t *testing.T) {
	input := `1) Question?
A) opt
Correct answer: A
Correct answer: B`

	questions := Parse(input)

	assert.Len(t, questions, 1)
	assert.Equal(t, "B", questions[0].CorrectLabel)
}

func TestParse_IndentedLinesAreTrimmed(t *testing.T) {
	input := "  1) Question?\n\tA) opt\n  Correct answer: A"

	questions := Parse(input)

	assert.Len(t, questions, 1)
	assert.Equal(t, []string{"A) opt"}, questions[0].Options)
}

func TestOptionLabel(t *testing.T) {
	assert.Equal(t, "A", domain.OptionLabel("A) Chlorophyll"))
	assert.Equal(t, "", domain.OptionLabel("no label here"))
}
