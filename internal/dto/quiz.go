package dto

// GenerateQuizResult reports the outcome of a quiz generation request.
// AlreadyGenerated is true when the module had questions before the call
// and nothing new was produced.
type GenerateQuizResult struct {
	AlreadyGenerated bool `json:"already_generated"`
	QuestionCount    int  `json:"question_count"`
}

// QuizQuestionResponse is a question as shown to a student taking the
// quiz. The correct answer is deliberately absent.
type QuizQuestionResponse struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// QuizResponse is the full quiz for a module.
type QuizResponse struct {
	ModuleID  string                 `json:"module_id"`
	Questions []QuizQuestionResponse `json:"questions"`
}

// SubmitQuizRequest carries the student's selected option labels keyed
// by question ID.
type SubmitQuizRequest struct {
	Answers map[string]string `json:"answers"`
}

// SubmitQuizResult is the graded outcome of a submission.
type SubmitQuizResult struct {
	ModuleID     string  `json:"module_id"`
	Score        float64 `json:"score"`
	CorrectCount int     `json:"correct_count"`
	TotalCount   int     `json:"total_count"`
}

// ExplainRequest carries a student's free-form question about a module.
type ExplainRequest struct {
	Question string `json:"question"`
}

// ExplainResponse carries the generated explanation text.
type ExplainResponse struct {
	ModuleID    string `json:"module_id"`
	Explanation string `json:"explanation"`
	Cached      bool   `json:"cached"`
}
