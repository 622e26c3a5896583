package report

// Summary is the final outcome of a quiz pass.
type Summary struct {
	Score      int
	Total      int
	Percentage float64
}

// Summarize computes the percentage of correctly answered questions.
// An empty quiz reports zero percent.
func Summarize(score, total int) Summary {
	summary := Summary{Score: score, Total: total}
	if total > 0 {
		summary.Percentage = float64(score) / float64(total) * 100
	}
	return summary
}

// Entry describes one question's result for the breakdown listing.
type Entry struct {
	Index          int
	Prompt         string
	Answered       bool
	Correct        bool
	Chosen         []string
	CorrectAnswers []string
}
