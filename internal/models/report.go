package models

// TopicScores breaks the evaluation down across a fixed set of topics.
type TopicScores struct {
	TechnicalKnowledge float64 `json:"technical_knowledge"`
	ProblemSolving     float64 `json:"problem_solving"`
	Communication      float64 `json:"communication"`
	CodeQuality        float64 `json:"code_quality"`
	SystemDesign       float64 `json:"system_design"`
}

// Report is the evaluation of a completed interview. It is computed on view
// and never stored back into the session.
type Report struct {
	OverallScore float64     `json:"overall_score"`
	Strengths    []string    `json:"strengths"`
	Weaknesses   []string    `json:"weaknesses"`
	TopicScores  TopicScores `json:"topic_scores"`
}
