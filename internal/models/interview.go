package models

// Question is a single generated interview question. Immutable once generated.
type Question struct {
	Question string `json:"question"`
}

// AnswerRecord pairs a question with the answer the candidate submitted for it.
type AnswerRecord struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Interview is the full per-client state of one mock-interview run. It lives
// inside a signed cookie, never on the server.
type Interview struct {
	Company   string         `json:"company"`
	Role      string         `json:"role"`
	Questions []Question     `json:"questions"`
	Current   int            `json:"current_question"` // always in [0, len(Questions)]
	Answers   []AnswerRecord `json:"answers"`
}

// Complete reports whether every question has been answered.
func (iv *Interview) Complete() bool {
	return len(iv.Questions) > 0 && iv.Current >= len(iv.Questions)
}
