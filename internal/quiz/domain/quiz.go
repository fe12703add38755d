package domain

// Answer is one of the candidate answers to a question.
type Answer struct {
	ID      int64  `json:"id"`
	Text    string `json:"text"`
	Correct bool   `json:"isCorrect"`
}

// Question is a quiz question together with its candidate answers.
type Question struct {
	ID      int64    `json:"id"`
	Text    string   `json:"question"`
	Answers []Answer `json:"answers"`
}

// QuizQuestion is the grading view of a question: just its id and the id of
// the correct answer.
type QuizQuestion struct {
	ID              int64
	CorrectAnswerID int64
}

// SubmittedAnswer is one answer of a quiz submission.
type SubmittedAnswer struct {
	QuestionID int64 `json:"question_id"`
	AnswerID   int64 `json:"answer_id"`
}
