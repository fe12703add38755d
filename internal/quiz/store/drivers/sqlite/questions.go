package sqlite

import (
	"context"
	"database/sql"

	"github.com/quizden/quizden/internal/quiz/domain"
)

type questionsRepo struct {
	db dbtx
}

func (r *questionsRepo) ListQuestionsWithAnswers(ctx context.Context) ([]domain.Question, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT q.id, q.question_text, a.id, a.answer_text, a.is_correct
		 FROM questions q
		 JOIN answers a ON a.question_id = q.id
		 ORDER BY q.id, a.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var (
		questions []domain.Question
		current   *domain.Question
	)
	for rows.Next() {
		var (
			questionID   int64
			questionText string
			answer       domain.Answer
		)
		if err := rows.Scan(&questionID, &questionText, &answer.ID, &answer.Text, &answer.Correct); err != nil {
			return nil, err
		}

		if current == nil || current.ID != questionID {
			questions = append(questions, domain.Question{ID: questionID, Text: questionText})
			current = &questions[len(questions)-1]
		}
		current.Answers = append(current.Answers, answer)
	}
	return questions, rows.Err()
}

func (r *questionsRepo) ListQuizQuestions(ctx context.Context, quizID int64) ([]domain.QuizQuestion, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, correct_answer_id FROM questions WHERE quiz_id = ? ORDER BY id`, quizID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []domain.QuizQuestion
	for rows.Next() {
		var (
			q         domain.QuizQuestion
			correctID sql.NullInt64
		)
		if err := rows.Scan(&q.ID, &correctID); err != nil {
			return nil, err
		}
		q.CorrectAnswerID = correctID.Int64
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

func (r *questionsRepo) CreateQuiz(ctx context.Context, title string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `INSERT INTO quizzes (title) VALUES (?)`, title)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *questionsRepo) CreateQuestion(ctx context.Context, quizID int64, text string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO questions (quiz_id, question_text) VALUES (?, ?)`, quizID, text)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *questionsRepo) CreateAnswer(ctx context.Context, questionID int64, text string, correct bool) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO answers (question_id, answer_text, is_correct) VALUES (?, ?, ?)`,
		questionID, text, correct)
	if err != nil {
		return 0, err
	}
	answerID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if correct {
		_, err = r.db.ExecContext(ctx,
			`UPDATE questions SET correct_answer_id = ? WHERE id = ?`, answerID, questionID)
		if err != nil {
			return 0, err
		}
	}
	return answerID, nil
}
