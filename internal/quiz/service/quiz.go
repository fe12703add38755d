package service

import (
	"context"

	"github.com/quizden/quizden/internal/quiz/domain"
	"github.com/quizden/quizden/internal/quiz/store"
)

// QuizService serves quiz content.
type QuizService struct {
	Store store.Store
}

// ListQuestions returns every question with its answer options.
func (s *QuizService) ListQuestions(ctx context.Context) ([]domain.Question, error) {
	return s.Store.Questions().ListQuestionsWithAnswers(ctx)
}
