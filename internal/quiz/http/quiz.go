package http

import (
	"net/http"

	"github.com/quizden/quizden/internal/quiz/service"
	"github.com/quizden/quizden/pkg/httpx"
	"github.com/quizden/quizden/pkg/slogx"
)

// QuizHandler serves GET /quiz: every question with its answer options.
type QuizHandler struct {
	QuizService *service.QuizService
}

func (h *QuizHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	questions, err := h.QuizService.ListQuestions(ctx)
	if err != nil {
		log.Error("failed to list questions", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, questions)
}
