package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/quizden/quizden/internal/quiz/domain"
	"github.com/quizden/quizden/internal/quiz/service"
	"github.com/quizden/quizden/pkg/httpx"
	"github.com/quizden/quizden/pkg/slogx"
)

// ScoresHandler serves quiz submission and score history for the
// authenticated user.
type ScoresHandler struct {
	ScoreService *service.ScoreService
}

// HandleSubmit serves POST /user/submit_quiz.
func (h *ScoresHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	identity, ok := httpx.IdentityFromContext(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "access token required")
		return
	}

	var req struct {
		QuizID  int64                    `json:"quizId"`
		Answers []domain.SubmittedAnswer `json:"answers"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.QuizID <= 0 || len(req.Answers) == 0 {
		httpx.WriteError(w, http.StatusBadRequest, "quizId and answers are required")
		return
	}

	total, err := h.ScoreService.SubmitQuiz(ctx, identity.ID, req.QuizID, req.Answers)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownQuiz):
			httpx.WriteError(w, http.StatusNotFound, "quiz not found")
		case errors.Is(err, service.ErrUnknownQuestion):
			httpx.WriteError(w, http.StatusBadRequest, "answers reference questions outside the quiz")
		default:
			log.Error("quiz submission failed", "error", err)
			httpx.WriteError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]int64{"totalScore": total})
}

// HandleRecent serves GET /user/recent_quiz_score.
func (h *ScoresHandler) HandleRecent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	identity, ok := httpx.IdentityFromContext(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "access token required")
		return
	}

	scores, err := h.ScoreService.RecentScores(ctx, identity.ID)
	if err != nil {
		if errors.Is(err, service.ErrNoScores) {
			httpx.WriteError(w, http.StatusNotFound, "no quiz scores recorded")
			return
		}
		log.Error("failed to load recent scores", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, scores)
}

// HandleHistory serves GET /user/quiz_scores.
func (h *ScoresHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	identity, ok := httpx.IdentityFromContext(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "access token required")
		return
	}

	scores, err := h.ScoreService.QuestionScores(ctx, identity.ID)
	if err != nil {
		if errors.Is(err, service.ErrNoScores) {
			httpx.WriteError(w, http.StatusNotFound, "no quiz scores recorded")
			return
		}
		log.Error("failed to load score history", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	type scoreRow struct {
		QuestionID   int64  `json:"questionId"`
		QuestionText string `json:"question"`
		Correct      bool   `json:"isCorrect"`
		Score        int64  `json:"score"`
		AttemptedAt  string `json:"attemptedAt"`
	}
	out := make([]scoreRow, 0, len(scores))
	for _, s := range scores {
		out = append(out, scoreRow{
			QuestionID:   s.QuestionID,
			QuestionText: s.QuestionText,
			Correct:      s.Correct,
			Score:        s.Score,
			AttemptedAt:  s.AttemptedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}
