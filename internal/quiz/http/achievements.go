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

// AchievementsHandler serves achievement unlocks, progress and counts for the
// authenticated user.
type AchievementsHandler struct {
	AchievementService *service.AchievementService
}

// HandleUnlock serves POST /achievement/new_achievement.
func (h *AchievementsHandler) HandleUnlock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	identity, ok := httpx.IdentityFromContext(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "access token required")
		return
	}

	var req struct {
		AchievementTypeID int64 `json:"achievementTypeId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.AchievementTypeID <= 0 {
		httpx.WriteError(w, http.StatusBadRequest, "achievementTypeId is required")
		return
	}

	a, err := h.AchievementService.Unlock(ctx, identity.ID, req.AchievementTypeID)
	if err != nil {
		if errors.Is(err, service.ErrAlreadyUnlocked) {
			httpx.WriteError(w, http.StatusConflict, "achievement already unlocked")
			return
		}
		log.Error("achievement unlock failed", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, map[string]string{"id": a.ID})
}

// HandleProgress serves PUT /user/achievement_unlocked.
func (h *AchievementsHandler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	identity, ok := httpx.IdentityFromContext(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "access token required")
		return
	}

	var req struct {
		QuizProgress int64 `json:"quizProgress"`
		GameProgress int64 `json:"gameProgress"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	unlocked, err := h.AchievementService.UpdateProgress(ctx, identity.ID, req.QuizProgress, req.GameProgress)
	if err != nil {
		if errors.Is(err, service.ErrNegativeDelta) {
			httpx.WriteError(w, http.StatusBadRequest, "progress must not be negative")
			return
		}
		log.Error("progress update failed", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	type unlockedDef struct {
		ID          int64  `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}
	out := make([]unlockedDef, 0, len(unlocked))
	for _, d := range unlocked {
		out = append(out, unlockedDef{ID: d.ID, Name: d.Name, Description: d.Description, Type: d.Type})
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"unlocked": out})
}

// HandleGameCount serves GET /achievement/games.
func (h *AchievementsHandler) HandleGameCount(w http.ResponseWriter, r *http.Request) {
	h.writeCount(w, r, domain.AchievementTypeGame)
}

// HandleQuizCount serves GET /achievement/quizzes.
func (h *AchievementsHandler) HandleQuizCount(w http.ResponseWriter, r *http.Request) {
	h.writeCount(w, r, domain.AchievementTypeQuiz)
}

// HandleTotalCount serves GET /achievement/total.
func (h *AchievementsHandler) HandleTotalCount(w http.ResponseWriter, r *http.Request) {
	h.writeCount(w, r, "")
}

func (h *AchievementsHandler) writeCount(w http.ResponseWriter, r *http.Request, category string) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	identity, ok := httpx.IdentityFromContext(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "access token required")
		return
	}

	var (
		count int64
		err   error
	)
	if category == "" {
		count, err = h.AchievementService.CountTotal(ctx, identity.ID)
	} else {
		count, err = h.AchievementService.CountByCategory(ctx, identity.ID, category)
	}
	if err != nil {
		log.Error("achievement count failed", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]int64{"count": count})
}
