package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func seedQuiz(t *testing.T, env *testEnv) (quizID int64, questionIDs, correctIDs []int64) {
	t.Helper()
	ctx := context.Background()

	quizID, err := env.store.Questions().CreateQuiz(ctx, "General Knowledge")
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		qID, err := env.store.Questions().CreateQuestion(ctx, quizID, "question text")
		require.NoError(t, err)
		questionIDs = append(questionIDs, qID)

		correct, err := env.store.Questions().CreateAnswer(ctx, qID, "right", true)
		require.NoError(t, err)
		correctIDs = append(correctIDs, correct)

		_, err = env.store.Questions().CreateAnswer(ctx, qID, "wrong", false)
		require.NoError(t, err)
	}
	return quizID, questionIDs, correctIDs
}

func TestQuizListing(t *testing.T) {
	env := newTestEnv(t)
	access, _ := env.register(t, "alice", "alice@example.com")
	seedQuiz(t, env)

	rec := env.do(t, http.MethodGet, "/quiz", access, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	questions := decodeBody[[]map[string]any](t, rec)
	require.Len(t, questions, 2)
	require.NotEmpty(t, questions[0]["question"])
	answers := questions[0]["answers"].([]any)
	require.Len(t, answers, 2)
}

func TestSubmitQuiz(t *testing.T) {
	env := newTestEnv(t)
	access, _ := env.register(t, "alice", "alice@example.com")
	quizID, questionIDs, correctIDs := seedQuiz(t, env)

	rec := env.do(t, http.MethodPost, "/user/submit_quiz", access, map[string]any{
		"quizId": quizID,
		"answers": []map[string]int64{
			{"question_id": questionIDs[0], "answer_id": correctIDs[0]},
			{"question_id": questionIDs[1], "answer_id": correctIDs[1] + 1000}, // wrong
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody[map[string]int64](t, rec)
	require.EqualValues(t, 10, body["totalScore"])

	recent := env.do(t, http.MethodGet, "/user/recent_quiz_score", access, nil)
	require.Equal(t, http.StatusOK, recent.Code)
	scores := decodeBody[[]map[string]any](t, recent)
	require.Len(t, scores, 2)

	history := env.do(t, http.MethodGet, "/user/quiz_scores", access, nil)
	require.Equal(t, http.StatusOK, history.Code)
	rows := decodeBody[[]map[string]any](t, history)
	require.Len(t, rows, 2)
	require.Equal(t, "question text", rows[0]["question"])
}

func TestSubmitQuizErrors(t *testing.T) {
	env := newTestEnv(t)
	access, _ := env.register(t, "alice", "alice@example.com")
	quizID, _, _ := seedQuiz(t, env)

	// unknown quiz
	rec := env.do(t, http.MethodPost, "/user/submit_quiz", access, map[string]any{
		"quizId":  int64(9999),
		"answers": []map[string]int64{{"question_id": 1, "answer_id": 1}},
	})
	require.Equal(t, http.StatusNotFound, rec.Code)

	// foreign question
	rec = env.do(t, http.MethodPost, "/user/submit_quiz", access, map[string]any{
		"quizId":  quizID,
		"answers": []map[string]int64{{"question_id": 999999, "answer_id": 1}},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// empty payload
	rec = env.do(t, http.MethodPost, "/user/submit_quiz", access, map[string]any{})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestScoreHistoryEmpty(t *testing.T) {
	env := newTestEnv(t)
	access, _ := env.register(t, "alice", "alice@example.com")

	rec := env.do(t, http.MethodGet, "/user/recent_quiz_score", access, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodGet, "/user/quiz_scores", access, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
