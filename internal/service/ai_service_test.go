package service

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"lingua_edu_backend/internal/config"

	"github.com/stretchr/testify/require"
)

func newAITestServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req ChatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotEmpty(t, req.Messages)

		resp := ChatCompletionResponse{}
		resp.Choices = []struct {
			Message AIChatMessage `json:"message"`
		}{
			{Message: AIChatMessage{Role: "assistant", Content: content}},
		}
		json.NewEncoder(w).Encode(resp)
	}))
}

func newTestAIService(baseURL string) *AIService {
	return NewAIService(config.AIConfig{
		BaseURL: baseURL,
		APIKey:  "test-key",
		Model:   "test-model",
	})
}

func TestEvaluateWritingParsesResult(t *testing.T) {
	srv := newAITestServer(t, `{"score": 85, "grammar_errors": ["missing article"], "vocabulary_suggestions": ["use 'rapid'"], "general_feedback": "Good work."}`)
	defer srv.Close()

	eval, err := newTestAIService(srv.URL).EvaluateWriting("My essay text.")
	require.NoError(t, err)
	require.Equal(t, 85.0, eval.Score)
	require.Equal(t, []string{"missing article"}, eval.GrammarErrors)
	require.Equal(t, []string{"use 'rapid'"}, eval.VocabSuggestion)
	require.Equal(t, "Good work.", eval.GeneralFeedback)
}

func TestEvaluateWritingStripsMarkdownFence(t *testing.T) {
	srv := newAITestServer(t, "```json\n{\"score\": 72, \"grammar_errors\": [], \"vocabulary_suggestions\": [], \"general_feedback\": \"ok\"}\n```")
	defer srv.Close()

	eval, err := newTestAIService(srv.URL).EvaluateWriting("text")
	require.NoError(t, err)
	require.Equal(t, 72.0, eval.Score)
}

func TestEvaluateWritingClampsScore(t *testing.T) {
	srv := newAITestServer(t, `{"score": 140, "grammar_errors": [], "vocabulary_suggestions": [], "general_feedback": ""}`)
	defer srv.Close()

	eval, err := newTestAIService(srv.URL).EvaluateWriting("text")
	require.NoError(t, err)
	require.Equal(t, 100.0, eval.Score)
}

func TestEvaluateWritingInvalidJSON(t *testing.T) {
	srv := newAITestServer(t, "I cannot grade this essay.")
	defer srv.Close()

	_, err := newTestAIService(srv.URL).EvaluateWriting("text")
	require.Error(t, err)
}
