package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"lingua_edu_backend/internal/config"
)

// AIService 调用外部大模型做写作评估。
// 评估失败只导致提交保持未评分，绝不阻断提交流程。
type AIService struct {
	config config.AIConfig
	client *http.Client
}

func NewAIService(cfg config.AIConfig) *AIService {
	return &AIService{
		config: cfg,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

type AIChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionRequest struct {
	Model    string          `json:"model"`
	Messages []AIChatMessage `json:"messages"`
}

type ChatCompletionResponse struct {
	Choices []struct {
		Message AIChatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// WritingEvaluation 写作评估结果，分数在 0-100 之间
type WritingEvaluation struct {
	Score           float64  `json:"score"`
	GrammarErrors   []string `json:"grammar_errors"`
	VocabSuggestion []string `json:"vocabulary_suggestions"`
	GeneralFeedback string   `json:"general_feedback"`
}

const writingPrompt = `You are an experienced English teacher. Analyze the following student writing submission:

"%s"

Please provide the output strictly in valid JSON format with the following keys:
- score: An integer between 0 and 100 representing the quality.
- grammar_errors: A list of strings, each describing a specific grammar mistake found.
- vocabulary_suggestions: A list of strings suggesting better vocabulary usage.
- general_feedback: A supportive short paragraph summarizing the student's performance.

Do not use markdown formatting (like ` + "```json" + `). Just return the raw JSON object.`

// EvaluateWriting 让模型评估一段学生写作（手写提交 OCR 后的文本同样走这里）
func (s *AIService) EvaluateWriting(textContent string) (*WritingEvaluation, error) {
	reqBody := ChatCompletionRequest{
		Model: s.config.Model,
		Messages: []AIChatMessage{
			{Role: "user", Content: fmt.Sprintf(writingPrompt, textContent)},
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest("POST", s.config.BaseURL+"/chat/completions", bytes.NewBuffer(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var completion ChatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return nil, err
	}
	if completion.Error != nil {
		return nil, fmt.Errorf("AI评估失败: %s", completion.Error.Message)
	}
	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("AI评估返回空结果")
	}

	// 清理模型可能带回的 markdown 代码块标记
	clean := strings.TrimSpace(completion.Choices[0].Message.Content)
	clean = strings.ReplaceAll(clean, "```json", "")
	clean = strings.ReplaceAll(clean, "```", "")

	var eval WritingEvaluation
	if err := json.Unmarshal([]byte(clean), &eval); err != nil {
		return nil, fmt.Errorf("解析AI评估结果失败: %v", err)
	}

	if eval.Score < 0 {
		eval.Score = 0
	}
	if eval.Score > 100 {
		eval.Score = 100
	}

	return &eval, nil
}
