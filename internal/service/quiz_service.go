package service

import (
	"strings"
	"time"

	"lingua_edu_backend/internal/analytics"
	"lingua_edu_backend/internal/model"
	"lingua_edu_backend/internal/repository"
	"lingua_edu_backend/internal/util"
	"lingua_edu_backend/pkg/monitoring"
)

// QuizAnswer 单题作答
// swagger:model QuizAnswer
type QuizAnswer struct {
	QuestionID uint   `json:"questionId" binding:"required"`
	Answer     string `json:"answer"`
}

// QuizSubmitInput 整卷提交
// swagger:model QuizSubmitInput
type QuizSubmitInput struct {
	Title   string       `json:"title"`
	Answers []QuizAnswer `json:"answers" binding:"required"`
}

// QuizResult 测验判分结果
// swagger:model QuizResult
type QuizResult struct {
	Title        string  `json:"title"`
	Score        float64 `json:"score"`
	CorrectCount int     `json:"correctCount"`
	TotalCount   int     `json:"totalCount"`
}

// QuizService 题库抽题与整卷判分
type QuizService struct {
	QuizRepo *repository.QuizRepository
}

func NewQuizService(quizRepo *repository.QuizRepository) *QuizService {
	return &QuizService{QuizRepo: quizRepo}
}

// GetQuestions 随机抽取一组题目（答案字段不会出现在响应里）
func (s *QuizService) GetQuestions(limit int, category string) ([]model.QuizQuestion, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	return s.QuizRepo.FindQuestions(limit, category)
}

// SubmitQuiz 判分并保存测验记录。
// 答案比对忽略大小写和首尾空白，得分 = 正确数/总题数*100，保留一位小数。
func (s *QuizService) SubmitQuiz(userID uint, input QuizSubmitInput) (*QuizResult, error) {
	total := len(input.Answers)
	if total == 0 {
		return nil, util.ErrEmptySubmission
	}

	correct := 0
	for _, ans := range input.Answers {
		question, err := s.QuizRepo.FindQuestionByID(ans.QuestionID)
		if err != nil {
			return nil, util.ErrQuestionNotFound
		}
		if strings.EqualFold(strings.TrimSpace(ans.Answer), strings.TrimSpace(question.CorrectAnswer)) {
			correct++
		}
	}

	score := analytics.Round1(float64(correct) / float64(total) * 100)

	title := input.Title
	if title == "" {
		title = "Practice Quiz"
	}

	quiz := &model.Quiz{
		UserID:  userID,
		Title:   title,
		Score:   score,
		TakenAt: time.Now().UTC(),
	}
	if err := s.QuizRepo.Create(quiz); err != nil {
		return nil, err
	}

	monitoring.QuizCounter.Inc()
	return &QuizResult{
		Title:        title,
		Score:        score,
		CorrectCount: correct,
		TotalCount:   total,
	}, nil
}

// GetHistory 返回用户的测验历史（按完成时间升序）
func (s *QuizService) GetHistory(userID uint) ([]model.Quiz, error) {
	return s.QuizRepo.FindByUser(userID)
}
