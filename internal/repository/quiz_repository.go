package repository

import (
	"lingua_edu_backend/internal/model"

	"gorm.io/gorm"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

func (r *QuizRepository) Create(quiz *model.Quiz) error {
	return r.DB.Create(quiz).Error
}

func (r *QuizRepository) FindByUser(userID uint) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.DB.Where("user_id = ?", userID).
		Order("taken_at ASC").
		Find(&quizzes).Error
	return quizzes, err
}

// FindQuestions 从题库随机抽题，category 为空时不过滤
func (r *QuizRepository) FindQuestions(limit int, category string) ([]model.QuizQuestion, error) {
	var questions []model.QuizQuestion
	query := r.DB.Where("enabled = ?", true)
	if category != "" {
		query = query.Where("category = ?", category)
	}
	err := query.Order("RAND()").Limit(limit).Find(&questions).Error
	return questions, err
}

func (r *QuizRepository) FindQuestionByID(id uint) (*model.QuizQuestion, error) {
	var question model.QuizQuestion
	err := r.DB.First(&question, id).Error
	return &question, err
}
