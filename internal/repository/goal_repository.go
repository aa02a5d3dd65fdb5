package repository

import (
	"lingua_edu_backend/internal/model"

	"gorm.io/gorm"
)

type GoalRepository struct {
	DB *gorm.DB
}

func NewGoalRepository(db *gorm.DB) *GoalRepository {
	return &GoalRepository{DB: db}
}

func (r *GoalRepository) Create(goal *model.LearningGoal) error {
	return r.DB.Create(goal).Error
}

func (r *GoalRepository) FindByUserID(userID uint) ([]model.LearningGoal, error) {
	var goals []model.LearningGoal
	err := r.DB.Where("user_id = ?", userID).Find(&goals).Error
	return goals, err
}

func (r *GoalRepository) FindByIDAndUserID(goalID, userID uint) (*model.LearningGoal, error) {
	var goal model.LearningGoal
	err := r.DB.Where("id = ? AND user_id = ?", goalID, userID).First(&goal).Error
	return &goal, err
}

func (r *GoalRepository) Update(goal *model.LearningGoal) error {
	return r.DB.Save(goal).Error
}

func (r *GoalRepository) Delete(goal *model.LearningGoal) error {
	return r.DB.Delete(goal).Error
}
