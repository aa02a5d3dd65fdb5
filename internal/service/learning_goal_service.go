package service

import (
	"lingua_edu_backend/internal/model"
	"lingua_edu_backend/internal/repository"
	"lingua_edu_backend/internal/util"
)

// LearningGoalService 学生自定义学习目标的增删改查
type LearningGoalService struct {
	GoalRepo *repository.GoalRepository
}

func NewLearningGoalService(goalRepo *repository.GoalRepository) *LearningGoalService {
	return &LearningGoalService{GoalRepo: goalRepo}
}

// GoalInput 创建/更新学习目标的输入
// swagger:model GoalInput
type GoalInput struct {
	GoalName     string `json:"goalName" binding:"required"`
	Category     string `json:"category"`
	TargetValue  int    `json:"targetValue" binding:"required"`
	CurrentValue int    `json:"currentValue"`
}

func (s *LearningGoalService) CreateGoal(userID uint, input GoalInput) (*model.LearningGoal, error) {
	goal := &model.LearningGoal{
		UserID:       userID,
		GoalName:     input.GoalName,
		Category:     input.Category,
		TargetValue:  input.TargetValue,
		CurrentValue: input.CurrentValue,
	}
	if goal.Category == "" {
		goal.Category = "General"
	}
	if err := s.GoalRepo.Create(goal); err != nil {
		return nil, err
	}
	return goal, nil
}

func (s *LearningGoalService) GetGoals(userID uint) ([]model.LearningGoal, error) {
	return s.GoalRepo.FindByUserID(userID)
}

func (s *LearningGoalService) UpdateGoal(userID, goalID uint, input GoalInput) (*model.LearningGoal, error) {
	goal, err := s.GoalRepo.FindByIDAndUserID(goalID, userID)
	if err != nil {
		return nil, util.ErrGoalNotFound
	}

	if input.GoalName != "" {
		goal.GoalName = input.GoalName
	}
	if input.Category != "" {
		goal.Category = input.Category
	}
	if input.TargetValue > 0 {
		goal.TargetValue = input.TargetValue
	}
	if input.CurrentValue >= 0 {
		goal.CurrentValue = input.CurrentValue
	}

	if err := s.GoalRepo.Update(goal); err != nil {
		return nil, err
	}
	return goal, nil
}

func (s *LearningGoalService) DeleteGoal(userID, goalID uint) error {
	goal, err := s.GoalRepo.FindByIDAndUserID(goalID, userID)
	if err != nil {
		return util.ErrGoalNotFound
	}
	return s.GoalRepo.Delete(goal)
}
