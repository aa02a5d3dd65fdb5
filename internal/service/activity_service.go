package service

import (
	"time"

	"lingua_edu_backend/internal/model"
	"lingua_edu_backend/internal/repository"
	"lingua_edu_backend/internal/util"
)

// ActivityService 学习任务的发布与查询
type ActivityService struct {
	ActivityRepo   *repository.ActivityRepository
	SubmissionRepo *repository.SubmissionRepository
}

func NewActivityService(
	activityRepo *repository.ActivityRepository,
	submissionRepo *repository.SubmissionRepository,
) *ActivityService {
	return &ActivityService{
		ActivityRepo:   activityRepo,
		SubmissionRepo: submissionRepo,
	}
}

// ActivityInput 教师发布任务的输入
// swagger:model ActivityInput
type ActivityInput struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Type        string     `json:"type" binding:"required"`
	DueDate     *time.Time `json:"dueDate"`
}

func (s *ActivityService) CreateActivity(creatorID uint, input ActivityInput) (*model.LearningActivity, error) {
	activity := &model.LearningActivity{
		Title:       input.Title,
		Description: input.Description,
		Type:        model.SubmissionType(input.Type),
		DueDate:     input.DueDate,
		CreatedBy:   creatorID,
	}
	if err := s.ActivityRepo.Create(activity); err != nil {
		return nil, err
	}
	return activity, nil
}

func (s *ActivityService) GetActivities() ([]model.LearningActivity, error) {
	return s.ActivityRepo.FindAll()
}

// GetUpcomingActivities 返回截止日期未到的任务
func (s *ActivityService) GetUpcomingActivities(now time.Time) ([]model.LearningActivity, error) {
	return s.ActivityRepo.FindPending(now)
}

// ActivityStatus 某学生视角下的任务及完成状态
type ActivityStatus struct {
	model.LearningActivity
	Completed bool `json:"completed"`
}

// GetActivitiesForStudent 列出全部任务并标记该学生是否已提交
func (s *ActivityService) GetActivitiesForStudent(studentID uint) ([]ActivityStatus, error) {
	activities, err := s.ActivityRepo.FindAll()
	if err != nil {
		return nil, err
	}

	subs, err := s.SubmissionRepo.FindByStudent(studentID)
	if err != nil {
		return nil, err
	}
	submitted := make(map[uint]struct{}, len(subs))
	for _, sub := range subs {
		if sub.ActivityID != nil {
			submitted[*sub.ActivityID] = struct{}{}
		}
	}

	result := make([]ActivityStatus, 0, len(activities))
	for _, activity := range activities {
		_, done := submitted[activity.ID]
		result = append(result, ActivityStatus{LearningActivity: activity, Completed: done})
	}
	return result, nil
}

func (s *ActivityService) GetActivity(id uint) (*model.LearningActivity, error) {
	activity, err := s.ActivityRepo.FindByID(id)
	if err != nil {
		return nil, util.ErrActivityNotFound
	}
	return activity, nil
}
