package repository

import (
	"time"

	"lingua_edu_backend/internal/model"

	"gorm.io/gorm"
)

type ActivityRepository struct {
	DB *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{DB: db}
}

func (r *ActivityRepository) Create(activity *model.LearningActivity) error {
	return r.DB.Create(activity).Error
}

func (r *ActivityRepository) FindByID(id uint) (*model.LearningActivity, error) {
	var activity model.LearningActivity
	err := r.DB.First(&activity, id).Error
	return &activity, err
}

func (r *ActivityRepository) FindAll() ([]model.LearningActivity, error) {
	var activities []model.LearningActivity
	err := r.DB.Order("due_date ASC").Find(&activities).Error
	return activities, err
}

// FindPending 返回截止日期未到的任务
func (r *ActivityRepository) FindPending(now time.Time) ([]model.LearningActivity, error) {
	var activities []model.LearningActivity
	err := r.DB.Where("due_date >= ?", now).
		Order("due_date ASC").
		Find(&activities).Error
	return activities, err
}
