package repository

import (
	"lingua_edu_backend/internal/model"

	"gorm.io/gorm"
)

type SubmissionRepository struct {
	DB *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{DB: db}
}

func (r *SubmissionRepository) Create(sub *model.Submission) error {
	return r.DB.Create(sub).Error
}

// FindByStudent 返回某学生的全部提交（按时间升序，含评分）
func (r *SubmissionRepository) FindByStudent(studentID uint) ([]model.Submission, error) {
	var subs []model.Submission
	err := r.DB.Preload("Grade").
		Where("student_id = ?", studentID).
		Order("created_at ASC").
		Find(&subs).Error
	return subs, err
}

// FindByStudentAndType 按提交类型过滤，降序供历史页展示
func (r *SubmissionRepository) FindByStudentAndType(studentID uint, subType model.SubmissionType) ([]model.Submission, error) {
	var subs []model.Submission
	err := r.DB.Preload("Grade").
		Where("student_id = ? AND type = ?", studentID, subType).
		Order("created_at DESC").
		Find(&subs).Error
	return subs, err
}

func (r *SubmissionRepository) FindByStudentDesc(studentID uint) ([]model.Submission, error) {
	var subs []model.Submission
	err := r.DB.Preload("Grade").
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&subs).Error
	return subs, err
}

// FindAll 返回全班所有提交，供教师端汇总
func (r *SubmissionRepository) FindAll() ([]model.Submission, error) {
	var subs []model.Submission
	err := r.DB.Preload("Grade").
		Order("created_at DESC").
		Find(&subs).Error
	return subs, err
}

func (r *SubmissionRepository) FindByID(id uint) (*model.Submission, error) {
	var sub model.Submission
	err := r.DB.Preload("Grade").First(&sub, id).Error
	return &sub, err
}

func (r *SubmissionRepository) Delete(sub *model.Submission) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if sub.Grade != nil {
			if err := tx.Delete(sub.Grade).Error; err != nil {
				return err
			}
		}
		return tx.Delete(sub).Error
	})
}

func (r *SubmissionRepository) AttachGrade(grade *model.Grade) error {
	return r.DB.Create(grade).Error
}

func (r *SubmissionRepository) UpdateGrade(grade *model.Grade) error {
	return r.DB.Save(grade).Error
}
