package service

import (
	"time"

	"lingua_edu_backend/internal/analytics"
	"lingua_edu_backend/internal/model"
	"lingua_edu_backend/internal/repository"
)

// InstructorService 教师端的全班视图
type InstructorService struct {
	SubmissionRepo *repository.SubmissionRepository
	UserRepo       *repository.UserRepository
}

func NewInstructorService(
	submissionRepo *repository.SubmissionRepository,
	userRepo *repository.UserRepository,
) *InstructorService {
	return &InstructorService{
		SubmissionRepo: submissionRepo,
		UserRepo:       userRepo,
	}
}

// GetClassOverview 汇总全班提交为班级平均分、活跃人数、待评分量和 7 天 sparkline
func (s *InstructorService) GetClassOverview(now time.Time) (*model.ClassOverview, error) {
	subs, err := s.SubmissionRepo.FindAll()
	if err != nil {
		return nil, err
	}

	records := make([]analytics.Record, 0, len(subs))
	for _, sub := range subs {
		records = append(records, submissionToRecord(sub))
	}

	metrics := analytics.ClassSummary(records, analytics.DayOf(now))

	registered, err := s.UserRepo.CountByRole(model.Student)
	if err != nil {
		return nil, err
	}

	return &model.ClassOverview{
		ClassAverage:       metrics.ClassAverage,
		ActiveStudents:     metrics.ActiveStudents,
		RegisteredStudents: registered,
		PendingCount:       metrics.PendingCount,
		Sparkline: model.SparklineData{
			Submissions:    metrics.Sparkline.Submissions,
			Pending:        metrics.Sparkline.Pending,
			ClassAvg:       metrics.Sparkline.AverageScores,
			ActiveStudents: metrics.Sparkline.ActiveStudents,
		},
	}, nil
}

// GetPendingSubmissions 返回尚未评分的提交，供教师批改队列使用
func (s *InstructorService) GetPendingSubmissions() ([]model.Submission, error) {
	subs, err := s.SubmissionRepo.FindAll()
	if err != nil {
		return nil, err
	}

	pending := make([]model.Submission, 0)
	for _, sub := range subs {
		if !sub.Graded() {
			pending = append(pending, sub)
		}
	}
	return pending, nil
}

// GetStudentSubmissions 教师查看某个学生的全部提交
func (s *InstructorService) GetStudentSubmissions(studentID uint) ([]model.Submission, error) {
	return s.SubmissionRepo.FindByStudentDesc(studentID)
}
