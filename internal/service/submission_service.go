package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"lingua_edu_backend/internal/model"
	"lingua_edu_backend/internal/repository"
	"lingua_edu_backend/internal/util"
	"lingua_edu_backend/pkg/monitoring"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SubmissionService 处理口语、写作、手写三类提交
type SubmissionService struct {
	SubmissionRepo *repository.SubmissionRepository
	Storage        *StorageService
	AI             *AIService
	Logger         *zap.Logger
}

func NewSubmissionService(
	submissionRepo *repository.SubmissionRepository,
	storage *StorageService,
	ai *AIService,
	logger *zap.Logger,
) *SubmissionService {
	return &SubmissionService{
		SubmissionRepo: submissionRepo,
		Storage:        storage,
		AI:             ai,
		Logger:         logger,
	}
}

// GradeInput 教师评分输入。口语提交填发音分和流利度分，其余填总分。
// swagger:model GradeInput
type GradeInput struct {
	Score              *float64 `json:"score"`
	PronunciationScore *float64 `json:"pronunciationScore"`
	FluencyScore       *float64 `json:"fluencyScore"`
	GeneralFeedback    string   `json:"generalFeedback"`
}

// SubmitWriting 创建写作提交并同步调用 AI 评分。
// AI 失败只记日志，提交保持未评分。
func (s *SubmissionService) SubmitWriting(studentID uint, textContent string, activityID *uint) (*model.Submission, error) {
	if textContent == "" {
		return nil, util.ErrEmptySubmission
	}

	sub := &model.Submission{
		StudentID:   studentID,
		ActivityID:  activityID,
		Type:        model.SubmissionWriting,
		TextContent: textContent,
	}
	if err := s.SubmissionRepo.Create(sub); err != nil {
		return nil, err
	}

	graded := "false"
	if eval, err := s.AI.EvaluateWriting(textContent); err != nil {
		s.Logger.Warn("写作AI评估失败，提交保持未评分",
			zap.Uint("submissionID", sub.ID),
			zap.Error(err))
	} else {
		grade := &model.Grade{
			SubmissionID:     sub.ID,
			Score:            &eval.Score,
			GrammarErrors:    model.JSONList(eval.GrammarErrors),
			VocabSuggestions: model.JSONList(eval.VocabSuggestion),
			GeneralFeedback:  eval.GeneralFeedback,
		}
		if err := s.SubmissionRepo.AttachGrade(grade); err != nil {
			s.Logger.Error("保存写作评分失败", zap.Uint("submissionID", sub.ID), zap.Error(err))
		} else {
			sub.Grade = grade
			graded = "true"
		}
	}

	monitoring.SubmissionCounter.WithLabelValues(string(model.SubmissionWriting), graded).Inc()
	return sub, nil
}

// SubmitSpeaking 保存录音到对象存储并探测音频时长。
// 发音分和流利度分由教师在评分接口补充。
func (s *SubmissionService) SubmitSpeaking(ctx context.Context, studentID uint, file *multipart.FileHeader, activityID *uint) (*model.Submission, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	allowed := false
	for _, e := range util.AllowedAudioExtensions {
		if ext == e {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, util.ErrUnsupportedFileType
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	mimeType, err := util.ValidateMimeType(src, []string{util.MimeAudio, "video/webm"})
	if err != nil || !util.IsAudio(mimeType) {
		return nil, util.ErrUnsupportedFileType
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	// 先落盘临时文件供 ffmpeg 探测
	tmp, err := os.CreateTemp("", "speaking_*"+filepath.Ext(file.Filename))
	if err != nil {
		return nil, err
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		return nil, err
	}
	tmp.Close()

	var duration float64
	if info, err := util.GetAudioInfo(tmpPath); err != nil {
		s.Logger.Warn("探测音频时长失败", zap.String("file", file.Filename), zap.Error(err))
	} else {
		duration = info.Duration
	}

	// 浏览器录音的 webm 容器转成 wav 再入库，统一播放格式
	if mimeType == "video/webm" || ext == ".webm" {
		wavPath := tmpPath + ".wav"
		if err := util.ExtractWaveformAudio(tmpPath, wavPath); err != nil {
			s.Logger.Warn("webm 转码失败，保留原始文件", zap.String("file", file.Filename), zap.Error(err))
		} else {
			defer os.Remove(wavPath)
			tmpPath = wavPath
			ext = ".wav"
			mimeType = "audio/wav"
		}
	}

	objectName := fmt.Sprintf("recordings/%d_%s%s", studentID, uuid.New().String(), ext)
	url, err := s.Storage.UploadFile(ctx, objectName, tmpPath, mimeType)
	if err != nil {
		return nil, err
	}

	sub := &model.Submission{
		StudentID:     studentID,
		ActivityID:    activityID,
		Type:          model.SubmissionSpeaking,
		FilePath:      url,
		AudioDuration: duration,
	}
	if err := s.SubmissionRepo.Create(sub); err != nil {
		return nil, err
	}

	monitoring.SubmissionCounter.WithLabelValues(string(model.SubmissionSpeaking), "false").Inc()
	return sub, nil
}

// SubmitHandwritten 上传手写作业图片，评分由教师完成
func (s *SubmissionService) SubmitHandwritten(ctx context.Context, studentID uint, file *multipart.FileHeader, activityID *uint) (*model.Submission, error) {
	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	mimeType, err := util.ValidateMimeType(src, []string{util.MimeImage})
	if err != nil || !util.IsImage(mimeType) {
		return nil, util.ErrUnsupportedFileType
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	objectName := fmt.Sprintf("handwritten/%d_%s%s", studentID, uuid.New().String(), filepath.Ext(file.Filename))
	url, err := s.Storage.Upload(ctx, objectName, src, file.Size, mimeType)
	if err != nil {
		return nil, err
	}

	sub := &model.Submission{
		StudentID:  studentID,
		ActivityID: activityID,
		Type:       model.SubmissionHandwritten,
		FilePath:   url,
	}
	if err := s.SubmissionRepo.Create(sub); err != nil {
		return nil, err
	}

	monitoring.SubmissionCounter.WithLabelValues(string(model.SubmissionHandwritten), "false").Inc()
	return sub, nil
}

// GradeSubmission 教师手动评分，已存在的评分会被更新
func (s *SubmissionService) GradeSubmission(submissionID uint, input GradeInput) (*model.Submission, error) {
	sub, err := s.SubmissionRepo.FindByID(submissionID)
	if err != nil {
		return nil, util.ErrSubmissionNotFound
	}

	if sub.Grade != nil {
		if input.Score != nil {
			sub.Grade.Score = input.Score
		}
		if input.PronunciationScore != nil {
			sub.Grade.PronunciationScore = input.PronunciationScore
		}
		if input.FluencyScore != nil {
			sub.Grade.FluencyScore = input.FluencyScore
		}
		if input.GeneralFeedback != "" {
			sub.Grade.GeneralFeedback = input.GeneralFeedback
		}
		if err := s.SubmissionRepo.UpdateGrade(sub.Grade); err != nil {
			return nil, err
		}
		return sub, nil
	}

	grade := &model.Grade{
		SubmissionID:       sub.ID,
		Score:              input.Score,
		PronunciationScore: input.PronunciationScore,
		FluencyScore:       input.FluencyScore,
		GeneralFeedback:    input.GeneralFeedback,
	}
	if err := s.SubmissionRepo.AttachGrade(grade); err != nil {
		return nil, err
	}
	sub.Grade = grade
	return sub, nil
}

// GetSubmissions 按类型查询学生的提交历史，类型为空返回全部
func (s *SubmissionService) GetSubmissions(studentID uint, subType string) ([]model.Submission, error) {
	if subType == "" {
		return s.SubmissionRepo.FindByStudentDesc(studentID)
	}
	return s.SubmissionRepo.FindByStudentAndType(studentID, model.SubmissionType(subType))
}

// GetSubmission 查询单条提交，做归属校验（教师和管理员不受限）
func (s *SubmissionService) GetSubmission(id uint, requester *util.Claims) (*model.Submission, error) {
	sub, err := s.SubmissionRepo.FindByID(id)
	if err != nil {
		return nil, util.ErrSubmissionNotFound
	}
	if requester.Role == model.Student && sub.StudentID != requester.UserID {
		return nil, util.ErrPermissionDenied
	}
	return sub, nil
}

// DeleteSubmission 删除提交及其评分和存储中的文件
func (s *SubmissionService) DeleteSubmission(ctx context.Context, id uint, requester *util.Claims) error {
	sub, err := s.SubmissionRepo.FindByID(id)
	if err != nil {
		return util.ErrSubmissionNotFound
	}
	if requester.Role == model.Student && sub.StudentID != requester.UserID {
		return util.ErrPermissionDenied
	}

	if err := s.SubmissionRepo.Delete(sub); err != nil {
		return err
	}

	if sub.FilePath != "" {
		if err := s.Storage.Delete(ctx, sub.FilePath); err != nil {
			s.Logger.Warn("删除存储文件失败", zap.String("file", sub.FilePath), zap.Error(err))
		}
	}
	return nil
}

// ParseActivityID 解析可选的活动ID参数
func ParseActivityID(raw string) *uint {
	if raw == "" {
		return nil
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil
	}
	v := uint(id)
	return &v
}
