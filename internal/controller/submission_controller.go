package controller

import (
	"errors"

	"lingua_edu_backend/internal/service"
	"lingua_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SubmissionController struct {
	SubmissionService *service.SubmissionService
	DashboardService  *service.DashboardService
}

func NewSubmissionController(
	submissionService *service.SubmissionService,
	dashboardService *service.DashboardService,
) *SubmissionController {
	return &SubmissionController{
		SubmissionService: submissionService,
		DashboardService:  dashboardService,
	}
}

// WritingRequest 写作提交请求体
// swagger:model WritingRequest
type WritingRequest struct {
	Text       string `json:"text" binding:"required"`
	ActivityID string `json:"activityId"`
}

// SubmitWriting godoc
// @Summary 提交写作
// @Description 保存作文并同步进行 AI 评分，评分失败不阻断提交
// @Tags 提交
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body WritingRequest true "作文内容"
// @Success 201 {object} util.Response{data=model.Submission}
// @Failure 400 {object} util.Response "内容为空"
// @Router /api/submissions/writing [post]
func (c *SubmissionController) SubmitWriting(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req WritingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	sub, err := c.SubmissionService.SubmitWriting(claims.UserID, req.Text, service.ParseActivityID(req.ActivityID))
	if err != nil {
		if errors.Is(err, util.ErrEmptySubmission) {
			util.BadRequest(ctx, "作文内容不能为空")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	c.DashboardService.InvalidateCache(ctx.Request.Context(), claims.UserID)
	util.Created(ctx, sub)
}

// SubmitSpeaking godoc
// @Summary 提交口语录音
// @Description 上传音频文件，服务端探测时长；发音分和流利度分由教师评定
// @Tags 提交
// @Accept  multipart/form-data
// @Produce  json
// @Security BearerAuth
// @Param   audio formData file true "录音文件"
// @Param   activityId formData string false "关联任务ID"
// @Success 201 {object} util.Response{data=model.Submission}
// @Failure 400 {object} util.Response "文件类型不支持"
// @Router /api/submissions/speaking [post]
func (c *SubmissionController) SubmitSpeaking(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	file, err := ctx.FormFile("audio")
	if err != nil {
		util.BadRequest(ctx, "缺少录音文件")
		return
	}

	activityID := service.ParseActivityID(ctx.PostForm("activityId"))
	sub, err := c.SubmissionService.SubmitSpeaking(ctx.Request.Context(), claims.UserID, file, activityID)
	if err != nil {
		if errors.Is(err, util.ErrUnsupportedFileType) {
			util.BadRequest(ctx, "仅支持音频文件")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	c.DashboardService.InvalidateCache(ctx.Request.Context(), claims.UserID)
	util.Created(ctx, sub)
}

// SubmitHandwritten godoc
// @Summary 提交手写作业
// @Description 上传手写作业图片，评分由教师完成
// @Tags 提交
// @Accept  multipart/form-data
// @Produce  json
// @Security BearerAuth
// @Param   image formData file true "作业图片"
// @Param   activityId formData string false "关联任务ID"
// @Success 201 {object} util.Response{data=model.Submission}
// @Failure 400 {object} util.Response "文件类型不支持"
// @Router /api/submissions/handwritten [post]
func (c *SubmissionController) SubmitHandwritten(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	file, err := ctx.FormFile("image")
	if err != nil {
		util.BadRequest(ctx, "缺少作业图片")
		return
	}

	activityID := service.ParseActivityID(ctx.PostForm("activityId"))
	sub, err := c.SubmissionService.SubmitHandwritten(ctx.Request.Context(), claims.UserID, file, activityID)
	if err != nil {
		if errors.Is(err, util.ErrUnsupportedFileType) {
			util.BadRequest(ctx, "仅支持图片文件")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	c.DashboardService.InvalidateCache(ctx.Request.Context(), claims.UserID)
	util.Created(ctx, sub)
}

// GetSubmissions godoc
// @Summary 查询提交历史
// @Tags 提交
// @Produce  json
// @Security BearerAuth
// @Param   type query string false "提交类型" Enums(SPEAKING, WRITING, HANDWRITTEN)
// @Success 200 {object} util.Response{data=[]model.Submission}
// @Router /api/submissions [get]
func (c *SubmissionController) GetSubmissions(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	subs, err := c.SubmissionService.GetSubmissions(claims.UserID, ctx.Query("type"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, subs)
}

// GetSubmission godoc
// @Summary 查询单条提交
// @Tags 提交
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "提交ID"
// @Success 200 {object} util.Response{data=model.Submission}
// @Failure 403 {object} util.Response "无权查看"
// @Failure 404 {object} util.Response "提交不存在"
// @Router /api/submissions/{id} [get]
func (c *SubmissionController) GetSubmission(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id := util.MustParseUint(ctx.Param("id"))
	sub, err := c.SubmissionService.GetSubmission(id, claims)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx)
		case errors.Is(err, util.ErrSubmissionNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, sub)
}

// DeleteSubmission godoc
// @Summary 删除提交
// @Tags 提交
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "提交ID"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response "无权删除"
// @Failure 404 {object} util.Response "提交不存在"
// @Router /api/submissions/{id} [delete]
func (c *SubmissionController) DeleteSubmission(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id := util.MustParseUint(ctx.Param("id"))
	if err := c.SubmissionService.DeleteSubmission(ctx.Request.Context(), id, claims); err != nil {
		switch {
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx)
		case errors.Is(err, util.ErrSubmissionNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	c.DashboardService.InvalidateCache(ctx.Request.Context(), claims.UserID)
	util.Success(ctx, nil)
}
