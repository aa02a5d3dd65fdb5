package controller

import (
	"errors"
	"time"

	"lingua_edu_backend/internal/service"
	"lingua_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type InstructorController struct {
	InstructorService *service.InstructorService
	SubmissionService *service.SubmissionService
	DashboardService  *service.DashboardService
}

func NewInstructorController(
	instructorService *service.InstructorService,
	submissionService *service.SubmissionService,
	dashboardService *service.DashboardService,
) *InstructorController {
	return &InstructorController{
		InstructorService: instructorService,
		SubmissionService: submissionService,
		DashboardService:  dashboardService,
	}
}

// GetOverview godoc
// @Summary 获取班级概览
// @Description 班级平均分、活跃学生数、待评分量和最近 7 天的趋势
// @Tags 教师
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.ClassOverview}
// @Router /api/instructor/overview [get]
func (c *InstructorController) GetOverview(ctx *gin.Context) {
	overview, err := c.InstructorService.GetClassOverview(time.Now())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, overview)
}

// GetPendingSubmissions godoc
// @Summary 获取待评分队列
// @Tags 教师
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Submission}
// @Router /api/instructor/pending [get]
func (c *InstructorController) GetPendingSubmissions(ctx *gin.Context) {
	pending, err := c.InstructorService.GetPendingSubmissions()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, pending)
}

// GetStudentSubmissions godoc
// @Summary 查看某学生的全部提交
// @Tags 教师
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "学生ID"
// @Success 200 {object} util.Response{data=[]model.Submission}
// @Router /api/instructor/students/{id}/submissions [get]
func (c *InstructorController) GetStudentSubmissions(ctx *gin.Context) {
	studentID := util.MustParseUint(ctx.Param("id"))
	subs, err := c.InstructorService.GetStudentSubmissions(studentID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, subs)
}

// GradeSubmission godoc
// @Summary 评定一条提交
// @Description 口语提交填发音分和流利度分，其余类型填总分
// @Tags 教师
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "提交ID"
// @Param   body body service.GradeInput true "评分"
// @Success 200 {object} util.Response{data=model.Submission}
// @Failure 404 {object} util.Response "提交不存在"
// @Router /api/instructor/submissions/{id}/grade [post]
func (c *InstructorController) GradeSubmission(ctx *gin.Context) {
	var req service.GradeInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	id := util.MustParseUint(ctx.Param("id"))
	sub, err := c.SubmissionService.GradeSubmission(id, req)
	if err != nil {
		if errors.Is(err, util.ErrSubmissionNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	// 评分会改变学生的派生指标
	c.DashboardService.InvalidateCache(ctx.Request.Context(), sub.StudentID)
	util.Success(ctx, sub)
}
