package controller

import (
	"errors"
	"strconv"

	"lingua_edu_backend/internal/service"
	"lingua_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService      *service.QuizService
	DashboardService *service.DashboardService
}

func NewQuizController(quizService *service.QuizService, dashboardService *service.DashboardService) *QuizController {
	return &QuizController{
		QuizService:      quizService,
		DashboardService: dashboardService,
	}
}

// GetQuestions godoc
// @Summary 抽取测验题目
// @Description 从题库随机抽题，响应不包含答案
// @Tags 测验
// @Produce  json
// @Security BearerAuth
// @Param   limit query int false "题目数量，默认 10"
// @Param   category query string false "题目分类"
// @Success 200 {object} util.Response{data=[]model.QuizQuestion}
// @Router /api/quizzes/questions [get]
func (c *QuizController) GetQuestions(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	questions, err := c.QuizService.GetQuestions(limit, ctx.Query("category"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, questions)
}

// SubmitQuiz godoc
// @Summary 提交测验答卷
// @Description 即时判分并保存测验记录
// @Tags 测验
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body service.QuizSubmitInput true "答卷"
// @Success 201 {object} util.Response{data=service.QuizResult}
// @Failure 400 {object} util.Response "答卷为空"
// @Router /api/quizzes [post]
func (c *QuizController) SubmitQuiz(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.QuizSubmitInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.QuizService.SubmitQuiz(claims.UserID, req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrEmptySubmission):
			util.BadRequest(ctx, "答卷不能为空")
		case errors.Is(err, util.ErrQuestionNotFound):
			util.BadRequest(ctx, "答卷包含无效题目")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	c.DashboardService.InvalidateCache(ctx.Request.Context(), claims.UserID)
	util.Created(ctx, result)
}

// GetHistory godoc
// @Summary 查询测验历史
// @Tags 测验
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Quiz}
// @Router /api/quizzes/history [get]
func (c *QuizController) GetHistory(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	quizzes, err := c.QuizService.GetHistory(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, quizzes)
}
