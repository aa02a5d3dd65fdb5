package controller

import (
	"errors"

	"lingua_edu_backend/internal/service"
	"lingua_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type GoalController struct {
	GoalService *service.LearningGoalService
}

func NewGoalController(goalService *service.LearningGoalService) *GoalController {
	return &GoalController{GoalService: goalService}
}

// GetGoals godoc
// @Summary 获取学习目标列表
// @Tags 目标
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.LearningGoal}
// @Router /api/goals [get]
func (c *GoalController) GetGoals(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	goals, err := c.GoalService.GetGoals(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, goals)
}

// CreateGoal godoc
// @Summary 创建学习目标
// @Tags 目标
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body service.GoalInput true "目标内容"
// @Success 201 {object} util.Response{data=model.LearningGoal}
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/goals [post]
func (c *GoalController) CreateGoal(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.GoalInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	goal, err := c.GoalService.CreateGoal(claims.UserID, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, goal)
}

// UpdateGoal godoc
// @Summary 更新学习目标
// @Tags 目标
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "目标ID"
// @Param   body body service.GoalInput true "目标内容"
// @Success 200 {object} util.Response{data=model.LearningGoal}
// @Failure 404 {object} util.Response "目标不存在"
// @Router /api/goals/{id} [put]
func (c *GoalController) UpdateGoal(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.GoalInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	id := util.MustParseUint(ctx.Param("id"))
	goal, err := c.GoalService.UpdateGoal(claims.UserID, id, req)
	if err != nil {
		if errors.Is(err, util.ErrGoalNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, goal)
}

// DeleteGoal godoc
// @Summary 删除学习目标
// @Tags 目标
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "目标ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "目标不存在"
// @Router /api/goals/{id} [delete]
func (c *GoalController) DeleteGoal(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id := util.MustParseUint(ctx.Param("id"))
	if err := c.GoalService.DeleteGoal(claims.UserID, id); err != nil {
		if errors.Is(err, util.ErrGoalNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, nil)
}
