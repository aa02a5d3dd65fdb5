package controller

import (
	"errors"
	"time"

	"lingua_edu_backend/internal/model"
	"lingua_edu_backend/internal/service"
	"lingua_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ActivityController struct {
	ActivityService *service.ActivityService
}

func NewActivityController(activityService *service.ActivityService) *ActivityController {
	return &ActivityController{ActivityService: activityService}
}

// GetActivities godoc
// @Summary 获取学习任务列表
// @Description 学生视角返回每个任务的完成状态
// @Tags 任务
// @Produce  json
// @Security BearerAuth
// @Param   upcoming query bool false "只看未截止的任务"
// @Success 200 {object} util.Response
// @Router /api/activities [get]
func (c *ActivityController) GetActivities(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if ctx.Query("upcoming") == "true" {
		activities, err := c.ActivityService.GetUpcomingActivities(time.Now())
		if err != nil {
			util.LogInternalError(ctx, err)
			return
		}
		util.Success(ctx, activities)
		return
	}

	if claims.Role == model.Student {
		activities, err := c.ActivityService.GetActivitiesForStudent(claims.UserID)
		if err != nil {
			util.LogInternalError(ctx, err)
			return
		}
		util.Success(ctx, activities)
		return
	}

	activities, err := c.ActivityService.GetActivities()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, activities)
}

// GetActivity godoc
// @Summary 获取单个学习任务
// @Tags 任务
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "任务ID"
// @Success 200 {object} util.Response{data=model.LearningActivity}
// @Failure 404 {object} util.Response "任务不存在"
// @Router /api/activities/{id} [get]
func (c *ActivityController) GetActivity(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	activity, err := c.ActivityService.GetActivity(id)
	if err != nil {
		if errors.Is(err, util.ErrActivityNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, activity)
}

// CreateActivity godoc
// @Summary 发布学习任务
// @Tags 任务
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body service.ActivityInput true "任务内容"
// @Success 201 {object} util.Response{data=model.LearningActivity}
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/instructor/activities [post]
func (c *ActivityController) CreateActivity(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.ActivityInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	activity, err := c.ActivityService.CreateActivity(claims.UserID, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, activity)
}
