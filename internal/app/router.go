package app

import (
	"lingua_edu_backend/docs"
	"lingua_edu_backend/internal/config"
	"lingua_edu_backend/internal/middleware"
	"lingua_edu_backend/internal/model"
	"lingua_edu_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 公共路由（无需登录）
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}

	// 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		// 个人资料
		authGroup.GET("/profile", c.user.GetProfile)
		authGroup.PUT("/profile", c.user.UpdateProfile)
		authGroup.PUT("/profile/ai-preferences", c.user.UpdateAIPreferences)
		authGroup.POST("/profile/avatar", c.user.UploadAvatar)

		// 学生仪表盘
		authGroup.GET("/dashboard", c.dashboard.GetDashboard)

		// 提交
		authGroup.GET("/submissions", c.submission.GetSubmissions)
		authGroup.GET("/submissions/:id", c.submission.GetSubmission)
		authGroup.DELETE("/submissions/:id", c.submission.DeleteSubmission)
		authGroup.POST("/submissions/writing", c.submission.SubmitWriting)
		authGroup.POST("/submissions/speaking", c.submission.SubmitSpeaking)
		authGroup.POST("/submissions/handwritten", c.submission.SubmitHandwritten)

		// 测验
		authGroup.GET("/quizzes/questions", c.quiz.GetQuestions)
		authGroup.GET("/quizzes/history", c.quiz.GetHistory)
		authGroup.POST("/quizzes", c.quiz.SubmitQuiz)

		// 学习任务与目标
		authGroup.GET("/activities", c.activity.GetActivities)
		authGroup.GET("/activities/:id", c.activity.GetActivity)
		authGroup.GET("/goals", c.goal.GetGoals)
		authGroup.POST("/goals", c.goal.CreateGoal)
		authGroup.PUT("/goals/:id", c.goal.UpdateGoal)
		authGroup.DELETE("/goals/:id", c.goal.DeleteGoal)

		// 教师端
		instructorGroup := authGroup.Group("/instructor")
		instructorGroup.Use(middleware.RoleMiddleware(model.Instructor))
		{
			instructorGroup.GET("/overview", c.instructor.GetOverview)
			instructorGroup.GET("/pending", c.instructor.GetPendingSubmissions)
			instructorGroup.GET("/students/:id/submissions", c.instructor.GetStudentSubmissions)
			instructorGroup.POST("/submissions/:id/grade", c.instructor.GradeSubmission)
			instructorGroup.POST("/activities", c.activity.CreateActivity)
		}
	}
}
