package app

import (
	"schoolscope_backend/docs"
	"schoolscope_backend/internal/config"
	"schoolscope_backend/internal/middleware"
	"schoolscope_backend/internal/model"
	"schoolscope_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)
	a.registerAuthorizedRoutes(router, c, repos, cfg)
	a.registerAdminRoutes(router, c, cfg)
}

// Public routes: the statistics site is browsable without an account, and
// published surveys accept anonymous responses.
func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)

		public.GET("/districts", c.district.List)
		public.GET("/districts/:id", c.district.Get)
		public.GET("/districts/:id/schools", c.district.Schools)
		public.GET("/districts/:id/contacts", c.district.Contacts)
		public.GET("/districts/:id/assessments", c.assessment.DistrictResults)
		public.GET("/districts/:id/assessments/grades", c.assessment.DistrictGrades)
		public.GET("/districts/:id/assessments/subgroups", c.assessment.DistrictSubgroups)
		public.GET("/districts/:id/assessments/rank", c.assessment.DistrictRank)

		public.GET("/schools", c.school.List)
		public.GET("/schools/:id", c.school.Get)
		public.GET("/schools/:id/contacts", c.school.Contacts)
		public.GET("/schools/:id/assessments", c.assessment.SchoolResults)

		public.GET("/assessments/state", c.assessment.StateResults)
		public.GET("/assessments/years", c.assessment.Years)

		public.POST("/surveys/:id/responses", c.survey.SubmitResponse)
	}
}

// Editor routes: survey authoring and directory maintenance.
func (a *App) registerAuthorizedRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		authGroup.GET("/auth/me", c.auth.Me)
		authGroup.PUT("/auth/password", c.auth.ChangePassword)

		editor := authGroup.Group("")
		editor.Use(middleware.RoleMiddleware(model.Editor))
		{
			editor.POST("/districts", c.district.Create)
			editor.PUT("/districts/:id", c.district.Update)
			editor.DELETE("/districts/:id", c.district.Delete)

			editor.POST("/schools", c.school.Create)
			editor.PUT("/schools/:id", c.school.Update)
			editor.DELETE("/schools/:id", c.school.Delete)

			editor.POST("/surveys", c.survey.Create)
			editor.GET("/surveys", c.survey.List)
			editor.GET("/surveys/:id", c.survey.Get)
			editor.PUT("/surveys/:id", c.survey.Update)
			editor.DELETE("/surveys/:id", c.survey.Delete)
			editor.POST("/surveys/:id/publish", c.survey.Publish)
			editor.POST("/surveys/:id/schedule", c.survey.Schedule)

			editor.GET("/surveys/:id/questions", c.survey.Questions)
			editor.POST("/surveys/:id/questions", c.survey.AddQuestion)
			editor.PUT("/surveys/:id/questions/reorder", c.survey.ReorderQuestions)
			editor.POST("/surveys/:id/questions/import/csv", c.survey.ImportCSVQuestions)
			editor.POST("/surveys/:id/questions/import/json", c.survey.ImportJSONQuestions)
			editor.PUT("/questions/:id", c.survey.UpdateQuestion)
			editor.DELETE("/questions/:id", c.survey.DeleteQuestion)

			editor.GET("/surveys/:id/responses", c.survey.Responses)
			editor.GET("/responses/:id", c.survey.GetResponse)
		}
	}
}

// Admin routes: account management and bulk measurement loads.
func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Admin))
	{
		admin.GET("/users", c.user.List)
		admin.PUT("/users/:id/role", c.user.SetRole)
		admin.PUT("/users/:id/disabled", c.user.SetDisabled)

		admin.PUT("/districts/:id/measurements", c.assessment.ImportDistrictMeasurements)
		admin.PUT("/state/measurements", c.assessment.ImportStateMeasurements)
	}
}
