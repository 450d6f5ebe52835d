package handler

import (
	"MarketStat-Backend/internal/app/analytics"
	"MarketStat-Backend/internal/app/config"
	"MarketStat-Backend/internal/app/middleware"
	"MarketStat-Backend/internal/app/repository"

	"github.com/gin-gonic/gin"
)

// RegisterHandlers регистрирует все обработчики
func RegisterHandlers(router *gin.Engine, cfg *config.Config, repo *repository.Repository) {
	apiRouter := router.Group("/api")

	// Собираем аналитический сервис: резолвер фильтров поверх
	// репозиториев измерений, движок агрегации поверх сканера фактов
	resolver := analytics.NewFilterResolver(repo.Location, repo.IndustryField, repo.Job)
	engine := analytics.NewEngine(repo.FactSalary)
	analyticsService := analytics.NewService(resolver, engine)

	// Создаем хендлеры
	analyticsHandler := NewAnalyticsHandler(analyticsService)
	factHandler := NewFactSalaryHandler(repo, analyticsService)
	dimensionHandler := NewDimensionHandler(repo)
	reportHandler := NewReportHandler(repo, analyticsService)
	userHandler := NewUserHandler(cfg, repo)

	// Public routes - доступны без аутентификации
	public := apiRouter.Group("")
	{
		// Аутентификация
		public.POST("/users/login", userHandler.Login)
		public.POST("/users/register", userHandler.Register)
		public.POST("/users/refresh", userHandler.RefreshToken)

		// Публичная аналитика: только агрегаты с порогом минимального
		// числа записей
		public.GET("/analytics/public-roles", analyticsHandler.GetPublicRoles)
	}

	// Protected routes - требуют аутентификации
	protected := apiRouter.Group("")
	protected.Use(middleware.AuthMiddleware(cfg, repo))
	{
		// Пользовательские endpoints
		protected.GET("/users/profile", userHandler.GetProfile)
		protected.PUT("/users/profile", userHandler.UpdateProfile)
		protected.POST("/users/logout", userHandler.Logout)

		// Аналитика по фильтру
		protected.GET("/analytics/summary", analyticsHandler.GetSummary)
		protected.GET("/analytics/distribution", analyticsHandler.GetDistribution)
		protected.GET("/analytics/timeseries", analyticsHandler.GetTimeSeries)

		// Экспорт отчета
		protected.POST("/reports/salary", reportHandler.ExportSalaryReport)

		// Просмотр фактов и измерений
		protected.GET("/facts", factHandler.GetFacts)
		protected.GET("/facts/filter", factHandler.GetFactsByFilter)
		protected.GET("/facts/:id", factHandler.GetFact)

		protected.GET("/locations", dimensionHandler.GetLocations)
		protected.GET("/locations/:id", dimensionHandler.GetLocation)
		protected.GET("/jobs", dimensionHandler.GetJobs)
		protected.GET("/jobs/:id", dimensionHandler.GetJob)
		protected.GET("/industry-fields", dimensionHandler.GetIndustryFields)
		protected.GET("/employers", dimensionHandler.GetEmployers)
		protected.GET("/employees", dimensionHandler.GetEmployees)
		protected.GET("/dates", dimensionHandler.GetDates)
	}

	// Admin only routes - требуют роли администратора
	admin := apiRouter.Group("")
	admin.Use(middleware.AuthMiddleware(cfg, repo), middleware.AdminOnly())
	{
		// Управление фактами (CRUD)
		admin.POST("/facts", factHandler.CreateFact)
		admin.PUT("/facts/:id", factHandler.UpdateFact)
		admin.DELETE("/facts/:id", factHandler.DeleteFact)

		// Управление измерениями
		admin.POST("/locations", dimensionHandler.CreateLocation)
		admin.PUT("/locations/:id", dimensionHandler.UpdateLocation)
		admin.DELETE("/locations/:id", dimensionHandler.DeleteLocation)

		admin.POST("/jobs", dimensionHandler.CreateJob)
		admin.PUT("/jobs/:id", dimensionHandler.UpdateJob)
		admin.DELETE("/jobs/:id", dimensionHandler.DeleteJob)

		admin.POST("/industry-fields", dimensionHandler.CreateIndustryField)
		admin.PUT("/industry-fields/:id", dimensionHandler.UpdateIndustryField)
		admin.DELETE("/industry-fields/:id", dimensionHandler.DeleteIndustryField)

		admin.POST("/employers", dimensionHandler.CreateEmployer)
		admin.PUT("/employers/:id", dimensionHandler.UpdateEmployer)
		admin.DELETE("/employers/:id", dimensionHandler.DeleteEmployer)

		admin.POST("/employees", dimensionHandler.CreateEmployee)
		admin.PUT("/employees/:id", dimensionHandler.UpdateEmployee)
		admin.DELETE("/employees/:id", dimensionHandler.DeleteEmployee)

		admin.POST("/dates", dimensionHandler.CreateDate)
		admin.PUT("/dates/:id", dimensionHandler.UpdateDate)
		admin.DELETE("/dates/:id", dimensionHandler.DeleteDate)
	}
}
