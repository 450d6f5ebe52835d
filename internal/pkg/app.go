// internal/pkg/app.go
//
// Сборка и запуск HTTP-приложения
package pkg

import (
	"fmt"

	"MarketStat-Backend/internal/app/config"
	"MarketStat-Backend/internal/app/handler"
	"MarketStat-Backend/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type App struct {
	cfg    *config.Config
	router *gin.Engine
	repo   *repository.Repository
}

func NewApp(cfg *config.Config, router *gin.Engine, repo *repository.Repository) *App {
	return &App{
		cfg:    cfg,
		router: router,
		repo:   repo,
	}
}

// RunApp регистрирует маршруты и запускает сервер
func (a *App) RunApp() {
	logrus.Info("Server starting up")

	handler.RegisterHandlers(a.router, a.cfg, a.repo)

	// Swagger UI
	a.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	addr := fmt.Sprintf("%s:%d", a.cfg.ServiceHost, a.cfg.ServicePort)
	if err := a.router.Run(addr); err != nil {
		logrus.Fatalf("Server failed to start: %v", err)
	}

	logrus.Info("Server shutting down")
}
