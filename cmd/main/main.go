package main

import (
	"MarketStat-Backend/internal/app/config"
	"MarketStat-Backend/internal/app/repository"
	"MarketStat-Backend/internal/pkg"

	_ "MarketStat-Backend/docs" // Важно: добавляем импорт docs

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// @title MarketStat Salary Analytics API
// @version 1.0
// @description API for salary market analytics: filter resolution, summary statistics, distribution histograms, time series and role groups over a salary fact warehouse

// @contact.name API Support
// @contact.url http://localhost:8080
// @contact.email support@marketstat-service.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token. Example: "Bearer {token}"

// @tag.name Users
// @tag.description User management and authentication
// @tag.name Analytics
// @tag.description Salary statistics, distribution, time series and role groups
// @tag.name Facts
// @tag.description Salary fact records management
// @tag.name Dimensions
// @tag.description Dimension tables management
// @tag.name Reports
// @tag.description CSV report export
func main() {
	router := gin.Default()

	// Загружаем конфигурацию
	conf, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %v", err)
	}

	// Инициализируем репозиторий
	repo, err := repository.NewRepository(conf)
	if err != nil {
		logrus.Fatalf("error initializing repository: %v", err)
	}

	// Создаем приложение с конфигурацией
	application := pkg.NewApp(conf, router, repo)

	// Запускаем приложение
	application.RunApp()
}
