package repository

import (
	"context"
	"fmt"

	"MarketStat-Backend/internal/app/config"
	"MarketStat-Backend/internal/app/dsn"
	"MarketStat-Backend/internal/app/redis"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const reportsBucket = "salary-reports"

type Repository struct {
	db          *gorm.DB
	redisClient *redis.Client
	minioClient *minio.Client

	Location      *LocationRepository
	IndustryField *IndustryFieldRepository
	Job           *JobRepository
	Employer      *EmployerRepository
	Employee      *EmployeeRepository
	Date          *DateRepository
	FactSalary    *FactSalaryRepository
	User          *UserRepository
	Report        *ReportRepository
}

func NewRepository(cfg *config.Config) (*Repository, error) {
	// Инициализируем базу данных
	db, err := gorm.Open(postgres.Open(dsn.FromEnv()), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// Инициализируем Redis клиент
	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		logrus.Warnf("Failed to initialize Redis client: %v", err)
		// Продолжаем без Redis, но логируем предупреждение
	}

	// Инициализируем MinIO клиент
	minioClient, err := initMinIOClient(cfg)
	if err != nil {
		return nil, err
	}

	repo := &Repository{
		db:            db,
		redisClient:   redisClient,
		minioClient:   minioClient,
		Location:      NewLocationRepository(db),
		IndustryField: NewIndustryFieldRepository(db),
		Job:           NewJobRepository(db),
		Employer:      NewEmployerRepository(db),
		Employee:      NewEmployeeRepository(db),
		Date:          NewDateRepository(db),
		FactSalary:    NewFactSalaryRepository(db),
		User:          NewUserRepository(db),
		Report:        NewReportRepository(minioClient),
	}

	return repo, nil
}

// GetRedisClient возвращает Redis клиент
func (r *Repository) GetRedisClient() *redis.Client {
	return r.redisClient
}

// Close закрывает все соединения
func (r *Repository) Close() {
	if r.redisClient != nil {
		if err := r.redisClient.Close(); err != nil {
			logrus.Errorf("Error closing Redis client: %v", err)
		}
	}
}

func initMinIOClient(cfg *config.Config) (*minio.Client, error) {
	minioClient, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %v", err)
	}

	ctx := context.Background()

	// Проверяем подключение
	_, err = minioClient.ListBuckets(ctx)
	if err != nil {
		return nil, fmt.Errorf("minio connection test failed: %v", err)
	}

	// Создаем bucket для отчетов если не существует
	exists, err := minioClient.BucketExists(ctx, reportsBucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %v", err)
	}

	if !exists {
		err = minioClient.MakeBucket(ctx, reportsBucket, minio.MakeBucketOptions{})
		if err != nil {
			return nil, fmt.Errorf("failed to create bucket: %v", err)
		}
	}

	logrus.Info("MinIO client initialized successfully")
	return minioClient, nil
}
