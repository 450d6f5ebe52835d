// internal/app/repository/report.go
package repository

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
)

// ReportRepository хранит сгенерированные CSV-отчеты в MinIO
type ReportRepository struct {
	minioClient *minio.Client
}

func NewReportRepository(minioClient *minio.Client) *ReportRepository {
	return &ReportRepository{minioClient: minioClient}
}

// SaveReport загружает CSV-отчет и возвращает ключ объекта
func (r *ReportRepository) SaveReport(ctx context.Context, content []byte) (string, error) {
	objectKey := fmt.Sprintf("salary-report-%d.csv", time.Now().UnixNano())

	_, err := r.minioClient.PutObject(ctx, reportsBucket, objectKey,
		bytes.NewReader(content), int64(len(content)),
		minio.PutObjectOptions{ContentType: "text/csv"})
	if err != nil {
		return "", fmt.Errorf("failed to upload report: %v", err)
	}

	return objectKey, nil
}

// GetReportURL возвращает временную ссылку на скачивание отчета
func (r *ReportRepository) GetReportURL(ctx context.Context, objectKey string, expires time.Duration) (string, error) {
	reqParams := make(url.Values)
	reqParams.Set("response-content-disposition", fmt.Sprintf("attachment; filename=%q", objectKey))

	presigned, err := r.minioClient.PresignedGetObject(ctx, reportsBucket, objectKey, expires, reqParams)
	if err != nil {
		return "", fmt.Errorf("failed to presign report url: %v", err)
	}

	return presigned.String(), nil
}
