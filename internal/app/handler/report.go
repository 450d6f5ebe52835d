// internal/app/handler/report.go
//
// Выгрузка аналитического отчета по зарплатам в CSV (хранилище MinIO)
package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"MarketStat-Backend/internal/app/analytics"
	"MarketStat-Backend/internal/app/ds"
	"MarketStat-Backend/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Срок жизни presigned-ссылки на скачивание отчета
const reportURLExpiry = 24 * time.Hour

type ReportHandler struct {
	repo    *repository.Repository
	service *analytics.Service
}

func NewReportHandler(repo *repository.Repository, service *analytics.Service) *ReportHandler {
	return &ReportHandler{
		repo:    repo,
		service: service,
	}
}

type ReportResponse struct {
	ObjectKey   string `json:"object_key"`
	DownloadURL string `json:"download_url"`
	ExpiresIn   int64  `json:"expires_in"`
}

// ExportSalaryReport godoc
// @Summary Export salary report to CSV
// @Description Строит сводную статистику и группы должностей по фильтру и сохраняет CSV-отчет в объектное хранилище
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Param city_name query string false "City name"
// @Param oblast_name query string false "Oblast name"
// @Param district_name query string false "Federal district name"
// @Param industry_field_name query string false "Industry field name"
// @Param standard_job_role_title query string false "Standard job role title"
// @Param hierarchy_level_name query string false "Hierarchy level name"
// @Param date_start query string false "Start date (YYYY-MM-DD)"
// @Param date_end query string false "End date (YYYY-MM-DD)"
// @Param percentile query int false "Target percentile (default 90)"
// @Success 201 {object} ReportResponse
// @Failure 400 {object} map[string]string
// @Router /reports/salary [post]
func (h *ReportHandler) ExportSalaryReport(ctx *gin.Context) {
	filter, ok := parseSalaryFilter(ctx)
	if !ok {
		return
	}

	targetPercentile := ds.DefaultTargetPercentile
	if raw := ctx.Query("percentile"); raw != "" {
		p, err := strconv.Atoi(raw)
		if err != nil || p < 0 || p > 100 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "percentile must be between 0 and 100"})
			return
		}
		targetPercentile = p
	}

	stats, err := h.service.GetSummary(ctx.Request.Context(), filter, targetPercentile)
	if err != nil {
		logrus.Error("Failed to compute summary for report: ", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}

	groups, err := h.service.GetRankedGroups(ctx.Request.Context(), filter, ds.DefaultMinRecordCount)
	if err != nil {
		logrus.Error("Failed to compute role groups for report: ", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}

	content, err := renderSalaryReportCSV(stats, groups)
	if err != nil {
		logrus.Error("Failed to render report: ", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}

	objectKey, err := h.repo.Report.SaveReport(ctx.Request.Context(), content)
	if err != nil {
		logrus.Error("Failed to save report: ", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save report"})
		return
	}

	downloadURL, err := h.repo.Report.GetReportURL(ctx.Request.Context(), objectKey, reportURLExpiry)
	if err != nil {
		logrus.Error("Failed to generate report URL: ", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate report URL"})
		return
	}

	ctx.JSON(http.StatusCreated, ReportResponse{
		ObjectKey:   objectKey,
		DownloadURL: downloadURL,
		ExpiresIn:   int64(reportURLExpiry.Seconds()),
	})
}

// renderSalaryReportCSV формирует CSV: блок сводной статистики, затем блок групп должностей
func renderSalaryReportCSV(stats ds.SalaryStats, groups []ds.PublicRoleGroup) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	rows := [][]string{
		{"metric", "value"},
		{"count", strconv.Itoa(stats.Count)},
		{"min", stats.Min.String()},
		{"max", stats.Max.String()},
		{"mean", stats.Mean.String()},
		{"median", stats.Median.String()},
		{"p25", stats.P25.String()},
		{"p75", stats.P75.String()},
		{"p" + strconv.Itoa(stats.TargetPercentile), stats.PercentileValue.String()},
		{""},
		{"standard_job_role_title", "average_salary", "count"},
	}
	for _, group := range groups {
		rows = append(rows, []string{group.StandardJobRoleTitle, group.AverageSalary.String(), strconv.Itoa(group.Count)})
	}

	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
