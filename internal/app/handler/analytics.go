// internal/app/handler/analytics.go
package handler

import (
	"net/http"
	"strconv"
	"time"

	"MarketStat-Backend/internal/app/analytics"
	"MarketStat-Backend/internal/app/ds"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type AnalyticsHandler struct {
	service *analytics.Service
}

func NewAnalyticsHandler(service *analytics.Service) *AnalyticsHandler {
	return &AnalyticsHandler{
		service: service,
	}
}

// parseSalaryFilter читает фильтр по названиям из query-параметров.
// Граничная валидация: начало диапазона дат не позже конца
func parseSalaryFilter(ctx *gin.Context) (ds.SalaryFilter, bool) {
	filter := ds.SalaryFilter{
		StandardJobRoleTitle: ctx.Query("standard_job_role_title"),
		HierarchyLevelName:   ctx.Query("hierarchy_level_name"),
		IndustryFieldName:    ctx.Query("industry_field_name"),
		DistrictName:         ctx.Query("district_name"),
		OblastName:           ctx.Query("oblast_name"),
		CityName:             ctx.Query("city_name"),
	}

	if startStr := ctx.Query("date_start"); startStr != "" {
		start, err := time.Parse("2006-01-02", startStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date_start, expected YYYY-MM-DD"})
			return filter, false
		}
		filter.DateStart = &start
	}

	if endStr := ctx.Query("date_end"); endStr != "" {
		end, err := time.Parse("2006-01-02", endStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date_end, expected YYYY-MM-DD"})
			return filter, false
		}
		filter.DateEnd = &end
	}

	if filter.DateStart != nil && filter.DateEnd != nil && filter.DateStart.After(*filter.DateEnd) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "date_start must not be after date_end"})
		return filter, false
	}

	return filter, true
}

// GetSummary godoc
// @Summary Get salary summary statistics
// @Description Count, min, max, mean, median, quartiles and target percentile over filtered salary facts
// @Tags Analytics
// @Security BearerAuth
// @Produce json
// @Param standard_job_role_title query string false "Standard job role title"
// @Param hierarchy_level_name query string false "Hierarchy level name"
// @Param industry_field_name query string false "Industry field name"
// @Param district_name query string false "Federal district name"
// @Param oblast_name query string false "Oblast name"
// @Param city_name query string false "City name"
// @Param date_start query string false "Start date (YYYY-MM-DD)"
// @Param date_end query string false "End date (YYYY-MM-DD)"
// @Param percentile query int false "Target percentile (0-100), default 90"
// @Success 200 {object} ds.SalaryStats
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /analytics/summary [get]
func (h *AnalyticsHandler) GetSummary(ctx *gin.Context) {
	filter, ok := parseSalaryFilter(ctx)
	if !ok {
		return
	}

	percentile := ds.DefaultTargetPercentile
	if pStr := ctx.Query("percentile"); pStr != "" {
		p, err := strconv.Atoi(pStr)
		if err != nil || p < 0 || p > 100 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "percentile must be an integer between 0 and 100"})
			return
		}
		percentile = p
	}

	stats, err := h.service.GetSummary(ctx.Request.Context(), filter, percentile)
	if err != nil {
		logrus.Error("Failed to get salary summary: ", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get salary summary"})
		return
	}

	ctx.JSON(http.StatusOK, stats)
}

// GetDistribution godoc
// @Summary Get salary distribution histogram
// @Description Equal-width histogram buckets over filtered salary facts
// @Tags Analytics
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
// @Param buckets query int false "Bucket count, omit for automatic"
// @Success 200 {array} ds.SalaryDistributionBucket
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /analytics/distribution [get]
func (h *AnalyticsHandler) GetDistribution(ctx *gin.Context) {
	filter, ok := parseSalaryFilter(ctx)
	if !ok {
		return
	}

	bucketCount := 0
	if bStr := ctx.Query("buckets"); bStr != "" {
		b, err := strconv.Atoi(bStr)
		if err != nil || b < 1 || b > 1000 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "buckets must be an integer between 1 and 1000"})
			return
		}
		bucketCount = b
	}

	buckets, err := h.service.GetDistribution(ctx.Request.Context(), filter, bucketCount)
	if err != nil {
		logrus.Error("Failed to get salary distribution: ", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get salary distribution"})
		return
	}

	ctx.JSON(http.StatusOK, buckets)
}

// GetTimeSeries godoc
// @Summary Get salary time series
// @Description Average salary per period for the N most recent periods, empty periods included
// @Tags Analytics
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
// @Param granularity query string false "day, week, month, quarter or year (default month)"
// @Param periods query int false "Number of periods, default 12"
// @Success 200 {array} ds.SalaryTimeSeriesPoint
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /analytics/timeseries [get]
func (h *AnalyticsHandler) GetTimeSeries(ctx *gin.Context) {
	filter, ok := parseSalaryFilter(ctx)
	if !ok {
		return
	}

	granularity := ds.GranularityMonth
	if gStr := ctx.Query("granularity"); gStr != "" {
		granularity = ds.Granularity(gStr)
		if !granularity.Valid() {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "granularity must be one of: day, week, month, quarter, year"})
			return
		}
	}

	periods := ds.DefaultPeriods
	if pStr := ctx.Query("periods"); pStr != "" {
		p, err := strconv.Atoi(pStr)
		if err != nil || p < 1 || p > 366 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "periods must be an integer between 1 and 366"})
			return
		}
		periods = p
	}

	series, err := h.service.GetTimeSeries(ctx.Request.Context(), filter, granularity, periods)
	if err != nil {
		logrus.Error("Failed to get salary time series: ", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get salary time series"})
		return
	}

	ctx.JSON(http.StatusOK, series)
}

// GetPublicRoles godoc
// @Summary Get public role aggregates
// @Description Average salary per standard job role; groups below the record count threshold are never returned
// @Tags Analytics
// @Produce json
// @Param city_name query string false "City name"
// @Param oblast_name query string false "Oblast name"
// @Param district_name query string false "Federal district name"
// @Param industry_field_name query string false "Industry field name"
// @Param standard_job_role_title query string false "Standard job role title"
// @Param hierarchy_level_name query string false "Hierarchy level name"
// @Param date_start query string false "Start date (YYYY-MM-DD)"
// @Param date_end query string false "End date (YYYY-MM-DD)"
// @Param min_count query int false "Minimum records per group, default 10"
// @Success 200 {array} ds.PublicRoleGroup
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /analytics/public-roles [get]
func (h *AnalyticsHandler) GetPublicRoles(ctx *gin.Context) {
	filter, ok := parseSalaryFilter(ctx)
	if !ok {
		return
	}

	minCount := ds.DefaultMinRecordCount
	if mStr := ctx.Query("min_count"); mStr != "" {
		m, err := strconv.Atoi(mStr)
		if err != nil || m < 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "min_count must be a non-negative integer"})
			return
		}
		minCount = m
	}

	groups, err := h.service.GetRankedGroups(ctx.Request.Context(), filter, minCount)
	if err != nil {
		logrus.Error("Failed to get public roles: ", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get public roles"})
		return
	}

	ctx.JSON(http.StatusOK, groups)
}
