// internal/app/handler/fact_salary.go
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"MarketStat-Backend/internal/app/analytics"
	"MarketStat-Backend/internal/app/ds"
	"MarketStat-Backend/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type FactSalaryHandler struct {
	repo    *repository.Repository
	service *analytics.Service
}

func NewFactSalaryHandler(repo *repository.Repository, service *analytics.Service) *FactSalaryHandler {
	return &FactSalaryHandler{
		repo:    repo,
		service: service,
	}
}

type CreateFactRequest struct {
	DateID       int             `json:"date_id" binding:"required"`
	LocationID   int             `json:"location_id" binding:"required"`
	EmployerID   int             `json:"employer_id" binding:"required"`
	JobID        int             `json:"job_id" binding:"required"`
	EmployeeID   int             `json:"employee_id" binding:"required"`
	SalaryAmount decimal.Decimal `json:"salary_amount" binding:"required"`
}

// GetFacts godoc
// @Summary Get salary facts page
// @Description Get paginated list of salary fact records
// @Tags Facts
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size (max 200)"
// @Success 200 {object} ds.PaginatedFactsResponse
// @Failure 500 {object} map[string]string
// @Router /facts [get]
func (h *FactSalaryHandler) GetFacts(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "50"))

	facts, pagination, err := h.repo.FactSalary.GetFacts(page, pageSize)
	if err != nil {
		logrus.Error("Failed to get facts: ", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get facts"})
		return
	}

	ctx.JSON(http.StatusOK, ds.PaginatedFactsResponse{
		Data:       facts,
		Pagination: pagination,
	})
}

// GetFactsByFilter godoc
// @Summary Get salary facts by name filter
// @Description Get salary fact projections matching a name-based filter; unknown names yield an empty list
// @Tags Facts
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
// @Success 200 {array} ds.SalaryFactRow
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /facts/filter [get]
func (h *FactSalaryHandler) GetFactsByFilter(ctx *gin.Context) {
	filter, ok := parseSalaryFilter(ctx)
	if !ok {
		return
	}

	rows, err := h.service.GetFacts(ctx.Request.Context(), filter)
	if err != nil {
		logrus.Error("Failed to get facts by filter: ", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get facts by filter"})
		return
	}

	ctx.JSON(http.StatusOK, rows)
}

// GetFact godoc
// @Summary Get salary fact details
// @Description Get salary fact record by ID
// @Tags Facts
// @Security BearerAuth
// @Produce json
// @Param id path int true "Salary fact ID"
// @Success 200 {object} ds.FactSalary
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /facts/{id} [get]
func (h *FactSalaryHandler) GetFact(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid fact id"})
		return
	}

	fact, err := h.repo.FactSalary.GetFact(id)
	if err != nil {
		logrus.Error("Failed to get fact: ", err)
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Fact not found"})
		return
	}

	ctx.JSON(http.StatusOK, fact)
}

// CreateFact godoc
// @Summary Create salary fact
// @Description Create new salary fact record (admin only)
// @Tags Facts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CreateFactRequest true "Salary fact data"
// @Success 201 {object} ds.FactSalary
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /facts [post]
func (h *FactSalaryHandler) CreateFact(ctx *gin.Context) {
	var req CreateFactRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	if req.SalaryAmount.IsNegative() {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "salary_amount must not be negative"})
		return
	}

	fact := &ds.FactSalary{
		DateID:       req.DateID,
		LocationID:   req.LocationID,
		EmployerID:   req.EmployerID,
		JobID:        req.JobID,
		EmployeeID:   req.EmployeeID,
		SalaryAmount: req.SalaryAmount,
	}

	if err := h.repo.FactSalary.CreateFact(fact); err != nil {
		logrus.Error("Failed to create fact: ", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create fact"})
		return
	}

	ctx.JSON(http.StatusCreated, fact)
}

// UpdateFact godoc
// @Summary Update salary fact
// @Description Update salary fact record (admin only)
// @Tags Facts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Salary fact ID"
// @Param request body CreateFactRequest true "Salary fact data"
// @Success 200 {object} ds.FactSalary
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /facts/{id} [put]
func (h *FactSalaryHandler) UpdateFact(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid fact id"})
		return
	}

	var req CreateFactRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	if req.SalaryAmount.IsNegative() {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "salary_amount must not be negative"})
		return
	}

	fact := &ds.FactSalary{
		SalaryFactID: id,
		DateID:       req.DateID,
		LocationID:   req.LocationID,
		EmployerID:   req.EmployerID,
		JobID:        req.JobID,
		EmployeeID:   req.EmployeeID,
		SalaryAmount: req.SalaryAmount,
	}

	if err := h.repo.FactSalary.UpdateFact(fact); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Fact not found"})
			return
		}
		logrus.Error("Failed to update fact: ", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update fact"})
		return
	}

	ctx.JSON(http.StatusOK, fact)
}

// DeleteFact godoc
// @Summary Delete salary fact
// @Description Delete salary fact record (admin only)
// @Tags Facts
// @Security BearerAuth
// @Produce json
// @Param id path int true "Salary fact ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /facts/{id} [delete]
func (h *FactSalaryHandler) DeleteFact(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid fact id"})
		return
	}

	if err := h.repo.FactSalary.DeleteFact(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Fact not found"})
			return
		}
		logrus.Error("Failed to delete fact: ", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete fact"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Fact deleted"})
}
