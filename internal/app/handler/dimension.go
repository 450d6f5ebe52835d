// internal/app/handler/dimension.go
//
// CRUD-обработчики таблиц измерений
package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"MarketStat-Backend/internal/app/ds"
	"MarketStat-Backend/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type DimensionHandler struct {
	repo *repository.Repository
}

func NewDimensionHandler(repo *repository.Repository) *DimensionHandler {
	return &DimensionHandler{
		repo: repo,
	}
}

type LocationRequest struct {
	CityName     string `json:"city_name" binding:"required"`
	OblastName   string `json:"oblast_name" binding:"required"`
	DistrictName string `json:"district_name" binding:"required"`
}

type JobRequest struct {
	JobRoleTitle         string `json:"job_role_title" binding:"required"`
	StandardJobRoleTitle string `json:"standard_job_role_title" binding:"required"`
	HierarchyLevelName   string `json:"hierarchy_level_name" binding:"required"`
	IndustryFieldID      int    `json:"industry_field_id" binding:"required"`
}

type IndustryFieldRequest struct {
	IndustryFieldName string `json:"industry_field_name" binding:"required"`
}

type EmployerRequest struct {
	EmployerName string `json:"employer_name" binding:"required"`
	EmployerINN  string `json:"employer_inn"`
}

type EmployeeRequest struct {
	Gender          string `json:"gender"`
	BirthYear       int    `json:"birth_year"`
	ExperienceYears int    `json:"experience_years"`
}

type DateRequest struct {
	FullDate string `json:"full_date" binding:"required"`
}

func parseDimensionID(ctx *gin.Context) (int, bool) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return id, true
}

func respondRepositoryError(ctx *gin.Context, err error, entity string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": entity + " not found"})
		return
	}
	logrus.Errorf("Repository error (%s): %v", entity, err)
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

// ==================== ЛОКАЦИИ ====================

// GetLocations godoc
// @Summary Get locations list
// @Tags Dimensions
// @Security BearerAuth
// @Produce json
// @Param city_name query string false "Filter by city name"
// @Success 200 {array} ds.DimLocation
// @Router /locations [get]
func (h *DimensionHandler) GetLocations(ctx *gin.Context) {
	locations, err := h.repo.Location.GetLocations(ctx.Query("city_name"))
	if err != nil {
		logrus.Error("Failed to get locations: ", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get locations"})
		return
	}
	ctx.JSON(http.StatusOK, locations)
}

// GetLocation godoc
// @Summary Get location by ID
// @Tags Dimensions
// @Security BearerAuth
// @Produce json
// @Param id path int true "Location ID"
// @Success 200 {object} ds.DimLocation
// @Failure 404 {object} map[string]string
// @Router /locations/{id} [get]
func (h *DimensionHandler) GetLocation(ctx *gin.Context) {
	id, ok := parseDimensionID(ctx)
	if !ok {
		return
	}

	location, err := h.repo.Location.GetLocation(id)
	if err != nil {
		respondRepositoryError(ctx, err, "Location")
		return
	}
	ctx.JSON(http.StatusOK, location)
}

// CreateLocation godoc
// @Summary Create location
// @Tags Dimensions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body LocationRequest true "Location data"
// @Success 201 {object} ds.DimLocation
// @Failure 400 {object} map[string]string
// @Router /locations [post]
func (h *DimensionHandler) CreateLocation(ctx *gin.Context) {
	var req LocationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	location := &ds.DimLocation{
		CityName:     req.CityName,
		OblastName:   req.OblastName,
		DistrictName: req.DistrictName,
	}
	if err := h.repo.Location.CreateLocation(location); err != nil {
		logrus.Error("Failed to create location: ", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create location"})
		return
	}
	ctx.JSON(http.StatusCreated, location)
}

// UpdateLocation godoc
// @Summary Update location
// @Tags Dimensions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Location ID"
// @Param request body LocationRequest true "Location data"
// @Success 200 {object} ds.DimLocation
// @Failure 404 {object} map[string]string
// @Router /locations/{id} [put]
func (h *DimensionHandler) UpdateLocation(ctx *gin.Context) {
	id, ok := parseDimensionID(ctx)
	if !ok {
		return
	}

	var req LocationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	location := &ds.DimLocation{
		LocationID:   id,
		CityName:     req.CityName,
		OblastName:   req.OblastName,
		DistrictName: req.DistrictName,
	}
	if err := h.repo.Location.UpdateLocation(location); err != nil {
		respondRepositoryError(ctx, err, "Location")
		return
	}
	ctx.JSON(http.StatusOK, location)
}

// DeleteLocation godoc
// @Summary Delete location
// @Tags Dimensions
// @Security BearerAuth
// @Produce json
// @Param id path int true "Location ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /locations/{id} [delete]
func (h *DimensionHandler) DeleteLocation(ctx *gin.Context) {
	id, ok := parseDimensionID(ctx)
	if !ok {
		return
	}

	if err := h.repo.Location.DeleteLocation(id); err != nil {
		respondRepositoryError(ctx, err, "Location")
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Location deleted"})
}

// ==================== ДОЛЖНОСТИ ====================

// GetJobs godoc
// @Summary Get jobs list
// @Tags Dimensions
// @Security BearerAuth
// @Produce json
// @Param standard_job_role_title query string false "Filter by standard role title"
// @Success 200 {array} ds.DimJob
// @Router /jobs [get]
func (h *DimensionHandler) GetJobs(ctx *gin.Context) {
	jobs, err := h.repo.Job.GetJobs(ctx.Query("standard_job_role_title"))
	if err != nil {
		logrus.Error("Failed to get jobs: ", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get jobs"})
		return
	}
	ctx.JSON(http.StatusOK, jobs)
}

// GetJob godoc
// @Summary Get job by ID
// @Tags Dimensions
// @Security BearerAuth
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {object} ds.DimJob
// @Failure 404 {object} map[string]string
// @Router /jobs/{id} [get]
func (h *DimensionHandler) GetJob(ctx *gin.Context) {
	id, ok := parseDimensionID(ctx)
	if !ok {
		return
	}

	job, err := h.repo.Job.GetJob(id)
	if err != nil {
		respondRepositoryError(ctx, err, "Job")
		return
	}
	ctx.JSON(http.StatusOK, job)
}

// CreateJob godoc
// @Summary Create job
// @Tags Dimensions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body JobRequest true "Job data"
// @Success 201 {object} ds.DimJob
// @Failure 400 {object} map[string]string
// @Router /jobs [post]
func (h *DimensionHandler) CreateJob(ctx *gin.Context) {
	var req JobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	job := &ds.DimJob{
		JobRoleTitle:         req.JobRoleTitle,
		StandardJobRoleTitle: req.StandardJobRoleTitle,
		HierarchyLevelName:   req.HierarchyLevelName,
		IndustryFieldID:      req.IndustryFieldID,
	}
	if err := h.repo.Job.CreateJob(job); err != nil {
		logrus.Error("Failed to create job: ", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create job"})
		return
	}
	ctx.JSON(http.StatusCreated, job)
}

// UpdateJob godoc
// @Summary Update job
// @Tags Dimensions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Job ID"
// @Param request body JobRequest true "Job data"
// @Success 200 {object} ds.DimJob
// @Failure 404 {object} map[string]string
// @Router /jobs/{id} [put]
func (h *DimensionHandler) UpdateJob(ctx *gin.Context) {
	id, ok := parseDimensionID(ctx)
	if !ok {
		return
	}

	var req JobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	job := &ds.DimJob{
		JobID:                id,
		JobRoleTitle:         req.JobRoleTitle,
		StandardJobRoleTitle: req.StandardJobRoleTitle,
		HierarchyLevelName:   req.HierarchyLevelName,
		IndustryFieldID:      req.IndustryFieldID,
	}
	if err := h.repo.Job.UpdateJob(job); err != nil {
		respondRepositoryError(ctx, err, "Job")
		return
	}
	ctx.JSON(http.StatusOK, job)
}

// DeleteJob godoc
// @Summary Delete job
// @Tags Dimensions
// @Security BearerAuth
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /jobs/{id} [delete]
func (h *DimensionHandler) DeleteJob(ctx *gin.Context) {
	id, ok := parseDimensionID(ctx)
	if !ok {
		return
	}

	if err := h.repo.Job.DeleteJob(id); err != nil {
		respondRepositoryError(ctx, err, "Job")
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Job deleted"})
}

// ==================== ОТРАСЛИ ====================

// GetIndustryFields godoc
// @Summary Get industry fields list
// @Tags Dimensions
// @Security BearerAuth
// @Produce json
// @Success 200 {array} ds.DimIndustryField
// @Router /industry-fields [get]
func (h *DimensionHandler) GetIndustryFields(ctx *gin.Context) {
	industries, err := h.repo.IndustryField.GetIndustryFields()
	if err != nil {
		logrus.Error("Failed to get industry fields: ", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get industry fields"})
		return
	}
	ctx.JSON(http.StatusOK, industries)
}

// CreateIndustryField godoc
// @Summary Create industry field
// @Tags Dimensions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body IndustryFieldRequest true "Industry field data"
// @Success 201 {object} ds.DimIndustryField
// @Failure 400 {object} map[string]string
// @Router /industry-fields [post]
func (h *DimensionHandler) CreateIndustryField(ctx *gin.Context) {
	var req IndustryFieldRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	industry := &ds.DimIndustryField{IndustryFieldName: req.IndustryFieldName}
	if err := h.repo.IndustryField.CreateIndustryField(industry); err != nil {
		logrus.Error("Failed to create industry field: ", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create industry field"})
		return
	}
	ctx.JSON(http.StatusCreated, industry)
}

// UpdateIndustryField godoc
// @Summary Update industry field
// @Tags Dimensions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Industry field ID"
// @Param request body IndustryFieldRequest true "Industry field data"
// @Success 200 {object} ds.DimIndustryField
// @Failure 404 {object} map[string]string
// @Router /industry-fields/{id} [put]
func (h *DimensionHandler) UpdateIndustryField(ctx *gin.Context) {
	id, ok := parseDimensionID(ctx)
	if !ok {
		return
	}

	var req IndustryFieldRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	industry := &ds.DimIndustryField{IndustryFieldID: id, IndustryFieldName: req.IndustryFieldName}
	if err := h.repo.IndustryField.UpdateIndustryField(industry); err != nil {
		respondRepositoryError(ctx, err, "Industry field")
		return
	}
	ctx.JSON(http.StatusOK, industry)
}

// DeleteIndustryField godoc
// @Summary Delete industry field
// @Tags Dimensions
// @Security BearerAuth
// @Produce json
// @Param id path int true "Industry field ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /industry-fields/{id} [delete]
func (h *DimensionHandler) DeleteIndustryField(ctx *gin.Context) {
	id, ok := parseDimensionID(ctx)
	if !ok {
		return
	}

	if err := h.repo.IndustryField.DeleteIndustryField(id); err != nil {
		respondRepositoryError(ctx, err, "Industry field")
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Industry field deleted"})
}

// ==================== РАБОТОДАТЕЛИ ====================

// GetEmployers godoc
// @Summary Get employers list
// @Tags Dimensions
// @Security BearerAuth
// @Produce json
// @Param employer_name query string false "Filter by employer name"
// @Success 200 {array} ds.DimEmployer
// @Router /employers [get]
func (h *DimensionHandler) GetEmployers(ctx *gin.Context) {
	employers, err := h.repo.Employer.GetEmployers(ctx.Query("employer_name"))
	if err != nil {
		logrus.Error("Failed to get employers: ", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get employers"})
		return
	}
	ctx.JSON(http.StatusOK, employers)
}

// CreateEmployer godoc
// @Summary Create employer
// @Tags Dimensions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body EmployerRequest true "Employer data"
// @Success 201 {object} ds.DimEmployer
// @Failure 400 {object} map[string]string
// @Router /employers [post]
func (h *DimensionHandler) CreateEmployer(ctx *gin.Context) {
	var req EmployerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	employer := &ds.DimEmployer{EmployerName: req.EmployerName, EmployerINN: req.EmployerINN}
	if err := h.repo.Employer.CreateEmployer(employer); err != nil {
		logrus.Error("Failed to create employer: ", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create employer"})
		return
	}
	ctx.JSON(http.StatusCreated, employer)
}

// UpdateEmployer godoc
// @Summary Update employer
// @Tags Dimensions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Employer ID"
// @Param request body EmployerRequest true "Employer data"
// @Success 200 {object} ds.DimEmployer
// @Failure 404 {object} map[string]string
// @Router /employers/{id} [put]
func (h *DimensionHandler) UpdateEmployer(ctx *gin.Context) {
	id, ok := parseDimensionID(ctx)
	if !ok {
		return
	}

	var req EmployerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	employer := &ds.DimEmployer{EmployerID: id, EmployerName: req.EmployerName, EmployerINN: req.EmployerINN}
	if err := h.repo.Employer.UpdateEmployer(employer); err != nil {
		respondRepositoryError(ctx, err, "Employer")
		return
	}
	ctx.JSON(http.StatusOK, employer)
}

// DeleteEmployer godoc
// @Summary Delete employer
// @Tags Dimensions
// @Security BearerAuth
// @Produce json
// @Param id path int true "Employer ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /employers/{id} [delete]
func (h *DimensionHandler) DeleteEmployer(ctx *gin.Context) {
	id, ok := parseDimensionID(ctx)
	if !ok {
		return
	}

	if err := h.repo.Employer.DeleteEmployer(id); err != nil {
		respondRepositoryError(ctx, err, "Employer")
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Employer deleted"})
}

// ==================== РАБОТНИКИ ====================

// GetEmployees godoc
// @Summary Get employees list
// @Tags Dimensions
// @Security BearerAuth
// @Produce json
// @Success 200 {array} ds.DimEmployee
// @Router /employees [get]
func (h *DimensionHandler) GetEmployees(ctx *gin.Context) {
	employees, err := h.repo.Employee.GetEmployees()
	if err != nil {
		logrus.Error("Failed to get employees: ", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get employees"})
		return
	}
	ctx.JSON(http.StatusOK, employees)
}

// CreateEmployee godoc
// @Summary Create employee
// @Tags Dimensions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body EmployeeRequest true "Employee data"
// @Success 201 {object} ds.DimEmployee
// @Failure 400 {object} map[string]string
// @Router /employees [post]
func (h *DimensionHandler) CreateEmployee(ctx *gin.Context) {
	var req EmployeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	employee := &ds.DimEmployee{
		Gender:          req.Gender,
		BirthYear:       req.BirthYear,
		ExperienceYears: req.ExperienceYears,
	}
	if err := h.repo.Employee.CreateEmployee(employee); err != nil {
		logrus.Error("Failed to create employee: ", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create employee"})
		return
	}
	ctx.JSON(http.StatusCreated, employee)
}

// UpdateEmployee godoc
// @Summary Update employee
// @Tags Dimensions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Employee ID"
// @Param request body EmployeeRequest true "Employee data"
// @Success 200 {object} ds.DimEmployee
// @Failure 404 {object} map[string]string
// @Router /employees/{id} [put]
func (h *DimensionHandler) UpdateEmployee(ctx *gin.Context) {
	id, ok := parseDimensionID(ctx)
	if !ok {
		return
	}

	var req EmployeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	employee := &ds.DimEmployee{
		EmployeeID:      id,
		Gender:          req.Gender,
		BirthYear:       req.BirthYear,
		ExperienceYears: req.ExperienceYears,
	}
	if err := h.repo.Employee.UpdateEmployee(employee); err != nil {
		respondRepositoryError(ctx, err, "Employee")
		return
	}
	ctx.JSON(http.StatusOK, employee)
}

// DeleteEmployee godoc
// @Summary Delete employee
// @Tags Dimensions
// @Security BearerAuth
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /employees/{id} [delete]
func (h *DimensionHandler) DeleteEmployee(ctx *gin.Context) {
	id, ok := parseDimensionID(ctx)
	if !ok {
		return
	}

	if err := h.repo.Employee.DeleteEmployee(id); err != nil {
		respondRepositoryError(ctx, err, "Employee")
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Employee deleted"})
}

// ==================== КАЛЕНДАРЬ ====================

// GetDates godoc
// @Summary Get calendar dates list
// @Tags Dimensions
// @Security BearerAuth
// @Produce json
// @Success 200 {array} ds.DimDate
// @Router /dates [get]
func (h *DimensionHandler) GetDates(ctx *gin.Context) {
	dates, err := h.repo.Date.GetDates()
	if err != nil {
		logrus.Error("Failed to get dates: ", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get dates"})
		return
	}
	ctx.JSON(http.StatusOK, dates)
}

// CreateDate godoc
// @Summary Create calendar date
// @Tags Dimensions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body DateRequest true "Date data (YYYY-MM-DD)"
// @Success 201 {object} ds.DimDate
// @Failure 400 {object} map[string]string
// @Router /dates [post]
func (h *DimensionHandler) CreateDate(ctx *gin.Context) {
	var req DateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	fullDate, err := time.Parse("2006-01-02", req.FullDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid full_date, expected YYYY-MM-DD"})
		return
	}

	date := &ds.DimDate{FullDate: fullDate}
	if err := h.repo.Date.CreateDate(date); err != nil {
		logrus.Error("Failed to create date: ", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create date"})
		return
	}
	ctx.JSON(http.StatusCreated, date)
}

// UpdateDate godoc
// @Summary Update calendar date
// @Tags Dimensions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Date ID"
// @Param request body DateRequest true "Date data (YYYY-MM-DD)"
// @Success 200 {object} ds.DimDate
// @Failure 404 {object} map[string]string
// @Router /dates/{id} [put]
func (h *DimensionHandler) UpdateDate(ctx *gin.Context) {
	id, ok := parseDimensionID(ctx)
	if !ok {
		return
	}

	var req DateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	fullDate, err := time.Parse("2006-01-02", req.FullDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid full_date, expected YYYY-MM-DD"})
		return
	}

	date := &ds.DimDate{DateID: id, FullDate: fullDate}
	if err := h.repo.Date.UpdateDate(date); err != nil {
		respondRepositoryError(ctx, err, "Date")
		return
	}
	ctx.JSON(http.StatusOK, date)
}

// DeleteDate godoc
// @Summary Delete calendar date
// @Tags Dimensions
// @Security BearerAuth
// @Produce json
// @Param id path int true "Date ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /dates/{id} [delete]
func (h *DimensionHandler) DeleteDate(ctx *gin.Context) {
	id, ok := parseDimensionID(ctx)
	if !ok {
		return
	}

	if err := h.repo.Date.DeleteDate(id); err != nil {
		respondRepositoryError(ctx, err, "Date")
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Date deleted"})
}
