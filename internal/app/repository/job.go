// internal/app/repository/job.go
package repository

import (
	"context"
	"errors"

	"MarketStat-Backend/internal/app/ds"

	"gorm.io/gorm"
)

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

// GetJobs возвращает список должностей с опциональным поиском по роли
func (r *JobRepository) GetJobs(standardJobRoleTitle string) ([]ds.DimJob, error) {
	query := r.db.Model(&ds.DimJob{})
	if standardJobRoleTitle != "" {
		query = query.Where("LOWER(standard_job_role_title) LIKE LOWER(?)", "%"+standardJobRoleTitle+"%")
	}

	var jobs []ds.DimJob
	err := query.Order("job_id ASC").Find(&jobs).Error
	return jobs, err
}

// GetJob возвращает должность по ID
func (r *JobRepository) GetJob(id int) (*ds.DimJob, error) {
	var job ds.DimJob
	if err := r.db.First(&job, "job_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// CreateJob создает должность
func (r *JobRepository) CreateJob(job *ds.DimJob) error {
	return r.db.Create(job).Error
}

// UpdateJob обновляет должность
func (r *JobRepository) UpdateJob(job *ds.DimJob) error {
	result := r.db.Model(&ds.DimJob{}).
		Where("job_id = ?", job.JobID).
		Updates(map[string]interface{}{
			"job_role_title":          job.JobRoleTitle,
			"standard_job_role_title": job.StandardJobRoleTitle,
			"hierarchy_level_name":    job.HierarchyLevelName,
			"industry_field_id":       job.IndustryFieldID,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteJob удаляет должность
func (r *JobRepository) DeleteJob(id int) error {
	result := r.db.Delete(&ds.DimJob{}, "job_id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetJobIDsByFilter ищет ID должностей по точному совпадению комбинации
// критериев. industryFieldID=0 означает отсутствие ограничения по отрасли.
// Реализует analytics.JobIDResolver
func (r *JobRepository) GetJobIDsByFilter(ctx context.Context, standardJobRoleTitle, hierarchyLevelName string, industryFieldID int) ([]int, error) {
	query := r.db.WithContext(ctx).Model(&ds.DimJob{})

	if industryFieldID != 0 {
		query = query.Where("industry_field_id = ?", industryFieldID)
	}
	if standardJobRoleTitle != "" {
		query = query.Where("standard_job_role_title = ?", standardJobRoleTitle)
	}
	if hierarchyLevelName != "" {
		query = query.Where("hierarchy_level_name = ?", hierarchyLevelName)
	}

	var ids []int
	err := query.Pluck("job_id", &ids).Error
	return ids, err
}

type IndustryFieldRepository struct {
	db *gorm.DB
}

func NewIndustryFieldRepository(db *gorm.DB) *IndustryFieldRepository {
	return &IndustryFieldRepository{db: db}
}

// GetIndustryFields возвращает список отраслей
func (r *IndustryFieldRepository) GetIndustryFields() ([]ds.DimIndustryField, error) {
	var industries []ds.DimIndustryField
	err := r.db.Order("industry_field_id ASC").Find(&industries).Error
	return industries, err
}

// GetIndustryField возвращает отрасль по ID
func (r *IndustryFieldRepository) GetIndustryField(id int) (*ds.DimIndustryField, error) {
	var industry ds.DimIndustryField
	if err := r.db.First(&industry, "industry_field_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &industry, nil
}

// CreateIndustryField создает отрасль
func (r *IndustryFieldRepository) CreateIndustryField(industry *ds.DimIndustryField) error {
	return r.db.Create(industry).Error
}

// UpdateIndustryField обновляет отрасль
func (r *IndustryFieldRepository) UpdateIndustryField(industry *ds.DimIndustryField) error {
	result := r.db.Model(&ds.DimIndustryField{}).
		Where("industry_field_id = ?", industry.IndustryFieldID).
		Update("industry_field_name", industry.IndustryFieldName)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteIndustryField удаляет отрасль
func (r *IndustryFieldRepository) DeleteIndustryField(id int) error {
	result := r.db.Delete(&ds.DimIndustryField{}, "industry_field_id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetIndustryFieldIDByName ищет отрасль по точному названию.
// Отсутствие совпадения - не ошибка, а found=false.
// Реализует analytics.IndustryResolver
func (r *IndustryFieldRepository) GetIndustryFieldIDByName(ctx context.Context, name string) (int, bool, error) {
	var industry ds.DimIndustryField
	err := r.db.WithContext(ctx).
		Where("industry_field_name = ?", name).
		First(&industry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return industry.IndustryFieldID, true, nil
}
