// internal/app/repository/fact_salary.go
package repository

import (
	"context"

	"MarketStat-Backend/internal/app/ds"

	"gorm.io/gorm"
)

type FactSalaryRepository struct {
	db *gorm.DB
}

func NewFactSalaryRepository(db *gorm.DB) *FactSalaryRepository {
	return &FactSalaryRepository{db: db}
}

// GetFacts возвращает страницу фактов зарплат.
// pageSize по умолчанию 50, максимум 200 записей на странице
func (r *FactSalaryRepository) GetFacts(page, pageSize int) ([]ds.FactSalary, ds.PaginationInfo, error) {
	if pageSize <= 0 {
		pageSize = 50
	}
	if pageSize > 200 {
		pageSize = 200
	}
	if page < 1 {
		page = 1
	}

	var total int64
	if err := r.db.Model(&ds.FactSalary{}).Count(&total).Error; err != nil {
		return nil, ds.PaginationInfo{}, err
	}

	offset := (page - 1) * pageSize

	var facts []ds.FactSalary
	err := r.db.
		Order("salary_fact_id ASC").
		Offset(offset).
		Limit(pageSize).
		Find(&facts).Error
	if err != nil {
		return nil, ds.PaginationInfo{}, err
	}

	totalPages := 0
	if total > 0 {
		totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}

	pagination := ds.PaginationInfo{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}

	return facts, pagination, nil
}

// GetFact возвращает факт по ID
func (r *FactSalaryRepository) GetFact(id int64) (*ds.FactSalary, error) {
	var fact ds.FactSalary
	if err := r.db.First(&fact, "salary_fact_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &fact, nil
}

// CreateFact создает факт зарплаты, ID выдает последовательность БД
func (r *FactSalaryRepository) CreateFact(fact *ds.FactSalary) error {
	return r.db.Create(fact).Error
}

// UpdateFact обновляет факт зарплаты
func (r *FactSalaryRepository) UpdateFact(fact *ds.FactSalary) error {
	result := r.db.Model(&ds.FactSalary{}).
		Where("salary_fact_id = ?", fact.SalaryFactID).
		Updates(map[string]interface{}{
			"date_id":       fact.DateID,
			"location_id":   fact.LocationID,
			"employer_id":   fact.EmployerID,
			"job_id":        fact.JobID,
			"employee_id":   fact.EmployeeID,
			"salary_amount": fact.SalaryAmount,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteFact удаляет факт зарплаты
func (r *FactSalaryRepository) DeleteFact(id int64) error {
	result := r.db.Delete(&ds.FactSalary{}, "salary_fact_id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ScanFacts возвращает проекции фактов под разрешенный фильтр:
// дата и стандартная роль развернуты join'ом с измерениями.
// nil-срезы ID в фильтре означают отсутствие ограничения.
// Реализует analytics.FactScanner
func (r *FactSalaryRepository) ScanFacts(ctx context.Context, filter *ds.ResolvedSalaryFilter) ([]ds.SalaryFactRow, error) {
	query := r.db.WithContext(ctx).
		Table("fact_salaries").
		Select("dim_dates.full_date AS fact_date, dim_jobs.standard_job_role_title, fact_salaries.salary_amount").
		Joins("JOIN dim_dates ON dim_dates.date_id = fact_salaries.date_id").
		Joins("JOIN dim_jobs ON dim_jobs.job_id = fact_salaries.job_id")

	if filter != nil {
		if len(filter.LocationIDs) > 0 {
			query = query.Where("fact_salaries.location_id IN ?", filter.LocationIDs)
		}
		if len(filter.JobIDs) > 0 {
			query = query.Where("fact_salaries.job_id IN ?", filter.JobIDs)
		}
		if filter.DateStart != nil {
			query = query.Where("dim_dates.full_date >= ?", *filter.DateStart)
		}
		if filter.DateEnd != nil {
			query = query.Where("dim_dates.full_date <= ?", *filter.DateEnd)
		}
	}

	var rows []ds.SalaryFactRow
	err := query.Order("dim_dates.full_date ASC").Scan(&rows).Error
	return rows, err
}
