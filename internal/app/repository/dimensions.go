// internal/app/repository/dimensions.go
//
// Репозитории остальных измерений: работодатели, работники, календарь
package repository

import (
	"time"

	"MarketStat-Backend/internal/app/ds"

	"gorm.io/gorm"
)

type EmployerRepository struct {
	db *gorm.DB
}

func NewEmployerRepository(db *gorm.DB) *EmployerRepository {
	return &EmployerRepository{db: db}
}

func (r *EmployerRepository) GetEmployers(name string) ([]ds.DimEmployer, error) {
	query := r.db.Model(&ds.DimEmployer{})
	if name != "" {
		query = query.Where("LOWER(employer_name) LIKE LOWER(?)", "%"+name+"%")
	}

	var employers []ds.DimEmployer
	err := query.Order("employer_id ASC").Find(&employers).Error
	return employers, err
}

func (r *EmployerRepository) GetEmployer(id int) (*ds.DimEmployer, error) {
	var employer ds.DimEmployer
	if err := r.db.First(&employer, "employer_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &employer, nil
}

func (r *EmployerRepository) CreateEmployer(employer *ds.DimEmployer) error {
	return r.db.Create(employer).Error
}

func (r *EmployerRepository) UpdateEmployer(employer *ds.DimEmployer) error {
	result := r.db.Model(&ds.DimEmployer{}).
		Where("employer_id = ?", employer.EmployerID).
		Updates(map[string]interface{}{
			"employer_name": employer.EmployerName,
			"employer_inn":  employer.EmployerINN,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *EmployerRepository) DeleteEmployer(id int) error {
	result := r.db.Delete(&ds.DimEmployer{}, "employer_id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) GetEmployees() ([]ds.DimEmployee, error) {
	var employees []ds.DimEmployee
	err := r.db.Order("employee_id ASC").Find(&employees).Error
	return employees, err
}

func (r *EmployeeRepository) GetEmployee(id int) (*ds.DimEmployee, error) {
	var employee ds.DimEmployee
	if err := r.db.First(&employee, "employee_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *EmployeeRepository) CreateEmployee(employee *ds.DimEmployee) error {
	return r.db.Create(employee).Error
}

func (r *EmployeeRepository) UpdateEmployee(employee *ds.DimEmployee) error {
	result := r.db.Model(&ds.DimEmployee{}).
		Where("employee_id = ?", employee.EmployeeID).
		Updates(map[string]interface{}{
			"gender":           employee.Gender,
			"birth_year":       employee.BirthYear,
			"experience_years": employee.ExperienceYears,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *EmployeeRepository) DeleteEmployee(id int) error {
	result := r.db.Delete(&ds.DimEmployee{}, "employee_id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

type DateRepository struct {
	db *gorm.DB
}

func NewDateRepository(db *gorm.DB) *DateRepository {
	return &DateRepository{db: db}
}

func (r *DateRepository) GetDates() ([]ds.DimDate, error) {
	var dates []ds.DimDate
	err := r.db.Order("full_date ASC").Find(&dates).Error
	return dates, err
}

func (r *DateRepository) GetDate(id int) (*ds.DimDate, error) {
	var date ds.DimDate
	if err := r.db.First(&date, "date_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &date, nil
}

// CreateDate создает календарную запись, производные поля заполняются из FullDate
func (r *DateRepository) CreateDate(date *ds.DimDate) error {
	fillDateParts(date)
	return r.db.Create(date).Error
}

func (r *DateRepository) UpdateDate(date *ds.DimDate) error {
	fillDateParts(date)
	result := r.db.Model(&ds.DimDate{}).
		Where("date_id = ?", date.DateID).
		Updates(map[string]interface{}{
			"full_date": date.FullDate,
			"year":      date.Year,
			"quarter":   date.Quarter,
			"month":     date.Month,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DateRepository) DeleteDate(id int) error {
	result := r.db.Delete(&ds.DimDate{}, "date_id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func fillDateParts(date *ds.DimDate) {
	date.Year = date.FullDate.Year()
	date.Quarter = (int(date.FullDate.Month())-1)/3 + 1
	date.Month = int(date.FullDate.Month())
	date.FullDate = time.Date(date.FullDate.Year(), date.FullDate.Month(), date.FullDate.Day(), 0, 0, 0, 0, time.UTC)
}
