// internal/app/ds/fact_salary.go
package ds

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FactSalary факт зарплаты, ссылается на измерения по ID.
// SalaryAmount хранится как numeric(12,2)
type FactSalary struct {
	SalaryFactID int64           `gorm:"column:salary_fact_id;primaryKey;autoIncrement" json:"salary_fact_id"`
	DateID       int             `gorm:"column:date_id;not null;index:idx_fact_salaries_date" json:"date_id"`
	LocationID   int             `gorm:"column:location_id;not null;index:idx_fact_salaries_location" json:"location_id"`
	EmployerID   int             `gorm:"column:employer_id;not null" json:"employer_id"`
	JobID        int             `gorm:"column:job_id;not null;index:idx_fact_salaries_job" json:"job_id"`
	EmployeeID   int             `gorm:"column:employee_id;not null" json:"employee_id"`
	SalaryAmount decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"salary_amount"`

	DimDate *DimDate `gorm:"foreignKey:DateID" json:"-"`
	DimJob  *DimJob  `gorm:"foreignKey:JobID" json:"-"`
}

func (FactSalary) TableName() string {
	return "fact_salaries"
}

// SalaryFactRow проекция факта для аналитики: дата и стандартная роль
// уже развернуты из измерений, движку агрегации не нужны повторные join'ы
type SalaryFactRow struct {
	FactDate             time.Time       `json:"fact_date"`
	StandardJobRoleTitle string          `json:"standard_job_role_title"`
	SalaryAmount         decimal.Decimal `json:"salary_amount"`
}

// CreateFactIndexes создает составные индексы под фильтрованные сканы фактов
func CreateFactIndexes(db *gorm.DB) error {
	indexes := []string{
		// Основной скан: локация + должность + дата
		`CREATE INDEX IF NOT EXISTS idx_fact_salaries_scan
		 ON fact_salaries (location_id, job_id, date_id)`,

		// Временные ряды: дата + сумма
		`CREATE INDEX IF NOT EXISTS idx_fact_salaries_date_amount
		 ON fact_salaries (date_id, salary_amount)`,
	}

	for _, sql := range indexes {
		if err := db.Exec(sql).Error; err != nil {
			return err
		}
	}

	db.Exec("ANALYZE fact_salaries")

	return nil
}
