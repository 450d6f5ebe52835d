// internal/app/ds/dimensions.go
package ds

import (
	"time"

	"gorm.io/gorm"
)

// DimLocation измерение локации (федеральный округ / область / город)
type DimLocation struct {
	LocationID   int    `gorm:"column:location_id;primaryKey;autoIncrement" json:"location_id"`
	CityName     string `gorm:"type:varchar(255) not null;index:idx_dim_locations_city" json:"city_name"`
	OblastName   string `gorm:"type:varchar(255) not null;index:idx_dim_locations_oblast" json:"oblast_name"`
	DistrictName string `gorm:"type:varchar(255) not null" json:"district_name"`
}

func (DimLocation) TableName() string {
	return "dim_locations"
}

// DimIndustryField измерение отрасли
type DimIndustryField struct {
	IndustryFieldID   int    `gorm:"column:industry_field_id;primaryKey;autoIncrement" json:"industry_field_id"`
	IndustryFieldName string `gorm:"type:varchar(255) not null;uniqueIndex:idx_dim_industry_fields_name" json:"industry_field_name"`
}

func (DimIndustryField) TableName() string {
	return "dim_industry_fields"
}

// DimJob измерение должности. StandardJobRoleTitle - нормализованное название роли,
// по нему строится публичная аналитика
type DimJob struct {
	JobID                int    `gorm:"column:job_id;primaryKey;autoIncrement" json:"job_id"`
	JobRoleTitle         string `gorm:"type:varchar(255) not null" json:"job_role_title"`
	StandardJobRoleTitle string `gorm:"type:varchar(255) not null;index:idx_dim_jobs_std_role" json:"standard_job_role_title"`
	HierarchyLevelName   string `gorm:"type:varchar(255) not null;index:idx_dim_jobs_hierarchy" json:"hierarchy_level_name"`
	IndustryFieldID      int    `gorm:"column:industry_field_id;not null;index:idx_dim_jobs_industry" json:"industry_field_id"`

	IndustryField *DimIndustryField `gorm:"foreignKey:IndustryFieldID" json:"-"`
}

func (DimJob) TableName() string {
	return "dim_jobs"
}

// DimEmployer измерение работодателя
type DimEmployer struct {
	EmployerID   int    `gorm:"column:employer_id;primaryKey;autoIncrement" json:"employer_id"`
	EmployerName string `gorm:"type:varchar(255) not null;index:idx_dim_employers_name" json:"employer_name"`
	EmployerINN  string `gorm:"column:employer_inn;type:varchar(12)" json:"employer_inn"`
}

func (DimEmployer) TableName() string {
	return "dim_employers"
}

// DimEmployee измерение работника (анонимизированный профиль)
type DimEmployee struct {
	EmployeeID      int    `gorm:"column:employee_id;primaryKey;autoIncrement" json:"employee_id"`
	Gender          string `gorm:"type:varchar(16)" json:"gender"`
	BirthYear       int    `gorm:"type:int" json:"birth_year"`
	ExperienceYears int    `gorm:"type:int" json:"experience_years"`
}

func (DimEmployee) TableName() string {
	return "dim_employees"
}

// DimDate календарное измерение. FullDate хранится как date,
// производные поля заполняются при миграции
type DimDate struct {
	DateID   int       `gorm:"column:date_id;primaryKey;autoIncrement" json:"date_id"`
	FullDate time.Time `gorm:"type:date not null;uniqueIndex:idx_dim_dates_full_date" json:"full_date"`
	Year     int       `gorm:"not null" json:"year"`
	Quarter  int       `gorm:"not null" json:"quarter"`
	Month    int       `gorm:"not null" json:"month"`
}

func (DimDate) TableName() string {
	return "dim_dates"
}

// CreateDimensionIndexes создает составные индексы для запросов резолвера фильтров
func CreateDimensionIndexes(db *gorm.DB) error {
	indexes := []string{
		// Комбинированный поиск локаций по округу/области/городу
		`CREATE INDEX IF NOT EXISTS idx_dim_locations_combo
		 ON dim_locations (district_name, oblast_name, city_name)`,

		// Комбинированный поиск должностей
		`CREATE INDEX IF NOT EXISTS idx_dim_jobs_combo
		 ON dim_jobs (standard_job_role_title, hierarchy_level_name, industry_field_id)`,
	}

	for _, sql := range indexes {
		if err := db.Exec(sql).Error; err != nil {
			return err
		}
	}

	return nil
}
