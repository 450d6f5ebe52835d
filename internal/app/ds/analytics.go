// internal/app/ds/analytics.go
package ds

import (
	"time"

	"github.com/shopspring/decimal"
)

// Значения по умолчанию для аналитических запросов
const (
	DefaultTargetPercentile = 90
	DefaultPeriods          = 12
	DefaultMinRecordCount   = 10
)

// Granularity гранулярность временного ряда
type Granularity string

const (
	GranularityDay     Granularity = "day"
	GranularityWeek    Granularity = "week"
	GranularityMonth   Granularity = "month"
	GranularityQuarter Granularity = "quarter"
	GranularityYear    Granularity = "year"
)

// Valid проверяет, что гранулярность одна из поддерживаемых
func (g Granularity) Valid() bool {
	switch g {
	case GranularityDay, GranularityWeek, GranularityMonth, GranularityQuarter, GranularityYear:
		return true
	}
	return false
}

// SalaryFilter пользовательский фильтр по человекочитаемым названиям.
// Пустая строка / nil означают "без ограничения по этому измерению"
type SalaryFilter struct {
	StandardJobRoleTitle string     `json:"standard_job_role_title,omitempty"`
	HierarchyLevelName   string     `json:"hierarchy_level_name,omitempty"`
	IndustryFieldName    string     `json:"industry_field_name,omitempty"`
	DistrictName         string     `json:"district_name,omitempty"`
	OblastName           string     `json:"oblast_name,omitempty"`
	CityName             string     `json:"city_name,omitempty"`
	DateStart            *time.Time `json:"date_start,omitempty"`
	DateEnd              *time.Time `json:"date_end,omitempty"`
}

// ResolvedSalaryFilter фильтр, разрешенный в ID измерений.
// nil-срез означает "без ограничения", в отличие от пустого среза:
// случай "названия ничего не нашли" до этой структуры не доходит,
// резолвер возвращает его отдельным исходом
type ResolvedSalaryFilter struct {
	LocationIDs []int      `json:"location_ids,omitempty"`
	JobIDs      []int      `json:"job_ids,omitempty"`
	DateStart   *time.Time `json:"date_start,omitempty"`
	DateEnd     *time.Time `json:"date_end,omitempty"`
}

// SalaryStats сводная статистика по отфильтрованным зарплатам
type SalaryStats struct {
	Count            int             `json:"count"`
	Min              decimal.Decimal `json:"min"`
	Max              decimal.Decimal `json:"max"`
	Mean             decimal.Decimal `json:"mean"`
	Median           decimal.Decimal `json:"median"`
	P25              decimal.Decimal `json:"p25"`
	P75              decimal.Decimal `json:"p75"`
	TargetPercentile int             `json:"target_percentile"`
	PercentileValue  decimal.Decimal `json:"percentile_value"`
}

// SalaryDistributionBucket корзина гистограммы распределения.
// Верхняя граница исключается, кроме последней корзины - она закрыта,
// чтобы максимум попадал в распределение
type SalaryDistributionBucket struct {
	LowerBound decimal.Decimal `json:"lower_bound"`
	UpperBound decimal.Decimal `json:"upper_bound"`
	Count      int             `json:"count"`
}

// SalaryTimeSeriesPoint точка временного ряда.
// AvgSalary равен nil для периодов без записей - период при этом
// остается в ряду, ось времени непрерывна
type SalaryTimeSeriesPoint struct {
	PeriodStart time.Time        `json:"period_start"`
	AvgSalary   *decimal.Decimal `json:"avg_salary"`
	Count       int              `json:"count"`
}

// PublicRoleGroup публичная агрегированная группа по стандартной роли.
// Группы с числом записей меньше порога не публикуются
type PublicRoleGroup struct {
	StandardJobRoleTitle string          `json:"standard_job_role_title"`
	AverageSalary        decimal.Decimal `json:"average_salary"`
	Count                int             `json:"count"`
}
