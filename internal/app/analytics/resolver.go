// internal/app/analytics/resolver.go
package analytics

import (
	"context"

	"MarketStat-Backend/internal/app/ds"

	"github.com/sirupsen/logrus"
)

// LocationIDResolver ищет ID локаций по комбинации названий.
// Пустые строки означают отсутствие ограничения по соответствующему полю
type LocationIDResolver interface {
	GetLocationIDsByFilter(ctx context.Context, districtName, oblastName, cityName string) ([]int, error)
}

// IndustryResolver ищет отрасль по точному названию.
// Возвращает found=false, если отрасли с таким названием нет
type IndustryResolver interface {
	GetIndustryFieldIDByName(ctx context.Context, name string) (int, bool, error)
}

// JobIDResolver ищет ID должностей по комбинации критериев.
// industryFieldID равный нулю означает отсутствие ограничения по отрасли
type JobIDResolver interface {
	GetJobIDsByFilter(ctx context.Context, standardJobRoleTitle, hierarchyLevelName string, industryFieldID int) ([]int, error)
}

// FilterResolver переводит пользовательский фильтр по названиям
// в фильтр по ID измерений
type FilterResolver struct {
	locations  LocationIDResolver
	industries IndustryResolver
	jobs       JobIDResolver
}

func NewFilterResolver(locations LocationIDResolver, industries IndustryResolver, jobs JobIDResolver) *FilterResolver {
	return &FilterResolver{
		locations:  locations,
		industries: industries,
		jobs:       jobs,
	}
}

// Resolve разрешает фильтр по названиям в ResolvedSalaryFilter.
// Второй результат отличает два исхода, которые нельзя смешивать:
// ok=true - фильтр разрешен (nil-срезы в нем значат "без ограничения"),
// ok=false при nil-ошибке - какое-то из указанных названий не нашло
// ни одной строки измерения, результат запроса заведомо пуст и
// сканировать таблицу фактов не нужно.
// Ошибки коллабораторов возвращаются без изменений
func (r *FilterResolver) Resolve(ctx context.Context, filter ds.SalaryFilter) (*ds.ResolvedSalaryFilter, bool, error) {
	var locationIDs []int
	locationApplied := false

	if filter.DistrictName != "" || filter.OblastName != "" || filter.CityName != "" {
		locationApplied = true
		ids, err := r.locations.GetLocationIDsByFilter(ctx, filter.DistrictName, filter.OblastName, filter.CityName)
		if err != nil {
			return nil, false, err
		}
		if len(ids) == 0 {
			logrus.Debugf("FilterResolver: no locations matched (district=%q, oblast=%q, city=%q)",
				filter.DistrictName, filter.OblastName, filter.CityName)
			return nil, false, nil
		}
		locationIDs = ids
	}

	// Отрасль не входит в итоговый фильтр напрямую,
	// она только сужает поиск должностей
	industryFieldID := 0
	if filter.IndustryFieldName != "" {
		id, found, err := r.industries.GetIndustryFieldIDByName(ctx, filter.IndustryFieldName)
		if err != nil {
			return nil, false, err
		}
		if !found {
			logrus.Debugf("FilterResolver: unknown industry field %q", filter.IndustryFieldName)
			return nil, false, nil
		}
		industryFieldID = id
	}

	var jobIDs []int
	jobApplied := false

	if filter.StandardJobRoleTitle != "" || filter.HierarchyLevelName != "" || industryFieldID != 0 {
		jobApplied = true
		ids, err := r.jobs.GetJobIDsByFilter(ctx, filter.StandardJobRoleTitle, filter.HierarchyLevelName, industryFieldID)
		if err != nil {
			return nil, false, err
		}
		if len(ids) == 0 {
			logrus.Debugf("FilterResolver: no jobs matched (role=%q, level=%q, industry_id=%d)",
				filter.StandardJobRoleTitle, filter.HierarchyLevelName, industryFieldID)
			return nil, false, nil
		}
		jobIDs = ids
	}

	resolved := &ds.ResolvedSalaryFilter{
		DateStart: filter.DateStart,
		DateEnd:   filter.DateEnd,
	}
	if locationApplied {
		resolved.LocationIDs = locationIDs
	}
	if jobApplied {
		resolved.JobIDs = jobIDs
	}

	return resolved, true, nil
}
