// internal/app/analytics/service.go
package analytics

import (
	"context"
	"time"

	"MarketStat-Backend/internal/app/ds"

	"github.com/sirupsen/logrus"
)

// Service аналитический сервис: разрешает пользовательский фильтр
// и считает запрошенную агрегацию. Исход "названия ничего не нашли"
// превращается в пустую форму результата соответствующей операции,
// таблица фактов при этом не сканируется
type Service struct {
	resolver *FilterResolver
	engine   *Engine
}

func NewService(resolver *FilterResolver, engine *Engine) *Service {
	return &Service{
		resolver: resolver,
		engine:   engine,
	}
}

// GetSummary возвращает сводную статистику. При пустом разрешении фильтра -
// нулевая статистика с Count=0
func (s *Service) GetSummary(ctx context.Context, filter ds.SalaryFilter, targetPercentile int) (ds.SalaryStats, error) {
	resolved, ok, err := s.resolver.Resolve(ctx, filter)
	if err != nil {
		return ds.SalaryStats{}, err
	}
	if !ok {
		logrus.Debug("analytics: filter matched no dimensions, returning zero summary")
		return ds.SalaryStats{TargetPercentile: targetPercentile}, nil
	}
	return s.engine.Summary(ctx, resolved, targetPercentile)
}

// GetDistribution возвращает гистограмму распределения.
// При пустом разрешении фильтра - пустой список корзин
func (s *Service) GetDistribution(ctx context.Context, filter ds.SalaryFilter, bucketCount int) ([]ds.SalaryDistributionBucket, error) {
	resolved, ok, err := s.resolver.Resolve(ctx, filter)
	if err != nil {
		return nil, err
	}
	if !ok {
		logrus.Debug("analytics: filter matched no dimensions, returning empty distribution")
		return []ds.SalaryDistributionBucket{}, nil
	}
	return s.engine.Distribution(ctx, resolved, bucketCount)
}

// GetTimeSeries возвращает временной ряд ровно из periods точек.
// При пустом разрешении фильтра ряд остается полноразмерным,
// но все точки без данных
func (s *Service) GetTimeSeries(ctx context.Context, filter ds.SalaryFilter, granularity ds.Granularity, periods int) ([]ds.SalaryTimeSeriesPoint, error) {
	resolved, ok, err := s.resolver.Resolve(ctx, filter)
	if err != nil {
		return nil, err
	}
	if !ok {
		logrus.Debug("analytics: filter matched no dimensions, returning empty time series")
		ref := time.Now().UTC()
		if filter.DateEnd != nil {
			ref = *filter.DateEnd
		}
		return emptyTimeSeries(granularity, periods, ref), nil
	}
	return s.engine.TimeSeries(ctx, resolved, granularity, periods)
}

// GetRankedGroups возвращает публичные группы по стандартным ролям.
// При пустом разрешении фильтра - пустой список
func (s *Service) GetRankedGroups(ctx context.Context, filter ds.SalaryFilter, minCount int) ([]ds.PublicRoleGroup, error) {
	resolved, ok, err := s.resolver.Resolve(ctx, filter)
	if err != nil {
		return nil, err
	}
	if !ok {
		logrus.Debug("analytics: filter matched no dimensions, returning empty role groups")
		return []ds.PublicRoleGroup{}, nil
	}
	return s.engine.RankedGroups(ctx, resolved, minCount)
}

// GetFacts возвращает сырые отфильтрованные проекции фактов.
// При пустом разрешении фильтра - пустой список
func (s *Service) GetFacts(ctx context.Context, filter ds.SalaryFilter) ([]ds.SalaryFactRow, error) {
	resolved, ok, err := s.resolver.Resolve(ctx, filter)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []ds.SalaryFactRow{}, nil
	}
	return s.engine.scanner.ScanFacts(ctx, resolved)
}
