// internal/app/analytics/engine.go
package analytics

import (
	"context"
	"math"
	"sort"
	"time"

	"MarketStat-Backend/internal/app/ds"

	"github.com/shopspring/decimal"
)

// FactScanner отдает отфильтрованные проекции фактов зарплат.
// Реализуется репозиторием фактов
type FactScanner interface {
	ScanFacts(ctx context.Context, filter *ds.ResolvedSalaryFilter) ([]ds.SalaryFactRow, error)
}

// Engine движок агрегации: считает сводную статистику, распределение,
// временные ряды и публичные группы по отфильтрованным фактам.
// Состояния между запросами не хранит
type Engine struct {
	scanner FactScanner
}

func NewEngine(scanner FactScanner) *Engine {
	return &Engine{scanner: scanner}
}

// Summary считает сводную статистику по фильтру.
// targetPercentile должен быть в диапазоне 0..100 (проверяется на границе API)
func (e *Engine) Summary(ctx context.Context, filter *ds.ResolvedSalaryFilter, targetPercentile int) (ds.SalaryStats, error) {
	rows, err := e.scanner.ScanFacts(ctx, filter)
	if err != nil {
		return ds.SalaryStats{}, err
	}
	return computeStats(amountsOf(rows), targetPercentile), nil
}

// Distribution строит гистограмму равношироких корзин.
// bucketCount <= 0 включает автоматический подбор числа корзин
func (e *Engine) Distribution(ctx context.Context, filter *ds.ResolvedSalaryFilter, bucketCount int) ([]ds.SalaryDistributionBucket, error) {
	rows, err := e.scanner.ScanFacts(ctx, filter)
	if err != nil {
		return nil, err
	}
	return buildDistribution(amountsOf(rows), bucketCount), nil
}

// TimeSeries строит временной ряд из periods точек, по одной на период,
// заканчивающийся периодом даты конца фильтра (или сегодняшним днем)
func (e *Engine) TimeSeries(ctx context.Context, filter *ds.ResolvedSalaryFilter, granularity ds.Granularity, periods int) ([]ds.SalaryTimeSeriesPoint, error) {
	rows, err := e.scanner.ScanFacts(ctx, filter)
	if err != nil {
		return nil, err
	}
	ref := referenceDate(filter)
	return buildTimeSeries(rows, granularity, periods, ref), nil
}

// RankedGroups группирует факты по стандартной роли и отбрасывает группы
// меньше minCount записей
func (e *Engine) RankedGroups(ctx context.Context, filter *ds.ResolvedSalaryFilter, minCount int) ([]ds.PublicRoleGroup, error) {
	rows, err := e.scanner.ScanFacts(ctx, filter)
	if err != nil {
		return nil, err
	}
	return groupRoles(rows, minCount), nil
}

func amountsOf(rows []ds.SalaryFactRow) []decimal.Decimal {
	amounts := make([]decimal.Decimal, len(rows))
	for i, row := range rows {
		amounts[i] = row.SalaryAmount
	}
	return amounts
}

func referenceDate(filter *ds.ResolvedSalaryFilter) time.Time {
	if filter != nil && filter.DateEnd != nil {
		return *filter.DateEnd
	}
	return time.Now().UTC()
}

// computeStats считает статистику по несортированным суммам.
// Пустой вход дает нулевую статистику с Count=0, без деления на ноль
func computeStats(amounts []decimal.Decimal, targetPercentile int) ds.SalaryStats {
	stats := ds.SalaryStats{TargetPercentile: targetPercentile}
	if len(amounts) == 0 {
		return stats
	}

	sorted := make([]decimal.Decimal, len(amounts))
	copy(sorted, amounts)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].LessThan(sorted[j]) })

	sum := decimal.Zero
	for _, a := range sorted {
		sum = sum.Add(a)
	}

	stats.Count = len(sorted)
	stats.Min = sorted[0]
	stats.Max = sorted[len(sorted)-1]
	stats.Mean = sum.Div(decimal.NewFromInt(int64(len(sorted)))).Round(2)
	stats.Median = percentile(sorted, 50)
	stats.P25 = percentile(sorted, 25)
	stats.P75 = percentile(sorted, 75)
	stats.PercentileValue = percentile(sorted, targetPercentile)
	return stats
}

// percentile считает перцентиль методом R-7 (линейная интерполяция
// между порядковыми статистиками): rank = p/100*(n-1)
func percentile(sorted []decimal.Decimal, p int) decimal.Decimal {
	n := len(sorted)
	if n == 0 {
		return decimal.Zero
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 100 {
		return sorted[n-1]
	}

	rank := float64(p) / 100.0 * float64(n-1)
	lower := int(math.Floor(rank))
	upper := int(math.Ceil(rank))
	if lower == upper {
		return sorted[lower]
	}

	weight := decimal.NewFromFloat(rank - float64(lower))
	return sorted[lower].Add(sorted[upper].Sub(sorted[lower]).Mul(weight)).Round(2)
}

// buildDistribution строит равноширокие корзины на отрезке [min, max].
// Каждая сумма попадает ровно в одну корзину: границы полуоткрыты,
// последняя корзина закрыта сверху на максимуме
func buildDistribution(amounts []decimal.Decimal, bucketCount int) []ds.SalaryDistributionBucket {
	if len(amounts) == 0 {
		return []ds.SalaryDistributionBucket{}
	}

	minVal := amounts[0]
	maxVal := amounts[0]
	for _, a := range amounts[1:] {
		if a.LessThan(minVal) {
			minVal = a
		}
		if a.GreaterThan(maxVal) {
			maxVal = a
		}
	}

	if len(amounts) == 1 || minVal.Equal(maxVal) {
		return []ds.SalaryDistributionBucket{
			{LowerBound: minVal, UpperBound: maxVal, Count: len(amounts)},
		}
	}

	if bucketCount <= 0 {
		// Правило Стёрджеса: floor(log2 n) + 2, но не меньше двух корзин
		bucketCount = int(math.Floor(math.Log2(float64(len(amounts))))) + 2
		if bucketCount < 2 {
			bucketCount = 2
		}
	}

	delta := maxVal.Sub(minVal).Div(decimal.NewFromInt(int64(bucketCount)))

	counts := make([]int, bucketCount)
	for _, a := range amounts {
		idx := int(a.Sub(minVal).Div(delta).IntPart())
		if idx >= bucketCount {
			idx = bucketCount - 1
		}
		if idx < 0 {
			idx = 0
		}
		counts[idx]++
	}

	buckets := make([]ds.SalaryDistributionBucket, 0, bucketCount)
	for i := 0; i < bucketCount; i++ {
		lower := minVal.Add(delta.Mul(decimal.NewFromInt(int64(i))))
		upper := lower.Add(delta)
		if i == bucketCount-1 {
			upper = maxVal
		}
		buckets = append(buckets, ds.SalaryDistributionBucket{
			LowerBound: lower,
			UpperBound: upper,
			Count:      counts[i],
		})
	}

	return buckets
}

// buildTimeSeries строит плотный ряд ровно из periods точек по возрастанию
// даты. Периоды без записей не пропускаются: у них AvgSalary=nil и Count=0
func buildTimeSeries(rows []ds.SalaryFactRow, granularity ds.Granularity, periods int, referenceDate time.Time) []ds.SalaryTimeSeriesPoint {
	seriesEnd := truncateToPeriod(referenceDate, granularity)
	seriesStart := addPeriods(seriesEnd, granularity, -(periods - 1))
	seriesLimit := addPeriods(seriesEnd, granularity, 1)

	type periodAgg struct {
		sum   decimal.Decimal
		count int
	}
	byPeriod := make(map[time.Time]*periodAgg)
	for _, row := range rows {
		period := truncateToPeriod(row.FactDate, granularity)
		if period.Before(seriesStart) || !period.Before(seriesLimit) {
			continue
		}
		agg, found := byPeriod[period]
		if !found {
			agg = &periodAgg{sum: decimal.Zero}
			byPeriod[period] = agg
		}
		agg.sum = agg.sum.Add(row.SalaryAmount)
		agg.count++
	}

	series := make([]ds.SalaryTimeSeriesPoint, 0, periods)
	current := seriesStart
	for i := 0; i < periods; i++ {
		point := ds.SalaryTimeSeriesPoint{PeriodStart: current}
		if agg, found := byPeriod[current]; found && agg.count > 0 {
			avg := agg.sum.Div(decimal.NewFromInt(int64(agg.count))).Round(2)
			point.AvgSalary = &avg
			point.Count = agg.count
		}
		series = append(series, point)
		current = addPeriods(current, granularity, 1)
	}

	return series
}

// emptyTimeSeries полноразмерный ряд без данных - для исхода
// "фильтр заведомо пуст"
func emptyTimeSeries(granularity ds.Granularity, periods int, referenceDate time.Time) []ds.SalaryTimeSeriesPoint {
	return buildTimeSeries(nil, granularity, periods, referenceDate)
}

// truncateToPeriod приводит дату к началу ее периода в UTC.
// Недели начинаются с понедельника (ISO 8601)
func truncateToPeriod(date time.Time, granularity ds.Granularity) time.Time {
	year, month, day := date.Date()
	switch granularity {
	case ds.GranularityDay:
		return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	case ds.GranularityWeek:
		d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		offset := (int(d.Weekday()) + 6) % 7
		return d.AddDate(0, 0, -offset)
	case ds.GranularityQuarter:
		quarterMonth := time.Month(((int(month)-1)/3)*3 + 1)
		return time.Date(year, quarterMonth, 1, 0, 0, 0, 0, time.UTC)
	case ds.GranularityYear:
		return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	default:
		return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	}
}

func addPeriods(date time.Time, granularity ds.Granularity, count int) time.Time {
	switch granularity {
	case ds.GranularityDay:
		return date.AddDate(0, 0, count)
	case ds.GranularityWeek:
		return date.AddDate(0, 0, 7*count)
	case ds.GranularityQuarter:
		return date.AddDate(0, 3*count, 0)
	case ds.GranularityYear:
		return date.AddDate(count, 0, 0)
	default:
		return date.AddDate(0, count, 0)
	}
}

// groupRoles группирует по стандартной роли с порогом минимального числа
// записей. Группы отсортированы по названию роли - порядок стабилен
func groupRoles(rows []ds.SalaryFactRow, minCount int) []ds.PublicRoleGroup {
	type roleAgg struct {
		sum   decimal.Decimal
		count int
	}
	byRole := make(map[string]*roleAgg)
	for _, row := range rows {
		agg, found := byRole[row.StandardJobRoleTitle]
		if !found {
			agg = &roleAgg{sum: decimal.Zero}
			byRole[row.StandardJobRoleTitle] = agg
		}
		agg.sum = agg.sum.Add(row.SalaryAmount)
		agg.count++
	}

	titles := make([]string, 0, len(byRole))
	for title, agg := range byRole {
		if agg.count >= minCount {
			titles = append(titles, title)
		}
	}
	sort.Strings(titles)

	groups := make([]ds.PublicRoleGroup, 0, len(titles))
	for _, title := range titles {
		agg := byRole[title]
		groups = append(groups, ds.PublicRoleGroup{
			StandardJobRoleTitle: title,
			AverageSalary:        agg.sum.Div(decimal.NewFromInt(int64(agg.count))).Round(2),
			Count:                agg.count,
		})
	}

	return groups
}
