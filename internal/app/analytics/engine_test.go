package analytics

import (
	"context"
	"testing"
	"time"

	"MarketStat-Backend/internal/app/ds"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type stubScanner struct {
	rows   []ds.SalaryFactRow
	err    error
	called bool
}

func (s *stubScanner) ScanFacts(_ context.Context, _ *ds.ResolvedSalaryFilter) ([]ds.SalaryFactRow, error) {
	s.called = true
	return s.rows, s.err
}

func amounts(values ...float64) []decimal.Decimal {
	out := make([]decimal.Decimal, len(values))
	for i, v := range values {
		out[i] = decimal.NewFromFloat(v)
	}
	return out
}

func rowsWithAmounts(values ...float64) []ds.SalaryFactRow {
	date := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	rows := make([]ds.SalaryFactRow, len(values))
	for i, v := range values {
		rows[i] = ds.SalaryFactRow{
			FactDate:             date,
			StandardJobRoleTitle: "Аналитик",
			SalaryAmount:         decimal.NewFromFloat(v),
		}
	}
	return rows
}

func TestSummaryFixture(t *testing.T) {
	scanner := &stubScanner{rows: rowsWithAmounts(100, 200, 300, 400, 500)}
	engine := NewEngine(scanner)

	stats, err := engine.Summary(context.Background(), &ds.ResolvedSalaryFilter{}, 75)

	require.NoError(t, err)
	require.Equal(t, 5, stats.Count)
	require.True(t, stats.Min.Equal(decimal.NewFromInt(100)))
	require.True(t, stats.Max.Equal(decimal.NewFromInt(500)))
	require.True(t, stats.Mean.Equal(decimal.NewFromInt(300)))
	require.True(t, stats.Median.Equal(decimal.NewFromInt(300)))
	// rank = 0.75*(5-1) = 3.0, интерполяция не нужна
	require.True(t, stats.PercentileValue.Equal(decimal.NewFromInt(400)))
}

func TestSummaryEmptyInput(t *testing.T) {
	engine := NewEngine(&stubScanner{})

	stats, err := engine.Summary(context.Background(), &ds.ResolvedSalaryFilter{}, 90)

	require.NoError(t, err)
	require.Zero(t, stats.Count)
	require.True(t, stats.Mean.IsZero())
	require.True(t, stats.PercentileValue.IsZero())
}

func TestPercentileIdentities(t *testing.T) {
	sorted := amounts(80, 95.5, 120, 150, 210, 340, 890)

	require.True(t, percentile(sorted, 0).Equal(sorted[0]), "p0 == min")
	require.True(t, percentile(sorted, 100).Equal(sorted[len(sorted)-1]), "p100 == max")
	require.True(t, percentile(sorted, 50).Equal(sorted[3]), "p50 == медиана при нечетном n")
}

func TestPercentileInterpolates(t *testing.T) {
	sorted := amounts(100, 200)

	// rank = 0.5, ровно между соседними значениями
	require.True(t, percentile(sorted, 50).Equal(decimal.NewFromInt(150)))
	// rank = 0.9
	require.True(t, percentile(sorted, 90).Equal(decimal.NewFromInt(190)))
}

func TestDistributionFixture(t *testing.T) {
	buckets := buildDistribution(amounts(10, 20, 30), 2)

	require.Len(t, buckets, 2)
	require.True(t, buckets[0].LowerBound.Equal(decimal.NewFromInt(10)))
	require.True(t, buckets[0].UpperBound.Equal(decimal.NewFromInt(20)))
	require.Equal(t, 1, buckets[0].Count, "[10,20) содержит только 10")
	require.True(t, buckets[1].UpperBound.Equal(decimal.NewFromInt(30)))
	require.Equal(t, 2, buckets[1].Count, "последняя корзина закрыта, 30 попадает в нее")
}

func TestDistributionPartitionsAllRecords(t *testing.T) {
	values := []float64{12.5, 99.99, 340, 17, 55.5, 140, 270, 89, 33.33, 410, 67, 155}
	buckets := buildDistribution(amounts(values...), 0)

	total := 0
	for _, b := range buckets {
		total += b.Count
	}
	require.Equal(t, len(values), total, "каждая запись ровно в одной корзине")
	require.GreaterOrEqual(t, len(buckets), 2)

	for i := 1; i < len(buckets); i++ {
		require.True(t, buckets[i].LowerBound.Equal(buckets[i-1].UpperBound), "корзины без разрывов")
	}
}

func TestDistributionSingleValue(t *testing.T) {
	buckets := buildDistribution(amounts(150, 150, 150), 4)

	require.Len(t, buckets, 1)
	require.Equal(t, 3, buckets[0].Count)
	require.True(t, buckets[0].LowerBound.Equal(buckets[0].UpperBound))
}

func TestDistributionEmpty(t *testing.T) {
	require.Empty(t, buildDistribution(nil, 3))
}

func TestTimeSeriesDense(t *testing.T) {
	rows := []ds.SalaryFactRow{
		{FactDate: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), SalaryAmount: decimal.NewFromInt(100)},
		{FactDate: time.Date(2024, 3, 25, 0, 0, 0, 0, time.UTC), SalaryAmount: decimal.NewFromInt(200)},
		{FactDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), SalaryAmount: decimal.NewFromInt(300)},
	}
	ref := time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC)

	series := buildTimeSeries(rows, ds.GranularityMonth, 6, ref)

	require.Len(t, series, 6, "ровно periods точек независимо от разреженности данных")
	require.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), series[0].PeriodStart)
	require.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), series[5].PeriodStart)

	for i := 1; i < len(series); i++ {
		require.True(t, series[i].PeriodStart.After(series[i-1].PeriodStart), "ряд по возрастанию")
	}

	// Март: среднее 150 по двум записям
	require.Equal(t, 2, series[2].Count)
	require.NotNil(t, series[2].AvgSalary)
	require.True(t, series[2].AvgSalary.Equal(decimal.NewFromInt(150)))

	// Апрель пустой, но присутствует в ряду
	require.Zero(t, series[3].Count)
	require.Nil(t, series[3].AvgSalary)

	require.Equal(t, 1, series[5].Count)
}

func TestTimeSeriesQuarterTruncation(t *testing.T) {
	rows := []ds.SalaryFactRow{
		{FactDate: time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC), SalaryAmount: decimal.NewFromInt(100)},
	}
	ref := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	series := buildTimeSeries(rows, ds.GranularityQuarter, 2, ref)

	require.Len(t, series, 2)
	require.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), series[0].PeriodStart)
	require.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), series[1].PeriodStart)
	require.Equal(t, 1, series[1].Count)
}

func TestTimeSeriesWeekStartsMonday(t *testing.T) {
	// 19 июня 2024 - среда, начало ISO-недели 17 июня
	ref := time.Date(2024, 6, 19, 0, 0, 0, 0, time.UTC)

	series := buildTimeSeries(nil, ds.GranularityWeek, 1, ref)

	require.Len(t, series, 1)
	require.Equal(t, time.Date(2024, 6, 17, 0, 0, 0, 0, time.UTC), series[0].PeriodStart)
	require.Equal(t, time.Monday, series[0].PeriodStart.Weekday())
}

func TestTimeSeriesIgnoresRowsOutsideWindow(t *testing.T) {
	rows := []ds.SalaryFactRow{
		{FactDate: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), SalaryAmount: decimal.NewFromInt(999)},
	}
	ref := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	series := buildTimeSeries(rows, ds.GranularityMonth, 3, ref)

	for _, point := range series {
		require.Zero(t, point.Count)
		require.Nil(t, point.AvgSalary)
	}
}

func TestRankedGroupsThreshold(t *testing.T) {
	var rows []ds.SalaryFactRow
	date := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		rows = append(rows, ds.SalaryFactRow{FactDate: date, StandardJobRoleTitle: "A", SalaryAmount: decimal.NewFromInt(100)})
	}
	for i := 0; i < 8; i++ {
		rows = append(rows, ds.SalaryFactRow{FactDate: date, StandardJobRoleTitle: "B", SalaryAmount: decimal.NewFromInt(200)})
	}

	groups := groupRoles(rows, 10)

	require.Len(t, groups, 1, "группа B меньше порога и не публикуется")
	require.Equal(t, "A", groups[0].StandardJobRoleTitle)
	require.Equal(t, 12, groups[0].Count)
	require.True(t, groups[0].AverageSalary.Equal(decimal.NewFromInt(100)))
}

func TestRankedGroupsOrderedByTitle(t *testing.T) {
	date := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	rows := []ds.SalaryFactRow{
		{FactDate: date, StandardJobRoleTitle: "Тестировщик", SalaryAmount: decimal.NewFromInt(500)},
		{FactDate: date, StandardJobRoleTitle: "Аналитик", SalaryAmount: decimal.NewFromInt(100)},
		{FactDate: date, StandardJobRoleTitle: "Разработчик", SalaryAmount: decimal.NewFromInt(900)},
	}

	groups := groupRoles(rows, 1)

	require.Len(t, groups, 3)
	require.Equal(t, "Аналитик", groups[0].StandardJobRoleTitle)
	require.Equal(t, "Разработчик", groups[1].StandardJobRoleTitle)
	require.Equal(t, "Тестировщик", groups[2].StandardJobRoleTitle)
}

// Сквозной сценарий: фильтр по несуществующему городу дает пустые формы
// всех четырех операций без обращения к таблице фактов
func TestServiceEmptyResolutionShapes(t *testing.T) {
	scanner := &stubScanner{rows: rowsWithAmounts(100, 200)}
	resolver := newTestResolver(&stubLocations{ids: nil}, nil, nil)
	service := NewService(resolver, NewEngine(scanner))

	filter := ds.SalaryFilter{CityName: "Atlantis"}
	ctx := context.Background()

	stats, err := service.GetSummary(ctx, filter, 90)
	require.NoError(t, err)
	require.Zero(t, stats.Count)

	buckets, err := service.GetDistribution(ctx, filter, 4)
	require.NoError(t, err)
	require.Empty(t, buckets)

	series, err := service.GetTimeSeries(ctx, filter, ds.GranularityMonth, 12)
	require.NoError(t, err)
	require.Len(t, series, 12, "ряд остается полноразмерным")
	for _, point := range series {
		require.Zero(t, point.Count)
		require.Nil(t, point.AvgSalary)
	}

	groups, err := service.GetRankedGroups(ctx, filter, 10)
	require.NoError(t, err)
	require.Empty(t, groups)

	require.False(t, scanner.called, "при пустом разрешении фильтра скан фактов не выполняется")
}

func TestServicePassesResolvedFilterToEngine(t *testing.T) {
	scanner := &stubScanner{rows: rowsWithAmounts(100, 300)}
	resolver := newTestResolver(&stubLocations{ids: []int{5}}, nil, nil)
	service := NewService(resolver, NewEngine(scanner))

	stats, err := service.GetSummary(context.Background(), ds.SalaryFilter{CityName: "Казань"}, 90)

	require.NoError(t, err)
	require.Equal(t, 2, stats.Count)
	require.True(t, stats.Mean.Equal(decimal.NewFromInt(200)))
	require.True(t, scanner.called)
}
