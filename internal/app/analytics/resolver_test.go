package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"MarketStat-Backend/internal/app/ds"

	"github.com/stretchr/testify/require"
)

type stubLocations struct {
	ids []int
	err error

	gotDistrict string
	gotOblast   string
	gotCity     string
}

func (s *stubLocations) GetLocationIDsByFilter(_ context.Context, district, oblast, city string) ([]int, error) {
	s.gotDistrict = district
	s.gotOblast = oblast
	s.gotCity = city
	return s.ids, s.err
}

type stubIndustries struct {
	id    int
	found bool
	err   error
}

func (s *stubIndustries) GetIndustryFieldIDByName(_ context.Context, _ string) (int, bool, error) {
	return s.id, s.found, s.err
}

type stubJobs struct {
	ids []int
	err error

	gotRole       string
	gotLevel      string
	gotIndustryID int
}

func (s *stubJobs) GetJobIDsByFilter(_ context.Context, role, level string, industryID int) ([]int, error) {
	s.gotRole = role
	s.gotLevel = level
	s.gotIndustryID = industryID
	return s.ids, s.err
}

func newTestResolver(loc *stubLocations, ind *stubIndustries, jobs *stubJobs) *FilterResolver {
	if loc == nil {
		loc = &stubLocations{}
	}
	if ind == nil {
		ind = &stubIndustries{}
	}
	if jobs == nil {
		jobs = &stubJobs{}
	}
	return NewFilterResolver(loc, ind, jobs)
}

func TestResolveUnconstrained(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	resolver := newTestResolver(nil, nil, nil)
	resolved, ok, err := resolver.Resolve(context.Background(), ds.SalaryFilter{
		DateStart: &start,
		DateEnd:   &end,
	})

	require.NoError(t, err)
	require.True(t, ok)
	require.Nil(t, resolved.LocationIDs, "без названий локаций ограничения быть не должно")
	require.Nil(t, resolved.JobIDs)
	require.Equal(t, &start, resolved.DateStart)
	require.Equal(t, &end, resolved.DateEnd)
}

func TestResolveUnknownCity(t *testing.T) {
	resolver := newTestResolver(&stubLocations{ids: nil}, nil, nil)

	resolved, ok, err := resolver.Resolve(context.Background(), ds.SalaryFilter{CityName: "Atlantis"})

	require.NoError(t, err)
	require.False(t, ok, "несуществующий город должен давать пустой исход, а не ошибку")
	require.Nil(t, resolved)
}

func TestResolvePartialLocationCombination(t *testing.T) {
	loc := &stubLocations{ids: []int{3, 7}}
	resolver := newTestResolver(loc, nil, nil)

	resolved, ok, err := resolver.Resolve(context.Background(), ds.SalaryFilter{OblastName: "Московская область"})

	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []int{3, 7}, resolved.LocationIDs)
	require.Empty(t, loc.gotDistrict)
	require.Equal(t, "Московская область", loc.gotOblast)
	require.Empty(t, loc.gotCity)
}

func TestResolveIndustryFeedsJobLookup(t *testing.T) {
	jobs := &stubJobs{ids: []int{11, 12}}
	resolver := newTestResolver(nil, &stubIndustries{id: 42, found: true}, jobs)

	resolved, ok, err := resolver.Resolve(context.Background(), ds.SalaryFilter{IndustryFieldName: "IT"})

	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 42, jobs.gotIndustryID, "ID отрасли должен уходить в поиск должностей")
	require.Equal(t, []int{11, 12}, resolved.JobIDs)
	require.Nil(t, resolved.LocationIDs)
}

func TestResolveUnknownIndustryIsEmptyOutcome(t *testing.T) {
	resolver := newTestResolver(nil, &stubIndustries{found: false}, nil)

	_, ok, err := resolver.Resolve(context.Background(), ds.SalaryFilter{IndustryFieldName: "Ловля единорогов"})

	require.NoError(t, err)
	require.False(t, ok)
}

func TestResolveNoJobsMatched(t *testing.T) {
	resolver := newTestResolver(nil, nil, &stubJobs{ids: []int{}})

	_, ok, err := resolver.Resolve(context.Background(), ds.SalaryFilter{StandardJobRoleTitle: "Разработчик"})

	require.NoError(t, err)
	require.False(t, ok)
}

func TestResolveLocationShortCircuitsBeforeJobs(t *testing.T) {
	jobs := &stubJobs{ids: []int{1}}
	resolver := newTestResolver(&stubLocations{ids: nil}, nil, jobs)

	_, ok, err := resolver.Resolve(context.Background(), ds.SalaryFilter{
		CityName:             "Atlantis",
		StandardJobRoleTitle: "Разработчик",
	})

	require.NoError(t, err)
	require.False(t, ok)
	require.Empty(t, jobs.gotRole, "после провала локаций поиск должностей не должен вызываться")
}

func TestResolvePropagatesCollaboratorError(t *testing.T) {
	lookupErr := errors.New("connection refused")
	resolver := newTestResolver(&stubLocations{err: lookupErr}, nil, nil)

	_, _, err := resolver.Resolve(context.Background(), ds.SalaryFilter{CityName: "Казань"})

	require.ErrorIs(t, err, lookupErr)
}
