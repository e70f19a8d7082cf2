package dashboard_test

import (
	"context"
	"testing"

	"go-salarydash/internal/dashboard"
	"go-salarydash/internal/dataset"
	dataseterrors "go-salarydash/internal/dataset/errors"

	"github.com/stretchr/testify/assert"
)

type fakeRecordSource struct {
	recordsFn func(ctx context.Context) ([]dataset.Record, error)
	facetsFn  func(ctx context.Context) (dataset.Facets, error)
}

func (f *fakeRecordSource) Records(ctx context.Context) ([]dataset.Record, error) {
	if f.recordsFn != nil {
		return f.recordsFn(ctx)
	}
	return nil, nil
}

func (f *fakeRecordSource) Facets(ctx context.Context) (dataset.Facets, error) {
	if f.facetsFn != nil {
		return f.facetsFn(ctx)
	}
	return dataset.Facets{}, nil
}

func rec(year int, seniority, title, remote, residence string, usd float64) dataset.Record {
	return dataset.Record{
		Year:         year,
		Seniority:    seniority,
		Contract:     "integral",
		CompanySize:  "media",
		JobTitle:     title,
		RemoteStatus: remote,
		Residence:    residence,
		SalaryUSD:    usd,
	}
}

func fixtureSource(records []dataset.Record) *fakeRecordSource {
	return &fakeRecordSource{
		recordsFn: func(ctx context.Context) ([]dataset.Record, error) {
			return records, nil
		},
	}
}

func TestDashboardService_Summary(t *testing.T) {
	ctx := context.Background()

	t.Run("computes metric row", func(t *testing.T) {
		records := []dataset.Record{
			rec(2021, "junior", "Data Analyst", "remoto", "US", 40000),
			rec(2021, "senior", "Data Scientist", "remoto", "US", 160000),
			rec(2021, "senior", "Data Scientist", "hibrido", "GB", 100000),
			rec(2022, "pleno", "Data Engineer", "presencial", "DE", 100000),
		}
		svc := dashboard.NewService(fixtureSource(records), "Data Scientist")

		resp, err := svc.Summary(ctx, dashboard.Selection{})

		assert.NoError(t, err)
		assert.True(t, resp.HasData)
		assert.Equal(t, 100000.0, resp.MeanUSD)
		assert.Equal(t, 160000.0, resp.MaxUSD)
		assert.Equal(t, 4, resp.TotalRecords)
		assert.Equal(t, "Data Scientist", resp.MostFrequentRole)
	})

	t.Run("mode ties go to first-encountered title", func(t *testing.T) {
		records := []dataset.Record{
			rec(2021, "senior", "Data Engineer", "remoto", "US", 1),
			rec(2021, "senior", "Data Scientist", "remoto", "US", 1),
			rec(2021, "senior", "Data Engineer", "remoto", "US", 1),
			rec(2021, "senior", "Data Scientist", "remoto", "US", 1),
		}
		svc := dashboard.NewService(fixtureSource(records), "Data Scientist")

		resp, err := svc.Summary(ctx, dashboard.Selection{})

		assert.NoError(t, err)
		assert.Equal(t, "Data Engineer", resp.MostFrequentRole)
	})

	t.Run("single seniority keeps that group's mode", func(t *testing.T) {
		records := []dataset.Record{
			rec(2021, "junior", "Data Analyst", "remoto", "US", 1),
			rec(2021, "junior", "Data Analyst", "remoto", "US", 1),
			rec(2021, "senior", "Data Scientist", "remoto", "US", 1),
			rec(2021, "senior", "Data Scientist", "remoto", "US", 1),
			rec(2021, "senior", "Data Scientist", "remoto", "US", 1),
			rec(2021, "senior", "Data Engineer", "remoto", "US", 1),
		}
		svc := dashboard.NewService(fixtureSource(records), "Data Scientist")

		resp, err := svc.Summary(ctx, dashboard.Selection{Seniorities: []string{"senior"}})

		assert.NoError(t, err)
		assert.Equal(t, 4, resp.TotalRecords)
		assert.Equal(t, "Data Scientist", resp.MostFrequentRole)
	})

	t.Run("empty subset yields documented defaults", func(t *testing.T) {
		records := []dataset.Record{
			rec(2021, "junior", "Data Analyst", "remoto", "US", 40000),
		}
		svc := dashboard.NewService(fixtureSource(records), "Data Scientist")

		resp, err := svc.Summary(ctx, dashboard.Selection{Years: []int{}})

		assert.NoError(t, err)
		assert.False(t, resp.HasData)
		assert.Equal(t, 0.0, resp.MeanUSD)
		assert.Equal(t, 0.0, resp.MaxUSD)
		assert.Equal(t, 0, resp.TotalRecords)
		assert.Equal(t, "", resp.MostFrequentRole)
	})

	t.Run("source error propagates", func(t *testing.T) {
		src := &fakeRecordSource{
			recordsFn: func(ctx context.Context) ([]dataset.Record, error) {
				return nil, dataseterrors.ErrDatasetNotFound
			},
		}
		svc := dashboard.NewService(src, "Data Scientist")

		_, err := svc.Summary(ctx, dashboard.Selection{})

		assert.ErrorIs(t, err, dataseterrors.ErrDatasetNotFound)
	})
}

func TestDashboardService_TopRoles(t *testing.T) {
	ctx := context.Background()

	records := []dataset.Record{
		rec(2021, "senior", "Data Analyst", "remoto", "US", 50000),
		rec(2021, "senior", "Data Analyst", "remoto", "US", 70000),
		rec(2021, "senior", "Data Scientist", "remoto", "US", 150000),
		rec(2021, "senior", "Data Engineer", "remoto", "US", 120000),
		rec(2021, "senior", "Analytics Engineer", "remoto", "US", 90000),
	}
	svc := dashboard.NewService(fixtureSource(records), "Data Scientist")

	t.Run("ascending by mean for the bar panel", func(t *testing.T) {
		roles, err := svc.TopRoles(ctx, dashboard.Selection{}, 10)

		assert.NoError(t, err)
		assert.Equal(t, []dashboard.RoleMeanSalary{
			{JobTitle: "Data Analyst", MeanUSD: 60000},
			{JobTitle: "Analytics Engineer", MeanUSD: 90000},
			{JobTitle: "Data Engineer", MeanUSD: 120000},
			{JobTitle: "Data Scientist", MeanUSD: 150000},
		}, roles)
	})

	t.Run("keeps only the n highest means", func(t *testing.T) {
		roles, err := svc.TopRoles(ctx, dashboard.Selection{}, 2)

		assert.NoError(t, err)
		assert.Equal(t, []dashboard.RoleMeanSalary{
			{JobTitle: "Data Engineer", MeanUSD: 120000},
			{JobTitle: "Data Scientist", MeanUSD: 150000},
		}, roles)
	})

	t.Run("empty subset yields no series", func(t *testing.T) {
		roles, err := svc.TopRoles(ctx, dashboard.Selection{Years: []int{}}, 10)

		assert.NoError(t, err)
		assert.Empty(t, roles)
	})
}

func TestDashboardService_SalaryHistogram(t *testing.T) {
	ctx := context.Background()

	t.Run("buckets salaries into fixed-width bins", func(t *testing.T) {
		records := []dataset.Record{
			rec(2021, "senior", "Data Scientist", "remoto", "US", 0),
			rec(2021, "senior", "Data Scientist", "remoto", "US", 25),
			rec(2021, "senior", "Data Scientist", "remoto", "US", 75),
			rec(2021, "senior", "Data Scientist", "remoto", "US", 100),
		}
		svc := dashboard.NewService(fixtureSource(records), "Data Scientist")

		bins, err := svc.SalaryHistogram(ctx, dashboard.Selection{}, 4)

		assert.NoError(t, err)
		assert.Len(t, bins, 4)
		assert.Equal(t, 0.0, bins[0].LowUSD)
		assert.Equal(t, 100.0, bins[3].HighUSD)

		counts := []int{bins[0].Count, bins[1].Count, bins[2].Count, bins[3].Count}
		assert.Equal(t, []int{1, 1, 0, 2}, counts) // max value lands in the last bin

		total := 0
		for _, b := range bins {
			total += b.Count
		}
		assert.Equal(t, len(records), total)
	})

	t.Run("identical salaries collapse into one bin", func(t *testing.T) {
		records := []dataset.Record{
			rec(2021, "senior", "Data Scientist", "remoto", "US", 50000),
			rec(2021, "senior", "Data Scientist", "remoto", "US", 50000),
		}
		svc := dashboard.NewService(fixtureSource(records), "Data Scientist")

		bins, err := svc.SalaryHistogram(ctx, dashboard.Selection{}, 30)

		assert.NoError(t, err)
		assert.Len(t, bins, 1)
		assert.Equal(t, 2, bins[0].Count)
	})

	t.Run("empty subset yields no bins", func(t *testing.T) {
		svc := dashboard.NewService(fixtureSource(nil), "Data Scientist")

		bins, err := svc.SalaryHistogram(ctx, dashboard.Selection{}, 30)

		assert.NoError(t, err)
		assert.Empty(t, bins)
	})
}

func TestDashboardService_RemoteBreakdown(t *testing.T) {
	ctx := context.Background()

	t.Run("most common category first", func(t *testing.T) {
		records := []dataset.Record{
			rec(2021, "senior", "Data Scientist", "hibrido", "US", 1),
			rec(2021, "senior", "Data Scientist", "remoto", "US", 1),
			rec(2021, "senior", "Data Scientist", "remoto", "US", 1),
			rec(2021, "senior", "Data Scientist", "presencial", "US", 1),
			rec(2021, "senior", "Data Scientist", "remoto", "US", 1),
		}
		svc := dashboard.NewService(fixtureSource(records), "Data Scientist")

		shares, err := svc.RemoteBreakdown(ctx, dashboard.Selection{})

		assert.NoError(t, err)
		assert.Equal(t, []dashboard.RemoteShare{
			{Category: "remoto", Count: 3},
			{Category: "hibrido", Count: 1}, // tie with presencial, seen first
			{Category: "presencial", Count: 1},
		}, shares)
	})

	t.Run("empty subset yields no shares", func(t *testing.T) {
		svc := dashboard.NewService(fixtureSource(nil), "Data Scientist")

		shares, err := svc.RemoteBreakdown(ctx, dashboard.Selection{})

		assert.NoError(t, err)
		assert.Empty(t, shares)
	})
}

func TestDashboardService_CountrySalaries(t *testing.T) {
	ctx := context.Background()

	records := []dataset.Record{
		rec(2021, "senior", "Data Scientist", "remoto", "US", 150000),
		rec(2021, "senior", "Data Scientist", "remoto", "US", 170000),
		rec(2021, "senior", "Data Scientist", "remoto", "BR", 60000),
		rec(2021, "senior", "Data Scientist", "remoto", "ZZ", 999999), // unresolvable
		rec(2021, "senior", "Data Engineer", "remoto", "DE", 100000),  // other title
	}
	svc := dashboard.NewService(fixtureSource(records), "Data Scientist")

	t.Run("mean per resolvable country for the default title", func(t *testing.T) {
		series, err := svc.CountrySalaries(ctx, dashboard.Selection{}, "")

		assert.NoError(t, err)
		assert.Equal(t, []dashboard.CountryMeanSalary{
			{Residence: "BR", IsoAlpha3: "BRA", MeanUSD: 60000},
			{Residence: "US", IsoAlpha3: "USA", MeanUSD: 160000},
		}, series)
	})

	t.Run("explicit title overrides the default", func(t *testing.T) {
		series, err := svc.CountrySalaries(ctx, dashboard.Selection{}, "Data Engineer")

		assert.NoError(t, err)
		assert.Equal(t, []dashboard.CountryMeanSalary{
			{Residence: "DE", IsoAlpha3: "DEU", MeanUSD: 100000},
		}, series)
	})

	t.Run("no rows for the title yields no series", func(t *testing.T) {
		series, err := svc.CountrySalaries(ctx, dashboard.Selection{}, "Prompt Engineer")

		assert.NoError(t, err)
		assert.Empty(t, series)
	})
}

func TestDashboardService_Records(t *testing.T) {
	ctx := context.Background()

	records := make([]dataset.Record, 0, 7)
	for i := 0; i < 7; i++ {
		records = append(records, rec(2021, "senior", "Data Scientist", "remoto", "US", float64(1000*(i+1))))
	}
	svc := dashboard.NewService(fixtureSource(records), "Data Scientist")

	t.Run("paginates the subset", func(t *testing.T) {
		rows, total, err := svc.Records(ctx, dashboard.Selection{}, 2, 3)

		assert.NoError(t, err)
		assert.Equal(t, int64(7), total)
		assert.Len(t, rows, 3)
		assert.Equal(t, 4000.0, rows[0].SalaryUSD)
	})

	t.Run("last page is short", func(t *testing.T) {
		rows, total, err := svc.Records(ctx, dashboard.Selection{}, 3, 3)

		assert.NoError(t, err)
		assert.Equal(t, int64(7), total)
		assert.Len(t, rows, 1)
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		rows, total, err := svc.Records(ctx, dashboard.Selection{}, 9, 3)

		assert.NoError(t, err)
		assert.Equal(t, int64(7), total)
		assert.Empty(t, rows)
	})
}
