package dashboard

import (
	"context"

	"go-salarydash/internal/dataset"
)

// RecordSource is the slice of the dataset store the dashboard needs.
type RecordSource interface {
	Records(ctx context.Context) ([]dataset.Record, error)
	Facets(ctx context.Context) (dataset.Facets, error)
}

type Service interface {
	Facets(ctx context.Context) (dataset.Facets, error)
	Summary(ctx context.Context, sel Selection) (SummaryResponse, error)
	TopRoles(ctx context.Context, sel Selection, n int) ([]RoleMeanSalary, error)
	SalaryHistogram(ctx context.Context, sel Selection, bins int) ([]HistogramBin, error)
	RemoteBreakdown(ctx context.Context, sel Selection) ([]RemoteShare, error)
	CountrySalaries(ctx context.Context, sel Selection, jobTitle string) ([]CountryMeanSalary, error)
	Records(ctx context.Context, sel Selection, page, pageSize int) ([]dataset.Record, int64, error)
}

type service struct {
	source      RecordSource
	mapJobTitle string // default title for the per-country panel
}

func NewService(source RecordSource, mapJobTitle string) Service {
	return &service{source: source, mapJobTitle: mapJobTitle}
}

func (s *service) Facets(ctx context.Context) (dataset.Facets, error) {
	return s.source.Facets(ctx)
}

func (s *service) Summary(ctx context.Context, sel Selection) (SummaryResponse, error) {
	subset, err := s.subset(ctx, sel)
	if err != nil {
		return SummaryResponse{}, err
	}

	summary, ok := Summarize(subset)
	return SummaryResponse{
		HasData:          ok,
		MeanUSD:          summary.MeanUSD,
		MaxUSD:           summary.MaxUSD,
		TotalRecords:     summary.Count,
		MostFrequentRole: summary.MostFrequentRole,
	}, nil
}

func (s *service) TopRoles(ctx context.Context, sel Selection, n int) ([]RoleMeanSalary, error) {
	subset, err := s.subset(ctx, sel)
	if err != nil {
		return nil, err
	}
	return topRolesByMeanSalary(subset, n), nil
}

func (s *service) SalaryHistogram(ctx context.Context, sel Selection, bins int) ([]HistogramBin, error) {
	subset, err := s.subset(ctx, sel)
	if err != nil {
		return nil, err
	}
	return salaryHistogram(subset, bins), nil
}

func (s *service) RemoteBreakdown(ctx context.Context, sel Selection) ([]RemoteShare, error) {
	subset, err := s.subset(ctx, sel)
	if err != nil {
		return nil, err
	}
	return remoteBreakdown(subset), nil
}

func (s *service) CountrySalaries(ctx context.Context, sel Selection, jobTitle string) ([]CountryMeanSalary, error) {
	subset, err := s.subset(ctx, sel)
	if err != nil {
		return nil, err
	}

	if jobTitle == "" {
		jobTitle = s.mapJobTitle
	}
	return countryMeans(subset, jobTitle), nil
}

func (s *service) Records(ctx context.Context, sel Selection, page, pageSize int) ([]dataset.Record, int64, error) {
	subset, err := s.subset(ctx, sel)
	if err != nil {
		return nil, 0, err
	}

	total := int64(len(subset))

	start := (page - 1) * pageSize
	if start >= len(subset) {
		return []dataset.Record{}, total, nil
	}
	end := start + pageSize
	if end > len(subset) {
		end = len(subset)
	}
	return subset[start:end], total, nil
}

func (s *service) subset(ctx context.Context, sel Selection) ([]dataset.Record, error) {
	records, err := s.source.Records(ctx)
	if err != nil {
		return nil, err
	}
	return sel.Apply(records), nil
}
