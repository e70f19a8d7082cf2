package dashboard

import (
	"sort"

	"go-salarydash/internal/country"
	"go-salarydash/internal/dataset"

	"github.com/aclements/go-moremath/stats"
)

// Summary holds the metric-row scalars for a non-empty subset.
type Summary struct {
	MeanUSD          float64
	MaxUSD           float64
	Count            int
	MostFrequentRole string
}

// Summarize computes the metric row. ok is false for an empty subset; the
// zero Summary is then exactly the documented defaults (0, 0, 0, "").
func Summarize(rows []dataset.Record) (Summary, bool) {
	if len(rows) == 0 {
		return Summary{}, false
	}

	sample := stats.Sample{Xs: salaries(rows)}
	sample.Sort()

	return Summary{
		MeanUSD:          sample.Mean(),
		MaxUSD:           sample.Quantile(1),
		Count:            len(rows),
		MostFrequentRole: mostFrequentRole(rows),
	}, true
}

// mostFrequentRole is the mode of the job-title column. Ties go to the
// title encountered first.
func mostFrequentRole(rows []dataset.Record) string {
	counts := map[string]int{}
	firstSeen := map[string]int{}

	for i, r := range rows {
		if _, ok := counts[r.JobTitle]; !ok {
			firstSeen[r.JobTitle] = i
		}
		counts[r.JobTitle]++
	}

	best := ""
	bestCount := 0
	for title, n := range counts {
		if n > bestCount || (n == bestCount && firstSeen[title] < firstSeen[best]) {
			best = title
			bestCount = n
		}
	}
	return best
}

// topRolesByMeanSalary groups rows by job title, takes the n titles with
// the highest mean salary and returns them ascending by mean, which is
// the order the horizontal bar panel draws them in.
func topRolesByMeanSalary(rows []dataset.Record, n int) []RoleMeanSalary {
	if len(rows) == 0 || n <= 0 {
		return nil
	}

	sums := map[string]float64{}
	counts := map[string]int{}
	order := []string{}

	for _, r := range rows {
		if _, ok := counts[r.JobTitle]; !ok {
			order = append(order, r.JobTitle)
		}
		sums[r.JobTitle] += r.SalaryUSD
		counts[r.JobTitle]++
	}

	means := make([]RoleMeanSalary, 0, len(order))
	for _, title := range order {
		means = append(means, RoleMeanSalary{
			JobTitle: title,
			MeanUSD:  sums[title] / float64(counts[title]),
		})
	}

	// Stable sort keeps first-encounter order among equal means.
	sort.SliceStable(means, func(i, j int) bool {
		return means[i].MeanUSD > means[j].MeanUSD
	})
	if len(means) > n {
		means = means[:n]
	}

	// reverse: highest mean last
	for i, j := 0, len(means)-1; i < j; i, j = i+1, j-1 {
		means[i], means[j] = means[j], means[i]
	}
	return means
}

// salaryHistogram buckets salaries into fixed-width bins over [min, max].
// When every salary is identical the result collapses into a single bin.
func salaryHistogram(rows []dataset.Record, bins int) []HistogramBin {
	if len(rows) == 0 || bins <= 0 {
		return nil
	}

	xs := salaries(rows)
	low, high := xs[0], xs[0]
	for _, x := range xs[1:] {
		if x < low {
			low = x
		}
		if x > high {
			high = x
		}
	}

	if high == low {
		return []HistogramBin{{LowUSD: low, HighUSD: high, Count: len(xs)}}
	}

	width := (high - low) / float64(bins)
	counts := make([]int, bins)
	for _, x := range xs {
		idx := int((x - low) / width)
		if idx >= bins { // x == high lands past the last bin
			idx = bins - 1
		}
		counts[idx]++
	}

	out := make([]HistogramBin, bins)
	for i := range out {
		out[i] = HistogramBin{
			LowUSD:  low + float64(i)*width,
			HighUSD: low + float64(i+1)*width,
			Count:   counts[i],
		}
	}
	return out
}

// remoteBreakdown counts rows per work-arrangement category, most common
// first; ties keep first-encounter order.
func remoteBreakdown(rows []dataset.Record) []RemoteShare {
	if len(rows) == 0 {
		return nil
	}

	counts := map[string]int{}
	order := []string{}

	for _, r := range rows {
		if _, ok := counts[r.RemoteStatus]; !ok {
			order = append(order, r.RemoteStatus)
		}
		counts[r.RemoteStatus]++
	}

	out := make([]RemoteShare, 0, len(order))
	for _, cat := range order {
		out = append(out, RemoteShare{Category: cat, Count: counts[cat]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// countryMeans computes mean salary per residence country for rows whose
// job title matches. Countries the normalizer cannot resolve are left out
// so the map collaborator never sees an invalid location.
func countryMeans(rows []dataset.Record, jobTitle string) []CountryMeanSalary {
	sums := map[string]float64{}
	counts := map[string]int{}

	for _, r := range rows {
		if r.JobTitle != jobTitle {
			continue
		}
		sums[r.Residence] += r.SalaryUSD
		counts[r.Residence]++
	}

	codes := make([]string, 0, len(counts))
	for code := range counts {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	out := make([]CountryMeanSalary, 0, len(codes))
	for _, code := range codes {
		alpha3, ok := country.Alpha3(code)
		if !ok {
			continue
		}
		out = append(out, CountryMeanSalary{
			Residence: code,
			IsoAlpha3: alpha3,
			MeanUSD:   sums[code] / float64(counts[code]),
		})
	}
	return out
}

func salaries(rows []dataset.Record) []float64 {
	xs := make([]float64, len(rows))
	for i, r := range rows {
		xs[i] = r.SalaryUSD
	}
	return xs
}
