package dashboard

// FilterRequest carries the four multi-select filters as repeated query
// parameters. An absent parameter leaves its column unrestricted.
type FilterRequest struct {
	Years        []int    `form:"year" binding:"omitempty,dive,gte=1900,lte=2100"`
	Seniorities  []string `form:"seniority"`
	Contracts    []string `form:"contract"`
	CompanySizes []string `form:"company_size"`
}

// Selection converts the request into the filter engine's input.
func (r FilterRequest) Selection() Selection {
	return Selection{
		Years:        r.Years,
		Seniorities:  r.Seniorities,
		Contracts:    r.Contracts,
		CompanySizes: r.CompanySizes,
	}
}

// SummaryResponse is the metrics row. When has_data is false the four
// scalars hold their documented defaults (0, 0, 0, "") and the UI shows
// a "no data" notice instead of charts.
type SummaryResponse struct {
	HasData          bool    `json:"has_data"`
	MeanUSD          float64 `json:"mean_usd"`
	MaxUSD           float64 `json:"max_usd"`
	TotalRecords     int     `json:"total_records"`
	MostFrequentRole string  `json:"most_frequent_title"`
}

type RoleMeanSalary struct {
	JobTitle string  `json:"job_title"`
	MeanUSD  float64 `json:"mean_usd"`
}

type HistogramBin struct {
	LowUSD  float64 `json:"low_usd"`
	HighUSD float64 `json:"high_usd"`
	Count   int     `json:"count"`
}

type RemoteShare struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type CountryMeanSalary struct {
	Residence string  `json:"residence"`  // alpha-2, as stored
	IsoAlpha3 string  `json:"iso_alpha3"` // what the map collaborator plots
	MeanUSD   float64 `json:"mean_usd"`
}
