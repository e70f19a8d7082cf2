package dataset

// Record is one salary observation from the cleaned dataset.
type Record struct {
	Year         int     `json:"year"`
	Seniority    string  `json:"seniority"`
	Contract     string  `json:"contract"`
	CompanySize  string  `json:"company_size"`
	JobTitle     string  `json:"job_title"`
	RemoteStatus string  `json:"remote_status"`
	Residence    string  `json:"residence"` // ISO 3166-1 alpha-2
	SalaryUSD    float64 `json:"salary_usd"`
}

// Column names as they appear in the source CSV. The file keeps its
// original (Portuguese) header.
const (
	colYear         = "ano"
	colSeniority    = "senioridade"
	colContract     = "contrato"
	colCompanySize  = "tamanho_empresa"
	colJobTitle     = "cargo"
	colRemoteStatus = "remoto"
	colResidence    = "residencia"
	colSalaryUSD    = "usd"
)

// Facets are the distinct values of the four filterable columns, sorted.
// A UI uses them to populate its multi-selects with "everything selected"
// defaults.
type Facets struct {
	Years        []int    `json:"years"`
	Seniorities  []string `json:"seniorities"`
	Contracts    []string `json:"contracts"`
	CompanySizes []string `json:"company_sizes"`
}
