package web

import (
	"embed"
	"errors"
	"html/template"
	"net/http"

	"go-salarydash/internal/dashboard"
	"go-salarydash/internal/dataset"
	"go-salarydash/internal/shared/apperror"

	"github.com/gin-gonic/gin"
)

//go:embed templates/dashboard.html.tmpl
var templateFS embed.FS

type Handler struct {
	service dashboard.Service
	tmpl    *template.Template
}

func NewHandler(service dashboard.Service) (*Handler, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/dashboard.html.tmpl")
	if err != nil {
		return nil, err
	}
	return &Handler{service: service, tmpl: tmpl}, nil
}

type yearOption struct {
	Value   int
	Checked bool
}

type facetOption struct {
	Value   string
	Checked bool
}

type pageData struct {
	Summary           dashboard.SummaryResponse
	Years             []yearOption
	Seniorities       []facetOption
	Contracts         []facetOption
	CompanySizes      []facetOption
	TopRolesChartURL  template.URL
	HistogramChartURL template.URL
	RemoteChartURL    template.URL
	CountrySeries     []dashboard.CountryMeanSalary
	Rows              []dataset.Record
	Total             int64
}

// Dashboard renders the whole page server side: metric cards, the three
// PNG panels, the per-country series the map collaborator consumes, and
// the detail table.
func (h *Handler) Dashboard(c *gin.Context) {
	var req dashboard.FilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.String(http.StatusBadRequest, "invalid filter parameters")
		return
	}
	sel := req.Selection()
	ctx := c.Request.Context()

	facets, err := h.service.Facets(ctx)
	if err != nil {
		h.renderError(c, err)
		return
	}
	summary, err := h.service.Summary(ctx, sel)
	if err != nil {
		h.renderError(c, err)
		return
	}
	countrySeries, err := h.service.CountrySalaries(ctx, sel, "")
	if err != nil {
		h.renderError(c, err)
		return
	}
	rows, total, err := h.service.Records(ctx, sel, 1, 100)
	if err != nil {
		h.renderError(c, err)
		return
	}

	query := c.Request.URL.RawQuery
	data := pageData{
		Summary:           summary,
		Years:             yearOptions(facets.Years, req.Years),
		Seniorities:       facetOptions(facets.Seniorities, req.Seniorities),
		Contracts:         facetOptions(facets.Contracts, req.Contracts),
		CompanySizes:      facetOptions(facets.CompanySizes, req.CompanySizes),
		TopRolesChartURL:  chartURL("/api/v1/dashboard/charts/top-roles.png", query),
		HistogramChartURL: chartURL("/api/v1/dashboard/charts/salary-histogram.png", query),
		RemoteChartURL:    chartURL("/api/v1/dashboard/charts/remote-breakdown.png", query),
		CountrySeries:     countrySeries,
		Rows:              rows,
		Total:             total,
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := h.tmpl.Execute(c.Writer, data); err != nil {
		_ = c.Error(err)
	}
}

// renderError surfaces dataset failures as a page-level error.
func (h *Handler) renderError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "An unexpected error occurred"

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		status = appErr.HTTPStatus
		message = appErr.Message
	}
	c.String(status, message)
}

func chartURL(path, rawQuery string) template.URL {
	if rawQuery == "" {
		return template.URL(path)
	}
	return template.URL(path + "?" + rawQuery)
}

// A nil selection means the UI default: everything checked.

func yearOptions(available []int, selected []int) []yearOption {
	set := map[int]struct{}{}
	for _, v := range selected {
		set[v] = struct{}{}
	}

	opts := make([]yearOption, len(available))
	for i, v := range available {
		_, picked := set[v]
		opts[i] = yearOption{Value: v, Checked: selected == nil || picked}
	}
	return opts
}

func facetOptions(available []string, selected []string) []facetOption {
	set := map[string]struct{}{}
	for _, v := range selected {
		set[v] = struct{}{}
	}

	opts := make([]facetOption, len(available))
	for i, v := range available {
		_, picked := set[v]
		opts[i] = facetOption{Value: v, Checked: selected == nil || picked}
	}
	return opts
}
