package dashboard

import (
	"errors"
	"net/http"
	"strconv"

	"go-salarydash/internal/charts"
	"go-salarydash/internal/shared/apperror"
	"go-salarydash/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const (
	defaultTopRoles      = 10
	maxTopRoles          = 50
	defaultHistogramBins = 30
	maxHistogramBins     = 100
	defaultPageSize      = 50
	maxPageSize          = 500
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Facets(c *gin.Context) {
	facets, err := h.service.Facets(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, facets, nil)
}

func (h *Handler) Summary(c *gin.Context) {
	sel, ok := bindSelection(c)
	if !ok {
		return
	}

	resp, err := h.service.Summary(c.Request.Context(), sel)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) TopRoles(c *gin.Context) {
	sel, ok := bindSelection(c)
	if !ok {
		return
	}
	n, ok := queryInt(c, "n", defaultTopRoles, 1, maxTopRoles)
	if !ok {
		return
	}

	roles, err := h.service.TopRoles(c.Request.Context(), sel, n)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, roles, nil)
}

func (h *Handler) SalaryHistogram(c *gin.Context) {
	sel, ok := bindSelection(c)
	if !ok {
		return
	}
	bins, ok := queryInt(c, "bins", defaultHistogramBins, 1, maxHistogramBins)
	if !ok {
		return
	}

	hist, err := h.service.SalaryHistogram(c.Request.Context(), sel, bins)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, hist, nil)
}

func (h *Handler) RemoteBreakdown(c *gin.Context) {
	sel, ok := bindSelection(c)
	if !ok {
		return
	}

	shares, err := h.service.RemoteBreakdown(c.Request.Context(), sel)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, shares, nil)
}

func (h *Handler) CountrySalaries(c *gin.Context) {
	sel, ok := bindSelection(c)
	if !ok {
		return
	}

	series, err := h.service.CountrySalaries(c.Request.Context(), sel, c.Query("title"))
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, series, nil)
}

func (h *Handler) Records(c *gin.Context) {
	sel, ok := bindSelection(c)
	if !ok {
		return
	}
	page, ok := queryInt(c, "page", 1, 1, 1<<30)
	if !ok {
		return
	}
	pageSize, ok := queryInt(c, "page_size", defaultPageSize, 1, maxPageSize)
	if !ok {
		return
	}

	rows, total, err := h.service.Records(c.Request.Context(), sel, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, rows, &meta)
}

func (h *Handler) TopRolesChart(c *gin.Context) {
	sel, ok := bindSelection(c)
	if !ok {
		return
	}
	n, ok := queryInt(c, "n", defaultTopRoles, 1, maxTopRoles)
	if !ok {
		return
	}

	roles, err := h.service.TopRoles(c.Request.Context(), sel, n)
	if err != nil {
		respondError(c, err)
		return
	}

	entries := make([]charts.Entry, len(roles))
	for i, r := range roles {
		entries[i] = charts.Entry{Label: r.JobTitle, Value: r.MeanUSD}
	}

	img, err := charts.TopRolesBar(entries)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", img)
}

func (h *Handler) SalaryHistogramChart(c *gin.Context) {
	sel, ok := bindSelection(c)
	if !ok {
		return
	}
	binCount, ok := queryInt(c, "bins", defaultHistogramBins, 1, maxHistogramBins)
	if !ok {
		return
	}

	hist, err := h.service.SalaryHistogram(c.Request.Context(), sel, binCount)
	if err != nil {
		respondError(c, err)
		return
	}

	bins := make([]charts.Bin, len(hist))
	for i, b := range hist {
		bins[i] = charts.Bin{Low: b.LowUSD, High: b.HighUSD, Count: b.Count}
	}

	img, err := charts.SalaryHistogram(bins)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", img)
}

func (h *Handler) RemoteBreakdownChart(c *gin.Context) {
	sel, ok := bindSelection(c)
	if !ok {
		return
	}

	shares, err := h.service.RemoteBreakdown(c.Request.Context(), sel)
	if err != nil {
		respondError(c, err)
		return
	}

	entries := make([]charts.Entry, len(shares))
	for i, s := range shares {
		entries[i] = charts.Entry{Label: s.Category, Value: float64(s.Count)}
	}

	img, err := charts.RemoteDonut(entries)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", img)
}

// bindSelection parses the filter query parameters. On failure it writes
// the error response and reports ok=false.
func bindSelection(c *gin.Context) (Selection, bool) {
	var req FilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondError(c, apperror.MapValidationError(err))
		return Selection{}, false
	}
	return req.Selection(), true
}

func queryInt(c *gin.Context, name string, def, min, max int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v < min || v > max {
		respondError(c, apperror.InvalidField(name))
		return 0, false
	}
	return v, true
}

func respondError(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		response.Error(c, appErr.HTTPStatus, appErr.Code, appErr.Message, nil)
		return
	}
	response.Error(c, http.StatusInternalServerError, apperror.CodeInternalError, err.Error(), nil)
}
