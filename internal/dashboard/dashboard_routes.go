package dashboard

import (
	"go-salarydash/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	dash := r.Group("/dashboard")
	{
		dash.GET("/facets", handler.Facets)
		dash.GET("/summary", handler.Summary)
		dash.GET("/top-roles", handler.TopRoles)
		dash.GET("/salary-histogram", handler.SalaryHistogram)
		dash.GET("/remote-breakdown", handler.RemoteBreakdown)
		dash.GET("/country-salaries", handler.CountrySalaries)
		dash.GET("/records", handler.Records)

		charts := dash.Group("/charts", middleware.RateLimitByIP(5, 10))
		{
			charts.GET("/top-roles.png", handler.TopRolesChart)
			charts.GET("/salary-histogram.png", handler.SalaryHistogramChart)
			charts.GET("/remote-breakdown.png", handler.RemoteBreakdownChart)
		}
	}
}
