package handlers

import (
	"bytes"
	"net/http"
	"strconv"

	response "gestao_producao/internal/adapter/http/dto/response"
	"gestao_producao/internal/infrastructure/logger"
	"gestao_producao/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	defaultRankingLimit = 10
	xlsxContentType     = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type DashboardHandler struct {
	dashboard usecase.IDashboardUseCase
	reports   usecase.IReportUseCase
	log       *logrus.Logger
}

func NewDashboardHandler(dashboard usecase.IDashboardUseCase, reports usecase.IReportUseCase) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, reports: reports, log: logger.GetLogger()}
}

// GetDashboard returns urgency counts, open orders and the customer ranking by weight.
//
//	@Summary	Production dashboard
//	@Tags		dashboard
//	@Produce	json
//	@Param		limit	query		int	false	"Customers in the ranking"	default(10)
//	@Success	200		{object}	response.DashboardResponse
//	@Failure	400		{object}	pkg.HTTPError
//	@Router		/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	limit := defaultRankingLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
			return
		}
		limit = n
	}

	d, err := h.dashboard.GetDashboard(c.Request.Context(), limit)
	if err != nil {
		h.log.WithField("limit", limit).WithError(err).Warn("[dashboard][handler] failed")
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDashboard(d))
}

// ExportSchedule downloads the schedule spreadsheet of all non-cancelled orders.
//
//	@Summary	Schedule spreadsheet
//	@Tags		reports
//	@Produce	application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//	@Success	200	{file}		file
//	@Failure	500	{object}	pkg.HTTPError
//	@Router		/reports/schedule.xlsx [get]
func (h *DashboardHandler) ExportSchedule(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.reports.ExportSchedule(c.Request.Context(), &buf); err != nil {
		h.log.WithError(err).Error("[report][handler] export failed")
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="cronograma.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// Ping is the liveness probe.
//
//	@Summary	Ping
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	map[string]string
//	@Router		/ping [get]
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}
