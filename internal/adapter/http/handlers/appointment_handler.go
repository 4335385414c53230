package handlers

import (
	"net/http"

	request "gestao_producao/internal/adapter/http/dto/request"
	response "gestao_producao/internal/adapter/http/dto/response"
	"gestao_producao/internal/domain/entities"
	"gestao_producao/internal/infrastructure/logger"
	"gestao_producao/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// AppointmentHandler receives stage start/finish reports from the shop floor.

type AppointmentHandler struct {
	usecase usecase.IAppointmentUseCase
	log     *logrus.Logger
}

func NewAppointmentHandler(uc usecase.IAppointmentUseCase) *AppointmentHandler {
	request.RegisterValidations()
	return &AppointmentHandler{usecase: uc, log: logger.GetLogger()}
}

// CreateAppointment starts or finishes a stage. Finishing a stage reschedules the
// remaining stages of the same item from the reported date.
//
//	@Summary	Register appointment
//	@Tags		appointments
//	@Accept		json
//	@Produce	json
//	@Param		id			path		string						true	"Order ID"
//	@Param		appointment	body		request.AppointmentRequest	true	"Appointment"
//	@Success	200			{object}	response.OrderResponse
//	@Failure	400			{object}	pkg.HTTPError
//	@Failure	404			{object}	pkg.HTTPError
//	@Failure	409			{object}	pkg.HTTPError
//	@Failure	423			{object}	pkg.HTTPError
//	@Router		/orders/{id}/appointments [post]
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	orderID := c.Param("id")
	var payload request.AppointmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAppointment.HTTPStatus, errInvalidAppointment.ToHTTPError())
		return
	}
	in, err := payload.ToInput(orderID)
	if err != nil {
		c.JSON(errInvalidAppointment.HTTPStatus, errInvalidAppointment.ToHTTPError())
		return
	}

	fields := logrus.Fields{"order_id": orderID, "action": payload.ResolveAction(), "stage_index": in.StageIndex}
	h.log.WithFields(fields).Info("[appointment][handler] start")

	var summary usecase.OrderSummary
	if payload.ResolveAction() == entities.AppointmentActionStart {
		summary, err = h.usecase.StartStage(c.Request.Context(), in)
	} else {
		summary, err = h.usecase.FinishStage(c.Request.Context(), in)
	}
	if err != nil {
		h.log.WithFields(fields).WithError(err).Warn("[appointment][handler] failed")
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrderSummary(summary))
}

//	@Summary	List appointments
//	@Tags		appointments
//	@Produce	json
//	@Param		id	path		string	true	"Order ID"
//	@Success	200	{array}		response.AppointmentResponse
//	@Failure	400	{object}	pkg.HTTPError
//	@Router		/orders/{id}/appointments [get]
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	list, err := h.usecase.ListByOrderID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAppointments(list))
}
