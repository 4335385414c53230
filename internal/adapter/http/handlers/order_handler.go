package handlers

import (
	"context"
	"net/http"

	request "gestao_producao/internal/adapter/http/dto/request"
	response "gestao_producao/internal/adapter/http/dto/response"
	"gestao_producao/internal/infrastructure/logger"
	"gestao_producao/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// OrderHandler handles HTTP requests for manufacturing orders.

type OrderHandler struct {
	usecase usecase.IOrderUseCase
	log     *logrus.Logger
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc, log: logger.GetLogger()}
}

// CreateOrder registers an order and plans its stage dates from the order date.
//
//	@Summary	Create order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		order	body		request.CreateOrderRequest	true	"Order"
//	@Success	201		{object}	response.OrderResponse
//	@Failure	400		{object}	pkg.HTTPError
//	@Failure	500		{object}	pkg.HTTPError
//	@Router		/orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	in, err := payload.ToInput()
	if err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateOrder(c.Request.Context(), in)
	if err != nil {
		h.log.WithField("order_number", in.OrderNumber).WithError(err).Error("[order][handler] create failed")
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.log.WithField("order_id", created.Order.ID).Info("[order][handler] create success")

	c.JSON(http.StatusCreated, response.FromOrderSummary(created))
}

// ListOrders returns every order with its progress, soonest delivery first.
//
//	@Summary	List orders
//	@Tags		orders
//	@Produce	json
//	@Success	200	{array}		response.OrderResponse
//	@Failure	500	{object}	pkg.HTTPError
//	@Router		/orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("[order][handler] list failed")
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrderSummaries(list))
}

//	@Summary	Get order
//	@Tags		orders
//	@Produce	json
//	@Param		id	path		string	true	"Order ID"
//	@Success	200	{object}	response.OrderResponse
//	@Failure	400	{object}	pkg.HTTPError
//	@Failure	404	{object}	pkg.HTTPError
//	@Router		/orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	h.respondWithOrder(c, h.usecase.GetByID)
}

//	@Summary	Complete order
//	@Tags		orders
//	@Produce	json
//	@Param		id	path		string	true	"Order ID"
//	@Success	200	{object}	response.OrderResponse
//	@Failure	404	{object}	pkg.HTTPError
//	@Failure	409	{object}	pkg.HTTPError
//	@Router		/orders/{id}/complete [patch]
func (h *OrderHandler) CompleteOrder(c *gin.Context) {
	h.respondWithOrder(c, h.usecase.Complete)
}

//	@Summary	Cancel order
//	@Tags		orders
//	@Produce	json
//	@Param		id	path		string	true	"Order ID"
//	@Success	200	{object}	response.OrderResponse
//	@Failure	404	{object}	pkg.HTTPError
//	@Failure	409	{object}	pkg.HTTPError
//	@Router		/orders/{id}/cancel [patch]
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	h.respondWithOrder(c, h.usecase.Cancel)
}

// GetPublicSchedule serves the read-only schedule behind a customer share link.
//
//	@Summary	Public schedule
//	@Tags		public
//	@Produce	json
//	@Param		token	path		string	true	"Share token"
//	@Success	200		{object}	response.PublicScheduleResponse
//	@Failure	404		{object}	pkg.HTTPError
//	@Router		/public/schedules/{token} [get]
func (h *OrderHandler) GetPublicSchedule(c *gin.Context) {
	summary, err := h.usecase.GetPublicSchedule(c.Request.Context(), c.Param("token"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.ToPublicSchedule(summary))
}

func (h *OrderHandler) respondWithOrder(
	c *gin.Context,
	fetch func(ctx context.Context, id string) (usecase.OrderSummary, error),
) {
	id := c.Param("id")
	summary, err := fetch(c.Request.Context(), id)
	if err != nil {
		h.log.WithField("order_id", id).WithError(err).Warn("[order][handler] request failed")
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrderSummary(summary))
}
