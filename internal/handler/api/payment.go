package api

import (
	"net/http"

	reqdto "parkshare/internal/handler/dto/request"
	resdto "parkshare/internal/handler/dto/response"
	"parkshare/internal/handler/httperr"
	"parkshare/internal/handler/middleware"
	"parkshare/internal/usecase/commands"
	"parkshare/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	cmds commands.PaymentCommands
	q    queries.PaymentQueries
}

func NewPaymentHandler(cmds commands.PaymentCommands, q queries.PaymentQueries) *PaymentHandler {
	return &PaymentHandler{cmds: cmds, q: q}
}

// @Summary Create payment
// @Description Starts a pending payment for a booking. It settles after the configured confirmation delay.
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePaymentRequest true "Create payment request"
// @Success 201 {object} resdto.PaymentResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /payments [post]
func (h *PaymentHandler) Create(c *gin.Context) {
	renterID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindError(c, err)
		return
	}

	result, err := h.cmds.CreatePayment(c.Request.Context(), req.ToCommand(), renterID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), result.PaymentID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	resp, err := resdto.FromPaymentView(view)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.Header("Location", "/api/payments/"+result.PaymentID.String())
	c.JSON(http.StatusCreated, resp)
}

// @Summary Get payment
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Payment ID"
// @Success 200 {object} resdto.PaymentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /payments/{id} [get]
func (h *PaymentHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	resp, err := resdto.FromPaymentView(view)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
