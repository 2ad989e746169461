package api

import (
	"errors"
	"net/http"

	reqdto "checkout-engine/internal/handler/dto/request"
	resdto "checkout-engine/internal/handler/dto/response"
	"checkout-engine/internal/handler/httperr"
	"checkout-engine/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type QuoteHandler struct {
	cmds commands.QuoteCommands
}

func NewQuoteHandler(cmds commands.QuoteCommands) *QuoteHandler {
	return &QuoteHandler{cmds: cmds}
}

// @Summary Price a cart
// @Description Compute subtotal, coupon discount, shipping charge and total for a cart. A rejected coupon is reported inside the response, not as an HTTP error.
// @Tags quotes
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteRequest true "Quote request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /quotes [post]
func (h *QuoteHandler) Create(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.PriceQuote(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidQuoteRequest):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid quote request", nil)
		case errors.Is(err, commands.ErrStoreNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Store not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to price quote", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuoteResult(result))
}
