package api

import (
	"errors"
	"net/http"

	"checkout-engine/internal/domain/coupon"
	reqdto "checkout-engine/internal/handler/dto/request"
	resdto "checkout-engine/internal/handler/dto/response"
	"checkout-engine/internal/handler/httperr"
	"checkout-engine/internal/usecase/commands"
	"checkout-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CouponHandler struct {
	cmds commands.CouponCommands
	q    queries.CouponQueries
}

func NewCouponHandler(cmds commands.CouponCommands, q queries.CouponQueries) *CouponHandler {
	return &CouponHandler{cmds: cmds, q: q}
}

// @Summary Resolve a coupon against a cart
// @Description Validate the coupon and compute its discount outcome without burning a use. Rejections return 422 with a machine-readable reason.
// @Tags coupons
// @Accept json
// @Produce json
// @Param request body reqdto.ResolveCouponRequest true "Resolve request"
// @Success 200 {object} resdto.DiscountOutcomeResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} resdto.CouponErrorResponse
// @Router /coupons/resolve [post]
func (h *CouponHandler) Resolve(c *gin.Context) {
	var req reqdto.ResolveCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	outcome, err := h.cmds.ResolveCoupon(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidQuoteRequest):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		case errors.Is(err, commands.ErrCouponNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Coupon not found", nil)
		default:
			if rejection := resdto.FromCouponError(err); rejection.Reason != "rejected" {
				httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Coupon rejected", rejection)
				return
			}
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to resolve coupon", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromDiscountOutcome(outcome))
}

// @Summary Redeem a coupon
// @Description Burn one use of the coupon at order commit. Enforced atomically; the losing concurrent redemption gets 409.
// @Tags coupons
// @Accept json
// @Produce json
// @Param code path string true "Coupon code"
// @Param request body reqdto.RedeemCouponRequest true "Redeem request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /coupons/{code}/redeem [post]
func (h *CouponHandler) Redeem(c *gin.Context) {
	var req reqdto.RedeemCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	err := h.cmds.RedeemCoupon(c.Request.Context(), req.StoreID, c.Param("code"))
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCouponNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Coupon not found", nil)
		case errors.Is(err, coupon.ErrUsageLimitReached):
			httperr.AbortWithError(c, http.StatusConflict, err, "Coupon usage limit reached", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to redeem coupon", nil)
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get coupon by code
// @Description Fetch a store's coupon definition
// @Tags coupons
// @Produce json
// @Param store_id path string true "Store ID"
// @Param code path string true "Coupon code"
// @Success 200 {object} resdto.CouponResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /stores/{store_id}/coupons/{code} [get]
func (h *CouponHandler) Get(c *gin.Context) {
	storeID, err := uuid.Parse(c.Param("store_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid store id", nil)
		return
	}
	view, err := h.q.GetByCode(c.Request.Context(), storeID, c.Param("code"))
	if err != nil {
		if errors.Is(err, queries.ErrCouponNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Coupon not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load coupon", nil)
		return
	}
	c.JSON(http.StatusOK, view)
}
