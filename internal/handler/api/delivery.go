package api

import (
	"errors"
	"net/http"

	"checkout-engine/internal/domain/geo"
	reqdto "checkout-engine/internal/handler/dto/request"
	resdto "checkout-engine/internal/handler/dto/response"
	"checkout-engine/internal/handler/httperr"
	"checkout-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DeliveryHandler struct {
	q queries.DeliveryQueries
}

func NewDeliveryHandler(q queries.DeliveryQueries) *DeliveryHandler {
	return &DeliveryHandler{q: q}
}

// @Summary Check delivery eligibility
// @Description Test a customer coordinate against the store's delivery zone. Omitting the location yields location_unavailable, which is distinct from outside_zone.
// @Tags delivery
// @Accept json
// @Produce json
// @Param request body reqdto.DeliveryCheckRequest true "Delivery check request"
// @Success 200 {object} resdto.DeliveryCheckResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /delivery/check [post]
func (h *DeliveryHandler) Check(c *gin.Context) {
	var req reqdto.DeliveryCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	var point *geo.Point
	if req.Location != nil {
		point = &geo.Point{Lat: req.Location.Lat, Lng: req.Location.Lng}
	}
	status, err := h.q.CheckPoint(c.Request.Context(), req.StoreID, point)
	if err != nil {
		if errors.Is(err, queries.ErrStoreNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Store not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to check delivery zone", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDeliveryStatus(status))
}
