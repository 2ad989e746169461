//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"checkout-engine/internal/domain/coupon"
	"checkout-engine/internal/handler/api"
	reqdto "checkout-engine/internal/handler/dto/request"
	resdto "checkout-engine/internal/handler/dto/response"
	"checkout-engine/internal/usecase/commands"
	"checkout-engine/internal/usecase/queries"
	"checkout-engine/tests/common/builder"
	"checkout-engine/tests/common/httptest"
	"checkout-engine/tests/common/testutil"
	commandsmock "checkout-engine/tests/mock/commands"
	queriesmock "checkout-engine/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CouponHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCouponCommands
	mockQueries  *queriesmock.MockCouponQueries
	handler      *api.CouponHandler
}

func (s *CouponHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCouponCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCouponQueries(s.mockCtrl)
	s.handler = api.NewCouponHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/coupons/resolve", s.handler.Resolve)
	s.router.POST("/coupons/:code/redeem", s.handler.Redeem)
	s.router.GET("/stores/:store_id/coupons/:code", s.handler.Get)
}

func (s *CouponHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCouponHandlerSuite(t *testing.T) {
	suite.Run(t, new(CouponHandlerTestSuite))
}

func (s *CouponHandlerTestSuite) TestResolve() {
	url := "/coupons/resolve"

	reqBody := builder.NewQuoteRequestBuilder().BuildResolveRequest("SAVE10")
	outcome := &coupon.DiscountOutcome{
		AppliedCode:    coupon.Code("SAVE10"),
		DiscountAmount: decimal.NewFromInt(10),
	}

	s.Run("success: returns 200 with discount outcome", func() {
		s.mockCommands.EXPECT().ResolveCoupon(gomock.Any(), gomock.Any()).
			Return(outcome, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.DiscountOutcomeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("SAVE10", body.AppliedCode)
		s.True(body.DiscountAmount.Equal(decimal.NewFromInt(10)))
		s.False(body.FreeShipping)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: store_id", mutate: testutil.Field("store_id", nil)},
			{name: "missing field: code", mutate: testutil.Field("code", nil)},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 404 when the coupon does not exist", func() {
		s.mockCommands.EXPECT().ResolveCoupon(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrCouponNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Coupon not found")
	})

	s.Run("error: 422 with machine-readable reason on rejection", func() {
		testCases := []struct {
			name           string
			resolveError   error
			expectedReason string
		}{
			{name: "inactive", resolveError: coupon.ErrInactive, expectedReason: "inactive"},
			{name: "expired", resolveError: coupon.ErrExpired, expectedReason: "expired"},
			{name: "usage limit", resolveError: coupon.ErrUsageLimitReached, expectedReason: "usage_limit_reached"},
			{name: "below minimum", resolveError: coupon.ErrBelowMinimumPurchase, expectedReason: "below_minimum_purchase"},
			{name: "out of scope", resolveError: coupon.ErrNotApplicableToCart, expectedReason: "not_applicable"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().ResolveCoupon(gomock.Any(), gomock.Any()).
					Return(nil, tc.resolveError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

				s.Equal(http.StatusUnprocessableEntity, rec.Code)
				var body struct {
					Detail resdto.CouponErrorResponse `json:"detail"`
				}
				s.Require().NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &body))
				s.Equal(tc.expectedReason, body.Detail.Reason)
			})
		}
	})

	s.Run("error: 500 on unexpected failures", func() {
		s.mockCommands.EXPECT().ResolveCoupon(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to resolve coupon")
	})
}

func (s *CouponHandlerTestSuite) TestRedeem() {
	url := "/coupons/SAVE10/redeem"
	reqBody := reqdto.RedeemCouponRequest{StoreID: uuid.New()}

	s.Run("success: returns 204 and burns one use", func() {
		s.mockCommands.EXPECT().RedeemCoupon(gomock.Any(), reqBody.StoreID, "SAVE10").
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 when the usage limit is exhausted", func() {
		s.mockCommands.EXPECT().RedeemCoupon(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(coupon.ErrUsageLimitReached).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "usage limit")
	})

	s.Run("error: 404 for an unknown code", func() {
		s.mockCommands.EXPECT().RedeemCoupon(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(commands.ErrCouponNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Coupon not found")
	})

	s.Run("error: 400 when store_id is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *CouponHandlerTestSuite) TestGet() {
	storeID := uuid.New()
	url := "/stores/" + storeID.String() + "/coupons/SAVE10"

	view := &queries.CouponView{
		ID:            uuid.New(),
		StoreID:       storeID,
		Code:          "SAVE10",
		Active:        true,
		DiscountType:  string(coupon.DiscountPercentage),
		DiscountValue: decimal.NewFromInt(10),
		AppliesTo:     string(coupon.AppliesToAll),
		ValidFrom:     time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	s.Run("success: returns 200 with the coupon view", func() {
		s.mockQueries.EXPECT().GetByCode(gomock.Any(), storeID, "SAVE10").
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body queries.CouponView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("SAVE10", body.Code)
		s.True(body.DiscountValue.Equal(decimal.NewFromInt(10)))
	})

	s.Run("error: 404 for an unknown code", func() {
		s.mockQueries.EXPECT().GetByCode(gomock.Any(), storeID, "SAVE10").
			Return(nil, queries.ErrCouponNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Coupon not found")
	})

	s.Run("error: 400 for a malformed store id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/stores/not-a-uuid/coupons/SAVE10", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid store id")
	})
}
