//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"checkout-engine/internal/domain/geo"
	"checkout-engine/internal/handler/api"
	reqdto "checkout-engine/internal/handler/dto/request"
	resdto "checkout-engine/internal/handler/dto/response"
	"checkout-engine/internal/usecase/queries"
	"checkout-engine/tests/common/httptest"
	queriesmock "checkout-engine/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DeliveryHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockDeliveryQueries
	handler     *api.DeliveryHandler
}

func (s *DeliveryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockDeliveryQueries(s.mockCtrl)
	s.handler = api.NewDeliveryHandler(s.mockQueries)

	s.router.POST("/delivery/check", s.handler.Check)
}

func (s *DeliveryHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDeliveryHandlerSuite(t *testing.T) {
	suite.Run(t, new(DeliveryHandlerTestSuite))
}

func (s *DeliveryHandlerTestSuite) TestCheck() {
	url := "/delivery/check"
	storeID := uuid.New()

	reqBody := reqdto.DeliveryCheckRequest{
		StoreID:  storeID,
		Location: &reqdto.DeliveryLocation{Lat: 35.0, Lng: 135.0},
	}

	s.Run("success: reports each delivery status", func() {
		testCases := []struct {
			name   string
			status queries.DeliveryStatus
		}{
			{name: "deliverable", status: queries.DeliveryStatusDeliverable},
			{name: "outside zone", status: queries.DeliveryStatusOutsideZone},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().
					CheckPoint(gomock.Any(), storeID, &geo.Point{Lat: 35.0, Lng: 135.0}).
					Return(tc.status, nil).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

				var body resdto.DeliveryCheckResponse
				httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
				s.Equal(string(tc.status), body.Status)
			})
		}
	})

	s.Run("success: missing location maps to a nil point", func() {
		s.mockQueries.EXPECT().
			CheckPoint(gomock.Any(), storeID, gomock.Nil()).
			Return(queries.DeliveryStatusLocationUnavailable, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			reqdto.DeliveryCheckRequest{StoreID: storeID}, "")

		var body resdto.DeliveryCheckResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("location_unavailable", body.Status)
	})

	s.Run("error: 404 for an unknown store", func() {
		s.mockQueries.EXPECT().CheckPoint(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(queries.DeliveryStatus(""), queries.ErrStoreNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Store not found")
	})

	s.Run("error: 400 for out-of-range coordinates", func() {
		bad := reqdto.DeliveryCheckRequest{
			StoreID:  storeID,
			Location: &reqdto.DeliveryLocation{Lat: 123.0, Lng: 135.0},
		}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, bad, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 500 on unexpected failures", func() {
		s.mockQueries.EXPECT().CheckPoint(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(queries.DeliveryStatus(""), errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to check delivery zone")
	})
}
