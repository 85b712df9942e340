//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"bookslot/internal/handler/api"
	reqdto "bookslot/internal/handler/dto/request"
	resdto "bookslot/internal/handler/dto/response"
	"bookslot/internal/pkg/errs"
	"bookslot/internal/usecase/commands"
	"bookslot/tests/common/httptest"
	"bookslot/tests/common/testutil"
	commandsmock "bookslot/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPaymentCommands
	handler      *api.PaymentHandler
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPaymentCommands(s.mockCtrl)
	s.handler = api.NewPaymentHandler(s.mockCommands)

	s.router.POST("/payments/intent", s.handler.CreateIntent)
}

func (s *PaymentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

func (s *PaymentHandlerTestSuite) TestCreateIntent() {
	url := "/payments/intent"
	reqBody := reqdto.CreateIntentRequest{ServiceID: uuid.New()}

	s.Run("success: returns 201 Created with the client secret", func() {
		intent := &commands.PaymentIntent{
			ID:           "pi_123",
			ClientSecret: "pi_123_secret",
			Amount:       120,
			Currency:     "usd",
		}
		s.mockCommands.EXPECT().
			CreateIntent(gomock.Any(), commands.CreateIntentInput{ServiceID: reqBody.ServiceID}).
			Return(intent, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.PaymentIntentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("pi_123", response.IntentID)
		s.Equal("pi_123_secret", response.ClientSecret)
		s.Equal(120, response.Amount)
	})

	s.Run("error: 400 when serviceId is missing", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("serviceId", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "payments disabled",
				commandsError:  commands.ErrPaymentsDisabled,
				expectedStatus: http.StatusServiceUnavailable,
				expectedMsg:    "Payment processing is not configured",
			},
			{
				name:           "unknown service",
				commandsError:  errs.ErrServiceNotAvailable,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Selected service is not available",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("gateway error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateIntent(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
