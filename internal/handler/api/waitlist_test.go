//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"bookslot/internal/handler/api"
	resdto "bookslot/internal/handler/dto/response"
	"bookslot/internal/pkg/errs"
	"bookslot/internal/usecase/queries"
	"bookslot/tests/common/builder"
	"bookslot/tests/common/httptest"
	"bookslot/tests/common/testutil"
	commandsmock "bookslot/tests/mock/commands"
	queriesmock "bookslot/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WaitlistHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockWaitlistCommands
	mockQueries  *queriesmock.MockWaitlistQueries
	handler      *api.WaitlistHandler
}

func (s *WaitlistHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockWaitlistCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockWaitlistQueries(s.mockCtrl)
	s.handler = api.NewWaitlistHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/waitlist", s.handler.Enqueue)
	s.router.GET("/waitlist", s.handler.List)
	s.router.DELETE("/waitlist/:id", s.handler.Remove)
}

func (s *WaitlistHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWaitlistHandlerSuite(t *testing.T) {
	suite.Run(t, new(WaitlistHandlerTestSuite))
}

func (s *WaitlistHandlerTestSuite) TestEnqueue() {
	url := "/waitlist"
	reqBody := builder.NewWaitlistBuilder().BuildEnqueueRequestDTO()

	s.Run("success: returns 201 Created with the entry", func() {
		view := builder.NewWaitlistBuilder().BuildView()
		s.mockCommands.EXPECT().
			Enqueue(gomock.Any(), reqBody.ToInput()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.WaitlistEntryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID, response.ID)
		s.Equal(view.Customer.Email, response.Customer.Email)
		s.False(response.Notified)
	})

	s.Run("error: 400 Bad Request on binding failures", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing serviceId", mutate: testutil.Field("serviceId", nil)},
			{name: "missing date", mutate: testutil.Field("date", nil)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "unknown service",
				commandsError:  errs.ErrServiceNotAvailable,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Selected service is not available",
			},
			{
				name:           "unknown location",
				commandsError:  errs.ErrLocationNotAvailable,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Selected location is not available",
			},
			{
				name:           "invalid entry",
				commandsError:  errs.ErrDomainValidation,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Domain validation failed",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Enqueue(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *WaitlistHandlerTestSuite) TestList() {
	url := "/waitlist"

	s.Run("success: returns entries with a next cursor", func() {
		entries := []*queries.WaitlistEntryView{
			builder.NewWaitlistBuilder().BuildView(),
			builder.NewWaitlistBuilder().BuildView(),
		}
		next := &queries.Cursor{After: "opaque-cursor"}
		s.mockQueries.EXPECT().
			List(gomock.Any(), queries.WaitlistFilter{}, gomock.Nil(), 0).
			Return(entries, next, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.WaitlistListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Entries, 2)
		s.Require().NotNil(response.NextCursor)
		s.Equal("opaque-cursor", *response.NextCursor)
	})

	s.Run("success: forwards filters and paging params", func() {
		serviceID := uuid.New()
		date := "2030-06-15"
		notified := false
		s.mockQueries.EXPECT().
			List(gomock.Any(),
				queries.WaitlistFilter{ServiceID: &serviceID, Date: &date, Notified: &notified},
				&queries.Cursor{After: "abc"}, 10).
			Return(nil, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			url+"?serviceId="+serviceID.String()+"&date=2030-06-15&notified=false&cursor=abc&limit=10", nil, "")

		var response resdto.WaitlistListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response.Entries)
	})

	s.Run("error: 400 on malformed service filter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?serviceId=not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid service ID format")
	})

	s.Run("error: 400 on an unusable cursor", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, queries.ErrInvalidCursor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?cursor=garbage", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cursor")
	})
}

func (s *WaitlistHandlerTestSuite) TestRemove() {
	s.Run("success: returns 204 No Content", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Remove(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/waitlist/"+id.String(), nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 on a malformed ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/waitlist/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid waitlist entry ID format")
	})

	s.Run("error: 404 when the entry is gone", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Remove(gomock.Any(), id).
			Return(errs.ErrWaitlistEntryMissing).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/waitlist/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Waitlist entry not found")
	})
}
