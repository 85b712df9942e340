//go:build unit

package api_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"bookslot/internal/handler/api"
	resdto "bookslot/internal/handler/dto/response"
	"bookslot/internal/pkg/errs"
	"bookslot/internal/usecase/commands"
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

type AppointmentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAppointmentCommands
	mockQueries  *queriesmock.MockAppointmentQueries
	handler      *api.AppointmentHandler

	actorID   uuid.UUID
	actorRole string
}

func (s *AppointmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAppointmentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAppointmentQueries(s.mockCtrl)
	s.handler = api.NewAppointmentHandler(s.mockCommands, s.mockQueries)

	s.actorID = uuid.New()
	s.actorRole = "user"

	// Stand-in for the auth middleware: a bearer header authenticates the
	// request, its absence leaves the caller anonymous.
	identify := func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.actorID)
			c.Set("user_role", s.actorRole)
		}
	}

	s.router.POST("/appointments", identify, s.handler.Create)
	s.router.GET("/appointments", identify, s.handler.List)
	s.router.GET("/appointments/slots", s.handler.BookedSlots)
	s.router.GET("/appointments/:id", identify, s.handler.Get)
	s.router.PUT("/appointments/:id", identify, s.handler.Update)
	s.router.DELETE("/appointments/:id", identify, s.handler.Delete)
}

func (s *AppointmentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAppointmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(AppointmentHandlerTestSuite))
}

func (s *AppointmentHandlerTestSuite) TestCreate() {
	url := "/appointments"
	b := builder.NewAppointmentBuilder()
	reqBody := b.BuildCreateRequestDTO()

	s.Run("success: guest booking returns 201 with envelope", func() {
		view := b.BuildView()
		s.mockCommands.EXPECT().
			Create(gomock.Any(), reqBody.ToInput(nil)).
			Return(&commands.BookingResult{Appointment: view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.AppointmentEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Require().NotNil(response.Appointment)
		s.Equal(view.ID, response.Appointment.ID)
		s.Equal("scheduled", response.Appointment.Status)
	})

	s.Run("success: authenticated booking carries the user id", func() {
		view := b.BuildView()
		s.mockCommands.EXPECT().
			Create(gomock.Any(), reqBody.ToInput(&s.actorID)).
			Return(&commands.BookingResult{Appointment: view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("success: full slot with waitlist opt-in returns 202", func() {
		entry := builder.NewWaitlistBuilder().BuildView()
		s.mockCommands.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(&commands.BookingResult{
				Queued:        true,
				WaitlistEntry: entry,
				Message:       "The requested slot is unavailable. You have been added to the waitlist.",
			}, nil).Times(1)

		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("joinWaitlistIfFull", true))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")

		var response resdto.QueuedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusAccepted, &response)
		s.Contains(response.Message, "waitlist")
		s.Require().NotNil(response.WaitlistEntry)
		s.Equal(entry.ID, response.WaitlistEntry.ID)
	})

	s.Run("error: 400 Bad Request on binding failures", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing serviceId", mutate: testutil.Field("serviceId", nil)},
			{name: "missing locationId", mutate: testutil.Field("locationId", nil)},
			{name: "missing date", mutate: testutil.Field("date", nil)},
			{name: "missing timeSlot", mutate: testutil.Field("timeSlot", nil)},
			{name: "malformed serviceId", mutate: testutil.Field("serviceId", "not-a-uuid")},
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
				name:           "unknown or inactive service",
				commandsError:  errs.ErrServiceNotAvailable,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Selected service is not available",
			},
			{
				name:           "unknown or inactive location",
				commandsError:  errs.ErrLocationNotAvailable,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Selected location is not available",
			},
			{
				name:           "slot in the past",
				commandsError:  errs.ErrAppointmentInPast,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Cannot book an appointment in the past",
			},
			{
				name:           "slot taken",
				commandsError:  errs.ErrSlotConflict,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Selected time slot is no longer available",
			},
			{
				name:           "domain validation",
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
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *AppointmentHandlerTestSuite) TestGet() {
	b := builder.NewAppointmentBuilder()

	s.Run("success: returns the appointment", func() {
		view := b.BuildView()
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), view.ID, s.actorID, s.actorRole).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments/"+view.ID.String(), nil, "bearer-token")

		var response resdto.AppointmentEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.Appointment.ID)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid appointment ID format")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name           string
			queriesError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "not found",
				queriesError:   errs.ErrAppointmentMissing,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Appointment not found",
			},
			{
				name:           "owned by someone else",
				queriesError:   errs.ErrAppointmentAccess,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Access denied",
			},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), s.actorID, s.actorRole).
					Return(nil, tc.queriesError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments/"+uuid.NewString(), nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *AppointmentHandlerTestSuite) TestList() {
	url := "/appointments"
	b := builder.NewAppointmentBuilder()

	s.Run("success: returns items and next cursor", func() {
		items := []*queries.AppointmentListItem{b.BuildListItem(), b.BuildListItem()}
		next := &queries.Cursor{After: "opaque-cursor"}
		s.mockQueries.EXPECT().
			List(gomock.Any(), queries.AppointmentFilter{}, s.actorID, s.actorRole, gomock.Nil(), 0).
			Return(items, next, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.AppointmentListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Appointments, 2)
		s.Require().NotNil(response.NextCursor)
		s.Equal("opaque-cursor", *response.NextCursor)
	})

	s.Run("success: forwards filters and paging", func() {
		date := "2030-06-15"
		status := "scheduled"
		locationID := uuid.New()
		s.mockQueries.EXPECT().
			List(gomock.Any(),
				queries.AppointmentFilter{Date: &date, Status: &status, LocationID: &locationID},
				s.actorID, s.actorRole,
				&queries.Cursor{After: "abc"}, 50).
			Return(nil, nil, nil).Times(1)

		q := fmt.Sprintf("?date=%s&status=%s&locationId=%s&cursor=abc&limit=50", date, status, locationID)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+q, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on malformed location filter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?locationId=nope", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid location ID format")
	})

	s.Run("error: 400 on invalid cursor", func() {
		s.mockQueries.EXPECT().
			List(gomock.Any(), gomock.Any(), s.actorID, s.actorRole, gomock.Any(), gomock.Any()).
			Return(nil, nil, queries.ErrInvalidCursor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?cursor=garbage", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cursor")
	})
}

func (s *AppointmentHandlerTestSuite) TestBookedSlots() {
	url := "/appointments/slots"

	s.Run("success: public occupancy without customer data", func() {
		slots := []*queries.BookedSlotView{
			{ID: uuid.New(), TimeSlot: "10:00", DurationMinutes: 60, ServiceID: uuid.New()},
		}
		s.mockQueries.EXPECT().
			BookedSlots(gomock.Any(), "2030-06-15", gomock.Nil()).
			Return(slots, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?date=2030-06-15", nil, "")

		var response resdto.BookedSlotsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Slots, 1)
		s.Equal("10:00", response.Slots[0].TimeSlot)
	})

	s.Run("error: 400 when date is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, `Query parameter "date" is required`)
	})

	s.Run("error: 400 on malformed date", func() {
		s.mockQueries.EXPECT().
			BookedSlots(gomock.Any(), "15-06-2030", gomock.Nil()).
			Return(nil, errs.ErrDomainValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?date=15-06-2030", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Date must be in YYYY-MM-DD format")
	})
}

func (s *AppointmentHandlerTestSuite) TestUpdate() {
	b := builder.NewAppointmentBuilder()

	s.Run("success: returns the updated appointment", func() {
		view := b.BuildView()
		body := map[string]any{"timeSlot": "11:00"}
		s.mockCommands.EXPECT().
			Update(gomock.Any(), view.ID, gomock.Any(), s.actorID, s.actorRole).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/appointments/"+view.ID.String(), body, "bearer-token")

		var response resdto.AppointmentEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.Appointment.ID)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "not found",
				commandsError:  errs.ErrAppointmentMissing,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Appointment not found",
			},
			{
				name:           "owned by someone else",
				commandsError:  errs.ErrAppointmentAccess,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Access denied",
			},
			{
				name:           "rescheduled into an occupied slot",
				commandsError:  errs.ErrSlotConflict,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Selected time slot is no longer available",
			},
			{
				name:           "rescheduled into the past",
				commandsError:  errs.ErrAppointmentInPast,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Cannot move an appointment into the past",
			},
			{
				name:           "terminal status transition",
				commandsError:  errs.ErrDomainValidation,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Domain validation failed",
			},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any(), s.actorID, s.actorRole).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/appointments/"+uuid.NewString(), map[string]any{}, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *AppointmentHandlerTestSuite) TestDelete() {
	s.Run("success: reports the promoted waitlist entry", func() {
		entry := builder.NewWaitlistBuilder().BuildView()
		id := uuid.New()
		s.mockCommands.EXPECT().
			Delete(gomock.Any(), id, s.actorID, s.actorRole).
			Return(&commands.DeleteResult{PromotedEntry: entry}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/appointments/"+id.String(), nil, "bearer-token")

		var response resdto.DeleteAppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Deleted)
		s.Require().NotNil(response.PromotedEntry)
		s.Equal(entry.ID, response.PromotedEntry.ID)
	})

	s.Run("success: no waitlist entry to promote", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().
			Delete(gomock.Any(), id, s.actorID, s.actorRole).
			Return(&commands.DeleteResult{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/appointments/"+id.String(), nil, "bearer-token")

		var response resdto.DeleteAppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Deleted)
		s.Nil(response.PromotedEntry)
	})

	s.Run("error: 404 when missing", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), gomock.Any(), s.actorID, s.actorRole).
			Return(nil, errs.ErrAppointmentMissing).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/appointments/"+uuid.NewString(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Appointment not found")
	})
}
