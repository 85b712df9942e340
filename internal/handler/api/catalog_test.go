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

type CatalogHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCatalogCommands
	mockQueries  *queriesmock.MockCatalogQueries
	handler      *api.CatalogHandler
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCatalogCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	s.handler = api.NewCatalogHandler(s.mockCommands, s.mockQueries)

	// Stand-in for the optional-auth middleware.
	s.router.Use(func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", uuid.New())
			c.Set("user_role", "staff")
		}
	})

	s.router.GET("/services", s.handler.ListServices)
	s.router.POST("/services", s.handler.CreateService)
	s.router.PUT("/services/:id", s.handler.UpdateService)
	s.router.GET("/locations", s.handler.ListLocations)
	s.router.POST("/locations", s.handler.CreateLocation)
	s.router.PUT("/locations/:id", s.handler.UpdateLocation)
}

func (s *CatalogHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

func (s *CatalogHandlerTestSuite) TestListServices() {
	url := "/services"

	s.Run("success: anonymous callers get active services only", func() {
		views := []*queries.ServiceView{builder.NewServiceBuilder().BuildView()}
		s.mockQueries.EXPECT().ListServices(gomock.Any(), false).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?includeInactive=true", nil, "")

		var response []*resdto.ServiceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal(views[0].Name, response[0].Name)
	})

	s.Run("success: staff can include inactive services", func() {
		s.mockQueries.EXPECT().ListServices(gomock.Any(), true).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?includeInactive=true", nil, "staff-token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 500 on a query failure", func() {
		s.mockQueries.EXPECT().ListServices(gomock.Any(), false).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *CatalogHandlerTestSuite) TestCreateService() {
	url := "/services"
	reqBody := builder.NewServiceBuilder().BuildCreateRequestDTO()

	s.Run("success: returns 201 Created", func() {
		view := builder.NewServiceBuilder().BuildView()
		s.mockCommands.EXPECT().
			CreateService(gomock.Any(), reqBody.ToInput()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "staff-token")

		var response resdto.ServiceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID, response.ID)
		s.True(response.IsActive)
	})

	s.Run("error: 400 Bad Request on binding failures", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing name", mutate: testutil.Field("name", nil)},
			{name: "missing duration", mutate: testutil.Field("durationMinutes", nil)},
			{name: "missing price", mutate: testutil.Field("price", nil)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "staff-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: 422 on invalid service definition", func() {
		s.mockCommands.EXPECT().CreateService(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrDomainValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "staff-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Domain validation failed")
	})
}

func (s *CatalogHandlerTestSuite) TestUpdateService() {
	s.Run("success: returns the updated service", func() {
		id := uuid.New()
		view := builder.NewServiceBuilder().BuildView()
		body := map[string]any{"price": 150}
		s.mockCommands.EXPECT().
			UpdateService(gomock.Any(), id, gomock.Any()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/services/"+id.String(), body, "staff-token")

		var response resdto.ServiceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
	})

	s.Run("error: 400 on a malformed ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/services/not-a-uuid", map[string]any{}, "staff-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid service ID format")
	})

	s.Run("error: 404 when the service is unknown", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().UpdateService(gomock.Any(), id, gomock.Any()).
			Return(nil, errs.ErrServiceNotAvailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/services/"+id.String(), map[string]any{}, "staff-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Service not found")
	})
}

func (s *CatalogHandlerTestSuite) TestCreateLocation() {
	url := "/locations"
	reqBody := builder.NewLocationBuilder().BuildCreateRequestDTO()

	s.Run("success: returns 201 Created", func() {
		view := builder.NewLocationBuilder().BuildView()
		s.mockCommands.EXPECT().
			CreateLocation(gomock.Any(), reqBody.ToInput()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "staff-token")

		var response resdto.LocationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.Name, response.Name)
		s.Equal(view.SlotIntervalMinutes, response.SlotIntervalMinutes)
	})

	s.Run("error: 400 when required fields are missing", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("name", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "staff-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *CatalogHandlerTestSuite) TestUpdateLocation() {
	s.Run("error: 404 when the location is unknown", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().UpdateLocation(gomock.Any(), id, gomock.Any()).
			Return(nil, errs.ErrLocationNotAvailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/locations/"+id.String(), map[string]any{}, "staff-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Location not found")
	})
}

func (s *CatalogHandlerTestSuite) TestListLocations() {
	s.Run("success: returns locations", func() {
		views := []*queries.LocationView{builder.NewLocationBuilder().BuildView()}
		s.mockQueries.EXPECT().ListLocations(gomock.Any(), false).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/locations", nil, "")

		var response []*resdto.LocationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})
}
