//go:build e2e

package waitlist_test

import (
	"net/http"
	"testing"
	"time"

	"bookslot/internal/handler/dto/request"
	"bookslot/internal/handler/dto/response"
	"bookslot/tests/common/authtest"
	"bookslot/tests/common/dbtest"
	"bookslot/tests/common/httptest"
	"bookslot/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const waitlistURL = "/api/waitlist"

type waitlistSuite struct {
	e2e.SharedSuite

	serviceID uuid.UUID
	date      string
}

func TestWaitlistSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(waitlistSuite))
}

func (s *waitlistSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	s.serviceID = dbtest.CreateTestService(s.T(), s.DB, "Deep Tissue Massage", 60, 100)
	s.date = time.Now().AddDate(0, 0, 7).Format("2006-01-02")
}

func (s *waitlistSuite) enqueueRequest() request.EnqueueWaitlistRequest {
	return request.EnqueueWaitlistRequest{
		Name:              "Sam Waiting",
		Email:             "sam@example.com",
		Phone:             "555-987654",
		ServiceID:         s.serviceID,
		Date:              s.date,
		PreferredTimeSlot: "10:00",
	}
}

func (s *waitlistSuite) TestEnqueue() {
	s.Run("guests queue without a token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, waitlistURL, s.enqueueRequest(), "")

		var entry response.WaitlistEntryResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &entry)
		s.Equal("sam@example.com", entry.Customer.Email)
		s.Equal(s.date, entry.Date)
		s.False(entry.Notified)
		s.Require().NotNil(entry.PreferredTimeSlot)
		s.Equal("10:00", *entry.PreferredTimeSlot)
		s.Nil(entry.LocationID)
	})

	s.Run("preferred slot is optional", func() {
		req := s.enqueueRequest()
		req.PreferredTimeSlot = ""
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, waitlistURL, req, "")

		var entry response.WaitlistEntryResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &entry)
		s.Nil(entry.PreferredTimeSlot)
	})

	s.Run("unknown service is rejected", func() {
		req := s.enqueueRequest()
		req.ServiceID = uuid.New()
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, waitlistURL, req, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Selected service is not available")
	})

	s.Run("malformed preferred slot is rejected", func() {
		req := s.enqueueRequest()
		req.PreferredTimeSlot = "late afternoon"
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, waitlistURL, req, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "Domain validation failed")
	})
}

func (s *waitlistSuite) TestList() {
	s.Run("staff see entries oldest first", func() {
		staffToken := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "staff@example.com", "staff")

		for _, email := range []string{"first@example.com", "second@example.com"} {
			req := s.enqueueRequest()
			req.Email = email
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, waitlistURL, req, "")
			httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, nil)
		}

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, waitlistURL, nil, staffToken)

		var list response.WaitlistListResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &list)
		s.Require().Len(list.Entries, 2)
		s.Equal("first@example.com", list.Entries[0].Customer.Email)
		s.Equal("second@example.com", list.Entries[1].Customer.Email)
	})

	s.Run("notified filter narrows the result", func() {
		staffToken := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "staff@example.com", "staff")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, waitlistURL, s.enqueueRequest(), "")
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, nil)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, waitlistURL+"?notified=true", nil, staffToken)

		var list response.WaitlistListResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &list)
		s.Empty(list.Entries)
	})

	s.Run("regular users are refused", func() {
		userToken := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "user@example.com", "user")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, waitlistURL, nil, userToken)
		s.Equal(http.StatusForbidden, w.Code)
	})
}

func (s *waitlistSuite) TestRemove() {
	s.Run("staff remove an entry", func() {
		staffToken := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "staff@example.com", "staff")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, waitlistURL, s.enqueueRequest(), "")
		var entry response.WaitlistEntryResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &entry)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, waitlistURL+"/"+entry.ID.String(), nil, staffToken)
		s.Equal(http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, waitlistURL, nil, staffToken)
		var list response.WaitlistListResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &list)
		s.Empty(list.Entries)
	})

	s.Run("missing entry yields 404", func() {
		staffToken := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "staff@example.com", "staff")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, waitlistURL+"/"+uuid.NewString(), nil, staffToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Waitlist entry not found")
	})
}
