//go:build unit

package response_test

import (
	"testing"

	"bookslot/internal/handler/dto/response"
	"bookslot/internal/usecase/queries"
	"bookslot/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

func TestFromAppointmentView(t *testing.T) {
	t.Run("maps every field", func(t *testing.T) {
		userID := uuid.New()
		view := builder.NewAppointmentBuilder().WithUserID(userID).BuildView()
		notes := "please call ahead"
		intentID := "pi_123"
		view.Notes = &notes
		view.Payment.IntentID = &intentID
		view.LoyaltyPointsAwarded = 12

		got := response.FromAppointmentView(view)

		want := &response.AppointmentResponse{
			ID: view.ID,
			Customer: response.CustomerResponse{
				Name:  view.Customer.Name,
				Email: view.Customer.Email,
				Phone: view.Customer.Phone,
			},
			UserID:    &userID,
			ServiceID: view.ServiceID,
			ServiceSnapshot: response.ServiceSnapshotResponse{
				Name:            view.ServiceSnapshot.Name,
				DurationMinutes: view.ServiceSnapshot.DurationMinutes,
				Price:           view.ServiceSnapshot.Price,
			},
			LocationID:      view.LocationID,
			LocationName:    view.LocationName,
			Date:            view.Date,
			TimeSlot:        view.TimeSlot,
			DurationMinutes: view.DurationMinutes,
			Status:          "scheduled",
			Notes:           &notes,
			Payment: response.PaymentResponse{
				Status:   "not_required",
				Amount:   view.Payment.Amount,
				Currency: "usd",
				IntentID: &intentID,
			},
			LoyaltyPointsAwarded: 12,
			CreatedAt:            view.CreatedAt,
			UpdatedAt:            view.UpdatedAt,
		}

		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("appointment response mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("optional fields stay nil", func(t *testing.T) {
		view := builder.NewAppointmentBuilder().BuildView()

		got := response.FromAppointmentView(view)

		if got.UserID != nil || got.Notes != nil || got.Payment.IntentID != nil || got.CalendarEventID != nil {
			t.Errorf("expected optional fields to stay nil, got %+v", got)
		}
	})
}

func TestFromWaitlistEntryView(t *testing.T) {
	view := builder.NewWaitlistBuilder().BuildView()

	got := response.FromWaitlistEntryView(view)

	want := &response.WaitlistEntryResponse{
		ID: view.ID,
		Customer: response.CustomerResponse{
			Name:  view.Customer.Name,
			Email: view.Customer.Email,
			Phone: view.Customer.Phone,
		},
		ServiceID:         view.ServiceID,
		ServiceName:       view.ServiceName,
		LocationID:        view.LocationID,
		Date:              view.Date,
		PreferredTimeSlot: view.PreferredTimeSlot,
		Notified:          false,
		CreatedAt:         view.CreatedAt,
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("waitlist entry response mismatch (-want +got):\n%s", diff)
	}
}

func TestFromAppointmentListItem(t *testing.T) {
	item := builder.NewAppointmentBuilder().BuildListItem()

	got := response.FromAppointmentListItem(item)

	want := &response.AppointmentListItemResponse{
		ID:              item.ID,
		CustomerName:    item.CustomerName,
		ServiceName:     item.ServiceName,
		LocationName:    item.LocationName,
		Date:            item.Date,
		TimeSlot:        item.TimeSlot,
		DurationMinutes: item.DurationMinutes,
		Status:          item.Status,
		CreatedAt:       item.CreatedAt,
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("list item response mismatch (-want +got):\n%s", diff)
	}
}

func TestFromBookedSlotView(t *testing.T) {
	view := &queries.BookedSlotView{
		ID:              uuid.New(),
		TimeSlot:        "10:00",
		DurationMinutes: 60,
		ServiceID:       uuid.New(),
	}

	got := response.FromBookedSlotView(view)

	want := &response.BookedSlotResponse{
		ID:              view.ID,
		TimeSlot:        view.TimeSlot,
		DurationMinutes: view.DurationMinutes,
		ServiceID:       view.ServiceID,
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("booked slot response mismatch (-want +got):\n%s", diff)
	}
}
