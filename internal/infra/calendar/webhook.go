package calendar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"bookslot/internal/pkg/config"
	"bookslot/internal/usecase/queries"
)

// WebhookBridge mirrors appointments into an external calendar through a
// small HTTP bridge service. The bridge owns the provider credentials; this
// process only ever talks JSON over HTTP.
type WebhookBridge struct {
	client *http.Client
	url    string
	token  string
}

func NewWebhookBridge(cfg config.CalendarConfig) *WebhookBridge {
	return &WebhookBridge{
		client: &http.Client{Timeout: 5 * time.Second},
		url:    cfg.BridgeURL,
		token:  cfg.Token,
	}
}

type upsertRequest struct {
	AppointmentID string `json:"appointment_id"`
	EventID       string `json:"event_id,omitempty"`
	Title         string `json:"title"`
	Location      string `json:"location"`
	Date          string `json:"date"`
	TimeSlot      string `json:"time_slot"`
	DurationMin   int    `json:"duration_minutes"`
	Description   string `json:"description"`
}

type upsertResponse struct {
	EventID string `json:"event_id"`
}

func (b *WebhookBridge) UpsertEvent(ctx context.Context, appt *queries.AppointmentView) (string, error) {
	req := upsertRequest{
		AppointmentID: appt.ID.String(),
		Title:         fmt.Sprintf("%s - %s", appt.ServiceSnapshot.Name, appt.Customer.Name),
		Location:      appt.LocationName,
		Date:          appt.Date,
		TimeSlot:      appt.TimeSlot,
		DurationMin:   appt.DurationMinutes,
		Description:   fmt.Sprintf("Booked via bookslot (%s)", appt.Status),
	}
	if appt.CalendarEventID != nil {
		req.EventID = *appt.CalendarEventID
	}

	var resp upsertResponse
	if err := b.post(ctx, "/events", req, &resp); err != nil {
		return "", err
	}
	if resp.EventID == "" {
		return "", fmt.Errorf("calendar bridge returned empty event_id")
	}
	return resp.EventID, nil
}

func (b *WebhookBridge) DeleteEvent(ctx context.Context, eventID string) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodDelete, b.url+"/events/"+eventID, nil)
	if err != nil {
		return fmt.Errorf("failed to build calendar delete request: %w", err)
	}
	b.authorize(httpReq)

	res, err := b.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("calendar bridge delete failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 300 && res.StatusCode != http.StatusNotFound {
		return fmt.Errorf("calendar bridge delete returned status %d", res.StatusCode)
	}
	return nil
}

func (b *WebhookBridge) post(ctx context.Context, path string, body any, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal calendar payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, b.url+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to build calendar request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	b.authorize(httpReq)

	res, err := b.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("calendar bridge request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 300 {
		return fmt.Errorf("calendar bridge returned status %d", res.StatusCode)
	}
	if out != nil {
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode calendar response: %w", err)
		}
	}
	return nil
}

func (b *WebhookBridge) authorize(req *http.Request) {
	if b.token != "" {
		req.Header.Set("Authorization", "Bearer "+b.token)
	}
}
