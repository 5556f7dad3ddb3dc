// Package webhook delivers order lifecycle events to an external HTTP endpoint.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

const defaultTimeout = 5 * time.Second

// orderPayload is the wire form of an order inside webhook events.
type orderPayload struct {
	ID         string   `json:"id"`
	OrderID    string   `json:"order_id"`
	CustomerID string   `json:"customer_id"`
	DriverID   *string  `json:"driver_id"`
	Address    string   `json:"address"`
	Lat        float64  `json:"lat"`
	Lng        float64  `json:"lng"`
	Status     string   `json:"status"`
	CreatedAt  string   `json:"created_at"`
	UpdatedAt  string   `json:"updated_at"`
}

// event is the envelope posted to the webhook endpoint.
type event struct {
	Event     string       `json:"event"`
	Order     orderPayload `json:"order"`
	Timestamp string       `json:"timestamp"`
}

// Notifier posts order events to a configured webhook URL.
// Delivery is best effort; callers decide how to handle errors.
type Notifier struct {
	url    string
	client *http.Client
}

// NewNotifier creates a webhook notifier targeting the given URL.
func NewNotifier(url string) (*Notifier, error) {
	if url == "" {
		return nil, errs.NewValueIsRequiredError("url")
	}

	return &Notifier{
		url:    url,
		client: &http.Client{Timeout: defaultTimeout},
	}, nil
}

// NotifyOrderCreated posts an order_created event for the given order.
func (n *Notifier) NotifyOrderCreated(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	body, err := json.Marshal(event{
		Event:     "order_created",
		Order:     toPayload(aggregate),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	// Drain the body so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("webhook responded with status %d", resp.StatusCode)
	}

	return nil
}

func toPayload(aggregate *order.Order) orderPayload {
	var driverID *string
	if id := aggregate.DriverID(); id != nil {
		s := id.String()
		driverID = &s
	}

	return orderPayload{
		ID:         aggregate.ID().String(),
		OrderID:    aggregate.ExternalID(),
		CustomerID: aggregate.CustomerID().String(),
		DriverID:   driverID,
		Address:    aggregate.Address(),
		Lat:        aggregate.Location().Lat(),
		Lng:        aggregate.Location().Lng(),
		Status:     aggregate.Status().String(),
		CreatedAt:  aggregate.CreatedAt().UTC().Format(time.RFC3339),
		UpdatedAt:  aggregate.UpdatedAt().UTC().Format(time.RFC3339),
	}
}
