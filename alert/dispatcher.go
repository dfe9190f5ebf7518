// alert/dispatcher.go
package alert

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	logger "github.com/intentlock/ibac/logging"
	"github.com/intentlock/ibac/util"
)

// EventAccessDenied is published by the access service when a mandatory,
// discretionary or freshness check fails. The payload is the subject ID.
const EventAccessDenied = "access.denied"

// SubjectID identifies the subject of a shared signal.
type SubjectID struct {
	Format string `json:"format"`
	Email  string `json:"email"`
}

// SharedSignalRequest is the payload accepted by the SIEM and RISC receivers.
type SharedSignalRequest struct {
	SubjectID SubjectID `json:"subject_id"`
}

type receiverAck struct {
	Status string `json:"status"`
}

// Destination is one external signal-sharing receiver.
type Destination struct {
	Name string
	URL  string
}

// Dispatcher notifies the external signal-sharing receivers of a policy
// violation. Dispatching is best-effort: a destination that cannot be reached
// is retried a bounded number of times, logged, and never affects the access
// decision already rendered.
type Dispatcher struct {
	destinations []Destination
	httpClient   *http.Client
	maxRetries   int
}

func NewDispatcher(destinations []Destination, timeout time.Duration, maxRetries int) *Dispatcher {
	return &Dispatcher{
		destinations: destinations,
		httpClient:   &http.Client{Timeout: timeout},
		maxRetries:   maxRetries,
	}
}

// Register wires the dispatcher to the event bus. Handlers run off the
// decision path, so dispatching never extends caller-visible latency.
func (d *Dispatcher) Register(eventBus *util.EventBus) {
	eventBus.Subscribe(EventAccessDenied, func(ctx context.Context, event util.Event) error {
		subjectID, ok := event.Payload.(string)
		if !ok {
			return fmt.Errorf("unexpected alert payload type: %T", event.Payload)
		}
		return d.Dispatch(ctx, subjectID)
	})
}

// Dispatch sends one shared signal per destination. Destinations are notified
// independently; one failing does not stop the others.
func (d *Dispatcher) Dispatch(ctx context.Context, subjectID string) error {
	payload, err := json.Marshal(SharedSignalRequest{
		SubjectID: SubjectID{Format: "email", Email: subjectID},
	})
	if err != nil {
		return fmt.Errorf("failed to marshal shared signal: %w", err)
	}

	var g errgroup.Group
	for _, dest := range d.destinations {
		dest := dest
		g.Go(func() error {
			if err := d.notify(ctx, dest, payload); err != nil {
				logger.Error("Failed to deliver shared signal",
					zap.Error(err),
					zap.String("destination", dest.Name),
					zap.String("subjectID", subjectID))
				return err
			}
			return nil
		})
	}
	return g.Wait()
}

func (d *Dispatcher) notify(ctx context.Context, dest Destination, payload []byte) error {
	var lastErr error
	for attempt := 0; attempt <= d.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(time.Duration(attempt) * 200 * time.Millisecond):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, dest.URL, bytes.NewReader(payload))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := d.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		var ack receiverAck
		if err := json.NewDecoder(resp.Body).Decode(&ack); err != nil {
			ack.Status = "unacknowledged"
		}
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			lastErr = fmt.Errorf("receiver %s returned status %d", dest.Name, resp.StatusCode)
			continue
		}

		logger.Info("Shared signal delivered",
			zap.String("destination", dest.Name),
			zap.String("ack", ack.Status))
		return nil
	}
	return lastErr
}
