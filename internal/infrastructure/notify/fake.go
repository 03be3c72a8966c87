package notify

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/invite-labs/event-service/internal/application/checkin"
)

// FakeNotifier is the dev/test notifier: it logs the notification instead of
// sending anything. Failure modes can be simulated via FAKE_FAIL_MODE:
// "none" (default), "transient" or "permanent".
type FakeNotifier struct {
	lg zerolog.Logger
}

func NewFakeNotifier(lg zerolog.Logger) *FakeNotifier {
	return &FakeNotifier{
		lg: lg.With().Str("component", "fake_notifier").Logger(),
	}
}

func (f *FakeNotifier) Notify(ctx context.Context, n checkin.Notification) error {
	f.lg.Info().
		Str("to", n.Recipient).
		Str("name", n.Name).
		Str("registration_ref", n.RegistrationRef).
		Str("event", n.EventName).
		Msg("FAKE check-in notification")

	switch strings.TrimSpace(strings.ToLower(os.Getenv("FAKE_FAIL_MODE"))) {
	case "transient":
		return TemporaryError{msg: fmt.Sprintf("fake transient failure (%s)", n.RegistrationRef)}
	case "permanent":
		return PermanentError{msg: fmt.Sprintf("fake permanent failure (%s)", n.RegistrationRef)}
	default:
		return nil
	}
}
