package notify

import (
	"context"

	"github.com/pkg/errors"

	"github.com/beNeighb/backend/pkg/logger"
)

// ErrUnregistered is returned by a Sender when the recipient token is no
// longer registered with the push provider. Callers clear the stored token
// and move on; delivery failures never propagate to the request.
var ErrUnregistered = errors.New("push token is not registered")

type Sender interface {
	Send(ctx context.Context, token, title, body string, data map[string]string) error
}

// LogSender is the default Sender outside production: it logs the payload
// instead of talking to a push provider.
type LogSender struct {
	Logger logger.Logger
}

func (s *LogSender) Send(_ context.Context, token, title, body string, data map[string]string) error {
	s.Logger.Info("push notification",
		"token", token,
		"title", title,
		"body", body,
		"data", data,
	)
	return nil
}
