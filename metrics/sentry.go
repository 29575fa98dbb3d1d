package metrics

import (
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/jsphweid/chordwatch/constants"
)

// Reporter sends fatal host errors to Sentry. The zero value and a Reporter
// built without a DSN do nothing.
type Reporter struct {
	enabled bool
}

func Init(dsn string) (*Reporter, error) {
	if dsn == "" {
		return &Reporter{}, nil
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:        dsn,
		ServerName: constants.AppName,
	})
	if err != nil {
		return &Reporter{}, err
	}
	return &Reporter{enabled: true}, nil
}

func (r *Reporter) Enabled() bool {
	return r != nil && r.enabled
}

// CaptureFatal reports err and waits for it to be sent, since the process is
// about to exit.
func (r *Reporter) CaptureFatal(err error) {
	if !r.Enabled() || err == nil {
		return
	}
	sentry.CaptureException(err)
	sentry.Flush(2 * time.Second)
}
