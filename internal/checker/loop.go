package checker

import (
	"context"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/MimoJanra/PulseCheck/internal/config"
)

// Loop checks a single host forever, one report line per check.
type Loop struct {
	cfg    config.Configuration
	client *http.Client
	out    *log.Logger
}

type Option func(*Loop)

// WithClient replaces the default client.
func WithClient(client *http.Client) Option {
	return func(l *Loop) {
		l.client = client
	}
}

// WithOutput redirects report lines, stdout by default.
func WithOutput(w io.Writer) Option {
	return func(l *Loop) {
		l.out = log.New(w, "", 0)
	}
}

func New(cfg config.Configuration, opts ...Option) *Loop {
	l := &Loop{
		cfg:    cfg,
		client: &http.Client{Timeout: DefaultTimeout},
		out:    log.New(os.Stdout, "", 0),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Loop) Check(ctx context.Context) CheckResult {
	return RunHTTPCheck(ctx, l.client, l.cfg.Host)
}

func (l *Loop) Report(res CheckResult) {
	l.out.Println(res.String())
}

// Run repeats check, report, wait until ctx is done. A check interrupted by
// cancellation is not reported.
func (l *Loop) Run(ctx context.Context) {
	period := l.cfg.Period()

	for {
		res := l.Check(ctx)
		if ctx.Err() != nil {
			return
		}
		l.Report(res)

		if !wait(ctx, period) {
			return
		}
	}
}

func wait(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}
