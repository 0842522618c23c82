package checker

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout bounds a single check so a hung target cannot stall the loop.
const DefaultTimeout = 10 * time.Second

// at most this much of a response body is read before closing, to allow connection reuse
const maxDrainBytes = 64 << 10

type Outcome int

const (
	OutcomeHostError Outcome = iota
	OutcomeOK
	OutcomeHTTPError
)

type CheckResult struct {
	Host       string
	Outcome    Outcome
	StatusCode int
}

// String renders the report line for the result.
func (r CheckResult) String() string {
	switch r.Outcome {
	case OutcomeOK:
		return fmt.Sprintf("Checking '%s'. Result: OK(%d)", r.Host, r.StatusCode)
	case OutcomeHTTPError:
		return fmt.Sprintf("Checking '%s'. Result: ERR(%d)", r.Host, r.StatusCode)
	default:
		return fmt.Sprintf("The '%s' host error", r.Host)
	}
}

// RunHTTPCheck issues one GET against host and classifies the outcome.
func RunHTTPCheck(ctx context.Context, client *http.Client, host string) CheckResult {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, host, nil)
	if err != nil {
		return createErrorResult(host)
	}

	resp, err := client.Do(req)
	if err != nil {
		return createErrorResult(host)
	}

	defer closeResponseBody(resp.Body)
	return createResponseResult(host, resp)
}

func createErrorResult(host string) CheckResult {
	return CheckResult{
		Host:    host,
		Outcome: OutcomeHostError,
	}
}

func closeResponseBody(body io.ReadCloser) {
	if body != nil {
		_, _ = io.Copy(io.Discard, io.LimitReader(body, maxDrainBytes))
		_ = body.Close()
	}
}

func createResponseResult(host string, resp *http.Response) CheckResult {
	return CheckResult{
		Host:       host,
		Outcome:    determineOutcome(resp.StatusCode),
		StatusCode: resp.StatusCode,
	}
}

func determineOutcome(statusCode int) Outcome {
	if statusCode >= 200 && statusCode <= 299 {
		return OutcomeOK
	}
	return OutcomeHTTPError
}
