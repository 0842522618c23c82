package config

import (
	"errors"
	"math"
	"strconv"
	"time"

	whatwg "github.com/nlnwa/whatwg-url/url"
)

var (
	ErrArgumentCount  = errors.New("You must pass 2 arguments: interval and hostname")
	ErrIntervalFormat = errors.New("Interval is not a number.")
	ErrURLFormat      = errors.New("URL parsing error. Hostname is not valid")
)

// program name + interval + host
const argCount = 3

// Configuration is the validated interval/host pair the check loop runs with.
type Configuration struct {
	// Interval is the pause between two checks, in seconds.
	Interval uint64
	// Host is the canonical form of the target URL.
	Host string
}

// Create builds a Configuration from the raw process arguments (os.Args layout).
func Create(args []string) (Configuration, error) {
	if len(args) != argCount {
		return Configuration{}, ErrArgumentCount
	}

	interval, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		return Configuration{}, ErrIntervalFormat
	}

	host, err := canonicalURL(args[2])
	if err != nil {
		return Configuration{}, ErrURLFormat
	}

	return Configuration{
		Interval: interval,
		Host:     host,
	}, nil
}

// Period returns Interval as a duration, saturating instead of overflowing.
func (c Configuration) Period() time.Duration {
	if c.Interval > uint64(math.MaxInt64/int64(time.Second)) {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(c.Interval) * time.Second
}

func canonicalURL(raw string) (string, error) {
	u, err := whatwg.Parse(raw)
	if err != nil {
		return "", err
	}
	return u.Href(false), nil
}
