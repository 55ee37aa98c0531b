package httpx

import (
	"net"
	"net/http"
	"time"
)

// Client returns the shared outbound client used for backend calls.
// The timeout is the only cancellation policy the desk applies; once
// a mutation is on the wire it is never cancelled mid-flight.
var defaultClient = &http.Client{
	Timeout: 15 * time.Second,
	Transport: &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		MaxConnsPerHost:     100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	},
}

func Client() *http.Client { return defaultClient }
