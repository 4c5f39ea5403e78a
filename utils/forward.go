package utils

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// Forwarder relays requests to a sibling backend (hospital, pharmacy or
// insurance) and writes its response back verbatim. Connection failures
// are translated into a 502 JSON error envelope.
type Forwarder struct {
	client *http.Client
}

func NewForwarder(timeout time.Duration) *Forwarder {
	return &Forwarder{client: &http.Client{Timeout: timeout}}
}

// relayedHeaders are the request headers copied to the upstream call.
var relayedHeaders = []string{"Content-Type", "Authorization", "Accept"}

// Relay forwards the current request to baseURL+path and copies status,
// Content-Type and body of the upstream response to the client.
func (f *Forwarder) Relay(c *gin.Context, baseURL, path string) {
	target := strings.TrimSuffix(baseURL, "/") + path
	if raw := c.Request.URL.RawQuery; raw != "" {
		target += "?" + raw
	}

	req, err := http.NewRequestWithContext(c.Request.Context(), c.Request.Method, target, c.Request.Body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build upstream request"})
		return
	}
	for _, h := range relayedHeaders {
		if v := c.GetHeader(h); v != "" {
			req.Header.Set(h, v)
		}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "upstream service unavailable: " + err.Error()})
		return
	}
	defer resp.Body.Close()

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/json"
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to read upstream response"})
		return
	}
	c.Data(resp.StatusCode, contentType, body)
}
