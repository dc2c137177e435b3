// Package healthcheck probes a running instance's /health route. It backs
// the container HEALTHCHECK binary.
package healthcheck

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	constants "github.com/Alarion239/devops-webapp/internal/constants"
	"github.com/Alarion239/devops-webapp/internal/handlers"
)

const Timeout = 2 * time.Second

var ErrUnhealthy = errors.New("service unhealthy")

// LocalURL is the base URL of an instance listening on port of this host.
func LocalURL(port int) string {
	return fmt.Sprintf("http://127.0.0.1:%d", port)
}

// Probe returns nil when baseURL answers 200 with status "healthy".
func Probe(ctx context.Context, client *http.Client, baseURL string) error {
	url := strings.TrimSuffix(baseURL, "/") + constants.ROUTE_HEALTH
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s returned %d", ErrUnhealthy, url, resp.StatusCode)
	}

	var body handlers.HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("%w: invalid body: %v", ErrUnhealthy, err)
	}
	if body.Status != constants.HEALTH_STATUS_OK {
		return fmt.Errorf("%w: status %q", ErrUnhealthy, body.Status)
	}
	return nil
}
