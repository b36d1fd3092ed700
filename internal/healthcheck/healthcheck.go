package healthcheck

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// CheckResult represents the result of a health check
type CheckResult struct {
	Service string
	Status  string
	Message string
	Error   error
}

// OK reports whether the check succeeded.
func (r CheckResult) OK() bool {
	return r.Status == "ok"
}

// CheckSource verifies the upstream PHP source answers a HEAD request with
// 200 before a download is attempted.
func CheckSource(ctx context.Context, url string) CheckResult {
	result := CheckResult{
		Service: "Source",
		Status:  "unknown",
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		result.Status = "error"
		result.Error = err
		result.Message = fmt.Sprintf("Failed to create request: %v", err)
		return result
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		result.Status = "error"
		result.Error = err
		result.Message = fmt.Sprintf("Cannot reach %s", url)
		return result
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		result.Status = "ok"
		result.Message = fmt.Sprintf("Reachable at %s", url)
	} else {
		result.Status = "error"
		result.Message = fmt.Sprintf("%s returned status %d", url, resp.StatusCode)
	}

	return result
}

// FormatResults formats health check results for display
func FormatResults(results []CheckResult) string {
	var b strings.Builder
	b.WriteString("\n=== Source Health Check ===\n\n")

	for _, result := range results {
		var status string
		switch result.Status {
		case "ok":
			status = "✓"
		case "error":
			status = "✗"
		default:
			status = "?"
		}

		fmt.Fprintf(&b, "%s %s: %s\n", status, result.Service, result.Message)
	}

	return b.String()
}

// GetRemediation provides remediation steps for failed checks
func GetRemediation(results []CheckResult) string {
	var remediation string

	for _, result := range results {
		if result.OK() || result.Service != "Source" {
			continue
		}
		remediation += fmt.Sprintf("\n%s is not accessible:\n", result.Service)
		remediation += `
  Check the network connection, or point source.url (LSRC2_SOURCE_URL)
  at a reachable mirror of remotecontrol_handle.php.

  A local copy can be used directly:
    lsrc2gen generate --source ./remotecontrol_handle.php
`
	}

	return remediation
}
