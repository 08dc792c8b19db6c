package xlists

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
)

// doGET executes a single GraphQL GET. No retries: every failure surfaces to
// the caller and the run stops there.
func (c *Client) doGET(ctx context.Context, operation, url string) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	body, _, status, err := c.client.DoWithHeaderOrder("GET", url, apiHeaders(c.creds, c.cfg.UserAgent), nil, apiHeaderOrder)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}
	if status != 200 {
		slog.Warn("doGET non-200", slog.String("operation", operation), slog.Int("status", status), slog.String("body", truncateBytes(body, 500)))
		return nil, fmt.Errorf("%s HTTP %d: %s", operation, status, truncateBytes(body, 200))
	}
	if msg := apiErrorMessage(body); msg != "" {
		return nil, fmt.Errorf("%s API error: %s", operation, msg)
	}
	return body, nil
}

// apiErrorMessage returns the first message from an errors array in a 200
// body, or "" when the body has usable data.
func apiErrorMessage(body []byte) string {
	var raw struct {
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	if json.Unmarshal(body, &raw) != nil || len(raw.Errors) == 0 {
		return ""
	}
	if hasResponseData(body) {
		return ""
	}
	return raw.Errors[0].Message
}

// hasResponseData returns true if the JSON body contains a non-null "data" field.
func hasResponseData(body []byte) bool {
	var probe struct {
		Data json.RawMessage `json:"data"`
	}
	if json.Unmarshal(body, &probe) != nil {
		return false
	}
	return len(probe.Data) > 0 && string(probe.Data) != "null"
}

// addGraphQLParams builds the full URL with variables and features as
// JSON-encoded query parameters. Full query escaping matters here: cursor
// values are opaque and may carry +, & or other reserved characters.
func addGraphQLParams(rawURL string, variables, features map[string]any) string {
	v, _ := json.Marshal(variables)
	f, _ := json.Marshal(features)
	sep := "?"
	if strings.Contains(rawURL, "?") {
		sep = "&"
	}
	return rawURL + sep + "variables=" + url.QueryEscape(string(v)) + "&features=" + url.QueryEscape(string(f))
}

func truncateBytes(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
