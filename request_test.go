package xlists

import (
	"strings"
	"testing"
)

func TestAPIErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"no errors", `{"data":{"list":{}}}`, ""},
		{"empty errors", `{"errors":[]}`, ""},
		{"error without data", `{"errors":[{"message":"Rate limit exceeded"}],"data":null}`, "Rate limit exceeded"},
		{"error with usable data", `{"errors":[{"message":"partial"}],"data":{"list":{}}}`, ""},
		{"invalid json", `{invalid`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := apiErrorMessage([]byte(tt.body)); got != tt.want {
				t.Fatalf("apiErrorMessage(%s) = %q, want %q", tt.body, got, tt.want)
			}
		})
	}
}

func TestAddGraphQLParams(t *testing.T) {
	url := addGraphQLParams("https://x.com/i/api/graphql/abc/ListMembers",
		map[string]any{"listId": "42"},
		map[string]any{"flag": true})

	if !strings.Contains(url, "?variables=") {
		t.Fatalf("missing variables param: %s", url)
	}
	if !strings.Contains(url, "&features=") {
		t.Fatalf("missing features param: %s", url)
	}
	if strings.ContainsAny(url, `{}" `) {
		t.Fatalf("unescaped JSON characters in url: %s", url)
	}
	if !strings.Contains(url, "%7B%22listId%22%3A%2242%22%7D") {
		t.Fatalf("variables not escaped as expected: %s", url)
	}
}

func TestAddGraphQLParams_EscapesReservedCursorBytes(t *testing.T) {
	// Continuation cursors are opaque; a raw + would decode server-side as a
	// space and a raw & would split the query string.
	url := addGraphQLParams("https://x.com/i/api/graphql/abc/ListMembers",
		map[string]any{"cursor": "HBaAgL+sybXk/w&=="},
		map[string]any{"flag": true})

	if strings.Contains(url, "+sybXk") || strings.Contains(url, "w&=") {
		t.Fatalf("reserved cursor bytes left unescaped: %s", url)
	}
	if !strings.Contains(url, "%2BsybXk") {
		t.Fatalf("+ not percent-encoded: %s", url)
	}
	if !strings.Contains(url, "%26") {
		t.Fatalf("& not percent-encoded: %s", url)
	}
}

func TestTruncateBytes(t *testing.T) {
	if got := truncateBytes([]byte("short"), 10); got != "short" {
		t.Fatalf("expected passthrough, got %q", got)
	}
	if got := truncateBytes([]byte("0123456789abcdef"), 10); got != "0123456789..." {
		t.Fatalf("expected truncation, got %q", got)
	}
}
