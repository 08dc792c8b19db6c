package xlists

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/gorilla/websocket"
)

// Cookie names carrying the session tokens the API needs.
const (
	authTokenCookie = "auth_token"
	csrfCookie      = "ct0"
)

// targetDomains are the site domains whose cookies and tabs we care about.
var targetDomains = []string{"x.com", "twitter.com"}

// cdpTarget is one entry from the debugging endpoint's /json/list.
type cdpTarget struct {
	Type                 string `json:"type"`
	Title                string `json:"title"`
	URL                  string `json:"url"`
	WebSocketDebuggerURL string `json:"webSocketDebuggerUrl"`
}

// BrowserStatus reports what a connectivity probe found.
type BrowserStatus struct {
	Browser     string
	Pages       int
	TargetFound bool
	TargetURL   string
}

// CheckBrowser probes the debugging endpoint and reports the browser version,
// open page count, and whether a target-site tab exists.
func CheckBrowser(ctx context.Context, cdpURL string) (*BrowserStatus, error) {
	var version struct {
		Browser string `json:"Browser"`
	}
	if err := probeJSON(ctx, cdpURL+"/json/version", &version); err != nil {
		return nil, err
	}

	targets, err := cdpTargets(ctx, cdpURL)
	if err != nil {
		return nil, err
	}

	status := &BrowserStatus{Browser: version.Browser}
	for _, t := range targets {
		if t.Type != "page" {
			continue
		}
		status.Pages++
		if !status.TargetFound && isTargetSiteURL(t.URL) {
			status.TargetFound = true
			status.TargetURL = t.URL
		}
	}
	return status, nil
}

// HarvestCredentials extracts the session credentials from a running browser
// via its debugging endpoint. It prefers a tab on the target site but any
// page will do: cookies are browser-wide.
func HarvestCredentials(ctx context.Context, cdpURL string) (*Credentials, error) {
	targets, err := cdpTargets(ctx, cdpURL)
	if err != nil {
		return nil, err
	}

	target := pickTarget(targets)
	if target == nil {
		return nil, fmt.Errorf("%w: open the target site in the browser first", ErrNoBrowserPage)
	}
	slog.Debug("harvesting via page target", slog.String("url", target.URL))

	cookies, err := fetchAllCookies(ctx, target.WebSocketDebuggerURL)
	if err != nil {
		return nil, err
	}

	jar := make(map[string]string)
	for _, c := range cookies {
		if domainMatchesTarget(c.Domain) {
			jar[c.Name] = c.Value
		}
	}

	authToken, ct0 := jar[authTokenCookie], jar[csrfCookie]
	if authToken == "" || ct0 == "" {
		return nil, fmt.Errorf("%w: log in at x.com first", ErrNotAuthenticated)
	}

	return &Credentials{
		AuthToken: authToken,
		CSRFToken: ct0,
		Bearer:    BearerToken,
		Cookies:   jar,
	}, nil
}

// cdpTargets lists the browser's open targets via /json/list.
func cdpTargets(ctx context.Context, cdpURL string) ([]cdpTarget, error) {
	var targets []cdpTarget
	if err := probeJSON(ctx, cdpURL+"/json/list", &targets); err != nil {
		return nil, err
	}
	return targets, nil
}

// probeJSON issues a short-bounded GET against the debugging endpoint.
// Transport failures are connectivity errors, distinct from every
// reachable-but-unusable failure downstream.
func probeJSON(ctx context.Context, url string, out any) error {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build probe request: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s (start the browser with --remote-debugging-port)", ErrBrowserUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s returned HTTP %d", ErrBrowserUnreachable, url, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}

// pickTarget selects the page to attach to: a target-site tab when one is
// open, otherwise any page target.
func pickTarget(targets []cdpTarget) *cdpTarget {
	var fallback *cdpTarget
	for i := range targets {
		t := &targets[i]
		if t.Type != "page" || t.WebSocketDebuggerURL == "" {
			continue
		}
		if isTargetSiteURL(t.URL) {
			return t
		}
		if fallback == nil {
			fallback = t
		}
	}
	return fallback
}

// fetchAllCookies opens the page's control channel, performs one
// Network.getAllCookies exchange, and closes the channel whatever happens.
func fetchAllCookies(ctx context.Context, wsURL string) ([]*network.Cookie, error) {
	dialCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	conn, _, err := websocket.DefaultDialer.DialContext(dialCtx, wsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: dial control channel: %s", ErrBrowserUnreachable, err)
	}
	defer conn.Close()

	req := struct {
		ID     int    `json:"id"`
		Method string `json:"method"`
	}{ID: 1, Method: "Network.getAllCookies"}
	if err := conn.WriteJSON(req); err != nil {
		return nil, fmt.Errorf("send getAllCookies: %w", err)
	}

	_ = conn.SetReadDeadline(time.Now().Add(probeTimeout))
	for {
		var msg struct {
			ID     int                          `json:"id"`
			Result struct {
				Cookies []*network.Cookie `json:"cookies"`
			} `json:"result"`
			Error  *struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if err := conn.ReadJSON(&msg); err != nil {
			return nil, fmt.Errorf("read getAllCookies response: %w", err)
		}
		if msg.ID != req.ID {
			continue // unsolicited event, not our response
		}
		if msg.Error != nil {
			return nil, fmt.Errorf("getAllCookies: %s", msg.Error.Message)
		}
		return msg.Result.Cookies, nil
	}
}

func isTargetSiteURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return domainMatchesTarget(u.Hostname())
}

func domainMatchesTarget(domain string) bool {
	domain = strings.TrimPrefix(domain, ".")
	for _, d := range targetDomains {
		if domain == d || strings.HasSuffix(domain, "."+d) {
			return true
		}
	}
	return false
}
