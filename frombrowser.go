package xlists

import (
	"fmt"
	"strings"

	"github.com/browserutils/kooky"
	_ "github.com/browserutils/kooky/browser/all" // register finders for major browsers
)

// HarvestFromStore reads the session cookies straight from a local browser
// profile's cookie store ("chrome", "chromium", "edge", "brave", "opera").
// It is the fallback when no debugging endpoint is available; the browser
// does not need a remote-debugging flag, or even to be running.
func HarvestFromStore(browser string) (*Credentials, error) {
	want := normalizeBrowser(browser)

	stores := kooky.FindAllCookieStores()
	var use []kooky.CookieStore
	for _, s := range stores {
		if normalizeBrowser(s.Browser()) == want {
			use = append(use, s)
		}
	}
	if len(use) == 0 {
		return nil, fmt.Errorf("no %s cookie stores found", want)
	}
	defer func() {
		for _, s := range use {
			_ = s.Close()
		}
	}()

	// Session cookies (no expiry) are included: auth_token survives browser
	// restarts but ct0 may not.
	jar := make(map[string]string)
	for _, s := range use {
		for _, domain := range targetDomains {
			cookies, _ := s.ReadCookies(kooky.DomainHasSuffix(domain))
			for _, c := range cookies {
				if _, ok := jar[c.Name]; !ok {
					jar[c.Name] = c.Value
				}
			}
		}
	}

	authToken, ct0 := jar[authTokenCookie], jar[csrfCookie]
	if authToken == "" || ct0 == "" {
		return nil, fmt.Errorf("%w: no session cookies in %s profile", ErrNotAuthenticated, want)
	}

	return &Credentials{
		AuthToken: authToken,
		CSRFToken: ct0,
		Bearer:    BearerToken,
		Cookies:   jar,
	}, nil
}

func normalizeBrowser(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "chrome", "google chrome":
		return "chrome"
	case "chromium":
		return "chromium"
	case "edge", "microsoft edge":
		return "edge"
	case "brave":
		return "brave"
	case "opera":
		return "opera"
	default:
		return "chrome"
	}
}
