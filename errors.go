package xlists

import "errors"

// Sentinel errors for the failure classes callers branch on. Everything else
// is a wrapped one-off error carrying the operation and HTTP detail.
var (
	// ErrBrowserUnreachable means the debugging endpoint did not answer at
	// all, as opposed to answering without a usable session.
	ErrBrowserUnreachable = errors.New("browser debugging endpoint unreachable")

	// ErrNoBrowserPage means the endpoint answered but exposed no page
	// target to read cookies from.
	ErrNoBrowserPage = errors.New("no browser page found")

	// ErrNotAuthenticated means the browser is reachable but the required
	// session cookies (auth_token, ct0) are missing.
	ErrNotAuthenticated = errors.New("not logged in: auth_token/ct0 cookies missing")

	// ErrAmbiguousMatch means a name query matched more than one list.
	ErrAmbiguousMatch = errors.New("list name matches more than one list")

	// ErrNoMatch means a name query matched no list.
	ErrNoMatch = errors.New("no list matches name")
)
