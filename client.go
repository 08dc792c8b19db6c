package xlists

import (
	"fmt"

	stealth "github.com/anatolykoptev/go-stealth"
)

// Client calls the X list GraphQL operations with one harvested session.
// Construct it once per run; each call is independent and stateless aside
// from the fixed session headers.
type Client struct {
	client *stealth.BrowserClient
	creds  *Credentials
	cfg    ClientConfig
}

// NewClient creates a list client from harvested browser credentials.
func NewClient(creds *Credentials, cfg ClientConfig) (*Client, error) {
	cfg.defaults()

	if creds == nil || creds.AuthToken == "" || creds.CSRFToken == "" {
		return nil, ErrNotAuthenticated
	}
	if creds.Bearer == "" {
		creds.Bearer = BearerToken
	}

	opts := []stealth.ClientOption{
		stealth.WithHeaderOrder(apiHeaderOrder),
	}
	if cfg.Proxy != "" {
		opts = append(opts, stealth.WithProxy(cfg.Proxy))
	}
	bc, err := stealth.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("stealth client: %w", err)
	}

	return &Client{client: bc, creds: creds, cfg: cfg}, nil
}
