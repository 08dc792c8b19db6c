package xlists

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
)

const loginURL = "https://x.com/login"

// LoginOptions configures the interactive login harvest.
type LoginOptions struct {
	Wait        time.Duration // how long the operator gets to sign in; default 8m
	UserDataDir string        // optional browser profile dir; empty means temp
	Logger      *slog.Logger  // optional: route chromedp logs to slog
	Quiet       bool          // suppress chromedp log output entirely
}

// LoginAndHarvest opens a visible browser window at the sign-in page, waits
// for the operator to authenticate (2FA included), and harvests the session
// cookies once they appear. For when no already-authenticated browser with a
// debugging port is around.
func LoginAndHarvest(ctx context.Context, opts LoginOptions) (*Credentials, error) {
	wait := opts.Wait
	if wait <= 0 {
		wait = 8 * time.Minute
	}

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", false),
		chromedp.Flag("disable-gpu", true),
		chromedp.NoDefaultBrowserCheck,
	)
	if opts.UserDataDir != "" {
		allocOpts = append(allocOpts, chromedp.UserDataDir(opts.UserDataDir))
	}

	actx, acancel := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer acancel()

	var ctxOpts []chromedp.ContextOption
	if opts.Quiet {
		ctxOpts = append(ctxOpts,
			chromedp.WithLogf(func(string, ...any) {}),
			chromedp.WithDebugf(func(string, ...any) {}),
			chromedp.WithErrorf(func(string, ...any) {}),
		)
	} else if opts.Logger != nil {
		l := opts.Logger
		ctxOpts = append(ctxOpts,
			chromedp.WithLogf(func(f string, a ...any) { l.Info(fmt.Sprintf(f, a...)) }),
			chromedp.WithDebugf(func(f string, a ...any) { l.Debug(fmt.Sprintf(f, a...)) }),
			chromedp.WithErrorf(func(f string, a ...any) { l.Warn(fmt.Sprintf(f, a...)) }),
		)
	}
	cctx, cancel := chromedp.NewContext(actx, ctxOpts...)
	defer cancel()

	cctx, timeoutCancel := context.WithTimeout(cctx, wait)
	defer timeoutCancel()

	// Network domain must be enabled to see HttpOnly cookies like auth_token.
	if err := chromedp.Run(cctx, network.Enable()); err != nil {
		return nil, fmt.Errorf("enable network domain: %w", err)
	}
	if err := chromedp.Run(cctx, chromedp.Navigate(loginURL)); err != nil {
		return nil, fmt.Errorf("navigate login: %w", err)
	}

	var creds *Credentials
	err := chromedp.Run(cctx, chromedp.ActionFunc(func(ctx context.Context) error {
		for {
			cookies, err := network.GetCookies().Do(ctx)
			if err != nil {
				return fmt.Errorf("get cookies: %w", err)
			}

			jar := make(map[string]string)
			for _, c := range cookies {
				if domainMatchesTarget(c.Domain) {
					jar[c.Name] = c.Value
				}
			}
			if jar[authTokenCookie] != "" && jar[csrfCookie] != "" {
				creds = &Credentials{
					AuthToken: jar[authTokenCookie],
					CSRFToken: jar[csrfCookie],
					Bearer:    BearerToken,
					Cookies:   jar,
				}
				return nil
			}

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(2 * time.Second):
			}
		}
	}))
	if err != nil {
		return nil, fmt.Errorf("%w: login window closed or timed out: %s", ErrNotAuthenticated, err)
	}
	return creds, nil
}
