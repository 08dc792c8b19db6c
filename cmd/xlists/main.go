package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	xlists "github.com/anatolykoptev/go-xlists"
)

func main() {
	_ = godotenv.Load() // best-effort: .env is optional

	cmd := &cli.Command{
		Name:  "xlists",
		Usage: "Export X (Twitter) list members using browser authentication",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "cdp-url",
				Usage:   "browser debugging endpoint",
				Sources: cli.EnvVars("XLISTS_CDP_URL"),
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "config file path",
				Value: "config.yaml",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "suppress progress output",
			},
		},
		Commands: []*cli.Command{
			checkCommand,
			discoverCommand,
			exportCommand,
			loginCommand,
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// setup resolves file config, flag overrides, and the logger.
func setup(cmd *cli.Command) (xlists.FileConfig, *slog.Logger, error) {
	cfg, err := xlists.LoadFileConfig(cmd.String("config"))
	if err != nil {
		return cfg, nil, err
	}
	if v := cmd.String("cdp-url"); v != "" {
		cfg.CDPURL = v
	}
	level := cfg.LogLevel
	if cmd.Bool("quiet") {
		level = "error"
	}
	logger := xlists.NewLogger(level)
	slog.SetDefault(logger)
	return cfg, logger, nil
}

func clientConfig(cfg xlists.FileConfig) xlists.ClientConfig {
	return xlists.ClientConfig{
		Proxy:    cfg.Proxy,
		PageSize: cfg.PageSize,
		MaxPages: cfg.MaxPages,
	}
}

var checkCommand = &cli.Command{
	Name:  "check",
	Usage: "Check browser connectivity and auth status",
	Action: func(ctx context.Context, cmd *cli.Command) error {
		cfg, _, err := setup(cmd)
		if err != nil {
			return err
		}

		status, err := xlists.CheckBrowser(ctx, cfg.CDPURL)
		if err != nil {
			return fmt.Errorf("cannot connect to browser at %s: %w", cfg.CDPURL, err)
		}
		fmt.Printf("✓ Connected to %s (%d tabs)\n", status.Browser, status.Pages)
		if status.TargetFound {
			fmt.Printf("  ✓ X tab found: %s\n", status.TargetURL)
		} else {
			fmt.Println("  ⚠ no X tab found (will try any page)")
		}

		creds, err := xlists.HarvestCredentials(ctx, cfg.CDPURL)
		if err != nil {
			return fmt.Errorf("auth extraction failed: %w", err)
		}
		fmt.Printf("  ✓ session extracted (%d cookies)\n", len(creds.Cookies))
		return nil
	},
}

var discoverCommand = &cli.Command{
	Name:  "discover",
	Usage: "List the X lists the logged-in user can export",
	Flags: []cli.Flag{
		fromBrowserFlag,
	},
	Action: func(ctx context.Context, cmd *cli.Command) error {
		cfg, _, err := setup(cmd)
		if err != nil {
			return err
		}
		client, err := buildClient(ctx, cmd, cfg)
		if err != nil {
			return err
		}

		lists, err := client.MyLists(ctx)
		if err != nil {
			return err
		}
		if len(lists) == 0 {
			fmt.Println("No lists found.")
			return nil
		}

		fmt.Printf("Found %d lists:\n\n", len(lists))
		for _, l := range lists {
			icon := "🌐"
			if l.Mode == "Private" {
				icon = "🔒"
			}
			fmt.Printf("  %s %s\n     ID: %s\n     Members: %d\n", icon, l.Name, l.ID, l.MemberCount)
			if l.OwnerHandle != "" {
				fmt.Printf("     Owner: @%s\n", l.OwnerHandle)
			}
			fmt.Println()
		}
		fmt.Println("To export a list: xlists export --list-id <ID> -o export.json")
		return nil
	},
}

var exportCommand = &cli.Command{
	Name:  "export",
	Usage: "Export a list's full membership to a JSON file",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "list-id",
			Aliases: []string{"l"},
			Usage:   "list ID to export",
		},
		&cli.StringFlag{
			Name:    "list-name",
			Aliases: []string{"n"},
			Usage:   "list name to export (case-insensitive substring match)",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output JSON file",
		},
		fromBrowserFlag,
	},
	Action: func(ctx context.Context, cmd *cli.Command) error {
		cfg, _, err := setup(cmd)
		if err != nil {
			return err
		}

		listID, listName := cmd.String("list-id"), cmd.String("list-name")
		if listID == "" && listName == "" {
			return errors.New("specify --list-id or --list-name (run discover to see available lists)")
		}
		output := cmd.String("output")
		if output == "" {
			output = cfg.Output
		}
		quiet := cmd.Bool("quiet")

		client, err := buildClient(ctx, cmd, cfg)
		if err != nil {
			return err
		}

		if listID == "" {
			lists, err := client.MyLists(ctx)
			if err != nil {
				return err
			}
			match, err := xlists.FindListByName(lists, listName)
			if err != nil {
				return err
			}
			listID = match.ID
			if !quiet {
				fmt.Printf("Found list: %s (ID %s)\n", match.Name, match.ID)
			}
		}

		var progress xlists.ProgressFunc
		var reporter *exportReporter
		if !quiet {
			reporter = newExportReporter()
			progress = reporter.Update
		}

		doc, err := xlists.ExportList(ctx, client, listID, output, progress)
		if reporter != nil {
			reporter.Done(err == nil)
		}
		if err != nil {
			return err
		}

		if !quiet {
			fmt.Printf("✓ Exported %d members of %q to %s\n", doc.MemberCount, doc.List.Name, output)
		}
		return nil
	},
}

var loginCommand = &cli.Command{
	Name:  "login",
	Usage: "Open a browser window to sign in and verify a session can be harvested",
	Flags: []cli.Flag{
		&cli.DurationFlag{
			Name:  "wait",
			Usage: "how long to wait for the sign-in to finish",
			Value: 8 * time.Minute,
		},
		&cli.StringFlag{
			Name:  "user-data-dir",
			Usage: "browser profile directory to reuse",
		},
	},
	Action: func(ctx context.Context, cmd *cli.Command) error {
		_, logger, err := setup(cmd)
		if err != nil {
			return err
		}

		fmt.Println("Opening browser window, sign in to X...")
		creds, err := xlists.LoginAndHarvest(ctx, xlists.LoginOptions{
			Wait:        cmd.Duration("wait"),
			UserDataDir: cmd.String("user-data-dir"),
			Logger:      logger,
			Quiet:       cmd.Bool("quiet"),
		})
		if err != nil {
			return err
		}
		fmt.Printf("✓ Signed in, session harvested (%d cookies)\n", len(creds.Cookies))
		fmt.Println("Note: sessions are not persisted; export from the same running browser via --cdp-url.")
		return nil
	},
}

var fromBrowserFlag = &cli.StringFlag{
	Name:  "from-browser",
	Usage: "read cookies from a local browser profile store instead of CDP (chrome, chromium, edge, brave, opera)",
}

// buildClient harvests credentials (CDP by default, cookie store with
// --from-browser) and constructs the API client.
func buildClient(ctx context.Context, cmd *cli.Command, cfg xlists.FileConfig) (*xlists.Client, error) {
	var creds *xlists.Credentials
	var err error
	if browser := cmd.String("from-browser"); browser != "" {
		creds, err = xlists.HarvestFromStore(browser)
	} else {
		creds, err = xlists.HarvestCredentials(ctx, cfg.CDPURL)
	}
	if err != nil {
		return nil, err
	}
	return xlists.NewClient(creds, clientConfig(cfg))
}
