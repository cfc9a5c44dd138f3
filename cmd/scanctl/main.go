package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"strconv"

	"github.com/angelamos/go-scan-client/auth"
	"github.com/angelamos/go-scan-client/client"
	"github.com/angelamos/go-scan-client/internal/config"
	"github.com/angelamos/go-scan-client/scans"
	"github.com/common-nighthawk/go-figure"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if err := run(os.Args[1:]); err != nil {
		log.Error().Err(err).Msg("scanctl")
		os.Exit(1)
	}
}

func run(args []string) (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Msgf("Recovered from panic: %v", r)
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	if len(args) == 0 {
		usage()
		return errors.New("missing command")
	}

	c := config.New()
	displayAppname(c.GetAppName())

	app, err := client.New(c, logNotifier{}, logNavigator{})
	if err != nil {
		return err
	}

	ctx := context.Background()
	switch args[0] {
	case "register":
		if len(args) != 3 {
			return errors.New("usage: scanctl register <email> <password>")
		}
		return app.Auth.Register(ctx, auth.RegisterRequest{Email: args[1], Password: args[2]})
	case "login":
		if len(args) != 3 {
			return errors.New("usage: scanctl login <email> <password>")
		}
		_, err := app.Auth.Login(ctx, auth.LoginRequest{Email: args[1], Password: args[2]})
		return err
	case "list":
		if err := loginFromEnv(ctx, app); err != nil {
			return err
		}
		list, err := app.Scans.List(ctx)
		if err != nil {
			return err
		}
		for _, scan := range list.Scans {
			fmt.Printf("%d\t%s\t%s\t%s\n", scan.ID, scan.TargetURL, scan.TestType, scan.Status)
		}
		return nil
	case "get":
		id, err := parseID(args)
		if err != nil {
			return err
		}
		if err := loginFromEnv(ctx, app); err != nil {
			return err
		}
		scan, err := app.Scans.Get(ctx, id)
		if err != nil {
			return err
		}
		fmt.Printf("%d\t%s\t%s\t%s\t%d finding(s)\n", scan.ID, scan.TargetURL, scan.TestType, scan.Status, len(scan.Findings))
		return nil
	case "create":
		if len(args) != 3 {
			return errors.New("usage: scanctl create <target-url> <test-type>")
		}
		if err := loginFromEnv(ctx, app); err != nil {
			return err
		}
		_, err := app.Scans.Create(ctx, scans.CreateScanRequest{
			TargetURL: args[1],
			TestType:  scans.TestType(args[2]),
		})
		return err
	case "delete":
		id, err := parseID(args)
		if err != nil {
			return err
		}
		if err := loginFromEnv(ctx, app); err != nil {
			return err
		}
		return app.Scans.Delete(ctx, id)
	default:
		usage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

// loginFromEnv establishes the session for authenticated commands from
// SCAN_EMAIL / SCAN_PASSWORD. The session lives only for this process.
func loginFromEnv(ctx context.Context, app *client.Client) error {
	email := os.Getenv("SCAN_EMAIL")
	password := os.Getenv("SCAN_PASSWORD")
	if email == "" || password == "" {
		return errors.New("SCAN_EMAIL and SCAN_PASSWORD must be set for authenticated commands")
	}
	_, err := app.Auth.Login(ctx, auth.LoginRequest{Email: email, Password: password})
	return err
}

func parseID(args []string) (int, error) {
	if len(args) != 2 {
		return 0, fmt.Errorf("usage: scanctl %s <id>", args[0])
	}
	id, err := strconv.Atoi(args[1])
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid scan id %q", args[1])
	}
	return id, nil
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: scanctl <command>

commands:
  register <email> <password>
  login <email> <password>
  list
  get <id>
  create <target-url> <test-type>
  delete <id>

authenticated commands read SCAN_EMAIL and SCAN_PASSWORD from the environment.`)
}

// logNotifier routes the core's notifications to the terminal log.
type logNotifier struct{}

func (logNotifier) Success(message string) { log.Info().Msg(message) }
func (logNotifier) Failure(message string) { log.Error().Msg(message) }

// logNavigator has no views to move between; it records where the embedding
// application would have gone.
type logNavigator struct{}

func (logNavigator) NavigateTo(path string) { log.Debug().Str("path", path).Msg("navigate") }

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
