// Package client wires the session store, resource cache, transport and the
// two operation services into one handle an application embeds.
package client

import (
	"net/http"

	"github.com/angelamos/go-scan-client/auth"
	"github.com/angelamos/go-scan-client/cache"
	"github.com/angelamos/go-scan-client/feedback"
	"github.com/angelamos/go-scan-client/internal/config"
	"github.com/angelamos/go-scan-client/scans"
	"github.com/angelamos/go-scan-client/session"
	"github.com/angelamos/go-scan-client/transport"
	"github.com/pkg/errors"
)

// Client exposes the full operation set: Auth for the session lifecycle,
// Scans for resource reads and writes. Sessions and Cache are the two
// process-wide stores, owned here and mutated only by the services.
type Client struct {
	Auth     *auth.Service
	Scans    *scans.Service
	Sessions *session.Store
	Cache    *cache.Store
}

// New builds a fully wired client. notifier and navigator are the embedding
// application's side-effect sinks.
func New(cfg config.Config, notifier feedback.Notifier, navigator feedback.Navigator) (*Client, error) {
	sessions := session.NewStore()
	store := cache.NewStore()

	api := transport.New(
		cfg.GetBaseURL(),
		sessions,
		transport.WithHTTPClient(&http.Client{Timeout: cfg.GetHTTPTimeout()}),
	)

	authService, err := auth.NewService(auth.Deps{
		API:       api,
		Sessions:  sessions,
		Notifier:  notifier,
		Navigator: navigator,
	}, auth.WithEndpoints(cfg.GetRegisterPath(), cfg.GetLoginPath()))
	if err != nil {
		return nil, errors.Wrap(err, "[client.New] auth service")
	}

	scanService, err := scans.NewService(scans.Deps{
		API:       api,
		Cache:     store,
		Notifier:  notifier,
		Navigator: navigator,
	},
		scans.WithEndpoint(cfg.GetScansPath()),
		scans.WithCacheWindows(cfg.GetStaleAfter(), cfg.GetEvictAfter()),
	)
	if err != nil {
		return nil, errors.Wrap(err, "[client.New] scans service")
	}

	return &Client{
		Auth:     authService,
		Scans:    scanService,
		Sessions: sessions,
		Cache:    store,
	}, nil
}
