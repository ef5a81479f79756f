package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/mbolis/confirmation-statement/api"
	"github.com/mbolis/confirmation-statement/app"
	"github.com/mbolis/confirmation-statement/config"
	"github.com/mbolis/confirmation-statement/database"
	"github.com/mbolis/confirmation-statement/log"
	"github.com/mbolis/confirmation-statement/lookup"
	"github.com/mbolis/confirmation-statement/metrics"
	"github.com/mbolis/confirmation-statement/routes"
	"github.com/mbolis/confirmation-statement/section"
	"github.com/mbolis/confirmation-statement/session"
	"github.com/mbolis/confirmation-statement/views"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func main() {
	// a missing .env is fine, the environment may be set already
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Fatal("main.dotenv:", err)
	}

	cmd := &cobra.Command{
		Use:           "confirmation-statement",
		Short:         "Web service filing a company's confirmation statement",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := config.NewViper(cmd.Flags())
			if err != nil {
				return err
			}
			cfg, err := config.Load(v)
			if err != nil {
				return errors.Wrap(err, "main.config")
			}
			return run(cfg)
		},
	}
	config.Flags(cmd.Flags())

	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func run(cfg config.Config) error {
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}
	log.SetJSON(cfg.JSONLogs)

	db, err := database.Open(cfg.DBUrl)
	if err != nil {
		return errors.Wrap(err, "main.db.open")
	}
	defer db.Close()

	sessions := session.NewSQLStore(db)
	purged, err := sessions.Purge(context.Background(), time.Now().Add(-cfg.SessionMaxAge))
	if err != nil {
		return errors.Wrap(err, "main.session.purge")
	}
	log.Debugf("purged %d stale sessions", purged)

	tables, err := lookup.Load(cfg.ConstantsYAML, cfg.PSCDescriptionsYAML)
	if err != nil {
		return errors.Wrap(err, "main.lookup")
	}
	renderer, err := views.New()
	if err != nil {
		return errors.Wrap(err, "main.views")
	}

	upstream := api.New(cfg.APIUrl, cfg.APIKey, nil)
	m := metrics.New()

	app := app.App{
		Config:   cfg,
		API:      upstream,
		Payments: api.New(cfg.PaymentsAPIUrl, cfg.APIKey, nil),
		Sections: section.NewUpdater(upstream, m.ObserveSection),
		Lookup:   tables,
		Views:    renderer,
		Sessions: sessions,
		Metrics:  m,
		Now:      time.Now,
	}

	handler := routes.Wire(app)

	err = runServer(cfg, handler)
	if !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "main.server")
	}
	return nil
}

func runServer(cfg config.Config, handler http.Handler) error {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Info("Listening on " + cfg.Url())
	return srv.ListenAndServe()
}
