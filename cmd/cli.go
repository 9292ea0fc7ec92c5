package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/DanRulev/ordkort.git/internal/bot"
	"github.com/DanRulev/ordkort.git/internal/client"
	"github.com/DanRulev/ordkort.git/internal/config"
	"github.com/DanRulev/ordkort.git/internal/httpapi"
	"github.com/DanRulev/ordkort.git/internal/metrics"
	"github.com/DanRulev/ordkort.git/internal/models"
	"github.com/DanRulev/ordkort.git/internal/repository"
	"github.com/DanRulev/ordkort.git/internal/service"
	"github.com/DanRulev/ordkort.git/internal/storage/cache"
	"github.com/DanRulev/ordkort.git/internal/storage/db"
	"github.com/goccy/go-json"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

var errNoBotToken = errors.New("bot_token is not configured")

type app struct {
	cfg      config.Config
	log      *zap.Logger
	registry *prometheus.Registry
}

// newCLIApp builds the command tree. Without a command both transports run.
func newCLIApp(cfg config.Config, log *zap.Logger) *cli.App {
	a := &app{cfg: cfg, log: log, registry: prometheus.NewRegistry()}

	return &cli.App{
		Name:   "ordkort",
		Usage:  "Danish vocabulary practice over Telegram and HTTP",
		Action: a.runAll,
		Commands: []*cli.Command{
			a.botCmd(),
			a.serveCmd(),
			a.migrateCmd(),
			a.exportCmd(),
			a.importCmd(),
		},
	}
}

type stack struct {
	conn     *sqlx.DB
	services *service.Service
	metrics  metrics.Metrics
}

// open connects to the database, applies migrations and wires the services.
func (a *app) open(ctx context.Context) (*stack, error) {
	conn, err := db.InitDB(a.cfg.DB)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(ctx, conn); err != nil {
		conn.Close()
		return nil, err
	}

	m := metrics.New(a.cfg.Metrics, a.registry)
	clients := client.InitClients(a.cfg, a.log)
	services := service.InitServices(clients, repository.NewRepository(conn), m, a.cfg, a.log)

	return &stack{conn: conn, services: services, metrics: m}, nil
}

func (a *app) newBot(s *stack) (*bot.TelegramAPI, error) {
	if a.cfg.BotToken == "" {
		return nil, errNoBotToken
	}
	return bot.NewTelegramAPI(a.cfg.BotToken, a.cfg.Env, a.cfg.App.Timeout, s.services,
		cache.NewCache(a.cfg.Cache.SizeMB, a.cfg.Cache.TTL), a.log)
}

func (a *app) newServer(s *stack, addr string) (*httpapi.Server, error) {
	httpCfg := a.cfg.HTTP
	if addr != "" {
		httpCfg.Addr = addr
	}
	return httpapi.NewServer(httpCfg, a.cfg.Env, s.services, s.metrics, a.registry, a.log)
}

func (a *app) runAll(c *cli.Context) error {
	s, err := a.open(c.Context)
	if err != nil {
		return err
	}
	defer s.conn.Close()

	server, err := a.newServer(s, "")
	if err != nil {
		return err
	}

	done := make(chan struct{})
	telegram, err := a.newBot(s)
	switch {
	case errors.Is(err, errNoBotToken):
		a.log.Warn("telegram bot disabled", zap.Error(err))
		close(done)
	case err != nil:
		return err
	default:
		go func() {
			defer close(done)
			telegram.Start(c.Context)
		}()
	}

	err = server.Run(c.Context)
	<-done
	return err
}

func (a *app) botCmd() *cli.Command {
	return &cli.Command{
		Name:  "bot",
		Usage: "Run the Telegram bot",
		Action: func(c *cli.Context) error {
			s, err := a.open(c.Context)
			if err != nil {
				return err
			}
			defer s.conn.Close()

			telegram, err := a.newBot(s)
			if err != nil {
				return err
			}
			telegram.Start(c.Context)
			return nil
		},
	}
}

func (a *app) serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP API",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "addr", Aliases: []string{"a"}, Usage: "Listen address (default: http.addr)"},
		},
		Action: func(c *cli.Context) error {
			s, err := a.open(c.Context)
			if err != nil {
				return err
			}
			defer s.conn.Close()

			server, err := a.newServer(s, c.String("addr"))
			if err != nil {
				return err
			}
			return server.Run(c.Context)
		},
	}
}

func (a *app) migrateCmd() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Create or upgrade the database schema",
		Action: func(c *cli.Context) error {
			conn, err := db.InitDB(a.cfg.DB)
			if err != nil {
				return err
			}
			defer conn.Close()

			if err := db.Migrate(c.Context, conn); err != nil {
				return err
			}
			a.log.Info("schema is up to date", zap.String("driver", a.cfg.DB.Driver))
			return nil
		},
	}
}

func (a *app) exportCmd() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Write users, entries and daily exercise totals as JSON",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "path", Aliases: []string{"p"}, Usage: "Output file (default: stdout)"},
		},
		Action: func(c *cli.Context) error {
			transfer, closeDB, err := a.transfer(c.Context)
			if err != nil {
				return err
			}
			defer closeDB()

			dump, err := transfer.Export(c.Context)
			if err != nil {
				return err
			}

			out := c.App.Writer
			if path := c.String("path"); path != "" {
				f, err := os.Create(path)
				if err != nil {
					return fmt.Errorf("create export file: %w", err)
				}
				defer f.Close()
				out = f
			}
			return writeJSON(out, dump)
		},
	}
}

func (a *app) importCmd() *cli.Command {
	return &cli.Command{
		Name:  "import",
		Usage: "Replace all data with the contents of an export file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "path", Aliases: []string{"p"}, Required: true, Usage: "Export file to load"},
		},
		Action: func(c *cli.Context) error {
			raw, err := os.ReadFile(c.String("path"))
			if err != nil {
				return fmt.Errorf("read import file: %w", err)
			}

			var dump models.Dump
			if err := json.Unmarshal(raw, &dump); err != nil {
				return fmt.Errorf("decode import file: %w", err)
			}

			transfer, closeDB, err := a.transfer(c.Context)
			if err != nil {
				return err
			}
			defer closeDB()

			summary, err := transfer.Import(c.Context, dump)
			if err != nil {
				return err
			}
			return writeJSON(c.App.Writer, summary)
		},
	}
}

func (a *app) transfer(ctx context.Context) (*service.TransferS, func(), error) {
	conn, err := db.InitDB(a.cfg.DB)
	if err != nil {
		return nil, nil, err
	}
	if err := db.Migrate(ctx, conn); err != nil {
		conn.Close()
		return nil, nil, err
	}
	closeDB := func() { conn.Close() }
	return service.NewTransferService(repository.NewRepository(conn), a.log), closeDB, nil
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
