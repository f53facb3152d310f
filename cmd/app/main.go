package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jinbbq/api"
	"jinbbq/cmd"
	httpin "jinbbq/internal/adapters/in/http"
	"jinbbq/internal/adapters/out/postgres"
	"jinbbq/internal/adapters/out/postgres/database"
	"jinbbq/internal/adapters/out/rabbitmq"
	"jinbbq/internal/core/ports"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

var (
	envFile string

	config cmd.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "jinbbq",
	Short: "Jin BBQ ordering service",
	Long: `Serves the Jin BBQ menu, cart and order API.

Run without a subcommand to start the HTTP server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(*cobra.Command, []string) error {
		var err error
		if config, err = cmd.LoadConfig(envFile); err != nil {
			return err
		}
		if logger, err = cmd.NewLogger(config.LogLevel); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(*cobra.Command, []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server and background jobs",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(*cobra.Command, []string) error {
		db, err := openDatabase()
		if err != nil {
			return err
		}
		if err = postgres.Migrate(db); err != nil {
			return err
		}
		logger.Info("Schema migrated")
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load menu items from a YAML catalog file",
	Long: `Creates the menu items listed in a YAML catalog file. Items are keyed by
title, so running the command again updates existing entries.

Example:
  jinbbq seed --file menu.yaml`,
	RunE: runSeed,
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a bearer token for local testing",
	RunE: func(c *cobra.Command, _ []string) error {
		customer, _ := c.Flags().GetString("customer")
		staff, _ := c.Flags().GetBool("staff")
		ttl, _ := c.Flags().GetDuration("ttl")

		if config.JWTSecret == "" {
			return errors.New("JWT_SECRET is not set")
		}

		raw, err := httpin.NewAuthenticator(config.JWTSecret).IssueToken(customer, staff, ttl)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(c.OutOrStdout(), raw)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "environment file to load if present")

	serveCmd.Flags().Bool("migrate", false, "migrate the schema before serving")
	rootCmd.Flags().AddFlagSet(serveCmd.Flags())

	seedCmd.Flags().String("file", "menu.yaml", "catalog file")

	tokenCmd.Flags().String("customer", "", "customer id (token subject)")
	tokenCmd.Flags().Bool("staff", false, "grant staff privileges")
	tokenCmd.Flags().Duration("ttl", 24*time.Hour, "token lifetime, 0 for no expiry")
	_ = tokenCmd.MarkFlagRequired("customer")

	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd, tokenCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func openDatabase() (*gorm.DB, error) {
	db, err := database.Open(config.Database().DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

func runServe(c *cobra.Command, _ []string) error {
	if config.JWTSecret == "" {
		return errors.New("JWT_SECRET is not set")
	}
	log := logger.Sugar()

	db, err := openDatabase()
	if err != nil {
		return err
	}
	if migrate, _ := c.Flags().GetBool("migrate"); migrate {
		if err = postgres.Migrate(db); err != nil {
			return err
		}
	}

	var publishers []ports.OrderEventPublisher
	if config.RabbitMQURL != "" {
		publisher, err := rabbitmq.NewPublisher(config.RabbitMQ())
		if err != nil {
			return err
		}
		defer func() {
			if err := publisher.Close(); err != nil {
				log.Warnw("Failed to close RabbitMQ publisher", "error", err)
			}
		}()
		publishers = append(publishers, publisher)
	}

	app := cmd.NewCompositionRoot(config, db, log, publishers...)

	ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	doc, err := api.Load(ctx)
	if err != nil {
		return err
	}

	server := httpin.NewServer(app.Handlers(), app.OrderWatcher(), log)
	e, err := httpin.NewRouter(server, httpin.NewAuthenticator(config.JWTSecret), doc, log)
	if err != nil {
		return err
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		addr := fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)
		log.Infow("HTTP server listening", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Info("Shutting down")
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func runSeed(c *cobra.Command, _ []string) error {
	path, _ := c.Flags().GetString("file")
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	entries, err := cmd.LoadCatalog(f)
	if err != nil {
		return err
	}

	db, err := openDatabase()
	if err != nil {
		return err
	}

	app := cmd.NewCompositionRoot(config, db, logger.Sugar())
	created, updated, err := cmd.SeedCatalog(
		c.Context(),
		app.CreateCreateMenuItemCommandHandler(),
		app.CreateUpdateMenuItemCommandHandler(),
		entries,
	)
	if err != nil {
		return err
	}

	logger.Info("Catalog seeded", zap.Int("created", created), zap.Int("updated", updated))
	return nil
}
