package cmd

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-co-op/gocron/v2"
	"github.com/spf13/cobra"

	"github.com/namesprouts/namesprouts/internal/api"
	"github.com/namesprouts/namesprouts/internal/config"
	"github.com/namesprouts/namesprouts/internal/database"
	"github.com/namesprouts/namesprouts/internal/flowers"
	"github.com/namesprouts/namesprouts/internal/scheduler"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the namesprouts server",
	Long:  `Start the namesprouts server to handle registrations, logins and flower design management.`,
	Example: `namesprouts serve --config config.yml
namesprouts serve -c /path/to/config.yml --log-level debug
`,
	Run: startServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func startServer(cmd *cobra.Command, _ []string) {
	cfg, err := config.Load(rootCmdPersistentFlags.ConfigFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if rootCmdPersistentFlags.LogLevel == "" {
		setLogLevel(cfg.LogLevel)
	}

	db, err := database.New(cfg.Database.Path)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	defer db.Close() //nolint:errcheck

	catalog := flowers.NewCatalog(cfg.Static.Dir)

	sched, err := scheduler.New()
	if err != nil {
		log.Fatalf("failed to create scheduler: %v", err)
	}
	rescan := time.Duration(cfg.Static.FlowerRescanInterval) * time.Minute
	if err := sched.AddJob("flower_rescan", gocron.DurationJob(rescan), catalog.Refresh); err != nil {
		log.Fatalf("failed to schedule flower rescan: %v", err)
	}
	sched.Start()

	server, err := api.New(cfg, db, catalog)
	if err != nil {
		log.Fatalf("failed to create API server: %v", err)
	}

	// Start the API server in a goroutine
	go func() {
		log.Info("starting API server", "listen", cfg.Listen)
		if err := server.Run(); err != nil {
			log.Error("API server error", "error", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	log.Info("namesprouts started successfully")
	<-c
	log.Info("shutting down gracefully...")

	if err := sched.Stop(); err != nil {
		log.Error("failed to stop scheduler", "error", err)
	}

	// Give time for graceful shutdown
	time.Sleep(2 * time.Second)
}
