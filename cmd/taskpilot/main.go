package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/taskpilot/taskpilot/internal/config"
	"github.com/taskpilot/taskpilot/internal/directory"
	"github.com/taskpilot/taskpilot/internal/server"
	"github.com/taskpilot/taskpilot/internal/taskstore"
	"github.com/taskpilot/taskpilot/tools"
)

func main() {
	// .env is optional; real environments set TP_* directly.
	_ = godotenv.Load()
	cfg := config.FromEnv()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	store := taskstore.Open(cfg.TasksFile, log)
	dir := directory.Load(cfg.CompaniesFile, log)

	srv := server.New(cfg, log, tools.Registry(store, dir))

	// Graceful shutdown on Ctrl-C (SIGINT) / SIGTERM
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigch)
	go func() {
		<-sigch
		fmt.Println("\nShutting down...")
		cancel()
	}()

	rule := strings.Repeat("=", 60)
	fmt.Println(rule)
	fmt.Println("TaskPilot MCP Server Starting...")
	fmt.Println(rule)
	fmt.Printf("MCP endpoint: http://localhost%s/mcp\n", cfg.Addr)
	fmt.Printf("Metrics:      http://localhost%s/metrics\n", cfg.Addr)
	fmt.Println(rule)

	if err := srv.ListenAndServe(ctx); err != nil {
		log.WithError(err).Fatal("server exited")
	}
}
