package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/dmafra/gestor/internal/auth"
	authStore "github.com/dmafra/gestor/internal/auth/store"
	"github.com/dmafra/gestor/internal/campaign"
	"github.com/dmafra/gestor/internal/cashflow"
	"github.com/dmafra/gestor/internal/client"
	"github.com/dmafra/gestor/internal/config"
	"github.com/dmafra/gestor/internal/crm"
	"github.com/dmafra/gestor/internal/deadline"
	"github.com/dmafra/gestor/internal/export"
	gestorHttp "github.com/dmafra/gestor/internal/http"
	authHandler "github.com/dmafra/gestor/internal/http/auth"
	campaignHandler "github.com/dmafra/gestor/internal/http/campaign"
	txHandler "github.com/dmafra/gestor/internal/http/cashflow"
	clientHandler "github.com/dmafra/gestor/internal/http/client"
	crmHandler "github.com/dmafra/gestor/internal/http/crm"
	deadlineHandler "github.com/dmafra/gestor/internal/http/deadline"
	exportHandler "github.com/dmafra/gestor/internal/http/export"
	importHandler "github.com/dmafra/gestor/internal/http/importcsv"
	prefsHandler "github.com/dmafra/gestor/internal/http/prefs"
	taskHandler "github.com/dmafra/gestor/internal/http/task"
	"github.com/dmafra/gestor/internal/importer"
	"github.com/dmafra/gestor/internal/kv"
	"github.com/dmafra/gestor/internal/prefs"
	"github.com/dmafra/gestor/internal/task"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	store, err := kv.Open(cfg.Store.Path)
	if err != nil {
		slog.Error("failed to open store", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	var (
		authService     = auth.NewService(authStore.New(store), cfg.Auth.Secret, cfg.Auth.TokenTTL)
		cashflowService = cashflow.NewService(store)
		taskService     = task.NewService(store)
		clientService   = client.NewService(store)
		deadlineService = deadline.NewService(store)
		campaignService = campaign.NewService(store)
		pipeline        = crm.NewPipeline(store)
		prefsService    = prefs.NewService(store)
		importService   = importer.NewService()
		exportService   = export.NewService(cashflowService)
	)

	router := gestorHttp.New(
		authService,
		cfg.CORS.AllowedOrigins,
		authHandler.NewHandler(authService),
		txHandler.NewHandler(cashflowService),
		taskHandler.NewHandler(taskService),
		clientHandler.NewHandler(clientService),
		deadlineHandler.NewHandler(deadlineService),
		campaignHandler.NewHandler(campaignService),
		crmHandler.NewHandler(pipeline),
		prefsHandler.NewHandler(prefsService),
		importHandler.NewHandler(importService, cashflowService),
		exportHandler.NewHandler(exportService),
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
