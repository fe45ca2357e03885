package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/bag-arunava-7/staffhub-payroll-go/internal/config"
	"github.com/bag-arunava-7/staffhub-payroll-go/internal/gateway/ems"
	appHTTP "github.com/bag-arunava-7/staffhub-payroll-go/internal/handler/http"
	"github.com/bag-arunava-7/staffhub-payroll-go/internal/pkg/notify"
	"github.com/bag-arunava-7/staffhub-payroll-go/internal/pkg/render"
	"github.com/bag-arunava-7/staffhub-payroll-go/internal/pkg/session"
	"github.com/bag-arunava-7/staffhub-payroll-go/internal/repository/memory"
	"github.com/bag-arunava-7/staffhub-payroll-go/internal/service/payslip"
	rosterService "github.com/bag-arunava-7/staffhub-payroll-go/internal/service/roster"
	"github.com/bag-arunava-7/staffhub-payroll-go/internal/service/selection"
	"github.com/bag-arunava-7/staffhub-payroll-go/internal/service/workflow"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.App.SlogLevel(),
	})).With(
		slog.String("app", "staffhub-payroll"),
		slog.String("env", cfg.App.Env),
	)

	sessions := session.NewMemoryStore()
	gateway := ems.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout, sessions)

	rosterCache := memory.NewRosterCache()
	resultStore := memory.NewResultStore()

	selectionSvc := selection.NewService(resultStore)
	rosterSvc := rosterService.NewService(gateway, rosterCache)
	notifier := notify.NewSlogNotifier(logger)
	workflowSvc := workflow.NewService(gateway, selectionSvc, rosterSvc, resultStore, notifier, logger)

	var renderer *render.GotenbergClient
	if cfg.Gotenberg.URL != "" {
		renderer = render.NewGotenbergClient(cfg.Gotenberg.URL)
	}
	payslipSvc := payslip.NewService(selectionSvc, rosterSvc, resultStore, gateway, renderer)

	authHandler := appHTTP.NewAuthHandler(gateway, sessions)
	companyHandler := appHTTP.NewCompanyHandler(gateway)
	selectionHandler := appHTTP.NewSelectionHandler(selectionSvc, gateway)
	rosterHandler := appHTTP.NewRosterHandler(selectionSvc, rosterSvc)
	calculationHandler := appHTTP.NewCalculationHandler(workflowSvc, resultStore)
	payslipHandler := appHTTP.NewPayslipHandler(payslipSvc)

	router := appHTTP.NewRouter(
		cfg,
		sessions,
		authHandler,
		companyHandler,
		selectionHandler,
		rosterHandler,
		calculationHandler,
		payslipHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
