package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"

	"github.com/bag-arunava-7/staffhub-payroll-go/internal/config"
	"github.com/bag-arunava-7/staffhub-payroll-go/internal/handler/http/middleware"
	"github.com/bag-arunava-7/staffhub-payroll-go/internal/pkg/session"
)

func NewRouter(
	cfg *config.Config,
	sessions session.Store,
	authHandler AuthHandler,
	companyHandler CompanyHandler,
	selectionHandler SelectionHandler,
	rosterHandler RosterHandler,
	calculationHandler CalculationHandler,
	payslipHandler PayslipHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "staffhub-payroll"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendOrigin},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  cfg.App.SlogLevel(),
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/logout", authHandler.Logout)
			r.Get("/session", authHandler.Session)
		})

		// Requires a held session token
		r.Group(func(r chi.Router) {
			r.Use(middleware.SessionRequired(sessions))

			r.Route("/companies", func(r chi.Router) {
				r.Get("/", companyHandler.List)
				r.Post("/", companyHandler.Create)
			})

			r.Route("/selection", func(r chi.Router) {
				r.Get("/", selectionHandler.Get)
				r.Put("/company", selectionHandler.SelectCompany)
				r.Put("/month", selectionHandler.SelectMonth)
			})

			r.Route("/roster", func(r chi.Router) {
				r.Get("/", rosterHandler.List)
				r.Post("/refresh", rosterHandler.Refresh)
			})

			r.Route("/calculations", func(r chi.Router) {
				r.Get("/results", calculationHandler.ListResults)
				r.Get("/results/{employeeId}", calculationHandler.GetResult)

				r.Route("/{employeeId}", func(r chi.Router) {
					r.Post("/dialog", calculationHandler.OpenDialog)
					r.Delete("/dialog", calculationHandler.Cancel)
					r.Post("/submit", calculationHandler.Submit)
					r.Get("/status", calculationHandler.Status)
				})
			})

			r.Route("/payslips", func(r chi.Router) {
				r.Get("/export.csv", payslipHandler.ExportCSV)
				r.Route("/{employeeId}", func(r chi.Router) {
					r.Get("/", payslipHandler.Get)
					r.Get("/text", payslipHandler.Text)
					r.Get("/pdf", payslipHandler.PDF)
				})
			})
		})
	})
	return r
}
