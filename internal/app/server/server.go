package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/jackc/pgx/v5/pgxpool"

	"hrms/internal/domain/attendance"
	"hrms/internal/domain/identity"
	"hrms/internal/domain/leave"
	"hrms/internal/domain/payroll"
	"hrms/internal/domain/project"
	"hrms/internal/platform/config"
	"hrms/internal/platform/db"
	"hrms/internal/platform/metrics"
	"hrms/internal/platform/seed"
	attendancehandler "hrms/internal/transport/http/handlers/attendance"
	authhandler "hrms/internal/transport/http/handlers/auth"
	dashboardhandler "hrms/internal/transport/http/handlers/dashboard"
	directoryhandler "hrms/internal/transport/http/handlers/directory"
	leavehandler "hrms/internal/transport/http/handlers/leave"
	navhandler "hrms/internal/transport/http/handlers/navigation"
	payrollhandler "hrms/internal/transport/http/handlers/payroll"
	projecthandler "hrms/internal/transport/http/handlers/project"
	"hrms/internal/transport/http/middleware"
)

type App struct {
	Config config.Config
	Router http.Handler

	pool *pgxpool.Pool
}

// New wires the application. With DATABASE_URL set it runs against Postgres,
// migrating and seeding on startup when configured; without it every store is
// in-memory, seeded with the sample company.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	app := &App{Config: cfg}

	services, err := app.buildServices(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app.Router = buildRouter(cfg, services, app.pool)
	return app, nil
}

func (a *App) Close() {
	if a.pool != nil {
		a.pool.Close()
	}
}

type services struct {
	identity   *identity.Service
	attendance *attendance.Service
	leave      *leave.Service
	payroll    *payroll.Service
	project    *project.Service
	sessions   middleware.SessionChecker
	collector  *metrics.Collector
}

func (a *App) buildServices(ctx context.Context, cfg config.Config) (services, error) {
	if cfg.DatabaseURL == "" {
		return buildMemoryServices(cfg)
	}

	pool, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return services{}, fmt.Errorf("db connect: %w", err)
	}
	a.pool = pool

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, "migrations"); err != nil {
			return services{}, fmt.Errorf("migrate: %w", err)
		}
	}
	if cfg.RunSeed {
		data, err := seed.Build(cfg.CompanyTimezone)
		if err != nil {
			return services{}, fmt.Errorf("seed build: %w", err)
		}
		if err := seed.Apply(ctx, pool, data); err != nil {
			return services{}, fmt.Errorf("seed apply: %w", err)
		}
	}

	identityStore := identity.NewStore(pool)
	return services{
		identity:   identity.NewService(identityStore, cfg.JWTSecret, cfg.TokenTTL),
		attendance: attendance.NewService(attendance.NewStore(pool)),
		leave:      leave.NewService(leave.NewStore(pool)),
		payroll:    payroll.NewService(payroll.NewStore(pool)),
		project:    project.NewService(project.NewStore(pool)),
		sessions:   identityStore,
		collector:  newCollector(cfg),
	}, nil
}

func buildMemoryServices(cfg config.Config) (services, error) {
	data, err := seed.Build(cfg.CompanyTimezone)
	if err != nil {
		return services{}, fmt.Errorf("seed build: %w", err)
	}

	identityStore := identity.NewMemoryStore(data.Identities, data.Passwords)
	return services{
		identity:   identity.NewService(identityStore, cfg.JWTSecret, cfg.TokenTTL),
		attendance: attendance.NewService(attendance.NewMemoryStore(data.Attendance, len(data.Identities))),
		leave:      leave.NewService(leave.NewMemoryStore(data.Balances, data.LeaveRequests)),
		payroll:    payroll.NewService(payroll.NewMemoryStore(data.Payroll)),
		project:    project.NewService(project.NewMemoryStore(data.Projects)),
		sessions:   identityStore,
		collector:  newCollector(cfg),
	}, nil
}

func newCollector(cfg config.Config) *metrics.Collector {
	if !cfg.MetricsEnabled {
		return nil
	}
	return metrics.New()
}

func buildRouter(cfg config.Config, svcs services, pool *pgxpool.Pool) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.Metrics(svcs.collector))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	router.Use(middleware.Auth(cfg.JWTSecret, svcs.sessions))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if pool != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := pool.Ping(ctx); err != nil {
				http.Error(w, "db not ready", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if svcs.collector != nil {
		router.Method(http.MethodGet, "/metrics", svcs.collector.Handler())
	}

	router.Route("/api/v1", func(r chi.Router) {
		authHandler := authhandler.NewHandler(svcs.identity)
		r.With(httprate.LimitByIP(cfg.LoginRatePerMinute, time.Minute)).
			Post("/auth/login", authHandler.HandleLogin)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)

			r.Post("/auth/logout", authHandler.HandleLogout)
			r.Get("/auth/me", authHandler.HandleMe)

			r.Get("/navigation", navhandler.NewHandler().HandleMenu)
			r.Get("/dashboard", dashboardhandler.NewHandler(svcs.attendance, svcs.leave).HandleOverview)

			attendanceHandler := attendancehandler.NewHandler(svcs.attendance, svcs.identity)
			r.Get("/attendance", attendanceHandler.HandleList)
			r.Get("/attendance/export", attendanceHandler.HandleExport)

			leaveHandler := leavehandler.NewHandler(svcs.leave, svcs.identity)
			r.Get("/leave/balances", leaveHandler.HandleBalances)
			r.Get("/leave/requests", leaveHandler.HandleListRequests)
			r.Post("/leave/requests", leaveHandler.HandleCreate)
			r.With(middleware.RequireRole(identity.RoleAdmin, identity.RoleManager)).
				Post("/leave/requests/{id}/approve", leaveHandler.HandleApprove)
			r.With(middleware.RequireRole(identity.RoleAdmin, identity.RoleManager)).
				Post("/leave/requests/{id}/reject", leaveHandler.HandleReject)

			payrollHandler := payrollhandler.NewHandler(svcs.payroll)
			r.Route("/payroll", func(r chi.Router) {
				r.Use(middleware.RequireRole(identity.RoleAdmin))
				r.Get("/", payrollHandler.HandleList)
				r.Get("/summary", payrollHandler.HandleSummary)
				r.Get("/export", payrollHandler.HandleExport)
				r.Get("/{id}/payslip", payrollHandler.HandlePayslip)
			})

			projectHandler := projecthandler.NewHandler(svcs.project)
			r.Route("/projects", func(r chi.Router) {
				r.Get("/", projectHandler.HandleList)
				r.Get("/{id}", projectHandler.HandleGet)
				managerial := middleware.RequireRole(identity.RoleAdmin, identity.RoleManager)
				r.With(managerial).Post("/", projectHandler.HandleCreate)
				r.With(managerial).Put("/{id}", projectHandler.HandleUpdate)
				r.With(managerial).Post("/{id}/complete", projectHandler.HandleComplete)
			})

			directoryHandler := directoryhandler.NewHandler(svcs.identity)
			r.With(middleware.RequireRole(identity.RoleAdmin, identity.RoleManager)).
				Get("/employees", directoryHandler.HandleEmployees)
			r.With(middleware.RequireRole(identity.RoleAdmin, identity.RoleManager)).
				Get("/employees/departments", directoryHandler.HandleDepartments)
			r.Get("/profile", directoryHandler.HandleProfile)
			r.Get("/settings", directoryHandler.HandleGetSettings)
			r.Put("/settings", directoryHandler.HandleUpdateSettings)
		})
	})

	return router
}

// Run builds the app from the environment and serves until the process exits.
func Run() {
	ctx := context.Background()
	cfg := config.Load()

	app, err := New(ctx, cfg)
	if err != nil {
		log.Fatalf("startup failed: %v", err)
	}
	defer app.Close()

	log.Printf("HRMS server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, app.Router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
