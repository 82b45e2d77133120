package httpapi

import (
	"net/http"
	"time"

	"github.com/appdotbuilder/panti-asuhan-manajemen-sub000/internal/config"
	"github.com/appdotbuilder/panti-asuhan-manajemen-sub000/internal/logging"
	"github.com/appdotbuilder/panti-asuhan-manajemen-sub000/internal/models"
	"github.com/appdotbuilder/panti-asuhan-manajemen-sub000/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
)

type Server struct {
	DB     *sqlx.DB
	Config config.Config
	Tokens services.TokenService
	Hub    *services.DashboardHub
	Media  services.MediaStore
	Policy services.ActivityPolicy
	Log    *logging.Logger
}

func NewServer(db *sqlx.DB, cfg config.Config, hub *services.DashboardHub, log *logging.Logger) *Server {
	tokens := services.TokenService{
		Secret:     []byte(cfg.JWTSecret),
		Issuer:     cfg.JWTIssuer,
		AccessTTL:  time.Duration(cfg.AccessTTLSeconds) * time.Second,
		RefreshTTL: time.Duration(cfg.RefreshTTLSeconds) * time.Second,
	}
	if log == nil {
		log = logging.Discard()
	}
	return &Server{
		DB:     db,
		Config: cfg,
		Tokens: tokens,
		Hub:    hub,
		Media:  services.MediaStore{DB: db, BasePath: cfg.MediaStoragePath},
		Policy: services.ActivityPolicy{StrictTransitions: cfg.ActivityStrictTransitions},
		Log:    log.WithComponent(logging.ComponentHTTP),
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(s.Log))
	r.Use(middleware.Recoverer)
	if len(s.Config.CorsOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   s.Config.CorsOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	staff := RequireAnyRole(models.RoleAdmin, models.RolePengurus)

	r.Route("/api", func(api chi.Router) {
		api.Get("/healthcheck", s.Healthcheck)
		api.Post("/auth/register", s.Register)
		api.Post("/auth/login", s.Login)
		api.Post("/auth/refresh", s.Refresh)

		api.Group(func(authed chi.Router) {
			authed.Use(WithAuth(s.Tokens))

			authed.Get("/me", s.Me)
			authed.Put("/me/password", s.ChangePassword)

			authed.Route("/admin", func(admin chi.Router) {
				admin.Use(RequireAnyRole(models.RoleAdmin))
				admin.Get("/users", s.ListUsers)
				admin.Post("/users", s.CreateUser)
				admin.Get("/system", s.SystemStats)
			})

			authed.Route("/children", func(children chi.Router) {
				children.Use(staff)
				children.Get("/", s.ListChildren)
				children.Post("/", s.CreateChild)
				children.Put("/{id}", s.UpdateChild)
			})

			authed.Route("/donors", func(donors chi.Router) {
				donors.Use(staff)
				donors.Get("/", s.ListDonors)
				donors.Post("/", s.CreateDonor)
			})

			authed.Get("/donations", s.ListDonations)
			authed.With(staff).Post("/donations", s.CreateDonation)

			authed.With(staff).Get("/expenses", s.ListExpenses)
			authed.With(staff).Post("/expenses", s.CreateExpense)

			authed.Get("/activities", s.ListActivities)
			authed.With(staff).Post("/activities", s.CreateActivity)
			authed.With(staff).Put("/activities/{id}", s.UpdateActivity)

			authed.Get("/reports/financial", s.FinancialReport)
			authed.Get("/dashboard/summary", s.DashboardSummary)

			authed.Route("/media", func(media chi.Router) {
				media.With(staff).Post("/receipts", s.UploadReceipt)
				media.With(staff).Post("/photos", s.UploadPhoto)
				media.Get("/assets/{assetId}/content", s.MediaContent)
			})
		})
	})

	r.Get("/ws/dashboard", s.DashboardSocket)
	return r
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

func (s *Server) Healthcheck(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now().UTC()})
}
