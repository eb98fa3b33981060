package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/Divy2308/Synobiz/internal/config"
	"github.com/Divy2308/Synobiz/internal/handlers"
	"github.com/Divy2308/Synobiz/internal/middleware"
	"github.com/Divy2308/Synobiz/internal/models"
	"github.com/Divy2308/Synobiz/internal/repository/postgres"
	"github.com/Divy2308/Synobiz/internal/service"
)

func New(log zerolog.Logger, db *pgxpool.Pool, cfg config.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recoverer(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.Origin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(httprate.LimitByIP(200, time.Minute))
	r.Use(middleware.WithAuth(log, cfg))

	// Repos + services
	userRepo := postgres.NewUserRepo(db)
	ticketRepo := postgres.NewTicketRepo(db)
	attendanceRepo := postgres.NewAttendanceRepo(db)
	holidayRepo := postgres.NewHolidayRepo(db)
	leaveRepo := postgres.NewLeaveRepo(db)

	authSvc := service.NewAuthService(userRepo, cfg.SessionSecret, cfg.SessionTTL)
	attendanceSvc := service.NewAttendanceService(attendanceRepo)
	ticketSvc := service.NewTicketService(ticketRepo)

	ah := handlers.NewAuthHTTP(authSvc, log)
	uh := handlers.NewUserHTTP(userRepo, log)
	th := handlers.NewTicketHTTP(ticketSvc, ticketRepo, userRepo, cfg.UploadDir, log)
	ath := handlers.NewAttendanceHTTP(attendanceSvc, log)
	hh := handlers.NewHolidayHTTP(holidayRepo, log)
	lh := handlers.NewLeaveHTTP(leaveRepo, log)

	admin := middleware.RequireRoles(models.RoleAdmin)
	staff := middleware.RequireRoles(models.RoleAdmin, models.RoleConsultant)
	anyRole := middleware.RequireRoles(models.RoleAdmin, models.RoleConsultant, models.RoleCustomer)

	// Health
	r.Get("/healthz", handlers.Health())

	// Session
	r.Get("/login", ah.LoginForm())
	r.Post("/login", ah.Login())
	r.With(middleware.RequireAuth).Get("/logout", ah.Logout())
	r.With(middleware.RequireAuth).Get("/auth/me", ah.Me())
	r.With(middleware.RequireAuth).Post("/change_password", ah.ChangePassword())

	// User directory (Admin)
	r.Group(func(r chi.Router) {
		r.Use(admin)
		r.Get("/", uh.NewUserForm())
		r.Get("/users/", uh.List())
		r.Post("/submit_user", uh.Create())
		r.Get("/edit_user/{id}", uh.Edit())
		r.Post("/update_user/{id}", uh.Update())
		r.Delete("/delete_user/{id}", uh.Delete())
	})

	// Attendance (any signed-in user)
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/attendance", ath.Summary())
		r.Post("/attendance/check_in", ath.CheckIn())
		r.Post("/attendance/check_out", ath.CheckOut())
	})

	// Ticket workflow
	r.Route("/tickets", func(r chi.Router) {
		r.Use(anyRole)
		r.Get("/dashboard", th.Dashboard())
		r.Get("/assign_tickets", th.AssignBoard())
		r.Get("/new_task", th.NewTask())
		r.Post("/submit_ticket", th.Submit())
		r.Get("/edit_ticket/{id}", th.Edit())
		r.Post("/update_ticket/{id}", th.Update())
		r.Post("/perform_assignment", th.PerformAssignment())
	})

	// Holiday register
	r.Route("/holidays", func(r chi.Router) {
		r.Use(staff)
		r.Get("/list", hh.List())
		r.Post("/add", hh.Add())
		r.Post("/update/{id}", hh.Update())
		r.Post("/delete/{id}", hh.Delete())
	})

	// Leave register
	r.Route("/leaves", func(r chi.Router) {
		r.Use(staff)
		r.Get("/list", lh.List())
		r.Post("/add", lh.Add())
		r.Post("/update/{id}", lh.Update())
		r.Post("/delete/{id}", lh.Delete())
	})

	return r
}
