package router

import (
	"database/sql"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"coursetable/internal/api/v1/handler"
	"coursetable/internal/config"
	"coursetable/internal/export"
	"coursetable/internal/middleware"
	"coursetable/internal/repository"
	"coursetable/internal/service"
)

// New wires the full stack: DB pool, repositories, services, handlers and
// middleware. The reminder service is returned unstarted; its lifecycle
// belongs to main.
func New(cfg *config.Config, logger zerolog.Logger) (http.Handler, *sql.DB, *service.ReminderService, error) {
	logger.Info().Str("environment", cfg.Environment).Msg("Router initialized")

	// Open DB connection (connection pooling). Local development defaults
	// to sslmode=disable unless the DSN says otherwise.
	dsn := cfg.DBConnectionString
	if cfg.Environment == "development" && !strings.Contains(dsn, "sslmode") {
		separator := " "
		if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
			if strings.Contains(dsn, "?") {
				separator = "&"
			} else {
				separator = "?"
			}
		}
		dsn += separator + "sslmode=disable"
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to open DB connection")
		return nil, nil, nil, err
	}
	if err := db.Ping(); err != nil {
		logger.Error().Err(err).Msg("Failed to ping DB")
		return nil, nil, nil, err
	}
	logger.Info().Msg("Database connection successful")

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxIdleTime(5 * time.Minute)

	validate := validator.New(validator.WithRequiredStructEnabled())

	// Repositories & services & handlers
	semesterRepo := repository.NewSemesterRepo(db)
	courseRepo := repository.NewCourseRepo(db, logger)

	semesterSvc := service.NewSemesterService(semesterRepo, logger)
	courseSvc := service.NewCourseService(courseRepo, cfg.CourseCacheTTL, logger)
	scheduleSvc := service.NewScheduleService(semesterRepo, courseSvc, logger)
	statisticsSvc := service.NewStatisticsService(semesterRepo, courseRepo, logger)
	exportSvc := service.NewExportService(semesterRepo, courseSvc, export.NewRegistry(), cfg.ExportDir, logger)
	reminderSvc := service.NewReminderService(
		scheduleSvc,
		service.LogNotifier{Logger: logger},
		service.RealClock{},
		cfg.ReminderInterval,
		logger,
	)

	semesterHandler := handler.NewSemesterHandler(semesterSvc, validate, logger)
	courseHandler := handler.NewCourseHandler(courseSvc, validate, logger)
	scheduleHandler := handler.NewScheduleHandler(scheduleSvc, logger)
	statisticsHandler := handler.NewStatisticsHandler(statisticsSvc, scheduleSvc, logger)
	exportHandler := handler.NewExportHandler(exportSvc, validate, logger)

	// Create ServeMux router with the API under /v1
	apiV1Mux := http.NewServeMux()
	semesterHandler.RegisterRoutes(apiV1Mux)
	courseHandler.RegisterRoutes(apiV1Mux)
	scheduleHandler.RegisterRoutes(apiV1Mux)
	statisticsHandler.RegisterRoutes(apiV1Mux)
	exportHandler.RegisterRoutes(apiV1Mux)

	mux := http.NewServeMux()
	mux.Handle("/v1/", http.StripPrefix("/v1", apiV1Mux))
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	return middleware.LoggerMiddleware(logger)(c.Handler(mux)), db, reminderSvc, nil
}
