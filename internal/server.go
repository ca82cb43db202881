package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/Olii83/gym-tracker/internal/auth"
	"github.com/Olii83/gym-tracker/internal/config"
	"github.com/Olii83/gym-tracker/internal/datastore"
	"github.com/Olii83/gym-tracker/internal/db"
	"github.com/Olii83/gym-tracker/internal/exercises"
	"github.com/Olii83/gym-tracker/internal/middleware"
	"github.com/Olii83/gym-tracker/internal/misc"
	"github.com/Olii83/gym-tracker/internal/profiles"
	"github.com/Olii83/gym-tracker/internal/telemetry/metrics"
	"github.com/Olii83/gym-tracker/internal/telemetry/tracing"
	"github.com/Olii83/gym-tracker/internal/tracking"
	"github.com/Olii83/gym-tracker/internal/trainings"
	"github.com/Olii83/gym-tracker/internal/workoutlog"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config *config.Config
	dbPool *pgxpool.Pool
	store  *datastore.Store

	redisClient  *redis.Client
	loginChecker *auth.LoginChecker
	authService  *auth.Service

	trackingManager *tracking.Manager

	// telemetry
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config        *config.Config
	VersionInfo   string
	RedisPassword string
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		TracingEnabled: cfg.OtelEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	promRegistry := metrics.SetupPrometheus()
	metrics.RegisterPgxPoolCollector(promRegistry, dbPool, cfg.PostgresDBName)
	metricsManager := metrics.NewManager("gymtracker", "backend", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	authService := auth.NewAuthService(auth.DefaultTTL, rdb)
	go func() {
		for range time.Tick(time.Hour * 8) {
			authService.ScanAndClean(ctx)
		}
	}()

	otelShutdown, err := tracing.Setup(cfg.OtelEnabled, "gym-tracker-backend")
	if err != nil {
		return nil, fmt.Errorf("tracing setup: %w", err)
	}

	store := datastore.New(dbPool)

	return &Server{
		versionInfo: params.VersionInfo,
		config:      cfg,
		dbPool:      dbPool,
		store:       store,

		redisClient:  rdb,
		authService:  authService,
		loginChecker: auth.NewLoginChecker(auth.DefaultTTL, rdb),

		trackingManager: tracking.NewManager(store, metricsManager),

		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	exercisesHandler := exercises.NewHandler(exercises.NewRepo(s.dbPool))
	r.HandleFunc("/exercise", exercisesHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-exercise")
	r.HandleFunc("/exercise", exercisesHandler.HandleList).Methods("GET", "OPTIONS").Name("list-exercises")
	r.HandleFunc("/exercise/{id}", exercisesHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-exercise")
	r.HandleFunc("/exercise/{id}", exercisesHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-exercise")
	r.HandleFunc("/exercise/{id}", exercisesHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-exercise")

	trainingsHandler := trainings.NewHandler(trainings.NewRepo(s.dbPool))
	r.HandleFunc("/training", trainingsHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-training")
	r.HandleFunc("/training", trainingsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-trainings")
	r.HandleFunc("/training/{id}", trainingsHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-training")
	r.HandleFunc("/training/{id}", trainingsHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-training")
	r.HandleFunc("/training/{id}/exercise", trainingsHandler.HandleAddExercise).Methods("POST", "OPTIONS").Name("new-training-exercise")
	r.HandleFunc("/training/{id}/exercise/{teId}", trainingsHandler.HandleRemoveExercise).Methods("DELETE", "OPTIONS").Name("remove-training-exercise")
	r.HandleFunc("/training/{id}/exercise/{teId}/order", trainingsHandler.HandleUpdateExerciseOrder).Methods("PUT", "OPTIONS").Name("update-training-exercise-order")
	r.HandleFunc("/training/{id}/exercise/{teId}/sets", trainingsHandler.HandleSetPlannedSets).Methods("PUT", "OPTIONS").Name("set-planned-sets")

	logsHandler := workoutlog.NewHandler(workoutlog.NewRepo(s.dbPool), s.store.Analyzer(), s.metricsManager)
	r.HandleFunc("/logs", logsHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-log")
	r.HandleFunc("/logs", logsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-logs")
	r.HandleFunc("/logs/{id}", logsHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-log")
	r.HandleFunc("/logs/{id}", logsHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-log")
	r.HandleFunc("/logs/exercise/{exerciseId}/history", logsHandler.HandleHistory).Methods("GET", "OPTIONS").Name("exercise-history")
	r.HandleFunc("/logs/exercise/{exerciseId}/pr", logsHandler.HandlePersonalRecord).Methods("GET", "OPTIONS").Name("exercise-pr")

	profilesHandler := profiles.NewHandler(profiles.NewRepo(s.dbPool))
	r.HandleFunc("/profile", profilesHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-profile")
	r.HandleFunc("/profile", profilesHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-profile")

	trackingHandler := tracking.NewHandler(s.trackingManager, s.metricsManager)
	r.HandleFunc("/tracking/session", trackingHandler.HandleStart).Methods("POST", "OPTIONS").Name("start-session")
	r.HandleFunc("/tracking/session", trackingHandler.HandleStatus).Methods("GET", "OPTIONS").Name("session-status")
	r.HandleFunc("/tracking/session/finish", trackingHandler.HandleFinish).Methods("POST", "OPTIONS").Name("finish-session")
	r.HandleFunc("/tracking/session/cancel", trackingHandler.HandleCancel).Methods("POST", "OPTIONS").Name("cancel-session")
	r.HandleFunc("/tracking/set/complete", trackingHandler.HandleCompleteSet).Methods("POST", "OPTIONS").Name("complete-set")
	r.HandleFunc("/tracking/set/uncomplete", trackingHandler.HandleUncompleteSet).Methods("POST", "OPTIONS").Name("uncomplete-set")
	r.HandleFunc("/tracking/set/extra", trackingHandler.HandleAddExtraSet).Methods("POST", "OPTIONS").Name("new-extra-set")
	r.HandleFunc("/tracking/exercise/{teId}/extra/{extraId}", trackingHandler.HandleRemoveExtraSet).Methods("DELETE", "OPTIONS").Name("remove-extra-set")
	r.HandleFunc("/tracking/reorder", trackingHandler.HandleReorder).Methods("POST", "OPTIONS").Name("reorder-exercises")
	r.HandleFunc("/tracking/unit", trackingHandler.HandleOverrideUnit).Methods("POST", "OPTIONS").Name("override-unit")

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	miscHandler := misc.NewHandler(profiles.NewRepo(s.dbPool), s.authService, s.versionInfo)
	miscHandler.SetupRoutes(r, reqRateLimiter, s.metricsManager, s.config.LoginRateLimitAllowedPerMin)

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.loginChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(
		s.config.PrometheusMetricsHost,
		strconv.Itoa(s.config.PrometheusMetricsPort),
	)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown http server")
	}
	log.Warnln("server shut down")

	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown metrics http server")
	}
	log.Warnln("metrics server shut down")
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
