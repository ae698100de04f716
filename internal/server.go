package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/multierr"

	"github.com/2beens/programtracker/internal/clock"
	"github.com/2beens/programtracker/internal/config"
	"github.com/2beens/programtracker/internal/db"
	"github.com/2beens/programtracker/internal/enrollment"
	"github.com/2beens/programtracker/internal/locking"
	"github.com/2beens/programtracker/internal/middleware"
	"github.com/2beens/programtracker/internal/program"
	"github.com/2beens/programtracker/internal/progress"
	"github.com/2beens/programtracker/internal/records"
	"github.com/2beens/programtracker/internal/storage"
	"github.com/2beens/programtracker/internal/storage/cached"
	"github.com/2beens/programtracker/internal/telemetry/metrics"
	"github.com/2beens/programtracker/internal/telemetry/tracing"
	"github.com/2beens/programtracker/pkg"
)

const serviceName = "program-tracker"

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config      *config.Config
	dbPool      *pgxpool.Pool
	redisClient *redis.Client

	enrollmentHandler  *enrollment.Handler
	programHandler     *program.Handler
	progressHandler    *progress.Handler
	recordsHandler     *records.Handler
	progressionHandler *records.ProgressionHandler

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config      *config.Config
	VersionInfo string
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (_ *Server, err error) {
	cfg := params.Config

	catalog, err := program.LoadCatalog(cfg.ProgramsPath)
	if err != nil {
		return nil, fmt.Errorf("load programs catalog: %w", err)
	}
	log.Debugf("loaded %d programs from [%s]", len(catalog.Programs()), cfg.ProgramsPath)

	var (
		dbPool     *pgxpool.Pool
		collectors []prometheus.Collector
	)
	if cfg.StorageType == storage.TypePostgres {
		dbPool, err = db.NewDBPool(ctx, db.NewDBPoolParams{
			DBHost:         cfg.PostgresHost,
			DBPort:         cfg.PostgresPort,
			DBName:         cfg.PostgresDBName,
			DBUser:         cfg.PostgresUser,
			DBPassword:     cfg.PostgresPassword,
			MaxConns:       cfg.PostgresMaxConns,
			TracingEnabled: cfg.TracingEnabled,
		})
		if err != nil {
			return nil, fmt.Errorf("new db pool: %w", err)
		}
		defer func() {
			if err != nil {
				dbPool.Close()
			}
		}()
		if err := dbPool.Ping(ctx); err != nil {
			log.Warnf("failed to ping db: %s", err)
		}
		if err := db.Migrate(ctx, dbPool); err != nil {
			return nil, err
		}
		collectors = append(collectors, pgxpoolprometheus.NewCollector(
			dbPool,
			map[string]string{"db_name": cfg.PostgresDBName},
		))
	}

	promRegistry := metrics.SetupPrometheus(collectors...)
	metricsManager := metrics.NewManager("program_tracker", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	stores, err := storage.New(cfg.StorageType, dbPool)
	if err != nil {
		return nil, err
	}

	days := cached.NewProgramDayRepo(stores.Days, cfg.DayCacheSizeMB*1024*1024, cached.DefaultTTL)
	if err := catalog.Seed(ctx, days); err != nil {
		return nil, fmt.Errorf("seed program days: %w", err)
	}

	var (
		rdb    *redis.Client
		locker locking.Locker = locking.NewKeyedMutex()
	)
	if cfg.RedisHost != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
			Password: cfg.RedisPassword,
			DB:       0,
		})
		defer func() {
			if err != nil {
				if closeErr := rdb.Close(); closeErr != nil {
					log.Errorf("close redis client: %s", closeErr)
				}
			}
		}()
		rdbStatus := rdb.Ping(ctx)
		if err := rdbStatus.Err(); err != nil {
			log.Errorf("--> failed to ping redis: %s", err)
		} else {
			log.Debugf("redis ping: %s", rdbStatus.Val())
		}
		locker = locking.NewRedisLocker(rdb, cfg.LockTTLDuration())
	}
	locker = locking.WithWaitMetrics(locker, metricsManager.HistogramLockWait)

	otelShutdown, err := tracing.Setup(cfg.TracingEnabled, serviceName)
	if err != nil {
		return nil, err
	}

	clk := clock.Real{}
	substitutions := program.NewSubstitutions(stores.Substitutions, clk)
	scheduler := program.NewScheduler(catalog, catalog, stores.Substitutions)

	enrollmentService := enrollment.NewService(enrollment.ServiceParams{
		Enrollments: stores.Enrollments,
		Days:        days,
		Completions: stores.Completions,
		Journal:     stores.Journal,
		Programs:    catalog,
		Scheduler:   scheduler,
		Clock:       clk,
		Locker:      locker,
		Metrics:     metricsManager,
	})
	aggregator := progress.NewAggregator(stores.Enrollments, days, stores.Completions, clk)
	progression := records.NewProgression(stores.Progression, clk)
	analyzer := records.NewAnalyzer(stores.Records, stores.Sets, clk, locker, metricsManager).
		WithProgression(progression)

	return &Server{
		config:      cfg,
		dbPool:      dbPool,
		redisClient: rdb,
		versionInfo: params.VersionInfo,

		enrollmentHandler:  enrollment.NewHandler(enrollmentService),
		programHandler:     program.NewHandler(catalog, days, scheduler, substitutions),
		progressHandler:    progress.NewHandler(aggregator),
		recordsHandler:     records.NewHandler(analyzer),
		progressionHandler: records.NewProgressionHandler(progression),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	// mutating routes are rate limited per client ip when redis is available
	limited := func(h http.HandlerFunc) http.Handler {
		return h
	}
	if s.redisClient != nil && s.config.RateLimitPerMinute > 0 {
		rateLimit := middleware.RateLimit(
			redis_rate.NewLimiter(s.redisClient),
			"main",
			s.config.RateLimitPerMinute,
			s.metricsManager,
		)
		limited = func(h http.HandlerFunc) http.Handler {
			return rateLimit(h)
		}
	}

	r.HandleFunc("/version", s.handleVersion).Methods("GET")

	eh := s.enrollmentHandler
	r.Handle("/enrollments", limited(eh.HandleEnroll)).Methods("POST", "OPTIONS").Name("enroll")
	r.HandleFunc("/enrollments/{id}", eh.HandleGet).Methods("GET", "OPTIONS").Name("get-enrollment")
	r.Handle("/enrollments/{id}", limited(eh.HandlePurge)).Methods("DELETE", "OPTIONS").Name("purge-enrollment")
	r.HandleFunc("/users/{userId}/enrollment", eh.HandleActiveForUser).Methods("GET", "OPTIONS").Name("active-enrollment")
	r.HandleFunc("/enrollments/{id}/history", eh.HandleHistory).Methods("GET", "OPTIONS").Name("enrollment-history")
	r.HandleFunc("/enrollments/{id}/workout", eh.HandleWorkout).Methods("GET", "OPTIONS").Name("current-workout")
	r.Handle("/enrollments/{id}/start", limited(eh.HandleStartDay)).Methods("POST", "OPTIONS").Name("start-day")
	r.Handle("/enrollments/{id}/complete", limited(eh.HandleComplete)).Methods("POST", "OPTIONS").Name("complete-day")
	r.Handle("/enrollments/{id}/skip", limited(eh.HandleSkip)).Methods("POST", "OPTIONS").Name("skip-day")
	r.Handle("/enrollments/{id}/partial", limited(eh.HandlePartial)).Methods("POST", "OPTIONS").Name("partial-day")
	r.Handle("/enrollments/{id}/pause", limited(eh.HandlePause)).Methods("POST", "OPTIONS").Name("pause")
	r.Handle("/enrollments/{id}/resume", limited(eh.HandleResume)).Methods("POST", "OPTIONS").Name("resume")
	r.Handle("/enrollments/{id}/cancel", limited(eh.HandleCancel)).Methods("POST", "OPTIONS").Name("cancel")
	r.HandleFunc("/enrollments/{id}/summary", s.progressHandler.HandleSummary).Methods("GET", "OPTIONS").Name("progress-summary")

	ph := s.programHandler
	r.HandleFunc("/programs", ph.HandleList).Methods("GET", "OPTIONS").Name("list-programs")
	r.HandleFunc("/programs/{programId}/days/{day}", ph.HandleGetDay).Methods("GET", "OPTIONS").Name("program-day")
	r.HandleFunc("/substitutions/{day}", ph.HandleGetSubstitutions).Methods("GET", "OPTIONS").Name("list-substitutions")
	r.Handle("/substitutions/{day}/{exerciseId}", limited(ph.HandleSetSubstitution)).Methods("PUT", "OPTIONS").Name("set-substitution")
	r.Handle("/substitutions/{day}/{exerciseId}", limited(ph.HandleClearSubstitution)).Methods("DELETE", "OPTIONS").Name("clear-substitution")

	rh := s.recordsHandler
	r.Handle("/sessions/{sessionId}/sets", limited(rh.HandleLogSets)).Methods("POST", "OPTIONS").Name("log-sets")
	r.HandleFunc("/records/{exerciseId}", rh.HandleRecords).Methods("GET", "OPTIONS").Name("personal-records")
	r.HandleFunc("/volume/{days}", rh.HandleVolume).Methods("GET", "OPTIONS").Name("volume")
	r.HandleFunc("/volume/{days}/exercise/{exerciseId}", rh.HandleExerciseVolume).Methods("GET", "OPTIONS").Name("exercise-volume")
	r.HandleFunc("/progression/{exerciseId}", s.progressionHandler.HandleWorkingWeight).Methods("GET", "OPTIONS").Name("working-weight")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "DELETE", "OPTIONS").Name("unknown")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.RequestID())
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	version := s.versionInfo
	if version == "" {
		version = "unknown"
	}
	pkg.WriteTextResponseOK(w, version)
}

func (s *Server) Serve(host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      otelhttp.NewHandler(router, serviceName),
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.InstrumentMetricHandler(
		s.promRegistry,
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
	))
	metricsAddr := net.JoinHostPort(s.config.MetricsHost, s.config.MetricsPort)
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

func (s *Server) GracefulShutdown() error {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	// stop taking requests before the backends go away
	var err error
	if s.httpServer != nil {
		if shutdownErr := s.httpServer.Shutdown(ctx); shutdownErr != nil {
			err = multierr.Append(err, fmt.Errorf("shutdown http server: %w", shutdownErr))
		}
		log.Warnln("server shut down")
	}
	if s.metricsHttpServer != nil {
		if shutdownErr := s.metricsHttpServer.Shutdown(ctx); shutdownErr != nil {
			err = multierr.Append(err, fmt.Errorf("shutdown metrics server: %w", shutdownErr))
		}
		log.Warnln("metrics server shut down")
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if closeErr := s.redisClient.Close(); closeErr != nil {
			err = multierr.Append(err, fmt.Errorf("close redis client: %w", closeErr))
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

	return err
}
