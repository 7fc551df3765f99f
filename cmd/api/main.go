// @title        School Records API
// @version      1.0
// @description  Student and teacher records with sessions, notifications and profile pictures.
// @host         localhost:8080
// @BasePath     /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	_ "github.com/DioneMartin/REST-AWS/docs"
	"github.com/DioneMartin/REST-AWS/internal/api"
	"github.com/DioneMartin/REST-AWS/internal/api/handler"
	"github.com/DioneMartin/REST-AWS/internal/core/ports"
	"github.com/DioneMartin/REST-AWS/internal/core/service"
	"github.com/DioneMartin/REST-AWS/internal/infrastructure/config"
	"github.com/DioneMartin/REST-AWS/internal/infrastructure/db/memory"
	mongostore "github.com/DioneMartin/REST-AWS/internal/infrastructure/db/mongo"
	"github.com/DioneMartin/REST-AWS/internal/infrastructure/db/postgres"
	redisstore "github.com/DioneMartin/REST-AWS/internal/infrastructure/db/redis"
	"github.com/DioneMartin/REST-AWS/internal/infrastructure/notify"
	"github.com/DioneMartin/REST-AWS/internal/infrastructure/storage"
	"github.com/DioneMartin/REST-AWS/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		l := zerolog.New(os.Stderr)
		l.Fatal().Err(err).Msg("failed to read .env")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		l := zerolog.New(os.Stderr)
		l.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "school-records",
	})

	b, err := buildBackends(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialise backends")
	}
	defer b.close()

	students := service.NewStudentService(b.students, cfg.ExternalTimeout, logger.With("students"))
	e := api.NewRouter(api.Deps{
		Students:      students,
		Teachers:      service.NewTeacherService(b.teachers, cfg.ExternalTimeout, logger.With("teachers")),
		Sessions:      service.NewSessionService(b.students, b.sessions, cfg.ExternalTimeout, logger.With("sessions")),
		Notifications: service.NewNotificationService(students, b.notifier, cfg.ExternalTimeout, logger.With("notifications")),
		Media:         service.NewMediaService(students, b.storage, cfg.ExternalTimeout, logger.With("media")),
		MediaObjects:  b.mediaObjects,
		Checks:        b.checks,
		Logger:        log,
	})

	go func() {
		log.Info().
			Str("port", cfg.Port).
			Str("store", cfg.StoreBackend).
			Str("sessions", cfg.SessionBackend).
			Str("media", cfg.MediaBackend).
			Str("notify", cfg.NotifyBackend).
			Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// backends holds the adapters selected by configuration.
type backends struct {
	students     ports.StudentRepository
	teachers     ports.TeacherRepository
	sessions     ports.SessionRepository
	storage      ports.ObjectStorage
	notifier     ports.Notifier
	mediaObjects handler.ObjectReader
	checks       map[string]handler.Checker
	closers      []func()
}

func (b *backends) close() {
	for i := len(b.closers) - 1; i >= 0; i-- {
		b.closers[i]()
	}
}

func buildBackends(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*backends, error) {
	b := &backends{checks: map[string]handler.Checker{}}
	conns := newConnections(ctx, cfg, b)

	switch cfg.StoreBackend {
	case config.BackendMongo:
		db, err := conns.mongo()
		if err != nil {
			return nil, err
		}
		students, teachers := mongostore.NewStudentRepository(db), mongostore.NewTeacherRepository(db)
		if err := mongostore.EnsureIndexes(ctx, students, teachers); err != nil {
			return nil, err
		}
		b.students, b.teachers = students, teachers
	case config.BackendPostgres:
		if err := postgres.Migrate(cfg.Postgres.URL); err != nil {
			return nil, err
		}
		pool, err := postgres.Connect(ctx, postgres.Config{URL: cfg.Postgres.URL})
		if err != nil {
			return nil, err
		}
		b.closers = append(b.closers, pool.Close)
		b.checks["postgres"] = pool.Ping
		b.students, b.teachers = postgres.NewStudentRepository(pool), postgres.NewTeacherRepository(pool)
	default:
		b.students, b.teachers = memory.NewStudentRepository(), memory.NewTeacherRepository()
	}

	switch cfg.SessionBackend {
	case config.BackendMongo:
		db, err := conns.mongo()
		if err != nil {
			return nil, err
		}
		sessions := mongostore.NewSessionRepository(db)
		if err := mongostore.EnsureIndexes(ctx, sessions); err != nil {
			return nil, err
		}
		b.sessions = sessions
	case config.BackendRedis:
		rdb, err := conns.redis()
		if err != nil {
			return nil, err
		}
		b.sessions = redisstore.NewSessionRepository(rdb)
	default:
		b.sessions = memory.NewSessionRepository()
	}

	switch cfg.MediaBackend {
	case config.BackendB2:
		st, err := storage.NewB2Storage(ctx, storage.B2Config{
			AccountID:      cfg.B2.AccountID,
			ApplicationKey: cfg.B2.ApplicationKey,
			Bucket:         cfg.B2.Bucket,
		})
		if err != nil {
			return nil, err
		}
		b.storage = st
	default:
		st := storage.NewMemoryStorage(cfg.Media.PublicBaseURL)
		b.storage, b.mediaObjects = st, st
	}

	switch cfg.NotifyBackend {
	case config.BackendRedis:
		rdb, err := conns.redis()
		if err != nil {
			return nil, err
		}
		b.notifier = notify.NewRedisPublisher(rdb, cfg.Notify.Channel)
	default:
		b.notifier = notify.NewLogNotifier(log.With().Str("component", "notifier").Logger())
	}

	return b, nil
}
