package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/roamly/roamly-api/internal/adapters/httpapi"
	memparticipantrepo "github.com/roamly/roamly-api/internal/adapters/memory/participantrepo"
	memskilllinkrepo "github.com/roamly/roamly-api/internal/adapters/memory/skilllinkrepo"
	memskillrepo "github.com/roamly/roamly-api/internal/adapters/memory/skillrepo"
	memtriprepo "github.com/roamly/roamly-api/internal/adapters/memory/triprepo"
	memuserrepo "github.com/roamly/roamly-api/internal/adapters/memory/userrepo"
	memwarriorrepo "github.com/roamly/roamly-api/internal/adapters/memory/warriorrepo"
	postgres "github.com/roamly/roamly-api/internal/adapters/postgres"
	pgparticipantrepo "github.com/roamly/roamly-api/internal/adapters/postgres/participantrepo"
	pgskilllinkrepo "github.com/roamly/roamly-api/internal/adapters/postgres/skilllinkrepo"
	pgskillrepo "github.com/roamly/roamly-api/internal/adapters/postgres/skillrepo"
	pgtriprepo "github.com/roamly/roamly-api/internal/adapters/postgres/triprepo"
	pguserrepo "github.com/roamly/roamly-api/internal/adapters/postgres/userrepo"
	pgwarriorrepo "github.com/roamly/roamly-api/internal/adapters/postgres/warriorrepo"
	"github.com/roamly/roamly-api/internal/app/auth"
	"github.com/roamly/roamly-api/internal/app/trips"
	"github.com/roamly/roamly-api/internal/app/warriors"
	platformclock "github.com/roamly/roamly-api/internal/platform/clock"
	"github.com/roamly/roamly-api/internal/platform/config"
	"github.com/roamly/roamly-api/internal/platform/token"
	participantrepoport "github.com/roamly/roamly-api/internal/ports/out/participantrepo"
	skilllinkrepoport "github.com/roamly/roamly-api/internal/ports/out/skilllinkrepo"
	skillrepoport "github.com/roamly/roamly-api/internal/ports/out/skillrepo"
	triprepoport "github.com/roamly/roamly-api/internal/ports/out/triprepo"
	userrepoport "github.com/roamly/roamly-api/internal/ports/out/userrepo"
	warriorrepoport "github.com/roamly/roamly-api/internal/ports/out/warriorrepo"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	clk := platformclock.NewSystemClock()

	var (
		userRepo        userrepoport.Repository
		tripRepo        triprepoport.Repository
		participantRepo participantrepoport.Repository
		warriorRepo     warriorrepoport.Repository
		skillRepo       skillrepoport.Repository
		skillLinkRepo   skilllinkrepoport.Repository
	)

	switch cfg.StorageBackend {
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, postgres.PoolOptions{})
		if err != nil {
			log.WithError(err).Fatal("connect to postgres")
		}
		defer pool.Close()

		if err := postgres.Migrate(ctx, pool); err != nil {
			log.WithError(err).Fatal("migrate schema")
		}

		userRepo = pguserrepo.NewRepo(pool)
		tripRepo = pgtriprepo.NewRepo(pool)
		participantRepo = pgparticipantrepo.NewRepo(pool)
		warriorRepo = pgwarriorrepo.NewRepo(pool)
		skillRepo = pgskillrepo.NewRepo(pool)
		skillLinkRepo = pgskilllinkrepo.NewRepo(pool)
	default:
		userRepo = memuserrepo.NewRepo()
		tripRepo = memtriprepo.NewRepo()
		participantRepo = memparticipantrepo.NewRepo()
		warriorRepo = memwarriorrepo.NewRepo()
		skillRepo = memskillrepo.NewRepo()
		skillLinkRepo = memskilllinkrepo.NewRepo()
	}

	issuer := token.NewIssuer([]byte(cfg.TokenSecret), cfg.TokenTTL)

	authSvc := auth.NewService(userRepo, issuer, clk)
	tripsSvc := trips.NewService(tripRepo, participantRepo, clk)
	warriorsSvc := warriors.NewService(warriorRepo, skillRepo, skillLinkRepo, clk)

	server := httpapi.NewServer(authSvc, tripsSvc, warriorsSvc, log)
	handler := httpapi.NewRouter(server, cfg.CORSOrigins)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithFields(logrus.Fields{
			"port":    cfg.Port,
			"storage": cfg.StorageBackend,
		}).Info("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Error("shutdown")
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("serve")
		}
	}
}
