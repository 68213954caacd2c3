package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	httpadp "swasthya-backend/internal/adapter/http"
	mw "swasthya-backend/internal/adapter/middleware"
	"swasthya-backend/internal/adapter/repository/memory"
	"swasthya-backend/internal/adapter/repository/mysql"
	"swasthya-backend/internal/config"
	"swasthya-backend/internal/domain/patient"
	"swasthya-backend/internal/domain/scheme"
	"swasthya-backend/internal/domain/uow"
	"swasthya-backend/internal/infrastructure/cache"
	"swasthya-backend/internal/infrastructure/db"
	"swasthya-backend/internal/infrastructure/session"
	authuc "swasthya-backend/internal/usecase/auth"
	patientuc "swasthya-backend/internal/usecase/patient"
	schemeuc "swasthya-backend/internal/usecase/scheme"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	// store backend
	var (
		patients patient.Repository
		schemes  scheme.Repository
		unit     uow.UnitOfWork
	)
	switch cfg.Store {
	case config.StoreMySQL:
		gdb, err := db.OpenGorm(cfg.MySQLDSN())
		if err != nil {
			log.Fatal(err)
		}
		if err := mysql.Migrate(gdb); err != nil {
			log.Fatal(err)
		}
		patients = mysql.NewPatientRepository(gdb)
		schemes = mysql.NewSchemeRepository(gdb)
		unit = mysql.NewGormUoW(gdb)
	default:
		store := memory.NewStore()
		patients = store.Patients()
		schemes = store.Schemes()
		unit = memory.NewUoW(store)
	}

	// redis is needed for redis sessions and for idempotency
	var rdb *redis.Client
	if cfg.Sessions == config.SessionsRedis || cfg.IdempotencyOn {
		var err error
		rdb, err = cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			log.Fatal(err)
		}
	}

	var sessions session.Store
	if cfg.Sessions == config.SessionsRedis {
		sessions = session.NewRedisStore(rdb)
	} else {
		sessions = session.NewMemoryStore()
	}

	authUC := authuc.NewUsecase(sessions, time.Duration(cfg.SessionTTLSecs)*time.Second)
	patientUC := patientuc.NewUsecase(patients, unit)
	schemeUC := schemeuc.NewUsecase(schemes, unit)

	h := httpadp.NewHandler(cfg.Store)
	ah := httpadp.NewAuthHandler(authUC)
	ph := httpadp.NewPatientHandler(patientUC)
	sh := httpadp.NewSchemeHandler(schemeUC)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger(), echomw.Recover())
	e.Validator = httpadp.NewValidator()

	// public routes
	e.GET("/health", h.Health)
	e.POST("/login", ah.Login)

	// everything below needs a session
	g := e.Group("", mw.Session(authUC))
	if cfg.IdempotencyOn {
		g.Use(mw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))
	}

	g.POST("/logout", ah.Logout)
	g.GET("/me", ah.Me)

	g.POST("/patients", ph.Submit, mw.RequirePermission("create_patient"))
	g.GET("/patients", ph.List)
	g.GET("/patients/:patient_id", ph.Get)
	g.POST("/patients/:patient_id/approve", ph.Approve, mw.RequireApprover())
	g.POST("/patients/:patient_id/reject", ph.Reject, mw.RequireApprover())
	g.GET("/statistics", ph.Statistics)

	g.GET("/schemes", sh.ListActive)
	g.GET("/schemes/all", sh.ListAll, mw.RequirePermission("manage_schemes"))
	g.POST("/schemes", sh.Create, mw.RequirePermission("manage_schemes"))
	g.PATCH("/schemes/:scheme_id", sh.Update, mw.RequirePermission("manage_schemes"))
	g.DELETE("/schemes/:scheme_id", sh.Delete, mw.RequirePermission("manage_schemes"))

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s (store=%s)", addr, cfg.Store)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
