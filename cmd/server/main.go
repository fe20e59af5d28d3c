package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"tripmind/config"
	"tripmind/database"
	"tripmind/router"

	// Auth + Health
	authCtrlImp "tripmind/pkg/auth/controllerImp"
	healthCtrlImp "tripmind/pkg/health/controllerImp"

	// Access
	accessCtrlImp "tripmind/pkg/access/controllerImp"
	accessRepoImp "tripmind/pkg/access/repositoryImp"
	accessSvcImp "tripmind/pkg/access/serviceImp"

	// Messages
	msgCtrlImp "tripmind/pkg/message/controllerImp"
	msgRepoImp "tripmind/pkg/message/repositoryImp"
	msgSvcImp "tripmind/pkg/message/serviceImp"

	// Profile
	profCtrlImp "tripmind/pkg/profile/controllerImp"
	profRepoImp "tripmind/pkg/profile/repositoryImp"
	profSvcImp "tripmind/pkg/profile/serviceImp"

	// Trips
	tripCtrlImp "tripmind/pkg/trip/controllerImp"
	tripRepoImp "tripmind/pkg/trip/repositoryImp"
	tripSvcImp "tripmind/pkg/trip/serviceImp"

	// Pipeline + LLM + rates
	"tripmind/pkg/ai"
	"tripmind/pkg/pipeline"
	"tripmind/pkg/rates"

	// KB
	kbCtrlImp "tripmind/pkg/kb/controllerImp"
	kbEmbedder "tripmind/pkg/kb/embedder"
	kbRepoImp "tripmind/pkg/kb/repositoryImp"
	kbSvcImp "tripmind/pkg/kb/serviceImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())

	// 4) Price rates (mock planner + budget defaults)
	table := rates.Default()
	if cfg.RatesCSV != "" {
		t, err := rates.LoadFromFiles(cfg.RatesCSV, cfg.RatesXLSX)
		if err != nil {
			log.Printf("rates warn: %v", err)
		} else {
			table = t
		}
	}

	// 5) LLM (mock fallback)
	var llm ai.Client
	if cfg.LLMEndpoint != "" && cfg.LLMAPIKey != "" {
		llm = ai.NewOpenAI(cfg.LLMEndpoint, cfg.LLMAPIKey, cfg.LLMModel)
	} else {
		llm = ai.NewMock(table)
	}

	// 6) KB wiring
	emb := kbEmbedder.New(cfg.EmbEndpoint, cfg.EmbAPIKey, cfg.EmbModel)
	kbRepo := kbRepoImp.New(db)
	kbSvc := kbSvcImp.New(kbRepo, emb)
	kbCtrl := kbCtrlImp.New(kbSvc)

	// 7) Pipeline
	sched, err := pipeline.NewScheduler(
		pipeline.DefaultGraph(llm, cfg.MinLodgingResults),
		time.Duration(cfg.AgentTimeoutSec)*time.Second,
	)
	if err != nil {
		log.Fatalf("pipeline: %v", err)
	}

	// 8) Repos / services / controllers
	tripRepo := tripRepoImp.New(db)
	grantRepo := accessRepoImp.New(db)
	userRepo := profRepoImp.New(db)
	msgRepo := msgRepoImp.New(db)

	gate := accessSvcImp.New(tripRepo, userRepo, grantRepo, cfg.RequireAcceptedRead)
	msgSvc := msgSvcImp.New(msgRepo, gate)
	profSvc := profSvcImp.New(userRepo)

	tripSvc := tripSvcImp.New(sched, tripRepo, gate, msgSvc, profSvc, kbSvc)
	tripCtrl := tripCtrlImp.NewTripCtrl(tripSvc)
	accessCtrl := accessCtrlImp.New(gate)
	msgCtrl := msgCtrlImp.New(msgSvc)
	profCtrl := profCtrlImp.New(userRepo)
	authCtrl := authCtrlImp.NewAuthController()
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 9) Router + start
	r := router.New(e, tripCtrl, accessCtrl, msgCtrl, profCtrl, authCtrl, kbCtrl, hCtrl)

	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
