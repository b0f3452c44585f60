package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	httpadp "agrifund-backend/internal/adapter/http"
	"agrifund-backend/internal/adapter/middleware"
	"agrifund-backend/internal/adapter/repository/kv"
	"agrifund-backend/internal/config"
	"agrifund-backend/internal/infrastructure/cache"
	"agrifund-backend/internal/infrastructure/db"
	"agrifund-backend/internal/usecase/identity"
	loanUC "agrifund-backend/internal/usecase/loan"
	portfolioUC "agrifund-backend/internal/usecase/portfolio"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using system environment")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	var (
		gdb *gorm.DB
		err error
	)
	switch cfg.DBDriver {
	case config.DriverMySQL:
		gdb, err = db.OpenMySQL(cfg.MySQLDSN())
	default:
		gdb, err = db.OpenSQLite(cfg.SQLitePath)
	}
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	if err := kv.AutoMigrate(gdb); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	users := kv.NewUserRepository(gdb)
	loans := kv.NewLoanRepository(gdb)
	portfolios := kv.NewPortfolioRepository(gdb)
	uw := kv.NewGormUoW(gdb)

	identUC := identity.NewUsecase(users)
	ledgerUC := loanUC.NewUsecase(uw, loans)
	folioUC := portfolioUC.NewUsecase(portfolios)

	h := httpadp.NewHandler()
	identH := httpadp.NewIdentityHandler(identUC)
	loanH := httpadp.NewLoanHandler(ledgerUC, identUC)
	folioH := httpadp.NewPortfolioHandler(folioUC, ledgerUC, identUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	// routes
	e.GET("/health", h.Health)
	e.POST("/users", identH.Register)
	e.POST("/auth/login", identH.Login)

	idemp := middleware.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)
	e.GET("/loans", loanH.ListLoans)
	e.GET("/loans/:loan_id", loanH.GetLoan)
	e.POST("/loans", loanH.SubmitLoan, idemp)
	e.POST("/loans/:loan_id/investments", loanH.Invest, idemp)
	e.PATCH("/loans/:loan_id/repayment", loanH.UpdateRepayment, idemp)

	e.GET("/portfolio", folioH.GetPortfolio)
	e.GET("/stats/impact", folioH.ImpactStats)
	e.GET("/stats/portfolio", folioH.InvestorStats)
	e.GET("/stats/farmer", folioH.FarmerStats)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
