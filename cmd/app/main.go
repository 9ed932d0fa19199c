package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/AbdullahAlSalim/skywayexpress/cmd"
	httpadapter "github.com/AbdullahAlSalim/skywayexpress/internal/adapters/in/http"
	"github.com/AbdullahAlSalim/skywayexpress/internal/adapters/out/postgres/lineitemrepo"
	"github.com/AbdullahAlSalim/skywayexpress/internal/adapters/out/postgres/orderrepo"
	"github.com/AbdullahAlSalim/skywayexpress/internal/adapters/out/postgres/partyrepo"
	"github.com/AbdullahAlSalim/skywayexpress/internal/adapters/out/postgres/raterepo"
	"github.com/AbdullahAlSalim/skywayexpress/internal/core/domain/model/rate"
	"github.com/AbdullahAlSalim/skywayexpress/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const authTokenTTL = 24 * time.Hour

func main() {
	configs := getConfigs()

	gormDB := openDatabase(configs)
	migrateAndSeed(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(app.CreateOrderStatsQueryHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
		AuthSecret: goDotEnvVariable("AUTH_SECRET"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func migrateAndSeed(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&partyrepo.PartyDTO{},
		&orderrepo.OrderDTO{},
		&lineitemrepo.LineItemDTO{},
		&raterepo.RateTierDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	rateRepo := raterepo.NewGormRateTierRepository(gormDB)
	if err := rateRepo.Seed(context.Background(), defaultRateTiers()); err != nil {
		log.Fatalf("Failed to seed rate table: %v", err)
	}
}

func defaultRateTiers() []rate.Tier {
	specs := []struct {
		lower, upper float64
		price        string
	}{
		{0, 100, "10.00"},
		{100, 500, "25.00"},
		{500, 2000, "60.00"},
	}

	tiers := make([]rate.Tier, 0, len(specs))
	for _, s := range specs {
		price, err := decimal.NewFromString(s.price)
		if err != nil {
			log.Fatalf("Invalid default rate price %q: %v", s.price, err)
		}
		tier, err := rate.NewTier(s.lower, s.upper, price)
		if err != nil {
			log.Fatalf("Invalid default rate tier: %v", err)
		}
		tiers = append(tiers, tier)
	}
	return tiers
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	auth := httpadapter.NewAuthenticator(configs.AuthSecret, authTokenTTL)
	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateQuoteRateQueryHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateListOrdersQueryHandler(),
	)
	server.RegisterRoutes(e, auth)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
