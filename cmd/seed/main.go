// Команда seed заполняет базу демонстрационными кафе.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/cafe-employee-api/internal/config"
	"github.com/cafe-employee-api/internal/database"
	"github.com/cafe-employee-api/internal/domain"
	"github.com/cafe-employee-api/internal/repository"
)

var demoCafes = []domain.Cafe{
	{
		Name:        "Cafe Mocha",
		Description: "A cozy place with great coffee and snacks.",
		Location:    "123 Coffee St, Coffeeville",
	},
	{
		Name:        "Java House",
		Description: "The best place for Java lovers.",
		Location:    "456 Java Rd, Javaville",
	},
	{
		Name:        "Espresso Bar",
		Description: "Your daily dose of espresso and more.",
		Location:    "789 Espresso Ave, Expressotown",
	},
	{
		Name:        "Brewed Awakenings",
		Description: "Awaken your senses with our freshly brewed coffee.",
		Location:    "321 Brew Blvd, Brewcity",
	},
	{
		Name:        "Caffeine Fix",
		Description: "Fix your caffeine cravings here.",
		Location:    "654 Caffeine Ln, Caffeinetown",
	},
}

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.Log.SlogLevel(),
	}))

	db, err := database.Open(cfg.Database)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("failed to get sql.DB", slog.Any("error", err))
		os.Exit(1)
	}
	defer sqlDB.Close()

	if err := database.Migrate(db, cfg.Database.Driver); err != nil {
		logger.Error("failed to run migrations", slog.Any("error", err))
		os.Exit(1)
	}

	// валидация запросов здесь не применяется: часть названий длиннее 10 символов
	cafeRepo := repository.NewCafeRepository(db)
	ctx := context.Background()

	for _, c := range demoCafes {
		cafe := c
		if err := cafeRepo.Create(ctx, &cafe); err != nil {
			logger.Error("failed to seed cafe", slog.String("name", cafe.Name), slog.Any("error", err))
			sqlDB.Close()
			os.Exit(1)
		}
		logger.Info("cafe seeded", slog.String("id", cafe.ID), slog.String("name", cafe.Name))
	}

	logger.Info("seed data inserted successfully", slog.Int("cafes", len(demoCafes)))
}
