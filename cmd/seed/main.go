package main

import (
	"context"
	"os"

	"smartmenu-service/config"
	"smartmenu-service/internal/database"
	"smartmenu-service/internal/logger"
	"smartmenu-service/internal/models"
	"smartmenu-service/internal/repository"
	"smartmenu-service/internal/service"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/joho/godotenv"
)

// Seeds a small demo catalog so the storefront has something to show.
// Safe to run repeatedly: skips if the demo category already exists.
func main() {
	_ = godotenv.Load()
	isDev := os.Getenv("ENV") == "development"
	if err := logger.Init(isDev); err != nil {
		panic(err)
	}

	defer logger.Sync()

	log := logger.L()

	cfg := config.Load(log)

	db := database.ConnectDB(&cfg.DB.Config, log)
	defer database.CloseDB(db, log)

	repos := repository.New(db)
	catalog := service.NewCatalogService(repos)

	ctx := context.Background()

	if err := seed(ctx, catalog, log); err != nil {
		log.Fatal("seed failed", zap.Error(err))
	}
}

func seed(ctx context.Context, catalog service.CatalogService, log *zap.Logger) error {
	categories, err := catalog.ListCategories(ctx)
	if err != nil {
		return err
	}
	for _, c := range categories {
		if c.Name == "Trà Sữa" {
			log.Info("demo data already present, skipping")
			return nil
		}
	}

	catMilkTea, err := catalog.CreateCategory(ctx, service.CategoryInput{Name: "Trà Sữa", DisplayOrder: 1})
	if err != nil {
		return err
	}
	catCoffee, err := catalog.CreateCategory(ctx, service.CategoryInput{Name: "Cà Phê", DisplayOrder: 2})
	if err != nil {
		return err
	}

	matcha, err := catalog.CreateProduct(ctx, service.ProductInput{
		CategoryID:   catMilkTea.ID,
		Name:         "Trà Sữa Matcha",
		Description:  "Trà xanh Nhật Bản",
		BasePrice:    35000,
		ImageURL:     "🍵",
		IsBestSeller: true,
		DisplayOrder: 1,
	})
	if err != nil {
		return err
	}
	blackCoffee, err := catalog.CreateProduct(ctx, service.ProductInput{
		CategoryID:   catCoffee.ID,
		Name:         "Cà Phê Đen",
		Description:  "Cà phê phin",
		BasePrice:    20000,
		ImageURL:     "☕",
		DisplayOrder: 1,
	})
	if err != nil {
		return err
	}

	sweetness, err := catalog.CreateOptionGroup(ctx, service.OptionGroupInput{
		Name:         "Độ ngọt",
		Type:         models.SelectionSingle,
		DisplayOrder: 1,
	})
	if err != nil {
		return err
	}
	for _, v := range []service.OptionValueInput{
		{Name: "100% đường", PriceAdjustment: 0},
		{Name: "50% đường", PriceAdjustment: 0},
	} {
		if _, err := catalog.CreateOptionValue(ctx, sweetness.ID, v); err != nil {
			return err
		}
	}

	size, err := catalog.CreateOptionGroup(ctx, service.OptionGroupInput{
		Name:         "Kích cỡ",
		Type:         models.SelectionSingle,
		DisplayOrder: 2,
	})
	if err != nil {
		return err
	}
	for _, v := range []service.OptionValueInput{
		{Name: "Size Vừa (M)", PriceAdjustment: 0},
		{Name: "Size Lớn (L)", PriceAdjustment: 5000},
	} {
		if _, err := catalog.CreateOptionValue(ctx, size.ID, v); err != nil {
			return err
		}
	}

	topping, err := catalog.CreateOptionGroup(ctx, service.OptionGroupInput{
		Name:         "Topping",
		Type:         models.SelectionMulti,
		DisplayOrder: 3,
	})
	if err != nil {
		return err
	}
	for _, v := range []service.OptionValueInput{
		{Name: "Thạch dừa", PriceAdjustment: 5000},
		{Name: "Trân châu đen", PriceAdjustment: 7000},
	} {
		if _, err := catalog.CreateOptionValue(ctx, topping.ID, v); err != nil {
			return err
		}
	}

	if _, err := catalog.LinkProductOptionGroups(ctx, matcha.ID, []uuid.UUID{size.ID, topping.ID, sweetness.ID}); err != nil {
		return err
	}
	if _, err := catalog.LinkProductOptionGroups(ctx, blackCoffee.ID, []uuid.UUID{sweetness.ID}); err != nil {
		return err
	}

	log.Info("demo data seeded")
	return nil
}
