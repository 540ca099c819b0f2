package main

import (
	"context"
	"os"
	"time"

	"restaurant/internal/config"
	"restaurant/internal/domain/model"
	"restaurant/internal/handler"
	"restaurant/internal/infra/db"
	infraRepo "restaurant/internal/infra/repository"
	"restaurant/internal/server"
	"restaurant/internal/usecase"

	"github.com/joho/godotenv"
)

func main() {
	//.envは無ければ環境変数だけで動く
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		panic(err)
	}
	if err := gormDB.AutoMigrate(
		&model.Ingredient{},
		&model.IngredientAdjustment{},
		&model.Product{},
		&model.Order{},
		&model.OrderItem{},
		&model.PromoCode{},
		&model.Payment{},
		&model.Customer{},
		&model.Feedback{},
		&model.Staff{},
	); err != nil {
		panic(err)
	}

	//Repository（GORM実装）生成
	ingredientRepo := infraRepo.NewIngredientGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	promoRepo := infraRepo.NewPromoCodeGormRepository(gormDB)
	customerRepo := infraRepo.NewCustomerGormRepository(gormDB)
	feedbackRepo := infraRepo.NewFeedbackGormRepository(gormDB)
	staffRepo := infraRepo.NewStaffGormRepository(gormDB)

	//注文確定はトランザクション必須
	txm := infraRepo.NewTxManagerGorm(gormDB)

	//Usecase生成
	accessTTL := 15 * time.Minute
	authUC := usecase.NewAuthUsecase(staffRepo, cfg.JWTSecret, accessTTL)
	ingredientUC := usecase.NewIngredientUsecase(ingredientRepo)
	productUC := usecase.NewProductUsecase(productRepo)
	orderUC := usecase.NewOrderUsecase(txm)
	promoUC := usecase.NewPromoCodeUsecase(promoRepo)
	customerUC := usecase.NewCustomerUsecase(customerRepo)
	feedbackUC := usecase.NewFeedbackUsecase(feedbackRepo, orderRepo, customerRepo)
	reportUC := usecase.NewReportUsecase(txm)

	//初期管理者のシード（環境変数があるときだけ）
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail != "" && adminPassword != "" {
		if err := authUC.EnsureStaff(context.Background(), adminEmail, adminPassword, model.RoleAdmin); err != nil {
			panic(err)
		}
	}

	//Handler生成
	h := server.Handlers{
		Auth:       handler.NewAuthHandler(authUC),
		Ingredient: handler.NewIngredientHandler(ingredientUC),
		Product:    handler.NewProductHandler(productUC),
		Order:      handler.NewOrderHandler(orderUC),
		PromoCode:  handler.NewPromoCodeHandler(promoUC),
		Customer:   handler.NewCustomerHandler(customerUC),
		Feedback:   handler.NewFeedbackHandler(feedbackUC),
		Report:     handler.NewReportHandler(reportUC),
	}

	//Server起動
	e := server.New(cfg, h)
	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}
	if err := e.Start(addr); err != nil {
		panic(err)
	}
}
