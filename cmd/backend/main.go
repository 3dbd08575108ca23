package main

import (
	"context"
	"log"

	"solarbackend/internal/pkg"
)

// @title Solar Equipment API
// @version 1.0
// @description REST API магазина солнечного оборудования: каталог, корзина, заявки на подключение и обслуживание
// @host localhost:8080
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	log.Println("App start")

	app, err := pkg.NewApp(context.Background())
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	app.RunApp()

	log.Println("App terminated")
}
