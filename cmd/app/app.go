package main

import "github.com/smartshop-tech/go-backend/internal/app"

//	@title			SmartShop API
//	@version		1.0
//	@description	API витрины электроники: каталог, корзина, оформление заказа

// @host		localhost:8080
// @BasePath	/api/v1
func main() {
	app.Run()
}
