package main

import "agrimach/internal/app"

// @title           AgriMach CRM API
// @version         1.0
// @description     Sales pipeline backend for an agricultural-machinery distributor.
// @BasePath        /
func main() {
	app.Run()
}
