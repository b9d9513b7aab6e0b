package main

import (
	api "Pico/api"
)

// @title Pico API
// @version 1.0
// @description World cup style head-to-head picks over candidate profiles
// @BasePath /api/v1
// @schemes http https
func main() {
	api.Run()
}
