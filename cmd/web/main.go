package main

import "ajussi_backend/internal/app"

func main() {
	app.Run()
}
