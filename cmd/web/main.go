package main

import (
	"careernode_backend/internal/app"
	"careernode_backend/internal/logger"
)

func main() {
	if err := app.Run(); err != nil {
		logger.Fatal("Server failed", "error", err.Error())
	}
}
