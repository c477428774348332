package main

import (
	"log"

	"github.com/AdmcCarthy/Stroop-Effect/adapters/api"
	"github.com/AdmcCarthy/Stroop-Effect/adapters/excel"
	"github.com/AdmcCarthy/Stroop-Effect/domain/dataset"
	"github.com/AdmcCarthy/Stroop-Effect/internal/config"
	"github.com/AdmcCarthy/Stroop-Effect/internal/errors"
)

func main() {
	// Load environment variables from .env file
	if !config.LoadEnv() {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	var frame *dataset.Frame
	if appConfig.Data.File != "" {
		frame, err = excel.NewDataReader(appConfig.Data.File, appConfig.Data.Sheet).ReadFrame()
		if err != nil {
			log.Fatalf("%v", errors.IOError("failed to load dataset "+appConfig.Data.File, err))
		}
		log.Printf("Loaded %d numeric columns from %s", frame.Len(), appConfig.Data.File)
	}

	server := api.NewServer(appConfig, frame)
	if err := server.Start(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
