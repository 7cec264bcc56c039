package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"docbrief/internal/config"
	"docbrief/internal/extractor"
	claudegen "docbrief/internal/generator/claude"
	"docbrief/internal/handler"
	txdetect "docbrief/internal/ocr/textract"
	"docbrief/internal/router"
	"docbrief/internal/service"
	s3storage "docbrief/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize collaborators
	storage, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	detector, err := txdetect.NewTextractClient(&cfg.Textract)
	if err != nil {
		return fmt.Errorf("failed to initialize Textract client: %w", err)
	}

	generator := claudegen.NewGenerator(&cfg.Generator)

	// Initialize pipeline and services
	ext := extractor.New(detector, extractor.DefaultErrorTable(), cfg.Extraction.MaxInlineBytes())
	documentSvc := service.NewDocumentService(storage, ext, generator, &cfg.S3, &cfg.Extraction)

	// Initialize handlers
	documentH := handler.NewDocumentHandler(documentSvc)
	healthH := handler.NewHealthHandler()

	// Setup router
	r := router.Setup(cfg, documentH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
