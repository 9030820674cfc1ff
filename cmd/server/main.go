package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/excuselab/excuse-engine/internal/config"
	"github.com/excuselab/excuse-engine/internal/generator"
	"github.com/excuselab/excuse-engine/internal/llm"
	"github.com/excuselab/excuse-engine/internal/server"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	llmProvider, err := llm.NewOpenAI(&cfg.OpenAI, &cfg.Generation)
	if err != nil {
		log.Fatalf("failed to create LLM provider: %v", err)
	}

	gen := generator.New(llmProvider, cfg.OpenAI)

	srv := server.New(*cfg, gen)
	if err := srv.Run(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
