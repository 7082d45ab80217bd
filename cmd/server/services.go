package main

import (
	"fmt"

	"codeberg.org/diagramforge/server/internal/agent"
	"codeberg.org/diagramforge/server/internal/llm"
	"codeberg.org/diagramforge/server/internal/logger"
)

// creates the text generator and the generation pipeline on top of it
func InitializeServices() (*Services, error) {
	generator, err := llm.NewGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize text generator: %w", err)
	}

	logger.Info("text generator initialized", "model", generator.Model())

	return &Services{
		Agent:     agent.New(generator),
		Generator: generator,
	}, nil
}
