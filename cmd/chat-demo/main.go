// README: Terminal REPL exercising the full planning pipeline.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"voyago/internal/ai"
	"voyago/internal/config"
	"voyago/internal/infra"
	"voyago/internal/modules/conversation"
	"voyago/internal/modules/trip"
	"voyago/internal/weather"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatalf("postgres init: %v", err)
	}
	defer dbPool.Close()

	gemini, err := ai.NewGeminiClient(ctx, cfg.AI.GeminiKey, cfg.AI.Model)
	if err != nil {
		log.Fatalf("gemini init: %v", err)
	}
	defer gemini.Close()

	// No Redis here; a nil cache just fetches every time.
	weatherSvc := weather.NewService(cfg.Weather.APIKey, cfg.Weather.Units, nil)
	tripSvc := trip.NewService(gemini, weatherSvc, trip.NewStore(dbPool))
	convSvc := conversation.NewService(tripSvc)

	state := conversation.NewState()
	fmt.Printf("Bot: %s\n", conversation.SeedGreeting)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("You: ")
		if !scanner.Scan() {
			return
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if input == "quit" || input == "exit" {
			return
		}
		fmt.Printf("Bot: %s\n", convSvc.HandleTurn(ctx, state, input))
	}
}
