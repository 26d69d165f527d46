package main

import (
	"context"
	"flag"
	"os"
	"time"

	"pirate-server/internal/agent"
	"pirate-server/internal/domain"
	"pirate-server/internal/engine"
	"pirate-server/internal/server"
	"pirate-server/internal/version"
	"pirate-server/pkg/logger"
	"pirate-server/pkg/seamap"
	"pirate-server/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	// .env необязателен: в контейнере конфиг приходит окружением.
	_ = godotenv.Load()
	logger.Init()
}

func main() {
	var (
		addr     string
		mapPath  string
		seed     int64
		seedName string
		crew     bool
		llmModel string
	)
	flag.StringVar(&addr, "addr", ":8000", "HTTP listen address")
	flag.StringVar(&mapPath, "map", "", "Path to map file (empty = generate)")
	flag.Int64Var(&seed, "seed", 0, "World/combat seed (0 for random)")
	flag.StringVar(&seedName, "seed-name", "", "Named seed, overrides -seed")
	flag.BoolVar(&crew, "crew", true, "Run the headless crew")
	flag.StringVar(&llmModel, "llm-model", "", "Gemini model for the LLM captain (needs GEMINI_API_KEY)")
	flag.Parse()

	logger.Log.Info("Starting pirate server...")
	logger.Log.Info(version.String())

	if seedName != "" {
		seed = utils.StringToSeed(seedName)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// Карта: из файла или сгенерированная от сида.
	var (
		chart *domain.Chart
		start domain.Position
	)
	if mapPath != "" {
		var err error
		chart, start, err = seamap.Load(mapPath)
		if err != nil {
			logger.Log.Fatal("Failed to load map: ", err)
		}
	} else {
		chart, start = seamap.Generate(seed, 0, 0)
		logger.Log.WithField("seed", seed).Info("Generated archipelago map")
	}

	cfg := engine.NewConfig()
	cfg.Seed = seed
	game := engine.New(chart, start, cfg)
	service := engine.NewService(game)

	if crew {
		crewBot := agent.NewCrew(service)
		if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
			captain, err := agent.NewLLMCaptain(context.Background(), apiKey, llmModel)
			if err != nil {
				logger.Log.WithError(err).Warn("LLM captain unavailable, using scripted captain")
			} else {
				defer captain.Close()
				crewBot.Captain = captain
				logger.Log.Info("LLM captain at the helm")
			}
		}
		go crewBot.Run()
	}

	srv := server.New(service, addr)
	if err := srv.Run(); err != nil {
		logger.Log.Fatal("Server stopped: ", err)
	}
}
