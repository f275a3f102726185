package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/finsmart/backend/internal/ai"
	"github.com/finsmart/backend/internal/controllers"
	"github.com/finsmart/backend/internal/models"
	"github.com/finsmart/backend/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// A local .env file is optional, variables that are already set win
	_ = godotenv.Load()

	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		ginMode = "release"
	}
	gin.SetMode(ginMode)

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	jwtSecret, ok := os.LookupEnv("JWT_SECRET")
	if !ok || jwtSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	// The AI client is configured once here. A missing credential for
	// the selected provider aborts startup instead of failing requests.
	aiClient, err := ai.NewClientFromEnv()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	log.Info().Str("provider", aiClient.ProviderName()).Msg("AI provider initialized")

	// Create the data directory for the sqlite database
	dataDir := filepath.Join(".", "data")
	err = os.MkdirAll(dataDir, os.ModePerm)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	err = models.Connect(filepath.Join(dataDir, "finsmart.db"))
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	r, err := router.Config()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	router.AttachRoutes(controllers.Controller{
		JWTSecret: []byte(jwtSecret),
		AI:        aiClient,
	}, r.Group("/"))

	log.Info().Msg("backend startup complete")

	if err := r.Run(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
