package main

import (
	"github.com/rs/zerolog/log"

	"github.com/curesma/registry-bridge/cmd"
)

func main() {
	config, err := cmd.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	log.Info().Msgf("Trigger interface listens on %s", config.Public.Address)
	log.Info().Msgf("Submitting to CureSMA endpoint %s", config.CureSMA.URL)
	if err := cmd.Start(*config); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
	log.Info().Msg("Goodbye!")
}
