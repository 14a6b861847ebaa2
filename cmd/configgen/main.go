package main

import (
	"flag"

	"github.com/danmuck/gridctl/internal/client"
	"github.com/danmuck/gridctl/internal/config"
	"github.com/danmuck/gridctl/internal/observability"
	"github.com/rs/zerolog/log"
)

const defaultPath = "cmd/gridctl/config.toml"

func main() {
	observability.InitLogger("configgen")

	kind := flag.String("kind", "gridctl", "config kind: gridctl|minimal")
	output := flag.String("output", defaultPath, "output path for config template")
	validate := flag.Bool("validate", false, "validate an existing config file")
	input := flag.String("input", defaultPath, "config path for validation")
	force := flag.Bool("force", false, "overwrite existing config file")
	flag.Parse()

	if *validate {
		cfg, err := config.LoadGridConfig(*input)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid config")
		}
		clientCfg, err := cfg.Apply(client.DefaultConfig())
		if err != nil {
			log.Fatal().Err(err).Msg("invalid config")
		}
		if _, err := client.New(clientCfg); err != nil {
			log.Fatal().Err(err).Msg("invalid client settings")
		}
		log.Info().Str("path", *input).Str("server", clientCfg.Server).Msg("validated config")
		return
	}

	if err := config.WriteTemplate(*output, *kind, *force); err != nil {
		log.Fatal().Err(err).Msg("write template")
	}
	log.Info().Str("kind", *kind).Str("path", *output).Msg("wrote config template")
}
