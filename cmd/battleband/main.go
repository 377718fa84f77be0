// Package main is the entry point for battleband.
package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/samdwyer/battleband/internal/battle"
	"github.com/samdwyer/battleband/internal/battlelog"
	"github.com/samdwyer/battleband/internal/combat"
	"github.com/samdwyer/battleband/internal/entity"
	"github.com/samdwyer/battleband/internal/gamedata"
	"github.com/samdwyer/battleband/internal/logging"
	"github.com/samdwyer/battleband/internal/telemetry"
)

func main() {
	// Load .env file for local development
	// This makes HONEYCOMB_BATTLEBAND_API_KEY available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	// Set up OTEL environment variables from our .env variables
	setupOTelEnv()

	logging.Init()

	ctx := context.Background()

	// Initialize telemetry
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		logging.Log.WithError(err).Warn("Telemetry setup failed; running without observability.")
		// Continue without telemetry - the simulation still works
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				logging.Log.WithError(err).Error("Telemetry shutdown failed.")
			}
		}()
	}

	if err := run(ctx); err != nil {
		logging.Log.WithError(err).Fatal("Battle failed.")
	}
}

// run assembles a roster and fights a single battle royale to its conclusion.
func run(ctx context.Context) error {
	races, err := gamedata.LoadRaceRegistry()
	if err != nil {
		return err
	}
	weapons, err := gamedata.LoadWeaponRegistry()
	if err != nil {
		return err
	}

	sink := battlelog.New(os.Stdout)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	resolver := combat.NewResolver(combat.NewRoller(rng), sink)

	builders := []*entity.Builder{
		entity.NewBuilder(races, weapons, entity.RaceOrc, "Gorbag").
			WithWeapon(entity.WeaponHalberd),
		entity.NewBuilder(races, weapons, entity.RaceDwarf, "Brokk").
			WithWeapon(entity.WeaponSword).
			WithArmor(),
		entity.NewBuilder(races, weapons, entity.RaceHuman, "Aldric").
			WithWeapon(entity.WeaponSword).
			WithArmor(),
		entity.NewBuilder(races, weapons, entity.RaceElf, "Sylwen").
			WithWeapon(entity.WeaponBow),
	}

	b := battle.New(resolver, sink)
	for _, builder := range builders {
		c, err := builder.Build()
		if err != nil {
			return err
		}
		b.Add(c)
	}

	_, err = b.Run(ctx)
	return err
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	// Always set endpoint to Honeycomb
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	// Always set headers from our API key - the .env file may have an unexpanded
	// variable reference that doesn't work, so we construct it properly here
	apiKey := os.Getenv("HONEYCOMB_BATTLEBAND_API_KEY")
	dataset := os.Getenv("HONEYCOMB_BATTLEBAND_DATASET")
	if dataset == "" {
		dataset = "battleband" // default dataset name
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
