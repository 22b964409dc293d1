package main

import (
	"context"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/limaJavier/uctp/internal/generator"
	"github.com/limaJavier/uctp/internal/report"
	"github.com/limaJavier/uctp/pkg/model"
)

const SeedFile = "../test/seed_data.json"

func main() {
	seeder := rand.New(rand.NewSource(time.Now().UnixNano()))

	input, err := generator.Generate(SeedFile, 20, 0.65, rand.New(rand.NewSource(seeder.Int63())))
	if err != nil {
		log.Fatalf("cannot generate instance: %v", err)
	}

	genetic, err := model.NewGeneticScheduler(input, model.GeneticConfig{
		PopulationSize: 200,
		MutationRate:   0.5,
		Generations:    2000,
	}, rand.New(rand.NewSource(seeder.Int63())))
	if err != nil {
		log.Fatal(err)
	}

	annealing, err := model.NewAnnealingScheduler(input, model.AnnealingConfig{
		InitialTemperature: 1000,
		CoolingRate:        0.99,
		MaxIterations:      10000,
	}, rand.New(rand.NewSource(seeder.Int63())))
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	geneticResult, err := genetic.Run(ctx)
	if err != nil {
		log.Fatal(err)
	}
	if err := report.PrintSchedule(os.Stdout, geneticResult, input); err != nil {
		log.Fatal(err)
	}

	annealingResult, err := annealing.Run(ctx)
	if err != nil {
		log.Fatal(err)
	}
	if err := report.PrintSchedule(os.Stdout, annealingResult, input); err != nil {
		log.Fatal(err)
	}
}
