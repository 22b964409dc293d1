package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/samber/lo"

	"github.com/limaJavier/uctp/internal/generator"
	"github.com/limaJavier/uctp/pkg/model"
)

type Config struct {
	SeedFile string `env:"SEED_FILE" envDefault:"../../test/seed_data.json"`
	Size     int    `env:"SIZE" envDefault:"100"`
	Output   string `env:"OUTPUT" envDefault:"experiment_results.csv"`
	Seed     int64  `env:"SEED" envDefault:"1"`
}

var (
	complexityLevels = []float64{0.2, 0.5, 0.7}

	geneticParams = []model.GeneticConfig{
		{PopulationSize: 100, Generations: 1000, MutationRate: 0.3},
		{PopulationSize: 200, Generations: 2000, MutationRate: 0.5},
	}

	annealingParams = []model.AnnealingConfig{
		{InitialTemperature: 1000, CoolingRate: 0.995, MaxIterations: 5000},
		{InitialTemperature: 1000, CoolingRate: 0.99, MaxIterations: 10000},
	}
)

type experiment struct {
	algorithm  string
	complexity float64
	params     string
	bestCost   int
	iterations int
	seconds    float64
}

func main() {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		log.Fatalf("cannot load configuration: %v", err)
	}

	// Every run gets its own source so parallel reruns of this driver stay
	// uncorrelated
	seeder := rand.New(rand.NewSource(cfg.Seed))
	ctx := context.Background()

	results := make([]experiment, 0)
	for _, complexity := range complexityLevels {
		input, err := generator.Generate(cfg.SeedFile, cfg.Size, complexity, rand.New(rand.NewSource(seeder.Int63())))
		if err != nil {
			log.Fatalf("cannot generate instance: %v", err)
		}
		log.Printf("=== Running experiments for dataset complexity: %v ===", complexity)

		for _, params := range geneticParams {
			scheduler, err := model.NewGeneticScheduler(input, params, rand.New(rand.NewSource(seeder.Int63())))
			if err != nil {
				log.Fatal(err)
			}

			result, err := scheduler.Run(ctx)
			if err != nil {
				log.Fatal(err)
			}

			results = append(results, experiment{
				algorithm:  "genetic",
				complexity: complexity,
				params:     fmt.Sprintf("population=%v generations=%v mutation=%v", params.PopulationSize, params.Generations, params.MutationRate),
				bestCost:   -result.BestFitness,
				iterations: result.Iterations,
				seconds:    result.Duration.Seconds(),
			})
			log.Printf("GA %+v -> Best Cost: %v Time: %.4fs", params, -result.BestFitness, result.Duration.Seconds())
		}

		for _, params := range annealingParams {
			scheduler, err := model.NewAnnealingScheduler(input, params, rand.New(rand.NewSource(seeder.Int63())))
			if err != nil {
				log.Fatal(err)
			}

			result, err := scheduler.Run(ctx)
			if err != nil {
				log.Fatal(err)
			}

			results = append(results, experiment{
				algorithm:  "annealing",
				complexity: complexity,
				params:     fmt.Sprintf("temperature=%v cooling=%v max_iter=%v", params.InitialTemperature, params.CoolingRate, params.MaxIterations),
				bestCost:   -result.BestFitness,
				iterations: result.Iterations,
				seconds:    result.Duration.Seconds(),
			})
			log.Printf("SA %+v -> Best Cost: %v Time: %.4fs", params, -result.BestFitness, result.Duration.Seconds())
		}
	}

	if err := writeResults(cfg.Output, results); err != nil {
		log.Fatalf("cannot write results: %v", err)
	}
	log.Printf("Experiment results saved to %v", cfg.Output)
}

func writeResults(file string, results []experiment) error {
	output, err := os.Create(file)
	if err != nil {
		return err
	}
	defer output.Close()

	writer := csv.NewWriter(output)

	records := [][]string{{"algorithm", "complexity", "params", "best_cost", "iterations", "seconds"}}
	records = append(records, lo.Map(results, func(result experiment, _ int) []string {
		return []string{
			result.algorithm,
			fmt.Sprintf("%v", result.complexity),
			result.params,
			fmt.Sprintf("%v", result.bestCost),
			fmt.Sprintf("%v", result.iterations),
			fmt.Sprintf("%.4f", result.seconds),
		}
	})...)

	if err := writer.WriteAll(records); err != nil {
		return err
	}
	return writer.Error()
}
