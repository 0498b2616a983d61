package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gekko3d/emitter"
)

func main() {
	configPath := flag.String("config", "", "Emitter config JSON (defaults to a unit cube mesh)")
	count := flag.Int("n", 16, "Number of particles to emit")
	seed := flag.String("seed", "emitsample", "Seed key for the random source")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	logger := emitter.NewDefaultLogger("emitsample", *debug)

	em := emitter.NewEmitterShape(nil)
	if *configPath != "" {
		loaded, err := emitter.LoadEmitterConfig(*configPath)
		if err != nil {
			logger.Errorf("load config: %v", err)
			os.Exit(1)
		}
		em = loaded
	}
	em.SetLogger(logger)
	if err := em.Validate(); err != nil {
		logger.Errorf("invalid emitter: %v", err)
		os.Exit(1)
	}

	particles, err := em.EmitBatch(emitter.NewSeededRand(*seed), *count, nil)
	if err != nil {
		logger.Errorf("emit: %v", err)
		os.Exit(1)
	}
	logger.Debugf("emitted %d particles from %s shape", len(particles), em.Shape.Kind())

	for i, p := range particles {
		fmt.Printf("%4d pos=(%8.4f %8.4f %8.4f) dir=(%7.4f %7.4f %7.4f)\n", i,
			p.Position[0], p.Position[1], p.Position[2],
			p.Direction[0], p.Direction[1], p.Direction[2])
	}
}
