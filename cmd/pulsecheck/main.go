package main

import (
	"context"
	"log"
	"os"

	"github.com/MimoJanra/PulseCheck/internal/checker"
	"github.com/MimoJanra/PulseCheck/internal/config"
)

// Usage: pulsecheck <interval_seconds> <url>
func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(0)

	cfg, err := config.Create(os.Args)
	if err != nil {
		log.Fatal(err)
	}

	checker.New(cfg).Run(context.Background())
}
