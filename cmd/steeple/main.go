package main

import (
	"log"

	"github.com/ugmchurch/steeple/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("steeple failed to start: %v", err)
	}
}
