package main

import (
	"flag"
	"log"
	"os"

	"yashubustudio/decider/internal/app"
)

func main() {
	configPath := flag.String("config", "", "Path to decider.yaml (default: ./decider.yaml)")
	flag.Parse()

	if err := app.Run(*configPath); err != nil {
		if app.IsInsufficientInput(err) {
			log.Printf("decider: %v", err)
			os.Exit(2)
		}
		log.Fatalf("decider: %v", err)
	}
}
