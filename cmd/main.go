package main

import (
	"log"

	"github.com/gift-xipu/fitness-calculaor/cmd/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		log.Fatalf("fitcalc: %v", err)
	}
}
