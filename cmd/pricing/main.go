package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"

	"newspaper_checkout/cmd/pricing/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
