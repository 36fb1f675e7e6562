package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/memelaunch/launcher/cmd/launcher/app"
)

func main() {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Printf("failed to load .env file: %v", err)
	}

	err = app.Execute()
	if err != nil {
		os.Exit(1)
	}

	os.Exit(0)
}
