package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/nik-767/MindMateAI-Career-Advisor/cmd"
)

func main() {
	// Optional .env for local development (DATABASE_URL, GEMINI_API_KEY).
	if err := godotenv.Load(); err == nil {
		log.Println("loaded environment from .env")
	}

	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
