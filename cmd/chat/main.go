package main

import (
	"os"

	"ollama-ui/internal/app"
)

// @title        Chat Interface API
// @version      1.0
// @description  Chat front-end for a local Ollama server.
// @BasePath     /
func main() {
	os.Exit(app.RunChat())
}
