package main

import (
	"os"

	"ollama-ui/internal/app"
)

// @title        Poetry Generation Interface API
// @version      1.0
// @description  Poetry front-end for a local Ollama server.
// @BasePath     /
func main() {
	os.Exit(app.RunPoetry())
}
