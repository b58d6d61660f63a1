// Command resume-tailor tailors LaTeX resumes to job descriptions with the
// Gemini API and compiles them to PDF.
package main

import (
	"github.com/SaddamSheikh/AI-Resume-Tailoring-System/cmd"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	cmd.Execute()
}
