package main

import (
	"context"
	"os"

	"github.com/fatih/color"
	_ "github.com/joho/godotenv/autoload"
)

func main() {
	if err := newApp(os.Stdout).command().Run(context.Background(), os.Args); err != nil {
		_, _ = color.New(color.FgRed).Fprintf(os.Stderr, "drivecp: %v\n", err)
		os.Exit(1)
	}
}
