// Command pong runs a two-player Pong match.
//
// With no subcommand it opens a resizable window; W/S move the left paddle
// and the arrow keys the right one. "pong headless" simulates without a
// window, "pong validate" checks rule files and "pong configs" lists them.
// Passing --spectate serves a read-only HTTP/WebSocket feed of the match.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/wricardo/pong/commands"
	"github.com/wricardo/pong/desktop"
)

func main() {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	} else {
		log.Println("Loaded environment variables from .env file")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &commands.App{Play: desktop.Run}
	if err := app.Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}
