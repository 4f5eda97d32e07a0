package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"quiz-platform/internal/config"
	"quiz-platform/internal/userclient"
)

func main() {
	cfg := config.Load()

	server := flag.String("server", "http://127.0.0.1:8080", "quiz server base URL")
	assistantURL := flag.String("assistant", cfg.AssistantURL, "chat assistant endpoint (optional)")
	timeout := flag.Duration("timeout", 5*time.Second, "HTTP timeout")
	flag.Parse()

	err := userclient.Run(context.Background(), os.Stdin, os.Stdout, userclient.Config{
		ServerURL:    *server,
		AssistantURL: *assistantURL,
		HTTPTimeout:  *timeout,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
