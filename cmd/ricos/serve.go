package main

import (
	"fmt"
	"log/slog"
	"os"

	ricoshttp "github.com/contentools/ricos/http"
	ricosslog "github.com/contentools/ricos/slog"
	"github.com/joho/godotenv"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	_ = godotenv.Load()

	port := c.Port
	if port == "" {
		port = os.Getenv("PORT")
	}
	if port == "" {
		port = "8080"
	}

	logger := slog.New(slog.NewTextHandler(deps.Stderr, nil))
	converter := ricosslog.NewLoggingConverter(deps.Converter, logger)
	srv := ricoshttp.NewServer(converter, logger)

	return srv.ListenAndServe(fmt.Sprintf(":%s", port))
}
