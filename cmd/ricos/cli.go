package main

import (
	"context"
	"io"

	"github.com/contentools/ricos"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Converter ricos.Converter
	Previewer ricos.Previewer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Convert ConvertCmd `cmd:"" help:"Convert an HTML file (or stdin) to Ricos JSON"`
	Preview PreviewCmd `cmd:"" help:"Render an HTML file (or stdin) as Markdown"`
	Serve   ServeCmd   `cmd:"" help:"Start the HTTP conversion service"`
}

// ConvertCmd is the "convert" subcommand.
type ConvertCmd struct {
	File     string            `arg:"" optional:"" help:"HTML file to convert (defaults to stdin)"`
	BaseURL  string            `name:"base-url" help:"Base URL for resolving relative image paths"`
	ImageMap map[string]string `name:"image-map" help:"Filename to URL mappings (name=url, repeatable)"`
	FIFO     []string          `name:"fifo" help:"Fallback image URLs consumed in document order (repeatable)"`
	Indent   bool              `short:"i" help:"Indent the JSON output"`
}

// PreviewCmd is the "preview" subcommand.
type PreviewCmd struct {
	File string `arg:"" optional:"" help:"HTML file to preview (defaults to stdin)"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Port string `help:"Port to listen on (defaults to PORT env or 8080)"`
}
