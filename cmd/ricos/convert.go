package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/contentools/ricos"
)

// Run executes the convert command.
func (c *ConvertCmd) Run(deps *Dependencies) error {
	htmlContent, err := readInput(c.File, deps.Stdin)
	if err != nil {
		return err
	}

	ctx := &ricos.ImageContext{
		NameToURL: c.ImageMap,
		FIFO:      c.FIFO,
		BaseURL:   c.BaseURL,
	}

	nodes, err := deps.Converter.Convert(htmlContent, ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ricos.ErrorMessage(err))
		return err
	}

	enc := json.NewEncoder(deps.Stdout)
	if c.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(&ricos.ConversionResult{Nodes: nodes})
}

// readInput reads HTML from the named file, or from stdin when no file
// is given.
func readInput(file string, stdin io.Reader) (string, error) {
	if file == "" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("failed to read %q: %w", file, err)
	}
	return string(b), nil
}
