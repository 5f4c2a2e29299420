package main

import (
	"fmt"

	"github.com/contentools/ricos"
)

// Run executes the preview command.
func (c *PreviewCmd) Run(deps *Dependencies) error {
	htmlContent, err := readInput(c.File, deps.Stdin)
	if err != nil {
		return err
	}

	md, err := deps.Previewer.Preview(htmlContent)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ricos.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, md)
	return nil
}
