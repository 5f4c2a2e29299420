// Package slog provides logging decorators for ricos interfaces.
package slog

import (
	"log/slog"
	"time"

	"github.com/contentools/ricos"
)

// Ensure LoggingConverter implements ricos.Converter at compile time.
var _ ricos.Converter = (*LoggingConverter)(nil)

// LoggingConverter wraps a Converter with structured logging of each
// conversion's outcome.
type LoggingConverter struct {
	next   ricos.Converter
	logger *slog.Logger
}

// NewLoggingConverter creates a new LoggingConverter.
func NewLoggingConverter(next ricos.Converter, logger *slog.Logger) *LoggingConverter {
	return &LoggingConverter{next: next, logger: logger}
}

// Convert delegates to the wrapped converter and logs the result.
func (c *LoggingConverter) Convert(htmlContent string, ctx *ricos.ImageContext) ([]*ricos.Node, error) {
	begin := time.Now()
	nodes, err := c.next.Convert(htmlContent, ctx)
	if err != nil {
		c.logger.Error("conversion failed",
			"error", ricos.ErrorMessage(err),
			"code", ricos.ErrorCode(err),
			"duration", time.Since(begin),
		)
		return nil, err
	}

	unresolved := 0
	var count func(ns []*ricos.Node)
	count = func(ns []*ricos.Node) {
		for _, n := range ns {
			if n.Unresolved {
				unresolved++
			}
			count(n.Nodes)
		}
	}
	count(nodes)

	c.logger.Info("conversion",
		"contentHash", ricos.ContentHash(htmlContent),
		"nodes", len(nodes),
		"unresolvedImages", unresolved,
		"duration", time.Since(begin),
	)
	return nodes, nil
}
