package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/contentools/ricos"
	"github.com/contentools/ricos/mock"
	ricosslog "github.com/contentools/ricos/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("logs node count and duration on success", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Converter{
			ConvertFn: func(_ string, _ *ricos.ImageContext) ([]*ricos.Node, error) {
				return []*ricos.Node{
					ricos.NewParagraph(ricos.NewText("hi", ricos.TextFormat{})),
					ricos.NewUnresolvedImage(""),
				}, nil
			},
		}

		conv := ricosslog.NewLoggingConverter(inner, logger)
		nodes, err := conv.Convert("<p>hi</p>", &ricos.ImageContext{})

		require.NoError(t, err)
		assert.Len(t, nodes, 2)
		output := buf.String()
		assert.Contains(t, output, "conversion")
		assert.Contains(t, output, "nodes=2")
		assert.Contains(t, output, "unresolvedImages=1")
		assert.Contains(t, output, "contentHash=")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs and propagates errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Converter{
			ConvertFn: func(_ string, _ *ricos.ImageContext) ([]*ricos.Node, error) {
				return nil, ricos.Errorf(ricos.EINVALID, "empty HTML input")
			},
		}

		conv := ricosslog.NewLoggingConverter(inner, logger)
		_, err := conv.Convert("", &ricos.ImageContext{})

		require.Error(t, err)
		assert.Equal(t, ricos.EINVALID, ricos.ErrorCode(err))
		output := buf.String()
		assert.Contains(t, output, "conversion failed")
		assert.Contains(t, output, "code=invalid")
	})
}
