package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/contentools/ricos"
	main "github.com/contentools/ricos/cmd/ricos"
	"github.com/contentools/ricos/goquery"
	"github.com/contentools/ricos/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("converts a file to node JSON", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		file := filepath.Join(dir, "doc.html")
		require.NoError(t, os.WriteFile(file, []byte("<p>Hello <b>world</b></p>"), 0o644))

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Converter: goquery.NewConverter(),
		}

		cmd := &main.ConvertCmd{File: file}

		require.NoError(t, cmd.Run(deps))

		var result ricos.ConversionResult
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &result))
		require.Len(t, result.Nodes, 1)
		assert.Equal(t, ricos.NodeParagraph, result.Nodes[0].Type)
	})

	t.Run("reads from stdin when no file is given", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdin:     strings.NewReader("<h1>Title</h1>"),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Converter: goquery.NewConverter(),
		}

		cmd := &main.ConvertCmd{}

		require.NoError(t, cmd.Run(deps))

		var result ricos.ConversionResult
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &result))
		require.Len(t, result.Nodes, 1)
		assert.Equal(t, ricos.NodeHeading, result.Nodes[0].Type)
	})

	t.Run("passes flags into the image context", func(t *testing.T) {
		t.Parallel()

		var captured *ricos.ImageContext
		conv := &mock.Converter{
			ConvertFn: func(_ string, ctx *ricos.ImageContext) ([]*ricos.Node, error) {
				captured = ctx
				return []*ricos.Node{}, nil
			},
		}

		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdin:     strings.NewReader("<p>x</p>"),
			Stdout:    &bytes.Buffer{},
			Stderr:    &bytes.Buffer{},
			Converter: conv,
		}

		cmd := &main.ConvertCmd{
			BaseURL:  "https://example.com/",
			ImageMap: map[string]string{"pic.png": "https://cdn/pic.png"},
			FIFO:     []string{"https://cdn/1.png"},
		}

		require.NoError(t, cmd.Run(deps))

		require.NotNil(t, captured)
		assert.Equal(t, "https://example.com/", captured.BaseURL)
		assert.Equal(t, "https://cdn/pic.png", captured.NameToURL["pic.png"])
		assert.Equal(t, []string{"https://cdn/1.png"}, captured.FIFO)
	})

	t.Run("reports conversion errors on stderr", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdin:     strings.NewReader(""),
			Stdout:    &bytes.Buffer{},
			Stderr:    stderr,
			Converter: goquery.NewConverter(),
		}

		cmd := &main.ConvertCmd{}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
	})

	t.Run("fails for a missing file", func(t *testing.T) {
		t.Parallel()

		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    &bytes.Buffer{},
			Converter: goquery.NewConverter(),
		}

		cmd := &main.ConvertCmd{File: filepath.Join(t.TempDir(), "missing.html")}

		require.Error(t, cmd.Run(deps))
	})
}
