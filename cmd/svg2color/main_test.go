package main_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	lg "github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/mapcolors"
	main "github.com/fwojciec/mapcolors/cmd/svg2color"
	"github.com/fwojciec/mapcolors/jsontable"
	"github.com/fwojciec/mapcolors/lipgloss"
	"github.com/fwojciec/mapcolors/mock"
	"github.com/fwojciec/mapcolors/svg"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const editedMap = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink">
  <defs>
    <linearGradient id="linearGradient10">
      <stop offset="0%" style="stop-color:#3366CC;stop-opacity:1"/>
      <stop offset="100%" style="stop-color:#000000;stop-opacity:1"/>
    </linearGradient>
    <linearGradient id="linearGradient11" xlink:href="#linearGradient10"/>
  </defs>
  <path class="border" fill="#000000"/>
  <path class="area path-map-1" fill="#FFFFFF"/>
  <path class="area path-map-2" fill="#ffffff" style="fill:url(#linearGradient11);stroke:none"/>
  <path class="area path-map-9" fill="#123456"/>
  <path class="area path-map-5" fill="#ff0000"/>
  <path class="area path-map-5" fill="#eeeeee"/>
</svg>`

const baselineTable = `{"id_1": "#ffffff", "id_2": "#ffffff", "id_5": "#eeeeee"}`

// writeFixtures writes the map and table into a temp dir and returns their paths.
func writeFixtures(t *testing.T, doc, table string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	docPath := filepath.Join(dir, "map.svg")
	tablePath := filepath.Join(dir, "colors.json")
	require.NoError(t, os.WriteFile(docPath, []byte(doc), 0o644))
	require.NoError(t, os.WriteFile(tablePath, []byte(table), 0o644))
	return docPath, tablePath
}

// newApp wires the real implementations with plain-text output to stdout.
func newApp(docPath, tablePath string, stdout *bytes.Buffer) *main.App {
	renderer := lg.NewRenderer(stdout)
	renderer.SetColorProfile(termenv.Ascii)
	return &main.App{
		DocumentPath: docPath,
		TablePath:    tablePath,
		Parser:       svg.NewParser(),
		Loader:       jsontable.NewLoader(),
		Encoder:      jsontable.NewEncoder(),
		Saver:        jsontable.NewSaver(),
		Reporter:     lipgloss.NewReporter(stdout, renderer, lipgloss.DefaultTheme()),
		Output:       stdout,
	}
}

func TestApp_Run_EndToEnd(t *testing.T) {
	t.Parallel()

	docPath, tablePath := writeFixtures(t, editedMap, baselineTable)
	var stdout bytes.Buffer

	result, err := newApp(docPath, tablePath, &stdout).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, `Did not get new color for region 1 (original color #ffffff, new color #ffffff)
Updating color for region 2 (original color #ffffff, new color #3366cc)
ID 9 is not a valid ID.
Updating color for region 5 (original color #eeeeee, new color #ff0000)
Did not get new color for region 5 (original color #eeeeee, new color #eeeeee)
{"id_1":"#ffffff","id_2":"#3366cc","id_5":"#ff0000"}
`, stdout.String())
	assert.Equal(t, mapcolors.MergeResult{Invalid: 1, Updated: 2, Unchanged: 2}, result)
}

func TestApp_Run_SavesOutputFile(t *testing.T) {
	t.Parallel()

	docPath, tablePath := writeFixtures(t, editedMap, baselineTable)
	outPath := filepath.Join(t.TempDir(), "out", "colors.json")
	var stdout bytes.Buffer
	app := newApp(docPath, tablePath, &stdout)
	app.OutputPath = outPath

	_, err := app.Run(context.Background())

	require.NoError(t, err)
	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, `{"id_1":"#ffffff","id_2":"#3366cc","id_5":"#ff0000"}`+"\n", string(data))
}

func TestApp_Run_DoesNotTouchBaselineFile(t *testing.T) {
	t.Parallel()

	docPath, tablePath := writeFixtures(t, editedMap, baselineTable)
	var stdout bytes.Buffer

	_, err := newApp(docPath, tablePath, &stdout).Run(context.Background())

	require.NoError(t, err)
	data, err := os.ReadFile(tablePath)
	require.NoError(t, err)
	assert.Equal(t, baselineTable, string(data))
}

func TestApp_Run_FatalErrors(t *testing.T) {
	t.Parallel()

	t.Run("missing document", func(t *testing.T) {
		t.Parallel()

		_, tablePath := writeFixtures(t, editedMap, baselineTable)
		var stdout bytes.Buffer

		_, err := newApp("/nonexistent/map.svg", tablePath, &stdout).Run(context.Background())

		assert.ErrorIs(t, err, os.ErrNotExist)
		assert.Empty(t, stdout.String())
	})

	t.Run("malformed document", func(t *testing.T) {
		t.Parallel()

		docPath, tablePath := writeFixtures(t, `<svg><path class="path-a-1">`, baselineTable)
		var stdout bytes.Buffer

		_, err := newApp(docPath, tablePath, &stdout).Run(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "map.svg")
		assert.Empty(t, stdout.String())
	})

	t.Run("malformed table", func(t *testing.T) {
		t.Parallel()

		docPath, tablePath := writeFixtures(t, editedMap, `{"id_1": `)
		var stdout bytes.Buffer

		_, err := newApp(docPath, tablePath, &stdout).Run(context.Background())

		require.Error(t, err)
		assert.Empty(t, stdout.String())
	})

	t.Run("cyclic gradient emits no table", func(t *testing.T) {
		t.Parallel()

		doc := `<svg xmlns:xlink="http://www.w3.org/1999/xlink">
  <linearGradient id="a" xlink:href="#b"/>
  <linearGradient id="b" xlink:href="#a"/>
  <path class="path-m-1" fill="#000000"/>
  <path class="path-m-2" style="fill:url(#a)"/>
</svg>`
		docPath, tablePath := writeFixtures(t, doc, `{"id_1": "#ffffff", "id_2": "#ffffff"}`)
		var stdout bytes.Buffer

		_, err := newApp(docPath, tablePath, &stdout).Run(context.Background())

		require.ErrorIs(t, err, mapcolors.ErrGradientCycle)
		// Diagnostics already written remain, but no JSON line follows.
		assert.Equal(t, "Updating color for region 1 (original color #ffffff, new color #000000)\n", stdout.String())
	})

	t.Run("missing stop color", func(t *testing.T) {
		t.Parallel()

		doc := `<svg><linearGradient id="g"><stop offset="0" style="stop-opacity:1"/></linearGradient></svg>`
		docPath, tablePath := writeFixtures(t, doc, baselineTable)
		var stdout bytes.Buffer

		_, err := newApp(docPath, tablePath, &stdout).Run(context.Background())

		assert.ErrorIs(t, err, mapcolors.ErrMissingStopColor)
		assert.Empty(t, stdout.String())
	})
}

func TestApp_Run_WithMocks(t *testing.T) {
	t.Parallel()

	docPath, _ := writeFixtures(t, "<svg/>", "{}")

	t.Run("passes merged table to encoder and saver", func(t *testing.T) {
		t.Parallel()

		var encoded, saved mapcolors.ColorTable
		var savedPath string
		app := &main.App{
			DocumentPath: docPath,
			TablePath:    "colors.json",
			OutputPath:   "out.json",
			Parser: &mock.DocumentParser{
				ParseFn: func(_ io.Reader) (*mapcolors.Document, error) {
					return &mapcolors.Document{Root: &mapcolors.Element{
						Name: "svg",
						Children: []*mapcolors.Element{{
							Name:  "path",
							Attrs: map[string]string{"class": "path-x-4", "fill": "#ABCDEF"},
						}},
					}}, nil
				},
			},
			Loader: &mock.TableLoader{
				LoadFn: func(path string) (mapcolors.ColorTable, error) {
					assert.Equal(t, "colors.json", path)
					return mapcolors.ColorTable{"id_4": "#000000"}, nil
				},
			},
			Encoder: &mock.TableEncoder{
				EncodeFn: func(_ io.Writer, table mapcolors.ColorTable) error {
					encoded = table
					return nil
				},
			},
			Saver: &mock.TableSaver{
				SaveFn: func(path string, table mapcolors.ColorTable) error {
					savedPath = path
					saved = table
					return nil
				},
			},
			Reporter: &mock.Reporter{
				UpdatedFn: func(id int, oldColor, newColor string) {
					assert.Equal(t, 4, id)
					assert.Equal(t, "#000000", oldColor)
					assert.Equal(t, "#abcdef", newColor)
				},
			},
			Output: io.Discard,
		}

		result, err := app.Run(context.Background())

		require.NoError(t, err)
		assert.Equal(t, mapcolors.MergeResult{Updated: 1}, result)
		assert.Equal(t, mapcolors.ColorTable{"id_4": "#abcdef"}, encoded)
		assert.Equal(t, encoded, saved)
		assert.Equal(t, "out.json", savedPath)
	})

	t.Run("save failure skips encoding", func(t *testing.T) {
		t.Parallel()

		wantErr := errors.New("disk full")
		encodeCalled := false
		app := &main.App{
			DocumentPath: docPath,
			OutputPath:   "out.json",
			Parser: &mock.DocumentParser{
				ParseFn: func(io.Reader) (*mapcolors.Document, error) {
					return &mapcolors.Document{Root: &mapcolors.Element{Name: "svg"}}, nil
				},
			},
			Loader: &mock.TableLoader{
				LoadFn: func(string) (mapcolors.ColorTable, error) { return mapcolors.ColorTable{}, nil },
			},
			Encoder: &mock.TableEncoder{
				EncodeFn: func(io.Writer, mapcolors.ColorTable) error {
					encodeCalled = true
					return nil
				},
			},
			Saver: &mock.TableSaver{
				SaveFn: func(string, mapcolors.ColorTable) error { return wantErr },
			},
			Output: io.Discard,
		}

		_, err := app.Run(context.Background())

		assert.ErrorIs(t, err, wantErr)
		assert.False(t, encodeCalled)
	})

	t.Run("cancelled context emits nothing", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		app := &main.App{
			DocumentPath: docPath,
			Parser: &mock.DocumentParser{
				ParseFn: func(io.Reader) (*mapcolors.Document, error) {
					return &mapcolors.Document{Root: &mapcolors.Element{Name: "svg"}}, nil
				},
			},
			Loader: &mock.TableLoader{
				LoadFn: func(string) (mapcolors.ColorTable, error) { return mapcolors.ColorTable{}, nil },
			},
			Encoder: &mock.TableEncoder{
				EncodeFn: func(io.Writer, mapcolors.ColorTable) error {
					t.Fatal("encoder should not be called")
					return nil
				},
			},
			Output: io.Discard,
		}

		_, err := app.Run(ctx)

		assert.ErrorIs(t, err, context.Canceled)
	})
}
