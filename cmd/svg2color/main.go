// Command svg2color merges region colors from an edited SVG map into a color
// definition table.
//
// Download the map as SVG, recolor regions in an editor such as Inkscape,
// then run:
//
//	svg2color edited-map.svg default-colors.json
//
// One diagnostic line is printed per region path, followed by the updated
// color table as a single JSON line.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	lg "github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/mapcolors"
	"github.com/fwojciec/mapcolors/chroma"
	"github.com/fwojciec/mapcolors/jsontable"
	"github.com/fwojciec/mapcolors/lipgloss"
	"github.com/fwojciec/mapcolors/svg"
	"github.com/muesli/termenv"
)

// ErrUsage is returned when the command line is malformed.
var ErrUsage = errors.New("usage: svg2color [-no-color] [-o output.json] <edited-map.svg> <default-colors.json>")

// App encapsulates the application logic for testing.
type App struct {
	DocumentPath string // Edited SVG map
	TablePath    string // Baseline color table
	OutputPath   string // Optional file to also save the table to

	Parser   mapcolors.DocumentParser
	Loader   mapcolors.TableLoader
	Encoder  mapcolors.TableEncoder
	Saver    mapcolors.TableSaver // Required only when OutputPath is set
	Reporter mapcolors.Reporter
	Output   io.Writer // Receives the final table line
}

// Run parses the document, merges its colors into the baseline table and
// writes the result. Nothing is written to Output if any step fails.
func (a *App) Run(ctx context.Context) (mapcolors.MergeResult, error) {
	doc, err := a.parseDocument()
	if err != nil {
		return mapcolors.MergeResult{}, err
	}

	table, err := a.Loader.Load(a.TablePath)
	if err != nil {
		return mapcolors.MergeResult{}, fmt.Errorf("loading color table: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return mapcolors.MergeResult{}, err
	}

	result, err := mapcolors.Merge(doc, table, a.Reporter)
	if err != nil {
		return result, err
	}

	if err := ctx.Err(); err != nil {
		return result, err
	}

	if a.OutputPath != "" {
		if err := a.Saver.Save(a.OutputPath, table); err != nil {
			return result, fmt.Errorf("saving color table: %w", err)
		}
	}

	return result, a.Encoder.Encode(a.Output, table)
}

func (a *App) parseDocument() (*mapcolors.Document, error) {
	f, err := os.Open(a.DocumentPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := a.Parser.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", a.DocumentPath, err)
	}
	return doc, nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, ErrUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("svg2color", flag.ContinueOnError)
	noColor := fs.Bool("no-color", false, "disable colored output")
	outputPath := fs.String("o", "", "also save the updated table to this file")
	fs.SetOutput(io.Discard)
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() != 2 {
		return ErrUsage
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	renderer := lg.NewRenderer(os.Stdout)
	if *noColor {
		renderer.SetColorProfile(termenv.Ascii)
	}

	theme := lipgloss.DefaultTheme()
	tokenizer, err := chroma.NewTokenizer(chroma.StyleFromPalette(theme.Palette()))
	if err != nil {
		return fmt.Errorf("error setting up syntax highlighting: %w", err)
	}

	app := &App{
		DocumentPath: fs.Arg(0),
		TablePath:    fs.Arg(1),
		OutputPath:   *outputPath,
		Parser:       svg.NewParser(),
		Loader:       jsontable.NewLoader(),
		Encoder:      lipgloss.NewHighlightEncoder(jsontable.NewEncoder(), tokenizer, renderer),
		Saver:        jsontable.NewSaver(),
		Reporter:     lipgloss.NewReporter(os.Stdout, renderer, theme),
		Output:       os.Stdout,
	}

	_, err = app.Run(ctx)
	return err
}
