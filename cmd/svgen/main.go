package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/kpango/glg"
	"github.com/tdewolff/minify/v2"
	msvg "github.com/tdewolff/minify/v2/svg"

	svgen "github.com/gucio321/svgen/pkg"
	"github.com/gucio321/svgen/pkg/element"
	"github.com/gucio321/svgen/pkg/path"
	"github.com/gucio321/svgen/pkg/value"
)

type Flags struct {
	InputFilePath  string
	OutputFilePath string
	PathData       string
	Fill           string
	Scale          float64
	Width, Height  float64
	Minify         bool
	preset         string
	makePreset     bool
}

func main() {
	var f Flags
	flag.StringVar(&f.PathData, "d", "", "raw path data to wrap in a document")
	flag.StringVar(&f.InputFilePath, "i", "", "input SVG file to import path data from")
	flag.StringVar(&f.OutputFilePath, "o", "", "output file path (stdout if empty)")
	flag.StringVar(&f.Fill, "fill", "", "fill color (hex code or SVG keyword)")
	flag.Float64Var(&f.Scale, "s", 1.0, "scale factor for imported coordinates")
	flag.Float64Var(&f.Width, "w", 100, "viewBox width")
	flag.Float64Var(&f.Height, "ht", 100, "viewBox height")
	flag.BoolVar(&f.Minify, "minify", false, "minify the resulting document")
	flag.StringVar(&f.preset, "preset", "", "JSON preset file path. This will override all other flags")
	flag.BoolVar(&f.makePreset, "make-preset", false, "auto-generate preset")
	flag.Parse()

	if f.makePreset {
		out, err := json.MarshalIndent(f, "", "\t")
		if err != nil {
			glg.Fatalf("Unable to generate preset: %v", err)
		}

		fmt.Println(string(out))
		glg.Infof("Preset generated")
		return
	}

	if f.preset != "" {
		data, err := os.ReadFile(f.preset)
		if err != nil {
			glg.Fatalf("Unable to read preset from %s: %v (use valid file or empty to not use presets)", f.preset, err)
		}

		if err := json.Unmarshal(data, &f); err != nil {
			glg.Fatalf("Unable to parse preset from %s: %v", f.preset, err)
		}
	}

	var shape *path.Shape

	switch {
	case f.PathData != "":
		var err error
		if shape, err = path.ParseShape(f.PathData); err != nil {
			glg.Fatalf("Cannot parse path data: %v", err)
		}
	case f.InputFilePath != "":
		data, err := os.ReadFile(f.InputFilePath)
		if err != nil {
			glg.Fatalf("Cannot read file %s: %v", f.InputFilePath, err)
		}

		importer, err := svgen.Parse(data)
		if err != nil {
			glg.Fatalf("Cannot parse file %s: %v", f.InputFilePath, err)
		}

		if shape, err = importer.Scale(f.Scale).Shape(); err != nil {
			glg.Fatalf("Cannot import path data from %s: %v", f.InputFilePath, err)
		}
	default:
		flag.Usage()
		os.Exit(1)
	}

	pathEl := element.NewPath(shape)
	if f.Fill != "" {
		color, err := parseFill(f.Fill)
		if err != nil {
			glg.Fatalf("Cannot parse fill color %q: %v", f.Fill, err)
		}

		pathEl.SetAttr(element.FillColor(color))
	}

	out := svgen.NewDocument(float32(f.Width), float32(f.Height)).Add(pathEl).String()

	if f.Minify {
		m := minify.New()
		m.AddFunc("image/svg+xml", msvg.Minify)

		var err error
		if out, err = m.String("image/svg+xml", out); err != nil {
			glg.Fatalf("Cannot minify document: %v", err)
		}
	}

	if f.OutputFilePath == "" {
		fmt.Println(out)
		return
	}

	if err := os.WriteFile(f.OutputFilePath, []byte(out), 0644); err != nil {
		glg.Fatalf("Cannot write file %s: %v", f.OutputFilePath, err)
	}

	glg.Infof("Wrote %s", f.OutputFilePath)
}

// parseFill accepts either an SVG color keyword or a hex code.
func parseFill(s string) (value.Color, error) {
	if c, ok := value.Keyword(s); ok {
		return c, nil
	}

	return value.ParseColor(s)
}
