// Command phosphor-render rasterizes icons from a directory of SVG files
// into PNGs at a chosen weight, size and foreground color.
//
// Render one icon:
//
//	phosphor-render -dir ./assets -icon acorn -weight bold -size 128 -out ./png
//
// Or every icon in the directory by leaving -icon empty.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/image/colornames"

	phosphor "github.com/will4381/phosphor-quick"
	"github.com/will4381/phosphor-quick/svgicon"
)

var (
	dir    = flag.String("dir", ".", "Directory containing .svg icon files")
	icon   = flag.String("icon", "", "Icon name to render (all icons in -dir when empty)")
	weight = flag.String("weight", "regular", "Weight: regular|thin|light|bold|fill|duotone")
	size   = flag.Int("size", 256, "Output size in pixels (square)")
	fgName = flag.String("color", "black", "Foreground color (SVG 1.1 color name)")
	outDir = flag.String("out", ".", "Output directory for PNG files")
)

func main() {
	log.SetPrefix("phosphor-render: ")
	log.SetFlags(0)
	flag.Parse()

	w, err := svgicon.ParseWeight(*weight)
	if err != nil {
		log.Fatal(err)
	}
	fg, ok := colornames.Map[strings.ToLower(*fgName)]
	if !ok {
		log.Fatalf("unknown color name %q", *fgName)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	renderer := phosphor.NewRenderer(phosphor.Dir(os.DirFS(*dir)), phosphor.Options{
		Foreground: fg,
		Logger:     &logger,
	})

	names := []string{*icon}
	if *icon == "" {
		if names, err = listIcons(*dir); err != nil {
			log.Fatal(err)
		}
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatal(err)
	}
	for _, name := range names {
		if err := renderOne(renderer, name, w); err != nil {
			log.Fatal(err)
		}
	}
}

func renderOne(r *phosphor.Renderer, name string, w phosphor.Weight) error {
	img, err := r.Render(name, w, *size, *size)
	if err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	out := filepath.Join(*outDir, fmt.Sprintf("%s-%s-%d.png", name, w, *size))
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", out, err)
	}
	return f.Close()
}

func listIcons(dir string) ([]string, error) {
	var names []string
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if e.Type().IsRegular() && strings.HasSuffix(e.Name(), ".svg") {
			names = append(names, strings.TrimSuffix(e.Name(), ".svg"))
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no .svg files in %s", dir)
	}
	return names, nil
}
