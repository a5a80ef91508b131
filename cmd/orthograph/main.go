package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/atelierpx/orthograph/pkg/export/dxf"
	"github.com/atelierpx/orthograph/pkg/model"
	"github.com/atelierpx/orthograph/pkg/projection"
	"github.com/atelierpx/orthograph/pkg/style"
)

func main() {
	os.Exit(run())
}

func run() int {
	planPath := flag.String("plan", "", "building model JSON (required)")
	outDir := flag.String("out", "drawings", "output directory")
	scale := flag.Float64("scale", 0, "drawing scale in px per metre (default 50)")
	theme := flag.String("theme", "", "theme preset name")
	themesPath := flag.String("themes", "", "extra theme presets, YAML")
	exportDXF := flag.Bool("dxf", false, "also write a DXF per floor plan")
	validate := flag.Bool("validate", false, "print validation findings before rendering")
	flag.Parse()

	if *planPath == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s -plan plan.json [options]\n", os.Args[0])
		flag.PrintDefaults()
		return 2
	}

	data, err := os.ReadFile(*planPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read plan: %v\n", err)
		return 2
	}
	m, err := model.Decode(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "decode plan: %v\n", err)
		return 2
	}

	if *validate {
		printFindings(model.ValidateAll(m))
	}

	styles := style.NewRegistry()
	if *themesPath != "" {
		if err := styles.LoadFile(*themesPath); err != nil {
			fmt.Fprintf(os.Stderr, "load themes: %v\n", err)
			return 2
		}
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "create output dir: %v\n", err)
		return 1
	}

	bundle := projection.All2D(m, projection.BatchOptions{
		Scale:  *scale,
		Theme:  *theme,
		Styles: styles,
	})

	type outFile struct {
		name string
		body string
	}
	var files []outFile
	for i, f := range m.Floors {
		files = append(files, outFile{projection.PlanSheet(f.Index) + ".svg", bundle.Drawings[projection.PlanKey(i)]})
	}
	for _, fc := range model.AllFacades() {
		files = append(files, outFile{projection.ElevationSheet(fc) + ".svg", bundle.Drawings[projection.ElevationKey(fc)]})
	}
	for _, a := range []projection.SectionAxis{projection.SectionLongitudinal, projection.SectionTransverse} {
		files = append(files, outFile{projection.SectionSheet(a) + ".svg", bundle.Drawings[projection.SectionKey(a)]})
	}

	written := 0
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(*outDir, f.name), []byte(f.body), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "write %s: %v\n", f.name, err)
			return 1
		}
		written++
	}

	meta, err := json.MarshalIndent(bundle.Meta, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "marshal metadata: %v\n", err)
		return 1
	}
	if err := os.WriteFile(filepath.Join(*outDir, "metadata.json"), append(meta, '\n'), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write metadata.json: %v\n", err)
		return 1
	}

	if *exportDXF {
		for i, f := range m.Floors {
			path := filepath.Join(*outDir, projection.PlanSheet(f.Index)+".dxf")
			if err := dxf.Export(m, i, path); err != nil {
				fmt.Fprintf(os.Stderr, "export dxf: %v\n", err)
				return 1
			}
			written++
		}
	}

	fmt.Printf("Wrote %d drawings to %s\n", written, *outDir)
	return 0
}

func printFindings(res model.ValidationResult) {
	for _, e := range res.Errors {
		fmt.Fprintf(os.Stderr, "%v\n", e)
	}
	for _, w := range res.Warnings {
		if w.Ref != "" {
			fmt.Fprintf(os.Stderr, "[warning] %s: %s\n", w.Ref, w.Message)
		} else {
			fmt.Fprintf(os.Stderr, "[warning] %s\n", w.Message)
		}
	}
	if res.OK() && len(res.Warnings) == 0 {
		fmt.Fprintln(os.Stderr, "model ok")
	}
}
