// Package main generates the markdown reference pages for leapstyle from its
// source: the cobra command tree, the configuration keys and the registered
// lint rules.
//
// Usage:
//
//	go run ./scripts/gendocs -gen=cli -outdir=docs/cli
//	go run ./scripts/gendocs -gen=config -outdir=docs/reference
//	go run ./scripts/gendocs -gen=rules -outdir=docs/rules
//	go run ./scripts/gendocs -gen=all
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

var (
	genFlag    = flag.String("gen", "all", "what to generate: cli, config, rules, all")
	outDirFlag = flag.String("outdir", "", "output directory (defaults based on gen type)")
)

// generator writes one set of pages into a directory.
type generator struct {
	name   string
	subdir string // default output directory under docs/
	run    func(outDir string) error
}

var generators = []generator{
	{name: "cli", subdir: "cli", run: generateCLIDocs},
	{name: "config", subdir: "reference", run: generateConfigDocs},
	{name: "rules", subdir: "rules", run: generateRuleDocs},
}

func main() {
	flag.Parse()

	// Find project root (where go.mod is)
	projectRoot, err := findProjectRoot()
	if err != nil {
		log.Fatalf("failed to find project root: %v", err)
	}
	log.Printf("Project root: %s", projectRoot)

	if err := generate(*genFlag, *outDirFlag, projectRoot); err != nil {
		log.Fatal(err)
	}
	log.Println("Done!")
}

// generate runs the generator called name, or all of them. outDir only
// applies to a single generator.
func generate(name, outDir, projectRoot string) error {
	ran := false
	for _, g := range generators {
		if name != "all" && name != g.name {
			continue
		}
		dir := outDir
		if dir == "" || name == "all" {
			dir = filepath.Join(projectRoot, "docs", g.subdir)
		}
		if err := g.run(dir); err != nil {
			return fmt.Errorf("failed to generate %s docs: %w", g.name, err)
		}
		ran = true
	}
	if !ran {
		return fmt.Errorf("unknown -gen value: %s (use: cli, config, rules, all)", name)
	}
	return nil
}

// findProjectRoot walks up from current directory to find go.mod.
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}
