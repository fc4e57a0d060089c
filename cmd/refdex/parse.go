package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fwojciec/refdex"
	"github.com/fwojciec/refdex/fs"
)

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	if _, err := os.Stat(c.SrcDir); err != nil {
		fmt.Fprintf(deps.Stderr, "error: source directory %q not found\n", c.SrcDir)
		return refdex.Errorf(refdex.ENOTFOUND, "source directory %q not found", c.SrcDir)
	}

	pages, err := filepath.Glob(filepath.Join(c.SrcDir, "*.html"))
	if err != nil {
		return err
	}
	sort.Strings(pages)

	out, err := os.Create(c.Out)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: cannot create %q: %v\n", c.Out, err)
		return err
	}
	defer out.Close()

	writer := fs.NewCorpusWriter(out)

	var total int
	for _, page := range pages {
		entities, err := c.parsePage(deps, page)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", filepath.Base(page), refdex.ErrorMessage(err))
			continue
		}
		for _, e := range entities {
			if err := writer.WriteEntity(e); err != nil {
				return err
			}
		}
		total += len(entities)
	}

	if err := writer.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Extracted %d entities from %d pages to %s\n", total, len(pages), c.Out)
	return nil
}

func (c *ParseCmd) parsePage(deps *Dependencies, page string) ([]*refdex.Entity, error) {
	f, err := os.Open(page)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	base := filepath.Base(page)
	pageName := strings.TrimSuffix(base, filepath.Ext(base))

	return deps.Parser.Parse(f, pageName)
}
