package main

import (
	"fmt"

	"github.com/fwojciec/refdex"
	"github.com/fwojciec/refdex/fs"
)

// Run executes the select command.
func (c *SelectCmd) Run(deps *Dependencies) error {
	selector := &fs.Selector{
		Include: c.Include,
		Exclude: c.Exclude,
	}

	count, err := selector.CopyMatching(c.SrcDir, c.DstDir)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", refdex.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Copied %d pages to %s\n", count, c.DstDir)
	return nil
}
