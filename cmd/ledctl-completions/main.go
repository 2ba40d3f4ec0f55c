package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/ledctl/internal/cli"
)

// completionFiles maps each generated file to its generator.
var completionFiles = map[string]func(*cobra.Command, *bytes.Buffer) error{
	"ledctl.bash": func(c *cobra.Command, b *bytes.Buffer) error { return c.GenBashCompletionV2(b, true) },
	"_ledctl":     func(c *cobra.Command, b *bytes.Buffer) error { return c.GenZshCompletion(b) },
	"ledctl.fish": func(c *cobra.Command, b *bytes.Buffer) error { return c.GenFishCompletion(b, true) },
	"ledctl.ps1":  func(c *cobra.Command, b *bytes.Buffer) error { return c.GenPowerShellCompletionWithDesc(b) },
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <output-dir>\n", os.Args[0])
		os.Exit(1)
	}

	if err := writeCompletions(afero.NewOsFs(), os.Args[1], cli.NewRootCmd()); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating completions: %v\n", err)
		os.Exit(1)
	}
}

func writeCompletions(fs afero.Fs, dir string, rootCmd *cobra.Command) error {
	if err := fs.MkdirAll(dir, 0755); err != nil {
		return err
	}
	for name, gen := range completionFiles {
		var buf bytes.Buffer
		if err := gen(rootCmd, &buf); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if err := afero.WriteFile(fs, filepath.Join(dir, name), buf.Bytes(), 0644); err != nil {
			return err
		}
	}
	return nil
}
