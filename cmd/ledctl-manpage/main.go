package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/ledctl/internal/cli"
	"github.com/arthur-debert/ledctl/internal/version"
	"github.com/arthur-debert/ledctl/pkg/style"
)

// With a directory argument one page per operation is written there,
// otherwise the root page goes to stdout.
func main() {
	// Man pages get the help texts without escape sequences
	style.SetColorEnabled(false)
	rootCmd := cli.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "LEDCTL",
		Section: "1",
		Source:  "ledctl " + version.Version,
		Manual:  "ledctl manual",
	}

	var err error
	if len(os.Args) > 1 {
		dir := os.Args[1]
		if err = os.MkdirAll(dir, 0755); err == nil {
			err = doc.GenManTree(rootCmd, header, dir)
		}
	} else {
		err = doc.GenMan(rootCmd, header, os.Stdout)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
