// Command sqlitelint parses a SQLite SQL file and reports any diagnostics.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/k0kubun/pp/v3"

	"github.com/freeeve/sqlitelang"
)

var version string

type options struct {
	Dump    bool `long:"dump" description:"Pretty-print the parsed statement list to stdout"`
	Help    bool `long:"help" description:"Show this help"`
	Version bool `long:"version" description:"Show this version"`
}

func parseOptions(args []string) (*options, string) {
	var opts options
	parser := flags.NewParser(&opts, flags.None)
	parser.Usage = "[option...] file.sql"
	rest, err := parser.ParseArgs(args)
	if err != nil {
		log.Fatal(err)
	}

	if opts.Help {
		parser.WriteHelp(os.Stdout)
		os.Exit(0)
	}
	if opts.Version {
		fmt.Println(version)
		os.Exit(0)
	}
	if len(rest) != 1 {
		fmt.Fprintln(os.Stderr, "exactly one SQL file must be given")
		parser.WriteHelp(os.Stderr)
		os.Exit(1)
	}
	return &opts, rest[0]
}

func main() {
	opts, path := parseOptions(os.Args[1:])

	source, err := os.ReadFile(path)
	if err != nil {
		log.Fatal(err)
	}

	stmts, diags := sqlitelang.ParseAll(string(source))
	for _, d := range diags {
		fmt.Fprintln(os.Stderr, d.Error())
		if snippet := d.Snippet(); snippet != "" {
			fmt.Fprintln(os.Stderr, snippet)
		}
	}

	if opts.Dump {
		pp.ColoringEnabled = false
		for _, stmt := range stmts {
			pp.Println(stmt)
		}
	}

	fmt.Printf("%s: %d statement(s), %d diagnostic(s)\n", path, len(stmts), len(diags))
	if len(diags) > 0 {
		os.Exit(1)
	}
}
