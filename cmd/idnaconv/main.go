package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/jroosing/idnakit/internal/idna"
)

func main() {
	var (
		unicode = flag.Bool("unicode", false, "Convert to Unicode form instead of ASCII")
		preset  = flag.String("preset", "default", "Conversion preset (default, strict, lax)")
		std3    = flag.Bool("std3", false, "Enforce STD3 ASCII rules")
		quiet   = flag.Bool("quiet", false, "Suppress output (exit status indicates success)")
	)
	flag.Parse()

	flags, err := resolveFlags(*preset, *std3)
	if err != nil {
		fmt.Fprintf(os.Stderr, "idnaconv error: %v\n", err)
		os.Exit(2)
	}

	domains := flag.Args()
	if len(domains) == 0 {
		domains = readLines(os.Stdin)
	}
	if len(domains) == 0 {
		fmt.Fprintln(os.Stderr, "usage: idnaconv [flags] DOMAIN...")
		os.Exit(2)
	}

	failed := false
	for _, domain := range domains {
		var out string
		var err error
		if *unicode {
			out, err = idna.ToUnicode(domain, flags)
		} else {
			out, err = idna.ToASCII(domain, flags)
		}

		if err != nil {
			failed = true
			if !*quiet {
				printViolations(domain, err)
			}
			continue
		}
		if !*quiet {
			fmt.Println(out)
		}
	}

	if failed {
		os.Exit(1)
	}
}

func resolveFlags(preset string, std3 bool) (idna.Flags, error) {
	var flags idna.Flags
	switch preset {
	case "default":
		flags = idna.DefaultFlags()
	case "strict":
		flags = idna.MostStrict()
	case "lax":
		flags = idna.MostLax()
	default:
		return idna.Flags{}, fmt.Errorf("unknown preset %q", preset)
	}
	if std3 {
		flags.UseSTD3ASCIIRules = true
	}
	return flags, nil
}

func readLines(f *os.File) []string {
	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if line := sc.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func printViolations(domain string, err error) {
	var mapErr *idna.MappingErrors
	if !errors.As(err, &mapErr) {
		fmt.Fprintf(os.Stderr, "%s: %v\n", domain, err)
		return
	}
	for _, v := range mapErr.Violations {
		fmt.Fprintf(os.Stderr, "%s: %s\n", domain, v.Message())
	}
}
