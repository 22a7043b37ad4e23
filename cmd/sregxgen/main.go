// Command sregxgen compiles a pattern at build time and emits a Go source
// file declaring it, with the compiled program listing attached as a
// comment. The pattern is validated when the file is generated rather than
// when the embedding program first runs.
//
// Usage:
//
//	sregxgen -pattern 'a(b+)c' -name Needle -pkg rules -out needle.go
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/est-mens-in-statera/sregx/nfa"
)

const modulePath = "github.com/est-mens-in-statera/sregx"

func main() {
	pattern := flag.String("pattern", "", "pattern to compile (required)")
	name := flag.String("name", "Pattern", "name of the generated variable")
	pkg := flag.String("pkg", "main", "package of the generated file")
	out := flag.String("out", "", "output file; stdout when empty")
	excompat := flag.Bool("excompat", false, "ex-style ( ) grouping")
	flag.Parse()

	if *pattern == "" {
		fmt.Fprintln(os.Stderr, "sregxgen: -pattern is required")
		flag.Usage()
		os.Exit(2)
	}

	prog, err := nfa.Compile(*pattern, *excompat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sregxgen: %v\n", err)
		os.Exit(1)
	}

	f := jen.NewFile(*pkg)
	f.HeaderComment("Code generated by sregxgen. DO NOT EDIT.")
	f.ImportName(modulePath, "sregx")

	f.Comment(fmt.Sprintf("%s holds the pattern %q, compiled to %d program bytes.",
		*name, *pattern, len(prog.Bytes())))
	f.Comment("Program listing:")
	for _, line := range strings.Split(strings.TrimRight(prog.Dump(), "\n"), "\n") {
		f.Comment("\t" + line)
	}
	if *excompat {
		f.Var().Id(*name).Op("=").Qual(modulePath, "MustCompileWithConfig").Call(
			jen.Lit(*pattern),
			jen.Qual(modulePath, "Config").Values(jen.Dict{
				jen.Id("ExCompat"): jen.True(),
			}),
		)
	} else {
		f.Var().Id(*name).Op("=").Qual(modulePath, "MustCompile").Call(jen.Lit(*pattern))
	}

	if *out == "" {
		if err := f.Render(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "sregxgen: %v\n", err)
			os.Exit(1)
		}
		return
	}
	if err := f.Save(*out); err != nil {
		fmt.Fprintf(os.Stderr, "sregxgen: %v\n", err)
		os.Exit(1)
	}
}
