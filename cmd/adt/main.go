// Command adt compiles YAML type manifests into Go declarations and inspects
// declared types.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	adt "github.com/blaster151/adt"
	"github.com/blaster151/adt/dsl"
	"github.com/blaster151/adt/inspect"
	gen "github.com/blaster151/adt/internal/gen"
	ir "github.com/blaster151/adt/internal/ir"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "compile":
		compileCmd(os.Args[2:])
	case "inspect":
		inspectCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "adt CLI\n\nUsage:\n  adt compile -manifest types.yaml -o types_gen.go [-pkg name]\n  adt inspect -manifest types.yaml")
}

func compileCmd(args []string) {
	fs := flag.NewFlagSet("compile", flag.ExitOnError)
	var manifest, out, pkg string
	fs.StringVar(&manifest, "manifest", "", "YAML type manifest to compile")
	fs.StringVar(&out, "o", "", "output filename")
	fs.StringVar(&pkg, "pkg", "types", "package name for the generated file")
	_ = fs.Parse(args)
	if manifest == "" || out == "" {
		fs.Usage()
		os.Exit(2)
	}

	m := loadManifest(manifest)
	code, err := gen.RenderFile(pkg, m)
	if err != nil {
		fail(err)
	}
	if err := os.WriteFile(out, code, 0o644); err != nil {
		fail(err)
	}
	fmt.Fprintf(os.Stderr, "wrote %s (%d types)\n", out, len(m.Types))
}

func inspectCmd(args []string) {
	fs := flag.NewFlagSet("inspect", flag.ExitOnError)
	var manifest string
	fs.StringVar(&manifest, "manifest", "", "YAML type manifest to inspect")
	_ = fs.Parse(args)
	if manifest == "" {
		fs.Usage()
		os.Exit(2)
	}

	m := loadManifest(manifest)
	for _, d := range m.Types {
		cfg := adt.DefaultConfig()
		cfg.HKT = false
		cfg.DerivableInstances = false
		if d.IsSum() {
			variants := make([]adt.Variant, 0, len(d.Variants))
			for _, vr := range d.Variants {
				variants = append(variants, adt.Variant{Name: vr.Name, Payload: payloadFor(vr.Fields)})
			}
			t, err := adt.NewSum(d.Name, variants, cfg)
			if err != nil {
				fail(err)
			}
			fmt.Print(inspect.TypeTree(t))
			continue
		}
		t, err := dsl.ProductOf(d.Name, d.Fields, cfg)
		if err != nil {
			fail(err)
		}
		fmt.Print(inspect.ProductTree(t))
	}
}

func loadManifest(path string) ir.Manifest {
	data, err := os.ReadFile(path)
	if err != nil {
		fail(err)
	}
	m, err := ir.Load(data)
	if err != nil {
		fail(err)
	}
	if err := m.Validate(); err != nil {
		fail(err)
	}
	return m
}

func payloadFor(fields []string) adt.Payload {
	if len(fields) == 0 {
		return nil
	}
	names := append([]string(nil), fields...)
	return func(args ...any) adt.Fields {
		out := make(adt.Fields, len(names))
		for i, n := range names {
			if i < len(args) {
				out[n] = args[i]
			}
		}
		return out
	}
}

func fail(err error) {
	msg := err.Error()
	if iss, ok := adt.AsIssues(err); ok && len(iss) > 0 {
		msg = iss.Error()
	}
	if isatty.IsTerminal(os.Stderr.Fd()) {
		fmt.Fprintf(os.Stderr, "\x1b[31madt: %s\x1b[0m\n", msg)
	} else {
		fmt.Fprintf(os.Stderr, "adt: %s\n", msg)
	}
	os.Exit(1)
}
