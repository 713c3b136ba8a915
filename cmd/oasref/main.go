package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/erraggy/oasref"
	"github.com/erraggy/oasref/internal/mcpserver"
	"github.com/erraggy/oasref/parser"
	"github.com/erraggy/oasref/spec"
	"github.com/erraggy/oasref/validator"
	"github.com/erraggy/oasref/walker"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("oasref v%s\n", oasref.Version())
	case "help", "-h", "--help":
		printUsage()
	case "parse":
		if err := handleParse(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "validate":
		if err := handleValidate(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "refs":
		if err := handleRefs(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "resolve":
		if err := handleResolve(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := handleMCP(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean %q?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

// suggestCommand returns the known command closest to input, or "" when no
// command is within edit distance 2.
func suggestCommand(input string) string {
	known := []string{"parse", "validate", "refs", "resolve", "mcp", "version", "help"}
	best := ""
	bestDist := 3
	for _, cmd := range known {
		if d := editDistance(input, cmd); d < bestDist {
			best = cmd
			bestDist = d
		}
	}
	return best
}

func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func handleParse(args []string) error {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	validateStructure := fs.Bool("validate-structure", true, "validate document structure during parsing")
	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: oasref parse [flags] <file|url>\n\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("parse command requires exactly one file path or URL")
	}

	startTime := time.Now()
	result, err := parser.ParseWithOptions(
		parser.WithFilePath(fs.Arg(0)),
		parser.WithValidateStructure(*validateStructure),
	)
	totalTime := time.Since(startTime)
	if err != nil {
		return fmt.Errorf("parsing file: %w", err)
	}

	fmt.Printf("Specification: %s\n", result.SourcePath)
	fmt.Printf("OpenAPI Version: %s\n", result.Version)
	fmt.Printf("Source Format: %s\n", result.SourceFormat)
	fmt.Printf("Source Size: %d bytes\n", result.SourceSize)
	fmt.Printf("Load Time: %v\n", result.LoadTime)
	fmt.Printf("Total Time: %v\n", totalTime)

	doc := result.Document
	if doc != nil && doc.Info != nil {
		fmt.Printf("Title: %s\n", doc.Info.Title)
	}
	for _, kind := range []spec.RefKind{
		spec.KindSchema, spec.KindResponse, spec.KindParameter,
		spec.KindExample, spec.KindRequestBody, spec.KindHeader,
		spec.KindSecurityScheme, spec.KindLink, spec.KindCallback,
	} {
		if names := doc.ComponentNames(kind); len(names) > 0 {
			fmt.Printf("%s: %d\n", kind, len(names))
		}
	}

	if len(result.Errors) > 0 {
		fmt.Printf("\nErrors (%d):\n", len(result.Errors))
		for _, e := range result.Errors {
			fmt.Printf("  %v\n", e)
		}
	}
	if len(result.Warnings) > 0 {
		fmt.Printf("\nWarnings (%d):\n", len(result.Warnings))
		for _, w := range result.Warnings {
			fmt.Printf("  %s\n", w)
		}
	}
	return nil
}

func handleValidate(args []string) error {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	strictTypes := fs.Bool("strict-types", false, "require every schema to declare a type")
	noWarnings := fs.Bool("no-warnings", false, "suppress warnings from output")
	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: oasref validate [flags] <file|url>\n\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("validate command requires exactly one file path or URL")
	}

	result, err := validator.ValidateWithOptions(
		validator.WithFilePath(fs.Arg(0)),
		validator.WithStrictTypes(*strictTypes),
		validator.WithIncludeWarnings(!*noWarnings),
	)
	if err != nil {
		return fmt.Errorf("validating file: %w", err)
	}

	fmt.Printf("Specification: %s\n", fs.Arg(0))
	fmt.Printf("OpenAPI Version: %s\n\n", result.Version)

	if len(result.Errors) > 0 {
		fmt.Printf("Errors (%d):\n", len(result.Errors))
		for _, e := range result.Errors {
			fmt.Printf("  %s\n", e.String())
		}
		fmt.Println()
	}
	if len(result.Warnings) > 0 {
		fmt.Printf("Warnings (%d):\n", len(result.Warnings))
		for _, w := range result.Warnings {
			fmt.Printf("  %s\n", w.String())
		}
		fmt.Println()
	}

	if result.Valid {
		fmt.Printf("✓ Validation passed")
		if len(result.Warnings) > 0 {
			fmt.Printf(" with %d warning(s)", len(result.Warnings))
		}
		fmt.Println()
		return nil
	}
	fmt.Printf("✗ Validation failed: %d error(s)\n", len(result.Errors))
	os.Exit(1)
	return nil
}

func handleRefs(args []string) error {
	fs := flag.NewFlagSet("refs", flag.ContinueOnError)
	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: oasref refs <file|url>\n\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("refs command requires exactly one file path or URL")
	}

	result, err := parser.ParseWithOptions(parser.WithFilePath(fs.Arg(0)))
	if err != nil {
		return fmt.Errorf("parsing file: %w", err)
	}

	refs, err := walker.CollectRefs(result.Document)
	if err != nil {
		return err
	}
	if len(refs) == 0 {
		fmt.Println("No references found")
		return nil
	}

	fmt.Printf("References (%d):\n", len(refs))
	for _, r := range refs {
		fmt.Printf("  %s -> %s (%s)\n", r.SourcePath, r.Ref, r.NodeType)
	}
	return nil
}

func handleResolve(args []string) error {
	fs := flag.NewFlagSet("resolve", flag.ContinueOnError)
	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: oasref resolve <file|url> <ref>\n\n")
		_, _ = fmt.Fprintf(output, "Example: oasref resolve api.yaml '#/components/schemas/Pet'\n\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("resolve command requires a file path or URL and a reference")
	}

	result, err := parser.ParseWithOptions(parser.WithFilePath(fs.Arg(0)))
	if err != nil {
		return fmt.Errorf("parsing file: %w", err)
	}

	ref := fs.Arg(1)
	parsed, err := spec.ParseRef(ref)
	if err != nil {
		return err
	}

	component, err := resolveComponent(result.Document, parsed.Kind, ref)
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(component, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding component: %w", err)
	}
	fmt.Printf("%s (%s)\n%s\n", parsed.Name, parsed.Kind, out)
	return nil
}

func resolveComponent(doc *spec.Document, kind spec.RefKind, ref string) (any, error) {
	switch kind {
	case spec.KindSchema:
		return spec.FromRef[spec.Schema](doc, ref)
	case spec.KindResponse:
		return spec.FromRef[spec.Response](doc, ref)
	case spec.KindParameter:
		return spec.FromRef[spec.Parameter](doc, ref)
	case spec.KindExample:
		return spec.FromRef[spec.Example](doc, ref)
	case spec.KindRequestBody:
		return spec.FromRef[spec.RequestBody](doc, ref)
	case spec.KindHeader:
		return spec.FromRef[spec.Header](doc, ref)
	case spec.KindSecurityScheme:
		return spec.FromRef[spec.SecurityScheme](doc, ref)
	case spec.KindLink:
		return spec.FromRef[spec.Link](doc, ref)
	case spec.KindCallback:
		return spec.FromRef[spec.Callback](doc, ref)
	default:
		return nil, fmt.Errorf("unrecognized component kind %q", kind)
	}
}

func handleMCP() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return mcpserver.Run(ctx)
}

func printUsage() {
	fmt.Println(`oasref - OpenAPI reference resolution tools

Usage:
  oasref <command> [options]

Commands:
  parse       Parse and summarize an OpenAPI specification file or URL
  validate    Validate references and schemas in an OpenAPI specification
  refs        List every $ref in an OpenAPI specification
  resolve     Resolve a reference to its inline component
  mcp         Serve oasref tools over the Model Context Protocol (stdio)
  version     Show version information
  help        Show this help message

Examples:
  oasref parse openapi.yaml
  oasref validate --strict-types openapi.yaml
  oasref refs https://example.com/api/openapi.yaml
  oasref resolve openapi.yaml '#/components/schemas/Pet'

Run 'oasref <command> --help' for more information on a command.`)
}
