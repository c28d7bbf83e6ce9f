package main

import (
	"fmt"
	"os"

	"github.com/formshape/formshape"
	"github.com/formshape/formshape/cmd/formshape/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("formshape v%s\n", formshape.Version())
	case "help", "-h", "--help":
		printUsage()
	case "generate":
		if err := commands.HandleGenerate(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "discover":
		if err := commands.HandleDiscover(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "extract":
		if err := commands.HandleExtract(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "inspect":
		if err := commands.HandleInspect(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "validate":
		if err := commands.HandleValidate(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := commands.HandleMCP(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

// knownCommands lists every dispatchable command, for typo suggestions.
var knownCommands = []string{
	"generate", "discover", "extract", "inspect", "validate", "mcp", "version", "help",
}

// suggestCommand returns the closest known command within an edit distance
// of 2, or "" when nothing is close enough to be a likely typo.
func suggestCommand(input string) string {
	best := ""
	bestDist := 3
	for _, cmd := range knownCommands {
		if d := editDistance(input, cmd); d < bestDist {
			best = cmd
			bestDist = d
		}
	}
	return best
}

// editDistance computes the Levenshtein distance between two strings.
func editDistance(a, b string) int {
	if a == b {
		return 0
	}

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
			curr[j] = min(prev[j-1]+cost, min(prev[j]+1, curr[j-1]+1))
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

func printUsage() {
	fmt.Println(`formshape - derive form-renderer-safe schemas from machine-generated JSON Schema

Usage:
  formshape <command> [options]

Commands:
  generate    Generate standalone schema documents for every configured category
  discover    List the types each configured category resolves to
  extract     Extract one type into a standalone schema document
  inspect     Parse a schema document and display its structure
  validate    Check a generated document against the form renderer contract
  mcp         Run the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  formshape generate -config formshape.yaml -o schemas config-schema.json
  formshape discover -config formshape.yaml config-schema.json
  formshape extract -type HTTPRoute config-schema.json
  formshape inspect https://example.com/config-schema.json
  cat schema.json | formshape inspect -

Run 'formshape <command> --help' for more information on a command.`)
}
