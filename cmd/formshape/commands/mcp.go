package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/formshape/formshape/internal/cliutil"
	"github.com/formshape/formshape/internal/mcpserver"
)

// HandleMCP executes the mcp command, serving MCP tools over stdio until
// the client disconnects or the process is interrupted.
func HandleMCP(args []string) error {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: formshape mcp\n\n")
		cliutil.Writef(fs.Output(), "Run an MCP (Model Context Protocol) server over stdio.\n\n")
		cliutil.Writef(fs.Output(), "Tools:\n")
		cliutil.Writef(fs.Output(), "  inspect_schema    Report a schema document's dialect, definitions, and statistics\n")
		cliutil.Writef(fs.Output(), "  discover_types    List the types each configured category would produce\n")
		cliutil.Writef(fs.Output(), "  extract_type      Extract one definition as a standalone schema document\n")
		cliutil.Writef(fs.Output(), "  generate_preview  Run the full pipeline in memory and report planned outputs\n")
		cliutil.Writef(fs.Output(), "\nConfiguration (environment):\n")
		cliutil.Writef(fs.Output(), "  FORMSHAPE_CACHE_ENABLED      Enable the parse cache (default true)\n")
		cliutil.Writef(fs.Output(), "  FORMSHAPE_CACHE_FILE_TTL     Cache lifetime for file inputs (default 15m)\n")
		cliutil.Writef(fs.Output(), "  FORMSHAPE_CACHE_URL_TTL      Cache lifetime for URL inputs (default 5m)\n")
		cliutil.Writef(fs.Output(), "  FORMSHAPE_LIST_LIMIT         Default listing page size (default 100)\n")
		cliutil.Writef(fs.Output(), "  FORMSHAPE_MAX_INLINE_SIZE    Maximum inline content bytes (default 10485760)\n")
		cliutil.Writef(fs.Output(), "  FORMSHAPE_ALLOW_PRIVATE_IPS  Allow URL fetches to private addresses (default false)\n")
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  formshape mcp\n")
		cliutil.Writef(fs.Output(), "\nThe server reads MCP requests from stdin and writes responses to stdout.\n")
		cliutil.Writef(fs.Output(), "Register the command with an MCP client; do not run it interactively.\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("mcp command takes no arguments")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return mcpserver.Run(ctx)
}
