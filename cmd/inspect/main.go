// Command inspect parses a gen code or steam:// inspect link offline and
// prints the same iteminfo JSON the server would return.
//
// Usage:
//
//	inspect '!g 7 12 5 0.45'
//	inspect --pretty 'steam://rungame/730/76561202255233023/+csgo_econ_action_preview S76561198000000000A123456789D7'
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/meur/cs2inspect/internal/inspect"
	"github.com/meur/cs2inspect/internal/logging"
	"github.com/meur/cs2inspect/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	var (
		pretty  bool
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "inspect <gen code | inspect link>",
		Short: "Parse a CS2 gen code or inspect link into iteminfo JSON",
		Long: `Parse a "!g <defindex> <paintindex> <paintseed> <float>" gen code or a
steam://rungame/730/... inspect link and print the iteminfo envelope.

Arguments are joined with spaces, so an unquoted gen code works too.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := "warn"
			if verbose {
				level = "debug"
			}
			logging.SetupWriter(cmd.ErrOrStderr(), level, true)

			err := runInspect(out, strings.Join(args, " "), pretty)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
			}
			return err
		},
	}

	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "indent the JSON output")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log parsing details to stderr")

	return cmd
}

func runInspect(out io.Writer, input string, pretty bool) error {
	item, format, err := inspect.Parse(input)
	if err != nil {
		log.Debug().Err(err).Stringer("format", format).Msg("parse failed")
		if errors.Is(err, inspect.ErrUnknownFormat) {
			return errors.New("Invalid format. Use !g code or steam:// link")
		}
		return errors.New("Failed to parse item info")
	}
	log.Debug().Stringer("format", format).Msg("parsed")

	enc := json.NewEncoder(out)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(models.NewItemInfoResponse(item))
}
