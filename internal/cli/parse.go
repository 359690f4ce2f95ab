package cli

import (
	"github.com/spf13/cobra"

	"github.com/seatforge/seatforge/pkg/errors"
	"github.com/seatforge/seatforge/pkg/placeid"
)

// parseCommand creates the parse command for decoding place identifiers.
func (c *CLI) parseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <place-id>",
		Short: "Decode an opaque place identifier",
		Long: `Decode an opaque place identifier into section and seat tokens.

The split is positional and best-effort: identifiers generated by seatforge
decode cleanly, externally sourced identifiers yield a stable guess.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			if err := errors.ValidatePlaceID(id); err != nil {
				return err
			}
			parsed := placeid.Parse(id)
			printKeyValue("Place", id)
			printKeyValue("Section", parsed.Section)
			printKeyValue("Seat", parsed.Seat)
			return nil
		},
	}
}
