package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	scumerrors "github.com/SingingTree/darkest-dungeon-2-scummer/internal/errors"
	"github.com/SingingTree/darkest-dungeon-2-scummer/internal/scumstore"
)

var pruneKeep int

func init() {
	pruneCmd.Flags().IntVar(&pruneKeep, "keep", 0,
		"number of snapshots to retain (0 uses retention from config)")
	rootCmd.AddCommand(pruneCmd)
}

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove old snapshots",
	Long: `Remove snapshots beyond the retention count, oldest first.

By default the retention from the config file applies (10 when unset). Use
the --keep flag to override it for one run.`,
	Example: `  # Keep the configured number of snapshots
  dd2scummer prune

  # Keep only the 3 most recent snapshots
  dd2scummer prune --keep 3

  See Also:
    dd2scummer list - List stored snapshots`,
	RunE: runPrune,
}

func runPrune(_ *cobra.Command, _ []string) error {
	return runPruneWithWriter(os.Stdout)
}

func runPruneWithWriter(w io.Writer) error {
	keep := pruneKeep
	if keep == 0 {
		keep = configuredRetention()
	}
	if keep < 0 {
		return scumerrors.NewUserError(errors.New("--keep must be positive"), "")
	}

	store := scumstore.NewStore(appDataLocator())

	removed, err := store.Prune(keep)
	if err != nil {
		return exitError(err)
	}

	if len(removed) == 0 {
		fmt.Fprintln(w, "No snapshots to prune")
		return nil
	}

	for _, s := range removed {
		fmt.Fprintf(w, "%s✓ removed %s%s\n", colorGreen, s.Name, colorReset)
	}
	fmt.Fprintf(w, "\nTotal: removed %d snapshot(s)\n", len(removed))
	return nil
}
