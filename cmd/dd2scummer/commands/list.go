package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/SingingTree/darkest-dungeon-2-scummer/internal/scumstore"
)

var listJSON bool

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored snapshots",
	Long: `List the snapshots in the backup directory, most recent first.

Each snapshot is a full copy of the save profile, named after the UTC time it
was taken. Directories with names that do not look like snapshots are left
alone and not listed.`,
	Example: `  # List all snapshots
  dd2scummer list

  # Output as JSON
  dd2scummer list --json

  See Also:
    dd2scummer prune - Remove old snapshots`,
	RunE: runList,
}

func runList(_ *cobra.Command, _ []string) error {
	return runListWithWriter(os.Stdout)
}

func runListWithWriter(w io.Writer) error {
	store := scumstore.NewStore(appDataLocator())

	snapshots, err := store.Snapshots()
	if err != nil && !errors.Is(err, scumstore.ErrNoSnapshots) {
		return exitError(err)
	}

	if listJSON {
		return outputListJSON(w, snapshots)
	}
	return outputListTabular(w, store, snapshots)
}

func outputListJSON(w io.Writer, snapshots []scumstore.Snapshot) error {
	if snapshots == nil {
		snapshots = []scumstore.Snapshot{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(snapshots)
}

func outputListTabular(w io.Writer, store *scumstore.Store, snapshots []scumstore.Snapshot) error {
	if dir, err := store.Dir(); err == nil {
		fmt.Fprintf(w, "%sScumm dir: %s%s\n", colorCyan+colorBold, dir, colorReset)
	}

	if len(snapshots) == 0 {
		fmt.Fprintf(w, "  %s(no snapshots yet)%s\n", colorGray, colorReset)
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Run dd2scummer with no arguments to take one.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  %sNAME%s\t%sCREATED%s\t%sFILES%s\t%sSIZE%s\n",
		colorBold, colorReset,
		colorBold, colorReset,
		colorBold, colorReset,
		colorBold, colorReset)

	for _, s := range snapshots {
		fmt.Fprintf(tw, "  %s%s%s\t%s\t%d\t%s\n",
			colorGreen, s.Name, colorReset,
			s.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			s.Files,
			formatBytes(s.Size))
	}
	tw.Flush()

	fmt.Fprintf(w, "\n%d snapshot(s)\n", len(snapshots))
	return nil
}
