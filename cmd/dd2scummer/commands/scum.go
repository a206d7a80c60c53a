package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/SingingTree/darkest-dungeon-2-scummer/internal/appdata"
	scumerrors "github.com/SingingTree/darkest-dungeon-2-scummer/internal/errors"
	"github.com/SingingTree/darkest-dungeon-2-scummer/internal/logging"
	"github.com/SingingTree/darkest-dungeon-2-scummer/internal/savefiles"
	"github.com/SingingTree/darkest-dungeon-2-scummer/internal/scummer"
	"github.com/SingingTree/darkest-dungeon-2-scummer/pkg/fileutil"
)

var (
	// scumLatest holds the value of the --latest flag.
	scumLatest bool

	// scumPick holds the value of the --pick flag.
	scumPick bool
)

func init() {
	rootCmd.Flags().BoolVar(&scumLatest, "latest", false,
		"with several profiles, back up the most recently modified one")
	rootCmd.Flags().BoolVar(&scumPick, "pick", false,
		"with several profiles, choose one interactively")
}

func runScum(cmd *cobra.Command, _ []string) error {
	return runScumWithWriter(cmd.Context(), os.Stdout)
}

func runScumWithWriter(ctx context.Context, w io.Writer) error {
	if scumLatest && scumPick {
		return scumerrors.NewUserError(errors.New("use either --latest or --pick, not both"), "")
	}

	logger := logging.FromContext(ctx)
	s := scummer.New(appDataLocator())

	var (
		result *scummer.ScummedProfile
		err    error
	)
	switch {
	case scumLatest:
		result, err = scumLatestProfile(logger, s)
	case scumPick:
		result, err = scumPickedProfile(logger, s)
	default:
		result, err = s.Scum()
	}
	if err != nil {
		return exitError(err)
	}
	if result == nil {
		// Interactive pick aborted
		fmt.Fprintln(w, "No profile selected")
		return nil
	}

	logger.Info("profile scummed",
		"source", result.SourcePath,
		"dest", result.DestPath,
		"at", result.TimeScummed)

	fmt.Fprintf(w, "%s✓ Scummed %s%s\n", colorGreen, result.SourcePath, colorReset)
	fmt.Fprintf(w, "  saved to: %s\n", result.DestPath)
	return nil
}

// scumLatestProfile backs up the most recently modified profile directory.
func scumLatestProfile(logger *slog.Logger, s *scummer.Scummer) (*scummer.ScummedProfile, error) {
	dirs, err := s.ProfileDirs()
	if err != nil {
		return nil, err
	}
	if len(dirs) == 0 {
		return nil, errors.Wrap(savefiles.ErrNotFound, "no profiles to scum")
	}

	dir, err := savefiles.MostRecent(dirs)
	if err != nil {
		return nil, err
	}
	logger.Debug("picked most recently modified profile", "dir", dir)
	return s.ScumProfile(dir)
}

// scumPickedProfile backs up a profile chosen through the interactive
// finder. A nil result with a nil error means the pick was aborted.
func scumPickedProfile(logger *slog.Logger, s *scummer.Scummer) (*scummer.ScummedProfile, error) {
	dirs, err := s.ProfileDirs()
	if err != nil {
		return nil, err
	}
	if len(dirs) == 0 {
		return nil, errors.Wrap(savefiles.ErrNotFound, "no profiles to scum")
	}

	idx, err := fuzzyfinder.Find(
		dirs,
		func(i int) string {
			return dirs[i]
		},
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			return profilePreview(dirs[i])
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "picking profile")
	}

	logger.Debug("picked profile", "dir", dirs[idx])
	return s.ScumProfile(dirs[idx])
}

// profilePreview describes one profile directory for the finder's preview
// pane.
func profilePreview(dir string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Profile: %s\n", dir)

	if info, err := os.Stat(dir); err == nil {
		fmt.Fprintf(&b, "Modified: %s\n", info.ModTime().Local().Format("2006-01-02 15:04:05"))
	}
	if files, size, err := fileutil.TreeStats(dir); err == nil {
		fmt.Fprintf(&b, "Files: %d\nSize: %s\n", files, formatBytes(size))
	}
	return b.String()
}

// exitError classifies a failed run into an exit code for main, attaching a
// suggestion where one helps.
func exitError(err error) error {
	switch {
	case errors.Is(err, scummer.ErrMultipleProfiles):
		return scumerrors.NewUserError(err, "Back up one profile with --latest or --pick")
	case errors.Is(err, appdata.ErrUnsupportedPlatform):
		return scumerrors.NewUserError(err, "Set app_data_dir in the config file to the game's app data directory")
	case errors.Is(err, appdata.ErrNotFound), errors.Is(err, savefiles.ErrNotFound):
		return scumerrors.NewUserError(err, "Run: dd2scummer doctor")
	default:
		return scumerrors.NewSystemError(err, "")
	}
}
