package main

import (
	"github.com/spf13/cobra"

	"github.com/davetashner/icudash/internal/filter"
	"github.com/davetashner/icudash/internal/term"
)

// Snapshot command flags.
var (
	snapshotAcuity    string
	snapshotAdmission string
	snapshotJSON      bool
)

// snapshotCmd loads the dashboard once and prints it.
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Load the dashboard once and print it",
	Long: `Load the dashboard once with the configured date range and unit and print
it. --acuity or --admission then drills into one chart segment, exactly as
clicking it would.

Examples:
  icudash snapshot --unit MICU
  icudash snapshot --date-range "Last 7 Days" --acuity Critical
  icudash snapshot --admission ER --json`,
	Args: cobra.NoArgs,
	RunE: runSnapshot,
}

func init() {
	snapshotCmd.Flags().StringVar(&snapshotAcuity, "acuity", "", "drill down to one acuity level")
	snapshotCmd.Flags().StringVar(&snapshotAdmission, "admission", "", "drill down to one admission source")
	snapshotCmd.Flags().BoolVar(&snapshotJSON, "json", false, "print the dashboard as JSON")
	snapshotCmd.MarkFlagsMutuallyExclusive("acuity", "admission")
}

func runSnapshot(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	sess := newSession(settings)
	ctx := cmd.Context()

	loadErr := sess.Dashboard.Start(ctx)
	if loadErr == nil {
		switch {
		case snapshotAcuity != "":
			loadErr = sess.Dashboard.Router().DrillDown(ctx, filter.KeyAcuityLevel, snapshotAcuity)
		case snapshotAdmission != "":
			loadErr = sess.Dashboard.Router().DrillDown(ctx, filter.KeyAdmissionSource, snapshotAdmission)
		}
	}

	if err := printSession(cmd, sess); err != nil {
		return err
	}
	if loadErr != nil {
		return exitError(ExitLoadFailed, "icudash: dashboard load failed: %v", loadErr)
	}
	return nil
}

func printSession(cmd *cobra.Command, sess *term.Session) error {
	if snapshotJSON {
		return sess.Snapshot().WriteJSON(cmd.OutOrStdout())
	}
	return sess.Render(cmd.OutOrStdout())
}
