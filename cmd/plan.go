package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bgraf/mdship/filesystem"
	"github.com/bgraf/mdship/publish"
)

// planCmd represents the plan command
var planCmd = &cobra.Command{
	Use:   "plan [DOCUMENT.md...]",
	Short: "Show the uploads a run would perform",
	Long: `Resolves every local image of the given documents and prints object key,
content type and public URL as YAML. Nothing is uploaded, written or deleted.`,
	RunE: runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	documents := filesystem.SelectDocuments(args)
	if len(documents) == 0 {
		return nil
	}

	settings := loadSettings(cmd)
	if err := settings.Validate(); err != nil {
		return err
	}

	provider, err := newLogging(settings)
	if err != nil {
		return err
	}

	opts := publishOptions(settings, "")
	pub := publish.New(opts, nil, filesystem.OS{}, provider.GetLogger("plan"))

	targets, err := pub.Plan(documents)
	if err != nil {
		return err
	}

	data, err := publish.Report{Timestamp: opts.Timestamp, Targets: targets}.Marshal()
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), string(data))
	return err
}
