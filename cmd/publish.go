package cmd

import (
	"fmt"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bgraf/mdship/config"
	"github.com/bgraf/mdship/filesystem"
	"github.com/bgraf/mdship/logging"
	"github.com/bgraf/mdship/publish"
	"github.com/bgraf/mdship/storage"
)

// confirmCleanup asks whether n uploaded source files may be deleted.
var confirmCleanup = func(n int) (bool, error) {
	prompt := &survey.Confirm{
		Message: fmt.Sprintf("Delete %d uploaded source file(s)", n),
		Default: false,
	}

	var confirmed bool
	if err := survey.AskOne(prompt, &confirmed); err != nil {
		return false, err
	}

	return confirmed, nil
}

// newStorage is replaced in tests.
var newStorage = storage.New

func loadSettings(cmd *cobra.Command) config.Settings {
	if keep, err := cmd.Flags().GetBool("keep"); err == nil && keep {
		viper.Set(config.KeyCleanupEnabled, false)
	}

	return config.Load(viper.GetViper())
}

func newLogging(settings config.Settings) (*logging.Provider, error) {
	return logging.NewProvider(logging.Config{
		Level:  settings.LogLevel,
		Format: settings.LogFormat,
	})
}

func publishOptions(settings config.Settings, runID string) publish.Options {
	return publish.Options{
		Bucket:     settings.Bucket,
		Namespace:  settings.Namespace,
		PublicBase: settings.PublicBase,
		MaxSize:    settings.MaxSize,
		Timestamp:  time.Now().UnixMilli(),
		RunID:      runID,
	}
}

func runPublish(cmd *cobra.Command, args []string) error {
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
	logger := provider.GetLogger("mdship")

	store, err := newStorage(cmd.Context(), storage.Options{
		Backend:  settings.Backend,
		Region:   settings.Region,
		Profile:  settings.Profile,
		Endpoint: settings.Endpoint,
	})
	if err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	fsys := filesystem.OS{}
	opts := publishOptions(settings, uuid.NewString())
	pub := publish.New(opts, store, fsys, provider.GetLogger("publish"))

	// Consumed files are cleaned up whether or not the run succeeds.
	defer cleanup(fsys, pub.Consumed(), settings, logger)

	targets, err := pub.Run(cmd.Context(), documents)
	if err != nil {
		return err
	}

	logger.Info("published", "documents", len(documents), "uploads", len(targets), "run", opts.RunID)

	if settings.ReportPath == "" {
		return nil
	}

	return publish.WriteReport(fsys, settings.ReportPath, publish.Report{
		RunID:     opts.RunID,
		Timestamp: opts.Timestamp,
		Targets:   targets,
	})
}

func cleanup(fsys filesystem.FS, consumed *publish.ConsumedFiles, settings config.Settings, logger logging.Logger) {
	if consumed.Len() == 0 || !settings.CleanupEnabled {
		return
	}

	if settings.CleanupConfirm {
		confirmed, err := confirmCleanup(consumed.Len())
		if err != nil {
			logger.Warn("cleanup prompt failed", "error", err)
			return
		}
		if !confirmed {
			return
		}
	}

	removed := publish.Cleanup(fsys, consumed, logger)
	logger.Debug("cleanup done", "removed", removed, "consumed", consumed.Len())
}
