package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bgraf/mdship/config"

	homedir "github.com/mitchellh/go-homedir"
)

var cfgFile string

// rootCmd publishes the local images of the given Markdown documents.
var rootCmd = &cobra.Command{
	Use:   "mdship [DOCUMENT.md...]",
	Short: "Upload local images of Markdown documents and link the uploaded copies",
	Long: `Scans the given Markdown documents for image references with local paths,
uploads every referenced file to the configured bucket and rewrites the
reference to point at the public URL. Image paths are relative to the
document. Arguments not ending in .md are ignored.`,
	Args:          cobra.ArbitraryArgs,
	RunE:          runPublish,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

type flagBinding struct {
	key  string
	flag string
}

var persistentBindings = []flagBinding{
	{config.KeyBucket, "bucket"},
	{config.KeyNamespace, "namespace"},
	{config.KeyPublicBase, "public-base"},
	{config.KeyRegion, "region"},
	{config.KeyProfile, "profile"},
	{config.KeyBackend, "backend"},
	{config.KeyEndpoint, "endpoint"},
	{config.KeyMaxSize, "max-size"},
	{config.KeyLogLevel, "log-level"},
	{config.KeyLogFormat, "log-format"},
}

func init() {
	cobra.OnInitialize(initConfig)

	config.SetDefaults(viper.GetViper())

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.mdship.yaml)")

	flags.String("bucket", "", "Bucket receiving the uploads")
	flags.String("namespace", "", "Key prefix of uploaded objects")
	flags.String("public-base", "", "Public URL base the bucket is served under")
	flags.String("region", "", "Storage region")
	flags.String("profile", "", "Credential profile")
	flags.String("backend", "s3", "Storage backend (s3, minio)")
	flags.String("endpoint", "", "S3-compatible endpoint")
	flags.Int("max-size", 0, "Scale images down to this maximum width or height (0 keeps them)")
	flags.String("log-level", "info", "Log level")
	flags.String("log-format", "console", "Log format (console, json, pretty)")

	for _, b := range persistentBindings {
		if err := viper.BindPFlag(b.key, flags.Lookup(b.flag)); err != nil {
			panic(err)
		}
	}

	rootCmd.Flags().Bool("keep", false, "Keep uploaded source files")
	rootCmd.Flags().Bool("confirm", false, "Ask before deleting uploaded source files")
	rootCmd.Flags().String("report", "", "Write a YAML report of the uploads to this file")

	if err := viper.BindPFlag(config.KeyCleanupConfirm, rootCmd.Flags().Lookup("confirm")); err != nil {
		panic(err)
	}
	if err := viper.BindPFlag(config.KeyReportPath, rootCmd.Flags().Lookup("report")); err != nil {
		panic(err)
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Search config in the working directory, then home, with name ".mdship" (without extension).
		if dir, err := os.Getwd(); err == nil {
			viper.AddConfigPath(dir)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".mdship")
	}

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
