package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/Ayoub-D1/downloads-organizer/internal/config"
	"github.com/Ayoub-D1/downloads-organizer/internal/organizer"
	"github.com/Ayoub-D1/downloads-organizer/internal/output"
	"github.com/Ayoub-D1/downloads-organizer/internal/rules"
	"github.com/Ayoub-D1/downloads-organizer/internal/util"
)

var version = "dev"

func main() {
	cfg := config.New()
	opts := &organizer.Options{}
	var logger util.Logger
	var quietMode bool
	var verboseMode bool
	var excludeSpec string
	var maxSizeSpec string

	var rootCmd = &cobra.Command{
		Use:   "downloads-organizer [dir]",
		Short: "Organize a flat directory into category subdirectories",
		Long: "Organize a flat directory into category subdirectories by file extension\n\n" +
			"Without an argument the platform downloads folder is organized.\n\n" +
			"Exit codes:\n  0 - Success\n  1 - Fatal error (directory missing or locked)\n  2 - Completed, but some files could not be moved",
		Args: cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if quietMode {
				logger = util.NewLogger(io.Discard)
			} else if verboseMode {
				logger = util.NewVerboseLogger(os.Stdout)
			} else {
				logger = util.NewLogger(os.Stdout)
			}
		},
		Run: func(cmd *cobra.Command, args []string) {
			sourceDir := cfg.SourceDir
			if len(args) > 0 {
				sourceDir = args[0]
			}
			if sourceDir == "" {
				sourceDir = config.DetectDownloadsDir()
			}

			if cfg.LogFile != "" {
				f, err := util.OpenLogFile(cfg.LogFile)
				if err != nil {
					fmt.Println(err)
					os.Exit(1)
				}
				defer f.Close()
				logger = util.NewFileLogger(logger, f)
			}

			table, err := loadTable(cfg.RulesFile)
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}

			if maxSizeSpec != "" {
				size, err := util.ParseSize(maxSizeSpec)
				if err != nil {
					fmt.Println(err)
					os.Exit(1)
				}
				cfg.MaxFileSize = size
			}

			opts.Table = table
			opts.Logger = logger
			opts.Exclude = util.ParseGlobSet(excludeSpec)
			opts.MaxFileSize = cfg.MaxFileSize
			opts.QuietMode = quietMode
			opts.Verbose = verboseMode
			opts.ShowProgress = util.IsATTY() && !quietMode && !verboseMode

			report, status, err := organizer.Run(sourceDir, opts)
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			if opts.DryRun {
				printPlan(logger, report)
			} else {
				report.PrintSummary()
			}
			if status != organizer.StatusSuccess {
				os.Exit(int(status))
			}
		},
	}

	rootCmd.Flags().StringVar(&cfg.RulesFile, "rules", cfg.RulesFile, "YAML rules file replacing the built-in extension table (defaults to DOWNLOADS_ORGANIZER_RULES env var)")
	rootCmd.Flags().StringVar(&cfg.LogFile, "log-file", "", "Append a timestamped copy of all output to this file")
	rootCmd.Flags().StringVarP(&excludeSpec, "exclude", "e", "", "Glob pattern(s) for files to leave in place (e.g. '*.iso', '*.iso,!ubuntu-*.iso')")
	rootCmd.Flags().StringVar(&maxSizeSpec, "max-size", "", "Skip files larger than this, e.g. 512MB or 10GB (default 10GB, 0 disables)")
	rootCmd.Flags().BoolVarP(&opts.DryRun, "dry-run", "n", false, "Print planned moves without touching the file system")
	rootCmd.Flags().BoolVar(&opts.NoLock, "no-lock", false, "Skip the source-directory lock")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Suppress all output")
	rootCmd.PersistentFlags().BoolVarP(&verboseMode, "verbose", "v", false, "Per-file detail, including skip reasons")

	var categoriesCmd = &cobra.Command{
		Use:   "categories",
		Short: "Print the active extension table",
		Run: func(cmd *cobra.Command, args []string) {
			table, err := loadTable(cfg.RulesFile)
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			for _, category := range table.Categories() {
				exts := table.Extensions(category)
				if len(exts) == 0 {
					logger.Printf("%-12s (fallback)\n", category)
					continue
				}
				logger.Printf("%-12s", category)
				for _, ext := range exts {
					logger.Printf(" %s", ext)
				}
				logger.Println()
			}
		},
	}
	categoriesCmd.Flags().StringVar(&cfg.RulesFile, "rules", cfg.RulesFile, "YAML rules file replacing the built-in extension table")

	var versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("downloads-organizer version %s\n", version)
		},
	}

	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func loadTable(rulesFile string) (*rules.Table, error) {
	if rulesFile == "" {
		return rules.Default(), nil
	}
	return rules.Load(rulesFile)
}

// printPlan lists the dry-run moves grouped by category.
func printPlan(logger util.Logger, report *output.Report) {
	byCategory := report.MovedByCategory()
	if len(byCategory) == 0 {
		logger.Println("Nothing to move")
		return
	}
	total := 0
	for _, category := range sortedKeys(byCategory) {
		files := byCategory[category]
		logger.Printf("%s/\n", category)
		for _, name := range files {
			logger.Printf("  %s\n", name)
		}
		total += len(files)
	}
	logger.Printf("Would move %d files\n", total)
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
