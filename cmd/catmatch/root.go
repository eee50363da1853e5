package main

import (
	"fmt"
	"io"

	"github.com/cartwise/backend/internal/taxonomy"
	"github.com/cartwise/backend/internal/usecase"
	"github.com/spf13/cobra"
)

var (
	flagJSON      bool
	flagDebug     bool
	flagThreshold float64
	flagLimit     int
	flagAll       bool
	flagGroup     string
)

var rootCmd = &cobra.Command{
	Use:   "catmatch",
	Short: "Match shopping queries against the built-in category taxonomy",
	Long: "CLI tool that resolves free-text product queries to catalog categories\n" +
		"using the same scoring as the CartWise backend. Works offline.",
	Example: `  catmatch match laptop
  catmatch search "gaming" --limit 5
  catmatch suggest "buy a new gaming mouse"
  catmatch get abcat0502000 --json
  catmatch list --group tv`,
}

func init() {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&flagJSON, "json", false, "Output as JSON")
	pf.BoolVar(&flagDebug, "debug", false, "Log per-category scores")
}

func runCLI(args []string, stdout, stderr io.Writer) int {
	resetCLIState()

	setCommandIO(rootCmd, stdout, stderr)
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		cliErr := classifyCLIError(err)
		if hasJSONPreference(args) {
			if jerr := printCLIErrorJSON(stderr, cliErr); jerr != nil {
				fmt.Fprintln(stderr, formatCLIErrorText(classifyCLIError(jerr)))
				return ExitInternal
			}
		} else {
			fmt.Fprintln(stderr, formatCLIErrorText(cliErr))
		}
		return cliErr.ExitCode
	}
	return ExitSuccess
}

func setCommandIO(cmd *cobra.Command, stdout, stderr io.Writer) {
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	for _, child := range cmd.Commands() {
		setCommandIO(child, stdout, stderr)
	}
}

// resetCLIState clears flag values left over from a previous run in the same process
func resetCLIState() {
	flagJSON = false
	flagDebug = false
	flagThreshold = -1
	flagLimit = usecase.DefaultSearchLimit
	flagAll = false
	flagGroup = ""
}

func newMatcher() *usecase.MatchingService {
	config := usecase.DefaultMatchConfig()
	config.EnableDebugLogging = flagDebug
	return usecase.NewMatchingService(taxonomy.Default(), config)
}

// thresholdOr returns the --threshold value, or fallback when the flag is unset
func thresholdOr(fallback float64) (float64, error) {
	if flagThreshold < 0 {
		return fallback, nil
	}
	if flagThreshold > 1 {
		return 0, invalidArgsError(
			fmt.Sprintf("invalid value for --threshold: %v (use a number between 0 and 1)", flagThreshold),
			"catmatch match laptop --threshold 0.5",
		)
	}
	return flagThreshold, nil
}
