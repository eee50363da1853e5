package main

import (
	"fmt"
	"strings"

	"github.com/cartwise/backend/internal/display"
	"github.com/cartwise/backend/internal/taxonomy"
	"github.com/cartwise/backend/internal/usecase"
	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match <query>",
	Short: "Show the best category for a query",
	Example: `  catmatch match laptop
  catmatch match "usb-c cable" --threshold 0.5 --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMatch,
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "List every category scoring above the threshold, best first",
	Example: `  catmatch search gaming
  catmatch search camera --limit 3 --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

var suggestCmd = &cobra.Command{
	Use:     "suggest <search text>",
	Short:   "Suggest a category for a shopper's search text",
	Example: `  catmatch suggest "buy a new gaming mouse"`,
	Args:    cobra.MinimumNArgs(1),
	RunE:    runSuggest,
}

var getCmd = &cobra.Command{
	Use:     "get <id>",
	Short:   "Show the category with the given id",
	Example: `  catmatch get abcat0502000`,
	Args:    cobra.ExactArgs(1),
	RunE:    runGet,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List picker categories, one group, or the whole taxonomy",
	Example: `  catmatch list
  catmatch list --group gaming
  catmatch list --all --json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	matchCmd.Flags().Float64Var(&flagThreshold, "threshold", -1, "Minimum score (default 0.3)")

	searchCmd.Flags().Float64Var(&flagThreshold, "threshold", -1, "Minimum score (default 0.2)")
	searchCmd.Flags().IntVarP(&flagLimit, "limit", "n", usecase.DefaultSearchLimit, "Maximum number of results (0 = all)")

	listCmd.Flags().BoolVar(&flagAll, "all", false, "List the whole taxonomy")
	listCmd.Flags().StringVarP(&flagGroup, "group", "g", "", "List one group ("+strings.Join(taxonomy.Default().GroupNames(), ", ")+")")

	rootCmd.AddCommand(matchCmd, searchCmd, suggestCmd, getCmd, listCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	matcher := newMatcher()

	threshold, err := thresholdOr(matcher.Config().FindThreshold)
	if err != nil {
		return err
	}

	match := matcher.FindCategory(query, threshold)
	if match == nil {
		return notFoundError(
			fmt.Sprintf("no category matches %q", query),
			fmt.Sprintf("catmatch search %q", query),
		)
	}

	if flagJSON {
		return display.PrintMatchJSON(cmd.OutOrStdout(), *match)
	}
	display.PrintMatch(cmd.OutOrStdout(), query, *match)
	return nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	matcher := newMatcher()

	threshold, err := thresholdOr(matcher.Config().SearchThreshold)
	if err != nil {
		return err
	}
	if flagLimit < 0 {
		return invalidArgsError("invalid value for --limit (use 0 or a positive number)", "catmatch search gaming --limit 5")
	}

	matches := matcher.FindCategories(query, flagLimit, threshold)

	if flagJSON {
		return display.PrintMatchesJSON(cmd.OutOrStdout(), matches)
	}
	if len(matches) == 0 {
		return notFoundError(fmt.Sprintf("no categories match %q", query))
	}
	display.PrintMatches(cmd.OutOrStdout(), query, matches)
	return nil
}

func runSuggest(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	match := newMatcher().SuggestCategoryForSearch(query)
	if match == nil {
		return notFoundError(fmt.Sprintf("no category suggestion for %q", query))
	}

	if flagJSON {
		return display.PrintMatchJSON(cmd.OutOrStdout(), *match)
	}
	display.PrintMatch(cmd.OutOrStdout(), query, *match)
	return nil
}

func runGet(cmd *cobra.Command, args []string) error {
	entry := newMatcher().GetCategoryByID(args[0])
	if entry == nil {
		return notFoundError(
			fmt.Sprintf("no category with id %s", args[0]),
			"catmatch list --all",
		)
	}

	if flagJSON {
		return display.PrintCategoryJSON(cmd.OutOrStdout(), *entry)
	}
	display.PrintCategory(cmd.OutOrStdout(), *entry)
	return nil
}

func runList(cmd *cobra.Command, _ []string) error {
	store := taxonomy.Default()

	title := "Picker categories"
	entries := store.Picker()
	switch {
	case flagGroup != "":
		var ok bool
		entries, ok = store.Group(flagGroup)
		if !ok {
			return invalidArgsError(
				fmt.Sprintf("unknown group %q", flagGroup),
				"Groups: "+strings.Join(store.GroupNames(), ", "),
			)
		}
		title = "Group " + flagGroup
	case flagAll:
		title = "All categories"
		entries = store.Entries()
	}

	if flagJSON {
		return display.PrintCategoriesJSON(cmd.OutOrStdout(), entries)
	}
	display.PrintCategories(cmd.OutOrStdout(), title, entries)
	return nil
}
