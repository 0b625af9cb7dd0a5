package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openparl/parliament-mcp/internal/core/domain"
)

var (
	searchJSON     bool
	searchDateFrom string
	searchDateTo   string
	searchHouse    string
	searchLimit    int

	contribMemberID int64
	contribDebateID string

	questionParty    string
	questionMemberID int64
	questionBody     string

	contributorsPer int
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search indexed Parliament data",
	Long: `Search the indexed Hansard and written question corpora.
With a query, results combine semantic and keyword ranking; without one,
results are filtered browses in chamber or tabling order.`,
}

var searchDebatesCmd = &cobra.Command{
	Use:   "debates [query]",
	Short: "Search debates by title",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSearchDebates,
}

var searchContributionsCmd = &cobra.Command{
	Use:   "contributions [query]",
	Short: "Search spoken contributions",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSearchContributions,
}

var searchQuestionsCmd = &cobra.Command{
	Use:   "questions [query]",
	Short: "Search parliamentary written questions",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSearchQuestions,
}

var searchContributorsCmd = &cobra.Command{
	Use:   "contributors <query>",
	Short: "Find members who speak most on a topic",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearchContributors,
}

func init() {
	searchCmd.PersistentFlags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	searchCmd.PersistentFlags().StringVar(&searchDateFrom, "from", "", "earliest date, YYYY-MM-DD")
	searchCmd.PersistentFlags().StringVar(&searchDateTo, "to", "", "latest date, YYYY-MM-DD")
	searchCmd.PersistentFlags().StringVar(&searchHouse, "house", "", "restrict to Commons or Lords")
	searchCmd.PersistentFlags().IntVarP(&searchLimit, "limit", "n", 0, "maximum number of results")

	searchContributionsCmd.Flags().Int64Var(&contribMemberID, "member", 0, "restrict to one member id")
	searchContributionsCmd.Flags().StringVar(&contribDebateID, "debate", "", "restrict to one debate id")

	searchQuestionsCmd.Flags().StringVar(&questionParty, "party", "", "restrict to one asking party")
	searchQuestionsCmd.Flags().Int64Var(&questionMemberID, "member", 0, "restrict to one asking member id")
	searchQuestionsCmd.Flags().StringVar(&questionBody, "body", "", "restrict to answering bodies containing this phrase")

	searchContributorsCmd.Flags().IntVar(&contributorsPer, "per-member", 0, "contributions retained per member")

	searchCmd.AddCommand(searchDebatesCmd)
	searchCmd.AddCommand(searchContributionsCmd)
	searchCmd.AddCommand(searchQuestionsCmd)
	searchCmd.AddCommand(searchContributorsCmd)
	rootCmd.AddCommand(searchCmd)
}

func queryArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func runSearchDebates(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	debates, err := searchService.SearchDebateTitles(cmd.Context(), domain.DebateSearchRequest{
		Query:      queryArg(args),
		DateFrom:   searchDateFrom,
		DateTo:     searchDateTo,
		House:      searchHouse,
		MaxResults: searchLimit,
	})
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputJSON(cmd, debates)
	}

	if len(debates) == 0 {
		cmd.Println("No debates found.")
		return nil
	}
	for i := range debates {
		cmd.Printf("  [%d] %s (%s, %s)\n", i+1, debates[i].Title,
			debates[i].House, debates[i].Date.Format(domain.ISODate))
		if debates[i].RelevanceScore > 0 {
			cmd.Printf("      Relevance: %.2f over %d contributions\n",
				debates[i].RelevanceScore, debates[i].HitCount)
		}
	}
	return nil
}

func runSearchContributions(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	contributions, err := searchService.SearchContributions(cmd.Context(), domain.ContributionSearchRequest{
		Query:      queryArg(args),
		MemberID:   contribMemberID,
		DateFrom:   searchDateFrom,
		DateTo:     searchDateTo,
		DebateID:   contribDebateID,
		House:      searchHouse,
		MaxResults: searchLimit,
	})
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputJSON(cmd, contributions)
	}

	if len(contributions) == 0 {
		cmd.Println("No contributions found.")
		return nil
	}
	for i := range contributions {
		c := &contributions[i]
		cmd.Printf("  [%d] %s, %s (%s)\n", i+1, c.MemberName, c.DebateTitle,
			c.Date.Format(domain.ISODate))
		cmd.Printf("      %s\n", snippet(c.Text, 160))
	}
	return nil
}

func runSearchQuestions(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	questions, err := searchService.SearchParliamentaryQuestions(cmd.Context(), domain.QuestionSearchRequest{
		Query:             queryArg(args),
		DateFrom:          searchDateFrom,
		DateTo:            searchDateTo,
		Party:             questionParty,
		AskingMemberID:    questionMemberID,
		AnsweringBodyName: questionBody,
		MaxResults:        searchLimit,
	})
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputJSON(cmd, questions)
	}

	if len(questions) == 0 {
		cmd.Println("No questions found.")
		return nil
	}
	for i := range questions {
		q := &questions[i]
		cmd.Printf("  [%d] %s: %s\n", i+1, q.UIN, snippet(q.QuestionText, 120))
		cmd.Printf("      Asked by %s (%s) to %s, tabled %s\n", q.AskingMember.Name,
			q.AskingMember.Party, q.AnsweringBodyName, q.DateTabled.Format(domain.ISODate))
		if q.AnswerText == "" {
			cmd.Println("      Unanswered")
		}
	}
	return nil
}

func runSearchContributors(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	contributors, err := searchService.FindRelevantContributors(cmd.Context(), domain.ContributorSearchRequest{
		Query:            args[0],
		NumContributors:  searchLimit,
		NumContributions: contributorsPer,
		DateFrom:         searchDateFrom,
		DateTo:           searchDateTo,
		House:            searchHouse,
	})
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputJSON(cmd, contributors)
	}

	if len(contributors) == 0 {
		cmd.Println("No contributors found.")
		return nil
	}
	for i := range contributors {
		cmd.Printf("  [%d] %s (%.2f over %d contributions)\n", i+1,
			contributors[i].MemberName, contributors[i].TotalScore,
			len(contributors[i].Contributions))
	}
	return nil
}

func outputJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func snippet(text string, maxLen int) string {
	if len(text) <= maxLen {
		return text
	}
	return text[:maxLen] + "..."
}
