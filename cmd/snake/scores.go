package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresPlayer string
	flagScoresStats  bool
	flagScoresClear  bool
	flagScoresPlain  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the high scores.

On a terminal the scores open in an interactive table; when the output is
piped, or with --plain, a plain text list is printed instead.

Examples:
  snake scores
  snake scores --plain --limit 5
  snake scores --player alice
  snake scores --stats
  snake scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	f := scoresCmd.Flags()
	f.IntVar(&flagScoresLimit, "limit", 10, "Number of scores to print in plain mode")
	f.StringVar(&flagScoresPlayer, "player", "", "Only show scores of this player")
	f.BoolVar(&flagScoresStats, "stats", false, "Show per-player statistics")
	f.BoolVar(&flagScoresClear, "clear", false, "Delete all recorded scores")
	f.BoolVar(&flagScoresPlain, "plain", false, "Print plain text even on a terminal")
}

func runScores(_ *cobra.Command, _ []string) error {
	if flagDBPath == "" {
		return errors.New("scores are disabled (empty --db)")
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	switch {
	case flagScoresClear:
		if err := store.ClearScores(); err != nil {
			return err
		}
		fmt.Println("All scores cleared.")
		return nil
	case flagScoresStats:
		return printPlayerStats(os.Stdout, store)
	case flagScoresPlayer != "":
		scores, err := store.PlayerScores(flagScoresPlayer, flagScoresLimit)
		if err != nil {
			return err
		}
		printScores(os.Stdout, fmt.Sprintf("High Scores - %s", flagScoresPlayer), scores)
		return nil
	}

	fd := int(os.Stdout.Fd())
	if !flagScoresPlain && term.IsTerminal(fd) {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(fd); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	scores, err := store.TopScores(flagScoresLimit)
	if err != nil {
		return err
	}
	printScores(os.Stdout, "High Scores - Snake", scores)
	if len(scores) > 0 {
		if best, err := store.HighScore(); err == nil {
			fmt.Printf("\nBest: %d\n", best)
		}
	}
	return nil
}

func printScores(w io.Writer, title string, scores []storage.ScoreEntry) {
	fmt.Fprintln(w, title)
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'snake play' to set the first high score!")
		return
	}

	// Print header
	fmt.Fprintf(w, "  %-4s  %-12s  %-6s  %-7s  %s\n", "Rank", "Player", "Score", "Grid", "Date")
	fmt.Fprintf(w, "  %-4s  %-12s  %-6s  %-7s  %s\n", "----", "------", "-----", "----", "----")

	for i, entry := range scores {
		fmt.Fprintf(w, "  %-4d  %-12s  %-6d  %-7s  %s\n",
			i+1,
			entry.Player,
			entry.Score,
			fmt.Sprintf("%dx%d", entry.GridSize, entry.GridSize),
			entry.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
}

func printPlayerStats(w io.Writer, store *storage.Store) error {
	stats, err := store.GetPlayerStats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		return nil
	}

	players := make([]string, 0, len(stats))
	for name := range stats {
		players = append(players, name)
	}
	sort.Slice(players, func(i, j int) bool {
		return stats[players[i]].HighScore > stats[players[j]].HighScore
	})

	fmt.Fprintf(w, "  %-12s  %-6s  %-5s  %-6s  %s\n", "Player", "Games", "Best", "Avg", "Last played")
	fmt.Fprintf(w, "  %-12s  %-6s  %-5s  %-6s  %s\n", "------", "-----", "----", "---", "-----------")
	for _, name := range players {
		s := stats[name]
		fmt.Fprintf(w, "  %-12s  %-6d  %-5d  %-6.1f  %s\n",
			name, s.GamesCount, s.HighScore, s.AvgScore, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
