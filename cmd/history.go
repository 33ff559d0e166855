/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/valpere/perevodchik/internal/config"
	"github.com/valpere/perevodchik/internal/store"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect the inference call journal",
	Long: `List, summarize, and clear the SQLite journal of inference calls.

The journal is written by "serve" and "translate" when --journal
(or PEREVODCHIK_JOURNAL) is set. It is never used to answer requests.`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded calls, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openHistory(cmd)
		if err != nil {
			return err
		}
		defer db.Close()

		records, err := db.List(cmd.Context(), historyLimit)
		if err != nil {
			return fmt.Errorf("failed to list calls: %w", err)
		}

		if len(records) == 0 {
			fmt.Println("No calls in the journal.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "TIME\tACTION\tMODEL\tLANGUAGE\tCHARS\tOK\tLATENCY\tERROR")
		for _, r := range records {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%v\t%dms\t%s\n",
				r.CreatedAt.Format("2006-01-02 15:04:05"), r.Action, r.Model,
				r.TargetLanguage, r.PromptChars, r.Success, r.LatencyMs, r.Error)
		}
		return w.Flush()
	},
}

var historyStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show call journal statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openHistory(cmd)
		if err != nil {
			return err
		}
		defer db.Close()

		stats, err := db.Stats(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get stats: %w", err)
		}

		fmt.Printf("Total calls:    %d\n", stats.Total)
		fmt.Printf("Succeeded:      %d\n", stats.Succeeded)
		fmt.Printf("Failed:         %d\n", stats.Failed)
		fmt.Printf("Avg latency:    %.0fms\n", stats.AvgLatencyMs)
		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all calls from the journal",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openHistory(cmd)
		if err != nil {
			return err
		}
		defer db.Close()

		n, err := db.Clear(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to clear journal: %w", err)
		}
		fmt.Printf("Cleared %d calls from the journal.\n", n)
		return nil
	},
}

func openHistory(cmd *cobra.Command) (*store.Store, error) {
	if err := bindFlags(cmd, config.KeyJournal); err != nil {
		return nil, err
	}
	path := v.GetString(config.KeyJournal)
	if path == "" {
		return nil, errors.New("no journal configured: pass --journal or set PEREVODCHIK_JOURNAL")
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("journal not found: %w", err)
	}
	return openJournal(path)
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.PersistentFlags().String(config.KeyJournal, "", "SQLite call journal path")
	historyListCmd.Flags().IntVarP(&historyLimit, "limit", "n", 50, "Maximum number of calls to show (0 for all)")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyStatsCmd)
	historyCmd.AddCommand(historyClearCmd)
}
