package commands

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dkaragoz/clockwise/internal/db"
)

var historyCmd = &cobra.Command{
	Use:     "history",
	Aliases: []string{"ls"},
	Short:   "List your logged shifts",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		asJSON, _ := cmd.Flags().GetBool("json")

		if asJSON {
			logs, err := db.GetLogs()
			if err != nil {
				fmt.Printf("Error fetching logs: %v\n", err)
				return
			}
			out, err := json.MarshalIndent(logs, "", "  ")
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			fmt.Println(string(out))
			return
		}

		// Print table header
		fmt.Printf("%-14s %-10s %s\n", "DATE", "CLOCK IN", "CLOCK OUT")
		fmt.Println(strings.Repeat("-", 40))

		empty := true
		for log := range db.AllLogs() {
			empty = false
			fmt.Printf("%-14s %-10s %s\n", log.DisplayDate(), log.LoginDisplay, log.LogoutDisplay)
		}

		if empty {
			fmt.Println("No records yet. Use 'clockwise log' to save your first day.")
		}
	}),
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear your entire shift history",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		yes, _ := cmd.Flags().GetBool("yes")

		count, err := db.CountLogs()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if count == 0 {
			fmt.Println("History is already empty.")
			return
		}

		if !yes && !confirm(fmt.Sprintf("Delete all %d logged shifts?", count)) {
			fmt.Println("Cancelled.")
			return
		}

		if err := db.ClearLogs(); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Println("🗑️  History cleared.")
	}),
}

func init() {
	historyCmd.Flags().Bool("json", false, "Output logs as JSON")
	clearCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
}

// confirm asks a y/n question on stdin
func confirm(question string) bool {
	fmt.Printf("%s [y/N] ", question)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
