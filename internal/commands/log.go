package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dkaragoz/clockwise/internal/db"
	"github.com/dkaragoz/clockwise/internal/parser"
	"github.com/dkaragoz/clockwise/internal/shift"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Log today's shift to the history",
	Long: `Compute today's shift from the login time and save it. Only one
log per day is kept; pass --overwrite to replace an existing one.

Examples:
  clockwise log                # clocked in just now
  clockwise log --at 09:00     # clocked in at 9:00
  clockwise log --at 09:00 --overwrite`,
	Run: withDB(func(cmd *cobra.Command, args []string) {
		at, _ := cmd.Flags().GetString("at")
		overwrite, _ := cmd.Flags().GetBool("overwrite")

		now := time.Now()
		login, err := parser.ParseLoginInput(at, now)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		timer := shift.NewTimer()
		timer.SetLoginTime(login, now)

		entry, err := timer.SaveShift(now)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		saved, err := db.SaveLog(entry, overwrite)
		if err != nil {
			if errors.Is(err, db.ErrDuplicateDate) {
				fmt.Println("You already have a log for today. Re-run with --overwrite to replace it.")
				return
			}
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("✅ Logged %s: %s → %s\n", saved.DisplayDate(), saved.LoginDisplay, saved.LogoutDisplay)
	}),
}

func init() {
	logCmd.Flags().String("at", "", "Login time as HH:MM (default: now)")
	logCmd.Flags().Bool("overwrite", false, "Replace an existing log for today")
}
