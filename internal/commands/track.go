package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dkaragoz/clockwise/internal/notify"
	"github.com/dkaragoz/clockwise/internal/parser"
	"github.com/dkaragoz/clockwise/internal/shift"
	"github.com/dkaragoz/clockwise/internal/tui"
)

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Count down the rest of your shift",
	Long: `Open the interactive countdown for today's shift. The login time
defaults to now; use --at to clock in retroactively.

Examples:
  clockwise track              # clocked in just now
  clockwise track --at 09:00   # clocked in at 9:00
  clockwise track --no-ui      # one-shot status line, no TUI`,
	Run: withDB(func(cmd *cobra.Command, args []string) {
		at, _ := cmd.Flags().GetString("at")
		noUI, _ := cmd.Flags().GetBool("no-ui")
		runTrack(at, noUI)
	}),
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show remaining time for a login without the UI",
	Long: `Print a one-shot countdown line for today's shift and exit.

Examples:
  clockwise status             # as if you clocked in just now
  clockwise status --at 09:00  # clocked in at 9:00`,
	Run: func(cmd *cobra.Command, args []string) {
		at, _ := cmd.Flags().GetString("at")
		runTrack(at, true)
	},
}

func runTrack(at string, noUI bool) {
	now := time.Now()

	login, err := parser.ParseLoginInput(at, now)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	timer := shift.NewTimer()
	timer.SetLoginTime(login, now)

	if noUI {
		res, err := timer.Tick(now)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("🕐 Clocked in at %s\n", shift.FormatDisplay(login.Anchor(now)))
		fmt.Printf("Clock out at: %s\n", timer.LogoutDisplay())
		fmt.Printf("%s (%.0f%% through your shift)\n", res.RemainingLabel, res.Progress)
		return
	}

	channel := notify.NewChannel(cfg.Notifications)
	tick := time.Duration(cfg.TickSeconds) * time.Second
	if err := tui.RunShiftTUI(timer, channel, tick); err != nil {
		fmt.Printf("Error: %v\n", err)
	}
}

func init() {
	trackCmd.Flags().String("at", "", "Login time as HH:MM (default: now)")
	trackCmd.Flags().Bool("no-ui", false, "Print a status line instead of the interactive UI")
	statusCmd.Flags().String("at", "", "Login time as HH:MM (default: now)")
}
