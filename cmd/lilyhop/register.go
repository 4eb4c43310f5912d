package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lilyhop/internal/session"
)

var registerCmd = &cobra.Command{
	Use:   "register <nickname>",
	Short: "Remember a nickname for the leaderboard",
	Long: `Remember a nickname so 'lilyhop play' starts straight away.
Nicknames are trimmed and may be up to 20 characters long.

Examples:
  lilyhop register pondking`,
	Args: cobra.ExactArgs(1),
	Run:  runRegister,
}

func runRegister(_ *cobra.Command, args []string) {
	nickname, err := session.ValidateNickname(args[0])
	if err != nil {
		fatalf("%v", err)
	}

	logger := newLogger(os.Stderr, "lilyhop")
	ctrl, store := openSession(loadGameConfig(), logger)
	if store == nil {
		fatalf("cannot open database %s", flagDBPath)
	}
	defer store.Close()

	ctrl.Remember(nickname)
	fmt.Printf("Registered %q (best: %d)\n", ctrl.Nickname(), ctrl.HighScore())
}
