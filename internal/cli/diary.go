package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ricofeng/agent-recall/internal/model"
)

func init() {
	diaryCmd := &cobra.Command{
		Use:   "diary",
		Short: "Log and read the daily diary",
	}

	logCmd := &cobra.Command{
		Use:   "log [task]",
		Short: "Log a task or summary for today",
		Long: "Append a task to today's diary entry and/or set today's summary.\n" +
			"Tasks append within a day; the summary is last-write-wins.",
		Run: runDiaryLog,
	}
	logCmd.Flags().StringP("summary", "s", "", "Overwrite today's summary")

	showCmd := &cobra.Command{
		Use:   "show [date]",
		Short: "Show the diary entry for a date (default today)",
		Args:  cobra.MaximumNArgs(1),
		Run:   runDiaryShow,
	}

	diaryCmd.AddCommand(logCmd, showCmd)
	RootCmd.AddCommand(diaryCmd)
}

func runDiaryLog(cmd *cobra.Command, args []string) {
	summary, _ := cmd.Flags().GetString("summary")
	task := strings.Join(args, " ")

	if task == "" && summary == "" {
		exitErr("diary log", fmt.Errorf("nothing to log: give a task or --summary"))
	}

	sess, _, err := openSession()
	if err != nil {
		exitErr("open session", err)
	}

	if err := sess.LogDiary(task, summary); err != nil {
		exitErr("diary log", err)
	}
	fmt.Printf("logged %s\n", model.Today())
}

func runDiaryShow(cmd *cobra.Command, args []string) {
	date := model.Today()
	if len(args) > 0 {
		date = args[0]
	}

	s, _, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}

	doc, err := s.LoadDiary(date)
	if err != nil {
		exitErr("diary show", err)
	}
	if doc == nil {
		fmt.Printf("no diary entry for %s\n", date)
		return
	}
	b, _ := json.MarshalIndent(doc, "", "  ")
	fmt.Println(string(b))
}
