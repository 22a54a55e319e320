package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ricofeng/agent-recall/internal/model"
	"github.com/ricofeng/agent-recall/internal/session"
)

func init() {
	expCmd := &cobra.Command{
		Use:   "exp",
		Short: "Record and read problem/solution experiences",
	}

	addCmd := &cobra.Command{
		Use:   "add <problem>",
		Short: "Record a new experience",
		Long:  "Record an immutable experience. Prints the generated exp id.",
		Args:  cobra.MinimumNArgs(1),
		Run:   runExpAdd,
	}
	addCmd.Flags().StringArrayP("solution", "s", nil, "Solution step (repeatable, in order)")
	addCmd.Flags().StringP("tags", "t", "", "Comma-separated tags")
	addCmd.Flags().String("level", "normal", "Severity: normal, important, critical")
	addCmd.Flags().String("error-raw", "", "Raw error text")
	addCmd.Flags().String("cause", "", "Root cause")
	addCmd.Flags().Bool("verified", false, "Solution was verified to work")

	getCmd := &cobra.Command{
		Use:   "get <exp_id>",
		Short: "Show one experience",
		Args:  cobra.ExactArgs(1),
		Run:   runExpGet,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all experiences",
		Run:   runExpList,
	}

	expCmd.AddCommand(addCmd, getCmd, listCmd)
	RootCmd.AddCommand(expCmd)
}

func runExpAdd(cmd *cobra.Command, args []string) {
	solution, _ := cmd.Flags().GetStringArray("solution")
	tagsStr, _ := cmd.Flags().GetString("tags")
	level, _ := cmd.Flags().GetString("level")
	errorRaw, _ := cmd.Flags().GetString("error-raw")
	cause, _ := cmd.Flags().GetString("cause")
	verified, _ := cmd.Flags().GetBool("verified")

	if !model.ValidLevels[level] {
		exitErr("exp add", fmt.Errorf("invalid level %q (normal, important, critical)", level))
	}

	var tags []string
	if tagsStr != "" {
		for _, t := range strings.Split(tagsStr, ",") {
			if t = strings.TrimSpace(t); t != "" {
				tags = append(tags, t)
			}
		}
	}

	sess, _, err := openSession()
	if err != nil {
		exitErr("open session", err)
	}

	expID, err := sess.AddExperience(session.ExperienceParams{
		Problem:  strings.Join(args, " "),
		Solution: solution,
		Tags:     tags,
		ErrorRaw: errorRaw,
		Cause:    cause,
		Level:    level,
		Verified: verified,
	})
	if err != nil {
		exitErr("exp add", err)
	}
	fmt.Println(expID)
}

func runExpGet(cmd *cobra.Command, args []string) {
	sess, _, err := openSession()
	if err != nil {
		exitErr("open session", err)
	}

	doc, err := sess.GetExperience(args[0])
	if err != nil {
		exitErr("exp get", err)
	}
	if doc == nil {
		fmt.Printf("no experience %s\n", args[0])
		return
	}
	b, _ := json.MarshalIndent(doc, "", "  ")
	fmt.Println(string(b))
}

func runExpList(cmd *cobra.Command, args []string) {
	s, _, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}

	docs, err := s.ListExperiences()
	if err != nil {
		exitErr("exp list", err)
	}
	if len(docs) == 0 {
		fmt.Println("[]")
		return
	}
	b, _ := json.MarshalIndent(docs, "", "  ")
	fmt.Println(string(b))
}
