package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ricofeng/agent-recall/internal/model"
)

func init() {
	prefCmd := &cobra.Command{
		Use:   "pref",
		Short: "Read and write owner preferences",
	}

	setCmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a preference",
		Long: "Set a preference. Declared keys (talk_style, common_words) are written\n" +
			"directly; anything else lands in the custom bag. Values parse as JSON\n" +
			"where possible, otherwise as plain strings.",
		Args: cobra.ExactArgs(2),
		Run:  runPrefSet,
	}

	getCmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Get a preference",
		Args:  cobra.ExactArgs(1),
		Run:   runPrefGet,
	}

	prefCmd.AddCommand(setCmd, getCmd)
	RootCmd.AddCommand(prefCmd)
}

func runPrefSet(cmd *cobra.Command, args []string) {
	if args[0] == "talk_style" && !model.ValidTalkStyles[args[1]] {
		exitErr("pref set", fmt.Errorf("invalid talk_style %q (concise, natural, strict)", args[1]))
	}

	sess, _, err := openSession()
	if err != nil {
		exitErr("open session", err)
	}

	if err := sess.SetPreference(args[0], parseValue(args[1])); err != nil {
		exitErr("pref set", err)
	}
	fmt.Printf("%s set\n", args[0])
}

func runPrefGet(cmd *cobra.Command, args []string) {
	sess, _, err := openSession()
	if err != nil {
		exitErr("open session", err)
	}

	v, ok := sess.GetPreference(args[0])
	if !ok {
		fmt.Println("null")
		return
	}
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}

// parseValue interprets a flag value as JSON when it parses, so numbers,
// booleans, lists and objects survive, and falls back to a plain string.
func parseValue(raw string) any {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err == nil {
		return v
	}
	return raw
}
