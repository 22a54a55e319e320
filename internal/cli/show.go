package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Dump the full memory aggregate",
		Long:  "Print the user's whole Memory record as JSON, nested entities included.",
		Run:   runShow,
	}

	RootCmd.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, args []string) {
	sess, _, err := openSession()
	if err != nil {
		exitErr("open session", err)
	}

	b, _ := json.MarshalIndent(sess.Snapshot(), "", "  ")
	fmt.Println(string(b))
}
