package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ricofeng/agent-recall/internal/model"
)

func init() {
	permCmd := &cobra.Command{
		Use:   "perm",
		Short: "Manage stored permission grants",
		Long: "Manage the owner's permission grants. These are stored facts about\n" +
			"what the owner allowed, not enforced policy. All grants start false.",
	}

	grantCmd := &cobra.Command{
		Use:       "grant <name>",
		Short:     "Grant a permission",
		Args:      cobra.ExactArgs(1),
		ValidArgs: model.PermissionNames,
		Run: func(cmd *cobra.Command, args []string) {
			setPermission(args[0], true)
		},
	}

	revokeCmd := &cobra.Command{
		Use:       "revoke <name>",
		Short:     "Revoke a permission",
		Args:      cobra.ExactArgs(1),
		ValidArgs: model.PermissionNames,
		Run: func(cmd *cobra.Command, args []string) {
			setPermission(args[0], false)
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all permission grants",
		Run:   runPermList,
	}

	permCmd.AddCommand(grantCmd, revokeCmd, listCmd)
	RootCmd.AddCommand(permCmd)
}

func setPermission(name string, granted bool) {
	sess, _, err := openSession()
	if err != nil {
		exitErr("open session", err)
	}

	if err := sess.SetPermission(name, granted); err != nil {
		exitErr("perm", fmt.Errorf("%w (known: %s)", err, strings.Join(model.PermissionNames, ", ")))
	}
	fmt.Printf("%s = %t\n", name, granted)
}

func runPermList(cmd *cobra.Command, args []string) {
	sess, _, err := openSession()
	if err != nil {
		exitErr("open session", err)
	}

	b, _ := json.MarshalIndent(sess.Memory().Permissions.Document(), "", "  ")
	fmt.Println(string(b))
}
