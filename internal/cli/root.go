// Package cli implements the agent-recall CLI commands.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ricofeng/agent-recall/internal/config"
	"github.com/ricofeng/agent-recall/internal/session"
	"github.com/ricofeng/agent-recall/internal/store"
)

var (
	rootFlag    string
	userFlag    string
	agentFlag   string
	verboseFlag bool
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "agent-recall",
	Short: "Persistent per-user memory for agent clients",
	Long: "A local record store for agent memory: owner identity, preferences,\n" +
		"permissions, a daily diary, and searchable problem/solution experiences.\n" +
		"One JSON file per record, single binary.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verboseFlag {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&rootFlag, "root", "r", "", "Storage root (default: $AGENT_RECALL_ROOT or ~/.agent-recall/data)")
	RootCmd.PersistentFlags().StringVarP(&userFlag, "user", "u", "", "User id (default: $AGENT_RECALL_USER or owner)")
	RootCmd.PersistentFlags().StringVarP(&agentFlag, "agent", "a", "", "Agent id (default: $AGENT_RECALL_AGENT or agent_001)")
	RootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Debug logging")
}

// loadConfig resolves config, with set flags winning over env and file.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if rootFlag != "" {
		cfg.Root = rootFlag
	}
	if userFlag != "" {
		cfg.UserID = userFlag
	}
	if agentFlag != "" {
		cfg.AgentID = agentFlag
	}
	if verboseFlag {
		cfg.Verbose = true
	}
	return cfg, nil
}

func openStore() (*store.FileStore, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	s, err := store.NewFileStore(cfg.Root)
	if err != nil {
		return nil, nil, err
	}
	return s, cfg, nil
}

func openSession() (*session.Session, *store.FileStore, error) {
	s, cfg, err := openStore()
	if err != nil {
		return nil, nil, err
	}
	sess, err := session.Open(session.Params{
		UserID:        cfg.UserID,
		AgentID:       cfg.AgentID,
		Store:         s,
		RetentionDays: cfg.DiaryRetentionDays,
	})
	if err != nil {
		return nil, nil, err
	}
	return sess, s, nil
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
