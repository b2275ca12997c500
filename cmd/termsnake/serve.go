package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/termsnake/internal/config"
	"github.com/vovakirdan/termsnake/internal/platform/tui"
)

var (
	flagSSHAddr string
	flagHostKey string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start SSH server for remote play",
	Long: `Start an SSH server that serves a game session per connection.

Players connect with:
  ssh -p 23235 <host>

Examples:
  termsnake serve
  termsnake serve --ssh :2222
  termsnake serve --host-key ./host_key`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH listen address")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key (auto-generated if empty)")
}

func runServe(cmd *cobra.Command, args []string) {
	fileCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	srvCfg := tui.DefaultSSHServerConfig()
	srvCfg.Address = flagSSHAddr
	srvCfg.HostKeyPath = flagHostKey
	srvCfg.DBPath = flagDBPath
	srvCfg.Game = fileCfg

	server, err := tui.NewSSHServer(srvCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating SSH server: %v\n", err)
		os.Exit(1)
	}

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
