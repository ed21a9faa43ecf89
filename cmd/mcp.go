package cmd

import (
	"github.com/gaurabsaha12345/master-prompter/internal/tools"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP stdio server exposing the prompter tools",
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.ServeStdio(tools.NewServer())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
