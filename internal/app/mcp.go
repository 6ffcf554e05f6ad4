package app

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/huvdesign/brandcheck/internal/diagnosis"
	"github.com/huvdesign/brandcheck/internal/mcp"
)

var mcpNoStore bool

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run an MCP stdio server exposing the diagnosis tools",
	Long: `Start a Model Context Protocol stdio server. The server exposes:

  analyze_scores    Diagnose twelve answers with an optional phase and memo
  list_questions    The questionnaire items
  get_report        Current report of a stored submission
  list_submissions  Most recent stored submissions

Add to an MCP client configuration:
  {"mcpServers":{"brandcheck":{"command":"brandcheck","args":["mcp"]}}}`,
	RunE: runMCP,
}

func init() {
	mcpCmd.Flags().BoolVar(&mcpNoStore, "no-store", false, "Expose only the stateless tools")
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	opts := []mcp.Option{mcp.WithLogger(log), mcp.WithVersion(appVersion)}
	if !mcpNoStore {
		svc, closeDB, err := openService(cfg, log)
		if err != nil {
			return err
		}
		defer closeDB()
		opts = append(opts, mcp.WithReports(svc))
	}

	srv := mcp.NewServer(diagnosis.NewEngine(), opts...)
	return srv.Run(cmd.Context(), os.Stdin, os.Stdout)
}
