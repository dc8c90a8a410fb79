package cli

import (
	"github.com/alexanderramin/smartfarm/internal/mcp"
	"github.com/spf13/cobra"
)

func newMCPCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the assistant as MCP tools over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv := mcp.NewServer(app.Responder, app.Profiles, app.Version, mcp.WithClock(app.now))
			return srv.Run(cmd.Context())
		},
	}
}
