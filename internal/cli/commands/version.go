package commands

import (
	"fmt"
	"strings"

	"github.com/siddontang/tidbparser/pkg/dialect"
	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display tidbparse version and the registered SQL dialects.`,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "tidbparse v%s\n", version)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "TiDB SQL parser (dialects: %s)\n", strings.Join(dialect.List(), ", "))
		},
	}
}
