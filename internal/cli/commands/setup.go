// Package commands implements the tidbparse subcommands.
package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/siddontang/tidbparser/internal/cli/config"
	"github.com/siddontang/tidbparser/internal/cli/output"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext builds a CommandContext from the command's context.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := config.FromContext(cmd.Context())
	logger := config.GetLogger(cmd.Context())
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.ParseMode(cfg.Output))
	r.SetColor(cfg.Color)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// source is a named piece of SQL text.
type source struct {
	Name string
	Path string // empty for stdin and inline SQL
	Text string
}

// Helper functions shared across commands

// collectSources resolves positional arguments and --sql into sources.
// "-" reads standard input; file paths are read later, concurrently.
func collectSources(cmd *cobra.Command, args []string, inline string) ([]source, error) {
	var sources []source
	if inline != "" {
		sources = append(sources, source{Name: "<sql>", Text: inline})
	}
	for _, arg := range args {
		if arg == "-" {
			text, err := readAll(cmd.InOrStdin())
			if err != nil {
				return nil, fmt.Errorf("failed to read stdin: %w", err)
			}
			sources = append(sources, source{Name: "<stdin>", Text: text})
			continue
		}
		sources = append(sources, source{Name: arg, Path: arg})
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("no input: pass one or more files, - for stdin, or --sql")
	}
	return sources, nil
}

func readAll(r io.Reader) (string, error) {
	var sb strings.Builder
	if _, err := io.Copy(&sb, r); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// load reads the file behind a source, if any.
func (s *source) load() error {
	if s.Path == "" {
		return nil
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", s.Path, err)
	}
	s.Text = string(data)
	return nil
}
