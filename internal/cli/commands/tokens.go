package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/siddontang/tidbparser/internal/cli/output"
	"github.com/siddontang/tidbparser/pkg/dialect"
	"github.com/siddontang/tidbparser/pkg/parser"
	"github.com/siddontang/tidbparser/pkg/token"
	"github.com/spf13/cobra"

	// Register the dialects selectable with --dialect.
	_ "github.com/siddontang/tidbparser/pkg/dialects/ansi"
	_ "github.com/siddontang/tidbparser/pkg/dialects/mysql"
)

// TokensOptions holds options for the tokens command.
type TokensOptions struct {
	SQL     string
	Dialect string
}

// TokenResult describes one lexical token.
type TokenResult struct {
	Type    string `json:"type" yaml:"type"`
	Literal string `json:"literal" yaml:"literal"`
	Line    int    `json:"line" yaml:"line"`
	Column  int    `json:"column" yaml:"column"`
}

// NewTokensCommand creates the tokens command.
func NewTokensCommand() *cobra.Command {
	opts := &TokensOptions{}

	cmd := &cobra.Command{
		Use:   "tokens [FILE]",
		Short: "Print the token stream of a SQL script",
		Example: `  # Show how a statement is tokenized
  tidbparse tokens --sql "ADMIN SHOW DDL JOBS 3"

  # Tokenize a file with the ANSI dialect
  tidbparse tokens --dialect ansi query.sql`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.SQL, "sql", "", "Tokenize an inline SQL string")
	cmd.Flags().StringVar(&opts.Dialect, "dialect", "mysql", "Lexical dialect ("+strings.Join(dialect.List(), "|")+")")
	_ = cmd.RegisterFlagCompletionFunc("dialect", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return dialect.List(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runTokens(cmd *cobra.Command, args []string, opts *TokensOptions) error {
	cc := NewCommandContext(cmd)
	d, ok := dialect.Get(opts.Dialect)
	if !ok {
		return fmt.Errorf("unknown dialect %q (available: %s)", opts.Dialect, strings.Join(dialect.List(), ", "))
	}

	sources, err := collectSources(cmd, args, opts.SQL)
	if err != nil {
		return err
	}
	src := sources[0]
	if err := src.load(); err != nil {
		return err
	}

	tokens, err := parser.Tokenize(src.Text, d)
	if err != nil {
		return fmt.Errorf("%s: %w", src.Name, err)
	}
	cc.Logger.Debug("tokenized", "input", src.Name, "dialect", d.Name, "tokens", len(tokens))

	return renderTokens(cc.Renderer, tokens)
}

func renderTokens(r *output.Renderer, tokens []token.Token) error {
	results := make([]TokenResult, len(tokens))
	for i, tok := range tokens {
		results[i] = TokenResult{
			Type:    tok.Type.String(),
			Literal: tok.Literal,
			Line:    tok.Pos.Line,
			Column:  tok.Pos.Column,
		}
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(results)
	case output.ModeYAML:
		return r.YAML(results)
	case output.ModeDebug:
		r.Debug(tokens)
	case output.ModeText:
		styles := r.Styles()
		for _, tok := range results {
			r.Printf("%-6s %-12s %s\n", strconv.Itoa(tok.Line)+":"+strconv.Itoa(tok.Column), styles.Keyword.Render(tok.Type), tok.Literal)
		}
	default:
		rows := make([][]string, len(results))
		for i, tok := range results {
			rows[i] = []string{strconv.Itoa(i + 1), tok.Type, tok.Literal, fmt.Sprintf("%d:%d", tok.Line, tok.Column)}
		}
		r.Table([]string{"#", "Type", "Literal", "Position"}, rows)
	}
	return nil
}
