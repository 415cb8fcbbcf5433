package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/siddontang/tidbparser/internal/cli/output"
	"github.com/siddontang/tidbparser/pkg/tidb"
	"github.com/spf13/cobra"
)

const (
	replPrompt     = "tidb> "
	replContPrompt = "  ...> "
)

// lineReader is the part of *readline.Instance the REPL loop needs.
type lineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactively parse TiDB SQL",
		Long: `Start an interactive prompt. Statements may span several lines and are
parsed once a line ends with a semicolon. Each statement is printed back in
canonical form.

Type .help for commands, .quit to exit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runREPL(cmd)
		},
	}
}

func runREPL(cmd *cobra.Command) error {
	cc := NewCommandContext(cmd)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          replPrompt,
		HistoryFile:     cc.Cfg.HistoryFile,
		AutoComplete:    newKeywordCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
		Stdin:           io.NopCloser(cmd.InOrStdin()),
		Stdout:          cmd.OutOrStdout(),
		Stderr:          cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	cc.Logger.Debug("repl started", "history", cc.Cfg.HistoryFile)
	cc.Renderer.Println("TiDB SQL parser REPL")
	cc.Renderer.Println("Type .help for commands, .quit to exit")
	cc.Renderer.Println("")

	return replLoop(rl, cc.Renderer)
}

// replSession holds the state of one REPL run.
type replSession struct {
	r      *output.Renderer
	pretty bool
	buf    strings.Builder
}

// replLoop reads lines until EOF or .quit.
func replLoop(rl lineReader, r *output.Renderer) error {
	s := &replSession{r: r}
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			s.buf.Reset()
			rl.SetPrompt(replPrompt)
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		// Dot-commands only at the start of a statement
		if s.buf.Len() == 0 && strings.HasPrefix(line, ".") {
			if quit := s.handleDotCommand(line); quit {
				return nil
			}
			continue
		}

		// Accumulate multi-line SQL until semicolon
		s.buf.WriteString(line)
		if !strings.HasSuffix(line, ";") {
			s.buf.WriteString("\n")
			rl.SetPrompt(replContPrompt)
			continue
		}
		rl.SetPrompt(replPrompt)

		sql := s.buf.String()
		s.buf.Reset()
		s.evaluate(sql)
	}
}

func (s *replSession) evaluate(sql string) {
	stmts, err := tidb.ParseSQL(sql)
	if err != nil {
		s.r.Error(err.Error())
		return
	}
	for _, stmt := range stmts {
		s.r.Println(renderStatement(stmt, s.pretty) + ";")
		s.r.Muted(fmt.Sprintf("-- %s %s", stmt.Kind(), statementType(stmt)))
	}
}

// handleDotCommand runs a dot-command and reports whether the REPL should exit.
func (s *replSession) handleDotCommand(line string) bool {
	parts := strings.Fields(line)
	command := strings.ToLower(parts[0])

	switch command {
	case ".quit", ".exit":
		return true

	case ".help":
		printREPLHelp(s.r)

	case ".pretty":
		s.pretty = !s.pretty
		state := "off"
		if s.pretty {
			state = "on"
		}
		s.r.Muted("pretty printing " + state)

	case ".clear":
		if s.r.IsTTY() {
			s.r.Printf("\033[H\033[2J")
		}

	default:
		s.r.Error(fmt.Sprintf("unknown command: %s (type .help for commands)", command))
	}
	return false
}

func printREPLHelp(r *output.Renderer) {
	r.Println(`
Commands:
  .help           Show this help message
  .pretty         Toggle multi-line output
  .clear          Clear the screen
  .quit / .exit   Exit the REPL

Tips:
  - Statements must end with a semicolon (;)
  - ADMIN SHOW DDL [JOBS [n] [WHERE expr]] is supported
  - Use arrow keys to navigate history`)
}

// newKeywordCompleter completes statement openers and dot-commands.
func newKeywordCompleter() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem("ADMIN",
			readline.PcItem("SHOW",
				readline.PcItem("DDL",
					readline.PcItem("JOBS"),
				),
			),
		),
		readline.PcItem("SELECT"),
		readline.PcItem("INSERT", readline.PcItem("INTO")),
		readline.PcItem("UPDATE"),
		readline.PcItem("DELETE", readline.PcItem("FROM")),
		readline.PcItem("CREATE", readline.PcItem("TABLE")),
		readline.PcItem("DROP", readline.PcItem("TABLE")),
		readline.PcItem("SHOW",
			readline.PcItem("DATABASES"),
			readline.PcItem("TABLES"),
			readline.PcItem("COLUMNS"),
		),
		readline.PcItem("USE"),
		readline.PcItem(".help"),
		readline.PcItem(".pretty"),
		readline.PcItem(".clear"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	)
}
