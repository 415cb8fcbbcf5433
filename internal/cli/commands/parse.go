package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"reflect"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/siddontang/tidbparser/pkg/dialects/mysql"
	"github.com/siddontang/tidbparser/pkg/format"
	"github.com/siddontang/tidbparser/pkg/tidb"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// ParseOptions holds options for the parse command.
type ParseOptions struct {
	SQL    string
	Pretty bool
	Watch  bool
}

// FileResult is the parse outcome for one input.
type FileResult struct {
	File       string            `json:"file" yaml:"file"`
	Statements []StatementResult `json:"statements" yaml:"statements"`
	Error      string            `json:"error,omitempty" yaml:"error,omitempty"`

	stmts []tidb.Statement
	err   error
}

// StatementResult describes one parsed statement.
type StatementResult struct {
	Index int    `json:"index" yaml:"index"`
	Kind  string `json:"kind" yaml:"kind"`
	Type  string `json:"type" yaml:"type"`
	SQL   string `json:"sql" yaml:"sql"`
}

// NewParseCommand creates the parse command.
func NewParseCommand() *cobra.Command {
	opts := &ParseOptions{}

	cmd := &cobra.Command{
		Use:   "parse [FILE...]",
		Short: "Parse TiDB SQL and print it back",
		Long: `Parse one or more SQL scripts with the TiDB grammar, including the
ADMIN SHOW DDL statements, and print each statement in canonical form.

Output adapts to environment:
  - Terminal: Styled text, one statement per line
  - Piped/Scripted: Markdown format

Use --output to override: auto, text, markdown, json, yaml, debug, table`,
		Example: `  # Parse a script
  tidbparse parse schema.sql

  # Parse inline SQL and dump the syntax tree
  tidbparse parse --sql "ADMIN SHOW DDL JOBS 5 WHERE state = 'done'" -o debug

  # Parse standard input as JSON
  cat queries.sql | tidbparse parse - -o json

  # Re-parse files whenever they change
  tidbparse parse --watch queries.sql`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.SQL, "sql", "", "Parse an inline SQL string")
	cmd.Flags().BoolVar(&opts.Pretty, "pretty", false, "Print generic statements in multi-line form")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-parse files when they change")

	return cmd
}

func runParse(cmd *cobra.Command, args []string, opts *ParseOptions) error {
	cc := NewCommandContext(cmd)
	sources, err := collectSources(cmd, args, opts.SQL)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	logger := cc.Logger.With("run_id", runID)
	logger.Debug("parse started", "inputs", len(sources), "pretty", opts.Pretty)

	results, err := parseSources(cmd.Context(), sources, opts.Pretty)
	if err != nil {
		return err
	}
	if err := renderResults(cc, results); err != nil {
		return err
	}
	failed := firstFailure(results)

	if opts.Watch {
		reportFailures(cc, results)
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		return watchSources(ctx, cc, sources, opts.Pretty)
	}

	if failed != nil {
		logger.Debug("parse failed", "file", failed.File, "error", failed.err)
		return fmt.Errorf("%s: %w", failed.File, failed.err)
	}
	logger.Debug("parse finished", "inputs", len(results))
	return nil
}

// parseSources loads and parses every source concurrently. Parse errors are
// recorded per result; only I/O errors fail the group.
func parseSources(ctx context.Context, sources []source, pretty bool) ([]*FileResult, error) {
	results := make([]*FileResult, len(sources))
	eg, egctx := errgroup.WithContext(ctx)

	for i, src := range sources {
		eg.Go(func() error {
			if err := egctx.Err(); err != nil {
				return err
			}
			if err := src.load(); err != nil {
				return err
			}
			results[i] = parseSource(src, pretty)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func parseSource(src source, pretty bool) *FileResult {
	res := &FileResult{File: src.Name, Statements: []StatementResult{}}
	stmts, err := tidb.ParseSQL(src.Text)
	if err != nil {
		res.err = err
		res.Error = err.Error()
		return res
	}
	res.stmts = stmts
	for i, stmt := range stmts {
		res.Statements = append(res.Statements, StatementResult{
			Index: i + 1,
			Kind:  stmt.Kind().String(),
			Type:  statementType(stmt),
			SQL:   renderStatement(stmt, pretty),
		})
	}
	return res
}

// renderStatement prints a statement, using the multi-line layout for
// generic statements when pretty is set.
func renderStatement(stmt tidb.Statement, pretty bool) string {
	if s, ok := stmt.(*tidb.SQLStatement); ok && pretty {
		return format.Pretty(s.Stmt, mysql.MySQL)
	}
	return stmt.String()
}

// statementType names the concrete syntax node behind a statement.
func statementType(stmt tidb.Statement) string {
	var v any = stmt
	if s, ok := stmt.(*tidb.SQLStatement); ok {
		v = s.Stmt
	}
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

func firstFailure(results []*FileResult) *FileResult {
	for _, res := range results {
		if res.err != nil {
			return res
		}
	}
	return nil
}

// reportFailures writes each parse error to the error output.
func reportFailures(cc *CommandContext, results []*FileResult) {
	for _, res := range results {
		if res.err != nil {
			cc.Renderer.Error(fmt.Sprintf("%s: %v", res.File, res.err))
		}
	}
}

// watchSources re-parses file sources whenever they are written.
func watchSources(ctx context.Context, cc *CommandContext, sources []source, pretty bool) error {
	files := make(map[string]source)
	for _, src := range sources {
		if src.Path == "" {
			continue
		}
		abs, err := filepath.Abs(src.Path)
		if err != nil {
			return err
		}
		files[abs] = src
	}
	if len(files) == 0 {
		return errors.New("--watch needs at least one file argument")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch directories so editors that replace files are still seen.
	dirs := make(map[string]bool)
	for abs := range files {
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		dirs[dir] = true
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}
	cc.Logger.Info("watching for changes", "files", len(files))

	// Debounce
	pending := make(map[string]source)
	timer := time.NewTimer(time.Hour)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			src, ok := files[filepath.Clean(event.Name)]
			if !ok {
				continue
			}
			pending[event.Name] = src
			timer.Reset(100 * time.Millisecond)

		case <-timer.C:
			batch := make([]source, 0, len(pending))
			for _, src := range pending {
				batch = append(batch, src)
			}
			clear(pending)

			cc.Logger.Debug("change detected", "files", len(batch))
			results, err := parseSources(ctx, batch, pretty)
			if err != nil {
				cc.Renderer.Error(err.Error())
				continue
			}
			if err := renderResults(cc, results); err != nil {
				return err
			}
			reportFailures(cc, results)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			cc.Logger.Error("watcher error", "error", err)
		}
	}
}
