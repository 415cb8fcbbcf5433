package commands

import (
	"strconv"
	"strings"

	"github.com/siddontang/tidbparser/internal/cli/output"
)

// renderResults writes parse results in the renderer's effective mode.
func renderResults(cc *CommandContext, results []*FileResult) error {
	r := cc.Renderer
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(results)
	case output.ModeYAML:
		return r.YAML(results)
	case output.ModeDebug:
		renderDebug(r, results)
	case output.ModeTable:
		renderTable(r, results)
	case output.ModeMarkdown:
		renderMarkdown(r, results)
	default:
		renderText(r, results)
	}
	return nil
}

// renderText prints one statement per line. File headers appear only when
// more than one input was given.
func renderText(r *output.Renderer, results []*FileResult) {
	styles := r.Styles()
	for i, res := range results {
		if len(results) > 1 {
			if i > 0 {
				r.Println("")
			}
			r.Println(styles.Muted.Render("-- " + res.File))
		}
		for _, stmt := range res.Statements {
			r.Println(stmt.SQL + ";")
		}
	}
}

func renderMarkdown(r *output.Renderer, results []*FileResult) {
	for i, res := range results {
		if i > 0 {
			r.Println("")
		}
		r.Println(output.FormatHeader(2, res.File))
		r.Println("")
		if res.Error != "" {
			r.Println(output.FormatKeyValue("Error", res.Error))
			continue
		}
		r.Println(output.FormatKeyValue("Statements", strconv.Itoa(len(res.Statements))))
		if len(res.Statements) == 0 {
			continue
		}
		r.Println("")
		sqls := make([]string, len(res.Statements))
		for j, stmt := range res.Statements {
			sqls[j] = stmt.SQL + ";"
		}
		r.Println(output.FormatCodeBlock("sql", strings.Join(sqls, "\n")))
	}
}

func renderTable(r *output.Renderer, results []*FileResult) {
	var rows [][]string
	for _, res := range results {
		if res.Error != "" {
			rows = append(rows, []string{res.File, "", "error", "", res.Error})
			continue
		}
		for _, stmt := range res.Statements {
			rows = append(rows, []string{res.File, strconv.Itoa(stmt.Index), stmt.Kind, stmt.Type, stmt.SQL})
		}
	}
	r.Table([]string{"File", "#", "Kind", "Type", "SQL"}, rows)
}

// renderDebug dumps the syntax trees.
func renderDebug(r *output.Renderer, results []*FileResult) {
	for _, res := range results {
		r.Println("-- " + res.File)
		if res.err != nil {
			r.Debug(res.err)
			continue
		}
		for _, stmt := range res.stmts {
			r.Debug(stmt)
		}
	}
}
