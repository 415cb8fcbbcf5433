package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
	}{
		{"text", ModeText},
		{"MARKDOWN", ModeMarkdown},
		{" json ", ModeJSON},
		{"yaml", ModeYAML},
		{"debug", ModeDebug},
		{"table", ModeTable},
		{"auto", ModeAuto},
		{"", ModeAuto},
		{"html", ModeAuto},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseMode(tt.in))
		})
	}
}

func TestEffectiveMode(t *testing.T) {
	tests := []struct {
		name  string
		mode  Mode
		isTTY bool
		want  Mode
	}{
		{"auto on tty", ModeAuto, true, ModeText},
		{"auto piped", ModeAuto, false, ModeMarkdown},
		{"empty piped", "", false, ModeMarkdown},
		{"explicit json on tty", ModeJSON, true, ModeJSON},
		{"explicit text piped", ModeText, false, ModeText},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRendererWithTTY(&bytes.Buffer{}, &bytes.Buffer{}, tt.isTTY, tt.mode)
			assert.Equal(t, tt.want, r.EffectiveMode())
			assert.Equal(t, tt.isTTY, r.IsTTY())
		})
	}
}

func TestNewRenderer_BufferIsNotTTY(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{}, &bytes.Buffer{}, ModeAuto)
	assert.False(t, r.IsTTY())
	assert.Equal(t, ModeMarkdown, r.EffectiveMode())
}

func TestRenderer_Messages(t *testing.T) {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	r := NewRendererWithTTY(out, errOut, false, ModeText)

	r.Header(1, "Statements")
	r.Header(2, "file.sql")
	r.Success("ok")
	r.Muted("quiet")
	r.Error("boom")
	r.Warning("careful")

	assert.Equal(t, "STATEMENTS\nfile.sql\nok\nquiet\n", out.String())
	assert.Equal(t, "error: boom\nwarning: careful\n", errOut.String())
}

func TestRenderer_MarkdownHeader(t *testing.T) {
	out := &bytes.Buffer{}
	r := NewRendererWithTTY(out, &bytes.Buffer{}, false, ModeAuto)
	r.Header(2, "file.sql")
	assert.Equal(t, "## file.sql\n", out.String())
}

func TestRenderer_Structured(t *testing.T) {
	type doc struct {
		Name  string `json:"name" yaml:"name"`
		Count int    `json:"count" yaml:"count"`
	}
	v := doc{Name: "ddl", Count: 3}

	t.Run("json", func(t *testing.T) {
		out := &bytes.Buffer{}
		r := NewRendererWithTTY(out, &bytes.Buffer{}, false, ModeJSON)
		require.NoError(t, r.JSON(v))
		assert.JSONEq(t, `{"name":"ddl","count":3}`, out.String())
	})

	t.Run("yaml", func(t *testing.T) {
		out := &bytes.Buffer{}
		r := NewRendererWithTTY(out, &bytes.Buffer{}, false, ModeYAML)
		require.NoError(t, r.YAML(v))
		assert.YAMLEq(t, "name: ddl\ncount: 3\n", out.String())
	})

	t.Run("debug", func(t *testing.T) {
		out := &bytes.Buffer{}
		r := NewRendererWithTTY(out, &bytes.Buffer{}, false, ModeDebug)
		r.Debug(&v)
		assert.Contains(t, out.String(), `Name: "ddl"`)
		assert.Contains(t, out.String(), "Count: 3")
	})
}

func TestRenderer_Table(t *testing.T) {
	header := []string{"#", "Kind", "SQL"}
	rows := [][]string{{"1", "admin", "ADMIN SHOW DDL"}}

	t.Run("box", func(t *testing.T) {
		out := &bytes.Buffer{}
		r := NewRendererWithTTY(out, &bytes.Buffer{}, false, ModeTable)
		r.Table(header, rows)
		assert.Contains(t, out.String(), "ADMIN SHOW DDL")
		assert.Contains(t, out.String(), "┌")
	})

	t.Run("markdown", func(t *testing.T) {
		out := &bytes.Buffer{}
		r := NewRendererWithTTY(out, &bytes.Buffer{}, false, ModeMarkdown)
		r.Table(header, rows)
		assert.Contains(t, out.String(), "| 1 | admin | ADMIN SHOW DDL |")
	})
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "# Title", FormatHeader(1, "Title"))
	assert.Equal(t, "###### Deep", FormatHeader(9, "Deep"))
	assert.Equal(t, "# Low", FormatHeader(0, "Low"))
	assert.Equal(t, "- **Kind:** admin", FormatKeyValue("Kind", "admin"))
	assert.Equal(t, "```sql\nSELECT 1\n```", FormatCodeBlock("sql", "SELECT 1\n"))
}
