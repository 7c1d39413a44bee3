package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/padding"
	"github.com/muesli/reflow/wordwrap"
	"pkt.systems/widgetconf"
)

const (
	maxValueColumn = 24
	toolbarIndent  = 2
)

type printer struct {
	w     io.Writer
	width int
}

func (p printer) line(s string) {
	fmt.Fprintln(p.w, s)
}

// options prints one row per option: default marker, value, label and help.
func (p printer) options(opts []widgetconf.SelectOption) {
	col := 0
	for _, o := range opts {
		if w := ansi.PrintableRuneWidth(o.Value); w > col {
			col = w
		}
	}
	if col > maxValueColumn {
		col = maxValueColumn
	}
	for _, o := range opts {
		marker := " "
		if o.Default {
			marker = "*"
		}
		value := padding.String(truncateWithEllipsis(o.Value, col), uint(col))
		row := marker + " " + value + "  " + o.Label()
		if help, ok := o.Help(); ok && help != "" {
			row += " (" + help + ")"
		}
		p.line(p.wrap(row, col+4))
	}
}

// toolbar prints one line per block, separators rendered as '|'.
func (p printer) toolbar(tokens []widgetconf.ToolbarToken, format string) {
	if format == formatConfig {
		p.line(widgetconf.FormatToolbar(tokens))
		return
	}
	var row []string
	flush := func() {
		if len(row) > 0 {
			p.line(p.wrap(strings.Join(row, " "), toolbarIndent))
			row = row[:0]
		}
	}
	for _, t := range tokens {
		switch t.Kind {
		case widgetconf.TokenBlockStart:
			flush()
			row = append(row, "[")
		case widgetconf.TokenBlockEnd:
			row = append(row, "]")
			flush()
		case widgetconf.TokenSeparator:
			row = append(row, "|")
		default:
			row = append(row, t.Name)
		}
	}
	flush()
}

func (p printer) widget(wo widgetconf.WidgetOptions) {
	field := func(name, value string) {
		if value != "" {
			p.line(p.wrap(padding.String(name+":", 14)+value, 14))
		}
	}
	field("height", wo.Height)
	field("css", wo.CSSPath)
	field("styles-xml", wo.StylesXMLPath)
	field("styles-format", wo.StylesFormatPath)
	field("formats", strings.Join(wo.FormatSelect, " "))
	if wo.FullPage {
		field("full-page", "yes")
	}
	field("enabled", strings.Join(wo.Additional.Names(), " "))
	field("hidden", strings.Join(wo.Hidden.Names(), " "))
}

// wrap word-wraps s to the printer width, indenting continuation lines.
func (p printer) wrap(s string, hang int) string {
	if p.width <= hang+1 || ansi.PrintableRuneWidth(s) <= p.width {
		return s
	}
	first, rest, _ := strings.Cut(wordwrap.String(s, p.width), "\n")
	if rest == "" {
		return first
	}
	rest = wordwrap.String(strings.ReplaceAll(rest, "\n", " "), p.width-hang)
	return first + "\n" + indent.String(rest, uint(hang))
}

func truncateWithEllipsis(text string, limit int) string {
	if ansi.PrintableRuneWidth(text) <= limit {
		return text
	}
	if limit <= 0 {
		return ""
	}
	if limit == 1 {
		return "…"
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit-1]) + "…"
}
