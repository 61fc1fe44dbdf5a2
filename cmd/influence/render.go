package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// printer renders report sections to w. Styles come from a renderer bound
// to w, so plain buffers and pipes get no escape sequences.
type printer struct {
	w                 io.Writer
	head, faint, warn lipgloss.Style
}

func newPrinter(w io.Writer) *printer {
	r := lipgloss.NewRenderer(w)

	return &printer{
		w:     w,
		head:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		faint: r.NewStyle().Faint(true),
		warn:  r.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

func (p *printer) heading(title string) {
	fmt.Fprintln(p.w, p.head.Render(title))
}

func (p *printer) note(format string, args ...interface{}) {
	fmt.Fprintln(p.w, p.faint.Render(fmt.Sprintf(format, args...)))
}

func (p *printer) warning(format string, args ...interface{}) {
	fmt.Fprintln(p.w, p.warn.Render(fmt.Sprintf(format, args...)))
}

func (p *printer) line(s string) { fmt.Fprintln(p.w, s) }

// grid renders rows under headers as a bordered table.
func (p *printer) grid(headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...)
	fmt.Fprintln(p.w, t.Render())
}

func num(x float64) string { return strconv.FormatFloat(x, 'f', 6, 64) }

// optNum renders an optional attribute, "-" when unset.
func optNum(x float64, ok bool) string {
	if !ok {
		return "-"
	}

	return num(x)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}
