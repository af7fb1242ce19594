package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/propcompare/internal/compare"
	"github.com/jask/propcompare/internal/format"
	"github.com/jask/propcompare/internal/notify"
)

const (
	defaultWidth = 120
	labelWidth   = 15
)

func (a *App) canvasWidth() int {
	if a.width <= 0 {
		return defaultWidth
	}
	return a.width
}

// renderMain draws every view from one snapshot of the store.
func (a *App) renderMain() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Compare Properties"))
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render(fmt.Sprintf("Select up to %d properties to compare side by side", compare.MaxSelected)))
	b.WriteString("\n\n")

	snap := a.store.Snapshot()
	if snap.Empty {
		b.WriteString(a.renderEmpty(snap.Prompt))
	} else {
		b.WriteString(a.renderSummary(snap.Summary))
		b.WriteString("\n\n")
		if a.mobileLayout() {
			b.WriteString(a.renderMobile(snap.Mobile))
		} else {
			b.WriteString(a.renderTable(snap.Table))
		}
	}

	if n, ok := a.notices.Current(); ok && a.modal != modalPicker {
		b.WriteString("\n\n")
		b.WriteString(renderNotice(n))
	}
	if a.status != "" {
		b.WriteString("\n")
		b.WriteString(subtleStyle.Render(a.status))
	}
	b.WriteString("\n")
	b.WriteString(footerStyle.Render(a.footer(snap.Empty)))
	return b.String()
}

func (a *App) footer(empty bool) string {
	k := a.keys
	if empty {
		return helpLine(k.Add, k.Help, k.Quit)
	}
	if !a.showHelp {
		return helpLine(k.Add, k.Remove, k.Prev, k.Next, k.Layout, k.Mortgage, k.Details, k.Help, k.Quit)
	}
	return helpLine(k.Add, k.Left, k.Right, k.Select, k.Remove, k.Prev, k.Next, k.Layout, k.Mortgage, k.Details, k.Clear, k.Help, k.Quit)
}

func (a *App) renderEmpty(prompt string) string {
	w := min(a.canvasWidth()-4, 72)
	body := lipgloss.NewStyle().Width(w).Render(prompt)
	body += "\n\n" + buttonStyle.Render("+ Add Properties") + " " + footerStyle.Render("[a]")
	return cardStyle.Render(body)
}

func (a *App) cardWidth() int {
	w := (a.canvasWidth()-4)/compare.MaxSelected - 2
	return max(24, min(w, 38))
}

func (a *App) renderSummary(s compare.Summary) string {
	cw := a.cardWidth()
	inner := cw - 4
	blocks := make([]string, 0, len(s.Cards)+1)
	for i, c := range s.Cards {
		style := cardStyle
		if i == a.focus {
			style = focusedCardStyle
		}
		lines := []string{
			lipgloss.NewStyle().Bold(true).Render(truncate(c.Title, inner-2)) + " " + disabledStyle.Render("✕"),
			subtleStyle.Render(truncate(c.Location, inner)),
			c.BHK + "  " + priceStyle.Render(c.Price),
		}
		blocks = append(blocks, style.Width(cw).Render(strings.Join(lines, "\n")))
	}
	if s.Add != nil {
		style := addSlotStyle
		if a.focus == len(s.Cards) {
			style = focusedAddSlotStyle
		}
		body := "+ Add Property to Compare\n" + s.Add.Caption
		blocks = append(blocks, style.Width(cw).Render(body))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

func (a *App) columnWidth(columns int) int {
	if columns <= 0 {
		return 0
	}
	avail := a.canvasWidth() - labelWidth - 2
	return max(18, min(avail/columns, 36))
}

// renderTable lays the rows out as a grid: the label column first, then one
// column per selected property.
func (a *App) renderTable(t compare.Table) string {
	cols := len(t.Headers) - 1
	cw := a.columnWidth(cols)
	label := lipgloss.NewStyle().Width(labelWidth).PaddingRight(1)
	cell := lipgloss.NewStyle().Width(cw).PaddingRight(1)
	rule := disabledStyle.Render(strings.Repeat("─", labelWidth+cw*cols))

	lines := make([]string, 0, len(t.Rows)*2+2)
	header := []string{label.Render(labelStyle.Render(t.Headers[0]))}
	for _, h := range t.Headers[1:] {
		header = append(header, cell.Render(headerStyle.Render(h)))
	}
	lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, header...), rule)

	for _, r := range t.Rows {
		parts := []string{label.Render(labelStyle.Render(r.Label))}
		for _, c := range r.Cells {
			parts = append(parts, cell.Render(renderCell(r.Kind, c, cw-1)))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, parts...))
	}
	return strings.Join(lines, "\n")
}

func renderCell(kind compare.RowKind, c compare.Cell, width int) string {
	switch kind {
	case compare.KindPrice:
		return priceStyle.Render(c.Text)
	case compare.KindCheck:
		if c.OK {
			return checkStyle.Render("✓ " + c.Text)
		}
		return crossStyle.Render("✗ " + c.Text)
	case compare.KindTags:
		return renderTags(c.Tags, width)
	case compare.KindAction:
		return buttonStyle.Render(c.Text)
	}
	return c.Text
}

// renderTags flows tags into lines no wider than width, keeping their order.
func renderTags(tags []string, width int) string {
	if len(tags) == 0 {
		return disabledStyle.Render("—")
	}
	var lines []string
	line, lineWidth := "", 0
	for _, t := range tags {
		tag := tagStyle.Render(truncate(t, max(1, width-2)))
		w := ansi.StringWidth(tag)
		if lineWidth > 0 && lineWidth+1+w > width {
			lines = append(lines, line)
			line, lineWidth = "", 0
		}
		if lineWidth > 0 {
			line += " "
			lineWidth++
		}
		line += tag
		lineWidth += w
	}
	return strings.Join(append(lines, line), "\n")
}

// renderMobile draws the card at the store's cursor with its pager.
func (a *App) renderMobile(m compare.Mobile) string {
	w := min(a.canvasWidth()-4, 64)
	var lines []string
	if m.ShowNav {
		prev, next := "‹ Prev [", "] Next ›"
		prevStyle, nextStyle := subtleStyle, subtleStyle
		if !m.PrevEnabled {
			prevStyle = disabledStyle
		}
		if !m.NextEnabled {
			nextStyle = disabledStyle
		}
		gap := max(1, w-4-ansi.StringWidth(prev)-ansi.StringWidth(next))
		lines = append(lines, prevStyle.Render(prev)+strings.Repeat(" ", gap)+nextStyle.Render(next))
	}
	lines = append(lines, titleStyle.Render(m.Title), subtleStyle.Render(m.Pagination), "")

	label := lipgloss.NewStyle().Width(labelWidth)
	for _, r := range m.Rows {
		if len(r.Cells) == 0 {
			continue
		}
		if r.Kind == compare.KindTags {
			lines = append(lines, labelStyle.Render(r.Label), renderTags(r.Cells[0].Tags, w-4))
			continue
		}
		lines = append(lines, label.Render(labelStyle.Render(r.Label))+renderCell(r.Kind, r.Cells[0], w-4-labelWidth))
	}
	lines = append(lines, "", buttonStyle.Render(m.Action))
	return cardStyle.Width(w).Render(strings.Join(lines, "\n"))
}

func renderNotice(n notify.Notice) string {
	color := colorInfo
	switch n.Level {
	case notify.Warning:
		color = colorWarning
	case notify.Error:
		color = colorError
	}
	return noticeStyle(color).Render("! " + n.Text)
}

func (a *App) renderModal() string {
	switch a.modal {
	case modalPicker:
		return a.renderPicker()
	case modalMortgage:
		return a.renderMortgage()
	case modalDetails:
		k := a.keys
		body := a.details.View() + "\n" + footerStyle.Render(helpLine(k.Up, k.Down, k.Close))
		return modalStyle.Render(body)
	}
	return ""
}

func (a *App) renderPicker() string {
	p := a.picker
	w := min(a.canvasWidth()-6, 76)
	var b strings.Builder
	b.WriteString(titleStyle.Render("Select Properties to Compare"))
	b.WriteString("\n")
	if n, ok := a.notices.Current(); ok {
		b.WriteString(lipgloss.NewStyle().Width(w).Render(renderNotice(n)))
		b.WriteString("\n")
	}
	filter := "/ " + p.query
	if p.filtering {
		filter += "▏"
	}
	if p.query == "" && !p.filtering {
		filter = disabledStyle.Render("/ filter by title or location")
	}
	b.WriteString(filter)
	b.WriteString("\n\n")

	if len(p.rows) == 0 {
		b.WriteString(subtleStyle.Render("(no matching properties)"))
		b.WriteString("\n")
	}
	titleW := max(10, w-44)
	for i, prop := range p.rows {
		marker := " "
		if i == p.cursor {
			marker = "▶"
		}
		check := "[ ]"
		if a.store.Contains(prop.ID) {
			check = checkStyle.Render("[✓]")
		}
		title := fmt.Sprintf("%-*s", titleW, truncate(prop.Title, titleW))
		loc := fmt.Sprintf("%-22s", truncate(prop.Location, 22))
		fmt.Fprintf(&b, "%s %s %s %s %-6s %s\n", marker, check, title, subtleStyle.Render(loc),
			fmt.Sprintf("%d BHK", prop.BHK), priceStyle.Render(format.Listing(a.cfg.UI.CurrencySymbol, prop.Price)))
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Selected: %d/%d\n", a.store.Len(), compare.MaxSelected)
	k := a.keys
	b.WriteString(footerStyle.Render(helpLine(k.Toggle, k.Up, k.Down, k.Filter, k.Close)))
	return modalStyle.Render(b.String())
}

func (a *App) renderMortgage() string {
	st := a.mortgage
	sym := a.cfg.UI.CurrencySymbol
	var b strings.Builder
	b.WriteString(titleStyle.Render("Mortgage estimate"))
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render(st.property.Title))
	b.WriteString("\n\n")
	if st.err != nil {
		b.WriteString(crossStyle.Render(st.err.Error()))
		b.WriteString("\n\n")
	} else {
		p, r := st.params, st.result
		rows := [][2]string{
			{"Property value", format.Currency(sym, p.LoanAmount)},
			{"Down payment", format.Currency(sym, p.DownPayment)},
			{"Interest rate", fmt.Sprintf("%.2f%%", p.InterestRate)},
			{"Loan term", format.Count(p.Years, "year", "years")},
			{"Principal", format.Currency(sym, r.Principal)},
			{"Monthly payment", priceStyle.Render(format.Currency(sym, r.MonthlyPayment))},
			{"Total payment", format.Currency(sym, r.TotalPayment)},
			{"Total interest", format.Currency(sym, r.TotalInterest)},
		}
		for _, row := range rows {
			fmt.Fprintf(&b, "%s%s\n", lipgloss.NewStyle().Width(18).Render(labelStyle.Render(row[0])), row[1])
		}
		b.WriteString("\n")
		b.WriteString(splitBar(r.PrincipalPercent, 40))
		b.WriteString("\n")
		b.WriteString(subtleStyle.Render(fmt.Sprintf("principal %.1f%%  interest %.1f%%", r.PrincipalPercent, r.InterestPercent)))
		b.WriteString("\n\n")
	}
	k := a.keys
	b.WriteString(footerStyle.Render(helpLine(k.RateUp, k.TermUp, k.Close)))
	return modalStyle.Render(b.String())
}

func splitBar(principalPct float64, width int) string {
	n := int(principalPct/100*float64(width) + 0.5)
	n = max(0, min(n, width))
	return checkStyle.Render(strings.Repeat("█", n)) + priceStyle.Render(strings.Repeat("█", width-n))
}
