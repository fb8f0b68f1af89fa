package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ifcwalk/ifcwalk/pkg/errors"
	"github.com/ifcwalk/ifcwalk/pkg/hierarchy"
	"github.com/ifcwalk/ifcwalk/pkg/ifc"
	"github.com/ifcwalk/ifcwalk/pkg/render"
	"github.com/ifcwalk/ifcwalk/pkg/session"
)

var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)

	paneStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim)
	paneFocusedStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorCyan)
)

// paneFocus selects which pane receives navigation keys.
type paneFocus int

const (
	focusTree paneFocus = iota
	focusProps
)

// docView is one open document with its materialized hierarchy and
// per-node expansion state.
type docView struct {
	doc      *session.Document
	tree     *hierarchy.Tree
	open     bool
	expanded map[*hierarchy.Node]bool
}

// treeRow is one visible line of the tree pane. A nil node marks the
// document row itself.
type treeRow struct {
	docIdx int
	node   *hierarchy.Node
	depth  int
}

// viewModel is the bubbletea model for the interactive browser: a tree
// pane over all open documents and a property pane for the selected
// entity, with in-place attribute editing.
type viewModel struct {
	session *session.Session
	docs    []*docView

	rows   []treeRow
	cursor int
	offset int

	focus      paneFocus
	propCursor int
	propOffset int

	editing bool
	input   textinput.Model

	width  int
	height int
	status string
}

// newViewModel builds the browser state for all documents of the
// session. Nodes closer to their project root than expandDepth start
// expanded.
func newViewModel(sess *session.Session, expandDepth int) (viewModel, error) {
	m := viewModel{session: sess}
	for _, doc := range sess.Documents() {
		tree, err := hierarchy.Build(doc.Model())
		if err != nil {
			return viewModel{}, err
		}
		dv := &docView{
			doc:      doc,
			tree:     tree,
			open:     true,
			expanded: make(map[*hierarchy.Node]bool),
		}
		for _, root := range tree.Roots {
			markExpanded(dv.expanded, root, expandDepth)
		}
		m.docs = append(m.docs, dv)
	}
	m.rows = buildRows(m.docs)
	return m, nil
}

// markExpanded expands n and its descendants whose depth is below
// limit.
func markExpanded(expanded map[*hierarchy.Node]bool, n *hierarchy.Node, limit int) {
	if n.Depth < limit {
		expanded[n] = true
	}
	for _, child := range n.Children {
		markExpanded(expanded, child, limit)
	}
}

// buildRows flattens the open documents into the visible tree rows.
func buildRows(docs []*docView) []treeRow {
	var rows []treeRow
	for i, dv := range docs {
		rows = append(rows, treeRow{docIdx: i, node: nil, depth: 0})
		if !dv.open {
			continue
		}
		for _, root := range dv.tree.Roots {
			rows = appendNodeRows(rows, dv, i, root, 1)
		}
	}
	return rows
}

func appendNodeRows(rows []treeRow, dv *docView, docIdx int, n *hierarchy.Node, depth int) []treeRow {
	rows = append(rows, treeRow{docIdx: docIdx, node: n, depth: depth})
	if dv.expanded[n] {
		for _, child := range n.Children {
			rows = appendNodeRows(rows, dv, docIdx, child, depth+1)
		}
	}
	return rows
}

func (m viewModel) Init() tea.Cmd {
	return nil
}

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateBrowsing(msg)
	}
	return m, nil
}

func (m viewModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.commitEdit(), nil
	case "esc":
		m.editing = false
		m.status = ""
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m viewModel) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit

	case "tab":
		if m.focus == focusTree {
			m.focus = focusProps
		} else {
			m.focus = focusTree
		}
		return m, nil

	case "up", "k":
		if m.focus == focusProps {
			if m.propCursor > 0 {
				m.propCursor--
			}
			return m.clampProps()
		}
		if m.cursor > 0 {
			m.cursor--
			m.propCursor, m.propOffset = 0, 0
		}
		return m.clampTree()

	case "down", "j":
		if m.focus == focusProps {
			if m.propCursor < len(m.selectedAttrs())-1 {
				m.propCursor++
			}
			return m.clampProps()
		}
		if m.cursor < len(m.rows)-1 {
			m.cursor++
			m.propCursor, m.propOffset = 0, 0
		}
		return m.clampTree()

	case "right", "l":
		if m.focus == focusTree {
			m.setExpanded(true)
		}
		return m, nil

	case "left", "h":
		if m.focus == focusTree {
			return m.collapseOrAscend(), nil
		}
		return m, nil

	case "enter":
		if m.focus == focusTree {
			m.toggleExpanded()
			return m, nil
		}
		return m.startEdit()

	case "e":
		m.focus = focusProps
		return m.startEdit()

	case "ctrl+s":
		return m.saveAll(), nil
	}
	return m, nil
}

// setExpanded expands or collapses the current tree row.
func (m *viewModel) setExpanded(open bool) {
	if len(m.rows) == 0 {
		return
	}
	row := m.rows[m.cursor]
	dv := m.docs[row.docIdx]
	if row.node == nil {
		dv.open = open
	} else if len(row.node.Children) > 0 {
		dv.expanded[row.node] = open
	}
	m.rows = buildRows(m.docs)
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
}

func (m *viewModel) toggleExpanded() {
	if len(m.rows) == 0 {
		return
	}
	row := m.rows[m.cursor]
	dv := m.docs[row.docIdx]
	if row.node == nil {
		dv.open = !dv.open
	} else {
		dv.expanded[row.node] = !dv.expanded[row.node]
	}
	m.rows = buildRows(m.docs)
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
}

// collapseOrAscend collapses the current row, or moves to its parent
// when it is already collapsed.
func (m viewModel) collapseOrAscend() viewModel {
	if len(m.rows) == 0 {
		return m
	}
	row := m.rows[m.cursor]
	dv := m.docs[row.docIdx]
	expanded := false
	if row.node == nil {
		expanded = dv.open
	} else if len(row.node.Children) > 0 {
		expanded = dv.expanded[row.node]
	}
	if expanded {
		m.setExpanded(false)
		return m
	}
	for i := m.cursor - 1; i >= 0; i-- {
		if m.rows[i].depth < row.depth {
			m.cursor = i
			break
		}
	}
	return m.clampTreeValue()
}

// startEdit begins editing the selected attribute with a text input
// prefilled with the current value.
func (m viewModel) startEdit() (tea.Model, tea.Cmd) {
	e, ok := m.selectedEntity()
	if !ok {
		m.status = "select an entity to edit"
		return m, nil
	}
	attrs := e.Attrs()
	if m.propCursor >= len(attrs) {
		return m, nil
	}
	attr := attrs[m.propCursor]
	if !attr.Def.Type.Scalar() {
		m.status = fmt.Sprintf("%s is a %s and cannot be edited", attr.Def.Name, attr.Def.Type)
		return m, nil
	}

	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = 256
	if !attr.Value.IsNull() {
		input.SetValue(render.FormatValue(attr.Value))
	}
	input.Focus()

	m.input = input
	m.editing = true
	m.status = fmt.Sprintf("editing %s (enter to apply, esc to cancel)", attr.Def.Name)
	return m, textinput.Blink
}

// commitEdit applies the edited value through the schema-validating
// setter. Validation errors land in the status line; the model is
// untouched on failure.
func (m viewModel) commitEdit() viewModel {
	m.editing = false
	e, ok := m.selectedEntity()
	if !ok {
		return m
	}
	attrs := e.Attrs()
	if m.propCursor >= len(attrs) {
		return m
	}
	attr := attrs[m.propCursor]

	if err := e.SetAttr(attr.Def.Name, m.input.Value()); err != nil {
		m.status = errors.UserMessage(err)
		return m
	}
	m.status = fmt.Sprintf("set %s, ctrl+s to save", attr.Def.Name)
	return m
}

// saveAll writes every modified document back to disk.
func (m viewModel) saveAll() viewModel {
	if !m.session.Modified() {
		m.status = "nothing to save"
		return m
	}
	if err := m.session.SaveAll(); err != nil {
		m.status = errors.UserMessage(err)
		return m
	}
	m.status = "saved"
	return m
}

// selectedEntity returns the entity of the current tree row, if the
// row is an entity and not a document.
func (m viewModel) selectedEntity() (ifc.Entity, bool) {
	if len(m.rows) == 0 || m.cursor >= len(m.rows) {
		return ifc.Entity{}, false
	}
	row := m.rows[m.cursor]
	if row.node == nil {
		return ifc.Entity{}, false
	}
	return row.node.Entity, true
}

func (m viewModel) selectedAttrs() []ifc.NamedAttr {
	e, ok := m.selectedEntity()
	if !ok {
		return nil
	}
	return e.Attrs()
}

// listHeight is the number of content lines per pane.
func (m viewModel) listHeight() int {
	h := m.height - 6
	if h < 5 {
		h = 5
	}
	return h
}

func (m viewModel) clampTree() (viewModel, tea.Cmd) {
	return m.clampTreeValue(), nil
}

func (m viewModel) clampTreeValue() viewModel {
	h := m.listHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
	return m
}

func (m viewModel) clampProps() (viewModel, tea.Cmd) {
	h := m.listHeight() - 2
	if h < 3 {
		h = 3
	}
	if m.propCursor < m.propOffset {
		m.propOffset = m.propCursor
	}
	if m.propCursor >= m.propOffset+h {
		m.propOffset = m.propCursor - h + 1
	}
	return m, nil
}

func (m viewModel) View() string {
	title := m.session.Title()
	if m.session.Modified() {
		title += " *"
	}

	treeWidth := m.width * 2 / 5
	if treeWidth < 32 {
		treeWidth = 32
	}
	propsWidth := m.width - treeWidth - 6
	if propsWidth < 32 {
		propsWidth = 32
	}

	treePane := m.renderTreePane(treeWidth)
	propsPane := m.renderPropsPane(propsWidth)

	treeStyle, propsStyle := paneStyle, paneStyle
	if m.focus == focusTree {
		treeStyle = paneFocusedStyle
	} else {
		propsStyle = paneFocusedStyle
	}

	var b strings.Builder
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		treeStyle.Width(treeWidth).Render(treePane),
		propsStyle.Width(propsWidth).Render(propsPane)))
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(StyleWarning.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓ move  →/← expand/collapse  tab pane  e edit  ctrl+s save  q quit"))
	return b.String()
}

// renderTreePane renders the visible window of tree rows.
func (m viewModel) renderTreePane(width int) string {
	h := m.listHeight()
	end := m.offset + h
	if end > len(m.rows) {
		end = len(m.rows)
	}

	var b strings.Builder
	for i := m.offset; i < end; i++ {
		line := m.treeRowLabel(m.rows[i])
		line = truncate(line, width-2)
		if i == m.cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// treeRowLabel formats one tree row: the file name for document rows,
// Name [Class] #id for entities.
func (m viewModel) treeRowLabel(row treeRow) string {
	dv := m.docs[row.docIdx]
	if row.node == nil {
		marker := "▸"
		if dv.open {
			marker = "▾"
		}
		name := dv.doc.Name()
		if dv.doc.Modified() {
			name += " *"
		}
		return marker + " " + name
	}

	indent := strings.Repeat("  ", row.depth)
	marker := "  "
	if len(row.node.Children) > 0 {
		if dv.expanded[row.node] {
			marker = "▾ "
		} else {
			marker = "▸ "
		}
	}
	e := row.node.Entity
	return fmt.Sprintf("%s%s%s [%s] #%d", indent, marker, ifc.DisplayName(e), e.Class(), e.ID())
}

// renderPropsPane renders the property pane for the selected row.
func (m viewModel) renderPropsPane(width int) string {
	if len(m.rows) == 0 {
		return StyleDim.Render("no entities")
	}
	row := m.rows[m.cursor]
	if row.node == nil {
		return m.renderDocProps(m.docs[row.docIdx])
	}

	e := row.node.Entity
	var b strings.Builder
	head := fmt.Sprintf("#%d %s", e.ID(), e.Class())
	if guid := e.GlobalID(); guid != "" {
		head += " " + StyleDim.Render("("+guid+")")
	}
	b.WriteString(StyleHighlight.Render(head))
	b.WriteString("\n\n")

	attrs := e.Attrs()
	h := m.listHeight() - 2
	if h < 3 {
		h = 3
	}
	end := m.propOffset + h
	if end > len(attrs) {
		end = len(attrs)
	}

	for i := m.propOffset; i < end; i++ {
		attr := attrs[i]
		cursor := "  "
		if m.focus == focusProps && i == m.propCursor {
			cursor = "▸ "
		}

		value := render.FormatValue(attr.Value)
		if m.editing && i == m.propCursor {
			value = m.input.View()
		}

		line := fmt.Sprintf("%s%-22s %s", cursor, attr.Def.Name, value)
		line = truncate(line, width-2)
		if m.focus == focusProps && i == m.propCursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else if attr.Def.Type.Scalar() {
			b.WriteString(listNormalStyle.Render(line))
		} else {
			b.WriteString(StyleDim.Render(line))
		}
		b.WriteString("\n")
	}

	for _, ps := range e.PropertySets() {
		for _, p := range ps.Props {
			line := fmt.Sprintf("  [%s] %s = %s", ps.Name, p.Name, render.FormatValue(p.Value))
			b.WriteString(StyleDim.Render(truncate(line, width-2)))
			b.WriteString("\n")
		}
	}
	for _, qs := range e.QuantitySets() {
		for _, q := range qs.Quantities {
			line := fmt.Sprintf("  [%s] %s = %g %s", qs.Name, q.Name, q.Value, strings.ToLower(q.Kind))
			b.WriteString(StyleDim.Render(truncate(line, width-2)))
			b.WriteString("\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// renderDocProps shows file-level details when a document row is
// selected.
func (m viewModel) renderDocProps(dv *docView) string {
	model := dv.doc.Model()
	var b strings.Builder
	b.WriteString(StyleHighlight.Render(dv.doc.Name()))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  %-12s %s\n", "Path", dv.doc.Path()))
	b.WriteString(fmt.Sprintf("  %-12s %s\n", "Schema", model.Header().Schema()))
	b.WriteString(fmt.Sprintf("  %-12s %d\n", "Entities", model.Len()))
	b.WriteString(fmt.Sprintf("  %-12s %d\n", "Tree nodes", dv.tree.Count()))
	if dv.doc.Modified() {
		b.WriteString("\n")
		b.WriteString(StyleWarning.Render("  unsaved changes"))
	}
	return strings.TrimRight(b.String(), "\n")
}

// truncate cuts s to at most width runes, appending an ellipsis when
// something was cut.
func truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}
