// Command listdemo is a pure Bubbletea program (manual model, no component
// framework) that drives a keyed.Reconciler[string] as its list's backing
// store, visualized through bubbles/list. Every row carries the sequence
// number it was mounted at, so reordering the underlying slice (press r)
// versus removing and re-adding an item (press d then a) visibly proves
// whether the reconciler reused a row's node or created a fresh one.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arbor-ui/arbor/pkg/reactive"
	"github.com/arbor-ui/arbor/pkg/reactive/destroy"
	"github.com/arbor-ui/arbor/pkg/reactive/host"
	"github.com/arbor-ui/arbor/pkg/reactive/keyed"
	"github.com/arbor-ui/arbor/pkg/reactive/tree"
)

var appStyle = lipgloss.NewStyle().Margin(1, 2)

var titleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("205")).
	MarginBottom(1)

var helpStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("241")).
	MarginTop(1)

// row is the bubbles/list item for one reconciled row: its label plus the
// sequence number it was mounted at, stamped once by the reconciler's
// factory and never touched again while the row survives.
type row struct {
	label string
}

func (r row) Title() string       { return r.label }
func (r row) Description() string { return "" }
func (r row) FilterValue() string { return r.label }

// model is the hand-wired Bubbletea model: m.values is the logical source
// array, m.tag is the reactive.Ref the reconciler watches, and m.list is
// the visible bubbles/list rebuilt from the reconciler's host tree after
// every mutation.
type model struct {
	values []string
	mounts int

	adapter *host.Tree
	outlet  *host.Node
	tag     *reactive.Ref[[]string]
	rec     *keyed.Reconciler[string]

	list list.Model
}

func newModel(initial []string) *model {
	m := &model{values: initial}

	m.adapter = host.NewTree()
	treeReg := tree.NewRegistry()
	destroys := destroy.NewRegistry()

	top := m.adapter.Comment("listdemo-top")
	m.outlet = m.adapter.Comment("listdemo-outlet")
	m.adapter.Insert(m.outlet, top, nil)

	m.tag = reactive.NewRef(m.values)

	factory := func(item string, _ keyed.IndexBinding, owner tree.ID) keyed.Row {
		m.mounts++
		label := fmt.Sprintf("%s  (mounted #%d)", item, m.mounts)
		destroys.Register(owner, func() destroy.Deferrable {
			return nil
		})
		return keyed.Row{Nodes: []*host.Node{m.adapter.Text(label)}}
	}

	keyFn := keyed.ByField(func(s string) string { return s })
	m.rec = keyed.New[string](m.adapter, treeReg, destroys, 0, m.outlet, top, keyFn, factory, m.tag)

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	m.list = list.New(nil, delegate, 0, 0)
	m.list.Title = "arbor listdemo"
	m.syncListItems()

	return m
}

// syncListItems rebuilds the visible bubbles list from the reconciler's
// current host tree: Content returns "" for the sentinel/marker comment
// nodes the reconciler also keeps in outlet, so only rendered rows survive
// the filter, in host order.
func (m *model) syncListItems() {
	var items []list.Item
	for _, n := range m.adapter.Children(m.outlet) {
		if label := m.adapter.Content(n); label != "" {
			items = append(items, row{label: label})
		}
	}
	m.list.SetItems(items)
}

// applyValues pushes a new source slice through the reconciler. SyncList's
// watcher runs on the "post" flush queue, so FlushWatchers drains it before
// the visible list is rebuilt.
func (m *model) applyValues(values []string) {
	m.values = values
	m.tag.Set(values)
	reactive.FlushWatchers()
	m.syncListItems()
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := appStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.rec.Destroy()
			return m, tea.Quit

		case "a":
			next := fmt.Sprintf("task-%d", len(m.values)+m.mounts+1)
			m.applyValues(append(append([]string{}, m.values...), next))
			return m, nil

		case "d":
			idx := m.list.Index()
			if idx >= 0 && idx < len(m.values) {
				remaining := make([]string, 0, len(m.values)-1)
				remaining = append(remaining, m.values[:idx]...)
				remaining = append(remaining, m.values[idx+1:]...)
				m.applyValues(remaining)
			}
			return m, nil

		case "r":
			reversed := make([]string, len(m.values))
			for i, v := range m.values {
				reversed[len(m.values)-1-i] = v
			}
			m.applyValues(reversed)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *model) View() string {
	help := helpStyle.Render("a: add • d: delete selected • r: reverse • q/ctrl+c: quit")
	return appStyle.Render(titleStyle.Render("Keyed reconciler, rendered through bubbles/list") + "\n" + m.list.View() + "\n" + help)
}

func main() {
	m := newModel([]string{"wire up storage", "write tests", "ship it"})

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
