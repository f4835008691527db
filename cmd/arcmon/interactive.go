package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arqlabs/arc"
	"github.com/arqlabs/arc/registry"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#5F87AF")).
			Padding(0, 1)

	sharedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	weakStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	deadStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type slotKind uint8

const (
	slotShared slotKind = iota
	slotWeak
)

// slot is one handle held by the monitor session.
type slot struct {
	shared arc.Shared[payload]
	weak   arc.Weak[payload]
	label  string
	kind   slotKind
}

type monitorModel struct {
	err    error
	reg    *registry.Registry
	slots  map[int]*slot
	result string
	input  textinput.Model
	nextID int
}

func newMonitorModel() *monitorModel {
	ti := textinput.New()
	ti.Placeholder = "new <label> | clone <slot> | weak <slot> | lock <slot> | drop <slot> | reset"
	ti.Prompt = "> "
	ti.Width = 70
	ti.Focus()

	return &monitorModel{
		reg:    registry.New(),
		slots:  make(map[int]*slot),
		nextID: 1,
		input:  ti,
	}
}

func runInteractive() error {
	p := tea.NewProgram(newMonitorModel())
	_, err := p.Run()
	return err
}

func (m *monitorModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *monitorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.dropAll()
			return m, tea.Quit

		case "enter":
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if line == "q" || line == "quit" {
				m.dropAll()
				return m, tea.Quit
			}
			m.result, m.err = m.execute(line)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *monitorModel) execute(line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}

	switch fields[0] {
	case "new":
		label := fmt.Sprintf("res-%d", m.nextID)
		if len(fields) > 1 {
			label = fields[1]
		}
		id := m.addSlot(&slot{
			kind:  slotShared,
			label: label,
			shared: arc.MakeShared(payload{label: label},
				arc.WithObserver(m.reg), arc.WithLabel(label)),
		})
		return fmt.Sprintf("slot %d owns %q", id, label), nil

	case "clone":
		id, sl, err := m.sharedArg(fields)
		if err != nil {
			return "", err
		}
		nid := m.addSlot(&slot{kind: slotShared, label: sl.label, shared: sl.shared.Clone()})
		return fmt.Sprintf("slot %d clones slot %d (strong=%d)", nid, id, sl.shared.UseCount()), nil

	case "weak":
		id, sl, err := m.sharedArg(fields)
		if err != nil {
			return "", err
		}
		nid := m.addSlot(&slot{kind: slotWeak, label: sl.label, weak: sl.shared.Downgrade()})
		return fmt.Sprintf("slot %d observes slot %d", nid, id), nil

	case "lock":
		id, sl, err := m.slotArg(fields)
		if err != nil {
			return "", err
		}
		if sl.kind != slotWeak {
			return "", fmt.Errorf("slot %d is not a weak handle", id)
		}
		s, ok := sl.weak.Lock()
		if !ok {
			return fmt.Sprintf("slot %d is expired; promotion failed", id), nil
		}
		nid := m.addSlot(&slot{kind: slotShared, label: sl.label, shared: s})
		return fmt.Sprintf("slot %d promoted to owner slot %d", id, nid), nil

	case "drop":
		id, sl, err := m.slotArg(fields)
		if err != nil {
			return "", err
		}
		if sl.kind == slotShared {
			sl.shared.Drop()
		} else {
			sl.weak.Drop()
		}
		delete(m.slots, id)
		return fmt.Sprintf("slot %d dropped", id), nil

	case "reset":
		n := len(m.slots)
		m.dropAll()
		m.reg = registry.New()
		m.nextID = 1
		return fmt.Sprintf("dropped %d slot(s); session reset", n), nil

	default:
		return "", fmt.Errorf("unknown command %q", fields[0])
	}
}

func (m *monitorModel) addSlot(sl *slot) int {
	id := m.nextID
	m.nextID++
	m.slots[id] = sl
	return id
}

func (m *monitorModel) slotArg(fields []string) (int, *slot, error) {
	if len(fields) < 2 {
		return 0, nil, fmt.Errorf("%s needs a slot number", fields[0])
	}
	id, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, nil, fmt.Errorf("bad slot %q", fields[1])
	}
	sl, ok := m.slots[id]
	if !ok {
		return 0, nil, fmt.Errorf("no slot %d", id)
	}
	return id, sl, nil
}

func (m *monitorModel) sharedArg(fields []string) (int, *slot, error) {
	id, sl, err := m.slotArg(fields)
	if err != nil {
		return 0, nil, err
	}
	if sl.kind != slotShared {
		return 0, nil, fmt.Errorf("slot %d is not a shared handle", id)
	}
	return id, sl, nil
}

func (m *monitorModel) dropAll() {
	for _, sl := range m.slots {
		if sl.kind == slotShared {
			sl.shared.Drop()
		} else {
			sl.weak.Drop()
		}
	}
	m.slots = make(map[int]*slot)
	m.reg.Close()
}

func (m *monitorModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("arcmon"))
	b.WriteString("\n\n")

	if len(m.slots) == 0 {
		b.WriteString(helpStyle.Render("no handles; try: new cache"))
		b.WriteString("\n")
	} else {
		ids := make([]int, 0, len(m.slots))
		for id := range m.slots {
			ids = append(ids, id)
		}
		sort.Ints(ids)

		for _, id := range ids {
			sl := m.slots[id]
			switch sl.kind {
			case slotShared:
				line := fmt.Sprintf("[%2d] shared %-12s strong=%d", id, sl.label, sl.shared.UseCount())
				b.WriteString(sharedStyle.Render(line))
			case slotWeak:
				if sl.weak.Expired() {
					b.WriteString(deadStyle.Render(fmt.Sprintf("[%2d] weak   %-12s expired", id, sl.label)))
				} else {
					b.WriteString(weakStyle.Render(fmt.Sprintf("[%2d] weak   %-12s alive", id, sl.label)))
				}
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("control blocks tracked: %d", m.reg.Len()))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render("error: " + m.err.Error()))
		b.WriteString("\n")
	} else if m.result != "" {
		b.WriteString(resultStyle.Render(m.result))
		b.WriteString("\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: run command • q: quit"))
	b.WriteString("\n")

	return b.String()
}
