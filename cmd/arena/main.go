// Command arena runs the simulation headlessly with a terminal UI showing
// live standings.
package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"time"

	"territory/internal/core"
	"territory/internal/sims/empire"

	tea "github.com/charmbracelet/bubbletea"
)

type model struct {
	world  *empire.World
	pacer  *core.FixedStep
	paused bool
	seed   int64

	startTime time.Time
	standings []empire.Standing
	recent    []string
	prevCells map[uint16]int

	winner    empire.Empire
	hasWinner bool
}

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*33, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *model) Init() tea.Cmd {
	return tickCmd()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "r":
			m.world.Reset(m.seed)
			m.recent = nil
			m.prevCells = nil
			m.hasWinner = false
			m.startTime = time.Now()
		}
	case tickMsg:
		if !m.paused && !m.hasWinner {
			for m.pacer.ShouldStep() {
				m.world.Step()
			}
		}
		m.refresh()
		return m, tickCmd()
	}
	return m, nil
}

// refresh pulls standings from the world and records eliminations.
func (m *model) refresh() {
	m.standings = m.world.Standings()
	cells := make(map[uint16]int, len(m.standings))
	for _, s := range m.standings {
		cells[s.Empire.ID] = s.Cells
		if m.prevCells != nil && s.Cells == 0 && m.prevCells[s.Empire.ID] > 0 {
			m.recent = append([]string{
				fmt.Sprintf("tick %d: empire %d eliminated", m.world.Tick(), s.Empire.ID),
			}, m.recent...)
			if len(m.recent) > 8 {
				m.recent = m.recent[:8]
			}
		}
	}
	m.prevCells = cells
	m.winner, m.hasWinner = m.world.Winner()
}

func (m *model) View() string {
	duration := time.Since(m.startTime)
	tick := m.world.Tick()
	tps := 0.0
	if duration.Seconds() >= 1 {
		tps = float64(tick) / duration.Seconds()
	}

	s := fmt.Sprintf("Tick:      %d\n", tick)
	s += fmt.Sprintf("Ticks/Sec: %.1f\n", tps)
	s += fmt.Sprintf("Duration:  %s\n\n", duration.Round(time.Second))

	s += "Standings:\n"
	for rank, st := range m.standings {
		s += fmt.Sprintf("  #%d empire %-3d %6d cells  %s troops\n",
			rank+1, st.Empire.ID, st.Cells, formatCount(st.Troops))
	}

	if len(m.recent) > 0 {
		s += "\nRecent:\n"
		for _, r := range m.recent {
			s += "  " + r + "\n"
		}
	}

	if m.hasWinner {
		s += fmt.Sprintf("\nEmpire %d has conquered the map.\n", m.winner.ID)
	}

	s += "\nPress q to quit, space to pause, r to reset.\n"
	return s
}

func formatCount(v uint64) string {
	switch {
	case v > 1_000_000_000:
		return strconv.FormatUint(v/1_000_000_000, 10) + "B"
	case v > 1_000_000:
		return strconv.FormatUint(v/1_000_000, 10) + "M"
	default:
		return strconv.FormatUint(v, 10)
	}
}

func main() {
	cfg := empire.DefaultConfig()
	cfg.Width = 160
	cfg.Height = 96
	cfg.Bind(flag.CommandLine)
	tps := flag.Int("tps", 120, "generations per second")
	flag.Parse()

	factory, ok := core.Lookup("empire")
	if !ok {
		log.Fatalf("empire sim not registered (have: %v)", core.Names())
	}
	sim := factory(map[string]string{
		"w":        strconv.Itoa(cfg.Width),
		"h":        strconv.Itoa(cfg.Height),
		"seed":     strconv.FormatInt(cfg.Seed, 10),
		"empires":  strconv.Itoa(cfg.Empires),
		"boundary": cfg.Boundary.String(),
		"workers":  strconv.Itoa(cfg.Params.Workers),
	})
	world, ok := sim.(*empire.World)
	if !ok {
		log.Fatalf("unexpected sim type %T", sim)
	}
	world.Reset(cfg.Seed)

	m := &model{
		world:     world,
		pacer:     core.NewFixedStep(*tps),
		seed:      cfg.Seed,
		startTime: time.Now(),
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}
