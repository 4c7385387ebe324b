package main

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// The interactive tool fixes the angle domain and baseline and derives the
// x scale from the virtual surface, matching the documented calling
// convention for embedding the generator.
const (
	formMaxPhase = 3 * math.Pi
	formOffsetY  = 400.0
)

// formField is one editable numeric parameter of the generation form.
type formField struct {
	name  string
	value float64
	step  float64
	min   float64
	max   float64
}

// Form field indices, top to bottom.
const (
	fieldNumTerms = iota
	fieldNumSamples
	fieldScaleY
	fieldDeviationX
	fieldDeviationY
	fieldNumZones
	fieldX5Width
	fieldX3Width
	fieldX2Width
	fieldCount
)

type model struct {
	width       int
	height      int
	fields      [fieldCount]formField
	selected    int
	seed        int64
	smooth      bool
	terrain     Terrain
	stats       TerrainStats
	renderer    *TerrainRenderer
	colorScheme string
	errMsg      string
	ready       bool
}

func initialModel() model {
	LogInfo("Creating initial TUI model")

	m := model{
		fields: [fieldCount]formField{
			fieldNumTerms:   {name: "terms", value: 3, step: 1, min: 1, max: 12},
			fieldNumSamples: {name: "samples", value: 100, step: 10, min: 10, max: 1000},
			fieldScaleY:     {name: "scaleY", value: 100, step: 10, min: 10, max: 300},
			fieldDeviationX: {name: "devX", value: 2, step: 1, min: 0, max: 50},
			fieldDeviationY: {name: "devY", value: 8, step: 1, min: 0, max: 100},
			fieldNumZones:   {name: "zones", value: 2, step: 1, min: 0, max: 10},
			fieldX5Width:    {name: "x5 width", value: 20, step: 5, min: 0, max: 200},
			fieldX3Width:    {name: "x3 width", value: 40, step: 5, min: 0, max: 200},
			fieldX2Width:    {name: "x2 width", value: 80, step: 5, min: 0, max: 200},
		},
		seed:        time.Now().UnixNano(),
		renderer:    NewTerrainRenderer(),
		colorScheme: "original",
	}
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

// buildConfig maps the form fields onto a generation config.
func (m model) buildConfig() TerrainConfig {
	cfg := DefaultTerrainConfig()
	cfg.NumTerms = int(m.fields[fieldNumTerms].value)
	cfg.NumSamples = int(m.fields[fieldNumSamples].value)
	cfg.ScaleY = m.fields[fieldScaleY].value
	cfg.MaxDeviationX = m.fields[fieldDeviationX].value
	cfg.MaxDeviationY = m.fields[fieldDeviationY].value
	cfg.NumZones = int(m.fields[fieldNumZones].value)
	cfg.ZoneWidths = [3]float64{
		m.fields[fieldX5Width].value,
		m.fields[fieldX3Width].value,
		m.fields[fieldX2Width].value,
	}
	cfg.MaxPhase = formMaxPhase
	cfg.ScaleX = surfaceWidth / formMaxPhase
	cfg.OffsetY = formOffsetY
	cfg.SmoothDeviation = m.smooth
	cfg.Seed = m.seed
	return cfg
}

func (m *model) regenerate() {
	cfg := m.buildConfig()
	gen, err := NewGenerator(cfg)
	if err != nil {
		m.errMsg = err.Error()
		LogError("invalid config from form: %v", err)
		return
	}
	m.errMsg = ""
	m.terrain = gen.Generate()
	m.stats = SummarizeTerrain(m.terrain)
	LogInfo("generated terrain: %d points, %d flat spans, seed %d",
		m.stats.Points, m.stats.FlatSpans, m.seed)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			LogInfo("User requested quit via key: %s", msg.String())
			return m, tea.Quit
		case "up", "k":
			m.selected = (m.selected + fieldCount - 1) % fieldCount
		case "down", "j", "tab":
			m.selected = (m.selected + 1) % fieldCount
		case "left", "h":
			f := &m.fields[m.selected]
			f.value = math.Max(f.min, f.value-f.step)
			m.regenerate()
		case "right", "l":
			f := &m.fields[m.selected]
			f.value = math.Min(f.max, f.value+f.step)
			m.regenerate()
		case "g", "enter":
			m.seed = time.Now().UnixNano()
			m.regenerate()
		case "s":
			m.smooth = !m.smooth
			m.regenerate()
		case " ": // spacebar
			if m.colorScheme == "original" {
				m.colorScheme = "retro"
			} else {
				m.colorScheme = "original"
			}
			m.renderer.SetColorScheme(m.colorScheme)
			LogDebug("Color scheme changed to: %s", m.colorScheme)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		LogInfo("Window resized: %dx%d", m.width, m.height)
		if m.terrain == nil {
			m.regenerate()
		}
	}

	return m, nil
}

func (m model) renderForm() string {
	chipStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	selectedStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFD400"))

	chips := make([]string, 0, fieldCount+1)
	for i, f := range m.fields {
		chip := fmt.Sprintf("%s: %g", f.name, f.value)
		if i == m.selected {
			chips = append(chips, selectedStyle.Render("▸"+chip))
		} else {
			chips = append(chips, chipStyle.Render(" "+chip))
		}
	}
	if m.smooth {
		chips = append(chips, chipStyle.Render(" [smooth]"))
	}

	// Two rows so the form stays readable on narrow terminals.
	half := (len(chips) + 1) / 2
	return strings.Join(chips[:half], " ") + "\n" + strings.Join(chips[half:], " ")
}

func (m model) View() string {
	if !m.ready || m.width == 0 {
		return "Initializing terrain..."
	}

	header := RenderStats(m.stats, m.seed, m.width)
	form := m.renderForm()

	// header is 4 lines, form 2, footer 2
	terrainHeight := m.height - 8
	if terrainHeight < 1 {
		terrainHeight = 1
	}

	var body string
	if m.errMsg != "" {
		body = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E10600")).
			Render("config error: " + m.errMsg)
	} else {
		body = m.renderer.Render(m.terrain, m.width, terrainHeight)
	}

	schemeLabel := "Original"
	if m.colorScheme == "retro" {
		schemeLabel = "Retro"
	}

	footer := lipgloss.NewStyle().
		Faint(true).
		Foreground(lipgloss.Color("#888888")).
		Render("\n↑↓ select | ←→ adjust | ENTER reroll | 's' smooth | SPACE colors | 'q' quit | " + schemeLabel)

	return fmt.Sprintf("%s%s\n%s%s", header, form, body, footer)
}
