// Package tui is the interactive control panel: dimension fields, mount,
// mode and light selectors, and a top-down plan of the zone that shows the
// dimension annotations and takes pointer taps.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"mocap-zone-configurator/internal/config"
	"mocap-zone-configurator/internal/host"
	"mocap-zone-configurator/internal/logging"
	"mocap-zone-configurator/internal/overlay"
	"mocap-zone-configurator/internal/store"
	"mocap-zone-configurator/internal/zone"
)

// FrameInterval is the panel refresh rate.
const FrameInterval = time.Second / 60

// maxFrameDelta caps the animation step after a stall so the camera does not
// jump to the end of a transition.
const maxFrameDelta = 100 * time.Millisecond

type frameMsg time.Time

// ConfigMsg carries a re-loaded config file into the program.
type ConfigMsg struct {
	Config config.Config
	Err    error
}

// Model is the bubbletea model of the control panel.
type Model struct {
	host   *host.Host
	store  *store.Store
	styles Styles
	logger *zap.Logger

	inputs [4]textinput.Model
	focus  int // index into inputs, or -1
	frame  host.Frame
	last   time.Time
	status string

	width, height int
}

// New builds the panel on top of h.
func New(h *host.Host, logger *zap.Logger) Model {
	m := Model{
		host:   h,
		store:  h.Store(),
		styles: NewStyles(),
		logger: logging.OrNop(logger),
		focus:  -1,
	}
	for i, d := range zone.Dimensions {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 6
		ti.Width = 6
		ti.Placeholder = d.String()
		m.inputs[i] = ti
	}
	m.frame = h.Tick(0, time.Now())
	m.syncInputs()
	return m
}

// Frame returns the last frame the panel drew.
func (m Model) Frame() host.Frame { return m.frame }

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, nextFrame())
}

func nextFrame() tea.Cmd {
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// Update handles input and the frame tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		now := time.Time(msg)
		m = m.advance(now)
		return m, nextFrame()

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case ConfigMsg:
		if msg.Err != nil {
			m.status = "config: " + msg.Err.Error()
			return m, nil
		}
		msg.Config.Initial.Apply(m.store)
		m.status = "config reloaded"
		m.syncInputs()
		return m, nil

	case tea.MouseMsg:
		m.pointer(msg)
		return m, nil

	case tea.KeyMsg:
		if m.focus >= 0 {
			return m.updateFocused(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

// advance ticks the host to now.
func (m Model) advance(now time.Time) Model {
	var delta time.Duration
	if !m.last.IsZero() {
		delta = now.Sub(m.last)
	}
	if delta > maxFrameDelta {
		delta = maxFrameDelta
	}
	m.last = now
	m.frame = m.host.Tick(delta, now)
	m.syncInputs()
	return m
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab":
		return m.setFocus(0)
	case "shift+tab":
		return m.setFocus(len(m.inputs) - 1)
	case "1":
		m.store.SetMocapMode(store.Setup)
	case "2":
		m.store.SetMocapMode(store.BodyOnly)
	case "3":
		if !m.store.Snapshot().Available(store.HandsOn) {
			m.status = "hands-on capture switches the light back to bright"
		}
		m.store.SetMocapMode(store.HandsOn)
	case "b":
		m.store.SetLightCondition(store.Bright)
	case "l":
		m.store.SetLightCondition(store.Less)
	case "d":
		if m.store.Snapshot().Mode == store.HandsOn {
			m.status = "dark light ends hands-on capture"
		}
		m.store.SetLightCondition(store.Dark)
	case "t":
		m.store.SetInstallationHeight(store.Tripod)
	case "c":
		m.store.SetInstallationHeight(store.Ceiling)
	case "p":
		m.host.SetPinned(!m.host.Pinned())
	}
	return m, nil
}

func (m Model) updateFocused(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		return m.setFocus(-1)
	case "enter":
		m.apply(m.focus)
		return m.setFocus(-1)
	case "tab":
		m.apply(m.focus)
		if m.focus == len(m.inputs)-1 {
			return m.setFocus(-1)
		}
		return m.setFocus(m.focus + 1)
	case "shift+tab":
		m.apply(m.focus)
		return m.setFocus(m.focus - 1)
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// apply writes the focused field through the store. An empty field keeps
// the current value.
func (m *Model) apply(i int) {
	text := strings.TrimSpace(m.inputs[i].Value())
	if text == "" {
		return
	}
	d := zone.Dimensions[i]
	v := zone.ParseDimension(text)
	m.store.SetZoneSettings(zone.PatchOf(d, v))
	if got := m.store.Snapshot().Zone.Value(d); got != v {
		m.status = fmt.Sprintf("%s limited to %s", d, overlay.Label(got))
	} else {
		m.status = ""
	}
	m.logger.Debug("dimension entered", logging.Dimension(d), zap.String("text", text))
}

func (m Model) setFocus(i int) (tea.Model, tea.Cmd) {
	if m.focus >= 0 {
		m.inputs[m.focus].Blur()
	}
	m.focus = i
	m.syncInputs()
	if i < 0 {
		return m, nil
	}
	// Start from an empty field; the placeholder shows the current value.
	m.inputs[i].Reset()
	return m, m.inputs[i].Focus()
}

// syncInputs shows the store values in every field not being edited.
func (m *Model) syncInputs() {
	s := m.store.Snapshot().Zone
	for i, d := range zone.Dimensions {
		v := fmt.Sprintf("%.1f", s.Value(d))
		m.inputs[i].Placeholder = v
		if i != m.focus {
			m.inputs[i].SetValue(v)
		}
	}
}

// pointer converts a mouse event on the plan into a gesture sample.
func (m *Model) pointer(msg tea.MouseMsg) {
	ev := overlay.PointerEvent{
		X:       float64(msg.X * cellPixelsX),
		Y:       float64(msg.Y * cellPixelsY),
		HitZone: hitZone(m.store.Snapshot().Zone, msg.X, msg.Y),
	}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		ev.Phase = overlay.PointerDown
	case tea.MouseActionMotion:
		ev.Phase = overlay.PointerMove
	case tea.MouseActionRelease:
		ev.Phase = overlay.PointerUp
	default:
		return
	}
	if m.host.Pointer(ev) {
		m.frame.Pinned = m.host.Pinned()
	}
}

// View renders the plan beside the control panel.
func (m Model) View() string {
	header := m.styles.Header.Render("mocap zone configurator")
	plan := m.styles.Box.Render(buildPlan(m.frame).render(m.styles))
	body := lipgloss.JoinHorizontal(lipgloss.Top, plan, " ", m.panel())
	footer := m.styles.Footer.Render("tab edit · 1/2/3 mode · b/l/d light · t/c mount · p/click zone pin labels · q quit")
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m Model) panel() string {
	s := m.frame.Snapshot
	var b strings.Builder

	b.WriteString(m.styles.Section.UnsetMarginTop().Render("Zone"))
	for i, d := range zone.Dimensions {
		b.WriteString("\n")
		lo, hi := zone.Bounds(d, s.Zone)
		marker := "  "
		if i == m.focus {
			marker = "> "
		}
		fmt.Fprintf(&b, "%s%s%s %s", marker, m.styles.Label.Render(d.String()), m.inputs[i].View(),
			m.styles.Hint.Render(fmt.Sprintf("[%.1f, %.1f]", lo, hi)))
	}

	b.WriteString("\n" + m.styles.Section.Render("Mount"))
	b.WriteString("\n" + m.choices(len(store.InstallationHeights), func(i int) (string, bool, bool) {
		h := store.InstallationHeights[i]
		return h.Label(), h == s.Installation, true
	}))

	b.WriteString("\n" + m.styles.Section.Render("Mode"))
	b.WriteString("\n" + m.choices(len(store.MocapModes), func(i int) (string, bool, bool) {
		md := store.MocapModes[i]
		return md.Label(), md == s.Mode, s.Available(md)
	}))

	b.WriteString("\n" + m.styles.Section.Render("Light"))
	b.WriteString("\n" + m.choices(len(store.LightConditions), func(i int) (string, bool, bool) {
		c := store.LightConditions[i]
		return c.Label(), c == s.Light, true
	}))

	camera := "settled"
	if m.frame.Animating {
		camera = "moving"
	}
	b.WriteString("\n" + m.styles.Section.Render("View"))
	fmt.Fprintf(&b, "\ncamera %s · clip %s · labels %s", camera, clipName(m.frame), pinnedName(m.frame.Pinned))
	if m.status != "" {
		b.WriteString("\n" + m.styles.Status.Render(m.status))
	}
	return b.String()
}

func (m Model) choices(n int, at func(int) (label string, selected, enabled bool)) string {
	parts := make([]string, n)
	for i := range parts {
		label, selected, enabled := at(i)
		switch {
		case selected:
			parts[i] = m.styles.Selected.Render(label)
		case !enabled:
			parts[i] = m.styles.Disabled.Render(label)
		default:
			parts[i] = m.styles.Option.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func clipName(f host.Frame) string {
	if f.Clip == "" {
		return "t-pose"
	}
	return string(f.Clip)
}

func pinnedName(p bool) string {
	if p {
		return "pinned"
	}
	return "on change"
}
