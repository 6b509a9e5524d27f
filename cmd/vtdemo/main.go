// Command vtdemo is a terminal-widget demo: it spawns a shell behind a PTY,
// feeds its output through runtime.Facade, records each read against a
// flowctl.Controller channel, and renders the resulting grid with Bubble Tea +
// Lip Gloss. Grounded on the teacher's cli/terminal.go + cli/example/main.go
// run loop, re-expressed with the pack's TUI stack (andyrewlee-amux's
// bubbletea+lipgloss usage) instead of the teacher's raw differential ANSI
// renderer, and github.com/spf13/cobra for flags (grounded on
// noppefoxwolf-vibetunnel's command surface).
package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vtcore/vtcore"
	"github.com/vtcore/vtcore/flowctl"
	"github.com/vtcore/vtcore/runtime"
)

var (
	flagRows   int
	flagCols   int
	flagSpec   string
	flagShell  string
	flagWindow int
)

func main() {
	root := &cobra.Command{
		Use:   "vtdemo",
		Short: "Run a shell inside a vtcore-backed terminal widget",
		RunE:  run,
	}
	root.Flags().IntVar(&flagRows, "rows", 24, "terminal rows")
	root.Flags().IntVar(&flagCols, "cols", 80, "terminal columns")
	root.Flags().StringVar(&flagSpec, "spec", "vt220", "terminal spec: vt100|vt220|vt320|vt420|vt520|vt525")
	root.Flags().StringVar(&flagShell, "shell", "", "shell to run (default $SHELL or /bin/sh)")
	root.Flags().IntVar(&flagWindow, "window", 8192, "flow-control window target in bytes")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	log, _ := zap.NewProduction()
	defer log.Sync()

	shell := flagShell
	if shell == "" {
		shell = os.Getenv("SHELL")
	}
	if shell == "" {
		shell = "/bin/sh"
	}

	facade := runtime.New(vtcore.CapabilityRequest{Spec: vtcore.Spec(flagSpec)}, flagRows, flagCols, log)

	term := &hostPTY{}
	child := exec.Command(shell)
	if err := term.Start(child); err != nil {
		return err
	}
	if err := term.Resize(flagCols, flagRows); err != nil {
		log.Warn("initial resize failed", zap.Error(err))
	}

	flow := flowctl.NewController()
	channel := flowctl.NewChannelID()
	flow.Register(channel, flowctl.RegisterOptions{WindowTarget: flagWindow, MaxWindow: flagWindow * 4})

	m := &model{
		facade:  facade,
		pty:     term,
		flow:    flow,
		channel: channel,
		log:     log,
		rows:    flagRows,
		cols:    flagCols,
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	go m.pumpPTY(p)
	_, err := p.Run()
	term.Close()
	return err
}

type ptyOutputMsg []byte
type ptyClosedMsg struct{ err error }

// pumpPTY reads child output and forwards it to the Bubble Tea program.
// Each read is recorded as a data receipt on the flow-control channel, and
// a credit grant is then planned and logged; reads never wait for credit
// and no pause reason is ever set.
func (m *model) pumpPTY(p *tea.Program) {
	buf := make([]byte, 4096)
	for {
		n, err := m.pty.Read(buf)
		if n > 0 {
			chunk := append([]byte(nil), buf[:n]...)
			m.flow.ApplyDataReceipt(m.channel, len(chunk))
			p.Send(ptyOutputMsg(chunk))
			if _, grant := m.flow.PlanCreditGrant(m.channel); grant != nil {
				m.log.Debug("credit granted", zap.Int("grant", grant.Grant))
			}
		}
		if err != nil {
			p.Send(ptyClosedMsg{err: err})
			return
		}
	}
}

type model struct {
	facade  *runtime.Facade
	pty     *hostPTY
	flow    *flowctl.Controller
	channel flowctl.ChannelID
	log     *zap.Logger
	rows    int
	cols    int
	closed  bool
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ptyOutputMsg:
		m.facade.WriteBytes(msg)
		return m, nil
	case ptyClosedMsg:
		m.closed = true
		return m, tea.Quit
	case tea.WindowSizeMsg:
		m.rows, m.cols = msg.Height, msg.Width
		m.pty.Resize(m.cols, m.rows)
		return m, nil
	case tea.KeyMsg:
		return m, m.forwardKey(msg)
	}
	return m, nil
}

func (m *model) forwardKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC && msg.Alt {
		return tea.Quit
	}
	ev := keyMsgToHostEvent(msg)
	updates := m.facade.DispatchEvent(ev)
	for _, u := range updates {
		if u.Kind == vtcore.UpdateResponse {
			m.pty.Write(u.ResponseBytes)
		}
	}
	return nil
}

func keyMsgToHostEvent(msg tea.KeyMsg) runtime.HostEvent {
	k := runtime.KeyEvent{}
	switch msg.Type {
	case tea.KeyRunes:
		return runtime.HostEvent{Kind: runtime.HostText, Text: string(msg.Runes)}
	case tea.KeyEnter:
		k.Name = "Enter"
	case tea.KeyTab:
		k.Name = "Tab"
	case tea.KeyBackspace:
		k.Name = "Backspace"
	case tea.KeyEsc:
		k.Name = "Escape"
	case tea.KeyUp:
		k.Name = "Up"
	case tea.KeyDown:
		k.Name = "Down"
	case tea.KeyLeft:
		k.Name = "Left"
	case tea.KeyRight:
		k.Name = "Right"
	case tea.KeyHome:
		k.Name = "Home"
	case tea.KeyEnd:
		k.Name = "End"
	case tea.KeyPgUp:
		k.Name = "PageUp"
	case tea.KeyPgDown:
		k.Name = "PageDown"
	case tea.KeyDelete:
		k.Name = "Delete"
	case tea.KeyCtrlA, tea.KeyCtrlB, tea.KeyCtrlC, tea.KeyCtrlD:
		k.Name = strings.TrimPrefix(msg.String(), "ctrl+")
		k.Ctrl = true
	default:
		k.Name = msg.String()
	}
	return runtime.HostEvent{Kind: runtime.HostKey, Key: k}
}

var screenStyle = lipgloss.NewStyle()

func (m *model) View() string {
	if m.closed {
		return "process exited\n"
	}
	snap := m.facade.Snapshot()
	var b strings.Builder
	for r := 0; r < snap.Rows; r++ {
		for c := 0; c < snap.Columns; c++ {
			cell := snap.Buffer[r][c]
			ch := cell.Char
			if ch == 0 {
				ch = ' '
			}
			b.WriteRune(ch)
		}
		if r < snap.Rows-1 {
			b.WriteByte('\n')
		}
	}
	return screenStyle.Render(b.String())
}
