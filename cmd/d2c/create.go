package main

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/dev2cloud/d2c-go/models"
	"github.com/dev2cloud/d2c-go/services"
)

func createCmd() *cobra.Command {
	var (
		timeout time.Duration
		noWait  bool
	)

	cmd := &cobra.Command{
		Use:   "create <postgres|redis>",
		Short: "Provision a sandbox and wait until it is running",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sandboxType := models.SandboxType(args[0])
			if sandboxType != models.SandboxTypePostgres && sandboxType != models.SandboxTypeRedis {
				return fmt.Errorf("unknown sandbox type %q (want postgres or redis)", args[0])
			}
			return runCreate(sandboxType, timeout, noWait)
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", services.DefaultCreateTimeout, "how long to wait for the sandbox to become ready")
	cmd.Flags().BoolVar(&noWait, "no-wait", false, "return immediately with the pending sandbox")

	return cmd
}

func runCreate(sandboxType models.SandboxType, timeout time.Duration, noWait bool) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	if noWait {
		sandbox, err := client.Sandbox.Create(context.Background(), sandboxType)
		if err != nil {
			return err
		}
		logDebug("created sandbox %s (no-wait)", sandbox.ID)
		fmt.Println(successStyle.Render("✓ Sandbox " + sandbox.ID + " created"))
		fmt.Println(dimStyle.Render("  Check progress with: d2c get " + sandbox.ID))
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := newCreateModel(sandboxType, func() (*models.Sandbox, error) {
		return client.Sandbox.CreateAndWait(ctx, sandboxType, timeout)
	}, cancel)

	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return err
	}

	result := final.(createModel)
	if result.err != nil {
		return result.err
	}

	sandbox := result.sandbox
	logDebug("sandbox %s running after %s", sandbox.ID, time.Since(result.start).Round(time.Second))

	fmt.Println(successStyle.Render("✓ Sandbox " + sandbox.ID + " is running"))
	printSandbox(sandbox)
	return nil
}

// createModel is the Bubble Tea model shown while a sandbox is
// provisioning. The actual work happens in a command; the model only
// animates and waits for createDoneMsg.
type createModel struct {
	spinner     spinner.Model
	sandboxType models.SandboxType
	start       time.Time

	run    func() (*models.Sandbox, error)
	cancel context.CancelFunc

	sandbox *models.Sandbox
	err     error
	done    bool
}

type createDoneMsg struct {
	sandbox *models.Sandbox
	err     error
}

func newCreateModel(sandboxType models.SandboxType, run func() (*models.Sandbox, error), cancel context.CancelFunc) createModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(statusPending),
	)
	return createModel{
		spinner:     s,
		sandboxType: sandboxType,
		start:       time.Now(),
		run:         run,
		cancel:      cancel,
	}
}

func (m createModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		func() tea.Msg {
			sandbox, err := m.run()
			return createDoneMsg{sandbox: sandbox, err: err}
		},
	)
}

func (m createModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case createDoneMsg:
		m.sandbox, m.err = msg.sandbox, msg.err
		m.done = true
		return m, tea.Quit

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.cancel()
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m createModel) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("%s Provisioning %s sandbox… %s\n",
		m.spinner.View(),
		m.sandboxType,
		dimStyle.Render(time.Since(m.start).Round(time.Second).String()),
	)
}
