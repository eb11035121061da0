package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// Pager shows text in ov while Bubble Tea has released the terminal
type Pager struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPager creates a pager. SetProgram must be called before Show.
func NewPager() *Pager {
	return &Pager{}
}

// SetProgram sets the program whose terminal the pager borrows
func (p *Pager) SetProgram(program *tea.Program) {
	p.program = program
}

// Show blocks until the user quits the pager
func (p *Pager) Show(content string) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	p.program.Send(pauseRenderingMsg{})
	defer p.program.Send(resumeRenderingMsg{})

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return fmt.Errorf("failed to release terminal: %w", err)
	}

	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return fmt.Errorf("failed to create pager: %w", err)
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
