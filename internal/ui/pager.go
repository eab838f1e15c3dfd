package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
	"github.com/pkg/browser"
)

// detailPagerMsg contains the result of a detail pager command
type detailPagerMsg struct {
	name string
	err  error
}

// browserMsg contains the result of opening a repository in the browser
type browserMsg struct {
	url string
	err error
}

// PagerOps runs full-screen content outside the Bubble Tea renderer
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
	openURL func(string) error
}

// NewPagerOps creates a new PagerOps instance
func NewPagerOps() *PagerOps {
	return &PagerOps{openURL: browser.OpenURL}
}

// SetProgram sets the program reference for terminal management
func (p *PagerOps) SetProgram(program *tea.Program) {
	p.program = program
}

// ShowInPager shows content using the ov pager
func (p *PagerOps) ShowInPager(content string) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal() // Ignore error as we're in defer context
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// showDetailCmd opens the rendered detail of a repository in the pager
func (p *PagerOps) showDetailCmd(name, content string) tea.Cmd {
	return func() tea.Msg {
		return detailPagerMsg{name: name, err: p.ShowInPager(content)}
	}
}

// openBrowserCmd opens url in the system browser
func (p *PagerOps) openBrowserCmd(url string) tea.Cmd {
	return func() tea.Msg {
		if url == "" {
			return browserMsg{err: fmt.Errorf("repository has no GitHub URL")}
		}
		return browserMsg{url: url, err: p.openURL(url)}
	}
}
