// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/devshell/runner.go
// Summary: Standalone shell that hosts one tab of pane contents on a tcell screen.
// Usage: cmd/texelpad builds a Shell and calls Run; tests swap in a simulation screen.

package devshell

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/go-errors/errors"
	"go.uber.org/zap"

	"github.com/framegrace/texelpad/internal/logging"
	"github.com/framegrace/texelpad/registry"
	"github.com/framegrace/texelpad/texel"
)

var screenFactory = func() (texel.ScreenDriver, error) { return tcell.NewScreen() }

// SetScreenFactory overrides the screen factory used by Run. Passing nil restores the default.
func SetScreenFactory(factory func() (tcell.Screen, error)) {
	if factory == nil {
		screenFactory = func() (texel.ScreenDriver, error) { return tcell.NewScreen() }
		return
	}
	screenFactory = func() (texel.ScreenDriver, error) { return factory() }
}

// Options controls what the shell opens with.
type Options struct {
	// DefaultApp is the registry name used for initial panes and Ctrl-N.
	DefaultApp string
	// Panes is the number of panes opened at start; at least one.
	Panes int
}

// Shell runs a single tab on a terminal screen.
type Shell struct {
	reg  *registry.Registry
	opts Options
	tab  *texel.Tab
	log  *zap.Logger

	mu      sync.Mutex
	screen  texel.ScreenDriver
	pending []func()

	quit bool
}

// New builds a shell. Panes are created when Run starts.
func New(reg *registry.Registry, opts Options) *Shell {
	if opts.Panes < 1 {
		opts.Panes = 1
	}
	return &Shell{
		reg:  reg,
		opts: opts,
		tab:  texel.NewTab(),
		log:  logging.Named("devshell"),
	}
}

// Tab returns the hosted tab. Only touch it from functions passed to Post.
func (s *Shell) Tab() *texel.Tab { return s.tab }

// Post schedules fn on the event loop and wakes it. Safe from any goroutine;
// functions posted before Run starts run once the screen is up.
func (s *Shell) Post(fn func()) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.pending = append(s.pending, fn)
	screen := s.screen
	s.mu.Unlock()
	if screen != nil {
		_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
	}
}

// Stop asks the event loop to exit.
func (s *Shell) Stop() {
	s.Post(func() { s.quit = true })
}

func (s *Shell) drainPosted() {
	s.mu.Lock()
	fns := s.pending
	s.pending = nil
	s.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// NewPane creates a pane of the named app in the tab. Call it on the event loop.
func (s *Shell) NewPane(name string) error {
	content, err := s.reg.CreateApp(name)
	if err != nil {
		return fmt.Errorf("new pane: %w", err)
	}
	s.tab.AddPane(content)
	return nil
}

// Run opens the screen and processes events until the last pane closes, Ctrl-Q
// is pressed, or ctx is done. A panic on the event loop restores the terminal
// and comes back as an error.
func (s *Shell) Run(ctx context.Context) (err error) {
	screen, err := screenFactory()
	if err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer screen.Fini()
	defer func() {
		if r := recover(); r != nil {
			wrapped := errors.Wrap(r, 2)
			s.log.Error("shell panic", zap.String("stack", wrapped.ErrorStack()))
			err = fmt.Errorf("shell panic: %v", r)
		}
	}()
	screen.SetStyle(tcell.StyleDefault)
	screen.HideCursor()
	screen.EnableMouse()
	defer screen.DisableMouse()
	screen.EnablePaste()
	defer screen.DisablePaste()

	refreshCh := make(chan bool, 1)
	s.tab.SetRefreshNotifier(refreshCh)
	s.tab.Resize(screen.Size())
	for i := 0; i < s.opts.Panes; i++ {
		if err := s.NewPane(s.opts.DefaultApp); err != nil {
			return err
		}
	}

	s.mu.Lock()
	s.screen = screen
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.screen = nil
		s.mu.Unlock()
	}()

	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			select {
			case <-refreshCh:
				_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
			case <-ctx.Done():
				s.Stop()
				return
			case <-done:
				return
			}
		}
	}()

	s.log.Info("shell started", zap.Int("panes", s.opts.Panes), zap.String("app", s.opts.DefaultApp))
	s.drainPosted()
	s.draw(screen)

	var paste strings.Builder
	inPaste := false
	for !s.quit && !s.tab.Empty() {
		ev := screen.PollEvent()
		switch tev := ev.(type) {
		case nil:
			return nil
		case *tcell.EventInterrupt:
			s.drainPosted()
		case *tcell.EventResize:
			s.tab.Resize(tev.Size())
		case *tcell.EventPaste:
			if tev.Start() {
				inPaste = true
				paste.Reset()
			} else if tev.End() {
				inPaste = false
				if paste.Len() > 0 {
					s.tab.HandlePaste(paste.String())
				}
				paste.Reset()
			}
		case *tcell.EventKey:
			if inPaste {
				switch tev.Key() {
				case tcell.KeyRune:
					paste.WriteRune(tev.Rune())
				case tcell.KeyEnter, tcell.KeyLF:
					paste.WriteByte('\n')
				case tcell.KeyTab:
					paste.WriteByte('\t')
				}
				continue
			}
			s.handleKey(tev)
		case *tcell.EventMouse:
			s.tab.HandleMouse(tev)
		}
		s.draw(screen)
	}
	s.log.Info("shell stopped", zap.Bool("empty", s.tab.Empty()))
	return nil
}

func (s *Shell) handleKey(ev *tcell.EventKey) {
	switch {
	case ctrl(ev, tcell.KeyCtrlQ, 'q'):
		s.quit = true
	case ctrl(ev, tcell.KeyCtrlW, 'w'):
		if p := s.tab.ActivePane(); p != nil {
			p.Content().Close()
		}
	case ctrl(ev, tcell.KeyCtrlN, 'n'):
		if err := s.NewPane(s.opts.DefaultApp); err != nil {
			s.log.Warn("cannot open pane", zap.Error(err))
		}
	case ev.Modifiers()&tcell.ModAlt != 0 && ev.Key() == tcell.KeyLeft:
		s.tab.FocusPrev()
	case ev.Modifiers()&tcell.ModAlt != 0 && ev.Key() == tcell.KeyRight:
		s.tab.FocusNext()
	default:
		s.tab.HandleKey(ev)
	}
}

// ctrl matches both the legacy control key code and rune+ModCtrl reporting.
func ctrl(ev *tcell.EventKey, key tcell.Key, r rune) bool {
	if ev.Key() == key {
		return true
	}
	return ev.Key() == tcell.KeyRune && ev.Modifiers()&tcell.ModCtrl != 0 && ev.Rune() == r
}

func (s *Shell) draw(screen texel.ScreenDriver) {
	screen.Clear()
	texel.Present(screen, s.tab.Render())
	screen.Show()
}
