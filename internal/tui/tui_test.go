package tui

import (
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/hexlife/pkg/config"
	errs "github.com/matzehuels/hexlife/pkg/errors"
)

func newModel(t *testing.T) Model {
	t.Helper()
	m, err := NewModel(config.Default(), log.New(io.Discard), DefaultOptions())
	if err != nil {
		t.Fatalf("NewModel() error: %v", err)
	}
	return m
}

func TestWindowSizeResizesApp(t *testing.T) {
	m := newModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 41})
	m = next.(Model)

	if w, h := m.App().Layout().WindowSize(); w != 960 || h != 640 {
		t.Errorf("WindowSize() = %dx%d, want 960x640", w, h)
	}
	if m.App().Fallback() {
		t.Error("Fallback() = true, want subregion")
	}
}

func TestTickRenders(t *testing.T) {
	m := newModel(t)
	next, cmd := m.Update(tickMsg(time.Now()))
	m = next.(Model)

	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if m.App().Frames() != 1 {
		t.Errorf("Frames() = %d, want 1", m.App().Frames())
	}
	view := m.View()
	if !strings.Contains(view, "HexLife") {
		t.Error("View() missing title")
	}
	if !strings.Contains(view, "frame 1") {
		t.Error("View() missing status line")
	}
}

func TestQuit(t *testing.T) {
	m := newModel(t)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	m = next.(Model)

	if cmd == nil {
		t.Fatal("q should return tea.Quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit the program")
	}
	if m.App().Running() {
		t.Error("app still running after quit")
	}
}

func TestNewModelInvalidCellSize(t *testing.T) {
	_, err := NewModel(config.Default(), log.New(io.Discard), Options{})
	if !errs.Is(err, errs.ErrCodeInvalidConfig) {
		t.Errorf("NewModel() error = %v, want INVALID_CONFIG", err)
	}
}
