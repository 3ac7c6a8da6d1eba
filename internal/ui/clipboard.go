package ui

import (
	"io"
	"os"
	"strings"

	osc52 "github.com/aymanbagabas/go-osc52/v2"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

const clipboardLimit = 100 * 1024

// copyCmd writes text to the terminal clipboard with OSC 52, wrapped for
// tmux or screen when running inside one.
func copyCmd(w io.Writer, text string) tea.Cmd {
	return func() tea.Msg {
		_, _ = clipboardSequence(ansi.Strip(text), os.Getenv("TERM"), os.Getenv("TMUX")).WriteTo(w)
		return nil
	}
}

func clipboardSequence(text, term, tmux string) osc52.Sequence {
	seq := osc52.New(text).Limit(clipboardLimit)

	term = strings.ToLower(term)
	if tmux != "" || strings.HasPrefix(term, "tmux") {
		seq = seq.Tmux()
	} else if strings.HasPrefix(term, "screen") {
		seq = seq.Screen()
	}
	return seq
}
