package state

// IntentKind enumerates the requests a presenter can make.
type IntentKind int

const (
	IntentSwitchTab IntentKind = iota
	IntentCycleTab
	IntentTogglePause
	IntentSelectLine
	IntentClearSelection
	IntentQuit
)

// Intent is a user request coming from the presenter.
type Intent struct {
	Kind IntentKind
	Tab  int
	Seq  uint64
	Text string
}

func SwitchTab(i int) Intent { return Intent{Kind: IntentSwitchTab, Tab: i} }

func CycleTab() Intent { return Intent{Kind: IntentCycleTab} }

func TogglePause() Intent { return Intent{Kind: IntentTogglePause} }

func SelectLine(seq uint64, text string) Intent {
	return Intent{Kind: IntentSelectLine, Seq: seq, Text: text}
}

func ClearSelection() Intent { return Intent{Kind: IntentClearSelection} }

func Quit() Intent { return Intent{Kind: IntentQuit} }

// Apply executes in and reports whether it was a quit request.
func (s *Store) Apply(in Intent) bool {
	switch in.Kind {
	case IntentSwitchTab:
		s.Focus(in.Tab)
	case IntentCycleTab:
		s.CycleFocus()
	case IntentTogglePause:
		s.TogglePause()
	case IntentSelectLine:
		s.Select(in.Seq, in.Text)
	case IntentClearSelection:
		s.ClearSelection()
	case IntentQuit:
		s.quit()
		return true
	}
	return false
}
