package currency

// State identifies the selector's interaction mode. Using a single enum
// keeps impossible flag combinations (such as editing while closed)
// unrepresentable.
type State int

const (
	// StateClosed shows the selected currency's code; no dropdown.
	StateClosed State = iota
	// StateBrowsing shows the dropdown with no active text query.
	StateBrowsing
	// StateEditing shows the dropdown filtered by the typed query.
	StateEditing
)

// Selector models the currency combobox: a text input that filters the
// registry and a dropdown navigated by keyboard or pointer. It is a
// controlled component: the caller supplies the current value via SetValue
// and receives new selections through the onSelect callback.
type Selector struct {
	list      []Currency
	state     State
	query     string
	highlight int
	value     Currency
	hasValue  bool
	onSelect  func(Currency)
}

// NewSelector creates a selector over the given reference table. onSelect
// may be nil when the caller polls Value instead.
func NewSelector(list []Currency, onSelect func(Currency)) *Selector {
	return &Selector{list: list, onSelect: onSelect}
}

// SetValue sets the controlled current value shown while closed.
func (s *Selector) SetValue(c Currency) {
	s.value = c
	s.hasValue = true
}

// State returns the current interaction mode.
func (s *Selector) State() State {
	return s.state
}

// IsOpen reports whether the dropdown is visible.
func (s *Selector) IsOpen() bool {
	return s.state != StateClosed
}

// Query returns the active search text.
func (s *Selector) Query() string {
	return s.query
}

// Highlight returns the index of the highlighted entry in Filtered.
func (s *Selector) Highlight() int {
	return s.highlight
}

// Value returns the current selection and whether one exists.
func (s *Selector) Value() (Currency, bool) {
	return s.value, s.hasValue
}

// Filtered returns the entries matching the active query.
func (s *Selector) Filtered() []Currency {
	return Filter(s.list, s.query)
}

// DisplayValue is the text shown in the input: the query while editing,
// otherwise the selected currency's code.
func (s *Selector) DisplayValue() string {
	if s.state == StateEditing {
		return s.query
	}
	if s.hasValue {
		return s.value.Code
	}
	return ""
}

// Focus opens the dropdown without forcing edit mode.
func (s *Selector) Focus() {
	if s.state == StateClosed {
		s.state = StateBrowsing
	}
}

// SetQuery records a keystroke that changed the text. The filter is
// recomputed by Filtered and the highlight resets to the first match.
func (s *Selector) SetQuery(query string) {
	s.query = query
	s.state = StateEditing
	s.highlight = 0
}

// Backspace handles the delete keys. Pressed while a selection is displayed
// and no query is active, it switches to edit mode with an empty query
// rather than deleting characters from the displayed code. While editing it
// removes the last rune of the query.
func (s *Selector) Backspace() {
	if s.state != StateEditing {
		if s.query == "" && s.hasValue {
			s.state = StateEditing
			s.query = ""
			s.highlight = 0
		}
		return
	}
	if s.query != "" {
		runes := []rune(s.query)
		s.query = string(runes[:len(runes)-1])
		s.highlight = 0
	}
}

// ArrowDown opens the dropdown if needed and moves the highlight down,
// clamped to the filtered list.
func (s *Selector) ArrowDown() {
	if s.state == StateClosed {
		s.state = StateBrowsing
	}
	if max := len(s.Filtered()) - 1; s.highlight < max {
		s.highlight++
	}
}

// ArrowUp moves the highlight up, clamped to zero.
func (s *Selector) ArrowUp() {
	if s.highlight > 0 {
		s.highlight--
	}
}

// Enter commits the highlighted entry, if any.
func (s *Selector) Enter() {
	filtered := s.Filtered()
	if s.highlight >= 0 && s.highlight < len(filtered) {
		s.commit(filtered[s.highlight])
	}
}

// Escape closes the dropdown and discards any typed query; the previous
// selection remains displayed.
func (s *Selector) Escape() {
	s.close()
}

// ClickOutside behaves like Escape: the interaction is abandoned.
func (s *Selector) ClickOutside() {
	s.close()
}

// SelectIndex commits the entry at the given index of the filtered list.
// This corresponds to a pointer mousedown on a dropdown row, which fires
// before any outside-click handling.
func (s *Selector) SelectIndex(i int) {
	filtered := s.Filtered()
	if i >= 0 && i < len(filtered) {
		s.commit(filtered[i])
	}
}

// Reset force-selects the default currency and closes the dropdown,
// discarding any query.
func (s *Selector) Reset() {
	if len(s.list) == 0 {
		s.close()
		return
	}
	s.commit(s.list[0])
}

func (s *Selector) commit(c Currency) {
	s.value = c
	s.hasValue = true
	if s.onSelect != nil {
		s.onSelect(c)
	}
	s.close()
}

func (s *Selector) close() {
	s.state = StateClosed
	s.query = ""
	s.highlight = 0
}
