package currency

import "testing"

func newTestSelector(t *testing.T) (*Selector, *[]Currency) {
	t.Helper()
	var selections []Currency
	s := NewSelector(Currencies, func(c Currency) {
		selections = append(selections, c)
	})
	return s, &selections
}

func TestSelectorStartsClosed(t *testing.T) {
	s, _ := newTestSelector(t)
	if s.State() != StateClosed {
		t.Errorf("initial state = %v, expected StateClosed", s.State())
	}
	if s.IsOpen() {
		t.Error("selector should start closed")
	}
	if s.DisplayValue() != "" {
		t.Errorf("display = %q, expected empty with no value", s.DisplayValue())
	}
}

func TestSelectorFocusOpensBrowsing(t *testing.T) {
	s, _ := newTestSelector(t)
	s.Focus()
	if s.State() != StateBrowsing {
		t.Errorf("state after focus = %v, expected StateBrowsing", s.State())
	}
	if len(s.Filtered()) != len(Currencies) {
		t.Error("browsing with no query should show the full list")
	}
}

func TestSelectorTypingFiltersAndResetsHighlight(t *testing.T) {
	s, _ := newTestSelector(t)
	s.Focus()
	s.ArrowDown()
	s.ArrowDown()
	if s.Highlight() != 2 {
		t.Fatalf("highlight = %d, expected 2", s.Highlight())
	}

	s.SetQuery("ind")
	if s.State() != StateEditing {
		t.Errorf("state after typing = %v, expected StateEditing", s.State())
	}
	if s.Highlight() != 0 {
		t.Errorf("highlight after typing = %d, expected reset to 0", s.Highlight())
	}

	filtered := s.Filtered()
	if len(filtered) == 0 {
		t.Fatal("expected matches for \"ind\"")
	}
	foundINR := false
	for _, c := range filtered {
		if c.Code == "INR" {
			foundINR = true
		}
	}
	if !foundINR {
		t.Error("expected INR among matches for \"ind\"")
	}
}

func TestSelectorEnterCommitsHighlighted(t *testing.T) {
	s, selections := newTestSelector(t)
	s.Focus()
	s.SetQuery("japanese yen")
	s.Enter()

	if len(*selections) != 1 || (*selections)[0].Code != "JPY" {
		t.Fatalf("selections = %v, expected single JPY", *selections)
	}
	if s.State() != StateClosed {
		t.Errorf("state after enter = %v, expected StateClosed", s.State())
	}
	if s.Query() != "" {
		t.Errorf("query after enter = %q, expected cleared", s.Query())
	}
	if s.DisplayValue() != "JPY" {
		t.Errorf("display after enter = %q, expected JPY", s.DisplayValue())
	}
}

func TestSelectorEnterWithNoMatchesKeepsState(t *testing.T) {
	s, selections := newTestSelector(t)
	s.Focus()
	s.SetQuery("zzzz")
	s.Enter()
	if len(*selections) != 0 {
		t.Error("nothing should be selected when the filter is empty")
	}
	if s.State() != StateEditing {
		t.Errorf("state = %v, expected to stay in StateEditing", s.State())
	}
}

func TestSelectorEscapeRestoresDisplayedSelection(t *testing.T) {
	s, selections := newTestSelector(t)
	s.SetValue(Currency{Code: "USD", Name: "United States Dollar", Symbol: "$"})
	s.Focus()
	s.SetQuery("eur")
	s.Escape()

	if s.State() != StateClosed {
		t.Errorf("state after escape = %v, expected StateClosed", s.State())
	}
	if s.DisplayValue() != "USD" {
		t.Errorf("display after escape = %q, expected USD restored", s.DisplayValue())
	}
	if s.Query() != "" {
		t.Errorf("query after escape = %q, expected discarded", s.Query())
	}
	if len(*selections) != 0 {
		t.Error("escape must not commit a selection")
	}
}

func TestSelectorClickOutsideDiscardsEdit(t *testing.T) {
	s, selections := newTestSelector(t)
	s.SetValue(Currency{Code: "GBP", Name: "British Pound Sterling", Symbol: "£"})
	s.Focus()
	s.SetQuery("fr")
	s.ClickOutside()

	if s.IsOpen() {
		t.Error("selector should close on outside click")
	}
	if s.DisplayValue() != "GBP" {
		t.Errorf("display = %q, expected GBP", s.DisplayValue())
	}
	if len(*selections) != 0 {
		t.Error("outside click must not commit a selection")
	}
}

func TestSelectorBackspaceOnSelectionEntersEditMode(t *testing.T) {
	s, _ := newTestSelector(t)
	s.SetValue(Currency{Code: "INR", Name: "Indian Rupee", Symbol: "₹"})
	s.Backspace()

	if s.State() != StateEditing {
		t.Errorf("state = %v, expected StateEditing", s.State())
	}
	if s.Query() != "" {
		t.Errorf("query = %q, expected empty; the displayed code is not editable text", s.Query())
	}
	if s.DisplayValue() != "" {
		t.Errorf("display = %q, expected empty query shown while editing", s.DisplayValue())
	}
}

func TestSelectorBackspaceWhileEditingTrimsQuery(t *testing.T) {
	s, _ := newTestSelector(t)
	s.Focus()
	s.SetQuery("inr")
	s.Backspace()
	if s.Query() != "in" {
		t.Errorf("query = %q, expected \"in\"", s.Query())
	}
	if s.State() != StateEditing {
		t.Errorf("state = %v, expected StateEditing", s.State())
	}
}

func TestSelectorBackspaceWithoutSelectionDoesNothing(t *testing.T) {
	s, _ := newTestSelector(t)
	s.Backspace()
	if s.State() != StateClosed {
		t.Errorf("state = %v, expected to remain StateClosed", s.State())
	}
}

func TestSelectorArrowNavigationClamps(t *testing.T) {
	s, _ := newTestSelector(t)

	s.ArrowUp()
	if s.Highlight() != 0 {
		t.Errorf("highlight = %d, expected clamp at 0", s.Highlight())
	}

	// ArrowDown from closed also opens the dropdown.
	s.ArrowDown()
	if s.State() != StateBrowsing {
		t.Errorf("state = %v, expected StateBrowsing after ArrowDown", s.State())
	}

	s.SetQuery("indian rupee")
	filtered := s.Filtered()
	if len(filtered) != 1 {
		t.Fatalf("expected a single match, got %d", len(filtered))
	}
	s.ArrowDown()
	s.ArrowDown()
	if s.Highlight() != 0 {
		t.Errorf("highlight = %d, expected clamp at last index 0", s.Highlight())
	}
}

func TestSelectorPointerSelection(t *testing.T) {
	s, selections := newTestSelector(t)
	s.Focus()
	s.SetQuery("swiss")
	s.SelectIndex(0)

	if len(*selections) != 1 || (*selections)[0].Code != "CHF" {
		t.Fatalf("selections = %v, expected single CHF", *selections)
	}
	if s.State() != StateClosed {
		t.Errorf("state = %v, expected StateClosed after pointer selection", s.State())
	}
}

func TestSelectorPointerSelectionOutOfRange(t *testing.T) {
	s, selections := newTestSelector(t)
	s.Focus()
	s.SelectIndex(len(Currencies))
	s.SelectIndex(-1)
	if len(*selections) != 0 {
		t.Error("out-of-range index must not commit")
	}
}

func TestSelectorResetSelectsDefault(t *testing.T) {
	s, selections := newTestSelector(t)
	s.SetValue(Currency{Code: "JPY", Name: "Japanese Yen", Symbol: "¥"})
	s.Focus()
	s.SetQuery("eur")
	s.Reset()

	if len(*selections) != 1 || (*selections)[0].Code != Default().Code {
		t.Fatalf("selections = %v, expected the default %s", *selections, Default().Code)
	}
	if s.IsOpen() {
		t.Error("selector should close after reset")
	}
	if s.Query() != "" {
		t.Errorf("query = %q, expected discarded on reset", s.Query())
	}
}
