package components

import "testing"

func TestTabIdxByKey(t *testing.T) {
	for i, tab := range Tabs {
		if got := TabIdxByKey(tab.Key); got != i {
			t.Errorf("TabIdxByKey(%q) = %d, want %d", tab.Key, got, i)
		}
	}
	if got := TabIdxByKey('z'); got != -1 {
		t.Errorf("TabIdxByKey('z') = %d, want -1", got)
	}
}

func TestTabVisualWidth(t *testing.T) {
	for _, tab := range Tabs {
		// Active tabs render the bare name.
		if got := TabVisualWidth(tab, true); got != len(tab.Name) {
			t.Errorf("active %s width = %d, want %d", tab.Name, got, len(tab.Name))
		}

		// Inactive tabs add brackets: 2 extra when the shortcut letter
		// appears in the name, 3 when it is appended.
		want := len(tab.Name) + 2
		if keyPos(tab) < 0 {
			want = len(tab.Name) + 3
		}
		if got := TabVisualWidth(tab, false); got != want {
			t.Errorf("inactive %s width = %d, want %d", tab.Name, got, want)
		}
	}
}

func TestKeyPosFindsShortcutLetter(t *testing.T) {
	cases := []struct {
		tab  Tab
		want int
	}{
		{Tab{Name: "Overview", Key: 'o'}, 0},
		{Tab{Name: "Scenarios", Key: 'n'}, 3},
		{Tab{Name: "Schedule", Key: 'x'}, -1},
	}

	for _, c := range cases {
		if got := keyPos(c.tab); got != c.want {
			t.Errorf("keyPos(%s/%q) = %d, want %d", c.tab.Name, c.tab.Key, got, c.want)
		}
	}
}
