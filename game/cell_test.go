package game

import (
	"reflect"
	"testing"
)

func TestSlotRemove(t *testing.T) {
	_, deck := newTable(t)
	a, b, c := deck.Cards[0], deck.Cards[1], deck.Cards[2]

	tests := []struct {
		name   string
		remove *Card
		ok     bool
		want   []*Card
	}{
		{"bottom", a, true, []*Card{b, c}},
		{"middle", b, true, []*Card{a, c}},
		{"top", c, true, []*Card{a, b}},
		{"absent", deck.Cards[3], false, []*Card{a, b, c}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var s slot
			s.push(a)
			s.push(b)
			s.push(c)
			if ok := s.remove(test.remove); ok != test.ok {
				t.Fatalf("remove returned %v, want %v", ok, test.ok)
			}
			if !reflect.DeepEqual(s.Cards(), test.want) {
				t.Fatalf("slot holds %v, want %v", s.Cards(), test.want)
			}
		})
	}
}
