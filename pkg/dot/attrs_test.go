package dot

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name  string
		m     Attrs
		pairs []Attr
		want  Attrs
	}{
		{
			name: "EmptyBoth",
			want: Attrs{},
		},
		{
			name: "EmptyPairs",
			m:    Attrs{"color": "red"},
			want: Attrs{"color": "red"},
		},
		{
			name:  "NilMap",
			pairs: []Attr{{"color", "red"}, {"shape", "box"}},
			want:  Attrs{"color": "red", "shape": "box"},
		},
		{
			name:  "KeepsUnmentionedKeys",
			m:     Attrs{"color": "red", "shape": "box"},
			pairs: []Attr{{"shape", "circle"}},
			want:  Attrs{"color": "red", "shape": "circle"},
		},
		{
			name:  "RepeatedKeyLastWins",
			pairs: []Attr{{"weight", "1"}, {"weight", "2"}, {"weight", "3"}},
			want:  Attrs{"weight": "3"},
		},
		{
			name:  "PairsOverrideExisting",
			m:     Attrs{"weight": "0"},
			pairs: []Attr{{"weight", "1"}, {"weight", "2"}},
			want:  Attrs{"weight": "2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := merge(tt.m, tt.pairs)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("merge mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMergeLeavesInputUntouched(t *testing.T) {
	m := Attrs{"color": "red"}
	merge(m, []Attr{{"color", "blue"}, {"shape", "box"}})

	if diff := cmp.Diff(Attrs{"color": "red"}, m); diff != "" {
		t.Errorf("input map changed (-want +got):\n%s", diff)
	}
}
