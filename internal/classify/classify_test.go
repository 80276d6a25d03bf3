package classify

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		word string
		line string
		want Labels
	}{
		{
			name: "capitalised God mid-sentence is religious only",
			word: "God",
			line: "And so sayd God in his mercy and joy",
			want: Labels{Religious: true},
		},
		{
			name: "God opening a line falls through to keywords",
			word: "God",
			line: "God ȝou saue",
			want: Labels{},
		},
		{
			name: "God after a full stop falls through to keywords",
			word: "Gode",
			line: "He went. Gode wyth luf",
			want: Labels{Emotional: true},
		},
		{
			name: "line keyword marks religious",
			word: "messe",
			line: "in the chapel at Cristmasse",
			want: Labels{Religious: true},
		},
		{
			name: "word keyword marks emotional",
			word: "Blysse",
			line: "and of the halle",
			want: Labels{Emotional: true},
		},
		{
			name: "both",
			word: "grace",
			line: "with grace and drede",
			want: Labels{Religious: true, Emotional: true},
		},
		{
			name: "empty line",
			word: "luf",
			line: "",
			want: Labels{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.word, tt.line); got != tt.want {
				t.Errorf("Classify(%q, %q) = %+v, want %+v", tt.word, tt.line, got, tt.want)
			}
		})
	}
}
