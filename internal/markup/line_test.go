package markup

import "testing"

func TestClassifyLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      string
		listOpen bool
		want     LineKind
	}{
		{
			name: "empty line is blank",
			raw:  "",
			want: KindBlank,
		},
		{
			name: "syntax marker",
			raw:  "Syntax: pydox [OPTION ...]",
			want: KindSyntax,
		},
		{
			name: "syntax marker requires trailing space",
			raw:  "Syntax:",
			want: KindHeading,
		},
		{
			name: "heading with trailing colon",
			raw:  "Text Formatting:",
			want: KindHeading,
		},
		{
			name: "colon followed by space is prose",
			raw:  "we continue below: ",
			want: KindText,
		},
		{
			name: "indented colon line is not a heading",
			raw:  " Options:",
			want: KindText,
		},
		{
			name: "bullet item at four spaces",
			raw:  "    * run with no options",
			want: KindBullet,
		},
		{
			name: "three spaces is prose not a bullet",
			raw:  "   * run with no options",
			want: KindText,
		},
		{
			name: "numbered item",
			raw:  "    1. Install the package",
			want: KindNumbered,
		},
		{
			name: "multi-digit numbered item",
			raw:  "    12. Later step",
			want: KindNumbered,
		},
		{
			name: "digit without dot-space is preformatted",
			raw:  "    1x = 2",
			want: KindPre,
		},
		{
			name: "definition pair at four spaces",
			raw:  "    name: the project name",
			want: KindDefinition,
		},
		{
			name: "four spaces without separator is preformatted",
			raw:  "    x = 1",
			want: KindPre,
		},
		{
			name: "eight spaces is preformatted",
			raw:  "        git push",
			want: KindPre,
		},
		{
			name:     "six spaces inside a list continues the item",
			raw:      "      rest of the item",
			listOpen: true,
			want:     KindContinuation,
		},
		{
			name:     "seven spaces inside a list continues the item",
			raw:      "       rest of the item",
			listOpen: true,
			want:     KindContinuation,
		},
		{
			name:     "eight spaces inside a list is nested preformatted",
			raw:      "        python3 -m pip install",
			listOpen: true,
			want:     KindPre,
		},
		{
			name: "six spaces outside a list is preformatted",
			raw:  "      rest of the item",
			want: KindPre,
		},
		{
			name:     "bullet wins over continuation inside a list",
			raw:      "    * next item",
			listOpen: true,
			want:     KindBullet,
		},
		{
			name: "plain prose",
			raw:  "The pydox command generates documentation.",
			want: KindText,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ClassifyLine(tt.raw, tt.listOpen)
			if got.Kind != tt.want {
				t.Errorf("ClassifyLine(%q, %v).Kind = %v, want %v", tt.raw, tt.listOpen, got.Kind, tt.want)
			}
		})
	}
}

func TestClassifyLineIndent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want int
	}{
		{"", 0},
		{"text", 0},
		{"    text", 4},
		{"        text", 8},
		{"   ", 3},
	}

	for _, tt := range tests {
		tt := tt
		got := ClassifyLine(tt.raw, false)
		if got.Indent != tt.want {
			t.Errorf("ClassifyLine(%q).Indent = %d, want %d", tt.raw, got.Indent, tt.want)
		}
	}
}
