package command

import "testing"

func TestParseValid(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Command
	}{
		{
			name: "addent",
			line: `addent "alice"`,
			want: Command{Kind: AddEnt, Arg1: "alice"},
		},
		{
			name: "delent",
			line: `delent "alice"`,
			want: Command{Kind: DelEnt, Arg1: "alice"},
		},
		{
			name: "addrel",
			line: `addrel "alice" "bob" "follows"`,
			want: Command{Kind: AddRel, Arg1: "alice", Arg2: "bob", Arg3: "follows"},
		},
		{
			name: "delrel",
			line: `delrel "alice" "bob" "follows"`,
			want: Command{Kind: DelRel, Arg1: "alice", Arg2: "bob", Arg3: "follows"},
		},
		{
			name: "report",
			line: "report",
			want: Command{Kind: Report},
		},
		{
			name: "end",
			line: "end",
			want: Command{Kind: End},
		},
		{
			name: "tolerates extra spaces between tokens",
			line: `addrel  "a"   "b"  "t"`,
			want: Command{Kind: AddRel, Arg1: "a", Arg2: "b", Arg3: "t"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.line)
			if !ok {
				t.Fatalf("Parse(%q) ok = false, want true", tt.line)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParseMalformed(t *testing.T) {
	tests := []string{
		"",
		"   ",
		"frobnicate \"x\"",
		`addent`,
		`addent alice`,
		`addent ""`,
		`addent "alice`,
		`addrel "a" "b"`,
		`report "extra"`,
	}

	for _, line := range tests {
		t.Run(line, func(t *testing.T) {
			if _, ok := Parse(line); ok {
				t.Errorf("Parse(%q) ok = true, want false", line)
			}
		})
	}
}
