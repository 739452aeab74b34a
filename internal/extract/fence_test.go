package extract

import "testing"

func TestStripFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no fence", `  {"a": 1}  `, `{"a": 1}`},
		{"json fence", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"bare fence", "```\n[1, 2]\n```", `[1, 2]`},
		{"uppercase tag", "```JSON\n{\"a\": 1}\n```", `{"a": 1}`},
		{"single line", "```json{\"a\": 1}```", `{"a": 1}`},
		{"preamble and trailer", "Here you go:\n```json\n{\"a\": 1}\n```\nHope it helps.", `{"a": 1}`},
		{"unclosed opening", "```json\n{\"a\": 1}", `{"a": 1}`},
		{"closing only", "{\"a\": 1}\n```", `{"a": 1}`},
		{"empty fence", "```json\n```", ""},
		{"plain prose", "no structure here", "no structure here"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripFence(tt.in); got != tt.want {
				t.Errorf("StripFence(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
