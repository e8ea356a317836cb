package lang

import (
	"encoding/json"
	"testing"
)

func TestMarshalNode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "now",
			input: "now",
			want:  `{"now":true}`,
		},
		{
			name:  "duration literal",
			input: "90m",
			want:  `{"duration":5400}`,
		},
		{
			name:  "instant literal",
			input: "2009-02-13T23:31:30Z",
			want:  `{"instant":"2009-02-13T23:31:30+00:00"}`,
		},
		{
			name:  "binary expression",
			input: "now + 1d",
			want:  `{"left":{"now":true},"op":"+","right":{"duration":86400}}`,
		},
		{
			name:  "function call",
			input: "full_day(now - 2h)",
			want:  `{"arg":{"left":{"now":true},"op":"-","right":{"duration":7200}},"call":"full_day"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			node, err := ParseString(tt.input)
			if err != nil {
				t.Fatalf("parse error: %v", err)
			}

			data, err := json.Marshal(MarshalNode(node))
			if err != nil {
				t.Fatalf("marshal error: %v", err)
			}

			if string(data) != tt.want {
				t.Errorf("expected %s, got %s", tt.want, data)
			}
		})
	}
}
