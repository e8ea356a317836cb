package lang

import (
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		sec  int64
		want string
	}{
		{
			name: "zero",
			sec:  0,
			want: "0s",
		},
		{
			name: "seconds only",
			sec:  42,
			want: "42s",
		},
		{
			name: "all components",
			sec:  93784, // 1d + 2h + 3m + 4s
			want: "1d2h3m4s",
		},
		{
			name: "zero components omitted",
			sec:  86401,
			want: "1d1s",
		},
		{
			name: "exact day",
			sec:  86400,
			want: "1d",
		},
		{
			name: "exact hour",
			sec:  3600,
			want: "1h",
		},
		{
			name: "negative",
			sec:  -61,
			want: "-1m1s",
		},
		{
			name: "large day count",
			sec:  400 * 86400,
			want: "400d",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.sec); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestParseZone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		offset  int
		wantErr bool
	}{
		{
			name:   "empty means UTC",
			input:  "",
			offset: 0,
		},
		{
			name:   "Z",
			input:  "Z",
			offset: 0,
		},
		{
			name:   "UTC",
			input:  "UTC",
			offset: 0,
		},
		{
			name:   "positive offset",
			input:  "+02:00",
			offset: 7200,
		},
		{
			name:   "negative half hour",
			input:  "-05:30",
			offset: -(5*3600 + 1800),
		},
		{
			name:    "missing sign",
			input:   "02:00",
			wantErr: true,
		},
		{
			name:    "short hour",
			input:   "+2:00",
			wantErr: true,
		},
		{
			name:    "hour out of range",
			input:   "+24:00",
			wantErr: true,
		},
		{
			name:    "minute out of range",
			input:   "+00:60",
			wantErr: true,
		},
		{
			name:    "zone database name rejected",
			input:   "America/New_York",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			loc, err := ParseZone(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.input)
				}

				return
			}

			if err != nil {
				t.Fatalf("parse error: %v", err)
			}

			_, offset := time.Date(2024, 8, 25, 0, 0, 0, 0, loc).Zone()
			if offset != tt.offset {
				t.Errorf("expected offset %d, got %d", tt.offset, offset)
			}
		})
	}
}

func TestRender_Instant(t *testing.T) {
	t.Parallel()

	val := instantAt(1436740107) // 2015-07-12T22:28:27Z

	tests := []struct {
		name   string
		config RenderConfig
		want   string
	}{
		{
			name:   "default layout in UTC",
			config: RenderConfig{},
			want:   "2015-07-12T22:28:27+00:00",
		},
		{
			name:   "shifted into a positive offset",
			config: RenderConfig{Zone: time.FixedZone("+02:00", 7200)},
			want:   "2015-07-13T00:28:27+02:00",
		},
		{
			name:   "shifted into a negative offset",
			config: RenderConfig{Zone: time.FixedZone("-05:30", -(5*3600 + 1800))},
			want:   "2015-07-12T16:58:27-05:30",
		},
		{
			name:   "strftime pattern",
			config: RenderConfig{Pattern: "%Y-%m-%d %H:%M:%S"},
			want:   "2015-07-12 22:28:27",
		},
		{
			name:   "strftime pattern in a shifted zone",
			config: RenderConfig{Pattern: "%H:%M", Zone: time.FixedZone("+02:00", 7200)},
			want:   "00:28",
		},
		{
			name:   "epoch seconds pattern",
			config: RenderConfig{Pattern: "%s"},
			want:   "1436740107",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.config.Render(val)
			if err != nil {
				t.Fatalf("render error: %v", err)
			}

			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestRender_Duration(t *testing.T) {
	t.Parallel()

	val := DurationOf(93784)

	compact, err := RenderConfig{}.Render(val)
	if err != nil {
		t.Fatalf("render error: %v", err)
	}

	if compact != "1d2h3m4s" {
		t.Errorf("expected compact breakdown, got %q", compact)
	}

	raw, err := RenderConfig{Seconds: true}.Render(val)
	if err != nil {
		t.Fatalf("render error: %v", err)
	}

	if raw != "93784" {
		t.Errorf("expected raw second count, got %q", raw)
	}
}

func TestFormatNode_Canonical(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "normalized spacing",
			input: "now+1d",
			want:  "now + 1d",
		},
		{
			name:  "redundant parens dropped",
			input: "(now) + (1d)",
			want:  "now + 1d",
		},
		{
			name:  "grouping preserved",
			input: "now - (1d + 2m)",
			want:  "now - (1d + 2m)",
		},
		{
			name:  "left association unparenthesized",
			input: "(1d + 2h) - 3m",
			want:  "1d + 2h - 3m",
		},
		{
			name:  "duration literals stay single tokens",
			input: "90m + 3600s",
			want:  "90m + 1h",
		},
		{
			name:  "mixed-unit duration renders in seconds",
			input: "5430s",
			want:  "5430s",
		},
		{
			name:  "zero duration",
			input: "0d",
			want:  "0s",
		},
		{
			name:  "whole days",
			input: "172800s",
			want:  "2d",
		},
		{
			name:  "timestamp rendered as datetime",
			input: "1234567890.000 + 1s",
			want:  "2009-02-13T23:31:30+00:00 + 1s",
		},
		{
			name:  "function call",
			input: "full_day( now+2h )",
			want:  "full_day(now + 2h)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			node, err := ParseString(tt.input)
			if err != nil {
				t.Fatalf("parse error: %v", err)
			}

			got := FormatNode(node)
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}

			// Canonical text reparses to an identical rendering.
			again, err := ParseString(got)
			if err != nil {
				t.Fatalf("reparse error: %v", err)
			}

			if second := FormatNode(again); second != got {
				t.Errorf("canonical form is not stable: %q then %q", got, second)
			}
		})
	}
}

func TestFormatTree(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "single literal",
			input: "1d",
			want:  "1d\n",
		},
		{
			name:  "binary operator",
			input: "now + 1d",
			want: "+\n" +
				"├─ now\n" +
				"└─ 1d\n",
		},
		{
			name:  "nested grouping",
			input: "now - (1d + 2m)",
			want: "-\n" +
				"├─ now\n" +
				"└─ +\n" +
				"   ├─ 1d\n" +
				"   └─ 2m\n",
		},
		{
			name:  "left-deep chain",
			input: "1d + 2h - 3m",
			want: "-\n" +
				"├─ +\n" +
				"│  ├─ 1d\n" +
				"│  └─ 2h\n" +
				"└─ 3m\n",
		},
		{
			name:  "function call",
			input: "full_day(now + 2h)",
			want: "full_day\n" +
				"└─ +\n" +
				"   ├─ now\n" +
				"   └─ 2h\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			node, err := ParseString(tt.input)
			if err != nil {
				t.Fatalf("parse error: %v", err)
			}

			if got := FormatTree(node); got != tt.want {
				t.Errorf("expected:\n%s\ngot:\n%s", tt.want, got)
			}
		})
	}
}
