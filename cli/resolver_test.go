package cli

import (
	"strings"
	"testing"

	"github.com/alecthomas/kong"
)

func makeFlag(name string) *kong.Flag {
	return &kong.Flag{Value: &kong.Value{Name: name}}
}

func TestResolveYAML(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"log-level: debug",
		"log_format: json",
		"indent: 4",
		"seconds: true",
	}, "\n")

	resolver, err := resolveYAML(strings.NewReader(input))
	if err != nil {
		t.Fatalf("resolver error: %v", err)
	}

	tests := []struct {
		name string
		flag string
		want any
	}{
		{
			name: "hyphenated key",
			flag: "log-level",
			want: "debug",
		},
		{
			name: "underscore spelling of hyphenated flag",
			flag: "log-format",
			want: "json",
		},
		{
			name: "number resolves as string",
			flag: "indent",
			want: "4",
		},
		{
			name: "boolean",
			flag: "seconds",
			want: true,
		},
		{
			name: "missing key resolves nil",
			flag: "zone",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := resolver.Resolve(nil, nil, makeFlag(tt.flag))
			if err != nil {
				t.Fatalf("resolve error: %v", err)
			}

			if got != tt.want {
				t.Errorf("expected %v (%T), got %v (%T)", tt.want, tt.want, got, got)
			}
		})
	}
}

func TestResolveYAML_InvalidInput(t *testing.T) {
	t.Parallel()

	// A broken config file must not fail flag parsing.
	resolver, err := resolveYAML(strings.NewReader(":\n:::not yaml"))
	if err != nil {
		t.Fatalf("resolver error: %v", err)
	}

	got, err := resolver.Resolve(nil, nil, makeFlag("log-level"))
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}

	if got != nil {
		t.Errorf("expected nil from empty resolver, got %v", got)
	}
}
