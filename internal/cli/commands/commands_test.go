package commands

import (
	"strings"
	"testing"
)

func TestNewProcessCommand(t *testing.T) {
	cmd := NewProcessCommand()

	if cmd.Use != "process <input-file> <output-file>" {
		t.Errorf("Unexpected Use: %s", cmd.Use)
	}

	// Check flags exist
	flags := []string{"format", "verbose", "quiet"}
	for _, flag := range flags {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("Missing flag: %s", flag)
		}
	}
}

func TestNewCheckCommand(t *testing.T) {
	cmd := NewCheckCommand()

	if cmd.Use != "check <input-file>" {
		t.Errorf("Unexpected Use: %s", cmd.Use)
	}

	if !strings.Contains(cmd.Long, "without writing") {
		t.Error("Missing description in Long")
	}
}

func TestNewVersionCommand(t *testing.T) {
	cmd := NewVersionCommand()

	if cmd.Use != "version" {
		t.Errorf("Unexpected Use: %s", cmd.Use)
	}
}

func TestCreateFormatter(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"text", false},
		{"json", false},
		{"yaml", false},
		{"xml", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			f, err := createFormatter(tt.format, &ProcessOptions{})
			if tt.wantErr {
				if err == nil {
					t.Errorf("createFormatter(%q) expected error", tt.format)
				}
				return
			}
			if err != nil {
				t.Fatalf("createFormatter(%q) error = %v", tt.format, err)
			}
			if f.Name() != tt.format {
				t.Errorf("Name() = %q, want %q", f.Name(), tt.format)
			}
		})
	}
}
