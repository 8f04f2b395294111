package errors

import (
	"strings"
	"testing"
)

func TestValidateVariable(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"Simple", "x", false},
		{"Dotted", "main.p", false},
		{"Unicode", "φ", false},
		{"Empty", "", true},
		{"ControlChar", "x\x01y", true},
		{"TooLong", strings.Repeat("v", 257), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateVariable(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateVariable(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidConstraint) {
				t.Errorf("error code = %q, want %q", GetCode(err), ErrCodeInvalidConstraint)
			}
		})
	}
}

func TestValidateToken(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"Simple", "alloc1", false},
		{"Spaces", "alloc site 1", false},
		{"Empty", "", true},
		{"NullByte", "a\x00b", true},
		{"TooLong", strings.Repeat("t", 257), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateToken(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateToken(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"Relative", "out/graph.svg", false},
		{"Absolute", "/tmp/graph.svg", false},
		{"Empty", "", true},
		{"NullByte", "a\x00b", true},
		{"TooLong", strings.Repeat("p", 501), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("error code = %q, want %q", GetCode(err), ErrCodeInvalidPath)
			}
		})
	}
}
