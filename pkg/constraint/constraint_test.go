package constraint

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/tkarstens/cubist/pkg/errors"
)

func TestConstraintValidate(t *testing.T) {
	tests := []struct {
		name    string
		c       Constraint
		wantErr bool
	}{
		{"Token", Constraint{Kind: KindToken, Token: "a", Var: "x"}, false},
		{"Subset", Constraint{Kind: KindSubset, From: "x", To: "y"}, false},
		{"Conditional", Constraint{Kind: KindConditional, Token: "a", Var: "x", From: "y", To: "z"}, false},
		{"UnknownKind", Constraint{Kind: "equals", From: "x", To: "y"}, true},
		{"TokenMissingVar", Constraint{Kind: KindToken, Token: "a"}, true},
		{"TokenWithEdge", Constraint{Kind: KindToken, Token: "a", Var: "x", To: "y"}, true},
		{"SubsetMissingTo", Constraint{Kind: KindSubset, From: "x"}, true},
		{"SubsetWithToken", Constraint{Kind: KindSubset, From: "x", To: "y", Token: "a"}, true},
		{"ConditionalMissingFrom", Constraint{Kind: KindConditional, Token: "a", Var: "x", To: "z"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.c.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidConstraint) {
				t.Errorf("error code = %q, want INVALID_CONSTRAINT", errors.GetCode(err))
			}
		})
	}
}

func TestSystemValidateReportsIndex(t *testing.T) {
	sys := System{Constraints: []Constraint{
		{Kind: KindToken, Token: "a", Var: "x"},
		{Kind: "bogus"},
	}}
	err := sys.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !strings.Contains(err.Error(), "constraint 1") {
		t.Errorf("error %q should name the failing index", err)
	}
}

func TestSystemJSONRoundTrip(t *testing.T) {
	sys := System{Constraints: []Constraint{
		{Kind: KindToken, Token: "a", Var: "x"},
		{Kind: KindSubset, From: "x", To: "y"},
		{Kind: KindConditional, Token: "b", Var: "x", From: "y", To: "z"},
	}}

	data, err := MarshalSystem(sys)
	if err != nil {
		t.Fatalf("MarshalSystem: %v", err)
	}

	got, err := ReadSystem(bytes.NewReader(data), FormatJSON)
	if err != nil {
		t.Fatalf("ReadSystem: %v", err)
	}
	if !reflect.DeepEqual(got, sys) {
		t.Errorf("round trip = %+v, want %+v", got, sys)
	}
}

func TestReadSystemTOML(t *testing.T) {
	src := `
[[constraint]]
kind = "token"
token = "a"
var = "x"

[[constraint]]
kind = "subset"
from = "x"
to = "y"
`
	got, err := ReadSystem(strings.NewReader(src), FormatTOML)
	if err != nil {
		t.Fatalf("ReadSystem: %v", err)
	}
	want := System{Constraints: []Constraint{
		{Kind: KindToken, Token: "a", Var: "x"},
		{Kind: KindSubset, From: "x", To: "y"},
	}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ReadSystem = %+v, want %+v", got, want)
	}
}

func TestReadSystemRejectsInvalid(t *testing.T) {
	if _, err := ReadSystem(strings.NewReader(`{"constraints":[{"kind":"nope"}]}`), FormatJSON); err == nil {
		t.Error("invalid kind should fail validation")
	}
	if _, err := ReadSystem(strings.NewReader("not json"), FormatJSON); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("malformed input error = %v, want INVALID_FORMAT", err)
	}
	if _, err := ReadSystem(strings.NewReader("{}"), "yaml"); !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("unknown format error = %v, want UNSUPPORTED", err)
	}
}

func TestReadSystemFile(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "sys.json")
	if err := os.WriteFile(jsonPath, []byte(`{"constraints":[{"kind":"subset","from":"x","to":"y"}]}`), 0644); err != nil {
		t.Fatal(err)
	}
	if sys, err := ReadSystemFile(jsonPath); err != nil || len(sys.Constraints) != 1 {
		t.Errorf("ReadSystemFile(json) = %+v, %v", sys, err)
	}

	tomlPath := filepath.Join(dir, "sys.toml")
	if err := os.WriteFile(tomlPath, []byte("[[constraint]]\nkind = \"subset\"\nfrom = \"x\"\nto = \"y\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if sys, err := ReadSystemFile(tomlPath); err != nil || len(sys.Constraints) != 1 {
		t.Errorf("ReadSystemFile(toml) = %+v, %v", sys, err)
	}

	if _, err := ReadSystemFile(filepath.Join(dir, "missing.json")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file error = %v, want FILE_NOT_FOUND", err)
	}
	yamlPath := filepath.Join(dir, "sys.yaml")
	if err := os.WriteFile(yamlPath, []byte("constraints: []\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadSystemFile(yamlPath); !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("unsupported extension error = %v, want UNSUPPORTED", err)
	}
}
