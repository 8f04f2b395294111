package constraint

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/tkarstens/cubist/pkg/errors"
)

// =============================================================================
// System Serialization API
// =============================================================================

// Format names for constraint files.
const (
	FormatJSON = "json"
	FormatTOML = "toml"
)

// MarshalSystem converts a System to indented JSON bytes.
func MarshalSystem(s System) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteSystem(s, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteSystem writes a System as JSON to an io.Writer.
func WriteSystem(s System, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode system")
	}
	return nil
}

// WriteSystemFile writes a System to a JSON file.
// The file is created with 0644 permissions.
func WriteSystemFile(s System, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	defer f.Close()
	return WriteSystem(s, f)
}

// ReadSystemFile reads and validates a constraint file. The format is
// chosen by extension: .json or .toml.
func ReadSystemFile(path string) (System, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return System{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", path)
	}
	if err != nil {
		return System{}, errors.Wrap(errors.ErrCodeInvalidPath, err, "read %s", path)
	}

	format, err := FormatForPath(path)
	if err != nil {
		return System{}, err
	}
	return ReadSystem(bytes.NewReader(data), format)
}

// FormatForPath maps a constraint file path to its format by extension.
func FormatForPath(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", errors.New(errors.ErrCodeUnsupported,
			"unsupported constraint file extension: %q (must be .json or .toml)", ext)
	}
}

// ReadSystem decodes and validates a constraint system from an io.Reader in
// the given format ("json" or "toml").
func ReadSystem(r io.Reader, format string) (System, error) {
	var s System
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&s); err != nil {
			return System{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode json")
		}
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&s); err != nil {
			return System{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode toml")
		}
	default:
		return System{}, errors.New(errors.ErrCodeUnsupported, "unsupported format: %q", format)
	}

	if err := s.Validate(); err != nil {
		return System{}, err
	}
	return s, nil
}
