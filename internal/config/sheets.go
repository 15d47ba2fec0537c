package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/JonMunkholm/cumplimiento/internal/core"
	"gopkg.in/yaml.v3"
)

// sheetsFile is the YAML layout of SHEETS_FILE:
//
//	sheets:
//	  - sheet: esquema_vigente
//	    skip_rows: 11
//	    compliance_column: esquema_vigente
//	    label: esquema_vigente
type sheetsFile struct {
	Sheets []core.SheetConfig `yaml:"sheets"`
}

// LoadSheets reads and validates a sheet configuration file.
func LoadSheets(path string) ([]core.SheetConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sheets file: %w", err)
	}
	return ParseSheets(data)
}

// ParseSheets decodes a sheet configuration document. Unknown keys are
// rejected so a misspelled field does not silently fall back to zero.
func ParseSheets(data []byte) ([]core.SheetConfig, error) {
	var f sheetsFile

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("invalid sheet config: %w", err)
	}

	if err := core.ValidateSheetConfigs(f.Sheets); err != nil {
		return nil, err
	}
	return f.Sheets, nil
}

// ResolveSheets returns the configs from cfg.Extract.SheetsFile when set,
// otherwise the built-in registered configs.
func ResolveSheets(cfg *Config) ([]core.SheetConfig, error) {
	if cfg.Extract.SheetsFile != "" {
		return LoadSheets(cfg.Extract.SheetsFile)
	}
	configs := core.Sheets()
	if err := core.ValidateSheetConfigs(configs); err != nil {
		return nil, err
	}
	return configs, nil
}
