// Package config loads optional defaults for kmercmp from a YAML file.
//
// Every field is optional; unset fields leave the built-in defaults alone.
// Command-line flags always win over the file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// File mirrors the YAML schema:
//
//	kmer_size: 21
//	prefix: ATCG
//	short_records: skip   # skip | error
//	output: text          # text | json
//	no_header: false
//	progress: true
//	log_level: warn
type File struct {
	KmerSize     int     `yaml:"kmer_size"`
	Prefix       *string `yaml:"prefix"` // pointer so an explicit "" disables filtering
	ShortRecords string  `yaml:"short_records"`
	Output       string  `yaml:"output"`
	NoHeader     *bool   `yaml:"no_header"`
	Progress     *bool   `yaml:"progress"`
	LogLevel     string  `yaml:"log_level"`
}

// Load reads and validates the config file at path. Unknown keys are an
// error so typos do not pass silently. An empty file yields a zero File.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read config: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes YAML config data.
func Parse(data []byte) (File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("parse config: %w", err)
	}
	if err := f.Validate(); err != nil {
		return File{}, err
	}
	return f, nil
}

// Validate checks the values that can be checked without the CLI context.
func (f File) Validate() error {
	if f.KmerSize < 0 {
		return fmt.Errorf("kmer_size must be > 0 (got %d)", f.KmerSize)
	}
	return nil
}
