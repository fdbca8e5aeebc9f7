package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Config holds the CLI configuration
type Config struct {
	InputPath       string
	OutputPath      string
	ConfigFile      string
	DestURL         string
	Table           string
	Delimiter       string
	Names           string
	NoHeader        bool
	Debug           bool
	Verbose         bool
	WorkerCount     int
	AnonymizeFields map[string]string
}

// LoadConfig reads and parses the anonymization rules file. Each line is
// a "field: kind" pair; blank lines and '#' comments are skipped.
func LoadConfig(cfg *Config, filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	defer file.Close()

	// Initialize the map if it doesn't exist
	if cfg.AnonymizeFields == nil {
		cfg.AnonymizeFields = make(map[string]string)
	}

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue // Skip empty lines and comments
		}

		// Split on first colon
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			return fmt.Errorf("invalid config line format (expected 'field: kind'): %s", line)
		}

		field := strings.TrimSpace(parts[0])
		if field == "" {
			return fmt.Errorf("empty field name in config line: %s", line)
		}

		kind := strings.TrimSpace(parts[1])
		if kind == "" {
			return fmt.Errorf("empty kind in config line: %s", line)
		}

		cfg.AnonymizeFields[field] = kind
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}

	return nil
}
