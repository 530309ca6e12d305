package store

import (
	"fmt"
	"os"
	"path/filepath"

	"akhmetov/rassrochka-crm/internal/logging"
	"akhmetov/rassrochka-crm/internal/statusutils"

	"gopkg.in/yaml.v3"
)

// StatusStore loads the payment-status synonym table from a YAML file.
// The file holds an ordered list of (pattern, state) rules; order in the
// file is the match precedence.
type StatusStore struct {
	StatusesFile string
	log          logging.Logger
}

// statusFileConfig is the on-disk shape of statuses.yaml.
type statusFileConfig struct {
	Synonyms []statusutils.SynonymRule `yaml:"synonyms"`
}

// NewStatusStore creates a store for the synonym table. An empty filename
// means the default "statuses.yaml" searched in the standard locations.
func NewStatusStore(statusesFile string, logger logging.Logger) *StatusStore {
	if logger == nil {
		logger = logging.NewLogrusAdapterFromLogger(nil)
	}
	return &StatusStore{StatusesFile: statusesFile, log: logger}
}

// FindConfigFile looks for a configuration file in standard locations:
// the working directory, ./config/, and ~/.config/rassrochka-crm/.
func (s *StatusStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".config", "rassrochka-crm", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadSynonyms loads the synonym table. A missing file is not an error:
// the built-in table is returned so imports work out of the box.
func (s *StatusStore) LoadSynonyms() ([]statusutils.SynonymRule, error) {
	filename := s.StatusesFile
	if filename == "" {
		filename = "statuses.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			s.log.Debug("Status synonyms file not found, using built-in table",
				logging.Field{Key: logging.FieldFile, Value: filename})
			return statusutils.DefaultSynonyms(), nil
		}
		return nil, fmt.Errorf("error resolving status synonyms file: %w", err)
	}

	data, err := os.ReadFile(filePath) // #nosec G304 -- config path resolved from known locations
	if err != nil {
		return nil, fmt.Errorf("error reading status synonyms file: %w", err)
	}

	var cfg statusFileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("error parsing status synonyms file: %w", err)
	}
	if len(cfg.Synonyms) == 0 {
		s.log.Warn("Status synonyms file contains no rules, using built-in table",
			logging.Field{Key: logging.FieldFile, Value: filePath})
		return statusutils.DefaultSynonyms(), nil
	}

	s.log.Debug("Loaded status synonyms",
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldCount, Value: len(cfg.Synonyms)})
	return cfg.Synonyms, nil
}

// SaveSynonyms writes the synonym table back to disk, preserving order.
func (s *StatusStore) SaveSynonyms(rules []statusutils.SynonymRule) error {
	filename := s.StatusesFile
	if filename == "" {
		filename = "statuses.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil && err != os.ErrNotExist {
		return fmt.Errorf("error resolving status synonyms file: %w", err)
	}
	if err == os.ErrNotExist {
		filePath = filename
	}

	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	data, err := yaml.Marshal(statusFileConfig{Synonyms: rules})
	if err != nil {
		return fmt.Errorf("error marshaling status synonyms: %w", err)
	}
	if err := os.WriteFile(filePath, data, 0600); err != nil {
		return fmt.Errorf("error writing status synonyms: %w", err)
	}

	s.log.Debug("Saved status synonyms",
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldCount, Value: len(rules)})
	return nil
}
