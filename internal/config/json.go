package config

import (
	"encoding/json"
	"fmt"
	"os"
)

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	dec := json.NewDecoder(jsonFile)
	dec.DisallowUnknownFields()

	cfg := &StructuredConfig{}
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return cfg, nil
}
