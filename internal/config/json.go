package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		Name    string `json:"name"`
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Assistant struct {
		APIKey         string   `json:"api_key"`
		Model          string   `json:"model"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"assistant,omitempty"`

	Preview struct {
		HTTPAddress string `json:"http_address"`
		Enabled     bool   `json:"enabled"`
	} `json:"preview,omitempty"`

	Export struct {
		Dir   string `json:"dir"`
		Scale int    `json:"scale"`
	} `json:"export,omitempty"`

	Render struct {
		Size int `json:"size"`
	} `json:"render,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Name:    jsonCfg.App.Name,
			Version: jsonCfg.App.Version,
		},
		Assistant: Assistant{
			APIKey:         jsonCfg.Assistant.APIKey,
			Model:          jsonCfg.Assistant.Model,
			RequestTimeout: time.Duration(jsonCfg.Assistant.RequestTimeout),
		},
		Preview: Preview{
			HTTPAddress: jsonCfg.Preview.HTTPAddress,
			Enabled:     jsonCfg.Preview.Enabled,
		},
		Export: Export{
			Dir:   jsonCfg.Export.Dir,
			Scale: jsonCfg.Export.Scale,
		},
		Render: Render{
			Size: jsonCfg.Render.Size,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
