package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the shape accepted
// from a JSON config file. Durations may be given as strings ("30s") or
// as integer nanoseconds.
type StructuredJSONConfig struct {
	App struct {
		Name          string    `json:"name"`
		Debug         bool      `json:"debug"`
		LogLevel      string    `json:"log_level"`
		TestSteps     *int      `json:"test_steps"`
		TestStepDelay *Duration `json:"test_step_delay"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonCfg, err := decodeJSONConfig(jsonFilePath)
	if err != nil {
		return nil, err
	}

	cfg, _ := jsonCfg.toStructured()
	return cfg, nil
}

func decodeJSONConfig(jsonFilePath string) (*StructuredJSONConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &jsonCfg, nil
}

// toStructured converts the decoded file into a [StructuredConfig]. Keys
// present with a zero value are reported in the returned explicitZeros.
func (c *StructuredJSONConfig) toStructured() (*StructuredConfig, explicitZeros) {
	cfg := &StructuredConfig{
		App: App{
			Name:     c.App.Name,
			Debug:    c.App.Debug,
			LogLevel: c.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: c.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:     c.Server.HTTPAddress,
			RequestTimeout:  time.Duration(c.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(c.Server.ShutdownTimeout),
		},
	}

	var zeros explicitZeros
	if c.App.TestSteps != nil {
		cfg.App.TestSteps = *c.App.TestSteps
		zeros.testSteps = *c.App.TestSteps == 0
	}
	if c.App.TestStepDelay != nil {
		cfg.App.TestStepDelay = time.Duration(*c.App.TestStepDelay)
		zeros.testStepDelay = *c.App.TestStepDelay == 0
	}

	return cfg, zeros
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
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
