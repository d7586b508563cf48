package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		PasswordCost  int      `json:"password_cost"`
		Version       string   `json:"version"`
		LogLevel      string   `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Remote struct {
			DatabaseURL     string   `json:"database_url"`
			CredentialsFile string   `json:"credentials_file"`
			PollInterval    Duration `json:"poll_interval"`
		} `json:"remote,omitempty"`

		Photos struct {
			Bucket          string `json:"bucket"`
			Region          string `json:"region"`
			Endpoint        string `json:"endpoint"`
			AccessKeyID     string `json:"access_key_id"`
			SecretAccessKey string `json:"secret_access_key"`
			PublicURL       string `json:"public_url"`
			Dir             string `json:"dir"`
		} `json:"photos,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
		AllowedOrigins []string `json:"allowed_origins"`
	} `json:"server,omitempty"`

	Recipes struct {
		Provider string   `json:"provider"`
		BaseURL  string   `json:"base_url"`
		APIKey   string   `json:"api_key"`
		Timeout  Duration `json:"timeout"`
	} `json:"recipes,omitempty"`

	Identity struct {
		CredentialsFile string `json:"credentials_file"`
		ProjectID       string `json:"project_id"`
	} `json:"identity,omitempty"`

	Workers struct {
		SyncInterval Duration `json:"sync_interval"`
	} `json:"workers,omitempty"`

	Seed struct {
		Admin         bool   `json:"admin"`
		AdminUsername string `json:"admin_username"`
		AdminEmail    string `json:"admin_email"`
		AdminPassword string `json:"admin_password"`
	} `json:"seed,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var j StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&j); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  j.App.TokenSignKey,
			TokenIssuer:   j.App.TokenIssuer,
			TokenDuration: time.Duration(j.App.TokenDuration),
			PasswordCost:  j.App.PasswordCost,
			Version:       j.App.Version,
			LogLevel:      j.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: j.Storage.DB.DSN,
			},
			Remote: Remote{
				DatabaseURL:     j.Storage.Remote.DatabaseURL,
				CredentialsFile: j.Storage.Remote.CredentialsFile,
				PollInterval:    time.Duration(j.Storage.Remote.PollInterval),
			},
			Photos: Photos(j.Storage.Photos),
		},
		Server: Server{
			HTTPAddress:    j.Server.HTTPAddress,
			GRPCAddress:    j.Server.GRPCAddress,
			RequestTimeout: time.Duration(j.Server.RequestTimeout),
			AllowedOrigins: j.Server.AllowedOrigins,
		},
		Recipes: Recipes{
			Provider: j.Recipes.Provider,
			BaseURL:  j.Recipes.BaseURL,
			APIKey:   j.Recipes.APIKey,
			Timeout:  time.Duration(j.Recipes.Timeout),
		},
		Identity: Identity(j.Identity),
		Workers: Workers{
			SyncInterval: time.Duration(j.Workers.SyncInterval),
		},
		Seed: Seed(j.Seed),
	}, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as raw nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
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
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
