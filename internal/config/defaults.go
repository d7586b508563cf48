package config

import "time"

const (
	ProviderMealDB      = "mealdb"
	ProviderSpoonacular = "spoonacular"

	DefaultMealDBBaseURL      = "https://www.themealdb.com/"
	DefaultSpoonacularBaseURL = "https://api.spoonacular.com/"

	// RemoteMemory selects the in-process document tree.
	RemoteMemory = "memory"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "recipe-keeper",
			TokenDuration: 24 * time.Hour,
			PasswordCost:  10,
			Version:       "dev",
			LogLevel:      "debug",
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Storage: Storage{
			DB: DB{
				DSN: "recipe-keeper.db",
			},
			Remote: Remote{
				DatabaseURL:  RemoteMemory,
				PollInterval: 5 * time.Second,
			},
			Photos: Photos{
				Dir: "profilePictures",
			},
		},
		Recipes: Recipes{
			Provider: ProviderMealDB,
			Timeout:  30 * time.Second,
		},
		Workers: Workers{
			SyncInterval: time.Minute,
		},
		Seed: Seed{
			AdminUsername: "admin1",
			AdminEmail:    "admin@t.com",
		},
	}
}

// RecipesBaseURL returns the configured base URL or the provider default.
func (r Recipes) RecipesBaseURL() string {
	if r.BaseURL != "" {
		return r.BaseURL
	}
	if r.Provider == ProviderSpoonacular {
		return DefaultSpoonacularBaseURL
	}

	return DefaultMealDBBaseURL
}
