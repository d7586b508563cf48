package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the command-line configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc health address in format [host]:[port]
//	-d database DSN (postgres URL or sqlite file)
//	-remote-url remote document tree URL or "memory"
//	-remote-credentials service-account JSON for the remote tree
//	-photos-dir local profile picture directory
//	-photos-bucket S3 bucket for profile pictures
//	-recipes-provider mealdb or spoonacular
//	-recipes-api-key recipe provider API key
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-sync-interval remote-to-local sync period
//	-seed-admin create the default administrator
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		serverAddress, grpcServerAddress NetAddress

		databaseDSN       string
		remoteURL         string
		remoteCredentials string
		photosDir         string
		photosBucket      string
		recipesProvider   string
		recipesAPIKey     string
		jsonConfigPath    string
		tokenSignKey      string
		tokenIssuer       string
		tokenDuration     time.Duration
		requestTimeout    time.Duration
		syncInterval      time.Duration
		seedAdmin         bool
	)

	fs := flag.NewFlagSet("recipe-keeper", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc health address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&remoteURL, "remote-url", "", "Remote document tree URL or \"memory\"")
	fs.StringVar(&remoteCredentials, "remote-credentials", "", "Service account JSON file")
	fs.StringVar(&photosDir, "photos-dir", "", "Profile picture directory")
	fs.StringVar(&photosBucket, "photos-bucket", "", "Profile picture S3 bucket")
	fs.StringVar(&recipesProvider, "recipes-provider", "", "Recipe provider (mealdb, spoonacular)")
	fs.StringVar(&recipesAPIKey, "recipes-api-key", "", "Recipe provider API key")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Remote to local sync interval")
	fs.BoolVar(&seedAdmin, "seed-admin", false, "Create the default administrator")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Remote: Remote{
				DatabaseURL:     remoteURL,
				CredentialsFile: remoteCredentials,
			},
			Photos: Photos{
				Dir:    photosDir,
				Bucket: photosBucket,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Recipes: Recipes{
			Provider: recipesProvider,
			APIKey:   recipesAPIKey,
		},
		Workers: Workers{
			SyncInterval: syncInterval,
		},
		Seed: Seed{
			Admin: seedAdmin,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
