package api

import (
	"fmt"
	"github.com/alex-pricope/hackathon-voting/logging"
	"github.com/alex-pricope/hackathon-voting/voting"
	"github.com/spf13/viper"
	"sync"
	"time"
)

const (
	StorageBackendMemory = "memory"
	StorageBackendFile   = "file"
	StorageBackendDynamo = "dynamo"
)

type Config struct {
	StorageConfig
	ServerConfig
	LiveConfig
	ResultsConfig
	AdminToken string
	Voting     voting.Config
}

type StorageConfig struct {
	Backend       string
	Dir           string
	TableName     string
	RetryAttempts int
	RetryDelay    time.Duration
	Timeout       time.Duration
}

type ServerConfig struct {
	Port int
	Mode string
}

type LiveConfig struct {
	SendBuffer   int
	WriteTimeout time.Duration
}

type ResultsConfig struct {
	Schedule string
	Timeout  time.Duration
}

var settingsOnce sync.Once

func ReadConfig() (*Config, error) {
	var conf = &Config{
		StorageConfig: StorageConfig{
			Backend:       getStringOrDefault("storage.backend", StorageBackendFile),
			Dir:           getStringOrDefault("storage.dir", "data"),
			TableName:     getStringOrDefault("storage.tableName", "HackathonDocuments"),
			RetryAttempts: getIntOrDefault("storage.retryAttempts", 3),
			RetryDelay:    getDurationOrDefault("storage.retryDelay", 200*time.Millisecond),
			Timeout:       getDurationOrDefault("storage.timeout", 5*time.Second),
		},
		ServerConfig: ServerConfig{
			Port: getIntOrDefault("server.port", 8080),
			Mode: getStringOrDefault("server.mode", "local"),
		},
		LiveConfig: LiveConfig{
			SendBuffer:   getIntOrDefault("live.sendBuffer", 16),
			WriteTimeout: getDurationOrDefault("live.writeTimeout", 5*time.Second),
		},
		ResultsConfig: ResultsConfig{
			Schedule: getStringOrDefault("results.schedule", ""),
			Timeout:  getDurationOrDefault("results.timeout", 10*time.Second),
		},
		AdminToken: getString("admin.token"),
	}

	votingConfig, err := readVotingConfig()
	if err != nil {
		return nil, err
	}
	conf.Voting = votingConfig

	switch conf.Backend {
	case StorageBackendMemory, StorageBackendFile, StorageBackendDynamo:
	default:
		return nil, fmt.Errorf("%w: unknown storage backend %q", voting.ErrInvalidConfiguration, conf.Backend)
	}

	settingsOnce.Do(func() {
		logging.Log.Print("Reading settings!")
	})

	return conf, nil
}

// readVotingConfig overlays the configured teams, rubrics and awards on the
// defaults and validates the result.
func readVotingConfig() (voting.Config, error) {
	conf := voting.DefaultConfig()
	if viper.IsSet("voting.teams") {
		conf.Teams = nil
		if err := viper.UnmarshalKey("voting.teams", &conf.Teams); err != nil {
			return voting.Config{}, fmt.Errorf("%w: voting.teams: %v", voting.ErrInvalidConfiguration, err)
		}
	}
	if viper.IsSet("voting.rubrics") {
		conf.Rubrics = nil
		if err := viper.UnmarshalKey("voting.rubrics", &conf.Rubrics); err != nil {
			return voting.Config{}, fmt.Errorf("%w: voting.rubrics: %v", voting.ErrInvalidConfiguration, err)
		}
	}
	if viper.IsSet("voting.awards") {
		conf.Awards = nil
		if err := viper.UnmarshalKey("voting.awards", &conf.Awards); err != nil {
			return voting.Config{}, fmt.Errorf("%w: voting.awards: %v", voting.ErrInvalidConfiguration, err)
		}
	}
	if err := conf.Validate(); err != nil {
		return voting.Config{}, err
	}
	logging.Log.Printf("voting config: %d teams, %d rubric groups, %d awards", len(conf.Teams), len(conf.Rubrics), len(conf.Awards))
	return conf, nil
}

func getString(name string) string {
	if viper.IsSet(name) {
		v := viper.GetString(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Fatalf("required environment variable '%s' is missing", name)
	return ""
}

func getIntOrDefault(name string, def int) int {
	if viper.IsSet(name) {
		v := viper.GetInt(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}

func getStringOrDefault(name string, def string) string {
	if viper.IsSet(name) {
		v := viper.GetString(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}

func getDurationOrDefault(name string, def time.Duration) time.Duration {
	if viper.IsSet(name) {
		v := viper.GetDuration(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}
