// @title Hackathon Voting API
// @version 1.0
// @description Vote collection, award results and live result updates for a hackathon

// @securityDefinitions.apikey AdminToken
// @in header
// @name x-admin-token
package main

import (
	_ "github.com/alex-pricope/hackathon-voting/docs"

	"github.com/alex-pricope/hackathon-voting/api"
	"github.com/alex-pricope/hackathon-voting/logging"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"strings"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logging.Log.Info("no .env file found, using environment variables")
	}

	// Load env
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logging.Log.Errorf("Failed to read config file: %v", err)
		panic("Failed to read config file: " + err.Error())
	}

	logging.BoostrapLogger(viper.GetString("log.level"))

	// Read config
	config, err := api.ReadConfig()
	if err != nil {
		logging.Log.Errorf("Invalid configuration: %v", err)
		panic("Invalid configuration: " + err.Error())
	}

	// Start the service (local server or lambda)
	service := api.NewServer(config)
	service.Start()
}
