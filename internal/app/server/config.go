package server

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port            string
	RefreshInterval time.Duration

	AwsRegion         string
	CognitoUserPoolId string
}

func NewConfig() Config {
	var config Config

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs/server")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		panic(fmt.Errorf("fatal error config file: %s", err))
	}

	envFiles := []string{
		"./configs/aws/base.env",
		"./configs/aws/cognito.env",
	}
	err = loadEnvFiles(envFiles)
	if err != nil {
		panic(fmt.Errorf("fatal error config file: %s", err))
	}

	config.Port = viper.GetString("Server.Port")
	refreshInterval, err := time.ParseDuration(viper.GetString("Server.RefreshInterval"))
	if err != nil {
		panic(fmt.Errorf("fatal error config file: %s", err))
	}
	config.RefreshInterval = refreshInterval
	config.AwsRegion = viper.GetString("AWS_REGION")
	config.CognitoUserPoolId = viper.GetString("COGNITO_USER_POOL_ID")

	return config
}

func loadEnvFiles(filenames []string) error {
	for _, file := range filenames {
		viper.SetConfigFile(file)
		viper.SetConfigType("env")
		viper.AutomaticEnv()

		err := viper.MergeInConfig()
		if err != nil {
			return err
		}
	}
	return nil
}
