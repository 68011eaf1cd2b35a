package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	JWT      JWT
	S3       S3
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type JWT struct {
	Secret      string
	ExpireHours int
}

type S3 struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "5000")
	viper.SetDefault("JWT_EXPIRE_HOURS", 72)

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.JWT.Secret = viper.GetString("JWT_SECRET")
	config.JWT.ExpireHours = viper.GetInt("JWT_EXPIRE_HOURS")

	config.S3.Region = viper.GetString("AWS_REGION")
	config.S3.AccessKeyID = viper.GetString("AWS_ACCESS_KEY_ID")
	config.S3.SecretAccessKey = viper.GetString("AWS_SECRET_ACCESS_KEY")
	config.S3.Bucket = viper.GetString("RESUME_BUCKET")

	log.Info().Str("port", config.Server.Port).Str("database", config.Database.Name).Msg("Config loaded")
	return &config, nil
}
