package main

import (
	"fmt"
	"os"
	"time"
)

// Config holds all environment variables for the service.
type Config struct {
	Port        string
	Env         string
	MongoURL    string
	MongoDBName string
	JWTSecret   string
	TokenTTL    time.Duration
	RedisURL    string
	AWSRegion   string
	AWSEndpoint string
	S3Bucket    string
	SNSTopicArn string
}

// LoadConfig loads environment variables into a Config struct and validates
// the required ones.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:        os.Getenv("PORT"),
		Env:         os.Getenv("APP_ENV"),
		MongoURL:    os.Getenv("MONGO_URL"),
		MongoDBName: os.Getenv("MONGO_DB_NAME"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		TokenTTL:    24 * time.Hour,
		RedisURL:    os.Getenv("REDIS_URL"),
		AWSRegion:   os.Getenv("AWS_REGION"),
		AWSEndpoint: os.Getenv("AWS_ENDPOINT"),
		S3Bucket:    os.Getenv("AWS_S3_BUCKET"),
		SNSTopicArn: os.Getenv("SNS_ORDER_TOPIC_ARN"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if cfg.MongoDBName == "" {
		cfg.MongoDBName = "ecommerce"
	}
	if cfg.AWSRegion == "" {
		cfg.AWSRegion = "us-east-1"
	}
	if raw := os.Getenv("TOKEN_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
		}
		cfg.TokenTTL = ttl
	}

	if cfg.MongoURL == "" {
		return nil, fmt.Errorf("MONGO_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}
