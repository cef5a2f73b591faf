package config

import "os"

type Config struct {
	HTTPAddr    string
	ServiceName string
}

func Load() Config {
	return Config{
		HTTPAddr:    getenv("HTTP_ADDR", ":8082"),
		ServiceName: getenv("SERVICE_NAME", "compare-api"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
