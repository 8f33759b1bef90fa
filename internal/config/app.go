package config

import "os"

func BasePath() string {
	return os.Getenv("APP_BASE_PATH")
}

func Addr() string {
	addr, ok := os.LookupEnv("APP_ADDR")
	if !ok {
		return ":8080"
	}
	return addr
}
