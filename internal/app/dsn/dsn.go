// internal/app/dsn/dsn.go
package dsn

import (
	"fmt"
	"os"
)

// FromEnv собирает Postgres DSN из переменных окружения
func FromEnv() string {
	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "marketstat")
	pass := getEnv("DB_PASS", "marketstat")
	name := getEnv("DB_NAME", "marketstat")

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, pass, name)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
