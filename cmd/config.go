package cmd

type Config struct {
	HTTPPort string
	LogLevel string
}
