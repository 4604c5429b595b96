package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

var (
	modeCmd      = pflag.String("mode", "", "front end to run: console, http, zmq or client")
	portCmd      = pflag.Int("port", 0, "HTTP server port")
	zmqPortCmd   = pflag.Int("zmq-port", 0, "ZeroMQ API port")
	serverUrlCmd = pflag.String("server-url", "", "HTTP API to talk to in client mode")
	envFileCmd   = pflag.String("env-file", ".env", "dotenv file to load")
)

const (
	ModeConsole = "console"
	ModeHTTP    = "http"
	ModeZmq     = "zmq"
	ModeClient  = "client"
)

type Config struct {
	Mode       string
	StoreName  string
	ServerHost string
	ServerPort int
	ZmqApiPort int
	ServerUrl  string
	CodecMode  string
	IndexOrder int
	LogLevel   string
}

// LoadConfig reads the dotenv file, then the environment; flags given on the
// command line win over both.
func LoadConfig() Config {
	godotenv.Load(*envFileCmd)
	cfg := Config{
		Mode:       getEnv("MODE", ModeConsole),
		StoreName:  getEnv("STORE_NAME", "default"),
		ServerHost: getEnv("HTTP_HOST", ""),
		ServerPort: getEnvInt("HTTP_PORT", 3000),
		ZmqApiPort: getEnvInt("ZMQ_PORT", 5555),
		ServerUrl:  getEnv("SERVER_URL", "http://localhost:3000"),
		CodecMode:  getEnv("CODEC_MODE", "symmetric"),
		IndexOrder: getEnvInt("INDEX_ORDER", 4),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
	}

	if pflag.CommandLine.Changed("mode") {
		cfg.Mode = *modeCmd
	}
	if pflag.CommandLine.Changed("port") {
		cfg.ServerPort = *portCmd
	}
	if pflag.CommandLine.Changed("zmq-port") {
		cfg.ZmqApiPort = *zmqPortCmd
	}
	if pflag.CommandLine.Changed("server-url") {
		cfg.ServerUrl = *serverUrlCmd
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}
