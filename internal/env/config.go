package env

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	// Host and Port locate the key/value server.
	Host string `env:"SKIFF_HOST,default=localhost"`
	Port int    `env:"SKIFF_PORT,default=6379"`

	// HTTPPort is where the gateway serves HTTP requests.
	HTTPPort string `env:"SKIFF_HTTP_PORT,default=7379"`

	DebugHTTP bool `env:"SKIFF_DEBUG_HTTP"`
}

func LoadConfig(ctx context.Context) (*Config, error) {
	config := Config{}

	if err := godotenv.Load(".env.local"); err != nil {
		if !os.IsNotExist(err) {
			panic(err)
		}
	}

	if err := envconfig.Process(ctx, &config); err != nil {
		return nil, err
	}

	return &config, nil
}
