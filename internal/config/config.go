package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port    string `envconfig:"PORT" default:"8080"`
	DBDSN   string `envconfig:"DB_DSN" default:":memory:"`
	LogFile string `envconfig:"LOG_FILE" default:""`
	// Camera toggles the simulated device camera. When off, the upload
	// flow runs on the placeholder image fallback.
	Camera bool `envconfig:"CAMERA" default:"true"`
	// CameraFrame is the image the simulated camera snapshots.
	CameraFrame string `envconfig:"CAMERA_FRAME" default:"https://picsum.photos/seed/camera/800/1200"`
}

func Load() Config {
	// .env is optional; real environment variables win either way.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("pickl", &cfg); err != nil {
		log.Fatalf("[config] %v", err)
	}
	log.Printf("[config] PORT=%s DB_DSN=%s CAMERA=%t", cfg.Port, cfg.DBDSN, cfg.Camera)
	return cfg
}
