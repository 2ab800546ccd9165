package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/df07/go-sphere-caster/pkg/renderer"
)

// MaxDimension bounds the image width and height
const MaxDimension = 16384

// Config holds everything needed for one render and its optional upload
type Config struct {
	Scene        string  // Built-in scene name
	Width        int     // Image width in pixels
	Height       int     // Image height in pixels
	FOVDegrees   float64 // Vertical field of view in degrees
	Output       string  // PPM output path
	PNGOutput    string  // Optional PNG output path, empty to skip
	PreviewWidth int     // Width of the PNG preview, 0 for full size

	S3AccessKey string
	S3SecretKey string
	S3Endpoint  string
	S3Region    string
	S3Bucket    string
	S3Prefix    string
}

// Default returns a 1024x768 render of the default scene at 90 degrees, written to out.ppm
func Default() Config {
	return Config{
		Scene:      "default",
		Width:      1024,
		Height:     768,
		FOVDegrees: 90,
		Output:     "out.ppm",
		S3Region:   "us-east-1",
	}
}

// Load reads an optional .env file from rootDir, then applies environment
// variables on top of the defaults. A missing .env file is not an error.
func Load(rootDir string) (Config, error) {
	envFile := filepath.Join(rootDir, ".env")
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	cfg := Default()
	var err error

	cfg.Scene = getEnv("RAYCAST_SCENE", cfg.Scene)
	cfg.Output = getEnv("RAYCAST_OUTPUT", cfg.Output)
	cfg.PNGOutput = getEnv("RAYCAST_PNG", cfg.PNGOutput)
	if cfg.Width, err = getEnvInt("RAYCAST_WIDTH", cfg.Width); err != nil {
		return Config{}, err
	}
	if cfg.Height, err = getEnvInt("RAYCAST_HEIGHT", cfg.Height); err != nil {
		return Config{}, err
	}
	if cfg.PreviewWidth, err = getEnvInt("RAYCAST_PREVIEW_WIDTH", cfg.PreviewWidth); err != nil {
		return Config{}, err
	}
	if cfg.FOVDegrees, err = getEnvFloat("RAYCAST_FOV", cfg.FOVDegrees); err != nil {
		return Config{}, err
	}

	cfg.S3AccessKey = os.Getenv("S3_ACCESS_KEY")
	cfg.S3SecretKey = os.Getenv("S3_SECRET_KEY")
	cfg.S3Endpoint = os.Getenv("S3_ENDPOINT")
	cfg.S3Region = getEnv("S3_REGION", cfg.S3Region)
	cfg.S3Bucket = os.Getenv("S3_BUCKET")
	cfg.S3Prefix = os.Getenv("S3_PREFIX")

	return cfg, nil
}

// Validate checks that the render parameters describe a usable camera
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("image size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Width > MaxDimension || c.Height > MaxDimension {
		return fmt.Errorf("image size must be at most %dx%d, got %dx%d", MaxDimension, MaxDimension, c.Width, c.Height)
	}
	// Written as a negated range check so NaN is rejected
	if !(c.FOVDegrees > 0 && c.FOVDegrees < 180) {
		return fmt.Errorf("field of view must be between 0 and 180 degrees, got: %f", c.FOVDegrees)
	}
	if c.Output == "" {
		return fmt.Errorf("output path must not be empty")
	}
	if c.PreviewWidth < 0 {
		return fmt.Errorf("preview width must not be negative, got: %d", c.PreviewWidth)
	}
	return nil
}

// CameraConfig converts the render parameters to a renderer camera configuration
func (c Config) CameraConfig() renderer.CameraConfig {
	return renderer.CameraConfig{
		Width:  c.Width,
		Height: c.Height,
		FOV:    c.FOVDegrees * math.Pi / 180,
	}
}

// UploadEnabled reports whether a bucket is configured
func (c Config) UploadEnabled() bool {
	return c.S3Bucket != ""
}

// getEnv returns the environment variable or a fallback when unset
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %s", key, value)
	}
	return parsed, nil
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %s", key, value)
	}
	return parsed, nil
}
