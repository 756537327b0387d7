package config

import (
	"encoding/json"
	"os"
	"strconv"
)

// Path is the simulation config file, relative to the process working directory.
const Path = "config/sim.json"

// Config holds every tunable quantity of the simulation. Values come from
// defaults, then the JSON file at Path if present, then SIM_* environment
// variables. Nothing is re-read after startup; reset keeps the loaded values.
type Config struct {
	Width         float32 `json:"width"`
	Height        float32 `json:"height"`
	BodyCount     int     `json:"body_count"`
	Restitution   float32 `json:"restitution"`
	MinRadius     int32   `json:"min_radius"`
	MaxRadius     int32   `json:"max_radius"`
	VelocityScale int32   `json:"velocity_scale"`
}

// Default returns the stock simulation parameters: an 800x600 arena with 10
// bodies, perfectly elastic collisions, radii 15..35, and velocity scale 200.
func Default() Config {
	return Config{
		Width:         800,
		Height:        600,
		BodyCount:     10,
		Restitution:   1.0,
		MinRadius:     15,
		MaxRadius:     35,
		VelocityScale: 200,
	}
}

// Load reads the config from Path and applies environment overrides. A missing or
// invalid file is not an error; defaults are used in its place.
func Load() (Config, error) {
	c, _ := LoadFile(Path)
	return applyEnv(c), nil
}

// LoadFile reads a config from the given path. If the file is missing or invalid,
// returns Default() and does not create a file.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), nil
	}
	c := Default()
	if err := json.Unmarshal(data, &c); err != nil {
		return Default(), nil
	}
	return c, nil
}

// applyEnv overlays SIM_* environment variables onto c. Unset or unparsable
// variables leave the corresponding field unchanged.
func applyEnv(c Config) Config {
	if v, ok := envFloat("SIM_WIDTH"); ok {
		c.Width = v
	}
	if v, ok := envFloat("SIM_HEIGHT"); ok {
		c.Height = v
	}
	if v, ok := envInt("SIM_BODY_COUNT"); ok {
		c.BodyCount = int(v)
	}
	if v, ok := envFloat("SIM_RESTITUTION"); ok {
		c.Restitution = v
	}
	if v, ok := envInt("SIM_MIN_RADIUS"); ok {
		c.MinRadius = int32(v)
	}
	if v, ok := envInt("SIM_MAX_RADIUS"); ok {
		c.MaxRadius = int32(v)
	}
	if v, ok := envInt("SIM_VELOCITY_SCALE"); ok {
		c.VelocityScale = int32(v)
	}
	return c
}

func envFloat(key string) (float32, bool) {
	s := os.Getenv(key)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, false
	}
	return float32(v), true
}

func envInt(key string) (int64, bool) {
	s := os.Getenv(key)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
