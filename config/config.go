// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"image/color"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Map       MapConfig       `yaml:"map"`
	Player    PlayerConfig    `yaml:"player"`
	Gun       GunConfig       `yaml:"gun"`
	Collision CollisionConfig `yaml:"collision"`
	Light     LightConfig     `yaml:"light"`
	Camera    CameraConfig    `yaml:"camera"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// PhysicsConfig holds the fixed timestep.
type PhysicsConfig struct {
	DT float64 `yaml:"dt"`
}

// MapConfig controls the generated bounding polygon.
type MapConfig struct {
	Radius float64 `yaml:"radius"` // Distance from origin to every vertex
	Points int     `yaml:"points"` // Vertex count (minimum 3)
	Jitter float64 `yaml:"jitter"` // Max angular jitter per vertex, degrees
}

// PlayerConfig holds agent parameters.
type PlayerConfig struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"` // Units per second while a movement key is held
}

// GunConfig holds projectile parameters.
type GunConfig struct {
	BulletRadius float64 `yaml:"bullet_radius"`
	BulletSpeed  float64 `yaml:"bullet_speed"`
	MaxAmmo      int     `yaml:"max_ammo"`
}

// CollisionConfig holds agent-vs-map resolution tuning.
type CollisionConfig struct {
	PushMargin     float64 `yaml:"push_margin"`     // Extra clearance when pulling an escaped agent back inside
	FallbackMargin float64 `yaml:"fallback_margin"` // Clearance for the push toward the map center
	ContactMargin  float64 `yaml:"contact_margin"`  // Distance to the wall below which the agent is nudged inward
	SlideDamping   float64 `yaml:"slide_damping"`   // Tangential velocity kept after a push-out
}

// LightConfig holds visibility wedge parameters.
type LightConfig struct {
	StepSize            float64 `yaml:"step_size"`            // Ray march increment in world units
	BisectionIterations int     `yaml:"bisection_iterations"` // Refinement steps per boundary crossing
	RayCount            int     `yaml:"ray_count"`            // Rays spanning the field of view
	FOV                 float64 `yaml:"fov"`                  // Default field of view, degrees
	MinFOV              float64 `yaml:"min_fov"`              // Degrees
	MaxFOV              float64 `yaml:"max_fov"`              // Degrees
	Radius              float64 `yaml:"radius"`               // Default reach
	MinRadius           float64 `yaml:"min_radius"`
	MaxRadius           float64 `yaml:"max_radius"`
	FalloffExponent     float64 `yaml:"falloff_exponent"` // k in 1-(d/max)^k
	InnerScale          float64 `yaml:"inner_scale"`      // Inner core radius as a fraction of the outer
	FarShiftStart       float64 `yaml:"far_shift_start"`  // Normalized distance where the colour starts shifting
	OriginOffset        float64 `yaml:"origin_offset"`    // Distance from agent center along facing
	OuterColor          []int   `yaml:"outer_color"`      // RGBA
	InnerColor          []int   `yaml:"inner_color"`      // RGBA
	FarColor            []int   `yaml:"far_color"`        // RGBA
}

// CameraConfig holds viewport control parameters.
type CameraConfig struct {
	MinZoom     float64 `yaml:"min_zoom"`
	MaxZoom     float64 `yaml:"max_zoom"`
	ZoomStep    float64 `yaml:"zoom_step"`
	FollowSpeed float64 `yaml:"follow_speed"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // Seconds per aggregated window
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	WindowTicks int        // Telemetry.StatsWindow in ticks
	MapJitter   float64    // Map.Jitter in radians
	FOV         float64    // Light.FOV in radians
	MinFOV      float64    // Light.MinFOV in radians
	MaxFOV      float64    // Light.MaxFOV in radians
	OuterColor  color.RGBA // Light.OuterColor
	InnerColor  color.RGBA // Light.InnerColor
	FarColor    color.RGBA // Light.FarColor
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Default returns a fresh copy of the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only overwrites fields present in the file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// validate rejects values the geometry code cannot work with.
func (c *Config) validate() error {
	if c.Physics.DT <= 0 {
		return fmt.Errorf("physics.dt must be positive, got %v", c.Physics.DT)
	}
	if c.Light.StepSize <= 0 {
		return fmt.Errorf("light.step_size must be positive, got %v", c.Light.StepSize)
	}
	if c.Light.BisectionIterations < 0 {
		return fmt.Errorf("light.bisection_iterations must not be negative, got %d", c.Light.BisectionIterations)
	}
	if c.Light.RayCount < 2 {
		return fmt.Errorf("light.ray_count must be at least 2, got %d", c.Light.RayCount)
	}
	if c.Light.MinFOV > c.Light.MaxFOV {
		return fmt.Errorf("light.min_fov (%v) exceeds light.max_fov (%v)", c.Light.MinFOV, c.Light.MaxFOV)
	}
	if c.Light.MinRadius > c.Light.MaxRadius {
		return fmt.Errorf("light.min_radius (%v) exceeds light.max_radius (%v)", c.Light.MinRadius, c.Light.MaxRadius)
	}
	if c.Camera.MinZoom <= 0 || c.Camera.MinZoom > c.Camera.MaxZoom {
		return fmt.Errorf("camera zoom bounds invalid: [%v, %v]", c.Camera.MinZoom, c.Camera.MaxZoom)
	}
	return nil
}

// SetStatsWindow overrides the telemetry window length in seconds and
// refreshes the derived tick count. Non-positive values are ignored.
func (c *Config) SetStatsWindow(seconds float64) {
	if seconds <= 0 {
		return
	}
	c.Telemetry.StatsWindow = seconds
	c.computeDerived()
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	if c.Map.Points < 3 {
		c.Map.Points = 3
	}

	c.Derived.WindowTicks = int(math.Round(c.Telemetry.StatsWindow / c.Physics.DT))
	if c.Derived.WindowTicks < 1 {
		c.Derived.WindowTicks = 1
	}

	c.Derived.MapJitter = Radians(c.Map.Jitter)
	c.Derived.FOV = Radians(c.Light.FOV)
	c.Derived.MinFOV = Radians(c.Light.MinFOV)
	c.Derived.MaxFOV = Radians(c.Light.MaxFOV)

	c.Derived.OuterColor = rgba(c.Light.OuterColor, color.RGBA{R: 255, G: 215, B: 0, A: 128})
	c.Derived.InnerColor = rgba(c.Light.InnerColor, color.RGBA{R: 255, G: 245, B: 200, A: 200})
	c.Derived.FarColor = rgba(c.Light.FarColor, color.RGBA{R: 255, G: 140, B: 40, A: 128})
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// rgba converts a 3 or 4 element channel list, falling back when malformed.
func rgba(channels []int, fallback color.RGBA) color.RGBA {
	if len(channels) != 3 && len(channels) != 4 {
		return fallback
	}
	out := color.RGBA{
		R: clampChannel(channels[0]),
		G: clampChannel(channels[1]),
		B: clampChannel(channels[2]),
		A: 255,
	}
	if len(channels) == 4 {
		out.A = clampChannel(channels[3])
	}
	return out
}

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
