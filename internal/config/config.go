// Package config handles client configuration loading and defaults.
package config

// Config holds all client settings.
type Config struct {
	Graphics    GraphicsConfig    `yaml:"graphics"`
	Camera      CameraConfig      `yaml:"camera"`
	QuickRender QuickRenderConfig `yaml:"quick_render"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// GraphicsConfig holds window settings.
type GraphicsConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// CameraConfig holds orbit camera tuning.
type CameraConfig struct {
	OrbitSensitivity    float32 `yaml:"orbit_sensitivity"`
	DistanceSensitivity float32 `yaml:"distance_sensitivity"`
	PanSensitivity      float32 `yaml:"pan_sensitivity"`
	PitchAngleMin       float32 `yaml:"pitch_angle_min"`
	PitchAngleMax       float32 `yaml:"pitch_angle_max"`
	DistanceMin         float32 `yaml:"distance_min"`
	DistanceMax         float32 `yaml:"distance_max"`
	ReferenceDistance   float32 `yaml:"reference_distance"`
}

// QuickRenderConfig holds the quality toggle bindings and limits.
type QuickRenderConfig struct {
	LowQualityKey    string  `yaml:"low_quality_key"`
	HighQualityKey   string  `yaml:"high_quality_key"`
	ExemptTag        string  `yaml:"exempt_tag"`
	ShadowResolution int32   `yaml:"shadow_resolution"`
	RestoreMillis    float32 `yaml:"restore_millis"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:  1280,
			Height: 720,
			Title:  "VTTL",
		},
		Camera: CameraConfig{
			OrbitSensitivity:    0.3,
			DistanceSensitivity: 0.15,
			PanSensitivity:      0.025,
			PitchAngleMin:       -90,
			PitchAngleMax:       90,
			DistanceMin:         1,
			DistanceMax:         500,
			ReferenceDistance:   10,
		},
		QuickRender: QuickRenderConfig{
			LowQualityKey:    "l",
			HighQualityKey:   "h",
			ExemptTag:        "keep_quality",
			ShadowResolution: 256,
			RestoreMillis:    1000,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
