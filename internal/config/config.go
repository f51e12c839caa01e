// Package config handles walkthrough configuration loading and
// management.
package config

// Config holds all settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Movement MovementConfig `yaml:"movement"`
	Camera   CameraConfig   `yaml:"camera"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	// ShowColliders draws wireframes for the avatar capsule and the
	// collision mesh bounds on top of the scene.
	ShowColliders bool `yaml:"show_colliders"`
}

// MovementConfig holds the character movement tuning.
type MovementConfig struct {
	BaseSpeed        float32 `yaml:"base_speed"`
	SprintMultiplier float32 `yaml:"sprint_multiplier"`
	JumpSpeed        float32 `yaml:"jump_speed"`
	Gravity          float32 `yaml:"gravity"`
	SlopeLimitDeg    float32 `yaml:"slope_limit_deg"`
	GroundDamping    float32 `yaml:"ground_damping"`
	AirDamping       float32 `yaml:"air_damping"`
	FlyIdleDamping   float32 `yaml:"fly_idle_damping"`
	GroundStick      float32 `yaml:"ground_stick"`
	// ResolveIterations caps collision-resolution passes per frame.
	ResolveIterations int `yaml:"resolve_iterations"`
}

// CameraConfig holds the chase-camera geometry and feel.
type CameraConfig struct {
	Distance  float32 `yaml:"distance"`
	Height    float32 `yaml:"height"`
	Pitch     float32 `yaml:"pitch"`
	MinPitch  float32 `yaml:"min_pitch"`
	MaxPitch  float32 `yaml:"max_pitch"`
	Damping   float32 `yaml:"damping"`
	LookSpeed float32 `yaml:"look_speed"`
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
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Movement: MovementConfig{
			BaseSpeed:         6.0,
			SprintMultiplier:  1.8,
			JumpSpeed:         5.5,
			Gravity:           12.0,
			SlopeLimitDeg:     50.0,
			GroundDamping:     12.0,
			AirDamping:        2.5,
			FlyIdleDamping:    1.5,
			GroundStick:       0.5,
			ResolveIterations: 3,
		},
		Camera: CameraConfig{
			Distance:  6.0,
			Height:    1.5,
			Pitch:     0.3,
			MinPitch:  -1.2,
			MaxPitch:  1.2,
			Damping:   8.0,
			LookSpeed: 2.0,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
