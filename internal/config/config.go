package config

import (
	"log"
	"os"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

// Settings holds the process-wide display and camera configuration
type Settings struct {
	mu sync.RWMutex

	windowWidth      int
	windowHeight     int
	mouseSensitivity float64
	movementSpeed    float32
	defaultZoom      float32
	textureDir       string
}

var globalSettings = &Settings{
	windowWidth:      1000,
	windowHeight:     800,
	mouseSensitivity: 0.1,
	movementSpeed:    20,
	defaultZoom:      80,
	textureDir:       "textures",
}

// fileSettings mirrors Settings for the optional TOML override file.
// Pointer fields distinguish "absent" from zero values.
type fileSettings struct {
	WindowWidth      *int     `toml:"window_width"`
	WindowHeight     *int     `toml:"window_height"`
	MouseSensitivity *float64 `toml:"mouse_sensitivity"`
	MovementSpeed    *float32 `toml:"movement_speed"`
	DefaultZoom      *float32 `toml:"default_zoom"`
	TextureDir       *string  `toml:"texture_dir"`
}

// Load merges settings from a TOML file over the defaults.
// A missing file is not an error; defaults stay in effect.
func Load(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("config: cannot read %s: %v", path, err)
		}
		return
	}

	var fs fileSettings
	if err := toml.Unmarshal(data, &fs); err != nil {
		log.Printf("config: cannot parse %s: %v", path, err)
		return
	}

	if fs.WindowWidth != nil {
		SetWindowSize(*fs.WindowWidth, GetWindowHeight())
	}
	if fs.WindowHeight != nil {
		SetWindowSize(GetWindowWidth(), *fs.WindowHeight)
	}
	if fs.MouseSensitivity != nil {
		SetMouseSensitivity(*fs.MouseSensitivity)
	}
	if fs.MovementSpeed != nil {
		SetMovementSpeed(*fs.MovementSpeed)
	}
	if fs.DefaultZoom != nil {
		SetDefaultZoom(*fs.DefaultZoom)
	}
	if fs.TextureDir != nil {
		globalSettings.mu.Lock()
		globalSettings.textureDir = *fs.TextureDir
		globalSettings.mu.Unlock()
	}
}

// GetWindowWidth returns the display window width in pixels
func GetWindowWidth() int {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.windowWidth
}

// GetWindowHeight returns the display window height in pixels
func GetWindowHeight() int {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.windowHeight
}

// SetWindowSize sets the display window dimensions, clamped to sane bounds
func SetWindowSize(width, height int) {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()

	if width < 320 {
		width = 320
	}
	if height < 240 {
		height = 240
	}
	globalSettings.windowWidth = width
	globalSettings.windowHeight = height
}

// GetMouseSensitivity returns the mouse-look sensitivity factor
func GetMouseSensitivity() float64 {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.mouseSensitivity
}

// SetMouseSensitivity sets the mouse-look sensitivity factor
func SetMouseSensitivity(s float64) {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()

	if s < 0.01 {
		s = 0.01
	}
	if s > 1.0 {
		s = 1.0
	}
	globalSettings.mouseSensitivity = s
}

// GetMovementSpeed returns the camera movement speed in units per second
func GetMovementSpeed() float32 {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.movementSpeed
}

// SetMovementSpeed sets the camera movement speed in units per second
func SetMovementSpeed(speed float32) {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()

	if speed < 1 {
		speed = 1
	}
	if speed > 100 {
		speed = 100
	}
	globalSettings.movementSpeed = speed
}

// GetDefaultZoom returns the startup camera field of view in degrees
func GetDefaultZoom() float32 {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.defaultZoom
}

// SetDefaultZoom sets the startup camera field of view in degrees
func SetDefaultZoom(zoom float32) {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()

	if zoom < 1 {
		zoom = 1
	}
	if zoom > 120 {
		zoom = 120
	}
	globalSettings.defaultZoom = zoom
}

// GetTextureDir returns the directory scene texture images are loaded from
func GetTextureDir() string {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.textureDir
}
