package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath         = "."
	defaultTickInterval = 100 * time.Millisecond
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Building static data (navigation graph, destinations, anchors)
	Building *BuildingConfig `json:"building" yaml:"building"`

	// Routing configuration for the navigation graph engine
	Routing *RoutingConfig `json:"routing" yaml:"routing"`

	// Navigation session tuning
	Navigation *NavigationConfig `json:"navigation" yaml:"navigation"`

	// Position source selection
	Position *PositionConfig `json:"position" yaml:"position"`

	// QRCode configuration for anchor markers
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// BuildingConfig points at the directory holding the building data files
type BuildingConfig struct {
	// Directory containing nodes.csv, edges.csv, targets.csv, anchors.csv and metadata.json
	DataPath string `json:"dataPath" yaml:"dataPath"`
}

// RoutingConfig defines navigation graph engine configuration
type RoutingConfig struct {
	// Maximum horizontal distance in meters for snapping a position to the graph
	MaxSnapDistance float64 `json:"maxSnapDistance" yaml:"maxSnapDistance"`

	// Maximum vertical distance in meters between a position and a snapped node
	FloorTolerance float64 `json:"floorTolerance" yaml:"floorTolerance"`

	// Grid cell size in meters for the spatial index
	GridCellSize float64 `json:"gridCellSize" yaml:"gridCellSize"`
}

// NavigationConfig defines the session engine tuning. Every value is
// validated when the session is constructed.
type NavigationConfig struct {
	// Sampling period of the tick loop
	TickInterval time.Duration `json:"tickInterval" yaml:"tickInterval" validate:"gt=0"`

	Arrival   ArrivalChannels `json:"arrival" yaml:"arrival"`
	Reroute   RerouteConfig   `json:"reroute" yaml:"reroute"`
	Direction DirectionConfig `json:"direction" yaml:"direction"`
}

// ArrivalChannels holds one arrival configuration per output channel
type ArrivalChannels struct {
	Sound     ArrivalConfig `json:"sound" yaml:"sound"`
	Vibration ArrivalConfig `json:"vibration" yaml:"vibration"`
	Dialog    ArrivalConfig `json:"dialog" yaml:"dialog"`
}

// ForChannel returns the configuration of the named channel.
func (a ArrivalChannels) ForChannel(name string) (ArrivalConfig, bool) {
	switch strings.ToLower(name) {
	case "sound":
		return a.Sound, true
	case "vibration":
		return a.Vibration, true
	case "dialog":
		return a.Dialog, true
	default:
		return ArrivalConfig{}, false
	}
}

// ArrivalConfig tunes one arrival channel
type ArrivalConfig struct {
	// Distance in meters at which arrival fires
	TriggerDistance float64 `json:"triggerDistance" yaml:"triggerDistance" validate:"gt=0"`

	// Displacement in meters from the selection position required before arrival can fire
	MinDeparture float64 `json:"minDeparture" yaml:"minDeparture" validate:"gte=0"`
}

// RerouteConfig tunes switching between same-name destination instances
type RerouteConfig struct {
	// How often alternative instances are evaluated
	EvaluationInterval time.Duration `json:"evaluationInterval" yaml:"evaluationInterval" validate:"gt=0"`

	// Minimum path-distance improvement in meters required to switch
	Threshold float64 `json:"threshold" yaml:"threshold" validate:"gte=0"`

	// Concurrent oracle queries per evaluation (0 uses the default)
	Workers int `json:"workers" yaml:"workers" validate:"gte=0"`
}

// DirectionConfig tunes turn instruction classification
type DirectionConfig struct {
	// Waypoints closer than this (horizontally) are skipped when picking the next bearing
	MinAheadDistance float64 `json:"minAheadDistance" yaml:"minAheadDistance" validate:"gte=0"`

	TurnLeftDegrees  float64 `json:"turnLeftDegrees" yaml:"turnLeftDegrees" validate:"lt=0,gte=-180"`
	TurnRightDegrees float64 `json:"turnRightDegrees" yaml:"turnRightDegrees" validate:"gt=0,lte=180"`
	UTurnDegrees     float64 `json:"uTurnDegrees" yaml:"uTurnDegrees" validate:"gtfield=TurnRightDegrees,lte=180"`

	// Minimum time between two evaluations
	SampleInterval time.Duration `json:"sampleInterval" yaml:"sampleInterval" validate:"gt=0"`

	// Movement below this many meters per sample counts as standing still
	MovementNoiseFloor float64 `json:"movementNoiseFloor" yaml:"movementNoiseFloor" validate:"gte=0"`
}

// PositionConfig selects where position samples come from
type PositionConfig struct {
	// Source type: "push" for positions posted by the client or "track" for CSV replay
	Source string `json:"source" yaml:"source"`

	// CSV file with x,y,z rows (for track source)
	TrackPath string `json:"trackPath" yaml:"trackPath"`

	// Restart the track when it ends (for track source)
	Loop bool `json:"loop" yaml:"loop"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// DefaultNavigationConfig returns the tuning used when the config file omits
// the navigation section.
func DefaultNavigationConfig() NavigationConfig {
	return NavigationConfig{
		TickInterval: defaultTickInterval,
		Arrival: ArrivalChannels{
			Sound:     ArrivalConfig{TriggerDistance: 1.5, MinDeparture: 3},
			Vibration: ArrivalConfig{TriggerDistance: 1.5, MinDeparture: 3},
			Dialog:    ArrivalConfig{TriggerDistance: 2, MinDeparture: 5},
		},
		Reroute: RerouteConfig{
			EvaluationInterval: 2 * time.Second,
			Threshold:          2,
			Workers:            4,
		},
		Direction: DirectionConfig{
			MinAheadDistance:   1.5,
			TurnLeftDegrees:    -40,
			TurnRightDegrees:   40,
			UTurnDegrees:       150,
			SampleInterval:     time.Second,
			MovementNoiseFloor: 0.2,
		},
	}
}

// DefaultRoutingConfig returns graph engine defaults for a typical building
func DefaultRoutingConfig() RoutingConfig {
	return RoutingConfig{
		MaxSnapDistance: 5,
		FloorTolerance:  2,
		GridCellSize:    5,
	}
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Environment variables override file values.
	// Example: NAVIGATION_REROUTE_THRESHOLD -> navigation.reroute.threshold
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Building == nil {
		cfg.Building = &BuildingConfig{DataPath: "./data/building"}
	}

	if cfg.Routing == nil {
		routing := DefaultRoutingConfig()
		cfg.Routing = &routing
	}

	if cfg.Navigation == nil {
		navigation := DefaultNavigationConfig()
		cfg.Navigation = &navigation
	}

	if cfg.Navigation.TickInterval == 0 {
		cfg.Navigation.TickInterval = defaultTickInterval
	}

	if cfg.Position == nil {
		cfg.Position = &PositionConfig{Source: "push"}
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
