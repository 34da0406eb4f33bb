package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/aretw0/nbserve/pkg/adapters/process"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

//go:embed sample_config.yaml
var sampleConfig string

// Server contains HTTP listener configuration.
type Server struct {
	Addr string `yaml:"addr"`
}

// Paths contains directory configuration.
type Paths struct {
	DocumentsDir string `yaml:"documents_dir"`
	StaticDir    string `yaml:"static_dir"`
	ToolsFile    string `yaml:"tools_file"` // optional tools.yaml or tools.json
}

// Render contains tree rendering configuration.
type Render struct {
	Engine    string        `yaml:"engine"`     // "exec" or "graphviz"
	DotBinary string        `yaml:"dot_binary"` // used by the exec engine
	Timeout   time.Duration `yaml:"timeout"`    // zero means no limit
	Model     string        `yaml:"model"`      // optional JSON tree; empty exports an empty graph
}

// Log contains logger configuration.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "text" or "json"
}

// Config is the full nbserve configuration.
type Config struct {
	Server Server                  `yaml:"server"`
	Paths  Paths                   `yaml:"paths"`
	Render Render                  `yaml:"render"`
	Log    Log                     `yaml:"log"`
	Tools  []process.ProcessConfig `yaml:"tools"`
}

// envKeys maps environment variables to their position in the YAML tree.
var envKeys = map[string][]string{
	"NBSERVE_ADDR":           {"server", "addr"},
	"NBSERVE_DOCUMENTS_DIR":  {"paths", "documents_dir"},
	"NBSERVE_STATIC_DIR":     {"paths", "static_dir"},
	"NBSERVE_TOOLS_FILE":     {"paths", "tools_file"},
	"NBSERVE_RENDER_ENGINE":  {"render", "engine"},
	"NBSERVE_DOT_BINARY":     {"render", "dot_binary"},
	"NBSERVE_RENDER_TIMEOUT": {"render", "timeout"},
	"NBSERVE_RENDER_MODEL":   {"render", "model"},
	"NBSERVE_LOG_LEVEL":      {"log", "level"},
	"NBSERVE_LOG_FORMAT":     {"log", "format"},
}

// Load reads configuration from path (or DefaultPath when path is empty and
// the file exists) and the process environment.
func Load(path string) (Config, error) {
	return load(path, os.LookupEnv)
}

func load(path string, lookup func(string) (string, bool)) (Config, error) {
	raw := map[string]any{}

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
		if raw == nil {
			raw = map[string]any{}
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := applyEnv(raw, lookup); err != nil {
		return Config{}, err
	}

	cfg := Default()
	if err := decode(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	if err := cfg.mergeToolsFile(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// mergeToolsFile prepends the tools declared in Paths.ToolsFile. Inline tools
// win over file entries with the same name. A missing file adds nothing.
func (c *Config) mergeToolsFile() error {
	if c.Paths.ToolsFile == "" {
		return nil
	}
	fileTools, err := process.LoadTools(c.Paths.ToolsFile)
	if err != nil {
		return fmt.Errorf("load tools file: %w", err)
	}
	inline := process.ToolMap(c.Tools)
	merged := make([]process.ProcessConfig, 0, len(fileTools)+len(c.Tools))
	for _, name := range slices.Sorted(maps.Keys(fileTools)) {
		if _, ok := inline[name]; ok {
			continue
		}
		merged = append(merged, fileTools[name])
	}
	c.Tools = append(merged, c.Tools...)
	return nil
}

func applyEnv(raw map[string]any, lookup func(string) (string, bool)) error {
	for env, keyPath := range envKeys {
		value, ok := lookup(env)
		if !ok {
			continue
		}
		section, ok := raw[keyPath[0]].(map[string]any)
		if !ok {
			if existing, present := raw[keyPath[0]]; present && existing != nil {
				return fmt.Errorf("config section %q is not a mapping", keyPath[0])
			}
			section = map[string]any{}
			raw[keyPath[0]] = section
		}
		section[keyPath[1]] = value
	}
	return nil
}

func decode(raw map[string]any, cfg *Config) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		TagName:          "yaml",
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}

func (c *Config) normalize() {
	c.Server.Addr = strings.TrimSpace(c.Server.Addr)
	c.Paths.DocumentsDir = strings.TrimSpace(c.Paths.DocumentsDir)
	c.Paths.StaticDir = strings.TrimSpace(c.Paths.StaticDir)
	c.Paths.ToolsFile = strings.TrimSpace(c.Paths.ToolsFile)
	c.Render.Engine = strings.ToLower(strings.TrimSpace(c.Render.Engine))
	c.Render.DotBinary = strings.TrimSpace(c.Render.DotBinary)
	c.Render.Model = strings.TrimSpace(c.Render.Model)
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Server.Addr == "" {
		return errors.New("server.addr must not be empty")
	}
	if c.Paths.DocumentsDir == "" {
		return errors.New("paths.documents_dir must not be empty")
	}
	switch c.Render.Engine {
	case EngineExec:
		if c.Render.DotBinary == "" {
			return errors.New("render.dot_binary must be set for the exec engine")
		}
	case EngineGraphviz:
	default:
		return fmt.Errorf("render.engine must be %q or %q, got %q", EngineExec, EngineGraphviz, c.Render.Engine)
	}
	if c.Render.Timeout < 0 {
		return errors.New("render.timeout must not be negative")
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be \"text\" or \"json\", got %q", c.Log.Format)
	}
	return nil
}

// ToolRegistry returns the configured tools plus the dot command, unless the
// tools already define one.
func (c Config) ToolRegistry() map[string]process.ProcessConfig {
	tools := process.ToolMap(c.Tools)
	if _, ok := tools["dot"]; !ok {
		tools["dot"] = process.ProcessConfig{
			Name:        "dot",
			Command:     c.Render.DotBinary,
			Description: "Graphviz DOT renderer",
		}
	}
	return tools
}

// Sample returns an annotated example configuration file.
func Sample() string {
	return sampleConfig
}
