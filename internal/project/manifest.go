package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

var (
	ErrMissingPackage      = errors.New("missing [package]")
	ErrMissingPackageName  = errors.New("missing [package].name")
	ErrParseSectionInvalid = errors.New("invalid [parse] section")
	ErrAlreadyInitialized  = errors.New("project already initialized")
)

// Manifest is a loaded joy.toml together with its location.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

type Config struct {
	Package PackageConfig `toml:"package"`
	Parse   ParseConfig   `toml:"parse"`
	Cache   CacheConfig   `toml:"cache"`
}

type PackageConfig struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

type ParseConfig struct {
	MaxDiagnostics int `toml:"max_diagnostics"`
	// ConsOutsideQuotation is "error" or "operator".
	ConsOutsideQuotation string   `toml:"cons_outside_quotation"`
	Extensions           []string `toml:"extensions"`
	Jobs                 int      `toml:"jobs"`
}

type CacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

// DefaultConfig is used when no manifest exists and fills unset keys.
func DefaultConfig() Config {
	return Config{
		Parse: ParseConfig{
			MaxDiagnostics:       100,
			ConsOutsideQuotation: "error",
			Extensions:           []string{".joy"},
		},
	}
}

// LoadManifest finds joy.toml above startDir and decodes it. ok is false
// when no manifest exists.
func LoadManifest(startDir string) (*Manifest, bool, error) {
	manifestPath, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := LoadConfig(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

// LoadConfig decodes and validates a manifest file.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return Config{}, fmt.Errorf("%s: %w", path, ErrMissingPackage)
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return Config{}, fmt.Errorf("%s: %w", path, ErrMissingPackageName)
	}
	if err := cfg.Parse.validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}

func (p ParseConfig) validate() error {
	switch p.ConsOutsideQuotation {
	case "error", "operator":
	default:
		return fmt.Errorf("%w: cons_outside_quotation must be \"error\" or \"operator\", got %q",
			ErrParseSectionInvalid, p.ConsOutsideQuotation)
	}
	if p.MaxDiagnostics < 0 {
		return fmt.Errorf("%w: max_diagnostics must not be negative", ErrParseSectionInvalid)
	}
	if p.Jobs < 0 {
		return fmt.Errorf("%w: jobs must not be negative", ErrParseSectionInvalid)
	}
	for _, ext := range p.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("%w: extension %q must start with '.'", ErrParseSectionInvalid, ext)
		}
	}
	return nil
}

// CacheDir resolves the cache directory relative to the manifest root.
func (m *Manifest) CacheDir() string {
	dir := m.Config.Cache.Dir
	if dir == "" {
		dir = ".joycache"
	}
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(m.Root, dir)
}

// DefaultManifest returns the joy.toml written by `joy init`.
func DefaultManifest(name string) string {
	return fmt.Sprintf(`# Joy project manifest
[package]
name = %q
version = "0.1.0"

[parse]
max_diagnostics = 100
cons_outside_quotation = "error"
extensions = [".joy"]

[cache]
enabled = false
`, name)
}

// WriteDefault creates dir if needed and writes a default joy.toml into it.
// An existing manifest is never overwritten.
func WriteDefault(dir, name string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory %q: %w", dir, err)
	}
	manifestPath := filepath.Join(dir, ManifestName)
	if _, err := os.Stat(manifestPath); err == nil {
		return "", fmt.Errorf("%w: %s exists", ErrAlreadyInitialized, manifestPath)
	}
	if err := os.WriteFile(manifestPath, []byte(DefaultManifest(name)), 0o600); err != nil {
		return "", fmt.Errorf("failed to write manifest: %w", err)
	}
	return manifestPath, nil
}
