package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"

	"nesld/log"
)

type Config struct {
	Report ReportConfig `toml:"report"`
	Scan   ScanConfig   `toml:"scan"`
}

type ReportConfig struct {
	Symbols bool `toml:"symbols"`
}

type ScanConfig struct {
	Jobs        int  `toml:"jobs"`
	FailOnDiags bool `toml:"fail_on_diags"`
}

var defaultConfig = Config{
	Report: ReportConfig{Symbols: true},
	Scan:   ScanConfig{Jobs: 4},
}

var ConfigDir = sync.OnceValue(func() string {
	cfgdir, err := os.UserConfigDir()
	if err != nil {
		log.ModLoader.Fatalf("failed to get user config directory: %v", err)
	}

	dir := filepath.Join(cfgdir, "nesld")
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.ModLoader.Fatalf("failed to create directory %s: %v", dir, err)
	}
	return dir
})

const cfgFilename = "config.toml"

// LoadConfigOrDefault loads the configuration from the nesld config
// directory, or provides the default one.
func LoadConfigOrDefault() Config {
	cfg := defaultConfig
	if _, err := toml.DecodeFile(filepath.Join(ConfigDir(), cfgFilename), &cfg); err != nil {
		return defaultConfig
	}
	return cfg
}

// SaveConfig into the nesld config directory.
func SaveConfig(cfg Config) error {
	buf, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(ConfigDir(), cfgFilename), buf, 0644)
}

func configMain(args ConfigCmd) {
	path := filepath.Join(ConfigDir(), cfgFilename)

	if args.Init {
		if _, err := os.Stat(path); err == nil {
			fatalf("config file already exists at %s", path)
		}
		checkf(SaveConfig(defaultConfig), "failed to write config file")
		fmt.Println("wrote", path)
		return
	}

	fmt.Println("# config file:", path)
	checkf(toml.NewEncoder(os.Stdout).Encode(LoadConfigOrDefault()), "failed to encode config")
}
