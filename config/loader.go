package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// envPrefix marks the environment variables the loader binds, e.g.
// SCRIBE_SERVER_PORT.
const envPrefix = "SCRIBE_"

// configSearchPaths are tried in order when no explicit config file is given.
var configSearchPaths = []string{
	"./config.yml",
	"./config/config.yml",
}

// Load reads configuration into cfg. Precedence, lowest to highest: YAML
// config file, .env file, process environment (SCRIBE_ prefixed, nested keys
// joined with underscores, e.g. SCRIBE_SERVER_PORT). Missing files are not
// errors. Defaults are applied and the result validated.
func Load(configFile string, cfg *Config) error {
	// Load .env into the process environment first so the env binding below
	// sees it.
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			fmt.Fprintf(os.Stderr, "[config] warning: failed to load .env: %v\n", err)
		}
	}

	v := viper.New()

	if configFile == "" {
		for _, p := range configSearchPaths {
			if _, err := os.Stat(p); err == nil {
				configFile = p
				break
			}
		}
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config file %s: %w", configFile, err)
		}
	}

	// AutomaticEnv alone is not enough: Unmarshal only sees keys viper
	// already knows about, so env-only overrides never reach the struct.
	// Bind every prefixed variable explicitly instead.
	bindEnvVars(v)

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.ApplyDefaults()
	return cfg.Validate()
}

// bindEnvVars sets every SCRIBE_-prefixed environment variable on viper
// under each nested-key spelling it could correspond to, so Unmarshal picks
// it up even when the key is absent from the config file.
func bindEnvVars(v *viper.Viper) {
	for _, env := range os.Environ() {
		pair := strings.SplitN(env, "=", 2)
		if len(pair) != 2 || !strings.HasPrefix(pair[0], envPrefix) {
			continue
		}
		for _, key := range envKeyVariants(strings.TrimPrefix(pair[0], envPrefix)) {
			v.Set(key, pair[1])
		}
	}
}

// envKeyVariants expands an UPPER_SNAKE environment suffix into the nested
// viper keys it may address. Underscores are ambiguous between nesting and
// multi-word field names, so every split point is generated:
//
//	LLM_OLLAMA_BASE_URL -> llm_ollama_base_url, llm.ollama.base.url,
//	                       llm.ollama.base_url, llm.ollama_base_url, ...
func envKeyVariants(envKey string) []string {
	lower := strings.ToLower(envKey)
	parts := strings.Split(lower, "_")
	if len(parts) <= 1 {
		return []string{lower}
	}

	variants := []string{
		lower,
		strings.ReplaceAll(lower, "_", "."),
	}
	for i := 1; i < len(parts); i++ {
		variants = append(variants, strings.Join(parts[:i], ".")+"."+strings.Join(parts[i:], "_"))
	}

	seen := make(map[string]bool, len(variants))
	out := make([]string, 0, len(variants))
	for _, k := range variants {
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	return out
}
