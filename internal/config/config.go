package config

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// Environment variable / dotfile keys.
const (
	KeyBaseURL  = "CONFLUENCE_BASE_URL"
	KeyUsername = "CONFLUENCE_USERNAME"
	KeyAPIToken = "CONFLUENCE_API_TOKEN"
)

// Config holds the validated Confluence connection settings. Built once by
// Load and passed by value into adapters; nothing mutates it afterwards.
type Config struct {
	BaseURL  string
	Username string
	APIToken string
}

// Error reports one or more configuration problems found before any network
// activity happens.
type Error struct {
	Problems []string
}

func (e *Error) Error() string {
	return "configuration errors:\n  - " + strings.Join(e.Problems, "\n  - ")
}

var envLineRegex = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*)\s*=\s*(.*)$`)

// Load resolves configuration from the given dotfile with OS environment
// variables as fallback, then validates it. A missing dotfile is not an
// error; missing or malformed values are.
func Load(envFile string) (*Config, error) {
	fileVars := loadEnvFile(envFile)

	lookup := func(key string) string {
		if v, ok := fileVars[key]; ok && v != "" {
			return v
		}
		return os.Getenv(key)
	}

	cfg := &Config{
		BaseURL:  lookup(KeyBaseURL),
		Username: lookup(KeyUsername),
		APIToken: lookup(KeyAPIToken),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadEnvFile parses simple KEY=VALUE lines. Comments and blank lines are
// skipped, invalid lines are warned about and skipped, single or double
// quotes around a value are removed.
func loadEnvFile(path string) map[string]string {
	vars := make(map[string]string)

	f, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: could not read %s: %v\n", path, err)
		}
		return vars
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		matches := envLineRegex.FindStringSubmatch(line)
		if matches == nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping invalid line %d in %s: %s\n", lineNum, path, line)
			continue
		}

		key, value := matches[1], strings.TrimSpace(matches[2])
		if len(value) >= 2 {
			if (value[0] == '"' && value[len(value)-1] == '"') ||
				(value[0] == '\'' && value[len(value)-1] == '\'') {
				value = value[1 : len(value)-1]
			}
		}
		vars[key] = value
	}

	return vars
}

func (c *Config) validate() error {
	var problems []string

	if c.Username == "" {
		problems = append(problems, fmt.Sprintf("username is required; set %s in the env file or environment", KeyUsername))
	}
	if c.APIToken == "" {
		problems = append(problems, fmt.Sprintf("API token is required; set %s in the env file or environment", KeyAPIToken))
	}
	if c.BaseURL == "" {
		problems = append(problems, fmt.Sprintf("base URL is required; set %s in the env file or environment", KeyBaseURL))
	} else {
		c.BaseURL = strings.TrimRight(c.BaseURL, "/")
		if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
			problems = append(problems, fmt.Sprintf("base URL must start with http:// or https://, got: %s", c.BaseURL))
		}
	}

	// Confluence Cloud wants an email address here; warn but keep going.
	if c.Username != "" && !strings.Contains(c.Username, "@") {
		fmt.Fprintf(os.Stderr, "Warning: username %q doesn't look like an email address\n", c.Username)
	}

	if len(problems) > 0 {
		return &Error{Problems: problems}
	}
	return nil
}
