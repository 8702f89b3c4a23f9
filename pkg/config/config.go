package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultModel  = "gpt-4.1-mini"
	DefaultAPIURL = "https://api.openai.com/v1"

	DefaultBasePrompt = "This is a command line tool that accepts command output and a user prompt. " +
		"Responses should be concise and formatted to wrap at 80 characters long. " +
		"Do not include formatting characters or markdown. " +
		"Multi-line output is acceptable. " +
		"Avoid praise and filler text. " +
		"Respond with summations or evaluations of errors to help the user."

	configFileName = ".heystupid.config"
)

// Recognized keys in the config file.
const (
	KeyModel        = "model"
	KeyBasePrompt   = "base_prompt"
	KeyOpenAIAPIKey = "openai_api_key"
	KeyAPIURL       = "api_url"
	KeyLogLevel     = "log_level"
	KeyLogFile      = "log_file"
	KeyLogFormat    = "log_format"
)

// Settings is the typed view of the config file, overlaid on Default().
type Settings struct {
	Model        string
	BasePrompt   string
	OpenAIAPIKey string
	APIURL       string

	LogLevel  string // "debug", "info", "warn", "error" or "off"
	LogFile   string // empty means the default log path
	LogFormat string // "json" or "text"

	// Ignored lists unrecognized keys found in the file, sorted.
	Ignored []string
	// Rejected lists key=value pairs that were invalid and replaced by
	// their defaults, sorted.
	Rejected []string
}

// NotFoundError is returned by Load when the config file does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("config file not found: %s", e.Path)
}

func (e *NotFoundError) Unwrap() error {
	return fs.ErrNotExist
}

// Default returns the built-in settings. The API key is left empty.
func Default() Settings {
	return Settings{
		Model:      DefaultModel,
		BasePrompt: DefaultBasePrompt,
		APIURL:     DefaultAPIURL,
		LogLevel:   "info",
		LogFormat:  "json",
	}
}

// Load reads key=value lines from path and overlays them on Default().
// A missing file is reported as *NotFoundError; a missing API key is not
// an error here.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Settings{}, &NotFoundError{Path: path}
		}
		return Settings{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	values, err := godotenv.Parse(bytes.NewReader(escapeDollars(data)))
	if err != nil {
		return Settings{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return fromValues(values), nil
}

func fromValues(values map[string]string) Settings {
	cfg := Default()

	for rawKey, rawValue := range values {
		value := strings.TrimSpace(rawValue)
		switch strings.ToLower(strings.TrimSpace(rawKey)) {
		case KeyModel:
			if value != "" {
				cfg.Model = value
			}
		case KeyBasePrompt:
			if value != "" {
				cfg.BasePrompt = value
			}
		case KeyOpenAIAPIKey:
			cfg.OpenAIAPIKey = value
		case KeyAPIURL:
			if value != "" {
				cfg.APIURL = strings.TrimRight(value, "/")
			}
		case KeyLogLevel:
			if value == "" {
				break
			}
			if level := strings.ToLower(value); validLogLevel(level) {
				cfg.LogLevel = level
			} else {
				cfg.Rejected = append(cfg.Rejected, fmt.Sprintf("%s=%q", KeyLogLevel, value))
			}
		case KeyLogFile:
			cfg.LogFile = value
		case KeyLogFormat:
			if value == "" {
				break
			}
			if format := strings.ToLower(value); validLogFormat(format) {
				cfg.LogFormat = format
			} else {
				cfg.Rejected = append(cfg.Rejected, fmt.Sprintf("%s=%q", KeyLogFormat, value))
			}
		default:
			cfg.Ignored = append(cfg.Ignored, rawKey)
		}
	}

	sort.Strings(cfg.Ignored)
	sort.Strings(cfg.Rejected)
	return cfg
}

func validLogLevel(level string) bool {
	switch level {
	case "debug", "info", "warn", "warning", "error", "off", "none", "disabled":
		return true
	}
	return false
}

func validLogFormat(format string) bool {
	return format == "json" || format == "text"
}

// escapeDollars backslash-escapes every '$' outside single-quoted values.
// godotenv expands $NAME and ${NAME} in bare and double-quoted values and
// turns "\$" back into a literal '$', so the file's text survives as written.
func escapeDollars(data []byte) []byte {
	if !bytes.ContainsRune(data, '$') {
		return data
	}

	const (
		inKey = iota
		inComment
		valueStart
		inValue
		inSingle
		inDouble
	)

	out := make([]byte, 0, len(data)+bytes.Count(data, []byte("$")))
	state := inKey
	for i, c := range data {
		switch state {
		case inKey:
			switch c {
			case '#':
				state = inComment
			case '=', ':':
				state = valueStart
			}
		case inComment, inValue:
			if c == '\n' {
				state = inKey
			}
		case valueStart:
			switch c {
			case ' ', '\t':
			case '\'':
				state = inSingle
			case '"':
				state = inDouble
			case '\n':
				state = inKey
			default:
				state = inValue
			}
		case inSingle:
			if c == '\'' && data[i-1] != '\\' {
				state = inValue
			}
		case inDouble:
			if c == '"' && data[i-1] != '\\' {
				state = inValue
			}
		}

		if c == '$' && state != inSingle && state != inComment {
			out = append(out, '\\')
		}
		out = append(out, c)
	}
	return out
}

// HasAPIKey reports whether an API key was configured.
func (s Settings) HasAPIKey() bool {
	return s.OpenAIAPIKey != ""
}

// Validate checks the values that would otherwise fail late and obscurely.
func (s Settings) Validate() error {
	if strings.TrimSpace(s.Model) == "" {
		return fmt.Errorf("model must not be empty")
	}

	u, err := url.Parse(s.APIURL)
	if err != nil {
		return fmt.Errorf("invalid api_url %q: %w", s.APIURL, err)
	}
	if (u.Scheme != "https" && u.Scheme != "http") || u.Host == "" {
		return fmt.Errorf("invalid api_url %q: expected an http(s) URL", s.APIURL)
	}

	return nil
}

// DefaultPath returns the per-user config file location.
func DefaultPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil || strings.TrimSpace(homeDir) == "" {
		return configFileName
	}
	return filepath.Join(homeDir, configFileName)
}
