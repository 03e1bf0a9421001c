package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Startup modes.
const (
	ModeDefault    = "default"
	ModePrediction = "prediction"
)

type Config struct {
	Addr                string
	Mode                string
	LogLevel            string
	ModelPath           string
	VocabPath           string
	OnnxRuntimeLib      string
	ModelInputName      string
	ModelOutputName     string
	SnapshotsEnabled    bool
	DBPath              string
	RestoreBoard        bool
	SnapshotWorkerCount int
	SnapshotQueueSize   int
	CORSAllowedOrigin   string
	// RequestTimeout bounds each HTTP request, model inference included.
	// Zero disables the limit.
	RequestTimeout time.Duration
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:                envOr("ADDR", ":5000"),
		Mode:                envOr("MODE", ModeDefault),
		LogLevel:            envOr("LOG_LEVEL", "INFO"),
		ModelPath:           envOr("MODEL_PATH", "hikaru_chess_model_v2.onnx"),
		VocabPath:           envOr("MOVE_VOCAB_PATH", "move_encoder_classes_v2.txt"),
		OnnxRuntimeLib:      envOr("ONNXRUNTIME_LIB", ""),
		ModelInputName:      envOr("MODEL_INPUT_NAME", "input"),
		ModelOutputName:     envOr("MODEL_OUTPUT_NAME", "output"),
		SnapshotsEnabled:    envBoolOr("SNAPSHOTS_ENABLED", true),
		DBPath:              envOr("DB_PATH", "file:liveboard.db"),
		RestoreBoard:        envBoolOr("RESTORE_BOARD", false),
		SnapshotWorkerCount: envIntOr("SNAPSHOT_WORKER_COUNT", 1),
		SnapshotQueueSize:   envIntOr("SNAPSHOT_QUEUE_SIZE", 16),
		CORSAllowedOrigin:   envOr("CORS_ALLOWED_ORIGIN", "*"),
		RequestTimeout:      time.Duration(envIntOr("REQUEST_TIMEOUT_SECONDS", 10)) * time.Second,
	}
}

// PredictionEnabled reports whether the model is loaded and queried on every update.
func (c Config) PredictionEnabled() bool {
	return c.Mode == ModePrediction
}

// Validate checks every setting and reports all problems at once.
func (c Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.Addr) == "" {
		problems = append(problems, "ADDR cannot be empty")
	}
	switch c.Mode {
	case ModeDefault, ModePrediction:
	default:
		problems = append(problems, fmt.Sprintf("MODE must be %q or %q, got %q", ModeDefault, ModePrediction, c.Mode))
	}
	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARN", "WARNING", "ERROR":
	default:
		problems = append(problems, fmt.Sprintf("LOG_LEVEL %q is not one of DEBUG, INFO, WARN, ERROR", c.LogLevel))
	}

	if c.RequestTimeout < 0 {
		problems = append(problems, fmt.Sprintf("REQUEST_TIMEOUT_SECONDS cannot be negative, got %v", c.RequestTimeout))
	}

	if c.PredictionEnabled() {
		problems = append(problems, requireFile("MODEL_PATH", c.ModelPath)...)
		problems = append(problems, requireFile("MOVE_VOCAB_PATH", c.VocabPath)...)
		if c.ModelInputName == "" {
			problems = append(problems, "MODEL_INPUT_NAME cannot be empty")
		}
		if c.ModelOutputName == "" {
			problems = append(problems, "MODEL_OUTPUT_NAME cannot be empty")
		}
	}

	if c.SnapshotsEnabled {
		if strings.TrimSpace(c.DBPath) == "" {
			problems = append(problems, "DB_PATH cannot be empty when SNAPSHOTS_ENABLED is set")
		}
		if c.SnapshotWorkerCount <= 0 {
			problems = append(problems, fmt.Sprintf("SNAPSHOT_WORKER_COUNT must be positive, got %d", c.SnapshotWorkerCount))
		}
		if c.SnapshotQueueSize <= 0 {
			problems = append(problems, fmt.Sprintf("SNAPSHOT_QUEUE_SIZE must be positive, got %d", c.SnapshotQueueSize))
		}
	} else if c.RestoreBoard {
		problems = append(problems, "RESTORE_BOARD requires SNAPSHOTS_ENABLED")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func requireFile(key, path string) []string {
	if strings.TrimSpace(path) == "" {
		return []string{key + " cannot be empty in prediction mode"}
	}
	if _, err := os.Stat(path); err != nil {
		return []string{fmt.Sprintf("%s %q is not readable: %v", key, path, err)}
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}

func envBoolOr(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		log.Printf("invalid value for %s=%q, using default %t", key, v, def)
	}
	return def
}
