package config

import (
	"testing"
	"time"

	"github.com/priyanshusaraf/fantasy-arena/internal/platform/logging"
)

func TestLoad_DefaultsToDevEnv(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.AppEnv != EnvDev {
		t.Fatalf("AppEnv = %q, want %q", cfg.AppEnv, EnvDev)
	}
	if cfg.ServiceName != "fantasy-arena-api" {
		t.Fatalf("ServiceName = %q, want fantasy-arena-api", cfg.ServiceName)
	}
}

func TestLoad_RejectsInvalidAppEnv(t *testing.T) {
	t.Setenv("APP_ENV", "qa")

	if _, err := Load(); err == nil {
		t.Fatal("Load() expected error for invalid APP_ENV")
	}
}

func TestLoad_StorageDriver(t *testing.T) {
	t.Run("defaults to memory", func(t *testing.T) {
		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.StorageDriver != StorageMemory {
			t.Fatalf("StorageDriver = %q, want %q", cfg.StorageDriver, StorageMemory)
		}
	})

	t.Run("accepts postgres", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "Postgres")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.StorageDriver != StoragePostgres {
			t.Fatalf("StorageDriver = %q, want %q", cfg.StorageDriver, StoragePostgres)
		}
	})

	t.Run("rejects unknown driver", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "mysql")

		if _, err := Load(); err == nil {
			t.Fatal("Load() expected error for invalid STORAGE_DRIVER")
		}
	})
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatal("Load() expected error when UPTRACE_ENABLED without DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "uptrace-dsn=\"https://token@api.uptrace.dev/123\"")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev/123" {
		t.Fatalf("UptraceDSN = %q", cfg.UptraceDSN)
	}
}

func TestLoad_BetterStackRequiresEndpointWhenEnabled(t *testing.T) {
	t.Setenv("BETTERSTACK_ENABLED", "true")

	if _, err := Load(); err == nil {
		t.Fatal("Load() expected error when BETTERSTACK_ENABLED without endpoint")
	}
}

func TestLoad_BetterStackSettings(t *testing.T) {
	t.Setenv("BETTERSTACK_ENABLED", "true")
	t.Setenv("BETTERSTACK_ENDPOINT", "https://in.logs.betterstack.com")
	t.Setenv("BETTERSTACK_TOKEN", "bs-token")
	t.Setenv("BETTERSTACK_TIMEOUT", "5s")
	t.Setenv("BETTERSTACK_MIN_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.BetterStackTimeout != 5*time.Second {
		t.Fatalf("BetterStackTimeout = %v, want 5s", cfg.BetterStackTimeout)
	}
	if cfg.BetterStackMinLevel != logging.LevelWarn {
		t.Fatalf("BetterStackMinLevel = %v, want warn", cfg.BetterStackMinLevel)
	}
}

func TestLoad_PprofDefaultAddr(t *testing.T) {
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("PPROF_ADDR", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.PprofAddr != ":6060" {
		t.Fatalf("PprofAddr = %q, want :6060", cfg.PprofAddr)
	}
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	t.Setenv("PYROSCOPE_ENABLED", "true")

	if _, err := Load(); err == nil {
		t.Fatal("Load() expected error when PYROSCOPE_ENABLED without server address")
	}
}

func TestLoad_PyroscopeAppNameDefaultsToServiceName(t *testing.T) {
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "http://pyroscope:4040")
	t.Setenv("APP_SERVICE_NAME", "fantasy-arena-stage")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.PyroscopeAppName != "fantasy-arena-stage" {
		t.Fatalf("PyroscopeAppName = %q, want fantasy-arena-stage", cfg.PyroscopeAppName)
	}
}

func TestLoad_CORSAllowedOrigins(t *testing.T) {
	t.Run("defaults to wildcard", func(t *testing.T) {
		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
			t.Fatalf("CORSAllowedOrigins = %v, want [*]", cfg.CORSAllowedOrigins)
		}
	})

	t.Run("parses csv and trims spaces", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", "https://play.fantasy-arena.app, https://admin.fantasy-arena.app ,")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		want := []string{"https://play.fantasy-arena.app", "https://admin.fantasy-arena.app"}
		if len(cfg.CORSAllowedOrigins) != len(want) {
			t.Fatalf("CORSAllowedOrigins = %v, want %v", cfg.CORSAllowedOrigins, want)
		}
		for i := range want {
			if cfg.CORSAllowedOrigins[i] != want[i] {
				t.Fatalf("CORSAllowedOrigins[%d] = %q, want %q", i, cfg.CORSAllowedOrigins[i], want[i])
			}
		}
	})
}

func TestLoad_GatekeeperCircuitSettings(t *testing.T) {
	t.Setenv("GATEKEEPER_CIRCUIT_ENABLED", "true")
	t.Setenv("GATEKEEPER_CIRCUIT_FAILURE_COUNT", "3")
	t.Setenv("GATEKEEPER_CIRCUIT_OPEN_TIMEOUT", "30s")
	t.Setenv("GATEKEEPER_CIRCUIT_HALF_OPEN_MAX_REQ", "1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.GatekeeperCircuitEnabled {
		t.Fatal("GatekeeperCircuitEnabled = false, want true")
	}
	if cfg.GatekeeperCircuitFailureCount != 3 {
		t.Fatalf("GatekeeperCircuitFailureCount = %d, want 3", cfg.GatekeeperCircuitFailureCount)
	}
	if cfg.GatekeeperCircuitOpenTimeout != 30*time.Second {
		t.Fatalf("GatekeeperCircuitOpenTimeout = %v, want 30s", cfg.GatekeeperCircuitOpenTimeout)
	}
	if cfg.GatekeeperCircuitHalfOpenMaxReq != 1 {
		t.Fatalf("GatekeeperCircuitHalfOpenMaxReq = %d, want 1", cfg.GatekeeperCircuitHalfOpenMaxReq)
	}
}

func TestLoad_GatekeeperCircuitValidation(t *testing.T) {
	t.Setenv("GATEKEEPER_CIRCUIT_FAILURE_COUNT", "0")

	if _, err := Load(); err == nil {
		t.Fatal("Load() expected error for zero failure count")
	}
}

func TestLoad_MatchFeedRequiresTokenWhenEnabled(t *testing.T) {
	t.Setenv("MATCHFEED_ENABLED", "true")

	if _, err := Load(); err == nil {
		t.Fatal("Load() expected error when MATCHFEED_ENABLED without token")
	}
}

func TestLoad_MatchFeedSettings(t *testing.T) {
	t.Setenv("MATCHFEED_ENABLED", "true")
	t.Setenv("MATCHFEED_BASE_URL", "https://feed.fantasy-arena.internal/v1")
	t.Setenv("MATCHFEED_TOKEN", "feed-token")
	t.Setenv("MATCHFEED_TIMEOUT", "10s")
	t.Setenv("MATCHFEED_MAX_RETRIES", "2")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.MatchFeedTimeout != 10*time.Second {
		t.Fatalf("MatchFeedTimeout = %v, want 10s", cfg.MatchFeedTimeout)
	}
	if cfg.MatchFeedMaxRetries != 2 {
		t.Fatalf("MatchFeedMaxRetries = %d, want 2", cfg.MatchFeedMaxRetries)
	}
}

func TestLoad_CacheSettings(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if !cfg.CacheEnabled {
			t.Fatal("CacheEnabled = false, want true")
		}
		if cfg.CacheTTL != 5*time.Second {
			t.Fatalf("CacheTTL = %v, want 5s", cfg.CacheTTL)
		}
	})

	t.Run("rejects non-positive ttl", func(t *testing.T) {
		t.Setenv("CACHE_TTL", "0s")

		if _, err := Load(); err == nil {
			t.Fatal("Load() expected error for zero CACHE_TTL")
		}
	})
}

func TestLoad_DBDisablePreparedBinary(t *testing.T) {
	t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DBDisablePreparedBinary {
		t.Fatal("DBDisablePreparedBinary = true, want false")
	}
}

func TestLoad_WorkerSettings(t *testing.T) {
	t.Setenv("SCORING_PARALLELISM", "16")
	t.Setenv("RESETTLE_WORKERS", "4")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ScoringParallelism != 16 {
		t.Fatalf("ScoringParallelism = %d, want 16", cfg.ScoringParallelism)
	}
	if cfg.ResettleWorkers != 4 {
		t.Fatalf("ResettleWorkers = %d, want 4", cfg.ResettleWorkers)
	}
}

func TestLoad_WorkerValidation(t *testing.T) {
	t.Setenv("RESETTLE_WORKERS", "0")

	if _, err := Load(); err == nil {
		t.Fatal("Load() expected error for zero RESETTLE_WORKERS")
	}
}
