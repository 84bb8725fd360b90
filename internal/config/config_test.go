package config

import (
	"bytes"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvVars = []string{
	"APP_PORT", "APP_HOST", "APP_ENV", "LOG_LEVEL", "JWT_SECRET", "DB_DRIVER",
	"DATABASE_URL", "SEED_DATABASE", "AUTH_REQUIRED", "CORS_ALLOWED_ORIGINS",
}

func cleanupTestEnv() {
	for _, v := range configEnvVars {
		os.Unsetenv(v)
	}
}

func TestGetEnvWithDefault(t *testing.T) {
	testCases := []struct {
		name         string
		key          string
		defaultValue string
		envValue     string
		expected     string
	}{
		{
			name:         "should return env value when set",
			key:          "TEST_KEY",
			defaultValue: "default",
			envValue:     "from_env",
			expected:     "from_env",
		},
		{
			name:         "should return default when env not set",
			key:          "MISSING_KEY",
			defaultValue: "default_value",
			envValue:     "",
			expected:     "default_value",
		},
		{
			name:         "should return empty string default",
			key:          "EMPTY_KEY",
			defaultValue: "",
			envValue:     "",
			expected:     "",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envValue != "" {
				os.Setenv(tt.key, tt.envValue)
				defer os.Unsetenv(tt.key)
			} else {
				os.Unsetenv(tt.key)
			}

			result := GetEnvWithDefault(tt.key, tt.defaultValue)

			if result != tt.expected {
				t.Errorf("GetEnvWithDefault() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestGetEnvWithDefaultWarnsOnFallback(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	level := log.GetLevel()
	log.SetLevel(logrus.WarnLevel)
	defer func() {
		log.SetOutput(os.Stderr)
		log.SetLevel(level)
	}()

	os.Unsetenv("MISSING_KEY")
	GetEnvWithDefault("MISSING_KEY", "fallback")

	assert.Contains(t, buf.String(), `"level":"warning"`)
	assert.Contains(t, buf.String(), "MISSING_KEY not set, using default value: fallback")
}

func TestGetEnvAsType(t *testing.T) {
	t.Setenv("BOOL_KEY", "true")
	t.Setenv("BAD_BOOL_KEY", "maybe")
	t.Setenv("INT_KEY", "42")

	assert.True(t, GetEnvAsType("BOOL_KEY", false))
	assert.False(t, GetEnvAsType("BAD_BOOL_KEY", false))
	assert.Equal(t, 42, GetEnvAsType("INT_KEY", 0))
	assert.Equal(t, 7, GetEnvAsType("UNSET_INT_KEY", 7))
}

func TestLoadConfig(t *testing.T) {
	t.Run("successful config load with all env vars", func(t *testing.T) {
		cleanupTestEnv()
		defer cleanupTestEnv()
		os.Setenv("APP_PORT", "9000")
		os.Setenv("APP_HOST", "0.0.0.0")
		os.Setenv("LOG_LEVEL", "debug")
		os.Setenv("JWT_SECRET", "super_secret_jwt_key")
		os.Setenv("DB_DRIVER", "postgres")
		os.Setenv("DATABASE_URL", "postgres://pizza:pw@db:5432/pizzas")
		os.Setenv("SEED_DATABASE", "false")
		os.Setenv("AUTH_REQUIRED", "true")
		os.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://pizza.example")

		config, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, 9000, config.Port)
		assert.Equal(t, "0.0.0.0", config.Host)
		assert.Equal(t, "debug", config.LogLevel)
		assert.Equal(t, "postgres", config.DBDriver)
		assert.Equal(t, "postgres://pizza:pw@db:5432/pizzas", config.DatabaseURL)
		assert.False(t, config.SeedDB)
		assert.True(t, config.AuthRequired)
		assert.Equal(t, []string{"http://localhost:3000", "https://pizza.example"}, config.CORSAllowedOrigins)
	})

	t.Run("should fail with invalid port", func(t *testing.T) {
		cleanupTestEnv()
		defer cleanupTestEnv()
		os.Setenv("APP_PORT", "not_a_number")

		config, err := LoadConfig()
		assert.Error(t, err)
		assert.Nil(t, config)
	})

	t.Run("should fail with unsupported driver", func(t *testing.T) {
		cleanupTestEnv()
		defer cleanupTestEnv()
		os.Setenv("DB_DRIVER", "oracle")

		config, err := LoadConfig()
		assert.Error(t, err)
		assert.Nil(t, config)
	})

	t.Run("should use defaults when optional env vars not set", func(t *testing.T) {
		cleanupTestEnv()
		defer cleanupTestEnv()

		config, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, 5555, config.Port)
		assert.Equal(t, "localhost", config.Host)
		assert.Equal(t, "sqlite", config.DBDriver)
		assert.Equal(t, "app.db", config.DatabaseURL)
		assert.True(t, config.SeedDB)
		assert.False(t, config.AuthRequired)
		assert.Equal(t, "debug", config.LogLevel)
		assert.Equal(t, []string{"*"}, config.CORSAllowedOrigins)
	})
}

func TestConfigStringMasksSecrets(t *testing.T) {
	config := &Config{
		DatabaseURL: "postgres://pizza:hunter2@db:5432/pizzas",
		JWTSecret:   "jwt-hunter2",
	}
	out := config.String()
	assert.NotContains(t, out, "hunter2")
	assert.Contains(t, out, "pizza")

	config.DatabaseURL = "host=db user=pizza password=hunter2 dbname=pizzas"
	assert.NotContains(t, config.String(), "hunter2")

	config.DatabaseURL = "app.db"
	assert.Contains(t, config.String(), "app.db")
}

func TestLevel(t *testing.T) {
	assert.Equal(t, logrus.WarnLevel, (&Config{LogLevel: "warn"}).Level())
	assert.Equal(t, logrus.ErrorLevel, (&Config{LogLevel: "nonsense", Environment: "production"}).Level())
	assert.Equal(t, logrus.InfoLevel, LevelForEnvironment("staging"))
}

// Benchmark tests
func BenchmarkGetEnvWithDefault(b *testing.B) {
	os.Setenv("BENCH_KEY", "test_value")
	defer os.Unsetenv("BENCH_KEY")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		GetEnvWithDefault("BENCH_KEY", "default")
	}
}
