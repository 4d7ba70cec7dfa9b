package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port          string
	ServeName     string `mapstructure:"serve_name"`
	PublicBaseURL string `mapstructure:"public_base_url"`
	Log           LogConfig
	Google        GoogleConfig
	Tts           TtsConfig
	Storage       StorageConfig
	Oss           OssConfig
}

type LogConfig struct {
	Level  int
	Format string
}

// GoogleConfig selects how the speech provider authenticates. Driver "grpc"
// uses a service account (CredentialsFile or ADC), "rest" uses ApiKey.
type GoogleConfig struct {
	Driver          string
	CredentialsFile string `mapstructure:"credentials_file"`
	ApiKey          string `mapstructure:"api_key"`
	BaseUrl         string `mapstructure:"base_url"`
}

type TtsConfig struct {
	MaxChunkBytes         int      `mapstructure:"max_chunk_bytes"`
	SampleRate            int      `mapstructure:"sample_rate"`
	Channels              int      `mapstructure:"channels"`
	BitDepth              int      `mapstructure:"bit_depth"`
	Concurrency           int      `mapstructure:"concurrency"`
	PreferredLanguages    []string `mapstructure:"preferred_languages"`
	PreferredVoiceKeyword string   `mapstructure:"preferred_voice_keyword"`
	SampleVoices          int      `mapstructure:"sample_voices"`
}

type StorageConfig struct {
	Driver string
	Dir    string
}

type OssConfig struct {
	EndPoint   string `mapstructure:"endpoint"`
	AccessKey  string `mapstructure:"access_key"`
	SecretKey  string `mapstructure:"secret_key"`
	BucketName string `mapstructure:"bucket_name"`
	UseSSL     bool   `mapstructure:"use_ssl"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "5000")
	v.SetDefault("serve_name", "ttsserver")
	v.SetDefault("public_base_url", "")
	v.SetDefault("log.level", 0)
	v.SetDefault("log.format", "text")
	v.SetDefault("google.driver", "grpc")
	v.SetDefault("google.base_url", "https://texttospeech.googleapis.com/v1")
	v.SetDefault("tts.max_chunk_bytes", 1200)
	v.SetDefault("tts.sample_rate", 24000)
	v.SetDefault("tts.channels", 1)
	v.SetDefault("tts.bit_depth", 16)
	v.SetDefault("tts.concurrency", 1)
	v.SetDefault("tts.preferred_languages", []string{"ml-IN", "hi-IN", "en-IN", "en-US"})
	v.SetDefault("tts.preferred_voice_keyword", "Wavenet")
	v.SetDefault("tts.sample_voices", 10)
	v.SetDefault("storage.driver", "local")
	v.SetDefault("storage.dir", "audio")
	v.SetDefault("oss.endpoint", "")
	v.SetDefault("oss.access_key", "")
	v.SetDefault("oss.secret_key", "")
	v.SetDefault("oss.bucket_name", "tts-scratch")
	v.SetDefault("oss.use_ssl", false)
}

// NewConfig loads .env (if any), then config.yml, then environment overrides.
func NewConfig() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./configs")
	v.SetConfigName("config")
	v.SetConfigType("yml")
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("port", "PORT")
	_ = v.BindEnv("google.credentials_file", "GOOGLE_APPLICATION_CREDENTIALS")
	_ = v.BindEnv("google.api_key", "GOOGLE_API_KEY")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}
	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	c.Tts.PreferredLanguages = trimList(c.Tts.PreferredLanguages)
	if c.PublicBaseURL == "" {
		c.PublicBaseURL = "http://localhost:" + strings.TrimPrefix(c.Port, ":")
	}
	c.PublicBaseURL = strings.TrimRight(c.PublicBaseURL, "/")
	return c, nil
}

// ListenAddr returns the echo listen address for Port.
func (c *Config) ListenAddr() string {
	if strings.Contains(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

func trimList(parts []string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
