package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	DebugMode  bool   `env:"DEBUG_MODE"`  // Режим дебага: подробные логи
	TTSService string `env:"TTS_SERVICE"` // polly|google, по умолчанию polly
	Output     string `env:"TTS_OUTPUT"`  // Путь к файлу результата
	Rate       string `env:"TTS_RATE"`    // x-slow|slow|medium|fast|x-fast

	// Регион AWS здесь намеренно не хранится: его ищет цепочка AWS SDK (AWS_REGION, ~/.aws/config).
	GoogleTTS GoogleTTSConfig
}

// GoogleTTSConfig конфигурация для синтеза речи через Google Cloud Text-to-Speech.
type GoogleTTSConfig struct {
	// Путь к файлу ключа сервисного аккаунта. Если ENV пуст, выставляется из конфига перед поиском ADC.
	CredentialsPath string `env:"GOOGLE_APPLICATION_CREDENTIALS"`
	Language        string `env:"GOOGLE_TTS_LANGUAGE"`
}

// Defaults возвращает конфигурацию с предустановленными значениями по умолчанию.
// Эти значения перекрываются .env, переменными окружения и флагами CLI.
func Defaults() *Config {
	return &Config{
		DebugMode:  false,
		TTSService: "polly",
		Output:     "output.mp3",
		Rate:       "medium",
		GoogleTTS: GoogleTTSConfig{
			Language: "en-US",
		},
	}
}

// Load загружает конфигурацию: дефолты, затем .env и окружение.
func Load() (*Config, error) {
	// .env необязателен
	_ = godotenv.Load()

	cfg := Defaults()
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}
	return cfg, nil
}
