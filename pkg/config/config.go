package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AppConfig — корневая структура конфигурации.
// Она зеркалит структуру config.yaml. Файл необязателен: без него — Default().
type AppConfig struct {
	S3              S3Config        `yaml:"s3"`
	ImageProcessing ImageProcConfig `yaml:"image_processing"`
	App             AppSpecific     `yaml:"app"`
}

// S3Config — настройки зеркалирования результата в объектное хранилище.
type S3Config struct {
	Enabled   bool   `yaml:"enabled"`
	Endpoint  string `yaml:"endpoint"`
	Region    string `yaml:"region"`
	Bucket    string `yaml:"bucket"`
	Prefix    string `yaml:"prefix"`     // Например "resized/"
	AccessKey string `yaml:"access_key"` // Поддерживает ${VAR}
	SecretKey string `yaml:"secret_key"` // Поддерживает ${VAR}
	UseSSL    bool   `yaml:"use_ssl"`
}

// ImageProcConfig — настройки обработки изображений.
//
// Размеры и фильтр не настраиваются, только вывод диагностики.
type ImageProcConfig struct {
	ReportElapsed *bool `yaml:"report_elapsed"` // nil = true
}

// ShowElapsed сообщает, печатать ли время ресайза.
func (c ImageProcConfig) ShowElapsed() bool {
	return c.ReportElapsed == nil || *c.ReportElapsed
}

// AppSpecific — общие настройки приложения.
type AppSpecific struct {
	Debug  bool   `yaml:"debug"`   // Включает файловый лог
	LogDir string `yaml:"log_dir"` // Куда писать лог, по умолчанию "."
}

// Default возвращает конфиг для запуска без config.yaml.
func Default() *AppConfig {
	cfg := &AppConfig{}
	cfg.applyDefaults()
	return cfg
}

// Load читает YAML файл, подставляет ENV переменные и возвращает готовую структуру.
func Load(path string) (*AppConfig, error) {
	// 1. Проверяем существование файла
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found at: %s", path)
	}

	// 2. Читаем файл целиком
	rawBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// 3. Подставляем переменные окружения.
	// os.ExpandEnv заменяет ${VAR} или $VAR на значение из системы.
	contentWithEnv := os.ExpandEnv(string(rawBytes))

	// 4. Парсим YAML в структуру
	var cfg AppConfig
	if err := yaml.Unmarshal([]byte(contentWithEnv), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}
	cfg.applyDefaults()

	// 5. Валидируем критические настройки
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *AppConfig) applyDefaults() {
	if c.App.LogDir == "" {
		c.App.LogDir = "."
	}
}

// validate проверяет обязательные поля.
func (c *AppConfig) validate() error {
	if !c.S3.Enabled {
		return nil
	}
	if c.S3.Bucket == "" {
		return fmt.Errorf("s3.bucket is required when s3.enabled is true")
	}
	if c.S3.Endpoint == "" {
		return fmt.Errorf("s3.endpoint is required when s3.enabled is true")
	}
	return nil
}
