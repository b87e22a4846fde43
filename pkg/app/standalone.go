// Package app собирает окружение CLI: поиск и загрузка config.yaml.
//
// Конфиг для imgcli необязателен: если рядом с бинарником его нет,
// используются значения по умолчанию.
package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilkoid/imgcli/pkg/config"
)

// ConfigFileName — имя файла конфигурации рядом с бинарником.
const ConfigFileName = "config.yaml"

// ConfigPathFinder — стратегия поиска config.yaml.
type ConfigPathFinder interface {
	FindConfigPath() string
}

// StandaloneConfigPathFinder ищет config.yaml в той же папке где находится бинарник.
//
// Правила:
// 1. Если указан BinDir — ищет там (для тестов)
// 2. Иначе — директория os.Executable()
// 3. НЕ ищет в текущей директории или родительских
type StandaloneConfigPathFinder struct {
	BinDir string
}

// FindConfigPath находит путь к config.yaml.
//
// Возвращает пустую строку если файл не найден.
func (f *StandaloneConfigPathFinder) FindConfigPath() string {
	binDir := f.BinDir
	if binDir == "" {
		execPath, err := os.Executable()
		if err != nil {
			return ""
		}
		binDir = filepath.Dir(execPath)
	}

	cfgPath := filepath.Join(binDir, ConfigFileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return cfgPath
	}
	return ""
}

// LoadConfig загружает конфиг через finder.
//
// Возвращает:
//   - cfg: загруженная конфигурация или config.Default()
//   - cfgPath: путь к файлу, пустой если использованы значения по умолчанию
//   - err: файл найден, но не читается или невалиден
func LoadConfig(finder ConfigPathFinder) (*config.AppConfig, string, error) {
	cfgPath := finder.FindConfigPath()
	if cfgPath == "" {
		return config.Default(), "", nil
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, cfgPath, fmt.Errorf("failed to load config from %s: %w", cfgPath, err)
	}
	return cfg, cfgPath, nil
}
