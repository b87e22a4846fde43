package imaging

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ilkoid/imgcli/pkg/imgerr"
)

// OutputExt — расширение входного и выходного файла.
// Другие форматы декодер прочитает, но имя для них не строится.
const OutputExt = ".png"

// DeriveOutputPath строит путь результата: {dir}/{stem}_{label}.png.
//
// Директория берется из inputPath как есть ("./cat.png" → "./cat_small.png").
// Для пути без директории ("cat.png") результат тоже без директории
// ("cat_small.png"), без ведущего разделителя.
func DeriveOutputPath(inputPath string, label SizeLabel) (string, error) {
	if !label.Valid() {
		return "", fmt.Errorf("%w: %q", imgerr.ErrInvalidSizeLabel, label)
	}

	dir, name := filepath.Split(inputPath)
	stem, ok := strings.CutSuffix(name, OutputExt)
	if !ok || stem == "" {
		return "", fmt.Errorf("%w: %q (expected %s)", imgerr.ErrUnsupportedExtension, inputPath, OutputExt)
	}

	// dir из Split уже с завершающим разделителем (или пустой).
	// Без Join/Clean: "link/.." нельзя сокращать лексически.
	return dir + stem + "_" + string(label) + OutputExt, nil
}
