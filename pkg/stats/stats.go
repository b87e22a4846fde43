// Package stats собирает и выводит статистику файла изображения:
// имя, размер, время создания и изменения.
package stats

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/ilkoid/imgcli/pkg/imgerr"
)

// TimeLayout — формат вывода времени (всегда UTC).
const TimeLayout = "2006-01-02 15:04:05 UTC"

const ruleWidth = 96

// ImageStats — метаданные одного файла. Создается один раз в Gather.
type ImageStats struct {
	Name       string
	SizeBytes  uint64
	CreatedAt  time.Time
	ModifiedAt time.Time
}

// Gather читает метаданные файла.
//
// Ошибки:
//   - imgerr.ErrNotFound — файла нет
//   - imgerr.ErrMetadataUnavailable — нет прав или файл пропал во время чтения
func Gather(path string) (ImageStats, error) {
	fi, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ImageStats{}, fmt.Errorf("%w: %s", imgerr.ErrNotFound, path)
		}
		return ImageStats{}, fmt.Errorf("%w: %v", imgerr.ErrMetadataUnavailable, err)
	}

	created, err := birthTime(path, fi)
	if err != nil {
		return ImageStats{}, fmt.Errorf("%w: %v", imgerr.ErrMetadataUnavailable, err)
	}

	return ImageStats{
		Name:       path,
		SizeBytes:  uint64(fi.Size()),
		CreatedAt:  created.UTC(),
		ModifiedAt: fi.ModTime().UTC(),
	}, nil
}

// Display пишет блок статистики в w.
//
// Первые строки совпадают с исходным форматом, размер в человекочитаемом
// виде — отдельной последней строкой.
//
// Заголовок рендерится через lipgloss с профилем w: в терминале жирный,
// в файл или буфер — простой текст.
func Display(w io.Writer, s ImageStats) error {
	r := lipgloss.NewRenderer(w)
	title := r.NewStyle().Bold(true).Render("Image Stats")
	rule := strings.Repeat("=", ruleWidth)

	_, err := fmt.Fprintf(w, "\n%s\n%s\n%s\nImage: %s, Size: %d bytes\nCreated: %s\nModified: %s\nHuman size: %s\n",
		rule, title, rule,
		s.Name, s.SizeBytes,
		s.CreatedAt.UTC().Format(TimeLayout),
		s.ModifiedAt.UTC().Format(TimeLayout),
		humanize.Bytes(s.SizeBytes),
	)
	return err
}
