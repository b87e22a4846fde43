package imaging

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Регистрируем GIF декодер
	_ "image/jpeg" // Регистрируем JPEG декодер (содержимое .png не всегда PNG)
	"image/png"
	"io/fs"
	"os"
	"time"

	"github.com/nfnt/resize"

	"github.com/ilkoid/imgcli/pkg/imgerr"
)

// Filter — фильтр ресемплинга. Lanczos3: качество важнее скорости.
// Наружу (в CLI) не выносится.
const Filter = resize.Lanczos3

// Result — итог одного ресайза.
type Result struct {
	OutputPath string
	Dimensions Dimensions
	// Elapsed — decode + resize + encode, без проверок пути.
	Elapsed time.Duration
}

// Resizer ресайзит один файл за вызов. Нулевое значение готово к работе.
type Resizer struct {
	now func() time.Time
}

// NewResizer создает Resizer.
func NewResizer() *Resizer {
	return &Resizer{}
}

// Resize читает inputPath, приводит к размеру label и пишет PNG рядом с исходником.
//
// Порядок:
//  1. проверка label
//  2. проверка существования inputPath
//  3. вычисление выходного пути (до декодирования, чтобы не делать лишнюю работу)
//  4. decode → resize → encode
//
// При ошибке записи частично записанный файл не удаляется.
func (r *Resizer) Resize(inputPath string, label SizeLabel) (Result, error) {
	if !label.Valid() {
		return Result{}, fmt.Errorf("%w: %q", imgerr.ErrInvalidSizeLabel, label)
	}
	dims := label.Dimensions()

	if _, err := os.Stat(inputPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{}, fmt.Errorf("%w: %s", imgerr.ErrNotFound, inputPath)
		}
		return Result{}, fmt.Errorf("%w: %v", imgerr.ErrDecode, err)
	}

	outPath, err := DeriveOutputPath(inputPath, label)
	if err != nil {
		return Result{}, err
	}

	start := r.clock()

	img, err := decodeFile(inputPath)
	if err != nil {
		return Result{}, err
	}

	// Точный размер, без сохранения пропорций
	resized := resize.Resize(dims.Width, dims.Height, img, Filter)

	if err := encodeFile(outPath, resized); err != nil {
		return Result{OutputPath: outPath, Dimensions: dims}, err
	}

	return Result{
		OutputPath: outPath,
		Dimensions: dims,
		Elapsed:    r.clock().Sub(start),
	}, nil
}

func (r *Resizer) clock() time.Time {
	if r.now != nil {
		return r.now()
	}
	return time.Now()
}

// decodeFile декодирует файл, формат определяется по содержимому.
func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", imgerr.ErrDecode, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", imgerr.ErrDecode, path, err)
	}
	return img, nil
}

func encodeFile(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", imgerr.ErrEncodeOrWrite, err)
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("%w: %s: %v", imgerr.ErrEncodeOrWrite, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %s: %v", imgerr.ErrEncodeOrWrite, path, err)
	}
	return nil
}
