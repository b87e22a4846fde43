// Package imaging реализует ресайз изображений по фиксированным классам размеров.
//
// Состав:
//   - SizeLabel / Dimensions — таблица размеров (small, medium, large)
//   - DeriveOutputPath — имя выходного файла <stem>_<label>.png
//   - Resizer — decode → Lanczos3 → PNG
package imaging

import (
	"fmt"

	"github.com/ilkoid/imgcli/pkg/imgerr"
)

// SizeLabel — символьное имя класса размера.
type SizeLabel string

const (
	Small  SizeLabel = "small"
	Medium SizeLabel = "medium"
	Large  SizeLabel = "large"
)

// Dimensions — итоговый размер в пикселях.
type Dimensions struct {
	Height uint
	Width  uint
}

// SizeLabels возвращает все допустимые размеры в порядке возрастания.
func SizeLabels() []SizeLabel {
	return []SizeLabel{Small, Medium, Large}
}

// ParseSizeLabel проверяет строку и возвращает SizeLabel.
//
// Сравнение регистрозависимое: "Small" — ошибка.
func ParseSizeLabel(s string) (SizeLabel, error) {
	switch l := SizeLabel(s); l {
	case Small, Medium, Large:
		return l, nil
	}
	return "", fmt.Errorf("%w: %q", imgerr.ErrInvalidSizeLabel, s)
}

// Valid сообщает, входит ли метка в фиксированный набор.
func (l SizeLabel) Valid() bool {
	_, err := ParseSizeLabel(string(l))
	return err == nil
}

// Dimensions возвращает (height, width) для метки.
// Для невалидной метки — нулевое значение.
func (l SizeLabel) Dimensions() Dimensions {
	switch l {
	case Small:
		return Dimensions{Height: 100, Width: 400}
	case Medium:
		return Dimensions{Height: 200, Width: 800}
	case Large:
		return Dimensions{Height: 400, Width: 1600}
	}
	return Dimensions{}
}

// Resolve — ParseSizeLabel + Dimensions за один вызов.
func Resolve(label string) (Dimensions, error) {
	l, err := ParseSizeLabel(label)
	if err != nil {
		return Dimensions{}, err
	}
	return l.Dimensions(), nil
}
