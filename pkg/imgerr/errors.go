// Package imgerr содержит ошибки утилиты imgcli.
//
// Все ошибки возвращаются вверх по стеку и оборачиваются через fmt.Errorf("%w"),
// решение о коде выхода принимается только в cmd/imgcli.
// Проверка — через errors.Is().
package imgerr

import "fmt"

// ErrInvalidSizeLabel возвращается когда размер не входит в {small, medium, large}.
//
// Пример использования:
//   return fmt.Errorf("%w: %q", ErrInvalidSizeLabel, s)
var ErrInvalidSizeLabel = fmt.Errorf("invalid size label")

// ErrNotFound возвращается когда входной файл не существует.
var ErrNotFound = fmt.Errorf("file not found")

// ErrUnsupportedExtension возвращается когда имя файла не заканчивается на .png.
var ErrUnsupportedExtension = fmt.Errorf("unsupported extension")

// ErrDecode — файл повреждён или формат не поддерживается декодером.
var ErrDecode = fmt.Errorf("decode image")

// ErrEncodeOrWrite — не удалось закодировать или записать результат.
//
// Частично записанный файл не удаляется.
var ErrEncodeOrWrite = fmt.Errorf("encode or write image")

// ErrMetadataUnavailable возвращается когда файловая система не отдаёт метаданные
// (нет прав, файл удалён между проверкой и чтением).
var ErrMetadataUnavailable = fmt.Errorf("metadata unavailable")

// ErrArgumentCount — неверное количество позиционных аргументов.
var ErrArgumentCount = fmt.Errorf("invalid number of arguments")
