package adapter

import (
	"os"
	"path/filepath"
	"strings"

	"TravelRecord/internal/cli/model"
)

// File — источник «загруженный файл». Фильтр по расширению повторяет
// accept=".csv,.json" исходной формы: содержимое не проверяется,
// разбор файла целиком делегирован серверу.
type File struct {
	path string
}

func NewFile() *File {
	return &File{}
}

// Select выбирает файл. Ошибка только по расширению — это клиентский
// фильтр выбора, а не валидация содержимого.
func (f *File) Select(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".csv" && ext != ".json" {
		return &model.ValidationError{Reason: "only .csv and .json files are accepted"}
	}
	f.path = path
	return nil
}

// Payload читает байты выбранного файла.
func (f *File) Payload() (*Payload, error) {
	if f.path == "" {
		return nil, &model.ValidationError{Reason: "no file selected"}
	}
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, err
	}
	return &Payload{Kind: KindFile, Filename: filepath.Base(f.path), Data: data}, nil
}

// Clear сбрасывает выбор файла.
func (f *File) Clear() {
	f.path = ""
}
