// Package auth — файловое хранилище сессии CLI: токен и email
// последнего входа.
package auth

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// FSStore хранит токен в заданном файле, email — рядом с ним.
type FSStore struct {
	TokenFile string
}

func (s FSStore) emailPath() string {
	dir := filepath.Dir(s.TokenFile)
	return filepath.Join(dir, filepath.Base(s.TokenFile)+".email")
}

// SaveToken записывает auth-токен в файл.
func (s FSStore) SaveToken(token string) error {
	if token == "" {
		return errors.New("empty token")
	}
	if err := os.MkdirAll(filepath.Dir(s.TokenFile), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.TokenFile, []byte(token), 0o600)
}

// LoadToken читает auth-токен. Отсутствие файла — обычное дело для
// анонимной сессии, вызывающая сторона решает, ошибка это или нет.
func (s FSStore) LoadToken() (string, error) {
	b, err := os.ReadFile(s.TokenFile)
	if err != nil {
		return "", err
	}
	token := strings.TrimRight(string(b), " \t\r\n")
	if token == "" {
		return "", errors.New("empty token file")
	}
	return token, nil
}

// ClearToken удаляет токен (logout).
func (s FSStore) ClearToken() error {
	err := os.Remove(s.TokenFile)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// SaveEmail сохраняет email последнего успешного входа.
func (s FSStore) SaveEmail(email string) error {
	if email == "" {
		return errors.New("empty email")
	}
	if err := os.MkdirAll(filepath.Dir(s.TokenFile), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.emailPath(), []byte(email), 0o600)
}

// LoadEmail возвращает email последнего входа.
func (s FSStore) LoadEmail() (string, error) {
	b, err := os.ReadFile(s.emailPath())
	if err != nil {
		return "", err
	}
	email := strings.TrimRight(string(b), " \t\r\n")
	if email == "" {
		return "", errors.New("no stored email")
	}
	return email, nil
}
