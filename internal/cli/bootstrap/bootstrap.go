// Package bootstrap собирает клиентскую обвязку: сессия из файла,
// HTTP-клиент, коллекция и контроллер дневника.
package bootstrap

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"TravelRecord/internal/cli/api"
	"TravelRecord/internal/cli/auth"
	"TravelRecord/internal/cli/service"
	"TravelRecord/internal/cli/view"
	"TravelRecord/internal/config"
)

// SessionStore возвращает файловое хранилище сессии по конфигу.
func SessionStore(cfg *config.Config) auth.FSStore {
	return auth.FSStore{TokenFile: cfg.TokenFile}
}

// NewClient создаёт API-клиент с токеном из файла сессии.
// Отсутствие токена — анонимный клиент, это не ошибка.
func NewClient(cfg *config.Config) *api.Client {
	token, err := SessionStore(cfg).LoadToken()
	if err != nil {
		token = ""
	}
	return api.New(cfg.ServerURL, token)
}

// NewJournal собирает контроллер дневника поверх API-клиента.
// Диагностика уходит в stderr, пользовательский вывод — забота команд.
func NewJournal(cfg *config.Config) *service.Journal {
	log := newLogger()
	client := NewClient(cfg)
	coll := view.NewCollection(client, log)
	return service.NewJournal(client, coll, log)
}

func newLogger() *zap.SugaredLogger {
	zcfg := zap.NewDevelopmentConfig()
	zcfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	logger, err := zcfg.Build()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return logger.Sugar()
}
