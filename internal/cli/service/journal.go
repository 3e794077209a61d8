// Package service — контроллеры страниц: связывают источник данных,
// клиент хранилища и коллекцию. После каждой дошедшей до сервера мутации
// коллекция перечитывается, чтобы отображать актуальное состояние.
package service

import (
	"context"

	"go.uber.org/zap"

	"TravelRecord/internal/cli/adapter"
	"TravelRecord/internal/cli/model"
	"TravelRecord/internal/cli/view"
)

// API — операции клиента хранилища, нужные контроллеру.
type API interface {
	CreateOne(ctx context.Context, rec model.Record) ([]byte, error)
	CreateMany(ctx context.Context, payload any) ([]byte, error)
	CreateManyFile(ctx context.Context, filename string, data []byte) ([]byte, error)
}

// Journal — контроллер экрана дневника.
type Journal struct {
	api  API
	view *view.Collection
	log  *zap.SugaredLogger
}

func NewJournal(api API, coll *view.Collection, log *zap.SugaredLogger) *Journal {
	return &Journal{api: api, view: coll, log: log}
}

// View даёт доступ к коллекции экрана.
func (j *Journal) View() *view.Collection { return j.view }

// Submit проводит одну отправку из любого источника: готовит payload,
// выполняет ровно один вызов хранилища, сбрасывает буфер источника и
// перечитывает коллекцию. Возвращает сырой конверт ответа сервера.
//
// Локальная ошибка валидации блокирует отправку до сетевого вызова и
// оставляет буфер источника нетронутым. Транспортная ошибка тоже
// оставляет буфер: сбрасываем только после дошедшего до сервера вызова,
// независимо от того, что сервер ответил в конверте.
func (j *Journal) Submit(ctx context.Context, src adapter.Source) ([]byte, error) {
	p, err := src.Payload()
	if err != nil {
		return nil, err
	}

	var body []byte
	switch p.Kind {
	case adapter.KindInteractive:
		body, err = j.api.CreateOne(ctx, p.Record)
	case adapter.KindFile:
		body, err = j.api.CreateManyFile(ctx, p.Filename, p.Data)
	case adapter.KindPastedText:
		body, err = j.api.CreateMany(ctx, p.Value)
	}
	if err != nil {
		return nil, err
	}

	src.Clear()

	if lerr := j.view.Load(ctx); lerr != nil {
		j.log.Warnw("reload after submit failed", "error", lerr)
	}
	return body, nil
}

// Refresh перечитывает коллекцию без мутаций.
func (j *Journal) Refresh(ctx context.Context) error {
	return j.view.Load(ctx)
}

// DeleteSelected удаляет отмеченные записи через коллекцию.
func (j *Journal) DeleteSelected(ctx context.Context) error {
	return j.view.DeleteSelected(ctx)
}
