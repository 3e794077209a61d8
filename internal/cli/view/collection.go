// Package view — коллекция записей на стороне клиента: последний
// загруженный снимок, производная сортировка и набор отмеченных записей.
package view

import (
	"context"
	"errors"
	"sort"
	"time"

	"go.uber.org/zap"

	"TravelRecord/internal/cli/model"
)

// ErrEmptySelection — попытка группового удаления без отмеченных записей.
// Отклоняется локально, до какого-либо сетевого вызова.
var ErrEmptySelection = errors.New("nothing selected")

// Store — операции удалённого хранилища, нужные коллекции.
type Store interface {
	ListAll(ctx context.Context) ([]model.Record, error)
	DeleteMany(ctx context.Context, ids []string) ([]byte, error)
}

// State — наблюдаемое состояние коллекции.
type State int

const (
	// StateLoading — снимок ещё не загружался.
	StateLoading State = iota
	// StateLoaded — снимок загружен (возможно, пустой).
	StateLoaded
)

// Collection владеет снимком коллекции и набором отмеченных записей.
// Никто другой их не мутирует.
type Collection struct {
	store Store
	log   *zap.SugaredLogger

	state    State
	snapshot []model.Record
	selected []string // порядок отметки сохраняется
}

func NewCollection(store Store, log *zap.SugaredLogger) *Collection {
	return &Collection{store: store, log: log, state: StateLoading}
}

// State возвращает текущее состояние.
func (c *Collection) State() State { return c.state }

// Load перечитывает коллекцию из хранилища. Снимок перезаписывается
// целиком, отметки всегда сбрасываются. При ошибке прежнее состояние
// не трогается.
func (c *Collection) Load(ctx context.Context) error {
	recs, err := c.store.ListAll(ctx)
	if err != nil {
		return err
	}
	c.snapshot = recs
	c.selected = c.selected[:0]
	c.state = StateLoaded
	return nil
}

// Records возвращает снимок как есть (в порядке хранилища).
func (c *Collection) Records() []model.Record {
	return c.snapshot
}

// Sorted возвращает снимок по убыванию даты. Отсутствующая или
// нечитаемая дата считается самой старой (эпоха). Сортировка стабильная:
// равные даты сохраняют порядок снимка, повторная сортировка ничего
// не меняет.
func (c *Collection) Sorted() []model.Record {
	out := make([]model.Record, len(c.snapshot))
	copy(out, c.snapshot)
	sort.SliceStable(out, func(i, j int) bool {
		return parseDate(out[i].Date).After(parseDate(out[j].Date))
	})
	return out
}

// dateLayouts — форматы, в которых записи носят даты.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

func parseDate(s string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Unix(0, 0).UTC()
}

// Toggle переключает отметку записи. Проверяется только «отмечена ли
// сейчас», а не «есть ли такая в снимке».
func (c *Collection) Toggle(id string) {
	for i, sel := range c.selected {
		if sel == id {
			c.selected = append(c.selected[:i], c.selected[i+1:]...)
			return
		}
	}
	c.selected = append(c.selected, id)
}

// Selected возвращает отмеченные идентификаторы в порядке отметки.
func (c *Collection) Selected() []string {
	out := make([]string, len(c.selected))
	copy(out, c.selected)
	return out
}

// DeleteSelected удаляет отмеченные записи: один вызов DeleteMany, затем
// безусловный сброс отметок и перезагрузка — итог удаления на сервере
// наблюдается только диагностически. Пустой набор отклоняется до вызова.
func (c *Collection) DeleteSelected(ctx context.Context) error {
	if len(c.selected) == 0 {
		return ErrEmptySelection
	}
	body, err := c.store.DeleteMany(ctx, c.Selected())
	if err != nil {
		return err
	}
	c.log.Infow("delete result", "response", string(body))

	c.selected = c.selected[:0]
	return c.Load(ctx)
}
