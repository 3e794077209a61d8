package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"TravelRecord/internal/cli/adapter"
	"TravelRecord/internal/cli/model"
	"TravelRecord/internal/cli/view"
)

// mockAPI закрывает и контракт контроллера, и контракт коллекции.
type mockAPI struct{ mock.Mock }

func (m *mockAPI) CreateOne(ctx context.Context, rec model.Record) ([]byte, error) {
	args := m.Called(ctx, rec)
	if v, ok := args.Get(0).([]byte); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAPI) CreateMany(ctx context.Context, payload any) ([]byte, error) {
	args := m.Called(ctx, payload)
	if v, ok := args.Get(0).([]byte); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAPI) CreateManyFile(ctx context.Context, filename string, data []byte) ([]byte, error) {
	args := m.Called(ctx, filename, data)
	if v, ok := args.Get(0).([]byte); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAPI) ListAll(ctx context.Context) ([]model.Record, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Record); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAPI) DeleteMany(ctx context.Context, ids []string) ([]byte, error) {
	args := m.Called(ctx, ids)
	if v, ok := args.Get(0).([]byte); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var (
	_ API        = (*mockAPI)(nil)
	_ view.Store = (*mockAPI)(nil)
)

func newJournal(m *mockAPI) *Journal {
	log := zap.NewNop().Sugar()
	return NewJournal(m, view.NewCollection(m, log), log)
}

func TestJournal_SubmitSingle_KyotoScenario(t *testing.T) {
	m := new(mockAPI)
	j := newJournal(m)
	ctx := context.Background()

	form := adapter.NewForm()
	form.Set("title", "Kyoto Trip")
	form.Set("date", "2025-03-15")
	form.Set("city", "Kyoto")
	form.Set("country", "Japan")

	want := model.Record{Title: "Kyoto Trip", Date: "2025-03-15", City: "Kyoto", Country: "Japan"}
	m.On("CreateOne", mock.Anything, want).Return([]byte(`{"ok":true,"message":"Data added"}`), nil).Once()
	m.On("ListAll", mock.Anything).Return([]model.Record{{ID: "x", Title: "Kyoto Trip"}}, nil).Once()

	body, err := j.Submit(ctx, form)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Data added")

	// форма сброшена после отправки
	p, err := form.Payload()
	require.NoError(t, err)
	assert.Equal(t, model.Record{}, p.Record)

	// коллекция перечитана
	assert.Len(t, j.View().Records(), 1)
	m.AssertExpectations(t)
}

func TestJournal_SubmitSingle_ClearsEvenOnErrorEnvelope(t *testing.T) {
	m := new(mockAPI)
	j := newJournal(m)

	form := adapter.NewForm()
	form.Set("title", "x")

	m.On("CreateOne", mock.Anything, mock.Anything).Return([]byte(`{"ok":false,"error":"boom"}`), nil).Once()
	m.On("ListAll", mock.Anything).Return([]model.Record{}, nil).Once()

	body, err := j.Submit(context.Background(), form)
	require.NoError(t, err)
	assert.Contains(t, string(body), "boom")

	// оптимистичный сброс: конверт с ошибкой не мешает очистке формы
	p, _ := form.Payload()
	assert.Equal(t, model.Record{}, p.Record)
}

func TestJournal_SubmitPasted(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid json: no remote call, buffer kept", func(t *testing.T) {
		m := new(mockAPI)
		j := newJournal(m)

		paste := adapter.NewPaste()
		paste.Set("not json")

		_, err := j.Submit(ctx, paste)
		var verr *model.ValidationError
		require.ErrorAs(t, err, &verr)
		m.AssertNotCalled(t, "CreateMany", mock.Anything, mock.Anything)

		// буфер не тронут — следующая попытка падает той же ошибкой
		_, err = j.Submit(ctx, paste)
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("array forwarded, buffer cleared", func(t *testing.T) {
		m := new(mockAPI)
		j := newJournal(m)

		paste := adapter.NewPaste()
		paste.Set(`[{"title":"Tokyo"}]`)

		m.On("CreateMany", mock.Anything, []any{map[string]any{"title": "Tokyo"}}).
			Return([]byte(`{"ok":true,"inserted":1}`), nil).Once()
		m.On("ListAll", mock.Anything).Return([]model.Record{{ID: "t"}}, nil).Once()

		body, err := j.Submit(ctx, paste)
		require.NoError(t, err)
		assert.Contains(t, string(body), `"inserted":1`)
		m.AssertExpectations(t)

		// буфер очищен — повторная отправка уже невалидна (пусто)
		_, err = j.Submit(ctx, paste)
		var verr *model.ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("transport failure keeps buffer", func(t *testing.T) {
		m := new(mockAPI)
		j := newJournal(m)

		paste := adapter.NewPaste()
		paste.Set(`[{"title":"Tokyo"}]`)

		m.On("CreateMany", mock.Anything, mock.Anything).Return(nil, errors.New("conn refused")).Once()
		_, err := j.Submit(ctx, paste)
		require.Error(t, err)

		// буфер жив, повторная попытка шлёт тот же payload
		m.On("CreateMany", mock.Anything, []any{map[string]any{"title": "Tokyo"}}).
			Return([]byte(`{"ok":true,"inserted":1}`), nil).Once()
		m.On("ListAll", mock.Anything).Return([]model.Record{}, nil).Once()
		_, err = j.Submit(ctx, paste)
		assert.NoError(t, err)
	})
}

func TestJournal_SubmitFile(t *testing.T) {
	m := new(mockAPI)
	j := newJournal(m)

	dir := t.TempDir()
	path := filepath.Join(dir, "trips.csv")
	require.NoError(t, os.WriteFile(path, []byte("title\nOslo\n"), 0o600))

	file := adapter.NewFile()
	require.NoError(t, file.Select(path))

	m.On("CreateManyFile", mock.Anything, "trips.csv", []byte("title\nOslo\n")).
		Return([]byte(`{"ok":true,"inserted":1}`), nil).Once()
	m.On("ListAll", mock.Anything).Return([]model.Record{{ID: "o"}}, nil).Once()

	_, err := j.Submit(context.Background(), file)
	require.NoError(t, err)
	m.AssertExpectations(t)

	// выбор файла сброшен
	_, err = file.Payload()
	var verr *model.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestJournal_DeleteSelected_FullScenario(t *testing.T) {
	m := new(mockAPI)
	j := newJournal(m)
	ctx := context.Background()

	m.On("ListAll", mock.Anything).Return([]model.Record{{ID: "a"}, {ID: "b"}, {ID: "c"}}, nil).Once()
	require.NoError(t, j.Refresh(ctx))

	j.View().Toggle("a")
	j.View().Toggle("c")

	m.On("DeleteMany", mock.Anything, []string{"a", "c"}).Return([]byte(`{"ok":true,"deleted":2}`), nil).Once()
	m.On("ListAll", mock.Anything).Return([]model.Record{{ID: "b"}}, nil).Once()

	require.NoError(t, j.DeleteSelected(ctx))
	assert.Empty(t, j.View().Selected())
	require.Len(t, j.View().Records(), 1)
	assert.Equal(t, "b", j.View().Records()[0].ID)
	m.AssertExpectations(t)
}
