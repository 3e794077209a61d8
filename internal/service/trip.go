package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"TravelRecord/internal/model"
	"TravelRecord/internal/repo"
)

var (
	// ErrUnsupportedFile — расширение файла не .csv и не .json.
	ErrUnsupportedFile = errors.New("unsupported file type")
	// ErrNotObjects — элемент пачки не является JSON-объектом.
	ErrNotObjects = errors.New("bulk payload must contain objects")
)

// TripService инкапсулирует вставку, выборку и удаление записей дневника.
// Разбор пачек (JSON-массив, CSV/JSON файл) живёт здесь: клиент шлёт
// сырые байты, форматы — забота хранилища.
type TripService struct {
	repo   repo.TripRepository
	logger *zap.SugaredLogger
}

func NewTripService(r repo.TripRepository, logger *zap.SugaredLogger) *TripService {
	return &TripService{repo: r, logger: logger}
}

// tripFromDoc выбирает из произвольного объекта распознаваемые строковые поля.
// Прочие поля отбрасываются, приведение типов не выполняется.
func tripFromDoc(doc map[string]any) model.Trip {
	var t model.Trip
	if v, ok := doc["date"].(string); ok {
		t.Date = v
	}
	if v, ok := doc["title"].(string); ok {
		t.Title = v
	}
	if v, ok := doc["city"].(string); ok {
		t.City = v
	}
	if v, ok := doc["country"].(string); ok {
		t.Country = v
	}
	if v, ok := doc["note"].(string); ok {
		t.Note = v
	}
	return t
}

// stamp назначает записи идентификатор и владельца.
func stamp(t *model.Trip, userID int64, email string) {
	t.ID = uuid.NewString()
	t.UserID = userID
	t.Email = email
}

// AddOne сохраняет одну запись, назначая ей id и владельца.
func (s *TripService) AddOne(ctx context.Context, userID int64, email string, trip model.Trip) (*model.Trip, error) {
	stamp(&trip, userID, email)
	if err := s.repo.InsertOne(ctx, &trip); err != nil {
		return nil, fmt.Errorf("insert trip: %w", err)
	}
	s.logger.Infow("trip added", "user_id", userID, "trip_id", trip.ID)
	return &trip, nil
}

// BulkJSON принимает JSON-массив объектов (или одиночный объект — он
// оборачивается в пачку из одного элемента) и вставляет всё одной транзакцией.
// Возвращает число вставленных записей.
func (s *TripService) BulkJSON(ctx context.Context, userID int64, email string, data []byte) (int, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return 0, fmt.Errorf("parse json: %w", err)
	}

	var docs []any
	switch v := raw.(type) {
	case []any:
		docs = v
	default:
		docs = []any{raw}
	}

	trips := make([]model.Trip, 0, len(docs))
	for _, d := range docs {
		doc, ok := d.(map[string]any)
		if !ok {
			return 0, ErrNotObjects
		}
		t := tripFromDoc(doc)
		stamp(&t, userID, email)
		trips = append(trips, t)
	}

	if err := s.repo.InsertMany(ctx, trips); err != nil {
		return 0, fmt.Errorf("insert trips: %w", err)
	}
	s.logger.Infow("bulk insert", "user_id", userID, "inserted", len(trips))
	return len(trips), nil
}

// BulkFile разбирает загруженный файл по расширению имени:
// .csv — таблица с заголовком, .json — как BulkJSON, прочее — ошибка.
func (s *TripService) BulkFile(ctx context.Context, userID int64, email, filename string, data []byte) (int, error) {
	name := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(name, ".csv"):
		return s.bulkCSV(ctx, userID, email, data)
	case strings.HasSuffix(name, ".json"):
		return s.BulkJSON(ctx, userID, email, data)
	default:
		return 0, ErrUnsupportedFile
	}
}

// bulkCSV читает CSV с заголовочной строкой; каждая строка становится
// записью по распознаваемым колонкам.
func (s *TripService) bulkCSV(ctx context.Context, userID int64, email string, data []byte) (int, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.TrimLeadingSpace = true

	rows, err := r.ReadAll()
	if err != nil {
		return 0, fmt.Errorf("parse csv: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}

	header := rows[0]
	trips := make([]model.Trip, 0, len(rows)-1)
	for _, row := range rows[1:] {
		doc := make(map[string]any, len(header))
		for i, col := range header {
			if i < len(row) {
				doc[strings.ToLower(strings.TrimSpace(col))] = row[i]
			}
		}
		t := tripFromDoc(doc)
		stamp(&t, userID, email)
		trips = append(trips, t)
	}

	if err := s.repo.InsertMany(ctx, trips); err != nil {
		return 0, fmt.Errorf("insert trips: %w", err)
	}
	s.logger.Infow("bulk csv insert", "user_id", userID, "inserted", len(trips))
	return len(trips), nil
}

// ListAll возвращает все записи пользователя.
func (s *TripService) ListAll(ctx context.Context, userID int64) ([]model.Trip, error) {
	trips, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list trips: %w", err)
	}
	return trips, nil
}

// DeleteMany удаляет записи пользователя по списку идентификаторов.
func (s *TripService) DeleteMany(ctx context.Context, userID int64, ids []string) (int64, error) {
	n, err := s.repo.DeleteByIDs(ctx, userID, ids)
	if err != nil {
		return 0, fmt.Errorf("delete trips: %w", err)
	}
	s.logger.Infow("trips deleted", "user_id", userID, "requested", len(ids), "deleted", n)
	return n, nil
}
