package repo

import (
	"context"

	"gorm.io/gorm"

	"TravelRecord/internal/model"
)

// TripRepository определяет контракт доступа к записям дневника.
type TripRepository interface {
	// InsertOne сохраняет одну запись.
	InsertOne(ctx context.Context, trip *model.Trip) error

	// InsertMany сохраняет пачку записей одной транзакцией.
	InsertMany(ctx context.Context, trips []model.Trip) error

	// ListByUser возвращает все записи пользователя.
	ListByUser(ctx context.Context, userID int64) ([]model.Trip, error)

	// DeleteByIDs удаляет записи пользователя по списку идентификаторов
	// и возвращает число удалённых строк. Чужие записи не трогаются.
	DeleteByIDs(ctx context.Context, userID int64, ids []string) (int64, error)
}

type tripRepo struct {
	db *gorm.DB
}

// NewTripRepository создаёт реализацию репозитория записей.
func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepo{db: db}
}

func (r *tripRepo) InsertOne(ctx context.Context, trip *model.Trip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *tripRepo) InsertMany(ctx context.Context, trips []model.Trip) error {
	if len(trips) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&trips).Error
}

func (r *tripRepo) ListByUser(ctx context.Context, userID int64) ([]model.Trip, error) {
	var trips []model.Trip
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *tripRepo) DeleteByIDs(ctx context.Context, userID int64, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	tx := r.db.WithContext(ctx).
		Where("user_id = ? AND id IN ?", userID, ids).
		Delete(&model.Trip{})
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}
