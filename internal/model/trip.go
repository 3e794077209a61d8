package model

import "time"

// Trip — запись дневника путешествий. Все содержательные поля опциональны:
// валидацией занимается не хранилище, пустая запись допустима.
type Trip struct {
	ID     string `gorm:"primaryKey;type:uuid" json:"id"`
	UserID int64  `gorm:"not null;index" json:"-"` // ссылка на users.id

	// Связи
	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	Email   string `json:"-"` // email владельца на момент вставки
	Date    string `json:"date,omitempty"`
	Title   string `json:"title,omitempty"`
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`
	Note    string `json:"note,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}
