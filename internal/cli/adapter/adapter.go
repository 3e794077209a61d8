// Package adapter — три независимых источника данных для вставки:
// интерактивная форма, загружаемый файл и вставленный JSON-текст.
// Каждый превращает своё сырьё в готовый к отправке payload либо
// возвращает локальную ошибку валидации, не трогая прочее состояние.
package adapter

import "TravelRecord/internal/cli/model"

// Kind — тег варианта источника.
type Kind int

const (
	// KindInteractive — форма, собираемая по полям.
	KindInteractive Kind = iota
	// KindFile — загруженный файл .csv/.json.
	KindFile
	// KindPastedText — вставленный текст с JSON-массивом.
	KindPastedText
)

// Payload — нормализованный результат работы адаптера.
// Заполнено ровно одно из содержательных полей, по Kind.
type Payload struct {
	Kind Kind

	Record   model.Record // KindInteractive
	Filename string       // KindFile
	Data     []byte       // KindFile
	Value    any          // KindPastedText: разобранный JSON как есть
}

// Source — общий контракт трёх источников. Payload готовит данные к
// отправке (локальная ошибка — *model.ValidationError), Clear сбрасывает
// буфер источника.
type Source interface {
	Payload() (*Payload, error)
	Clear()
}
