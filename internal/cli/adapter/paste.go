package adapter

import (
	"encoding/json"
	"strings"

	"TravelRecord/internal/cli/model"
)

// Paste — источник «вставленный текст». Текст должен быть валидным JSON;
// разобранное значение уходит на сервер как есть — массив это или нет,
// решает хранилище.
type Paste struct {
	text string
}

func NewPaste() *Paste {
	return &Paste{}
}

// Set кладёт текст в буфер.
func (p *Paste) Set(text string) {
	p.text = text
}

// Payload разбирает буфер как JSON. Невалидный JSON — блокирующая
// локальная ошибка: никакой сетевой вызов не выполняется.
func (p *Paste) Payload() (*Payload, error) {
	var value any
	if err := json.Unmarshal([]byte(strings.TrimSpace(p.text)), &value); err != nil {
		return nil, &model.ValidationError{Reason: "invalid JSON format"}
	}
	return &Payload{Kind: KindPastedText, Value: value}, nil
}

// Clear сбрасывает буфер текста.
func (p *Paste) Clear() {
	p.text = ""
}
