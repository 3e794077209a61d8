package model

// Record — клиентское представление записи дневника.
// Все поля, кроме ID, заполняет пользователь; ID назначает сервер.
type Record struct {
	ID      string `json:"id,omitempty"`
	Date    string `json:"date,omitempty"`
	Title   string `json:"title,omitempty"`
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`
	Note    string `json:"note,omitempty"`
}

// ValidationError — локальная ошибка входных данных. Блокирует одну
// отправку и не приводит ни к какому сетевому вызову.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// Normalize принимает произвольное разобранное JSON-значение и приводит его
// к Record. Ошибка только одна: значение не является объектом. Из объекта
// копируются пять распознаваемых строковых полей; прочие поля и значения
// нестрокового типа отбрасываются без приведения типов.
func Normalize(raw any) (Record, error) {
	doc, ok := raw.(map[string]any)
	if !ok {
		return Record{}, &ValidationError{Reason: "record must be a JSON object"}
	}

	var r Record
	if v, ok := doc["date"].(string); ok {
		r.Date = v
	}
	if v, ok := doc["title"].(string); ok {
		r.Title = v
	}
	if v, ok := doc["city"].(string); ok {
		r.City = v
	}
	if v, ok := doc["country"].(string); ok {
		r.Country = v
	}
	if v, ok := doc["note"].(string); ok {
		r.Note = v
	}
	return r, nil
}
