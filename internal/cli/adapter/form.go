package adapter

import "TravelRecord/internal/cli/model"

// Form — интерактивная форма одной записи: поля накапливаются по одному,
// Payload отдаёт ровно одного кандидата.
type Form struct {
	fields map[string]any
}

func NewForm() *Form {
	return &Form{fields: map[string]any{}}
}

// Set записывает значение поля формы. Имя поля не проверяется:
// нераспознанные поля отбросит нормализация.
func (f *Form) Set(name, value string) {
	f.fields[name] = value
}

// Payload нормализует накопленные поля в одну запись.
func (f *Form) Payload() (*Payload, error) {
	rec, err := model.Normalize(map[string]any(f.fields))
	if err != nil {
		return nil, err
	}
	return &Payload{Kind: KindInteractive, Record: rec}, nil
}

// Clear сбрасывает форму. Вызывается после каждой дошедшей до сервера
// отправки, независимо от ответа хранилища.
func (f *Form) Clear() {
	f.fields = map[string]any{}
}
