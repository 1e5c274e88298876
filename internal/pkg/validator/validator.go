package validator

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Validate - проверка структуры запроса по validate-тегам.
// Семантические проверки (диапазоны дней, координаты) живут
// в usecase и обработчиках, теги покрывают только форму данных.
func Validate(s interface{}) error {
	return validate.Struct(s)
}
