package validator

import (
	"github.com/aroundme-service/internal/domain"
	"github.com/aroundme-service/internal/pkg/errors"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// poi - значение из закрытого списка категорий
	_ = validate.RegisterValidation("poi", func(fl validator.FieldLevel) bool {
		return domain.IsValidPointOfInterest(fl.Field().String())
	})
}

// Validate - валидация структуры; ошибки приводятся к AppError с перечнем полей
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.ErrInvalidRequest.WithMessage(err.Error())
	}

	fields := make(map[string]interface{}, len(verrs))
	for _, fe := range verrs {
		fields[fe.Namespace()] = fe.Tag()
	}
	return errors.ErrInvalidRequest.WithDetails(fields)
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}
