package api

import (
	"github.com/go-playground/validator/v10"

	"github.com/HotelkaWants/ASMR-UK/internal/pkg/constants"
)

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return constants.ErrBadRequest.Wrapf("валидация: %v", err)
	}
	return nil
}
