package api

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/ougirez/fishstats/internal/pkg/constants"
)

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return fmt.Errorf("%w: %s", constants.ErrInvalidParam, err.Error())
	}
	return nil
}

// Binder fills request DTOs from the query string and validates them.
type Binder struct {
	*echo.DefaultBinder
}

func NewBinder() *Binder {
	return &Binder{DefaultBinder: &echo.DefaultBinder{}}
}

func (b *Binder) Bind(i interface{}, c echo.Context) error {
	if err := b.DefaultBinder.BindQueryParams(c, i); err != nil {
		return fmt.Errorf("%w: %s", constants.ErrInvalidParam, bindMessage(err))
	}
	return c.Validate(i)
}

func bindMessage(err error) string {
	if he, ok := err.(*echo.HTTPError); ok {
		if he.Internal != nil {
			return he.Internal.Error()
		}
		return fmt.Sprint(he.Message)
	}
	return err.Error()
}
