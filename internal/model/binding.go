package model

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// timeofday validates wall-clock string fields (HH:MM or HH:MM:SS) at bind
// time, before any handler runs.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("timeofday", func(fl validator.FieldLevel) bool {
			_, err := ParseTimeOfDay(fl.Field().String())
			return err == nil
		})
	}
}
