package handlers

import (
	"sync"

	"medibook/utils"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var registerOnce sync.Once

// RegisterValidators adds the "datekey" and "slottime" tags to gin's validator. It
// is safe to call more than once.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			zap.L().Fatal("Unexpected binding validator engine; datekey and slottime tags unavailable")
		}
		if err := v.RegisterValidation("datekey", func(fl validator.FieldLevel) bool {
			_, err := utils.NormalizeDateKey(fl.Field().String())
			return err == nil
		}); err != nil {
			zap.L().Fatal("Failed to register datekey validator", zap.Error(err))
		}
		if err := v.RegisterValidation("slottime", func(fl validator.FieldLevel) bool {
			_, err := utils.NormalizeTimeLabel(fl.Field().String())
			return err == nil
		}); err != nil {
			zap.L().Fatal("Failed to register slottime validator", zap.Error(err))
		}
	})
}
