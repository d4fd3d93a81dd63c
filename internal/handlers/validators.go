package handlers

import (
	"log/slog"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/guibecker772/advisor-control/internal/utils/dates"
)

var registerValidatorsOnce sync.Once

// registerValidators adds the date rules used by the DTO binding tags:
// isodate accepts any date the UI sends (YYYY-MM-DD, DD/MM/YYYY, RFC 3339) and
// yyyymm any competence month (YYYY-MM, MM/YYYY).
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			slog.Error("Gin validator engine is not go-playground/validator")
			return
		}
		if err := v.RegisterValidation("isodate", isDate); err != nil {
			slog.Error("Failed to register isodate validator", slog.String("error", err.Error()))
		}
		if err := v.RegisterValidation("yyyymm", isMonth); err != nil {
			slog.Error("Failed to register yyyymm validator", slog.String("error", err.Error()))
		}
	})
}

func isDate(fl validator.FieldLevel) bool {
	return dates.Normalize(fl.Field().String()) != ""
}

func isMonth(fl validator.FieldLevel) bool {
	return dates.NormalizeMonth(fl.Field().String()) != ""
}
