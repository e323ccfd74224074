package utils

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func InitValidator() {
	Validate = validator.New()
	Validate.RegisterValidation("quotecategory", ValidateQuoteCategoryRule)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("quotecategory", ValidateQuoteCategoryRule)
	}
}

func ValidateQuoteCategoryRule(fl validator.FieldLevel) bool {
	return ValidateQuoteCategory(fl.Field().String())
}

// ValidateQuoteCategory accepts the empty string (no filter) or one of the
// five quote categories.
func ValidateQuoteCategory(category string) bool {
	switch category {
	case "", "focus", "balance", "mindfulness", "productivity", "wellness":
		return true
	}
	return false
}
