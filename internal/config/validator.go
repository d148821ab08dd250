package config

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	pokedexerrors "github.com/alexisbeaulieu97/pokedex/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	categoryPattern = regexp.MustCompile(`^[a-z][a-z-]*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(yamlKey)

		_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
			return IsCategoryName(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns the shared validator instance.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// IsCategoryName reports whether name is a syntactically valid category
// (lowercase letters and dashes). The "all" sentinel is valid.
func IsCategoryName(name string) bool {
	return categoryPattern.MatchString(name)
}

// ValidateConfig performs schema and cross-field validation on the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return pokedexerrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(cfg.UI.Filters))
	for i, filter := range cfg.UI.Filters {
		if prev, exists := seen[filter.Category]; exists {
			return pokedexerrors.NewValidationError(
				fieldForFilter(i, "category"),
				fmt.Sprintf("duplicate category %q (already used by filter %d)", filter.Category, prev),
				nil,
			)
		}
		seen[filter.Category] = i
	}

	if _, ok := seen[cfg.UI.DefaultFilter]; !ok {
		return pokedexerrors.NewValidationError(
			"ui.default_filter",
			fmt.Sprintf("default filter %q is not one of the configured filters", cfg.UI.DefaultFilter),
			nil,
		)
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return pokedexerrors.NewValidationError(field, msg, err)
	}

	return pokedexerrors.NewValidationError("config", err.Error(), err)
}

// yamlKey names a field by the key it is read from in the config file.
func yamlKey(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
	if name == "-" {
		return ""
	}
	return name
}

// yamlishFieldName turns Config.api.requests_per_second into api.requests_per_second.
func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if rest, ok := strings.CutPrefix(ns, "Config."); ok {
		return rest
	}
	return ns
}

func fieldForFilter(index int, field string) string {
	return fmt.Sprintf("ui.filters[%d].%s", index, field)
}
