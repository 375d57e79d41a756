package config

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode"
)

func applyDefaults(conf *Config) error {
	return applyDefaultTagsRecursive(reflect.ValueOf(conf).Elem())
}

func applyDefaultTagsRecursive(v reflect.Value) error {
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := t.Field(i)

		if !field.CanSet() {
			continue
		}

		if field.Kind() == reflect.Struct {
			if err := applyDefaultTagsRecursive(field); err != nil {
				return err
			}
			continue
		}

		defaultValue := fieldType.Tag.Get("default")
		if defaultValue == "" || !field.IsZero() {
			continue
		}

		if err := setValueFromString(field, defaultValue); err != nil {
			return fmt.Errorf("failed to apply default tag to field %s: %w", fieldType.Name, err)
		}
	}

	return nil
}

func setValueFromString(elem reflect.Value, value string) error {
	switch elem.Kind() {
	case reflect.String:
		elem.SetString(value)
	case reflect.Bool:
		val, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean value %q", value)
		}
		elem.SetBool(val)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		val, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid integer value %q", value)
		}
		if elem.OverflowInt(val) {
			return fmt.Errorf("integer value %q overflows %s", value, elem.Type())
		}
		elem.SetInt(val)
	default:
		return fmt.Errorf("unsupported type %s", elem.Kind())
	}
	return nil
}

func camelToSnake(s string) string {
	var result strings.Builder
	runes := []rune(s)

	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prevUpper := unicode.IsUpper(runes[i-1])
			nextLower := i < len(runes)-1 && unicode.IsLower(runes[i+1])

			if !prevUpper || nextLower {
				result.WriteByte('_')
			}
		}
		result.WriteRune(unicode.ToLower(r))
	}
	return result.String()
}

// fieldTagName prefers the yaml tag, then json, then the snake_case field name.
func fieldTagName(fieldType reflect.StructField) string {
	for _, key := range []string{"yaml", "json"} {
		tag := fieldType.Tag.Get(key)
		if tag != "" && tag != "-" {
			return strings.Split(tag, ",")[0]
		}
	}

	return camelToSnake(fieldType.Name)
}
