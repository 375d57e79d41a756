package config

import (
	"fmt"
	"os"
	"reflect"
	"strings"
)

// loadFromEnv overrides fields from PREFIX_FIELD variables; nested structs
// extend the key, so Logger.Level reads PREFIX_LOGGER_LEVEL.
func loadFromEnv(conf *Config, prefix string) error {
	return loadFromEnvRecursive(reflect.ValueOf(conf).Elem(), strings.ToUpper(prefix))
}

func loadFromEnvRecursive(v reflect.Value, prefix string) error {
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := t.Field(i)

		if !field.CanSet() || fieldType.Tag.Get("yaml") == "-" {
			continue
		}

		envKey := prefix + "_" + strings.ToUpper(fieldTagName(fieldType))

		if field.Kind() == reflect.Struct {
			if err := loadFromEnvRecursive(field, envKey); err != nil {
				return err
			}
			continue
		}

		envValue := os.Getenv(envKey)
		if envValue == "" {
			continue
		}

		if err := setValueFromString(field, envValue); err != nil {
			return fmt.Errorf("failed to set field %s from %s: %w", fieldType.Name, envKey, err)
		}
	}

	return nil
}
