// Package config provides configuration loading and processing for the
// appdirs CLI.
package config

import (
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"

	"github.com/smykla-skalski/appdirs/pkg/appdir"
	"github.com/smykla-skalski/appdirs/pkg/config"
)

// CustomDecoderConfig returns a mapstructure decoder config with custom type hooks
// for handling Kind and Format types.
func CustomDecoderConfig() *mapstructure.DecoderConfig {
	return &mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			stringToKindHookFunc(),
			stringToFormatHookFunc(),
			mapstructure.TextUnmarshallerHookFunc(),
		),
		WeaklyTypedInput: true,
		Result:           nil, // Set by caller
	}
}

// stringToKindHookFunc returns a decode hook for converting strings to appdir.Kind.
// Empty strings and "auto" decode to KindUnknown so an unset kind falls
// through to platform selection.
//
//nolint:ireturn // required by mapstructure.DecodeHookFunc interface
func stringToKindHookFunc() mapstructure.DecodeHookFunc {
	return func(
		_ reflect.Type,
		t reflect.Type,
		data any,
	) (any, error) {
		if t != reflect.TypeFor[appdir.Kind]() {
			return data, nil
		}

		switch v := data.(type) {
		case string:
			if v == "" || strings.EqualFold(v, "auto") {
				return appdir.KindUnknown, nil
			}

			return appdir.ParseKind(v)

		case int:
			return appdir.Kind(v), nil

		case int64:
			return appdir.Kind(v), nil

		default:
			return data, nil
		}
	}
}

// stringToFormatHookFunc returns a decode hook for converting strings to config.Format.
// Empty strings decode to FormatUnknown, which renders as the default
// table format.
//
//nolint:ireturn // required by mapstructure.DecodeHookFunc interface
func stringToFormatHookFunc() mapstructure.DecodeHookFunc {
	return func(
		_ reflect.Type,
		t reflect.Type,
		data any,
	) (any, error) {
		if t != reflect.TypeFor[config.Format]() {
			return data, nil
		}

		switch v := data.(type) {
		case string:
			if v == "" {
				return config.FormatUnknown, nil
			}

			return config.ParseFormat(v)

		case int:
			return config.Format(v), nil

		case int64:
			return config.Format(v), nil

		default:
			return data, nil
		}
	}
}
