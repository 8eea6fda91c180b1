package lint

import (
	"fmt"
	"reflect"

	"github.com/go-viper/mapstructure/v2"

	"github.com/leapstack-labs/leapstyle/pkg/rewrite"
)

// GetStringOption returns the string option key, or defaultVal when it is
// missing or not a string.
func GetStringOption(opts map[string]any, key string, defaultVal string) string {
	if s, ok := opts[key].(string); ok {
		return s
	}
	return defaultVal
}

var indentUnitType = reflect.TypeOf(rewrite.IndentUnit{})

// DecodeOptions decodes a rule's option map into out, a pointer to a struct
// whose fields carry `mapstructure` tags. Fields missing from opts keep their
// current values, so callers pre-fill defaults. Loosely typed input such as
// "true" or "4" from environment variables is accepted.
func DecodeOptions(opts map[string]any, out any) error {
	if len(opts) == 0 {
		return nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		DecodeHook:       indentUnitHook,
	})
	if err != nil {
		return fmt.Errorf("options decoder: %w", err)
	}
	if err := dec.Decode(opts); err != nil {
		return fmt.Errorf("decode options: %w", err)
	}
	return nil
}

func indentUnitHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	if to != indentUnitType {
		return data, nil
	}
	return rewrite.ParseIndentUnit(data)
}
