package trier

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// O gateway não é rígido quanto aos tipos: números chegam como string,
// flags como "S"/"N" ou texto. Os tipos Flex normalizam tudo na borda
// para que o resto do sistema trabalhe apenas com tipos fortes.

type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}

	if data[0] == '"' {
		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			return err
		}
		*f = FlexString(strings.TrimSpace(value))
		return nil
	}

	*f = FlexString(string(data))
	return nil
}

func (f FlexString) String() string {
	return string(f)
}

type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}

	raw := string(data)
	if data[0] == '"' {
		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			return err
		}
		raw = strings.TrimSpace(value)
		if raw == "" {
			*f = 0
			return nil
		}
		// Valores monetários chegam por vezes com vírgula decimal.
		raw = strings.ReplaceAll(raw, ",", ".")
	}

	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		*f = 0
		return nil
	}

	*f = FlexFloat(parsed)
	return nil
}

func (f FlexFloat) Float64() float64 {
	return float64(f)
}

type FlexBool bool

func (f *FlexBool) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = false
		return nil
	}

	switch strings.ToUpper(strings.Trim(string(data), `"`)) {
	case "TRUE", "S", "SIM", "1":
		*f = true
	default:
		*f = false
	}

	return nil
}

func (f FlexBool) Bool() bool {
	return bool(f)
}
