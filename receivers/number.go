package receivers

import (
	"strconv"
	"strings"
)

// OptionalNumber accepts a number encoded either as a JSON number or as a string.
// Form posts deliver integers as strings, API clients as numbers.
type OptionalNumber string

func (o OptionalNumber) String() string {
	return string(o)
}

func (o OptionalNumber) IsSet() bool {
	return strings.TrimSpace(string(o)) != ""
}

// Int returns the number, or def when it is not set.
func (o OptionalNumber) Int(def int) (int, error) {
	if !o.IsSet() {
		return def, nil
	}
	return strconv.Atoi(strings.TrimSpace(string(o)))
}

func (o *OptionalNumber) UnmarshalJSON(bytes []byte) error {
	str := string(bytes)
	if str == "null" {
		*o = ""
		return nil
	}
	*o = OptionalNumber(strings.Trim(str, "\""))
	return nil
}
