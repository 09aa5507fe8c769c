package weather

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// responseCode decodes OpenWeather's "cod", which is a number on success
// and sometimes a numeric string ("404") on failure.
type responseCode int

func (c *responseCode) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("decode cod: %w", err)
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("decode cod %q: %w", s, err)
		}
		*c = responseCode(n)
		return nil
	}

	var n int
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("decode cod: %w", err)
	}
	*c = responseCode(n)
	return nil
}
