package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/leighmacdonald/steamid/v4/steamid"
)

// ParseUserID parses a Steam id into its 64 bit form.
// Steam2 and Steam3 notations are converted. Bare integers must already be the 64 bit id;
// a 32 bit account id like "123" is rejected instead of being converted.
func ParseUserID(raw string) (uint64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%w: missing user id", ErrInvalidArgument)
	}

	sid := steamid.New(raw)
	if !sid.Valid() {
		return 0, fmt.Errorf("%w: invalid user id", ErrInvalidArgument)
	}

	userID := uint64(sid.Int64())
	if numeric, err := strconv.ParseUint(raw, 10, 64); err == nil && numeric != userID {
		return 0, fmt.Errorf("%w: user id must be a 64 bit steam id", ErrInvalidArgument)
	}

	return userID, nil
}
