package hostcmd

import (
	"encoding/hex"
	"fmt"

	"github.com/not-for-prod/vanityeth/internal/address"
)

// conditionFlags collects the mutually-exclusive ways a user can describe
// a match on the command line and resolves them into one address.Condition,
// which is handed to the search as a struct rather than an encoded word.
type conditionFlags struct {
	prefix            string
	suffix            string
	leadingZerosMin   int
	leadingZerosExact int
}

func (f conditionFlags) resolve() (address.Condition, error) {
	set := 0
	var cond address.Condition

	if f.prefix != "" {
		set++
		b, err := hex.DecodeString(f.prefix)
		if err != nil {
			return cond, fmt.Errorf("hostcmd: --prefix must be hex: %w", err)
		}
		cond = address.Condition{Type: address.ConditionPrefix, Param: b}
	}
	if f.suffix != "" {
		set++
		b, err := hex.DecodeString(f.suffix)
		if err != nil {
			return cond, fmt.Errorf("hostcmd: --suffix must be hex: %w", err)
		}
		cond = address.Condition{Type: address.ConditionSuffix, Param: b}
	}
	if f.leadingZerosMin > 0 {
		set++
		cond = address.Condition{Type: address.ConditionLeadingZerosMin, Param: []byte{byte(f.leadingZerosMin)}}
	}
	if f.leadingZerosExact > 0 {
		set++
		cond = address.Condition{Type: address.ConditionLeadingZerosExact, Param: []byte{byte(f.leadingZerosExact)}}
	}

	if set != 1 {
		return cond, fmt.Errorf("hostcmd: exactly one of --prefix, --suffix, --leading-zeros-min, --leading-zeros-exact is required")
	}
	return cond, nil
}
