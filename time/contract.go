// SPDX-License-Identifier: MIT

package time

import (
	stdlibtime "time"

	"github.com/goccy/go-json"
	"github.com/vmihailenco/msgpack/v5"
)

// Public API.

type (
	// Time is an UTC-normalized wall clock value. A nil or zero Time means
	// "absent", which matters for token issuance timestamps.
	Time struct {
		*stdlibtime.Time
	}
)

// Private API.

var (
	_ msgpack.CustomEncoder                      = (*Time)(nil)
	_ msgpack.CustomDecoder                      = (*Time)(nil)
	_ json.UnmarshalerContext                    = (*Time)(nil)
	_ json.MarshalerContext                      = (*Time)(nil)
	_ interface{ MarshalText() ([]byte, error) } = (*Time)(nil)
	_ interface{ UnmarshalText([]byte) error }   = (*Time)(nil)
)
