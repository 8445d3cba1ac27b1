// File: utils/constants.go
package utils

import "time"

// SessionCachePrefix is the prefix used for picker session cache keys.
const SessionCachePrefix = "pickerSession:"

// SessionCacheTTL is the time-to-live for a picker session; an
// abandoned picker simply expires.
const SessionCacheTTL = 30 * time.Minute
