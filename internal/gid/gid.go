package gid

import (
	"bytes"
	"runtime"
	"strconv"
)

// Get returns the id of the calling goroutine.
//
// The runtime does not expose goroutine ids, but the first line of a stack
// dump is "goroutine N [running]:" and that header has been stable across
// releases. One small dump per lookup is cheap next to a network round
// trip, which is the only context this is called in.
func Get() uint64 {
	buf := make([]byte, 64)
	n := runtime.Stack(buf, false)

	fields := bytes.Fields(buf[:n])
	if len(fields) < 2 {
		return 0
	}

	id, err := strconv.ParseUint(string(fields[1]), 10, 64)
	if err != nil {
		return 0
	}

	return id
}
