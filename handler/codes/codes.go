package codes

import (
	"strconv"

	"lever/core"

	"github.com/twitchtv/twirp"
)

// CustomCodeKey code key
const CustomCodeKey = "custom_code"

// With with specified error
func With(err error, code core.ErrorCode) error {
	twerr, ok := err.(twirp.Error)
	if !ok {
		twerr = twirp.InternalErrorWith(err)
	}

	return twerr.WithMeta(CustomCodeKey, strconv.Itoa(int(code)))
}

// Get get error code
func Get(code twirp.ErrorCode) int {
	switch code {
	case twirp.InvalidArgument:
		return int(core.CodeInvalidParams)
	default:
		return twirp.ServerHTTPStatusFromErrorCode(code)
	}
}
