package snap

import "snaptikbot/util"

var (
	ErrTokenNotFound       = &util.Error{Message: "unable to get token"}
	ErrDecoderArgsNotFound = &util.Error{Message: "cannot find decoder arguments"}
	ErrVideoURLNotFound    = &util.Error{Message: "cannot find result URL"}
	ErrCannotDecode        = &util.Error{Message: "cannot decode response"}
)
