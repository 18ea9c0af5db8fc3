package shorts

import "snaptikbot/util"

var (
	ErrSessionNotFound  = &util.Error{Message: "cannot capture session cookie"}
	ErrCSRFNotFound     = &util.Error{Message: "cannot get csrf_token"}
	ErrJSONNotFound     = &util.Error{Message: "cannot capture media json"}
	ErrMediaURLNotFound = &util.Error{Message: "cannot get media url"}
)
