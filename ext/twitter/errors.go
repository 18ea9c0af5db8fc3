package twitter

import "snaptikbot/util"

var (
	ErrDataNotFound         = &util.Error{Message: "cannot read data field"}
	ErrDownloadLinkNotFound = &util.Error{Message: "cannot find download link"}
)
