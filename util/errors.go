package util

type Error struct {
	Message string
}

func (err *Error) Error() string {
	return err.Message
}

var (
	ErrInvalidURL      = &Error{Message: "only supported links are accepted"}
	ErrUnsupportedLink = &Error{Message: "unsupported link"}
	ErrNoHost          = &Error{Message: "link has no host"}
	ErrResolverFailed  = &Error{Message: "cannot process video"}
)
