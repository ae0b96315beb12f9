package speech

import "errors"

// Классы ошибок. Каждый шаг оборачивает и класс, и исходную причину,
// поэтому errors.Is работает с обоими.
var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrRemoteService    = errors.New("remote service error")
	ErrStreamCollection = errors.New("stream collection error")
	ErrFileIO           = errors.New("file io error")
)
