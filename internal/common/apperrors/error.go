package apperrors

// Error is the error contract shared by every layer of the server. Errors
// form chains: a package declares a small set of base errors and derives
// request-specific ones with New, so callers can match with errors.Is
// against the base while the surfaced message stays specific.
type Error interface {
	Error() string
	ErrorAll() string
	New(msg string) Error
	MsgErr(msg string, err ...error) Error
	Msg(msg string) Error
	Prefix(prefix string) Error
	Suffix(suffix string) Error
	Err(err ...error) Error
	Unwrap() []error
	Is(target error) bool
	SetExpandError(expand bool) Error
	SetStatusCode(code int) Error
	StatusCode() int
}
