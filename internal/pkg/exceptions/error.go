package exceptions

import (
	"fmt"
	"runtime"
)

// Kind classifies an error for the caller. Configuration errors mean the
// questionnaire definition itself is broken and administration must halt;
// the other kinds surface collaborator or caller failures.
type Kind string

const (
	KindConfiguration Kind = "configuration"
	KindInvalidInput  Kind = "invalid_input"
	KindNotFound      Kind = "not_found"
	KindStorage       Kind = "storage"
)

type CustomError struct {
	Kind          Kind     `json:"kind"`
	ClientMessage string   `json:"message"`
	DevMessage    string   `json:"-"`
	Location      Location `json:"-"`
}

type Location struct {
	File         string
	Line         int
	FunctionName string
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, e.Location.File, e.Location.Line, e.Location.FunctionName)
}

// IsKind reports whether err is a *CustomError of the given kind.
func IsKind(err error, kind Kind) bool {
	customErr, ok := err.(*CustomError)
	return ok && customErr.Kind == kind
}

// IsConfiguration reports whether err must abort questionnaire
// administration rather than be recovered from.
func IsConfiguration(err error) bool {
	return IsKind(err, KindConfiguration)
}

func BuildNewCustomError(err error, kind Kind, clientMessage, devMessage string) *CustomError {
	location := getLocation(3)
	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &CustomError{
		Kind:          kind,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Location:      location,
	}
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         "unknown",
			Line:         0,
			FunctionName: "unknown",
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
