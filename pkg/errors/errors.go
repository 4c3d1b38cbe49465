package errorutils

import "fmt"

func Try(err error) {
	if err != nil {
		panic(err)
	}
}

// Tryf is Try with err wrapped in a formatted message.
func Tryf(err error, format string, args ...any) {
	if err != nil {
		panic(fmt.Errorf(format+": %w", append(args, err)...))
	}
}

func Must[T any](v T, err error) T {
	Try(err)
	return v
}
