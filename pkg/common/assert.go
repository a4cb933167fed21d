package common

import "fmt"

func Must(v error, msgAndArgs ...any) {
	if v != nil {
		if len(msgAndArgs) > 0 {
			msg := msgAndArgs[0].(string) + ": %w"
			args := append(msgAndArgs[1:], v)
			panic(fmt.Errorf(msg, args...))
		}
		panic(v)
	}
}
