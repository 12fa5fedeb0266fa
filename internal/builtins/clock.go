// Package builtins holds golox's native functions: the small set of
// Callables seeded into the global environment ahead of user code.
package builtins

import (
	"time"

	"github.com/sdcook/golox/internal/runtime"
)

// Clock returns the native clock() function: zero arguments, yielding
// the number of seconds since the Unix epoch as a Lox number.
func Clock() *runtime.NativeFunction {
	return &runtime.NativeFunction{
		NameStr: "clock",
		ArityN:  0,
		Fn: func(args []runtime.Value) runtime.Value {
			return runtime.Number(float64(time.Now().UnixNano()) / float64(time.Second))
		},
	}
}

// Seed installs every native function into env.
func Seed(env *runtime.Environment) {
	env.Define("clock", Clock())
}
