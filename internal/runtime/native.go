package runtime

// NativeFunction adapts a Go function to the Callable protocol so it can
// be seeded into globals and called like any Lox function (e.g. clock()).
type NativeFunction struct {
	NameStr string
	ArityN  int
	Fn      func(args []Value) Value
}

func (*NativeFunction) Type() string { return "native function" }

func (n *NativeFunction) String() string {
	return "<native fn " + n.NameStr + ">"
}

func (n *NativeFunction) Arity() int { return n.ArityN }

func (n *NativeFunction) Call(_ Evaluator, args []Value) Value {
	return n.Fn(args)
}
