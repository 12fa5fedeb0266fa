package runtime

// Class is a callable runtime value representing a Lox class: a name, an
// optional superclass, and its own methods.
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*Function
}

func (*Class) Type() string     { return "class" }
func (c *Class) String() string { return c.Name }

// FindMethod searches the class's own methods, then its superclass chain.
func (c *Class) FindMethod(name string) *Function {
	if m, ok := c.Methods[name]; ok {
		return m
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil
}

// Arity equals the `init` method's arity, or 0 if the class has none.
func (c *Class) Arity() int {
	if init := c.FindMethod("init"); init != nil {
		return init.Arity()
	}
	return 0
}

// Call allocates a fresh instance and, if the class (or an ancestor)
// defines `init`, binds and invokes it before returning the instance.
func (c *Class) Call(ev Evaluator, args []Value) Value {
	instance := &Instance{Class: c, Fields: make(map[string]Value)}
	if init := c.FindMethod("init"); init != nil {
		init.Bind(instance).Call(ev, args)
	}
	return instance
}
