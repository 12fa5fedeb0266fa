package runtime

import "fmt"

// Instance is a runtime object created from a Class: a bag of fields plus
// a pointer back to the class that defines its methods.
type Instance struct {
	Class  *Class
	Fields map[string]Value
}

func (*Instance) Type() string { return "instance" }

func (i *Instance) String() string {
	return fmt.Sprintf("%s instance", i.Class.Name)
}

// Get looks up a property: an own field first, then a method bound to
// this instance. It reports "absent" via ok=false so the caller (the
// interpreter) can raise an undefined-property runtime error with the
// property token in hand.
func (i *Instance) Get(name string) (Value, bool) {
	if v, ok := i.Fields[name]; ok {
		return v, true
	}
	if method := i.Class.FindMethod(name); method != nil {
		return method.Bind(i), true
	}
	return nil, false
}

// Set writes a field unconditionally; Lox instances have no fixed shape.
func (i *Instance) Set(name string, value Value) {
	i.Fields[name] = value
}
