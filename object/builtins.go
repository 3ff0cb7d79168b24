package object

import "fmt"

// Builtins is indexed by OpGetBuiltin; the index is part of the wire ABI
// (spec §4.6), so this stays an ordered slice rather than a map. Order
// mirrors the original implementation's BUILTINS table:
// len, puts, first, last, rest, push.
var Builtins = []struct {
	Name    string
	Builtin *Builtin
}{
	{"len", &Builtin{Fn: builtinLen}},
	{"puts", &Builtin{Fn: builtinPuts}},
	{"first", &Builtin{Fn: builtinFirst}},
	{"last", &Builtin{Fn: builtinLast}},
	{"rest", &Builtin{Fn: builtinRest}},
	{"push", &Builtin{Fn: builtinPush}},
}

// GetBuiltinByName returns the builtin with the given name and its index
// into Builtins, or (-1, nil) if there is none.
func GetBuiltinByName(name string) (int, *Builtin) {
	for i, b := range Builtins {
		if b.Name == name {
			return i, b.Builtin
		}
	}
	return -1, nil
}

func builtinLen(args ...Object) (Object, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("wrong number of arguments. got=%d, want=1", len(args))
	}
	switch arg := args[0].(type) {
	case *String:
		return &Integer{Value: int64(len(arg.Value))}, nil
	case *Array:
		return &Integer{Value: int64(len(arg.Elements))}, nil
	default:
		return nil, fmt.Errorf("argument to `len` not supported, got %s", arg.Type())
	}
}

func builtinPuts(args ...Object) (Object, error) {
	for _, arg := range args {
		fmt.Println(arg.Inspect())
	}
	return &Null{}, nil
}

func builtinFirst(args ...Object) (Object, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("wrong number of arguments. got=%d, want=1", len(args))
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return nil, fmt.Errorf("argument to `first` must be ARRAY, got %s", args[0].Type())
	}
	if len(arr.Elements) > 0 {
		return arr.Elements[0], nil
	}
	return &Null{}, nil
}

func builtinLast(args ...Object) (Object, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("wrong number of arguments. got=%d, want=1", len(args))
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return nil, fmt.Errorf("argument to `last` must be ARRAY, got %s", args[0].Type())
	}
	if n := len(arr.Elements); n > 0 {
		return arr.Elements[n-1], nil
	}
	return &Null{}, nil
}

func builtinRest(args ...Object) (Object, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("wrong number of arguments. got=%d, want=1", len(args))
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return nil, fmt.Errorf("argument to `rest` must be ARRAY, got %s", args[0].Type())
	}
	n := len(arr.Elements)
	if n == 0 {
		return &Null{}, nil
	}
	newElements := make([]Object, n-1)
	copy(newElements, arr.Elements[1:])
	return &Array{Elements: newElements}, nil
}

func builtinPush(args ...Object) (Object, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("wrong number of arguments. got=%d, want=2", len(args))
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return nil, fmt.Errorf("argument to `push` must be ARRAY, got %s", args[0].Type())
	}
	n := len(arr.Elements)
	newElements := make([]Object, n+1)
	copy(newElements, arr.Elements)
	newElements[n] = args[1]
	return &Array{Elements: newElements}, nil
}
