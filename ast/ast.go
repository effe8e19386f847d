package ast

import "fmt"

// Program is an ordered sequence of modules, in source order.
type Program struct {
	Modules []Module
}

// Module is a parse-validated `(module)` form. It carries no internal
// structure yet; section assembly happens in a later stage.
type Module struct{}

// NumType is one of the four built-in numeric value types.
type NumType int

const (
	I32 NumType = iota
	I64
	F32
	F64
)

func (t NumType) String() string {
	switch t {
	case I32:
		return "i32"
	case I64:
		return "i64"
	case F32:
		return "f32"
	case F64:
		return "f64"
	}
	return fmt.Sprintf("NumType(%d)", int(t))
}

// NumVal is a numeric literal together with its type. It is a closed
// union: exactly one implementation exists per NumType.
type NumVal interface {
	Type() NumType
	numVal()
}

type I32Val int32

type I64Val int64

type F32Val float32

type F64Val float64

func (I32Val) Type() NumType { return I32 }
func (I64Val) Type() NumType { return I64 }
func (F32Val) Type() NumType { return F32 }
func (F64Val) Type() NumType { return F64 }

func (I32Val) numVal() {}
func (I64Val) numVal() {}
func (F32Val) numVal() {}
func (F64Val) numVal() {}

// Index references a definition either by symbolic name or by its
// zero-based position in the defining list. The two forms are never
// reconciled here; name resolution is a later stage's concern.
type Index interface {
	index()
	fmt.Stringer
}

// SymIndex is a symbolic reference, e.g. `call $add`.
type SymIndex struct {
	Name Symbol
}

// NumIndex is a numeric ordinal, e.g. `local.get 0`.
type NumIndex int64

func (SymIndex) index() {}
func (NumIndex) index() {}

func (i SymIndex) String() string { return "$" + i.Name.String() }
func (i NumIndex) String() string { return fmt.Sprintf("%d", int64(i)) }

// Parameter is a function parameter. Name may be the zero Symbol, in
// which case the parameter is addressed positionally.
type Parameter struct {
	Name Symbol
	Type NumType
}

// Local is a local variable declaration within a function.
type Local struct {
	Name Symbol
	Type NumType
}

// Function is a `(func ...)` form. Lists keep source order; order
// defines index assignment for parameters and locals.
type Function struct {
	Name    Symbol
	Exports []string
	Params  []Parameter
	Locals  []Local
}

// FunctionImport binds a namespace and name to a function signature.
type FunctionImport struct {
	Namespace string
	Name      string
	Sig       Function
}

// NewFunctionImport builds a FunctionImport. An import describes only a
// call contract, never a body: a signature carrying exports or locals
// is an invariant violation and aborts.
func NewFunctionImport(namespace, name string, sig Function) FunctionImport {
	if len(sig.Exports) != 0 {
		panic(fmt.Sprintf("ast: import %q %q: signature carries %d export(s)", namespace, name, len(sig.Exports)))
	}
	if len(sig.Locals) != 0 {
		panic(fmt.Sprintf("ast: import %q %q: signature carries %d local(s)", namespace, name, len(sig.Locals)))
	}
	return FunctionImport{Namespace: namespace, Name: name, Sig: sig}
}

// Instruction is an operation plus its folded operands. Each operand is
// itself a value-producing instruction; evaluation (and emission) order
// is depth-first, left to right.
type Instruction struct {
	Op   Op
	Args []Instruction
}

// Op is the closed union of supported operations.
type Op interface {
	op()
}

// Unreachable is the zero-operand trap marker.
type Unreachable struct{}

// Call invokes the function the index refers to.
type Call struct {
	Target Index
}

// Scope is the namespace a variable access targets.
type Scope int

const (
	ScopeLocal Scope = iota
	ScopeGlobal
)

func (s Scope) String() string {
	if s == ScopeGlobal {
		return "global"
	}
	return "local"
}

// VarKind selects between get, set and tee accesses.
type VarKind int

const (
	VarGet VarKind = iota
	VarSet
	VarTee
)

func (k VarKind) String() string {
	switch k {
	case VarGet:
		return "get"
	case VarSet:
		return "set"
	case VarTee:
		return "tee"
	}
	return fmt.Sprintf("VarKind(%d)", int(k))
}

// VariableOp reads or writes a local or global variable. Global+Tee has
// no instruction in the target set and never resolves to an opcode.
type VariableOp struct {
	Scope  Scope
	Kind   VarKind
	Target Index
}

// Const pushes a numeric constant.
type Const struct {
	Value NumVal
}

// ArithKind enumerates the arithmetic operations.
type ArithKind int

const (
	Add ArithKind = iota
	Sub
	Mul
	DivFloat
	DivSigned
	DivUnsigned
	RemSigned
	RemUnsigned
)

func (k ArithKind) String() string {
	switch k {
	case Add:
		return "add"
	case Sub:
		return "sub"
	case Mul:
		return "mul"
	case DivFloat:
		return "div"
	case DivSigned:
		return "div_s"
	case DivUnsigned:
		return "div_u"
	case RemSigned:
		return "rem_s"
	case RemUnsigned:
		return "rem_u"
	}
	return fmt.Sprintf("ArithKind(%d)", int(k))
}

// Arithmetic pairs a numeric type with an arithmetic operation.
// Integer types never carry DivFloat; float types never carry the
// signed/unsigned division or remainder kinds.
type Arithmetic struct {
	Type NumType
	Kind ArithKind
}

// CmpKind enumerates the comparison operations.
type CmpKind int

const (
	Eq CmpKind = iota
	Ne
	Gt
	Lt
	Ge
	Le
)

func (k CmpKind) String() string {
	switch k {
	case Eq:
		return "eq"
	case Ne:
		return "ne"
	case Gt:
		return "gt"
	case Lt:
		return "lt"
	case Ge:
		return "ge"
	case Le:
		return "le"
	}
	return fmt.Sprintf("CmpKind(%d)", int(k))
}

// Comparison pairs a numeric type with a comparison operation.
type Comparison struct {
	Type NumType
	Kind CmpKind
}

func (Unreachable) op() {}
func (Call) op()        {}
func (VariableOp) op()  {}
func (Const) op()       {}
func (Arithmetic) op()  {}
func (Comparison) op()  {}
