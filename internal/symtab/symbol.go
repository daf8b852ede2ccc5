package symtab

// Symbol is the static, immutable description of one recognised lexeme:
// an operator, a parenthesis, a function name, a comma, or one of the two
// synthetic "load" entries used for literals and variable references.
//
// Every field below corresponds exactly to a column of the original
// MathMap's Symbol table; see DESIGN.md for the grounding.
type Symbol struct {
	// Text is the lexeme as it appears in an expression. The two
	// synthetic load entries (SymLDVAR, SymLDCON) have empty text.
	Text string

	// OperLeft is true if this symbol looks like an operator when the
	// walker is expecting one (i.e. when the previous token was an
	// operand).
	OperLeft bool

	// OperRight is true if this symbol looks like an operator when seen
	// from the right; after consuming it, the walker expects an operator
	// next only if OperRight is false.
	OperRight bool

	// UnaryNext is true if a unary +/- may legally follow this symbol.
	UnaryNext bool

	// UnaryOper is true if this symbol itself is a unary +/-.
	UnaryOper bool

	// LeftPriority is this symbol's evaluation priority as seen from the
	// left (1..10).
	LeftPriority int

	// RightPriority is this symbol's evaluation priority as seen from the
	// right (1..10).
	RightPriority int

	// ParenIncrement is the change in parenthesis depth this symbol
	// causes: -1 (closer), 0 (none), or +1 (opener).
	ParenIncrement int

	// StackIncrement is the net change in vector-stack depth this symbol
	// causes when its opcode is emitted, for fixed-arity symbols.
	// Variadic openers carry a placeholder here; the real delta is
	// resolved by the scheduler from the back-patched argument count.
	StackIncrement int

	// NArgs encodes arity: 0 means "not a function", a positive value is
	// a fixed argument count, a negative value's magnitude is the
	// minimum argument count for a variadic function.
	NArgs int

	// Opcode is the instruction emitted for this symbol, or NULL if the
	// symbol contributes no instruction of its own (parentheses, comma,
	// unary +).
	Opcode Opcode
}

// Index constants identifying the two synthetic load entries. The
// scheduler tests pop-time symbol identity against these by index, so
// they must stay first and in this order.
const (
	SymLDVAR = 0
	SymLDCON = 1
)

// Table is the full, ordered, immutable symbol table. Lexing scans it in
// this order and selects the first entry whose text is a prefix match and
// whose operator-handedness/unary legality agrees with the walker's
// current state.
var Table = []Symbol{
	// Synthetic load entries.
	{Text: "", LeftPriority: 10, RightPriority: 10, StackIncrement: 1, Opcode: LDVAR},
	{Text: "", LeftPriority: 10, RightPriority: 10, StackIncrement: 1, Opcode: LDCON},

	// Parentheses.
	{Text: ")", OperLeft: true, LeftPriority: 2, RightPriority: 10, ParenIncrement: -1, Opcode: NULL},
	{Text: "(", OperRight: true, UnaryNext: true, LeftPriority: 10, RightPriority: 1, ParenIncrement: 1, Opcode: NULL},

	// Binary arithmetic operators.
	{Text: "-", OperLeft: true, OperRight: true, LeftPriority: 4, RightPriority: 4, StackIncrement: -1, Opcode: SUB},
	{Text: "+", OperLeft: true, OperRight: true, LeftPriority: 4, RightPriority: 4, StackIncrement: -1, Opcode: ADD},
	{Text: "**", OperLeft: true, OperRight: true, LeftPriority: 9, RightPriority: 6, StackIncrement: -1, Opcode: PWR},
	{Text: "*", OperLeft: true, OperRight: true, LeftPriority: 5, RightPriority: 5, StackIncrement: -1, Opcode: MUL},
	{Text: "/", OperLeft: true, OperRight: true, LeftPriority: 5, RightPriority: 5, StackIncrement: -1, Opcode: DIV},

	// Comma (argument separator).
	{Text: ",", OperLeft: true, OperRight: true, UnaryNext: true, LeftPriority: 2, RightPriority: 2, Opcode: NULL},

	// Unary sign.
	{Text: "-", OperRight: true, UnaryOper: true, LeftPriority: 8, RightPriority: 7, Opcode: NEG},
	{Text: "+", OperRight: true, UnaryOper: true, LeftPriority: 8, RightPriority: 7, Opcode: NULL},

	// Unary functions.
	{Text: "sqrt(", OperRight: true, UnaryNext: true, LeftPriority: 10, RightPriority: 1, ParenIncrement: 1, NArgs: 1, Opcode: SQRT},
	{Text: "log(", OperRight: true, UnaryNext: true, LeftPriority: 10, RightPriority: 1, ParenIncrement: 1, NArgs: 1, Opcode: LOG},
	{Text: "log10(", OperRight: true, UnaryNext: true, LeftPriority: 10, RightPriority: 1, ParenIncrement: 1, NArgs: 1, Opcode: LOG10},
	{Text: "exp(", OperRight: true, UnaryNext: true, LeftPriority: 10, RightPriority: 1, ParenIncrement: 1, NArgs: 1, Opcode: EXP},
	{Text: "sin(", OperRight: true, UnaryNext: true, LeftPriority: 10, RightPriority: 1, ParenIncrement: 1, NArgs: 1, Opcode: SIN},
	{Text: "cos(", OperRight: true, UnaryNext: true, LeftPriority: 10, RightPriority: 1, ParenIncrement: 1, NArgs: 1, Opcode: COS},
	{Text: "tan(", OperRight: true, UnaryNext: true, LeftPriority: 10, RightPriority: 1, ParenIncrement: 1, NArgs: 1, Opcode: TAN},
	{Text: "sind(", OperRight: true, UnaryNext: true, LeftPriority: 10, RightPriority: 1, ParenIncrement: 1, NArgs: 1, Opcode: SIND},
	{Text: "cosd(", OperRight: true, UnaryNext: true, LeftPriority: 10, RightPriority: 1, ParenIncrement: 1, NArgs: 1, Opcode: COSD},
	{Text: "tand(", OperRight: true, UnaryNext: true, LeftPriority: 10, RightPriority: 1, ParenIncrement: 1, NArgs: 1, Opcode: TAND},
	{Text: "asin(", OperRight: true, UnaryNext: true, LeftPriority: 10, RightPriority: 1, ParenIncrement: 1, NArgs: 1, Opcode: ASIN},
	{Text: "acos(", OperRight: true, UnaryNext: true, LeftPriority: 10, RightPriority: 1, ParenIncrement: 1, NArgs: 1, Opcode: ACOS},
	{Text: "atan(", OperRight: true, UnaryNext: true, LeftPriority: 10, RightPriority: 1, ParenIncrement: 1, NArgs: 1, Opcode: ATAN},
	{Text: "asind(", OperRight: true, UnaryNext: true, LeftPriority: 10, RightPriority: 1, ParenIncrement: 1, NArgs: 1, Opcode: ASIND},
	{Text: "acosd(", OperRight: true, UnaryNext: true, LeftPriority: 10, RightPriority: 1, ParenIncrement: 1, NArgs: 1, Opcode: ACOSD},
	{Text: "atand(", OperRight: true, UnaryNext: true, LeftPriority: 10, RightPriority: 1, ParenIncrement: 1, NArgs: 1, Opcode: ATAND},
	{Text: "sinh(", OperRight: true, UnaryNext: true, LeftPriority: 10, RightPriority: 1, ParenIncrement: 1, NArgs: 1, Opcode: SINH},
	{Text: "cosh(", OperRight: true, UnaryNext: true, LeftPriority: 10, RightPriority: 1, ParenIncrement: 1, NArgs: 1, Opcode: COSH},
	{Text: "tanh(", OperRight: true, UnaryNext: true, LeftPriority: 10, RightPriority: 1, ParenIncrement: 1, NArgs: 1, Opcode: TANH},
	{Text: "abs(", OperRight: true, UnaryNext: true, LeftPriority: 10, RightPriority: 1, ParenIncrement: 1, NArgs: 1, Opcode: ABS},
	{Text: "fabs(", OperRight: true, UnaryNext: true, LeftPriority: 10, RightPriority: 1, ParenIncrement: 1, NArgs: 1, Opcode: ABS},
	{Text: "ceil(", OperRight: true, UnaryNext: true, LeftPriority: 10, RightPriority: 1, ParenIncrement: 1, NArgs: 1, Opcode: CEIL},
	{Text: "floor(", OperRight: true, UnaryNext: true, LeftPriority: 10, RightPriority: 1, ParenIncrement: 1, NArgs: 1, Opcode: FLOOR},
	{Text: "nint(", OperRight: true, UnaryNext: true, LeftPriority: 10, RightPriority: 1, ParenIncrement: 1, NArgs: 1, Opcode: NINT},

	// Variadic functions (minimum 2 arguments).
	{Text: "min(", OperRight: true, UnaryNext: true, LeftPriority: 10, RightPriority: 1, ParenIncrement: 1, StackIncrement: -1, NArgs: -2, Opcode: MIN},
	{Text: "max(", OperRight: true, UnaryNext: true, LeftPriority: 10, RightPriority: 1, ParenIncrement: 1, StackIncrement: -1, NArgs: -2, Opcode: MAX},

	// Fixed 2-argument functions.
	{Text: "dim(", OperRight: true, UnaryNext: true, LeftPriority: 10, RightPriority: 1, ParenIncrement: 1, StackIncrement: -1, NArgs: 2, Opcode: DIM},
	{Text: "mod(", OperRight: true, UnaryNext: true, LeftPriority: 10, RightPriority: 1, ParenIncrement: 1, StackIncrement: -1, NArgs: 2, Opcode: MOD},
	{Text: "sign(", OperRight: true, UnaryNext: true, LeftPriority: 10, RightPriority: 1, ParenIncrement: 1, StackIncrement: -1, NArgs: 2, Opcode: SIGN},
	{Text: "atan2(", OperRight: true, UnaryNext: true, LeftPriority: 10, RightPriority: 1, ParenIncrement: 1, StackIncrement: -1, NArgs: 2, Opcode: ATAN2},
	{Text: "atan2d(", OperRight: true, UnaryNext: true, LeftPriority: 10, RightPriority: 1, ParenIncrement: 1, StackIncrement: -1, NArgs: 2, Opcode: ATAN2D},

	// BAD-value literal.
	{Text: "<bad>", LeftPriority: 10, RightPriority: 10, StackIncrement: 1, Opcode: LDBAD},
}
