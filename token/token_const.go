package token

const (
	Undetermined Kind = iota

	Eof

	String
	Number

	Plus      // +
	Minus     // -
	Multiply  // *
	Slash     // /
	Remainder // %

	And                // &
	Or                 // |
	ExclusiveOr        // ^
	ShiftLeft          // <<
	ShiftRight         // >>
	UnsignedShiftRight // >>>

	AddAssign       // +=
	SubtractAssign  // -=
	MultiplyAssign  // *=
	QuotientAssign  // /=
	RemainderAssign // %=

	AndAssign                // &=
	OrAssign                 // |=
	ExclusiveOrAssign        // ^=
	ShiftLeftAssign          // <<=
	ShiftRightAssign         // >>=
	UnsignedShiftRightAssign // >>>=

	LogicalAnd // &&
	LogicalOr  // ||
	Increment  // ++
	Decrement  // --

	Equal   // ==
	Less    // <
	Greater // >
	Assign  // =
	Not     // !

	BitwiseNot // ~

	NotEqual       // !=
	LessOrEqual    // <=
	GreaterOrEqual // >=

	LeftParenthesis // (
	LeftBracket     // [
	LeftBrace       // {
	Comma           // ,
	Period          // .

	RightParenthesis // )
	RightBracket     // ]
	RightBrace       // }
	Semicolon        // ;
	Colon            // :
	QuestionMark     // ?
	Backslash        // \

	Identifier
	Keyword
	Boolean
	Null
	Undefined

	If
	In

	Var
	For
	New

	This
	Else
	Void
	With

	While
	Break

	Return
	Typeof
	Delete

	Function
	Continue
)

var kind2string = [...]string{
	Eof:                      "Eof",
	Keyword:                  "Keyword",
	String:                   "String",
	Boolean:                  "Boolean",
	Null:                     "Null",
	Undefined:                "Undefined",
	Number:                   "Number",
	Identifier:               "Identifier",
	Plus:                     "+",
	Minus:                    "-",
	Multiply:                 "*",
	Slash:                    "/",
	Remainder:                "%",
	And:                      "&",
	Or:                       "|",
	ExclusiveOr:              "^",
	ShiftLeft:                "<<",
	ShiftRight:               ">>",
	UnsignedShiftRight:       ">>>",
	AddAssign:                "+=",
	SubtractAssign:           "-=",
	MultiplyAssign:           "*=",
	QuotientAssign:           "/=",
	RemainderAssign:          "%=",
	AndAssign:                "&=",
	OrAssign:                 "|=",
	ExclusiveOrAssign:        "^=",
	ShiftLeftAssign:          "<<=",
	ShiftRightAssign:         ">>=",
	UnsignedShiftRightAssign: ">>>=",
	LogicalAnd:               "&&",
	LogicalOr:                "||",
	Increment:                "++",
	Decrement:                "--",
	Equal:                    "==",
	Less:                     "<",
	Greater:                  ">",
	Assign:                   "=",
	Not:                      "!",
	BitwiseNot:               "~",
	NotEqual:                 "!=",
	LessOrEqual:              "<=",
	GreaterOrEqual:           ">=",
	LeftParenthesis:          "(",
	LeftBracket:              "[",
	LeftBrace:                "{",
	Comma:                    ",",
	Period:                   ".",
	RightParenthesis:         ")",
	RightBracket:             "]",
	RightBrace:               "}",
	Semicolon:                ";",
	Colon:                    ":",
	QuestionMark:             "?",
	Backslash:                "\\",
	If:                       "if",
	In:                       "in",
	Var:                      "var",
	For:                      "for",
	New:                      "new",
	This:                     "this",
	Else:                     "else",
	Void:                     "void",
	With:                     "with",
	While:                    "while",
	Break:                    "break",
	Return:                   "return",
	Typeof:                   "typeof",
	Delete:                   "delete",
	Function:                 "function",
	Continue:                 "continue",
}

var keywordTable = map[string]keyword{
	"if": {
		kind: If,
	},
	"in": {
		kind: In,
	},
	"var": {
		kind: Var,
	},
	"for": {
		kind: For,
	},
	"new": {
		kind: New,
	},
	"this": {
		kind: This,
	},
	"else": {
		kind: Else,
	},
	"void": {
		kind: Void,
	},
	"with": {
		kind: With,
	},
	"while": {
		kind: While,
	},
	"break": {
		kind: Break,
	},
	"return": {
		kind: Return,
	},
	"typeof": {
		kind: Typeof,
	},
	"delete": {
		kind: Delete,
	},
	"function": {
		kind: Function,
	},
	"continue": {
		kind: Continue,
	},
	"true": {
		kind: Boolean,
	},
	"false": {
		kind: Boolean,
	},
	"null": {
		kind: Null,
	},
	"undefined": {
		kind: Undefined,
	},
	"case": {
		kind:          Keyword,
		futureKeyword: true,
	},
	"catch": {
		kind:          Keyword,
		futureKeyword: true,
	},
	"class": {
		kind:          Keyword,
		futureKeyword: true,
	},
	"const": {
		kind:          Keyword,
		futureKeyword: true,
	},
	"debugger": {
		kind:          Keyword,
		futureKeyword: true,
	},
	"default": {
		kind:          Keyword,
		futureKeyword: true,
	},
	"do": {
		kind:          Keyword,
		futureKeyword: true,
	},
	"enum": {
		kind:          Keyword,
		futureKeyword: true,
	},
	"export": {
		kind:          Keyword,
		futureKeyword: true,
	},
	"extends": {
		kind:          Keyword,
		futureKeyword: true,
	},
	"finally": {
		kind:          Keyword,
		futureKeyword: true,
	},
	"import": {
		kind:          Keyword,
		futureKeyword: true,
	},
	"super": {
		kind:          Keyword,
		futureKeyword: true,
	},
	"switch": {
		kind:          Keyword,
		futureKeyword: true,
	},
	"throw": {
		kind:          Keyword,
		futureKeyword: true,
	},
	"try": {
		kind:          Keyword,
		futureKeyword: true,
	},
}
