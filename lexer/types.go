package lexer

// Class represents a set of bytes sharing a lexical role
type Class uint8

// List of byte classes
const (
	ClassInvalid     Class = iota
	ClassSpace             // Space, tab or newline: " \t\n"
	ClassOpenList          // Open parenthesis: "("
	ClassCloseList         // Close parenthesis: ")"
	ClassDoubleQuote       // Double quote: '"'
	ClassQuote             // Single quote: "'"
	ClassBackslash         // Backslash: "\"
	ClassDot               // Dot: "."
	ClassDigit             // Digits ([0-9])
	ClassSign              // Arithmetic sign: "+" or "-"
	ClassLetter            // Letters ([a-zA-Z])
	ClassPunct             // Punctuation allowed within symbols
	ClassNewLine           // Newline: "\n"
)

var classValues = map[Class][]byte{
	ClassSpace:       []byte(" \t\n"),
	ClassOpenList:    []byte{'('},
	ClassCloseList:   []byte{')'},
	ClassDoubleQuote: []byte{'"'},
	ClassQuote:       []byte{'\''},
	ClassBackslash:   []byte{'\\'},
	ClassDot:         []byte{'.'},
	ClassDigit:       []byte("0123456789"),
	ClassSign:        []byte("+-"),
	ClassLetter:      []byte("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"),
	ClassPunct:       []byte("!$%&*+-./:<=>?@^_~"),
	ClassNewLine:     []byte{'\n'},
}

var classNames = map[Class]string{
	ClassInvalid:     "invalid",
	ClassSpace:       "space",
	ClassOpenList:    "open_list",
	ClassCloseList:   "close_list",
	ClassDoubleQuote: "double_quote",
	ClassQuote:       "quote",
	ClassBackslash:   "backslash",
	ClassDot:         "dot",
	ClassDigit:       "digit",
	ClassSign:        "sign",
	ClassLetter:      "letter",
	ClassPunct:       "punct",
	ClassNewLine:     "newline",
}

func (c Class) String() string {
	if v, ok := classNames[c]; ok {
		return v
	}
	return classNames[ClassInvalid]
}

func isClass(c Class) func(b byte) bool {
	var table [256]bool
	for _, v := range classValues[c] {
		table[v] = true
	}
	return func(b byte) bool {
		return table[b]
	}
}

var (
	IsSpace       = isClass(ClassSpace)
	IsOpenList    = isClass(ClassOpenList)
	IsCloseList   = isClass(ClassCloseList)
	IsDoubleQuote = isClass(ClassDoubleQuote)
	IsQuote       = isClass(ClassQuote)
	IsBackslash   = isClass(ClassBackslash)
	IsDot         = isClass(ClassDot)
	IsDigit       = isClass(ClassDigit)
	IsSign        = isClass(ClassSign)
	IsNewLine     = isClass(ClassNewLine)

	isLetter = isClass(ClassLetter)
	isPunct  = isClass(ClassPunct)
)

// IsSymbolChar returns true if b may appear within a symbol
func IsSymbolChar(b byte) bool {
	return isLetter(b) || IsDigit(b) || isPunct(b)
}

// IsDelimiter returns true if b ends an integer or a symbol
func IsDelimiter(b byte) bool {
	return IsSpace(b) || IsOpenList(b) || IsCloseList(b)
}

// ClassOf returns the most specific class of b.
func ClassOf(b byte) Class {
	switch {
	case IsNewLine(b):
		return ClassNewLine
	case IsSpace(b):
		return ClassSpace
	case IsOpenList(b):
		return ClassOpenList
	case IsCloseList(b):
		return ClassCloseList
	case IsDoubleQuote(b):
		return ClassDoubleQuote
	case IsQuote(b):
		return ClassQuote
	case IsBackslash(b):
		return ClassBackslash
	case IsDot(b):
		return ClassDot
	case IsDigit(b):
		return ClassDigit
	case IsSign(b):
		return ClassSign
	case isLetter(b):
		return ClassLetter
	case isPunct(b):
		return ClassPunct
	}
	return ClassInvalid
}
