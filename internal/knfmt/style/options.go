package style

// AlignAfterOpenBracket values.
type AlignAfterOpenBracket int

const (
	Align AlignAfterOpenBracket = iota
	DontAlign
	AlwaysBreak
	BlockIndent
)

// AlignEscapedNewlines values.
type AlignEscapedNewlines int

const (
	EscapedNewlinesDontAlign AlignEscapedNewlines = iota
	EscapedNewlinesLeft
	EscapedNewlinesRight
)

// AlignOperands values.
type AlignOperands int

const (
	OperandsAlign AlignOperands = iota
	OperandsDontAlign
	OperandsAlignAfterOperator
)

// AlwaysBreakAfterReturnType values.
type AlwaysBreakAfterReturnType int

const (
	ReturnTypeNone AlwaysBreakAfterReturnType = iota
	ReturnTypeAll
	ReturnTypeTopLevel
	ReturnTypeAllDefinitions
	ReturnTypeTopLevelDefinitions
)

// BitFieldColonSpacing values.
type BitFieldColonSpacing int

const (
	BitFieldBoth BitFieldColonSpacing = iota
	BitFieldNone
	BitFieldBefore
	BitFieldAfter
)

// BreakBeforeBinaryOperators values.
type BreakBeforeBinaryOperators int

const (
	BreakBinaryNone BreakBeforeBinaryOperators = iota
	BreakBinaryNonAssignment
	BreakBinaryAll
)

// BreakBeforeBraces values.
type BreakBeforeBraces int

const (
	BracesAttach BreakBeforeBraces = iota
	BracesLinux
	BracesMozilla
	BracesStroustrup
	BracesAllman
	BracesWhitesmiths
	BracesGNU
	BracesWebKit
	BracesCustom
)

// AfterControlStatement values.
type AfterControlStatement int

const (
	ControlStatementNever AfterControlStatement = iota
	ControlStatementMultiLine
	ControlStatementAlways
)

// IncludeBlocks values.
type IncludeBlocks int

const (
	IncludeMerge IncludeBlocks = iota
	IncludePreserve
	IncludeRegroup
)

// SortIncludes values.
type SortIncludes int

const (
	SortNever SortIncludes = iota
	SortCaseSensitive
	SortCaseInsensitive
)

// UseTab values.
type UseTab int

const (
	TabNever UseTab = iota
	TabForIndentation
	TabForContinuationAndIndentation
	TabAlignWithSpaces
	TabAlways
)

var alignAfterOpenBracketNames = map[string]AlignAfterOpenBracket{
	"Align": Align, "DontAlign": DontAlign, "AlwaysBreak": AlwaysBreak, "BlockIndent": BlockIndent,
}

var alignEscapedNewlinesNames = map[string]AlignEscapedNewlines{
	"DontAlign": EscapedNewlinesDontAlign, "Left": EscapedNewlinesLeft, "Right": EscapedNewlinesRight,
}

var alignOperandsNames = map[string]AlignOperands{
	"Align": OperandsAlign, "DontAlign": OperandsDontAlign, "AlignAfterOperator": OperandsAlignAfterOperator,
	"true": OperandsAlign, "false": OperandsDontAlign,
}

var returnTypeNames = map[string]AlwaysBreakAfterReturnType{
	"None": ReturnTypeNone, "All": ReturnTypeAll, "TopLevel": ReturnTypeTopLevel,
	"AllDefinitions": ReturnTypeAllDefinitions, "TopLevelDefinitions": ReturnTypeTopLevelDefinitions,
}

var bitFieldNames = map[string]BitFieldColonSpacing{
	"Both": BitFieldBoth, "None": BitFieldNone, "Before": BitFieldBefore, "After": BitFieldAfter,
}

var breakBinaryNames = map[string]BreakBeforeBinaryOperators{
	"None": BreakBinaryNone, "NonAssignment": BreakBinaryNonAssignment, "All": BreakBinaryAll,
}

var bracesNames = map[string]BreakBeforeBraces{
	"Attach": BracesAttach, "Linux": BracesLinux, "Mozilla": BracesMozilla, "Stroustrup": BracesStroustrup,
	"Allman": BracesAllman, "Whitesmiths": BracesWhitesmiths, "GNU": BracesGNU, "WebKit": BracesWebKit,
	"Custom": BracesCustom,
}

var controlStatementNames = map[string]AfterControlStatement{
	"Never": ControlStatementNever, "MultiLine": ControlStatementMultiLine, "Always": ControlStatementAlways,
	"true": ControlStatementAlways, "false": ControlStatementNever,
}

var includeBlocksNames = map[string]IncludeBlocks{
	"Merge": IncludeMerge, "Preserve": IncludePreserve, "Regroup": IncludeRegroup,
}

var sortIncludesNames = map[string]SortIncludes{
	"Never": SortNever, "CaseSensitive": SortCaseSensitive, "CaseInsensitive": SortCaseInsensitive,
}

var useTabNames = map[string]UseTab{
	"Never": TabNever, "ForIndentation": TabForIndentation,
	"ForContinuationAndIndentation": TabForContinuationAndIndentation,
	"AlignWithSpaces":               TabAlignWithSpaces, "Always": TabAlways,
}

var baseStyleNames = map[string]bool{
	"LLVM": true, "Google": true, "Chromium": true, "Mozilla": true, "WebKit": true,
	"Microsoft": true, "GNU": true, "InheritParentConfig": true, "OpenBSD": true,
}
