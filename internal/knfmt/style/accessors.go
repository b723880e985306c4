package style

// Option returns the resolved value for a recognized configuration key
// as an untyped interface{}, for callers (diagnostics, tracing) that
// want to report a value generically rather than through one of the
// typed fields directly.
func (st *Style) Option(key string) interface{} {
	switch key {
	case "AlignAfterOpenBracket":
		return st.AlignAfterOpenBracket
	case "AlignEscapedNewlines":
		return st.AlignEscapedNewlines
	case "AlignOperands":
		return st.AlignOperands
	case "AlwaysBreakAfterReturnType":
		return st.AlwaysBreakAfterReturnType
	case "BitFieldColonSpacing":
		return st.BitFieldColonSpacing
	case "BreakBeforeBinaryOperators":
		return st.BreakBeforeBinaryOperators
	case "BreakBeforeBraces":
		return st.BreakBeforeBraces
	case "BreakBeforeTernaryOperators":
		return st.BreakBeforeTernaryOperators
	case "ColumnLimit":
		return st.ColumnLimit
	case "ContinuationIndentWidth":
		return st.ContinuationIndentWidth
	case "IncludeBlocks":
		return st.IncludeBlocks
	case "IncludeCategories":
		return st.IncludeCategories
	case "IncludeGuards":
		return st.IncludeGuards
	case "IndentWidth":
		return st.IndentWidth
	case "SortIncludes":
		return st.SortIncludes
	case "UseTab":
		return st.UseTab
	default:
		return nil
	}
}

// BraceWrappingAfter reports the boolean BraceWrapping.AfterX sub-key
// named by key, consulted only when BreakBeforeBraces is Custom.
func (st *Style) BraceWrappingAfter(key string) bool {
	bw := st.BraceWrapping
	switch key {
	case "AfterCaseLabel":
		return bw.AfterCaseLabel
	case "AfterClass":
		return bw.AfterClass
	case "AfterEnum":
		return bw.AfterEnum
	case "AfterExternBlock":
		return bw.AfterExternBlock
	case "AfterFunction":
		return bw.AfterFunction
	case "AfterNamespace":
		return bw.AfterNamespace
	case "AfterObjCDeclaration":
		return bw.AfterObjCDeclaration
	case "AfterStruct":
		return bw.AfterStruct
	case "AfterUnion":
		return bw.AfterUnion
	case "BeforeCatch":
		return bw.BeforeCatch
	case "BeforeElse":
		return bw.BeforeElse
	case "BeforeLambdaBody":
		return bw.BeforeLambdaBody
	case "BeforeWhile":
		return bw.BeforeWhile
	case "IndentBraces":
		return bw.IndentBraces
	case "SplitEmptyFunction":
		return bw.SplitEmptyFunction
	case "SplitEmptyNamespace":
		return bw.SplitEmptyNamespace
	case "SplitEmptyRecord":
		return bw.SplitEmptyRecord
	default:
		return false
	}
}

// ColumnLimitOrUnlimited returns st.ColumnLimit, or the given fallback
// when ColumnLimit is 0 (meaning unlimited).
func (st *Style) ColumnLimitOrUnlimited(fallback int) int {
	if st.ColumnLimit == 0 {
		return fallback
	}
	return st.ColumnLimit
}
