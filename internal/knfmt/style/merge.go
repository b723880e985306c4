package style

import (
	"fmt"
	"regexp"

	"gopkg.in/yaml.v3"
)

func unmarshalInto(raw []byte, dst *map[string]interface{}) error {
	return yaml.Unmarshal(raw, dst)
}

// mergeDocument applies one decoded YAML document's keys onto st,
// returning non-fatal errors for anything unrecognized rather than
// aborting the merge. depth tracks BasedOnStyle nesting so a config
// chaining through more than one upstream base is rejected per
// original_source/style.c's single-level restriction.
func mergeDocument(st *Style, m map[string]interface{}, fetch Fetcher, depth int) []error {
	var errs []error

	if v, ok := m["BasedOnStyle"]; ok {
		name, ok := v.(string)
		if !ok || !baseStyleNames[name] {
			errs = append(errs, fmt.Errorf("BasedOnStyle: unrecognized value %v", v))
		} else {
			switch name {
			case "OpenBSD":
				// OpenBSD short-circuits the external provider: it is
				// exactly this package's Defaults().
			case "InheritParentConfig":
				// Nothing to merge; parent config (if any) already
				// applied by the caller before this document.
			default:
				if depth > 0 {
					errs = append(errs, fmt.Errorf("BasedOnStyle: %s: nested deeper than one level", name))
				} else if fetch == nil {
					errs = append(errs, fmt.Errorf("BasedOnStyle: %s: no upstream fetcher configured", name))
				} else if raw, err := fetch(name); err != nil {
					errs = append(errs, fmt.Errorf("BasedOnStyle: %s: %w", name, err))
				} else {
					var base map[string]interface{}
					if err := unmarshalInto(raw, &base); err != nil {
						errs = append(errs, fmt.Errorf("BasedOnStyle: %s: %w", name, err))
					} else {
						errs = append(errs, mergeDocument(st, base, fetch, depth+1)...)
					}
				}
			}
		}
	}

	for key, v := range m {
		if key == "BasedOnStyle" || key == "Language" {
			continue
		}
		if err := applyKey(st, key, v); err != nil {
			errs = append(errs, err)
			continue
		}
		st.markSet(key)
	}
	return errs
}

func applyKey(st *Style, key string, v interface{}) error {
	switch key {
	case "AlignAfterOpenBracket":
		return applyEnum(key, v, alignAfterOpenBracketNames, &st.AlignAfterOpenBracket)
	case "AlignEscapedNewlines":
		return applyEnum(key, v, alignEscapedNewlinesNames, &st.AlignEscapedNewlines)
	case "AlignOperands":
		return applyEnum(key, v, alignOperandsNames, &st.AlignOperands)
	case "AlwaysBreakAfterReturnType":
		return applyEnum(key, v, returnTypeNames, &st.AlwaysBreakAfterReturnType)
	case "BitFieldColonSpacing":
		return applyEnum(key, v, bitFieldNames, &st.BitFieldColonSpacing)
	case "BreakBeforeBinaryOperators":
		return applyEnum(key, v, breakBinaryNames, &st.BreakBeforeBinaryOperators)
	case "BreakBeforeBraces":
		return applyEnum(key, v, bracesNames, &st.BreakBeforeBraces)
	case "BreakBeforeTernaryOperators":
		return applyBool(key, v, &st.BreakBeforeTernaryOperators)
	case "ColumnLimit":
		return applyInt(key, v, &st.ColumnLimit, false)
	case "ContinuationIndentWidth":
		return applyInt(key, v, &st.ContinuationIndentWidth, false)
	case "IncludeBlocks":
		return applyEnum(key, v, includeBlocksNames, &st.IncludeBlocks)
	case "IncludeCategories":
		return applyCategories(st, v)
	case "IncludeGuards":
		return applyInt(key, v, &st.IncludeGuards, true)
	case "IndentWidth":
		return applyInt(key, v, &st.IndentWidth, false)
	case "SortIncludes":
		return applyEnum(key, v, sortIncludesNames, &st.SortIncludes)
	case "UseTab":
		return applyEnum(key, v, useTabNames, &st.UseTab)
	case "BraceWrapping":
		return applyBraceWrapping(st, v)
	default:
		return fmt.Errorf("unknown style key %q", key)
	}
}

func applyEnum[E ~int](key string, v interface{}, table map[string]E, dst *E) error {
	s, ok := v.(string)
	if !ok {
		return fmt.Errorf("%s: expected a string value, got %T", key, v)
	}
	e, ok := table[s]
	if !ok {
		return fmt.Errorf("%s: unrecognized value %q", key, s)
	}
	*dst = e
	return nil
}

func applyBool(key string, v interface{}, dst *bool) error {
	b, ok := v.(bool)
	if !ok {
		return fmt.Errorf("%s: expected a boolean value, got %T", key, v)
	}
	*dst = b
	return nil
}

func applyInt(key string, v interface{}, dst *int, positiveOnly bool) error {
	var n int
	switch t := v.(type) {
	case int:
		n = t
	case int64:
		if t > int64(^uint32(0)>>1) || t < -int64(^uint32(0)>>1)-1 {
			return fmt.Errorf("%s: value %d overflows", key, t)
		}
		n = int(t)
	default:
		return fmt.Errorf("%s: expected an integer value, got %T", key, v)
	}
	if positiveOnly && n <= 0 {
		return fmt.Errorf("%s: must be a positive integer, got %d", key, n)
	}
	*dst = n
	return nil
}

func applyBraceWrapping(st *Style, v interface{}) error {
	m, ok := v.(map[string]interface{})
	if !ok {
		return fmt.Errorf("BraceWrapping: expected a mapping, got %T", v)
	}
	bw := &st.BraceWrapping
	for k, val := range m {
		var err error
		switch k {
		case "AfterCaseLabel":
			err = applyBool(k, val, &bw.AfterCaseLabel)
		case "AfterClass":
			err = applyBool(k, val, &bw.AfterClass)
		case "AfterControlStatement":
			err = applyEnum(k, val, controlStatementNames, &bw.AfterControlStatement)
		case "AfterEnum":
			err = applyBool(k, val, &bw.AfterEnum)
		case "AfterExternBlock":
			err = applyBool(k, val, &bw.AfterExternBlock)
		case "AfterFunction":
			err = applyBool(k, val, &bw.AfterFunction)
		case "AfterNamespace":
			err = applyBool(k, val, &bw.AfterNamespace)
		case "AfterObjCDeclaration":
			err = applyBool(k, val, &bw.AfterObjCDeclaration)
		case "AfterStruct":
			err = applyBool(k, val, &bw.AfterStruct)
		case "AfterUnion":
			err = applyBool(k, val, &bw.AfterUnion)
		case "BeforeCatch":
			err = applyBool(k, val, &bw.BeforeCatch)
		case "BeforeElse":
			err = applyBool(k, val, &bw.BeforeElse)
		case "BeforeLambdaBody":
			err = applyBool(k, val, &bw.BeforeLambdaBody)
		case "BeforeWhile":
			err = applyBool(k, val, &bw.BeforeWhile)
		case "IndentBraces":
			err = applyBool(k, val, &bw.IndentBraces)
		case "SplitEmptyFunction":
			err = applyBool(k, val, &bw.SplitEmptyFunction)
		case "SplitEmptyNamespace":
			err = applyBool(k, val, &bw.SplitEmptyNamespace)
		case "SplitEmptyRecord":
			err = applyBool(k, val, &bw.SplitEmptyRecord)
		default:
			err = fmt.Errorf("BraceWrapping.%s: unknown key", k)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func applyCategories(st *Style, v interface{}) error {
	seq, ok := v.([]interface{})
	if !ok {
		return fmt.Errorf("IncludeCategories: expected a sequence, got %T", v)
	}
	var cats []Category
	for i, item := range seq {
		m, ok := item.(map[string]interface{})
		if !ok {
			return fmt.Errorf("IncludeCategories[%d]: expected a mapping, got %T", i, item)
		}
		var c Category
		reStr, _ := m["Regex"].(string)
		re, err := regexp.Compile(reStr)
		if err != nil {
			return fmt.Errorf("IncludeCategories[%d].Regex: %w", i, err)
		}
		c.Regex = re
		if p, ok := m["Priority"]; ok {
			if err := applyInt("IncludeCategories[].Priority", p, &c.Priority, false); err != nil {
				return err
			}
		}
		if p, ok := m["SortPriority"]; ok {
			if err := applyInt("IncludeCategories[].SortPriority", p, &c.SortPriority, false); err != nil {
				return err
			}
		} else {
			c.SortPriority = c.Priority
		}
		if cs, ok := m["CaseSensitive"]; ok {
			if err := applyBool("IncludeCategories[].CaseSensitive", cs, &c.CaseSensitive); err != nil {
				return err
			}
		}
		cats = append(cats, c)
	}
	st.IncludeCategories = cats
	return nil
}
