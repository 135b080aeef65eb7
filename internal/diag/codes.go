package diag

import "fmt"

// Code identifies a diagnostic kind. Ranges: 1000 lexical, 2000
// preprocessor, 3000 syntax, 9000 internal.
type Code uint16

const (
	UnknownCode Code = 0

	// lexical
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedChar         Code = 1003
	LexUnterminatedBlockComment Code = 1004
	LexInvalidHexLiteral        Code = 1005
	LexInvalidBinaryLiteral     Code = 1006
	LexInvalidEscape            Code = 1007

	// preprocessor
	PreMissingArgument   Code = 2001
	PreUnknownTag        Code = 2002
	PreUnmatchedElse     Code = 2003
	PreUnmatchedEndif    Code = 2004
	PreElseAfterElse     Code = 2005
	PreUnclosedCondition Code = 2006

	// syntax
	SynExpectedIdentifier    Code = 3001
	SynExpectedOperator      Code = 3002
	SynExpectedExpression    Code = 3003
	SynExpectedStatement     Code = 3004
	SynExpectedType          Code = 3005
	SynExpectedParameter     Code = 3006
	SynExpectedBlock         Code = 3007
	SynMissingSemicolon      Code = 3008
	SynUnnecessarySemicolon  Code = 3009
	SynEmptyStatement        Code = 3010
	SynModifierNotAllowed    Code = 3011
	SynDefaultValueOrder     Code = 3012
	SynDefaultValueForbidden Code = 3013
	SynThisParameterPosition Code = 3014
	SynTypeNotAllowed        Code = 3015
	SynEmptyTemplate         Code = 3016
	SynModifierWithoutValue  Code = 3017
	SynUnexpectedToken       Code = 3018
	SynExpressionStatement   Code = 3019
	SynDuplicateModifier     Code = 3020

	// internal
	InternalError Code = 9001
)

var codeNames = map[Code]string{
	UnknownCode: "Unknown",

	LexUnknownChar:              "LexUnknownChar",
	LexUnterminatedString:       "LexUnterminatedString",
	LexUnterminatedChar:         "LexUnterminatedChar",
	LexUnterminatedBlockComment: "LexUnterminatedBlockComment",
	LexInvalidHexLiteral:        "LexInvalidHexLiteral",
	LexInvalidBinaryLiteral:     "LexInvalidBinaryLiteral",
	LexInvalidEscape:            "LexInvalidEscape",

	PreMissingArgument:   "PreMissingArgument",
	PreUnknownTag:        "PreUnknownTag",
	PreUnmatchedElse:     "PreUnmatchedElse",
	PreUnmatchedEndif:    "PreUnmatchedEndif",
	PreElseAfterElse:     "PreElseAfterElse",
	PreUnclosedCondition: "PreUnclosedCondition",

	SynExpectedIdentifier:    "SynExpectedIdentifier",
	SynExpectedOperator:      "SynExpectedOperator",
	SynExpectedExpression:    "SynExpectedExpression",
	SynExpectedStatement:     "SynExpectedStatement",
	SynExpectedType:          "SynExpectedType",
	SynExpectedParameter:     "SynExpectedParameter",
	SynExpectedBlock:         "SynExpectedBlock",
	SynMissingSemicolon:      "SynMissingSemicolon",
	SynUnnecessarySemicolon:  "SynUnnecessarySemicolon",
	SynEmptyStatement:        "SynEmptyStatement",
	SynModifierNotAllowed:    "SynModifierNotAllowed",
	SynDefaultValueOrder:     "SynDefaultValueOrder",
	SynDefaultValueForbidden: "SynDefaultValueForbidden",
	SynThisParameterPosition: "SynThisParameterPosition",
	SynTypeNotAllowed:        "SynTypeNotAllowed",
	SynEmptyTemplate:         "SynEmptyTemplate",
	SynModifierWithoutValue:  "SynModifierWithoutValue",
	SynUnexpectedToken:       "SynUnexpectedToken",
	SynExpressionStatement:   "SynExpressionStatement",
	SynDuplicateModifier:     "SynDuplicateModifier",

	InternalError: "InternalError",
}

// Name returns the symbolic name of the code.
func (c Code) Name() string {
	if n, ok := codeNames[c]; ok {
		return n
	}
	return "Unknown"
}

// ID returns the stable wire identity, e.g. "EMB3004".
func (c Code) ID() string {
	return fmt.Sprintf("EMB%04d", uint16(c))
}

func (c Code) String() string {
	return c.ID()
}
