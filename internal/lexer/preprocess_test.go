package lexer_test

import (
	"strings"
	"testing"

	"ember/internal/diag"
	"ember/internal/token"
)

// identContents returns the contents of significant identifier tokens.
func identContents(toks []token.Token) []string {
	var out []string
	for _, t := range toks {
		if t.Kind == token.Identifier {
			out = append(out, t.Content)
		}
	}
	return out
}

const featureInput = `#if FEATURE
int f() {}
#else
int g() {}
#endif
`

func TestIfDefined(t *testing.T) {
	toks, bag := tokenizeString(featureInput, "FEATURE")
	if bag.Len() != 0 {
		t.Fatalf("diagnostics: %v", bag.Items())
	}
	ids := identContents(toks)
	if !contains(ids, "f") || contains(ids, "g") {
		t.Fatalf("identifiers = %v", ids)
	}
}

func TestIfUndefined(t *testing.T) {
	toks, bag := tokenizeString(featureInput)
	if bag.Len() != 0 {
		t.Fatalf("diagnostics: %v", bag.Items())
	}
	ids := identContents(toks)
	if contains(ids, "f") || !contains(ids, "g") {
		t.Fatalf("identifiers = %v", ids)
	}
}

func TestSkippedTokensArePreserved(t *testing.T) {
	toks, _ := tokenizeString(featureInput)
	var skipped []string
	for _, tok := range toks {
		if tok.Kind == token.PreprocessSkipped {
			skipped = append(skipped, tok.Content)
		}
	}
	// the inactive branch's tokens are retyped, not removed
	joined := strings.Join(skipped, "")
	if !strings.Contains(joined, "f") {
		t.Fatalf("skipped tokens = %v", skipped)
	}
}

func TestElseifChain(t *testing.T) {
	input := `#if A
one
#elseif B
two
#elseif C
three
#else
four
#endif
`
	tests := []struct {
		defines []string
		want    string
	}{
		{[]string{"A"}, "one"},
		{[]string{"B"}, "two"},
		{[]string{"C"}, "three"},
		{nil, "four"},
		{[]string{"A", "B"}, "one"}, // first match wins
	}
	for _, tt := range tests {
		toks, bag := tokenizeString(input, tt.defines...)
		if bag.HasErrors() {
			t.Fatalf("defines %v: %v", tt.defines, bag.Items())
		}
		ids := identContents(toks)
		if len(ids) != 1 || ids[0] != tt.want {
			t.Errorf("defines %v: identifiers = %v, want [%s]", tt.defines, ids, tt.want)
		}
	}
}

func TestNestedConditions(t *testing.T) {
	input := `#if OUTER
#if INNER
both
#endif
outer_only
#endif
`
	toks, _ := tokenizeString(input, "OUTER")
	ids := identContents(toks)
	if contains(ids, "both") || !contains(ids, "outer_only") {
		t.Fatalf("identifiers = %v", ids)
	}

	toks, _ = tokenizeString(input, "OUTER", "INNER")
	ids = identContents(toks)
	if !contains(ids, "both") || !contains(ids, "outer_only") {
		t.Fatalf("identifiers = %v", ids)
	}

	// nothing survives when the outer condition fails
	toks, _ = tokenizeString(input, "INNER")
	if ids := identContents(toks); len(ids) != 0 {
		t.Fatalf("identifiers = %v, want none", ids)
	}
}

func TestDefineUndefine(t *testing.T) {
	input := `#define X
#if X
yes
#endif
#undefine X
#if X
no
#endif
`
	toks, bag := tokenizeString(input)
	if bag.HasErrors() {
		t.Fatalf("diagnostics: %v", bag.Items())
	}
	ids := identContents(toks)
	if !contains(ids, "yes") || contains(ids, "no") {
		t.Fatalf("identifiers = %v", ids)
	}
}

func TestDefineInsideSkippedRegionIsInert(t *testing.T) {
	input := `#if MISSING
#define X
#endif
#if X
leaked
#endif
`
	toks, _ := tokenizeString(input)
	if ids := identContents(toks); contains(ids, "leaked") {
		t.Fatalf("identifiers = %v; #define must not apply while skipping", ids)
	}
}

func TestDirectiveErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  diag.Code
	}{
		{"missing if argument", "#if\n", diag.PreMissingArgument},
		{"missing define argument", "#define\n", diag.PreMissingArgument},
		{"else without if", "#else\n", diag.PreUnmatchedElse},
		{"elseif without if", "#elseif X\n", diag.PreUnmatchedElse},
		{"endif without if", "#endif\n", diag.PreUnmatchedEndif},
		{"else after else", "#if A\n#else\n#else\n#endif\n", diag.PreElseAfterElse},
		{"elseif after else", "#if A\n#else\n#elseif B\n#endif\n", diag.PreElseAfterElse},
		{"unknown tag", "#banana\n", diag.PreUnknownTag},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, bag := tokenizeString(tt.input)
			found := false
			for _, d := range bag.Items() {
				if d.Code == tt.code {
					found = true
				}
			}
			if !found {
				t.Fatalf("expected code %v, got %v", tt.code, bag.Items())
			}
		})
	}
}

func TestUnclosedIfWarns(t *testing.T) {
	_, bag := tokenizeString("#if X\nint a;\n")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.PreUnclosedCondition && d.Severity == diag.SevWarning {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected unclosed-condition warning, got %v", bag.Items())
	}
}

func TestDirectiveTokensKeepKindsAtBoundaries(t *testing.T) {
	toks, _ := tokenizeString(featureInput)
	// the #if that opens the (inactive) region and the #endif that closes
	// it stay directive tokens; only the interior is retyped
	var directives []string
	for _, tok := range toks {
		if tok.Kind == token.PreprocessIdentifier {
			directives = append(directives, tok.Content)
		}
	}
	if !contains(directives, "#if") || !contains(directives, "#endif") {
		t.Fatalf("directives = %v", directives)
	}
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
