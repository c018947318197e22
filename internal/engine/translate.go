package engine

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/numo-sh/numo/internal/provider"
	"github.com/numo-sh/numo/pkg/expr"
	"github.com/numo-sh/numo/pkg/lang"
)

// translatePattern matches "<phrase> in <language>". The language is a
// single word (letters and hyphens); the phrase is everything before the
// last "in".
var translatePattern = regexp.MustCompile(`(?i)^(.+?)\s+in\s+([a-zA-Z-]+)$`)

// TranslateResolver handles "<phrase> in <language>". Its grammar is the
// loosest of the chain, so it runs last. The resolver commits only when the
// trailing word names a known language; the provider's output is opaque
// text passed through unchanged.
type TranslateResolver struct {
	Translator provider.Translator
}

func (TranslateResolver) Name() string { return "translate" }

func (r TranslateResolver) Resolve(ctx context.Context, line Line, _ *expr.Env) Resolution {
	m := translatePattern.FindStringSubmatch(line.Raw)
	if m == nil {
		return notApplicable()
	}

	phrase := strings.TrimSpace(m[1])
	if phrase == "" {
		return notApplicable()
	}

	code, ok := lang.Code(m[2])
	if !ok {
		// Not a language we know: leave the input to the no-match
		// outcome rather than swallowing it.
		return notApplicable()
	}

	translated, err := r.Translator.Translate(ctx, phrase, code)
	if err != nil {
		return failed(fmt.Errorf("%w: %v", errTranslateUnavailable, err))
	}

	return matched(translated)
}
