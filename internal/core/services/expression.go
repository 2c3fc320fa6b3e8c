package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/keypad-cli/internal/core/domain"
	"github.com/custodia-labs/keypad-cli/internal/core/ports/driving"
)

// displayOperators maps the display glyphs back onto their keys so a
// result copied off the screen can be typed again.
var displayOperators = strings.NewReplacer(domain.GlyphTimes, "*", domain.GlyphDivide, "/")

// ExpressionKeys breaks expression into the keys that type it under
// profile p. Whitespace is ignored. A character with no key fails with
// domain.ErrUnknownKey.
func ExpressionKeys(expression string, p domain.Profile) ([]string, error) {
	keys := domain.SplitKeys(displayOperators.Replace(expression))
	for _, k := range keys {
		if _, ok := domain.KeyIntent(k, p); !ok {
			return nil, fmt.Errorf("%w: %q on %s keypad", domain.ErrUnknownKey, k, p.Name)
		}
	}
	return keys, nil
}

// TypeExpression clears c, types expression key by key and evaluates it.
// Nothing is pressed when the expression contains an unknown key.
func TypeExpression(ctx context.Context, c driving.Calculator, expression string) (domain.State, error) {
	keys, err := ExpressionKeys(expression, c.Profile())
	if err != nil {
		return c.State(), err
	}

	if _, err := c.Apply(ctx, domain.Clear()); err != nil {
		return c.State(), err
	}
	return c.Replay(ctx, append(keys, domain.KeyEnter))
}
