package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/perdiem/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// decodeAmount evaluates a rate expression and decodes it into a whole,
// non-negative amount.
func decodeAmount(ctx context.Context, expr hcl.Expression, name string) (int, error) {
	logger := ctxlog.FromContext(ctx)

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return 0, fmt.Errorf("evaluating %q: %w", name, diags)
	}
	if val.IsNull() || !val.IsKnown() {
		return 0, fmt.Errorf("%q must be a number", name)
	}

	converted, err := convert.Convert(val, cty.Number)
	if err != nil {
		return 0, fmt.Errorf("cannot convert %q from %s to number: %w", name, val.Type().FriendlyName(), err)
	}
	if !val.Type().Equals(converted.Type()) {
		logger.Debug("Implicitly converted rate value.",
			"attribute", name,
			"from", val.Type().FriendlyName(),
			"to", converted.Type().FriendlyName(),
		)
	}

	var amount int
	if err := gocty.FromCtyValue(converted, &amount); err != nil {
		return 0, fmt.Errorf("%q: %w", name, err)
	}
	if amount < 0 {
		return 0, fmt.Errorf("%q must not be negative, got %d", name, amount)
	}
	return amount, nil
}
