package hcl

import (
	"github.com/hashicorp/hcl/v2"
)

// fileRoot decodes all top-level blocks of a trips file.
type fileRoot struct {
	Rates []*RatesBlock `hcl:"rates,block"`
	Trips []*TripBlock  `hcl:"trip,block"`
}

// RatesBlock overrides the per-diem amounts of one cost tier. Amounts are
// kept as raw expressions and decoded through cty so that numeric strings
// are accepted too.
type RatesBlock struct {
	Tier   string         `hcl:"tier,label"`
	Travel hcl.Expression `hcl:"travel"`
	Full   hcl.Expression `hcl:"full"`
}

// TripBlock is one trip. Cost accepts any command-line cost flag as well
// as the words "low" and "high".
type TripBlock struct {
	Name  string `hcl:"name,label"`
	Cost  string `hcl:"cost"`
	Start string `hcl:"start"`
	End   string `hcl:"end"`
}
