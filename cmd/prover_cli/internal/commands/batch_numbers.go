package commands

import (
	"strings"

	"github.com/NilFoundation/proverctl/services/proverstatus/public"
)

// BatchNumbers is a repeatable flag value, every occurrence may hold a comma separated list.
type BatchNumbers []public.L1BatchNumber

func (b *BatchNumbers) String() string {
	parts := make([]string, 0, len(*b))
	for _, batch := range *b {
		parts = append(parts, batch.String())
	}
	return strings.Join(parts, ",")
}

func (b *BatchNumbers) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		batch, err := public.ParseL1BatchNumber(strings.TrimSpace(part))
		if err != nil {
			return err
		}
		*b = append(*b, batch)
	}
	return nil
}

func (*BatchNumbers) Type() string {
	return "batchNumbers"
}
