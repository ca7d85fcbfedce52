package api

import (
	"context"
	"encoding/json"
	"golang.org/x/sync/errgroup"
	"nodeclient-adapter/types"
)

// MaxBlockSpan is the largest number of heights GetBlocks fetches in one
// call. Wider ranges are rejected without any request.
const MaxBlockSpan = 10000

// GetBlocks fetches every block in [begin, end] concurrently and returns the
// bodies of those that were found, in ascending height order. Heights that
// fail are skipped.
func (c *Client) GetBlocks(ctx context.Context, begin, end int64) []json.RawMessage {
	if begin > end {
		return []json.RawMessage{}
	}
	//end-begin is negative when the subtraction overflows
	span := end - begin
	if span < 0 || span >= MaxBlockSpan {
		c.log.Warn().
			Int64("begin", begin).
			Int64("end", end).
			Int("max", MaxBlockSpan).
			Msg("block range too wide, not fetching")
		return []json.RawMessage{}
	}

	results := make([]types.Result, span+1)
	var g errgroup.Group
	for i := range results {
		i := i
		g.Go(func() error {
			results[i] = c.GetBlockByHeight(ctx, begin+int64(i))
			return nil
		})
	}
	//per height failures live in results, not in the group
	_ = g.Wait()

	blocks := make([]json.RawMessage, 0, len(results))
	for _, res := range results {
		if res.Truthy() {
			blocks = append(blocks, res.Body())
		}
	}
	c.log.Debug().
		Int64("begin", begin).
		Int64("end", end).
		Int("found", len(blocks)).
		Msg("fetched block range")
	return blocks
}
