package cchub

import (
	"context"
	"encoding/json"
	"fmt"
)

// fetchAllPageSize is the page size the aggregator always requests,
// overriding any caller-supplied Take.
const fetchAllPageSize = 100

// Result accumulates the pages of one fetch-all walk. PageErrors and
// StatusCodes hold one entry per successfully parsed page, in page
// order. Completed is false when the walk stopped early on a transport
// failure or a non-200 page; whatever was accumulated up to that point
// is still returned.
type Result struct {
	Records     []json.RawMessage
	Total       int
	PageErrors  [][]json.RawMessage
	StatusCodes []int
	Completed   bool
}

// FetchAll walks every page of a model's listing and merges them into
// one Result. Pages are fetched sequentially, 100 records at a time,
// until the total reported on the first page is exhausted.
//
// The cursor always advances by the full page size and the walk
// continues while total > position, matching the server's paging
// contract; a server that returned short non-final pages would be
// desynchronized either way.
//
// Transport failures and non-200 pages end the walk silently with
// Completed=false. A page body that does not decode as an envelope is
// fatal: the partial Result is returned together with the decode
// error.
func (c *Client) FetchAll(ctx context.Context, model Model, params *Params) (*Result, error) {
	if !model.Known() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownModel, model)
	}

	p := Params{}
	if params != nil {
		p = *params
	}
	p.Take = fetchAllPageSize

	res := &Result{}
	position := 0

	for {
		p.Skip = position

		values, err := p.Values()
		if err != nil {
			return res, fmt.Errorf("failed to encode params: %w", err)
		}

		resp, err := c.transport.Get(ctx, model.collectionPath(), values)
		if err != nil {
			c.logger.Warn().Err(err).
				Str("model", string(model)).
				Int("skip", position).
				Msg("Fetch-all stopped on transport failure")
			return res, nil
		}
		if !resp.OK() {
			c.logger.Warn().
				Str("model", string(model)).
				Int("skip", position).
				Int("status", resp.StatusCode).
				Msg("Fetch-all stopped on error status")
			return res, nil
		}

		var env Envelope
		if err := json.Unmarshal(resp.Body, &env); err != nil {
			return res, fmt.Errorf("failed to decode %s page at skip %d: %w", model, position, err)
		}

		res.StatusCodes = append(res.StatusCodes, resp.StatusCode)
		res.PageErrors = append(res.PageErrors, env.Error)
		res.Records = append(res.Records, env.Result.Data...)

		// The total from the first page is treated as stable for the
		// rest of the walk.
		if position == 0 {
			res.Total = env.Result.Total
		}

		c.logger.Debug().
			Str("model", string(model)).
			Int("skip", position).
			Int("records", len(env.Result.Data)).
			Int("total", res.Total).
			Msg("Fetched page")

		position += fetchAllPageSize
		if res.Total <= position {
			break
		}
	}

	res.Completed = true
	return res, nil
}
