// Package client implements the Facade (spec §4.6, component C6): the
// four public operations layered on the session pool, driver, and batch
// planner. This is the only package that knows about typed response
// shapes — every component below it treats bodies as opaque strings.
package client

import (
	"context"
	"encoding/json"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"

	"github.com/elsa-voss/hirezclient/internal/hirez/batch"
	"github.com/elsa-voss/hirezclient/internal/hirez/constants"
	"github.com/elsa-voss/hirezclient/internal/hirez/model"
)

// Driver is the subset of driver.Driver the Facade needs.
type Driver interface {
	ConcurrentFetch(ctx context.Context, method string, suffixes []string) []string
}

// Signer is the subset of signer.Signer the Facade needs for the unsigned
// ping check.
type Signer interface {
	PingURL(method string) string
}

// Fetcher is the subset of transport.Fetcher the Facade needs for Ping.
type Fetcher interface {
	Get(ctx context.Context, url string) (string, error)
}

// Client is the public entry point: everything a caller needs to issue
// match_ids_by_queue, match_details, gods, and items calls.
type Client struct {
	Driver  Driver
	Signer  Signer
	Fetcher Fetcher

	// DebugDumpPath is where the raw body of a failed decode is written.
	// Defaults to "debug_dump.json" when empty.
	DebugDumpPath string
}

func (c *Client) dumpPath() string {
	if c.DebugDumpPath != "" {
		return c.DebugDumpPath
	}
	return "debug_dump.json"
}

// dumpBody writes body to the debug dump path, best-effort: a failure to
// write is logged, never returned, since the caller already has a more
// important error to report.
func (c *Client) dumpBody(body string) {
	path := c.dumpPath()
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("failed to write debug dump")
	}
}

// MatchIDsByQueue implements match_ids_by_queue. Requests are validated
// and rendered to suffixes before any network activity; a single request
// failing validation aborts the whole call.
func (c *Client) MatchIDsByQueue(ctx context.Context, requests []MatchIDsByQueueRequest) ([]string, error) {
	suffixes := make([]string, len(requests))
	for i, r := range requests {
		suffix, err := r.suffix()
		if err != nil {
			return nil, err
		}
		suffixes[i] = suffix
	}

	bodies := c.Driver.ConcurrentFetch(ctx, constants.MethodGetMatchIdsByQueue, suffixes)

	var ids []string
	for _, body := range bodies {
		if !gjson.Valid(body) {
			c.dumpBody(body)
			return nil, ErrDeserialize{Operation: "get match ids by queue", Reason: "invalid JSON"}
		}

		records := gjson.Parse(body)
		if !records.IsArray() {
			c.dumpBody(body)
			return nil, ErrDeserialize{Operation: "get match ids by queue", Reason: "reply is not a JSON array"}
		}

		array := records.Array()
		if len(array) == 0 {
			continue
		}

		if first := array[0].Get("ret_msg"); first.Exists() && first.Type != gjson.Null {
			return nil, ErrProviderRejected{RetMsg: first.String()}
		}

		for _, record := range array {
			flag := record.Get("Active_Flag")
			if flag.String() != "n" {
				continue
			}
			if match := record.Get("Match"); match.Exists() {
				ids = append(ids, match.String())
			}
		}
	}

	return ids, nil
}

// MatchDetailResult is one outcome of a match_details call: either a
// parsed player-match row, or the error that prevented its chunk from
// being parsed at all.
type MatchDetailResult struct {
	Detail *model.PlayerMatchDetails
	Err    error
}

// MatchDetails implements match_details: chunks ids via the batch
// planner, fetches each chunk, and decodes the returned bodies
// independently. A chunk that fails to parse contributes one error
// result; a chunk that parses contributes one success result per record.
func (c *Client) MatchDetails(ctx context.Context, ids []string) []MatchDetailResult {
	suffixes := batch.MatchIDChunks(ids, constants.MatchDetailsBatch)
	bodies := c.Driver.ConcurrentFetch(ctx, constants.MethodGetMatchDetailsBulk, suffixes)

	var results []MatchDetailResult
	for _, body := range bodies {
		var records []model.PlayerMatchDetails
		if err := json.Unmarshal([]byte(body), &records); err != nil {
			c.dumpBody(body)
			results = append(results, MatchDetailResult{
				Err: ErrDeserialize{Operation: "get match details batch", Reason: err.Error()},
			})
			continue
		}
		for i := range records {
			results = append(results, MatchDetailResult{Detail: &records[i]})
		}
	}
	return results
}

// Gods implements gods(): a single catalogue call returning every god.
func (c *Client) Gods(ctx context.Context) ([]model.God, error) {
	bodies := c.Driver.ConcurrentFetch(ctx, constants.MethodGetGods, []string{"/1"})
	if len(bodies) == 0 {
		return nil, ErrDeserialize{Operation: "get gods", Reason: "no response received"}
	}

	var gods []model.God
	if err := json.Unmarshal([]byte(bodies[0]), &gods); err != nil {
		c.dumpBody(bodies[0])
		return nil, ErrDeserialize{Operation: "get gods", Reason: err.Error()}
	}
	return gods, nil
}

// Items implements items(): a single catalogue call returning every item.
func (c *Client) Items(ctx context.Context) ([]model.Item, error) {
	bodies := c.Driver.ConcurrentFetch(ctx, constants.MethodGetItems, []string{"/1"})
	if len(bodies) == 0 {
		return nil, ErrDeserialize{Operation: "get items", Reason: "no response received"}
	}

	var items []model.Item
	if err := json.Unmarshal([]byte(bodies[0]), &items); err != nil {
		c.dumpBody(bodies[0])
		return nil, ErrDeserialize{Operation: "get items", Reason: err.Error()}
	}
	return items, nil
}

// Ping implements the unsigned connectivity check: no session, no
// signature, just a raw GET against the ping endpoint.
func (c *Client) Ping(ctx context.Context) (string, error) {
	return c.Fetcher.Get(ctx, c.Signer.PingURL(constants.MethodPing))
}
