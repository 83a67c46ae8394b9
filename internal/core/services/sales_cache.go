package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	portssvc "github.com/SscSPs/ledger_entry_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// SalesLookupCache memoizes the external sales-total lookup per calendar
// date. Each date key moves absent -> loading -> resolved|failed. Resolved
// entries live for the cache's lifetime and are never fetched twice;
// failures are not cached so a later visit to the same date re-fetches.
//
// Observing a date other than the last observed one bumps a generation
// counter; in-flight fetches capture the value current at their start. A
// completion whose generation is stale is discarded wholesale: it neither
// writes cache entries nor surfaces errors, so a superseded fetch can't
// corrupt state for the date the user has since moved to. Re-observing the
// date already being fetched leaves that fetch current, so repeated
// selections of one date cost a single round trip.
type SalesLookupCache struct {
	BaseService
	lookup portssvc.SalesLookupSvc

	mu           sync.Mutex
	resolved     map[string]decimal.Decimal
	failed       map[string]string
	inFlight     map[string]int
	lastObserved string
	gen          uint64
	wg           sync.WaitGroup
}

// NewSalesLookupCache creates a cache around the given lookup collaborator.
func NewSalesLookupCache(lookup portssvc.SalesLookupSvc) *SalesLookupCache {
	return &SalesLookupCache{
		lookup:   lookup,
		resolved: make(map[string]decimal.Decimal),
		failed:   make(map[string]string),
		inFlight: make(map[string]int),
	}
}

// Observe notes that the active sales date is now date and starts a fetch
// when the date has no resolved entry and no fetch already running. Moving
// to a different date invalidates any earlier in-flight fetch; re-observing
// the same date does not.
func (c *SalesLookupCache) Observe(ctx context.Context, date string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if date == c.lastObserved {
		if c.inFlight[date] > 0 {
			return
		}
	} else {
		c.gen++
		c.lastObserved = date
	}
	if date == "" {
		return
	}
	if _, ok := c.resolved[date]; ok {
		return
	}
	c.startFetchLocked(ctx, date)
}

// Retry clears a lingering failed marker for date and re-triggers the
// fetch. A fetch already running for the current date is left alone.
func (c *SalesLookupCache) Retry(ctx context.Context, date string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.failed, date)
	if date == "" {
		return
	}
	if _, ok := c.resolved[date]; ok {
		return
	}
	if date == c.lastObserved && c.inFlight[date] > 0 {
		return
	}
	c.gen++
	c.lastObserved = date
	c.startFetchLocked(ctx, date)
}

// startFetchLocked launches the async lookup. Caller holds c.mu.
func (c *SalesLookupCache) startFetchLocked(ctx context.Context, date string) {
	myGen := c.gen
	c.inFlight[date]++
	c.wg.Add(1)

	// Detach from the request's cancellation but keep its values so the
	// request-scoped logger survives into the completion handler.
	fetchCtx := context.WithoutCancel(ctx)

	go func() {
		defer c.wg.Done()
		total, err := c.lookup.FetchSalesTotal(fetchCtx, date)

		c.mu.Lock()
		defer c.mu.Unlock()
		c.inFlight[date]--
		if c.inFlight[date] <= 0 {
			delete(c.inFlight, date)
		}
		if myGen != c.gen {
			// The date changed while we were fetching; drop the result.
			c.LogDebug(fetchCtx, "Discarding stale sales lookup", slog.String("date", date))
			return
		}
		if err != nil {
			c.LogError(fetchCtx, err, "Sales lookup failed", slog.String("date", date))
			c.failed[date] = fmt.Sprintf("Could not load sales total for %s", date)
			return
		}
		c.resolved[date] = total
		delete(c.failed, date)
	}()
}

// Snapshot reports the cache state for date.
func (c *SalesLookupCache) Snapshot(date string) portssvc.SalesSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	if total, ok := c.resolved[date]; ok {
		t := total
		return portssvc.SalesSnapshot{Total: &t}
	}
	if c.inFlight[date] > 0 {
		return portssvc.SalesSnapshot{Loading: true}
	}
	if msg, ok := c.failed[date]; ok {
		return portssvc.SalesSnapshot{Error: msg}
	}
	return portssvc.SalesSnapshot{}
}

// ResolvedTotal returns the cached total for date, if resolved.
func (c *SalesLookupCache) ResolvedTotal(date string) (decimal.Decimal, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	total, ok := c.resolved[date]
	return total, ok
}

// Wait blocks until every in-flight fetch has completed. Test helper.
func (c *SalesLookupCache) Wait() {
	c.wg.Wait()
}
