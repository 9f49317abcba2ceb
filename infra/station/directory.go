package station

import (
	"context"
	"fmt"
	"time"

	"github.com/jmartal/chargeplan/core/logger"
	"github.com/jmartal/chargeplan/core/metrics"
	"github.com/jmartal/chargeplan/core/model"
	corestation "github.com/jmartal/chargeplan/core/station"
	infralogger "github.com/jmartal/chargeplan/infra/logger"
	"github.com/jmartal/chargeplan/internal/cache"
)

// Directory implements core/station.Directory against the external provider.
// Every provider failure degrades to the static fallback set, so QueryNear
// never returns an error: a flaky provider must not prevent the user from
// seeing a plan. There is no internal retry; retrying on a latency-sensitive
// planning path is a caller concern.
//
// Results are cached per quantized query for the configured TTL. The cache is
// advisory and safe for concurrent planning calls.
type Directory struct {
	provider string
	client   *Client
	cache    *cache.Cache[[]model.RawStationRecord]
	log      logger.Logger
	sink     metrics.MetricsSink
}

// NewDirectory builds a Directory. Logger and sink may be nil and default to
// no-ops.
func NewDirectory(cfg Config, log logger.Logger, sink metrics.MetricsSink) (*Directory, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = infralogger.NopLogger{}
	}
	if sink == nil {
		sink = metrics.NopSink{}
	}
	d := &Directory{
		provider: "nrel",
		client:   NewClient(cfg),
		log:      log,
		sink:     sink,
	}
	if cfg.CacheTTLSeconds > 0 {
		d.cache = cache.New[[]model.RawStationRecord](time.Duration(cfg.CacheTTLSeconds) * time.Second)
	}
	return d, nil
}

// QueryNear fetches candidate stations near the query center. An empty result
// with nil error means the provider legitimately reported zero stations;
// failures are absorbed into the fallback set.
func (d *Directory) QueryNear(ctx context.Context, q corestation.Query) ([]model.RawStationRecord, error) {
	begin := time.Now()
	key := cacheKey(q)

	if d.cache != nil {
		if records, ok := d.cache.Get(key); ok {
			d.record(metrics.DirectoryEvent{
				Provider: d.provider,
				Stations: len(records),
				CacheHit: true,
				Latency:  time.Since(begin),
				Time:     begin,
			})
			return records, nil
		}
	}

	records, err := d.client.FetchNearby(ctx, q)
	if err != nil {
		d.log.Warnf("provider lookup failed, using fallback stations: %v", err)
		records = FallbackStations()
		d.record(metrics.DirectoryEvent{
			Provider: d.provider,
			Stations: len(records),
			Fallback: true,
			Latency:  time.Since(begin),
			Time:     begin,
		})
		return records, nil
	}

	if d.cache != nil {
		d.cache.Set(key, records)
	}
	d.record(metrics.DirectoryEvent{
		Provider: d.provider,
		Stations: len(records),
		Latency:  time.Since(begin),
		Time:     begin,
	})
	return records, nil
}

// Close releases the cache sweeper.
func (d *Directory) Close() {
	if d.cache != nil {
		d.cache.Close()
	}
}

func (d *Directory) record(ev metrics.DirectoryEvent) {
	if rec, ok := d.sink.(metrics.DirectoryRecorder); ok {
		if err := rec.RecordDirectory(ev); err != nil {
			d.log.Warnf("record directory metrics: %v", err)
		}
	}
}

// cacheKey quantizes the query center to ~1km so nearby midpoints share an
// entry.
func cacheKey(q corestation.Query) string {
	return fmt.Sprintf("%.2f:%.2f:%.0f:%s:%d", q.Center.Latitude, q.Center.Longitude, q.RadiusMiles, q.Connector, q.Limit)
}
