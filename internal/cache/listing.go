package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/queueworks/queue-booking-api/internal/models"
)

const bookingKeyPrefix = "bookings:"

// ListingCache is a short-lived read cache for booking listings, keyed by the
// query that produced them. The store stays the source of truth: every write
// path invalidates the whole prefix. Cache failures degrade to the database
// and are only logged.
type ListingCache struct {
	rdb *redis.Client
	ttl time.Duration
	log *zap.Logger
}

func NewListingCache(rdb *redis.Client, log *zap.Logger) *ListingCache {
	return &ListingCache{
		rdb: rdb,
		ttl: 5 * time.Minute,
		log: log,
	}
}

func UserBookingsKey(userID string) string {
	return fmt.Sprintf("%suser:%s", bookingKeyPrefix, userID)
}

func (c *ListingCache) GetBookings(ctx context.Context, key string) ([]models.Booking, bool) {
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn("cache read failed, falling back to store", zap.Error(err))
		}
		return nil, false
	}

	var bookings []models.Booking
	if err := json.Unmarshal(data, &bookings); err != nil {
		c.log.Warn("cached listing unreadable, falling back to store", zap.Error(err))
		return nil, false
	}

	return bookings, true
}

func (c *ListingCache) SetBookings(ctx context.Context, key string, bookings []models.Booking) {
	data, err := json.Marshal(bookings)
	if err != nil {
		c.log.Warn("listing marshal failed", zap.Error(err))
		return
	}

	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.log.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// InvalidateBookings drops every cached booking listing. Called after each
// booking mutation; readers re-fetch from the store on the next request.
func (c *ListingCache) InvalidateBookings(ctx context.Context) {
	iter := c.rdb.Scan(ctx, 0, bookingKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			c.log.Warn("cache invalidation failed", zap.String("key", iter.Val()), zap.Error(err))
		}
	}
	if err := iter.Err(); err != nil {
		c.log.Warn("cache scan failed", zap.Error(err))
	}
}
