package booking

import (
	"context"
	"encoding/json"
	"strconv"

	"medibook/utils"

	"go.uber.org/zap"
)

// Cache misses and cache errors fall through to Mongo; the cache never decides a
// booking.

func bookedSlotsKey(docID string) string {
	return utils.BookedSlotsCachePrefix + docID
}

func bookedSlotsGenerationKey(docID string) string {
	return utils.BookedSlotsGenerationPrefix + docID
}

// cachedSlots is the cached booked-slot list, tagged with the generation it was
// read under. An entry whose generation is behind the counter is stale.
type cachedSlots struct {
	Generation int64    `json:"gen"`
	Keys       []string `json:"keys"`
}

// slotsGeneration reads the doctor's slot generation. ok is false when the cache
// cannot be trusted for this request.
func (s *DefaultBookingService) slotsGeneration(ctx context.Context, docID string) (int64, bool) {
	raw, found, err := s.cache().Get(ctx, bookedSlotsGenerationKey(docID))
	if err != nil {
		s.log().Warn("Booked slots generation read failed", zap.String("docId", docID), zap.Error(err))
		return 0, false
	}
	if !found {
		return 0, true
	}
	gen, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return 0, false
	}
	return gen, true
}

func (s *DefaultBookingService) cachedBookedSlots(ctx context.Context, docID string, gen int64) ([]string, bool) {
	raw, ok, err := s.cache().Get(ctx, bookedSlotsKey(docID))
	if err != nil {
		s.log().Warn("Booked slots cache read failed", zap.String("docId", docID), zap.Error(err))
		return nil, false
	}
	if !ok {
		return nil, false
	}
	var entry cachedSlots
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, false
	}
	if entry.Generation != gen {
		return nil, false
	}
	return entry.Keys, true
}

func (s *DefaultBookingService) storeBookedSlots(ctx context.Context, docID string, gen int64, keys []string) {
	raw, err := json.Marshal(cachedSlots{Generation: gen, Keys: keys})
	if err != nil {
		return
	}
	if err := s.cache().Set(ctx, bookedSlotsKey(docID), raw, s.CacheTTL); err != nil {
		s.log().Warn("Booked slots cache write failed", zap.String("docId", docID), zap.Error(err))
	}
}

// invalidate bumps the doctor's slot generation and drops every cached view that
// embeds the slot map. A read that started before the bump can still write its
// snapshot, but under the old generation, so it is never served.
func (s *DefaultBookingService) invalidate(ctx context.Context, docID string) {
	if _, err := s.cache().Incr(ctx, bookedSlotsGenerationKey(docID)); err != nil {
		s.log().Warn("Booked slots generation bump failed", zap.String("docId", docID), zap.Error(err))
	}
	if err := s.cache().Delete(ctx, bookedSlotsKey(docID), utils.DoctorListCacheKey); err != nil {
		s.log().Warn("Cache invalidation failed", zap.String("docId", docID), zap.Error(err))
	}
}
