// File: utils/constants.go
package utils

// BookedSlotsCachePrefix prefixes the Redis keys holding a doctor's flattened booked
// slot keys.
const BookedSlotsCachePrefix = "booked:"

// BookedSlotsGenerationPrefix prefixes the per-doctor counter bumped on every slot
// change. Cached booked slots carry the counter value they were read under.
const BookedSlotsGenerationPrefix = "booked-gen:"

// DoctorListCacheKey holds the public doctor listing.
const DoctorListCacheKey = "doctors:public"

// Context keys set by the auth middleware.
const (
	CtxUserID     = "userID"
	CtxDoctorID   = "doctorID"
	CtxIsAdmin    = "isAdmin"
	CtxAdminEmail = "adminEmail"
	CtxLogger     = "logger"
	CtxReqID      = "requestID"
)
