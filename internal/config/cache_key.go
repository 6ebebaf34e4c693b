package config

import "fmt"

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// AttendanceEventChannel returns the Redis PubSub channel name for the
// live attendance feed consumed by the dashboard scan monitor.
func (r *CacheKeyStruct) AttendanceEventChannel() string {
	return "attendance:events"
}

// AbsenceSweepKey returns the cache key marking that the absence sweep
// already ran for the given school day (YYYY-MM-DD).
func (r *CacheKeyStruct) AbsenceSweepKey(day string) string {
	return fmt.Sprintf("attendance:sweep:%s", day)
}

var CacheKey = NewCacheKeyStruct()
