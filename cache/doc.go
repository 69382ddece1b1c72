// Package cache provides the sharded LRU cache used to hold per-font
// measurement state.
//
// Font entries are created once per distinct font descriptor and are then
// read by every engine that shares the cache, possibly from several
// goroutines. ShardedCache spreads keys over 16 independently locked shards
// so lookups for different fonts do not contend.
//
//	c := cache.NewSharded[string, *entry](64, cache.StringHasher)
//	e := c.GetOrCreate("16px Go", func() *entry { return newEntry() })
//
// ShardedCache must not be copied after creation.
package cache
