// Package cache provides a small generic LRU cache.
//
//	faces := cache.New[float64, *Face](8)
//	faces.OnEvict(func(_ float64, f *Face) { f.Close() })
//	face, err := faces.GetOrCreate(12, load)
//
// A Cache is safe for concurrent use and must not be copied after creation.
package cache
