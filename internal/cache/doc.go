// Package cache provides a small generic LRU used to keep derived font
// data, such as scaled glyph outlines, across drawing calls.
//
//	c := cache.New[key, *vecdev.Path](512)
//	c.Add(k, outline)
//	p, ok := c.Get(k)
//
// LRU is safe for concurrent use and must not be copied after creation.
package cache
