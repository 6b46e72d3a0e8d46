// Package cache keeps recently rendered mode previews so switching
// between sidebar entries does not re-run the markdown renderer.
package cache

import (
	"container/list"
	"fmt"
)

type RenderCache struct {
	capacity  int
	evictList *list.List
	items     map[string]*list.Element
}

type entry struct {
	key   string
	value string
}

func NewRenderCache(capacity int) *RenderCache {
	if capacity < 1 {
		capacity = 1
	}
	return &RenderCache{
		capacity:  capacity,
		evictList: list.New(),
		items:     make(map[string]*list.Element),
	}
}

// Key builds the cache key for one rendered preview. Width and style
// are part of the key because both change the rendered bytes.
func Key(modeID string, width int, style string) string {
	return fmt.Sprintf("%s|%d|%s", modeID, width, style)
}

func (c *RenderCache) Get(key string) (string, bool) {
	if ele, hit := c.items[key]; hit {
		c.evictList.MoveToFront(ele)
		return ele.Value.(*entry).value, true
	}
	return "", false
}

func (c *RenderCache) Put(key, value string) {
	if ele, hit := c.items[key]; hit {
		c.evictList.MoveToFront(ele)
		ele.Value.(*entry).value = value
		return
	}

	ele := c.evictList.PushFront(&entry{key, value})
	c.items[key] = ele

	if c.evictList.Len() > c.capacity {
		c.removeOldest()
	}
}

func (c *RenderCache) Len() int {
	return c.evictList.Len()
}

// Purge drops every entry. Called when the catalog reloads, since the
// docs behind the keys may have changed.
func (c *RenderCache) Purge() {
	c.evictList.Init()
	c.items = make(map[string]*list.Element)
}

func (c *RenderCache) removeOldest() {
	ele := c.evictList.Back()
	if ele != nil {
		c.removeElement(ele)
	}
}

func (c *RenderCache) removeElement(e *list.Element) {
	c.evictList.Remove(e)
	kv := e.Value.(*entry)
	delete(c.items, kv.key)
}
