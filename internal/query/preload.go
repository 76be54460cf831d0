package query

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"time"
)

const preloadTimeout = 10 * time.Second

// RelatedIDs returns the id of each of the first limit elements of a slice
// result. Elements may be maps keyed by "id"/"user_id" or structs with those
// JSON tags; a zero id falls back to user_id. Elements without either are
// skipped.
func RelatedIDs(data any, limit int) []string {
	v := reflect.ValueOf(data)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return nil
	}

	n := min(v.Len(), limit)
	ids := make([]string, 0, n)
	for i := range n {
		if id, ok := relatedID(v.Index(i)); ok {
			ids = append(ids, id)
		}
	}
	return ids
}

func relatedID(v reflect.Value) (string, bool) {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return "", false
		}
		v = v.Elem()
	}

	var id, userID reflect.Value
	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return "", false
		}
		id = v.MapIndex(reflect.ValueOf("id").Convert(v.Type().Key()))
		userID = v.MapIndex(reflect.ValueOf("user_id").Convert(v.Type().Key()))
	case reflect.Struct:
		id = fieldByJSONName(v, "id")
		userID = fieldByJSONName(v, "user_id")
	default:
		return "", false
	}

	if s, ok := idString(id); ok {
		return s, true
	}
	return idString(userID)
}

func fieldByJSONName(v reflect.Value, name string) reflect.Value {
	t := v.Type()
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		tag, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if tag == name {
			return v.Field(i)
		}
	}
	return reflect.Value{}
}

func idString(v reflect.Value) (string, bool) {
	if !v.IsValid() {
		return "", false
	}
	for v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return "", false
		}
		v = v.Elem()
	}
	if v.IsZero() {
		return "", false
	}
	return fmt.Sprint(v.Interface()), true
}

// preload warms the detail entries linked from a list result. It returns
// immediately; the work runs until Close.
func (c *Client) preload(key Key, data any) {
	ids := RelatedIDs(data, c.preloadLimit())
	if len(ids) == 0 {
		return
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				c.stats.preload("error")
				c.logger.Error("preload panicked",
					slog.String("key", key.String()),
					slog.Any("panic", r))
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), preloadTimeout)
		defer cancel()

		for _, id := range ids {
			c.prefetch(ctx, key.With(id))
		}
	}()
}

func (c *Client) prefetch(ctx context.Context, key Key) {
	if e, ok := c.load(key); ok && e.status == StatusSuccess && c.clock.Since(e.updatedAt) < c.cfg.PreloadStaleTime {
		c.stats.preload("fresh")
		return
	}

	data, err := c.preloader(ctx, key)
	if err != nil {
		c.stats.preload("error")
		c.logger.Warn("preload failed",
			slog.String("key", key.String()),
			slog.String("error", err.Error()))
		return
	}

	h := hashKey(key)
	c.mu.Lock()
	c.store.Set(key, entry{data: data, status: StatusSuccess, updatedAt: c.clock.Now()}, c.ttlLocked(h))
	c.mu.Unlock()
	c.stats.preload("success")
}

func (c *Client) preloadLimit() int {
	if c.cfg.PreloadLimit > 0 {
		return c.cfg.PreloadLimit
	}
	return 5
}
