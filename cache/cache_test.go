package cache

import (
	"testing"
	"time"

	"github.com/use-agent/farescan/models"
)

func params(origin, destination string) models.SearchParams {
	return models.SearchParams{
		Origin:        origin,
		Destination:   destination,
		DepartureDate: "2025-09-24",
		Passengers:    1,
	}
}

func TestKey(t *testing.T) {
	a := Key(params("London", "Dubai"))
	b := Key(params("London", "Dubai"))
	c := Key(params("Glasgow", "Chennai"))

	if a != b {
		t.Error("identical params must produce identical keys")
	}
	if a == c {
		t.Error("different routes must produce different keys")
	}

	withReturn := params("London", "Dubai")
	withReturn.ReturnDate = "2025-10-08"
	if Key(withReturn) == a {
		t.Error("return date must be part of the key")
	}
}

func TestGetSet(t *testing.T) {
	c := New(10)
	defer c.Close()

	key := Key(params("London", "Dubai"))
	if _, ok := c.Get(key, 0); ok {
		t.Error("Get on empty cache returned a hit")
	}

	result := &models.SearchResult{TotalResults: 3}
	c.Set(key, result)

	got, ok := c.Get(key, 0)
	if !ok || got.TotalResults != 3 {
		t.Errorf("Get = %+v, %v, want the stored result", got, ok)
	}
}

func TestGetRespectsMaxAge(t *testing.T) {
	c := New(10)
	defer c.Close()

	key := Key(params("London", "Dubai"))
	c.Set(key, &models.SearchResult{})

	time.Sleep(20 * time.Millisecond)
	if _, ok := c.Get(key, time.Millisecond); ok {
		t.Error("Get returned an entry older than maxAge")
	}
	if _, ok := c.Get(key, time.Minute); !ok {
		t.Error("Get missed an entry well within maxAge")
	}
}

func TestSetEvictsAtCapacity(t *testing.T) {
	c := New(2)
	defer c.Close()

	c.Set("k1", &models.SearchResult{})
	c.Set("k2", &models.SearchResult{})
	c.Set("k3", &models.SearchResult{})

	if got := c.Len(); got != 2 {
		t.Errorf("Len = %d, want capacity 2 held after eviction", got)
	}
	if _, ok := c.Get("k3", 0); !ok {
		t.Error("most recently set entry must survive eviction")
	}
}
