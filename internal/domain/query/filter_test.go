package query

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type row struct {
	Name   string
	Status string
}

func rowName(r row) string   { return r.Name }
func rowStatus(r row) string { return r.Status }

func sampleRows() []row {
	return []row{
		{Name: "سارة أحمد", Status: "Shipped"},
		{Name: "فاطمة علي", Status: "Pending"},
		{Name: "سارة محمود", Status: "Pending"},
		{Name: "هبة خالد", Status: "Cancelled"},
		{Name: "ريم مصطفى", Status: "Delivered"},
	}
}

func TestFilter_TextAndStatusIsIdempotent(t *testing.T) {
	rows := sampleRows()
	preds := []Predicate[row]{
		Contains(rowName, "سارة"),
		Equals(rowStatus, "Pending"),
	}

	first := Filter(rows, preds...)
	second := Filter(first, preds...)

	assert.Equal(t, []row{{Name: "سارة محمود", Status: "Pending"}}, first)
	assert.Equal(t, first, second)
	assert.Len(t, rows, 5, "source must not be mutated")
}

func TestContains_CaseInsensitive(t *testing.T) {
	rows := []row{{Name: "Noor Boutique"}, {Name: "Golden Threads"}, {Name: "NOOR fabrics"}}

	got := Filter(rows, Contains(rowName, "noor"))

	assert.Equal(t, []row{{Name: "Noor Boutique"}, {Name: "NOOR fabrics"}}, got)
}

func TestContains_EmptyTermMatchesAll(t *testing.T) {
	rows := sampleRows()
	assert.Equal(t, rows, Filter(rows, Contains(rowName, "  ")))
}

func TestEquals_Sentinels(t *testing.T) {
	rows := sampleRows()

	for _, v := range []string{All, AllArabic, ""} {
		t.Run("sentinel "+v, func(t *testing.T) {
			assert.Equal(t, rows, Filter(rows, Equals(rowStatus, v)))
		})
	}
}

func TestEquals_ExactMatchOnly(t *testing.T) {
	got := Filter(sampleRows(), Equals(rowStatus, "pending"))
	assert.Empty(t, got)
}

func TestFilter_PreservesOrder(t *testing.T) {
	got := Filter(sampleRows(), Equals(rowStatus, "Pending"))
	assert.Equal(t, []string{"فاطمة علي", "سارة محمود"}, []string{got[0].Name, got[1].Name})
}

func TestFilter_NoPredicates(t *testing.T) {
	rows := sampleRows()
	got := Filter(rows)
	assert.Equal(t, rows, got)

	got[0].Name = "changed"
	assert.Equal(t, "سارة أحمد", rows[0].Name)
}

func TestContains_PredicateReusedAcrossItems(t *testing.T) {
	pred := Contains(rowName, "STRASSE")
	rows := []row{
		{Name: "Hauptstraße 1"},
		{Name: "Main Street"},
		{Name: "strasse"},
		{Name: ""},
	}

	var wg sync.WaitGroup
	results := make([][]row, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Filter(rows, pred)
		}(i)
	}
	wg.Wait()

	want := []row{{Name: "Hauptstraße 1"}, {Name: "strasse"}}
	for _, got := range results {
		assert.Equal(t, want, got)
	}
}
