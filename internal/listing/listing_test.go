package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GTDGit/fas_dashboard/internal/models"
	"github.com/GTDGit/fas_dashboard/internal/seed"
)

func ids[T interface{ RecordID() string }](records []T) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.RecordID()
	}
	return out
}

func TestFilterDefaultCriteriaReturnsEverything(t *testing.T) {
	products := seed.Products()
	got := Filter(products, Criteria{Search: "", Status: All, Type: All})
	assert.Equal(t, products, got)

	got = Filter(products, Criteria{})
	assert.Equal(t, products, got)
}

func TestFilterSearchIsCaseInsensitive(t *testing.T) {
	got := Filter(seed.Products(), Criteria{Search: "salam", Status: All, Type: All})
	assert.Equal(t, []string{"PROD-003", "PROD-006"}, ids(got))

	got = Filter(seed.Products(), Criteria{Search: "prod-00", Status: All, Type: All})
	assert.Len(t, got, 6)
}

func TestFilterByStatusIsIdempotent(t *testing.T) {
	c := Criteria{Status: string(models.ProductStatusDraft)}
	once := Filter(seed.Products(), c)
	require.Equal(t, []string{"PROD-003"}, ids(once))
	assert.Equal(t, once, Filter(once, c))

	active := Filter(seed.Products(), Criteria{Status: "active"})
	assert.Len(t, active, 5)
	for _, p := range active {
		assert.Equal(t, models.ProductStatusActive, p.Status)
	}
}

func TestFilterCriteriaAreANDed(t *testing.T) {
	got := Filter(seed.Products(), Criteria{
		Search: "salam",
		Status: "active",
		Type:   "Salam and Parallel Salam",
	})
	assert.Equal(t, []string{"PROD-006"}, ids(got))

	got = Filter(seed.Products(), Criteria{Search: "murabaha", Type: "Salam and Parallel Salam"})
	assert.Empty(t, got)
}

func TestFilterScenarios(t *testing.T) {
	scenarios := seed.Scenarios()
	got := Filter(scenarios, Criteria{Type: string(models.ScenarioTypeProduct)})
	assert.Equal(t, []string{"REF-002"}, ids(got))

	got = Filter(scenarios, Criteria{Search: "WHEAT", Status: "completed"})
	assert.Equal(t, []string{"REF-003"}, ids(got))

	got = Filter(scenarios, Criteria{Status: "in-review"})
	assert.Equal(t, []string{"REF-001"}, ids(got))
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	products := seed.Products()
	_ = Filter(products, Criteria{Search: "ijarah"})
	assert.Equal(t, seed.Products(), products)
}

func TestPaginate(t *testing.T) {
	rows := make([]int, 30)
	for i := range rows {
		rows[i] = i
	}

	assert.Equal(t, []int{25, 26, 27, 28, 29}, Paginate(rows, 1, 25))
	assert.Len(t, Paginate(rows, 0, 25), 25)
	assert.Empty(t, Paginate(rows, 2, 25))
	assert.Empty(t, Paginate(rows, 0, 0))
	assert.Empty(t, Paginate(rows, 0, -5))
	assert.Equal(t, Paginate(rows, 0, 10), Paginate(rows, -3, 10))
	assert.Empty(t, Paginate(rows, 1<<40, 1<<40))
	assert.NotNil(t, Paginate([]int(nil), 0, 25))
}

func TestPaginateLengthAndReconstruction(t *testing.T) {
	for _, n := range []int{0, 1, 7, 25, 26, 100} {
		rows := make([]int, n)
		for i := range rows {
			rows[i] = i
		}
		for _, size := range []int{1, 3, 25} {
			var rebuilt []int
			for page := 0; page*size <= n; page++ {
				chunk := Paginate(rows, page, size)
				want := size
				if rest := n - page*size; rest < want {
					want = max(0, rest)
				}
				assert.Len(t, chunk, want)
				rebuilt = append(rebuilt, chunk...)
			}
			if n == 0 {
				assert.Empty(t, rebuilt)
			} else {
				assert.Equal(t, rows, rebuilt)
			}
		}
	}
}

func TestPaginateReturnsCopy(t *testing.T) {
	rows := []int{1, 2, 3}
	page := Paginate(rows, 0, 2)
	page[0] = 99
	assert.Equal(t, 1, rows[0])
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 25))
	assert.Equal(t, 1, TotalPages(25, 25))
	assert.Equal(t, 2, TotalPages(26, 25))
	assert.Equal(t, 0, TotalPages(10, 0))
}
