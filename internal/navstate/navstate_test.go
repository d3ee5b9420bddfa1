package navstate_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"jobtrack/internal/navstate"
)

// TestRoundTrip - сериализация и обратный парсинг дают то же состояние
func TestRoundTrip(t *testing.T) {
	t.Parallel()

	states := []navstate.State{
		navstate.Default(),
		{Page: navstate.PageHome, Search: "acme", Filter: "Applied", Sort: navstate.SortAscending, JobID: 7},
		{Page: navstate.PageJobDetail, Filter: navstate.FilterAll, Sort: navstate.SortDescending, JobID: 3},
		{Page: navstate.PageLogin, Filter: navstate.FilterAll, Sort: navstate.SortDescending},
		{Page: navstate.PageHome, Search: "с пробелом и юникодом", Filter: navstate.FilterAll, Sort: navstate.SortDescending},
	}

	for _, st := range states {
		parsed := navstate.Parse(st.Values())
		assert.Equal(t, st, parsed, "round trip failed for %+v", st)
	}
}

// TestSerializeOmitsDefaults - поля со значениями по умолчанию не пишутся
func TestSerializeOmitsDefaults(t *testing.T) {
	t.Parallel()

	st := navstate.Default()
	q := st.Values()

	assert.Equal(t, "landing", q.Get("page"))
	assert.False(t, q.Has("search"))
	assert.False(t, q.Has("filter"))
	assert.False(t, q.Has("sort"))
	assert.False(t, q.Has("jobId"))
}

// TestSerializeEmitsNonDefaults - отличные от умолчаний поля пишутся
func TestSerializeEmitsNonDefaults(t *testing.T) {
	t.Parallel()

	st := navstate.State{
		Page:   navstate.PageHome,
		Search: "engineer",
		Filter: "Rejected",
		Sort:   navstate.SortAscending,
		JobID:  42,
	}
	q := st.Values()

	assert.Equal(t, "home", q.Get("page"))
	assert.Equal(t, "engineer", q.Get("search"))
	assert.Equal(t, "Rejected", q.Get("filter"))
	assert.Equal(t, "ascending", q.Get("sort"))
	assert.Equal(t, "42", q.Get("jobId"))
}

// TestParseDefaults - пустой query дает состояние по умолчанию
func TestParseDefaults(t *testing.T) {
	t.Parallel()

	st := navstate.Parse(url.Values{})

	assert.Equal(t, navstate.PageLanding, st.Page)
	assert.Equal(t, "", st.Search)
	assert.Equal(t, navstate.FilterAll, st.Filter)
	assert.Equal(t, navstate.SortDescending, st.Sort)
	assert.Equal(t, int64(0), st.JobID)
}

// TestParseInvalidPage - неизвестная страница дает not-found
func TestParseInvalidPage(t *testing.T) {
	t.Parallel()

	q := url.Values{}
	q.Set("page", "bogus")

	st := navstate.Parse(q)
	assert.Equal(t, navstate.PageNotFound, st.Page)
}

// TestParseInvalidFilterAndSort - мусор в filter/sort откатывается к умолчаниям
func TestParseInvalidFilterAndSort(t *testing.T) {
	t.Parallel()

	q := url.Values{}
	q.Set("page", "home")
	q.Set("filter", "Fired")
	q.Set("sort", "sideways")
	q.Set("jobId", "not-a-number")

	st := navstate.Parse(q)
	assert.Equal(t, navstate.PageHome, st.Page)
	assert.Equal(t, navstate.FilterAll, st.Filter)
	assert.Equal(t, navstate.SortDescending, st.Sort)
	assert.Equal(t, int64(0), st.JobID)
}

// TestMerge - частичное обновление не трогает остальные поля
func TestMerge(t *testing.T) {
	t.Parallel()

	st := navstate.State{
		Page:   navstate.PageHome,
		Search: "acme",
		Filter: "Applied",
		Sort:   navstate.SortAscending,
		JobID:  5,
	}

	next := st.Merge(navstate.Partial{
		Page:  navstate.PagePtr(navstate.PageJobDetail),
		JobID: navstate.JobIDPtr(9),
	})

	assert.Equal(t, navstate.PageJobDetail, next.Page)
	assert.Equal(t, int64(9), next.JobID)
	assert.Equal(t, "acme", next.Search)
	assert.Equal(t, navstate.StatusFilter("Applied"), next.Filter)
	assert.Equal(t, navstate.SortAscending, next.Sort)

	// Исходное состояние не изменилось
	assert.Equal(t, navstate.PageHome, st.Page)
	assert.Equal(t, int64(5), st.JobID)
}

// TestMergeUpdateThenParse - свойство round-trip для updateState:
// merge + сериализация + парсинг эквивалентны merge
func TestMergeUpdateThenParse(t *testing.T) {
	t.Parallel()

	st := navstate.Default()
	merged := st.Merge(navstate.Partial{
		Page:   navstate.PagePtr(navstate.PageHome),
		Search: navstate.SearchPtr("go developer"),
	})

	parsed := navstate.Parse(merged.Values())
	assert.Equal(t, merged, parsed)

	// Сброс search в "" - поле опускается и парсится обратно в ""
	cleared := merged.Merge(navstate.Partial{Search: navstate.SearchPtr("")})
	assert.False(t, cleared.Values().Has("search"))
	assert.Equal(t, cleared, navstate.Parse(cleared.Values()))
}

// TestProtectedPages - только home и job-detail требуют сессию
func TestProtectedPages(t *testing.T) {
	t.Parallel()

	assert.True(t, navstate.PageHome.Protected())
	assert.True(t, navstate.PageJobDetail.Protected())
	assert.False(t, navstate.PageLanding.Protected())
	assert.False(t, navstate.PageLogin.Protected())
	assert.False(t, navstate.PageRegister.Protected())
	assert.False(t, navstate.PageNotFound.Protected())
}
