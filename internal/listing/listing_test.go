package listing

import (
	"strings"
	"testing"
	"time"

	"glowup-diaries/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func sampleEvents() []model.Event {
	return []model.Event{
		{
			Title:        "Tech Talk",
			Description:  "An evening on cloud careers",
			Location:     "Lagos",
			LocationType: model.LocationPhysical,
			IsFree:       true,
			Date:         date("2025-01-10"),
		},
		{
			Title:        "Career Fair",
			Description:  "Meet hiring companies",
			Location:     "Online",
			LocationType: model.LocationOnline,
			IsFree:       false,
			Date:         date("2025-02-05"),
		},
	}
}

func TestEmptyQueryMatchesEverything(t *testing.T) {
	for _, e := range sampleEvents() {
		assert.True(t, Events.MatchSearch(e, ""))
	}
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	e := sampleEvents()[0]
	for _, q := range []string{"tech talk", "TECH TALK", "Tech Talk", "tEcH tAlK"} {
		assert.True(t, Events.MatchSearch(e, q), "query %q", q)
	}
	assert.Equal(t,
		Events.MatchSearch(e, "cloud"),
		Events.MatchSearch(e, strings.ToUpper("cloud")),
	)
}

func TestSearchCostTokens(t *testing.T) {
	free := sampleEvents()[0]
	paid := sampleEvents()[1]

	for _, q := range []string{"free", "fre", "fr"} {
		assert.True(t, Events.MatchSearch(free, q), "query %q", q)
		assert.False(t, Events.MatchSearch(paid, q), "query %q", q)
	}
	for _, q := range []string{"paid", "pai", "pa"} {
		assert.True(t, Events.MatchSearch(paid, q), "query %q", q)
		assert.False(t, Events.MatchSearch(free, q), "query %q", q)
	}
}

func TestSearchMatchesRenderedDate(t *testing.T) {
	e := sampleEvents()[0] // 2025-01-10 is a Friday
	assert.True(t, Events.MatchSearch(e, "january"))
	assert.True(t, Events.MatchSearch(e, "Friday, January 10, 2025"))
	assert.False(t, Events.MatchSearch(e, "march"))
}

func TestCostTokensDisabledWithoutCostFlag(t *testing.T) {
	// resources have no cost extractor; "free" must go through the
	// normal field search only
	r := model.Resource{Title: "Interview prep", Category: "guides", IsPremium: false}
	assert.False(t, Resources.MatchSearch(r, "free"))
}

func TestEmptyFilterSetPassesAll(t *testing.T) {
	now := date("2025-01-15")
	for _, e := range sampleEvents() {
		assert.True(t, Events.MatchFilters(e, Filters{}, now))
		assert.True(t, Events.MatchFilters(e, nil, now))
	}
}

func TestFiltersAreConjunctive(t *testing.T) {
	now := date("2025-01-15")
	active := NewFilters("this-month", "free", "in-person")

	for _, e := range sampleEvents() {
		expected := true
		for id := range active {
			expected = expected && Events.Rules[id](e, now)
		}
		assert.Equal(t, expected, Events.MatchFilters(e, active, now))
	}
}

func TestUnknownFilterPasses(t *testing.T) {
	now := date("2025-01-15")
	e := sampleEvents()[0]

	require.False(t, Events.KnownFilter("no-such-filter"))
	assert.True(t, Events.MatchFilters(e, NewFilters("no-such-filter"), now))
	// unknown ids are ignored, known ones still apply
	assert.False(t, Events.MatchFilters(e, NewFilters("no-such-filter", "paid"), now))
}

func TestFilterToggleIsIdempotent(t *testing.T) {
	now := date("2025-01-15")
	events := sampleEvents()
	active := NewFilters("free")

	before := Events.Apply(events, "", active, now)

	active.Toggle("this-month")
	active.Toggle("this-month")

	assert.Equal(t, NewFilters("free"), active)
	assert.Equal(t, before, Events.Apply(events, "", active, now))
}

func TestEndingSoonBoundary(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	exactly := now.Add(7 * 24 * time.Hour)

	job := model.Job{Title: "Backend Engineer", Company: "Acme", Deadline: exactly}
	assert.True(t, Jobs.Rules["ending-soon"](job, now), "deadline exactly 7x24h out is included")

	job.Deadline = exactly.Add(time.Second)
	assert.False(t, Jobs.Rules["ending-soon"](job, now), "one second past the boundary is excluded")

	job.Deadline = now.Add(-time.Second)
	assert.False(t, Jobs.Rules["ending-soon"](job, now), "past deadlines are excluded")
}

func TestSearchAndFilterScenario(t *testing.T) {
	events := sampleEvents()

	// query "free", no filters: only the free event survives
	got := Events.Apply(events, "free", Filters{}, date("2025-01-15"))
	require.Len(t, got, 1)
	assert.Equal(t, "Tech Talk", got[0].Title)

	// empty query, this-month at 2025-01-15: only the January event
	got = Events.Apply(events, "", NewFilters("this-month"), date("2025-01-15"))
	require.Len(t, got, 1)
	assert.Equal(t, "Tech Talk", got[0].Title)
}

func TestApplyPreservesOrder(t *testing.T) {
	events := sampleEvents()
	got := Events.Apply(events, "", Filters{}, date("2025-01-15"))
	require.Len(t, got, 2)
	assert.Equal(t, "Tech Talk", got[0].Title)
	assert.Equal(t, "Career Fair", got[1].Title)
}

func TestParseFilters(t *testing.T) {
	assert.Equal(t, Filters{}, ParseFilters(""))
	assert.Equal(t, NewFilters("free", "this-month"), ParseFilters("free,this-month"))
	assert.Equal(t, NewFilters("free"), ParseFilters(" free , ,"))
	// duplicates collapse
	assert.Equal(t, NewFilters("free"), ParseFilters("free,free"))
}

func TestFilterSetInspection(t *testing.T) {
	active := ParseFilters("this-month,free")

	assert.True(t, active.Has("free"))
	assert.False(t, active.Has("paid"))
	// sorted, for stable log output
	assert.Equal(t, []string{"free", "this-month"}, active.IDs())
}
