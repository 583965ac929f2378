package listing

import (
	"testing"
	"time"

	"glowup-diaries/internal/model"

	"github.com/stretchr/testify/assert"
)

// every menu option must have a rule, otherwise selecting it would
// silently pass everything
func TestEveryOptionHasARule(t *testing.T) {
	for _, opt := range Events.Options {
		assert.True(t, Events.KnownFilter(opt.ID), "events option %q", opt.ID)
	}
	for _, opt := range Opportunities.Options {
		assert.True(t, Opportunities.KnownFilter(opt.ID), "opportunities option %q", opt.ID)
	}
	for _, opt := range Jobs.Options {
		assert.True(t, Jobs.KnownFilter(opt.ID), "jobs option %q", opt.ID)
	}
	for _, opt := range Resources.Options {
		assert.True(t, Resources.KnownFilter(opt.ID), "resources option %q", opt.ID)
	}
}

func TestEventLocationRules(t *testing.T) {
	now := time.Now()
	physical := model.Event{LocationType: model.LocationPhysical}
	online := model.Event{LocationType: model.LocationOnline}
	hybrid := model.Event{LocationType: model.LocationHybrid}

	assert.True(t, Events.Rules["in-person"](physical, now))
	assert.False(t, Events.Rules["in-person"](online, now))

	assert.True(t, Events.Rules["virtual"](online, now))
	assert.True(t, Events.Rules["virtual"](hybrid, now))
	assert.False(t, Events.Rules["virtual"](physical, now))
}

func TestEventTimeWindows(t *testing.T) {
	now := date("2025-01-15")

	jan := model.Event{Date: date("2025-01-28")}
	feb := model.Event{Date: date("2025-02-03")}
	lastYearJan := model.Event{Date: date("2024-01-28")}

	assert.True(t, Events.Rules["this-month"](jan, now))
	assert.False(t, Events.Rules["this-month"](feb, now))
	// month matching compares year too
	assert.False(t, Events.Rules["this-month"](lastYearJan, now))

	assert.True(t, Events.Rules["next-month"](feb, now))
	assert.False(t, Events.Rules["next-month"](jan, now))

	assert.True(t, Events.Rules["future"](feb, now))
	assert.False(t, Events.Rules["future"](model.Event{Date: date("2025-01-01")}, now))
}

func TestNextMonthRollsOverYear(t *testing.T) {
	now := date("2025-12-10")
	jan := model.Event{Date: date("2026-01-05")}
	assert.True(t, Events.Rules["next-month"](jan, now))
}

func TestOpportunityCategoryRules(t *testing.T) {
	now := time.Now()
	o := model.Opportunity{Category: "Scholarship"}

	assert.True(t, Opportunities.Rules["scholarship"](o, now), "category match is case-insensitive")
	assert.False(t, Opportunities.Rules["grant"](o, now))
}

func TestJobLocationSubstringRules(t *testing.T) {
	now := time.Now()

	remote := model.Job{Location: "Remote - worldwide"}
	hybrid := model.Job{Location: "Lagos (Hybrid)"}
	onsite := model.Job{Location: "Abuja HQ"}

	assert.True(t, Jobs.Rules["remote"](remote, now))
	assert.False(t, Jobs.Rules["remote"](onsite, now))

	assert.True(t, Jobs.Rules["hybrid"](hybrid, now))

	assert.True(t, Jobs.Rules["on-site"](onsite, now))
	assert.False(t, Jobs.Rules["on-site"](remote, now))
	assert.False(t, Jobs.Rules["on-site"](hybrid, now))
}

func TestResourceRules(t *testing.T) {
	now := time.Now()

	premium := model.Resource{Category: "Templates", IsPremium: true, Featured: true}
	free := model.Resource{Category: "guides", IsPremium: false}

	assert.True(t, Resources.Rules["templates"](premium, now))
	assert.False(t, Resources.Rules["guides"](premium, now))

	assert.True(t, Resources.Rules["premium"](premium, now))
	assert.False(t, Resources.Rules["premium"](free, now))
	assert.True(t, Resources.Rules["free"](free, now))

	assert.True(t, Resources.Rules["featured"](premium, now))
	assert.False(t, Resources.Rules["featured"](free, now))
}

func TestJobSearchIncludesSalaryWhenPresent(t *testing.T) {
	salary := "₦500k - ₦800k"
	withSalary := model.Job{Title: "Data Analyst", SalaryRange: &salary}
	without := model.Job{Title: "Data Analyst"}

	assert.True(t, Jobs.MatchSearch(withSalary, "800k"))
	assert.False(t, Jobs.MatchSearch(without, "800k"))
}
