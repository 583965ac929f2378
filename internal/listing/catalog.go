package listing

import (
	"strings"
	"time"

	"glowup-diaries/internal/model"
)

// Events directory: date-windowed, cost and location-type filters.
// The free/paid search tokens are enabled for events only.
var Events = &Catalog[model.Event]{
	Options: []Option{
		{ID: "this-month", Label: "This Month", Value: "this-month", Group: "Time"},
		{ID: "next-month", Label: "Next Month", Value: "next-month", Group: "Time"},
		{ID: "future", Label: "Future Events", Value: "future", Group: "Time"},
		{ID: "free", Label: "Free", Value: true, Group: "Cost"},
		{ID: "paid", Label: "Paid", Value: false, Group: "Cost"},
		{ID: "in-person", Label: "In Person", Value: "in-person", Group: "Location"},
		{ID: "virtual", Label: "Virtual", Value: "virtual", Group: "Location"},
	},
	SearchFields: func(e model.Event) []string {
		return []string{e.Title, e.Description, e.Location, e.LocationType}
	},
	Date:   func(e model.Event) time.Time { return e.Date },
	IsFree: func(e model.Event) bool { return e.IsFree },
	Rules: map[string]Rule[model.Event]{
		"this-month": func(e model.Event, now time.Time) bool { return sameMonth(e.Date, now) },
		"next-month": func(e model.Event, now time.Time) bool { return sameMonth(e.Date, nextMonth(now)) },
		"future":     func(e model.Event, now time.Time) bool { return e.Date.After(now) },
		"free":       func(e model.Event, _ time.Time) bool { return e.IsFree },
		"paid":       func(e model.Event, _ time.Time) bool { return !e.IsFree },
		"in-person": func(e model.Event, _ time.Time) bool {
			return e.LocationType == model.LocationPhysical
		},
		"virtual": func(e model.Event, _ time.Time) bool {
			return e.LocationType == model.LocationOnline || e.LocationType == model.LocationHybrid
		},
	},
}

// Opportunities directory: deadline windows and category filters. The
// free/paid rules exist even though the menu does not offer them, so
// direct links with those ids keep working.
var Opportunities = &Catalog[model.Opportunity]{
	Options: []Option{
		{ID: "ending-soon", Label: "Ending Soon", Value: "ending-soon", Group: "Time"},
		{ID: "this-month", Label: "Deadline This Month", Value: "this-month", Group: "Time"},
		{ID: "next-month", Label: "Deadline Next Month", Value: "next-month", Group: "Time"},
		{ID: "scholarship", Label: "Scholarship", Value: "scholarship", Group: "Type"},
		{ID: "fellowship", Label: "Fellowship", Value: "fellowship", Group: "Type"},
		{ID: "internship", Label: "Internship", Value: "internship", Group: "Type"},
		{ID: "grant", Label: "Grant", Value: "grant", Group: "Type"},
		{ID: "competition", Label: "Competition", Value: "competition", Group: "Type"},
		{ID: "mentorship", Label: "Mentorship", Value: "mentorship", Group: "Type"},
	},
	SearchFields: func(o model.Opportunity) []string {
		return []string{o.Title, o.Description, o.Category, o.Eligibility}
	},
	Date: func(o model.Opportunity) time.Time { return o.Deadline },
	Rules: map[string]Rule[model.Opportunity]{
		"ending-soon": func(o model.Opportunity, now time.Time) bool { return endingSoon(o.Deadline, now) },
		"this-month":  func(o model.Opportunity, now time.Time) bool { return sameMonth(o.Deadline, now) },
		"next-month":  func(o model.Opportunity, now time.Time) bool { return sameMonth(o.Deadline, nextMonth(now)) },
		"scholarship": opportunityCategory("scholarship"),
		"fellowship":  opportunityCategory("fellowship"),
		"internship":  opportunityCategory("internship"),
		"grant":       opportunityCategory("grant"),
		"competition": opportunityCategory("competition"),
		"mentorship":  opportunityCategory("mentorship"),
		"free":        func(o model.Opportunity, _ time.Time) bool { return o.IsFree },
		"paid":        func(o model.Opportunity, _ time.Time) bool { return !o.IsFree },
	},
}

// Jobs directory: deadline windows plus location filters. Job postings
// carry free-form locations ("Lagos (Hybrid)", "Remote - worldwide"),
// so the location rules test substring containment, not the type enum.
var Jobs = &Catalog[model.Job]{
	Options: []Option{
		{ID: "ending-soon", Label: "Ending Soon", Value: "ending-soon", Group: "Time"},
		{ID: "this-month", Label: "Deadline This Month", Value: "this-month", Group: "Time"},
		{ID: "next-month", Label: "Deadline Next Month", Value: "next-month", Group: "Time"},
		{ID: "remote", Label: "Remote", Value: "remote", Group: "Location"},
		{ID: "hybrid", Label: "Hybrid", Value: "hybrid", Group: "Location"},
		{ID: "on-site", Label: "On-site", Value: "on-site", Group: "Location"},
	},
	SearchFields: func(j model.Job) []string {
		fields := []string{j.Title, j.Description, j.Company, j.Location, j.JobType, j.Requirements}
		if j.SalaryRange != nil {
			fields = append(fields, *j.SalaryRange)
		}
		return fields
	},
	Date: func(j model.Job) time.Time { return j.Deadline },
	Rules: map[string]Rule[model.Job]{
		"ending-soon": func(j model.Job, now time.Time) bool { return endingSoon(j.Deadline, now) },
		"this-month":  func(j model.Job, now time.Time) bool { return sameMonth(j.Deadline, now) },
		"next-month":  func(j model.Job, now time.Time) bool { return sameMonth(j.Deadline, nextMonth(now)) },
		"remote": func(j model.Job, _ time.Time) bool {
			return strings.Contains(strings.ToLower(j.Location), "remote")
		},
		"hybrid": func(j model.Job, _ time.Time) bool {
			return strings.Contains(strings.ToLower(j.Location), "hybrid")
		},
		"on-site": func(j model.Job, _ time.Time) bool {
			loc := strings.ToLower(j.Location)
			return !strings.Contains(loc, "remote") && !strings.Contains(loc, "hybrid")
		},
	},
}

// Resources directory: category, access and featured filters. No date
// field and no cost tokens; "free" here means not premium.
var Resources = &Catalog[model.Resource]{
	Options: []Option{
		{ID: "career-development", Label: "Career Development", Value: "career development", Group: "Type"},
		{ID: "study-materials", Label: "Study Materials", Value: "study materials", Group: "Type"},
		{ID: "templates", Label: "Templates", Value: "templates", Group: "Type"},
		{ID: "guides", Label: "Guides", Value: "guides", Group: "Type"},
		{ID: "worksheets", Label: "Worksheets", Value: "worksheets", Group: "Type"},
		{ID: "courses", Label: "Courses", Value: "courses", Group: "Type"},
		{ID: "free", Label: "Free", Value: true, Group: "Access"},
		{ID: "premium", Label: "Premium", Value: false, Group: "Access"},
		{ID: "featured", Label: "Featured", Value: true, Group: "Featured"},
	},
	SearchFields: func(r model.Resource) []string {
		return []string{r.Title, r.Description, r.Category}
	},
	Rules: map[string]Rule[model.Resource]{
		"career-development": resourceCategory("career development"),
		"study-materials":    resourceCategory("study materials"),
		"templates":          resourceCategory("templates"),
		"guides":             resourceCategory("guides"),
		"worksheets":         resourceCategory("worksheets"),
		"courses":            resourceCategory("courses"),
		"free":               func(r model.Resource, _ time.Time) bool { return !r.IsPremium },
		"premium":            func(r model.Resource, _ time.Time) bool { return r.IsPremium },
		"featured":           func(r model.Resource, _ time.Time) bool { return r.Featured },
	},
}

func opportunityCategory(value string) Rule[model.Opportunity] {
	return func(o model.Opportunity, _ time.Time) bool {
		return strings.ToLower(o.Category) == value
	}
}

func resourceCategory(value string) Rule[model.Resource] {
	return func(r model.Resource, _ time.Time) bool {
		return strings.ToLower(r.Category) == value
	}
}
