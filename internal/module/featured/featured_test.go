package featured

import (
	"testing"

	"glowup-diaries/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestLandingPayloadSectionsAreNeverNull(t *testing.T) {
	payload := landingPayload(nil, nil, nil, nil)

	assert.NotNil(t, payload["events"])
	assert.NotNil(t, payload["opportunities"])
	assert.NotNil(t, payload["jobs"])
	assert.NotNil(t, payload["resources"])
	assert.Len(t, payload["events"], 0)
}

func TestLandingPayloadPassesRecordsThrough(t *testing.T) {
	events := []model.Event{{Title: "Tech Talk", Featured: true}}
	resources := []model.Resource{{Title: "CV template", Featured: true}}

	payload := landingPayload(events, nil, nil, resources)

	assert.Equal(t, events, payload["events"])
	assert.Equal(t, resources, payload["resources"])
	assert.Len(t, payload["jobs"], 0)
}
