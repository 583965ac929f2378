package resource

import (
	"testing"

	"glowup-diaries/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestDecideAccessPremiumOpensFile(t *testing.T) {
	res := model.Resource{
		Title:     "Salary negotiation course",
		IsPremium: true,
		FileURL:   "https://cdn.example.com/resources/course.pdf",
	}

	decision := decideAccess(res)
	assert.Equal(t, "access", decision.Action)
	assert.Equal(t, res.FileURL, decision.URL)
	assert.Empty(t, decision.Filename)
}

func TestDecideAccessFreeDownloads(t *testing.T) {
	res := model.Resource{
		Title:     "CV template",
		IsPremium: false,
		FileURL:   "https://cdn.example.com/resources/cv-template.docx",
	}

	decision := decideAccess(res)
	assert.Equal(t, "download", decision.Action)
	assert.Equal(t, res.FileURL, decision.URL)
	assert.Equal(t, "cv-template.docx", decision.Filename)
}

func TestDecideAccessFallsBackToTitle(t *testing.T) {
	res := model.Resource{Title: "Worksheet", FileURL: "https://cdn.example.com/resources/"}

	decision := decideAccess(res)
	assert.Equal(t, "download", decision.Action)
	assert.Equal(t, "Worksheet", decision.Filename)
}
