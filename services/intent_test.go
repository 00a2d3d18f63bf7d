package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"solar-storefront-backend/models"
)

func TestClassifyIntent(t *testing.T) {
	cases := []struct {
		query string
		want  Intent
	}{
		{"hi", IntentGreeting},
		{"Hello there", IntentGreeting},
		{"good morning", IntentGreeting},
		{"", IntentGreeting},
		{"what is your warranty policy", IntentWarranty},
		{"do you do installation", IntentInstall},
		{"what services do you offer", IntentServices},
		{"how can I get in touch", IntentContact},
		{"what is your phone number", IntentContact},
		{"tell me about your company", IntentCompanyInfo},
		{"how much does it cost", IntentPricing},
		{"magkano po", IntentPricing},
		{"show me the specs", IntentSpecs},
		{"what features does it have", IntentFeatures},
		{"where can I use this", IntentSpaces},
		{"any customer reviews", IntentReviews},
		{"are there similar products", IntentRelated},
		{"what products do you sell", IntentCategoryBrowse},
		{"tell me more about this", IntentOverview},
		{"what is the meaning of life", IntentUnknown},
		{"asdf qwerty", IntentUnknown},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ClassifyIntent(tc.query), "query: %q", tc.query)
	}
}

func TestIntentNeedsProduct(t *testing.T) {
	assert.True(t, IntentSpecs.NeedsProduct())
	assert.True(t, IntentFeatures.NeedsProduct())
	assert.True(t, IntentSpaces.NeedsProduct())
	assert.True(t, IntentOverview.NeedsProduct())
	assert.True(t, IntentReviews.NeedsProduct())
	assert.True(t, IntentRelated.NeedsProduct())

	assert.False(t, IntentGreeting.NeedsProduct())
	assert.False(t, IntentContact.NeedsProduct())
	assert.False(t, IntentPricing.NeedsProduct())
	assert.False(t, IntentUnknown.NeedsProduct())
}

func TestDetectCategory(t *testing.T) {
	cases := []struct {
		query string
		want  models.Category
		ok    bool
	}{
		{"show me your EV chargers", models.CategoryEVCharging, true},
		{"street light options", models.CategorySolarStreet, true},
		{"solar for my home", models.CategorySmartHome, true},
		{"battery storage cabinets", models.CategoryCabinet, true},
		{"something unrelated", "", false},
	}

	for _, tc := range cases {
		got, ok := detectCategory(tc.query)
		assert.Equal(t, tc.ok, ok, "query: %q", tc.query)
		if tc.ok {
			assert.Equal(t, tc.want, got, "query: %q", tc.query)
		}
	}
}
