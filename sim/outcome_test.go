package sim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func walkerAt(y float64) *Walker {
	w := NewWalker(UniformStep{}, &scriptedSource{})
	w.Position.Y = y
	return w
}

func TestParseTaxonomy(t *testing.T) {
	tests := []struct {
		name    string
		want    Taxonomy
		wantErr bool
	}{
		{"basic", TaxonomyBasic, false},
		{"extended", TaxonomyExtended, false},
		{"", TaxonomyExtended, false},
		{"Basic", "", true},
		{"full", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTaxonomy(tt.name)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidTaxonomy))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassify_SafeZone_NoDrawNotTerminal(t *testing.T) {
	// GIVEN a walker in a safe zone and a source with no draws
	src := &scriptedSource{}
	c := NewClassifier(NewStreet(), TaxonomyExtended, src)

	// WHEN classified
	_, done := c.Classify(walkerAt(4))

	// THEN the walk continues and no collision roll was made
	assert.False(t, done)
}

func TestClassify_DangerousZone_CollisionThreshold(t *testing.T) {
	tests := []struct {
		name     string
		u        float64
		wantDone bool
	}{
		{"hit", 0.0, true},
		{"just under", 0.0499, true},
		{"at threshold", 0.05, false},
		{"miss", 0.9, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &scriptedSource{floats: []float64{tt.u}}
			c := NewClassifier(NewStreet(), TaxonomyExtended, src)

			o, done := c.Classify(walkerAt(2))

			assert.Equal(t, tt.wantDone, done)
			if tt.wantDone {
				assert.Equal(t, OutcomeCrash, o)
			}
			assert.True(t, src.exhausted(), "exactly one roll expected")
		})
	}
}

func TestClassify_Boundaries(t *testing.T) {
	tests := []struct {
		name     string
		taxonomy Taxonomy
		y        float64
		want     Outcome
	}{
		{"far side extended", TaxonomyExtended, 8, OutcomeSuccess},
		{"well past far side", TaxonomyExtended, 11.3, OutcomeSuccess},
		{"back past origin extended", TaxonomyExtended, -0.5, OutcomeStay},
		{"far side basic", TaxonomyBasic, 8, OutcomeSuccess},
		{"back past origin basic", TaxonomyBasic, -0.5, OutcomeSuccess},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Off-street positions have no zone, so no roll is drawn.
			c := NewClassifier(NewStreet(), tt.taxonomy, &scriptedSource{})
			o, done := c.Classify(walkerAt(tt.y))
			assert.True(t, done)
			assert.Equal(t, tt.want, o)
		})
	}
}

func TestClassify_OriginIsOnStreet(t *testing.T) {
	c := NewClassifier(NewStreet(), TaxonomyExtended, &scriptedSource{})
	_, done := c.Classify(walkerAt(0))
	assert.False(t, done, "y=0 is the first safe zone, not the near sidewalk")
}
