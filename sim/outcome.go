package sim

import (
	"errors"
	"fmt"
)

// Outcome is the terminal result of one walk.
type Outcome string

const (
	OutcomeCrash   Outcome = "crash"
	OutcomeSuccess Outcome = "success"
	// OutcomeStay is only produced by TaxonomyExtended.
	OutcomeStay Outcome = "stay"
)

// Taxonomy selects how reaching a boundary is labelled.
type Taxonomy string

const (
	// TaxonomyBasic counts reaching either sidewalk as success.
	TaxonomyBasic Taxonomy = "basic"
	// TaxonomyExtended splits the far sidewalk (success) from retreating
	// back past the origin (stay).
	TaxonomyExtended Taxonomy = "extended"
)

// ErrInvalidTaxonomy is returned when a taxonomy name is not recognized.
var ErrInvalidTaxonomy = errors.New("invalid outcome taxonomy")

var validTaxonomies = map[Taxonomy]bool{
	TaxonomyBasic:    true,
	TaxonomyExtended: true,
	"":               true, // empty defaults to extended
}

// ParseTaxonomy validates name. Empty defaults to TaxonomyExtended.
func ParseTaxonomy(name string) (Taxonomy, error) {
	t := Taxonomy(name)
	if !validTaxonomies[t] {
		return "", fmt.Errorf("%w %q; valid: basic, extended", ErrInvalidTaxonomy, name)
	}
	if t == "" {
		return TaxonomyExtended, nil
	}
	return t, nil
}

// Classifier decides whether a walk has ended and why.
type Classifier struct {
	street   *Street
	taxonomy Taxonomy
	rng      RandomSource
}

// NewClassifier creates a classifier. Collision rolls are drawn from rng,
// which must be the same stream the walker consumes to keep call order fixed.
func NewClassifier(street *Street, taxonomy Taxonomy, rng RandomSource) *Classifier {
	return &Classifier{street: street, taxonomy: taxonomy, rng: rng}
}

// Taxonomy returns the taxonomy this classifier labels with.
func (c *Classifier) Taxonomy() Taxonomy {
	return c.taxonomy
}

// Classify checks, in order: a collision roll if the walker stands in a
// dangerous zone, the far boundary, then the near boundary. The second
// return value is false when the walk must continue.
//
// The roll is only drawn inside a dangerous zone; positions off the street
// have no zone and are never rolled for.
func (c *Classifier) Classify(w *Walker) (Outcome, bool) {
	y := w.VerticalPosition()
	if c.street.ZoneAt(y) == ZoneDangerous {
		if c.rng.Float64() < c.street.HitProbability() {
			return OutcomeCrash, true
		}
	}
	if y >= c.street.TotalLength() {
		return OutcomeSuccess, true
	}
	if y < 0 {
		if c.taxonomy == TaxonomyBasic {
			return OutcomeSuccess, true
		}
		return OutcomeStay, true
	}
	return "", false
}
