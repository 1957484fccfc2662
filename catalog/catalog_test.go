package catalog

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNamesAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range Shapes() {
		assert.False(t, seen[s.Name], "duplicate name %v", s.Name)
		seen[s.Name] = true
	}
}

func TestEssentialAndOptionalAreSubsetsOfIntervals(t *testing.T) {
	for _, s := range Shapes() {
		s := s
		t.Run(s.Name, func(t *testing.T) {
			for _, iv := range s.Essential {
				assert.True(t, s.HasInterval(iv), "essential %v not in intervals", iv)
			}
			for _, iv := range s.Optional {
				assert.True(t, s.HasInterval(iv), "optional %v not in intervals", iv)
			}
		})
	}
}

func TestEssentialAndOptionalDisjoint(t *testing.T) {
	for _, s := range Shapes() {
		for _, iv := range s.Essential {
			assert.False(t, s.IsOptional(iv), "%v: %v is both essential and optional", s.Name, iv)
		}
	}
}

func TestIntervalsStartAtRootAndStayInOctave(t *testing.T) {
	for _, s := range Shapes() {
		assert.Equal(t, 0, s.Intervals[0], "%v must start at the root", s.Name)
		for _, iv := range s.Intervals {
			assert.True(t, iv >= 0 && iv < 12, "%v: interval %v out of range", s.Name, iv)
		}
		assert.True(t, sort.IntsAreSorted(s.Intervals), "%v: intervals not ascending", s.Name)
	}
}

func intervalSetKey(ivs []int) string {
	sorted := append([]int{}, ivs...)
	sort.Ints(sorted)
	return fmt.Sprint(sorted)
}

// Uniqueness holds per family, not across families: a major-13 pitch set
// is the Ionian set, and the two never compete because scales only enter
// candidacy on scalar runs.
func TestTemplateIntervalSetsAreUniquePerFamily(t *testing.T) {
	seen := map[string]string{}
	for _, s := range Shapes() {
		key := intervalSetKey(s.Intervals)
		if s.IsScale() {
			key = "scale " + key
		}
		prev, dup := seen[key]
		assert.False(t, dup, "%v duplicates %v", s.Name, prev)
		seen[key] = s.Name
	}
}

// alterations render in ascending interval order, always
var alterationIntervals = map[string]int{
	"b9":  1,
	"#9":  3,
	"#11": 6,
	"#5":  8,
	"b13": 8,
}

func TestAlterationsInCanonicalOrder(t *testing.T) {
	for _, s := range Shapes() {
		last := -1
		for _, a := range s.Alterations {
			iv, known := alterationIntervals[a]
			assert.True(t, known, "%v: unknown alteration %v", s.Name, a)
			assert.True(t, iv >= last, "%v: alteration %v out of order", s.Name, a)
			last = iv
		}
	}
}

func TestScaleShapesCarryScaleNames(t *testing.T) {
	for _, s := range Shapes() {
		if s.IsScale() {
			assert.NotEmpty(t, s.ScaleName, s.Name)
			assert.Empty(t, s.Base, s.Name)
		} else {
			assert.Empty(t, s.ScaleName, s.Name)
		}
	}
}

func TestSimplifyingShapesHaveSevenths(t *testing.T) {
	for _, s := range Shapes() {
		if !s.Simplifies {
			continue
		}
		_, ok := s.SeventhInterval()
		assert.True(t, ok, s.Name)
	}
}

func TestByName(t *testing.T) {
	assert.NotNil(t, ByName("minor7"))
	assert.NotNil(t, ByName("6"))
	assert.NotNil(t, ByName("6_no5"))
	assert.Nil(t, ByName("nope"))
}
