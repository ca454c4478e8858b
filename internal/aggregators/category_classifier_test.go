package aggregators

import (
	"testing"

	"dataportal-stats/internal/models"

	"github.com/stretchr/testify/assert"
)

const (
	indexLotsResource = "bb909597-dedf-427d-8c04-4c02b3a24db3"
	specimenResource  = "05ff2255-c38a-40c9-b657-4ccb55ab2feb"
)

func TestCategoryClassifier_Classify(t *testing.T) {
	t.Parallel()

	classifier := NewCategoryClassifier([]string{indexLotsResource, specimenResource})

	tests := []struct {
		resourceID string
		want       models.Category
	}{
		{resourceID: indexLotsResource, want: models.CategoryCollection},
		{resourceID: specimenResource, want: models.CategoryCollection},
		{resourceID: "4d9b8b2a-0000-0000-0000-000000000000", want: models.CategoryOther},
		{resourceID: "", want: models.CategoryOther},
		{resourceID: " " + indexLotsResource, want: models.CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.resourceID, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.Classify(tt.resourceID))
			assert.Equal(t, tt.want, classifier.Classify(tt.resourceID), "classification is deterministic")
		})
	}
}

func TestCategoryClassifier_CopiesIDs(t *testing.T) {
	t.Parallel()

	ids := []string{indexLotsResource}
	classifier := NewCategoryClassifier(ids)
	ids[0] = "replaced"

	assert.Equal(t, models.CategoryCollection, classifier.Classify(indexLotsResource))
	assert.Equal(t, models.CategoryOther, classifier.Classify("replaced"))
}
