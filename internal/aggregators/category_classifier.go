package aggregators

import "dataportal-stats/internal/models"

// CategoryClassifier decides whether a resource belongs to the museum collection.
type CategoryClassifier interface {
	Classify(resourceID string) models.Category
}

type categoryClassifier struct {
	collection map[string]struct{}
}

// NewCategoryClassifier copies ids; later changes to the slice have no effect.
func NewCategoryClassifier(ids []string) CategoryClassifier {
	collection := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		collection[id] = struct{}{}
	}
	return &categoryClassifier{collection: collection}
}

func (c *categoryClassifier) Classify(resourceID string) models.Category {
	if _, ok := c.collection[resourceID]; ok {
		return models.CategoryCollection
	}
	return models.CategoryOther
}
