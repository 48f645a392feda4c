package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestResourcePath(t *testing.T) {
	InitStore("wonderland")

	path := ResourcePath("9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d", ResourceLetters)
	assert.Equal(t, "wonderland/users/9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d/letters", path)
}

func TestInitStoreIgnoresEmptyNamespace(t *testing.T) {
	InitStore("wonderland")
	InitStore("")
	assert.Equal(t, "wonderland", Namespace())
}

func TestIsSubscribable(t *testing.T) {
	for _, resource := range []string{
		ResourceDrawings, ResourceLetters, ResourceCards,
		ResourceMoods, ResourcePhotos, ResourceDaysCounter,
	} {
		assert.True(t, IsSubscribable(resource), resource)
	}
	assert.False(t, IsSubscribable("identities"))
	assert.False(t, IsSubscribable(""))
}

func TestSortForResource(t *testing.T) {
	// Moods render newest-first; everything else keeps insertion order.
	assert.Equal(t, bson.D{{Key: "created_at", Value: -1}}, sortForResource(ResourceMoods))
	assert.Equal(t, bson.D{{Key: "created_at", Value: 1}}, sortForResource(ResourcePhotos))
	assert.Equal(t, bson.D{{Key: "created_at", Value: 1}}, sortForResource(ResourceLetters))
}
