package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/maeloisaaa/dr-emanuels-wonderland-app/internal/database"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Logical resource names. Each maps to one Mongo collection; documents are
// scoped by (namespace, identity_id) so the persisted layout is
// {namespace}/users/{identity}/{resource}.
const (
	ResourceDrawings    = "drawings"
	ResourceLetters     = "letters"
	ResourceCards       = "cards"
	ResourceMoods       = "moods"
	ResourcePhotos      = "photos"
	ResourceDaysCounter = "daysCounter"
)

// appendResources are the append-only collections; daysCounter is the one
// singleton resource, overwritten rather than appended.
var appendResources = map[string]bool{
	ResourceDrawings: true,
	ResourceLetters:  true,
	ResourceCards:    true,
	ResourceMoods:    true,
	ResourcePhotos:   true,
}

var storeNamespace = "wonderland"

// InitStore sets the document-store namespace. Call once at startup before
// serving requests.
func InitStore(namespace string) {
	if namespace != "" {
		storeNamespace = namespace
	}
}

// Namespace returns the active document-store namespace.
func Namespace() string { return storeNamespace }

// IsSubscribable reports whether resource can be watched over /ws/store.
func IsSubscribable(resource string) bool {
	return appendResources[resource] || resource == ResourceDaysCounter
}

// ResourcePath renders the logical path of one user's resource collection.
func ResourcePath(identityID, resource string) string {
	return fmt.Sprintf("%s/users/%s/%s", storeNamespace, identityID, resource)
}

// StoreWriteError wraps a failed create/overwrite. Surfaced once to the user;
// the input is preserved client-side so they can retry manually.
type StoreWriteError struct {
	Resource string
	Err      error
}

func (e *StoreWriteError) Error() string {
	return "store write failed for " + e.Resource + ": " + e.Err.Error()
}

func (e *StoreWriteError) Unwrap() error { return e.Err }

// StoreReadError wraps a failed list/subscription read. Views render
// "none yet" instead of crashing.
type StoreReadError struct {
	Resource string
	Err      error
}

func (e *StoreReadError) Error() string {
	return "store read failed for " + e.Resource + ": " + e.Err.Error()
}

func (e *StoreReadError) Unwrap() error { return e.Err }

func ownerFilter(identityID string) bson.M {
	return bson.M{
		"namespace":   storeNamespace,
		"identity_id": identityID,
	}
}

// sortForResource picks the display order pushed to subscribers: moods are
// newest-first; everything else is creation order for stable display.
func sortForResource(resource string) bson.D {
	if resource == ResourceMoods {
		return bson.D{{Key: "created_at", Value: -1}}
	}
	return bson.D{{Key: "created_at", Value: 1}}
}

// InsertRecord appends one record to an append-only resource and publishes a
// change event. The caller fills in namespace, identity and created_at.
func InsertRecord(ctx context.Context, identityID, resource string, doc interface{}) error {
	if !appendResources[resource] {
		return &StoreWriteError{Resource: resource, Err: errors.New("resource is not append-only")}
	}

	if _, err := database.DB.Collection(resource).InsertOne(ctx, doc); err != nil {
		return &StoreWriteError{Resource: resource, Err: err}
	}

	publishStoreChange(ctx, identityID, resource, "create")
	return nil
}

// ListRecords decodes one user's records into dest (a pointer to a slice),
// ordered per sortForResource.
func ListRecords(ctx context.Context, identityID, resource string, dest interface{}) error {
	opts := options.Find().SetSort(sortForResource(resource))

	cursor, err := database.DB.Collection(resource).Find(ctx, ownerFilter(identityID), opts)
	if err != nil {
		return &StoreReadError{Resource: resource, Err: err}
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, dest); err != nil {
		return &StoreReadError{Resource: resource, Err: err}
	}
	return nil
}

// CountRecords returns the number of records in one user's resource.
func CountRecords(ctx context.Context, identityID, resource string) (int64, error) {
	total, err := database.DB.Collection(resource).CountDocuments(ctx, ownerFilter(identityID))
	if err != nil {
		return 0, &StoreReadError{Resource: resource, Err: err}
	}
	return total, nil
}

// SetSingletonRecord overwrites the fixed-key document of a singleton
// resource (upsert) and publishes a change event.
func SetSingletonRecord(ctx context.Context, identityID, resource string, fields bson.M) error {
	update := bson.M{
		"$set":         fields,
		"$setOnInsert": bson.M{"created_at": time.Now().UTC()},
	}
	opts := options.Update().SetUpsert(true)

	if _, err := database.DB.Collection(resource).UpdateOne(ctx, ownerFilter(identityID), update, opts); err != nil {
		return &StoreWriteError{Resource: resource, Err: err}
	}

	publishStoreChange(ctx, identityID, resource, "overwrite")
	return nil
}

// GetSingletonRecord decodes the singleton document into dest. Returns
// (false, nil) when the user has never saved one.
func GetSingletonRecord(ctx context.Context, identityID, resource string, dest interface{}) (bool, error) {
	err := database.DB.Collection(resource).FindOne(ctx, ownerFilter(identityID)).Decode(dest)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, &StoreReadError{Resource: resource, Err: err}
	}
	return true, nil
}

// EnsureStoreIndexes creates the per-user compound indexes for every
// resource. Called on startup from main after Mongo has connected.
func EnsureStoreIndexes(ctx context.Context) error {
	resources := []string{
		ResourceDrawings, ResourceLetters, ResourceCards,
		ResourceMoods, ResourcePhotos, ResourceDaysCounter,
	}

	for _, resource := range resources {
		model := mongo.IndexModel{
			Keys: bson.D{
				{Key: "namespace", Value: 1},
				{Key: "identity_id", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("idx_owner_created"),
		}
		if _, err := database.DB.Collection(resource).Indexes().CreateOne(ctx, model); err != nil {
			return err
		}
	}
	return nil
}
