package catalog

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"solar-storefront-backend/models"

	"github.com/sony/gobreaker"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore reads the product catalog from a MongoDB collection. Reads go
// through a circuit breaker so a flapping database degrades the knowledge
// base to static chunks instead of stalling every request.
type MongoStore struct {
	collection *mongo.Collection
	breaker    *gobreaker.CircuitBreaker
	timeout    time.Duration
}

func NewMongoStore(db *mongo.Database, timeout time.Duration) *MongoStore {
	return &MongoStore{
		collection: db.Collection("products"),
		breaker:    newCatalogBreaker(),
		timeout:    timeout,
	}
}

func newCatalogBreaker() *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "ProductCatalog",
		MaxRequests: 5,
		Interval:    10 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		// A missing document is a valid answer, not a database failure;
		// only real I/O errors may trip the breaker.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrNotFound)
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Printf("Circuit breaker %s: %s -> %s", name, from, to)
		},
	})
}

func (s *MongoStore) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	result, err := s.breaker.Execute(func() (interface{}, error) {
		ctx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()

		var product models.Product
		err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		if err != nil {
			return nil, fmt.Errorf("failed to fetch product %s: %w", id, err)
		}
		return &product, nil
	})
	if err != nil {
		return nil, err
	}

	product := result.(*models.Product)
	product.Normalize()
	return product, nil
}

func (s *MongoStore) ListProducts(ctx context.Context) ([]models.Product, error) {
	result, err := s.breaker.Execute(func() (interface{}, error) {
		ctx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()

		cursor, err := s.collection.Find(ctx, bson.M{},
			options.Find().SetSort(bson.D{{Key: "category", Value: 1}, {Key: "_id", Value: 1}}))
		if err != nil {
			return nil, fmt.Errorf("failed to list products: %w", err)
		}
		defer cursor.Close(ctx)

		products := make([]models.Product, 0)
		if err := cursor.All(ctx, &products); err != nil {
			return nil, fmt.Errorf("failed to decode products: %w", err)
		}
		return products, nil
	})
	if err != nil {
		return nil, err
	}

	products := result.([]models.Product)
	for i := range products {
		products[i].Normalize()
	}
	return products, nil
}

// Seed inserts the sample catalog into an empty products collection so a
// fresh deployment has data to index. Existing documents are left untouched.
func (s *MongoStore) Seed(ctx context.Context) error {
	count, err := s.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(SampleCatalog))
	for _, p := range SampleCatalog {
		docs = append(docs, p)
	}

	_, err = s.collection.InsertMany(ctx, docs)
	if err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}
	log.Printf("Seeded product catalog with %d products", len(docs))
	return nil
}
