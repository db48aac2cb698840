package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wn-marie/mood-journal/internal/models"
)

// MongoEntryStore keeps journal entries in the journal_entries collection.
type MongoEntryStore struct {
	coll *mongo.Collection
}

func NewMongoEntryStore(db *mongo.Database) *MongoEntryStore {
	return &MongoEntryStore{coll: db.Collection("journal_entries")}
}

type entryDoc struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	CreatedAt        time.Time          `bson:"created_at"`
	Content          string             `bson:"content"`
	SentimentScore   float64            `bson:"sentiment_score"`
	EmotionLabel     string             `bson:"emotion_label"`
	AIProvider       string             `bson:"ai_provider"`
	DetailedAnalysis string             `bson:"detailed_analysis"`
}

func (d entryDoc) toModel() models.JournalEntry {
	return models.JournalEntry{
		ID:               d.ID.Hex(),
		CreatedAt:        d.CreatedAt,
		Content:          d.Content,
		SentimentScore:   d.SentimentScore,
		EmotionLabel:     d.EmotionLabel,
		AIProvider:       d.AIProvider,
		DetailedAnalysis: d.DetailedAnalysis,
	}
}

// Insert stores a new entry. The store assigns the ID and created_at.
func (s *MongoEntryStore) Insert(ctx context.Context, entry models.JournalEntry) (models.JournalEntry, error) {
	doc := entryDoc{
		ID:               primitive.NewObjectID(),
		CreatedAt:        time.Now(),
		Content:          entry.Content,
		SentimentScore:   entry.SentimentScore,
		EmotionLabel:     entry.EmotionLabel,
		AIProvider:       entry.AIProvider,
		DetailedAnalysis: entry.DetailedAnalysis,
	}

	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		return models.JournalEntry{}, err
	}

	return doc.toModel(), nil
}

// All returns every entry, newest first.
func (s *MongoEntryStore) All(ctx context.Context) ([]models.JournalEntry, error) {
	findOptions := options.Find()
	findOptions.SetSort(bson.M{"created_at": -1})

	cursor, err := s.coll.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []entryDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	entries := make([]models.JournalEntry, 0, len(docs))
	for _, d := range docs {
		entries = append(entries, d.toModel())
	}
	return entries, nil
}

// Delete removes an entry by its hex ID.
func (s *MongoEntryStore) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	_, err = s.coll.DeleteOne(ctx, bson.M{"_id": objectID})
	return err
}
