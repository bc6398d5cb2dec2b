package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

// AuditLog is the document kept per completed transfer. It duplicates the
// ledger entry on purpose: the audit trail lives in a separate store so a
// Postgres incident cannot take the trail down with it.
type AuditLog struct {
	ID          string    `bson:"_id,omitempty"`
	Reference   string    `bson:"reference"`
	SenderID    string    `bson:"sender_id"`
	ReceiverID  string    `bson:"receiver_id"`
	Amount      int64     `bson:"amount"`
	Fee         int64     `bson:"fee"`
	Status      string    `bson:"status"`
	ProcessedAt time.Time `bson:"processed_at"`
}

type AuditRepository struct {
	collection *mongo.Collection
}

func NewAuditRepository(client *mongo.Client, dbName string) *AuditRepository {
	collection := client.Database(dbName).Collection("audit_logs")
	return &AuditRepository{collection: collection}
}

func (r *AuditRepository) Save(ctx context.Context, log AuditLog) error {
	log.ProcessedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, log)
	if err != nil {
		return fmt.Errorf("failed to insert audit log: %w", err)
	}
	return nil
}
