// MongoHandler is an slog.Handler that asynchronously stores log records in a
// MongoDB collection, enabled by the LOG_MONGO_URI config key.
//
//   - Records are enqueued into a buffered channel (non-blocking).
//   - A background goroutine drains the channel in batches via InsertMany.
//   - When the channel is full the record is dropped; logging must never
//     block the request path.
//   - Call Close() on shutdown to flush and disconnect.
package logger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	mongoQueueSize = 4096
	mongoBatchSize = 50
	mongoDrainTick = 2 * time.Second
)

// LogDocument is the shape written to MongoDB.
type LogDocument struct {
	Time  time.Time `bson:"time"`
	Level string    `bson:"level"`
	Msg   string    `bson:"msg"`
	Attrs bson.M    `bson:"attrs,omitempty"`
}

// MongoHandler is an slog.Handler that writes to MongoDB asynchronously.
type MongoHandler struct {
	col    *mongo.Collection
	client *mongo.Client
	queue  chan LogDocument
	done   chan struct{}
	attrs  []slog.Attr
}

// NewMongoHandler connects to uri and targets db/collection. The caller must
// eventually call Close().
func NewMongoHandler(uri, db, collection string) (*MongoHandler, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOpts := options.Client().ApplyURI(uri).
		SetConnectTimeout(5 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetMaxPoolSize(10)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("mongo_handler: connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo_handler: ping: %w", err)
	}

	col := client.Database(db).Collection(collection)

	_, _ = col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "time", Value: -1}},
	})

	h := &MongoHandler{
		col:    col,
		client: client,
		queue:  make(chan LogDocument, mongoQueueSize),
		done:   make(chan struct{}),
	}

	go h.drainLoop()
	return h, nil
}

func (h *MongoHandler) Enabled(_ context.Context, _ slog.Level) bool { return true }

func (h *MongoHandler) Handle(_ context.Context, r slog.Record) error {
	doc := LogDocument{
		Time:  r.Time,
		Level: r.Level.String(),
		Msg:   r.Message,
		Attrs: bson.M{},
	}

	for _, a := range h.attrs {
		doc.Attrs[a.Key] = a.Value.Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		doc.Attrs[a.Key] = a.Value.Any()
		return true
	})

	select {
	case h.queue <- doc:
	default:
		// Queue full: drop rather than block.
	}
	return nil
}

func (h *MongoHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr(nil), h.attrs...), attrs...)
	return &clone
}

func (h *MongoHandler) WithGroup(name string) slog.Handler {
	// Groups are flattened; the log sink is for querying, not fidelity.
	return h
}

func (h *MongoHandler) drainLoop() {
	ticker := time.NewTicker(mongoDrainTick)
	defer ticker.Stop()

	batch := make([]interface{}, 0, mongoBatchSize)

	flush := func() {
		if len(batch) == 0 {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		_, _ = h.col.InsertMany(ctx, batch)
		cancel()
		batch = batch[:0]
	}

	for {
		select {
		case doc := <-h.queue:
			batch = append(batch, doc)
			if len(batch) >= mongoBatchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-h.done:
			for {
				select {
				case doc := <-h.queue:
					batch = append(batch, doc)
				default:
					flush()
					return
				}
			}
		}
	}
}

// Close flushes pending records and disconnects from MongoDB.
func (h *MongoHandler) Close() error {
	close(h.done)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return h.client.Disconnect(ctx)
}

// EnableMongoSink replaces the base logger with one that fans out to both the
// current handler and a Mongo handler. Returns the handler for Close().
func EnableMongoSink(uri, db, collection string) (*MongoHandler, error) {
	mh, err := NewMongoHandler(uri, db, collection)
	if err != nil {
		return nil, err
	}

	L = slog.New(fanoutHandler{primary: L.Handler(), secondary: mh})
	slog.SetDefault(L)
	return mh, nil
}

// fanoutHandler duplicates records to two handlers.
type fanoutHandler struct {
	primary   slog.Handler
	secondary slog.Handler
}

func (f fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return f.primary.Enabled(ctx, level) || f.secondary.Enabled(ctx, level)
}

func (f fanoutHandler) Handle(ctx context.Context, r slog.Record) error {
	err := f.primary.Handle(ctx, r.Clone())
	_ = f.secondary.Handle(ctx, r.Clone())
	return err
}

func (f fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return fanoutHandler{
		primary:   f.primary.WithAttrs(attrs),
		secondary: f.secondary.WithAttrs(attrs),
	}
}

func (f fanoutHandler) WithGroup(name string) slog.Handler {
	return fanoutHandler{
		primary:   f.primary.WithGroup(name),
		secondary: f.secondary.WithGroup(name),
	}
}
