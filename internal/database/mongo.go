package database

import (
    "context"
    "log"
    "sync"
    "time"

    "go.mongodb.org/mongo-driver/mongo"
    "go.mongodb.org/mongo-driver/mongo/options"

    "github.com/xirucas/ProjetoBD2/internal/config"
)

const mongoSelectionTimeout = 5 * time.Second

// MongoGateway держит единственное соединение с MongoDB на процесс.
// Недоступность Mongo не фатальна: обработчики получают nil-коллекцию
// и деградируют до пустых результатов.
type MongoGateway struct {
    mu     sync.Mutex
    url    string
    dbName string
    client *mongo.Client
    db     *mongo.Database
}

func NewMongoGateway(cfg *config.Config) *MongoGateway {
    return &MongoGateway{
        url:    cfg.MongoDB.URL,
        dbName: cfg.MongoDB.DB,
    }
}

// Connect подключается к MongoDB: ограниченный server selection timeout
// плюс ping, чтобы не зависнуть на мёртвом адресе.
func (g *MongoGateway) Connect(ctx context.Context) error {
    g.mu.Lock()
    defer g.mu.Unlock()

    if g.db != nil {
        return nil
    }

    opts := options.Client().
        ApplyURI(g.url).
        SetServerSelectionTimeout(mongoSelectionTimeout)

    client, err := mongo.Connect(ctx, opts)
    if err != nil {
        log.Printf("❌ Ошибка подключения к MongoDB: %v", err)
        return err
    }

    pingCtx, cancel := context.WithTimeout(ctx, mongoSelectionTimeout)
    defer cancel()
    if err := client.Ping(pingCtx, nil); err != nil {
        log.Printf("❌ MongoDB ping не прошёл: %v", err)
        _ = client.Disconnect(context.Background())
        return err
    }

    g.client = client
    g.db = client.Database(g.dbName)
    log.Printf("✅ MongoDB подключена: %s", g.dbName)
    return nil
}

// Database возвращает текущую базу; одна попытка переподключения,
// если соединение так и не было установлено.
func (g *MongoGateway) Database() *mongo.Database {
    g.mu.Lock()
    db := g.db
    g.mu.Unlock()
    if db != nil {
        return db
    }
    if err := g.Connect(context.Background()); err != nil {
        return nil
    }
    g.mu.Lock()
    defer g.mu.Unlock()
    return g.db
}

// Collection возвращает именованную коллекцию или nil, если базы нет
func (g *MongoGateway) Collection(name string) *mongo.Collection {
    db := g.Database()
    if db == nil {
        return nil
    }
    return db.Collection(name)
}

func (g *MongoGateway) IsConnected() bool {
    g.mu.Lock()
    defer g.mu.Unlock()
    return g.db != nil
}

// Close разрывает соединение при остановке процесса
func (g *MongoGateway) Close(ctx context.Context) {
    g.mu.Lock()
    defer g.mu.Unlock()
    if g.client != nil {
        _ = g.client.Disconnect(ctx)
        g.client = nil
        g.db = nil
    }
}
