package documents

import (
    "context"
    "errors"
    "time"

    "go.mongodb.org/mongo-driver/bson"
    "go.mongodb.org/mongo-driver/mongo"
    "go.mongodb.org/mongo-driver/mongo/options"

    "github.com/xirucas/ProjetoBD2/internal/database"
)

// ErrUnavailable — документная БД не подключена.
// Чтения при этом молча возвращают пустой результат,
// ошибку получают только записи.
var ErrUnavailable = errors.New("документная БД недоступна")

// collection — минимальный срез API *mongo.Collection,
// который используют модели. В тестах подменяется заглушкой.
type collection interface {
    InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
    Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
    FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult
    UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error)
    DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error)
}

// baseModel — общий CRUD над одной именованной коллекцией.
// Время создания/обновления проставляется здесь.
type baseModel struct {
    gateway *database.MongoGateway
    name    string
    col     collection // если задана явно (тесты), шлюз не используется
}

func (m *baseModel) collection() collection {
    if m.col != nil {
        return m.col
    }
    if m.gateway == nil {
        return nil
    }
    c := m.gateway.Collection(m.name)
    if c == nil {
        return nil
    }
    return c
}

// InsertOne проставляет created_at и вставляет документ
func (m *baseModel) InsertOne(ctx context.Context, document bson.M) (*mongo.InsertOneResult, error) {
    col := m.collection()
    if col == nil {
        return nil, ErrUnavailable
    }
    document["created_at"] = time.Now().UTC()
    return col.InsertOne(ctx, document)
}

// Find — выборка по точному совпадению фильтра.
// Без живой коллекции возвращает пустой список, не ошибку.
func (m *baseModel) Find(ctx context.Context, filter bson.M) ([]bson.M, error) {
    col := m.collection()
    if col == nil {
        return []bson.M{}, nil
    }
    cur, err := col.Find(ctx, filter)
    if err != nil {
        return []bson.M{}, err
    }
    defer cur.Close(ctx)

    var out []bson.M
    if err := cur.All(ctx, &out); err != nil {
        return []bson.M{}, err
    }
    if out == nil {
        out = []bson.M{}
    }
    return out, nil
}

// FindOne возвращает nil, если документа нет или коллекция недоступна
func (m *baseModel) FindOne(ctx context.Context, filter bson.M) (bson.M, error) {
    col := m.collection()
    if col == nil {
        return nil, nil
    }
    var doc bson.M
    err := col.FindOne(ctx, filter).Decode(&doc)
    if errors.Is(err, mongo.ErrNoDocuments) {
        return nil, nil
    }
    if err != nil {
        return nil, err
    }
    return doc, nil
}

// UpdateOne — частичное обновление первого совпадения,
// updated_at проставляется в $set
func (m *baseModel) UpdateOne(ctx context.Context, filter, fields bson.M) (*mongo.UpdateResult, error) {
    col := m.collection()
    if col == nil {
        return nil, ErrUnavailable
    }
    fields["updated_at"] = time.Now().UTC()
    return col.UpdateOne(ctx, filter, bson.M{"$set": fields})
}

func (m *baseModel) DeleteOne(ctx context.Context, filter bson.M) (*mongo.DeleteResult, error) {
    col := m.collection()
    if col == nil {
        return nil, ErrUnavailable
    }
    return col.DeleteOne(ctx, filter)
}
