package documents

import (
    "context"
    "time"

    "go.mongodb.org/mongo-driver/bson"
    "go.mongodb.org/mongo-driver/bson/primitive"
    "go.mongodb.org/mongo-driver/mongo"

    "github.com/xirucas/ProjetoBD2/internal/database"
    "github.com/xirucas/ProjetoBD2/internal/models"
)

// CheckIns — коллекция "checkins": вход/выход посетителей
type CheckIns struct {
    baseModel
}

func NewCheckIns(gw *database.MongoGateway) *CheckIns {
    return &CheckIns{baseModel{gateway: gw, name: "checkins"}}
}

// Create регистрирует вход: checkout_time и duration_minutes пустые
func (m *CheckIns) Create(ctx context.Context, userID int, username string) (*mongo.InsertOneResult, error) {
    return m.InsertOne(ctx, bson.M{
        "user_id":          userID,
        "username":         username,
        "checkin_time":     time.Now().UTC(),
        "checkout_time":    nil,
        "duration_minutes": nil,
    })
}

// checkoutFields считает длительность в минутах (дробную) от
// исходного времени входа до переданного "сейчас"
func checkoutFields(checkinTime, now time.Time) bson.M {
    return bson.M{
        "checkout_time":    now,
        "duration_minutes": now.Sub(checkinTime).Minutes(),
    }
}

// Checkout закрывает посещение. Неизвестный id — no-op (nil, nil).
// Повторный вызов пересчитает длительность от исходного входа до нового
// "сейчас" и перезапишет первый результат — так ведёт себя система,
// менять без решения владельца продукта нельзя.
func (m *CheckIns) Checkout(ctx context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error) {
    doc, err := m.FindOne(ctx, bson.M{"_id": id})
    if err != nil {
        return nil, err
    }
    if doc == nil {
        return nil, nil
    }

    checkinTime, ok := docTime(doc, "checkin_time")
    if !ok {
        return nil, nil
    }
    return m.UpdateOne(ctx, bson.M{"_id": id}, checkoutFields(checkinTime, time.Now().UTC()))
}

// ForUser — посещения пользователя, типизированные
func (m *CheckIns) ForUser(ctx context.Context, userID int) ([]models.CheckIn, error) {
    col := m.collection()
    if col == nil {
        return []models.CheckIn{}, nil
    }
    cur, err := col.Find(ctx, bson.M{"user_id": userID})
    if err != nil {
        return []models.CheckIn{}, err
    }
    defer cur.Close(ctx)

    var out []models.CheckIn
    if err := cur.All(ctx, &out); err != nil {
        return []models.CheckIn{}, err
    }
    if out == nil {
        out = []models.CheckIn{}
    }
    return out, nil
}

// Open возвращает незакрытое посещение пользователя, если оно есть
func (m *CheckIns) Open(ctx context.Context, userID int) (bson.M, error) {
    return m.FindOne(ctx, bson.M{"user_id": userID, "checkout_time": nil})
}

// docTime достаёт время из bson.M: драйвер отдаёт primitive.DateTime
func docTime(doc bson.M, key string) (time.Time, bool) {
    switch v := doc[key].(type) {
    case primitive.DateTime:
        return v.Time().UTC(), true
    case time.Time:
        return v.UTC(), true
    default:
        return time.Time{}, false
    }
}
