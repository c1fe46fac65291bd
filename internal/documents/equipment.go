package documents

import (
    "context"
    "strings"
    "time"

    "go.mongodb.org/mongo-driver/bson"
    "go.mongodb.org/mongo-driver/bson/primitive"
    "go.mongodb.org/mongo-driver/mongo"

    "github.com/xirucas/ProjetoBD2/internal/database"
    "github.com/xirucas/ProjetoBD2/internal/models"
)

// Equipment — коллекция "equipment": инвентарь зала
type Equipment struct {
    baseModel
}

func NewEquipment(gw *database.MongoGateway) *Equipment {
    return &Equipment{baseModel{gateway: gw, name: "equipment"}}
}

// Add создаёт запись об оборудовании; статус по умолчанию "active"
func (m *Equipment) Add(ctx context.Context, name, category, status string) (*mongo.InsertOneResult, error) {
    if strings.TrimSpace(status) == "" {
        status = "active"
    }
    return m.InsertOne(ctx, bson.M{
        "name":     name,
        "category": category,
        "status":   status,
    })
}

// UpdateStatus меняет статус оборудования
func (m *Equipment) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*mongo.UpdateResult, error) {
    return m.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"status": status})
}

// SetMaintenance фиксирует дату и заметки последнего обслуживания
func (m *Equipment) SetMaintenance(ctx context.Context, id primitive.ObjectID, date time.Time, notes string) (*mongo.UpdateResult, error) {
    fields := bson.M{"maintenance_date": date.UTC()}
    if notes != "" {
        fields["notes"] = notes
    }
    return m.UpdateOne(ctx, bson.M{"_id": id}, fields)
}

// All — весь инвентарь, типизированный
func (m *Equipment) All(ctx context.Context) ([]models.EquipmentDoc, error) {
    col := m.collection()
    if col == nil {
        return []models.EquipmentDoc{}, nil
    }
    cur, err := col.Find(ctx, bson.M{})
    if err != nil {
        return []models.EquipmentDoc{}, err
    }
    defer cur.Close(ctx)

    var out []models.EquipmentDoc
    if err := cur.All(ctx, &out); err != nil {
        return []models.EquipmentDoc{}, err
    }
    if out == nil {
        out = []models.EquipmentDoc{}
    }
    return out, nil
}
