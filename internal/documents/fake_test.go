package documents

import (
    "context"
    "reflect"

    "go.mongodb.org/mongo-driver/bson"
    "go.mongodb.org/mongo-driver/bson/primitive"
    "go.mongodb.org/mongo-driver/mongo"
    "go.mongodb.org/mongo-driver/mongo/options"
)

// fakeCollection — заглушка коллекции в памяти. Курсоры и SingleResult
// собираются из настоящих типов драйвера, чтобы декодирование шло тем же
// путём, что и в бою.
type fakeCollection struct {
    docs    []bson.M
    inserts []bson.M
    updates []bson.M // зафиксированные $set
}

func (f *fakeCollection) InsertOne(_ context.Context, document interface{}, _ ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
    doc := document.(bson.M)
    if _, ok := doc["_id"]; !ok {
        doc["_id"] = primitive.NewObjectID()
    }
    f.inserts = append(f.inserts, doc)
    f.docs = append(f.docs, doc)
    return &mongo.InsertOneResult{InsertedID: doc["_id"]}, nil
}

func (f *fakeCollection) Find(_ context.Context, filter interface{}, _ ...*options.FindOptions) (*mongo.Cursor, error) {
    out := []interface{}{}
    for _, d := range f.docs {
        if f.matches(d, filter.(bson.M)) {
            out = append(out, d)
        }
    }
    return mongo.NewCursorFromDocuments(out, nil, nil)
}

func (f *fakeCollection) FindOne(_ context.Context, filter interface{}, _ ...*options.FindOneOptions) *mongo.SingleResult {
    for _, d := range f.docs {
        if f.matches(d, filter.(bson.M)) {
            return mongo.NewSingleResultFromDocument(d, nil, nil)
        }
    }
    return mongo.NewSingleResultFromDocument(bson.M{}, mongo.ErrNoDocuments, nil)
}

func (f *fakeCollection) UpdateOne(_ context.Context, filter, update interface{}, _ ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
    fl := filter.(bson.M)
    up := update.(bson.M)
    for _, d := range f.docs {
        if !f.matches(d, fl) {
            continue
        }
        if set, ok := up["$set"].(bson.M); ok {
            for k, v := range set {
                d[k] = v
            }
            f.updates = append(f.updates, set)
        }
        if push, ok := up["$push"].(bson.M); ok {
            for k, v := range push {
                arr, _ := d[k].([]int)
                d[k] = append(arr, v.(int))
            }
        }
        return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
    }
    return &mongo.UpdateResult{}, nil
}

func (f *fakeCollection) DeleteOne(_ context.Context, filter interface{}, _ ...*options.DeleteOptions) (*mongo.DeleteResult, error) {
    fl := filter.(bson.M)
    for i, d := range f.docs {
        if f.matches(d, fl) {
            f.docs = append(f.docs[:i], f.docs[i+1:]...)
            return &mongo.DeleteResult{DeletedCount: 1}, nil
        }
    }
    return &mongo.DeleteResult{}, nil
}

// matches — точное совпадение по ключам фильтра плюс операторы,
// которые использует ClassSchedules.Enroll ($ne у participants, $expr по capacity)
func (f *fakeCollection) matches(d, filter bson.M) bool {
    for k, v := range filter {
        switch k {
        case "$expr":
            arr, _ := d["participants"].([]int)
            capacity, _ := d["capacity"].(int)
            if len(arr) >= capacity {
                return false
            }
        default:
            if cond, ok := v.(bson.M); ok {
                if ne, has := cond["$ne"]; has {
                    arr, _ := d[k].([]int)
                    for _, it := range arr {
                        if it == ne.(int) {
                            return false
                        }
                    }
                    continue
                }
            }
            if !reflect.DeepEqual(d[k], v) {
                return false
            }
        }
    }
    return true
}

func newFakeModel(name string, col *fakeCollection) baseModel {
    return baseModel{name: name, col: col}
}
