package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/DioneMartin/REST-AWS/internal/core/domain"
)

const collectionTeachers = "teachers"

type TeacherRepository struct {
	col *mongo.Collection
	ids sequence
}

func NewTeacherRepository(db *mongo.Database) *TeacherRepository {
	return &TeacherRepository{
		col: db.Collection(collectionTeachers),
		ids: newSequence(db, collectionTeachers),
	}
}

func (r *TeacherRepository) List(ctx context.Context) ([]*domain.Teacher, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find teachers: %w", err)
	}
	out := []*domain.Teacher{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode teachers: %w", err)
	}
	return out, nil
}

func (r *TeacherRepository) FindByID(ctx context.Context, id int64) (*domain.Teacher, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var t domain.Teacher
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&t)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTeacherNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *TeacherRepository) Create(ctx context.Context, t *domain.Teacher) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.ids.next(ctx)
	if err != nil {
		return err
	}
	t.ID = id

	if _, err := r.col.InsertOne(ctx, t); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrEmployeeCodeTaken
		}
		return fmt.Errorf("insert teacher: %w", err)
	}
	return nil
}

func (r *TeacherRepository) Update(ctx context.Context, id int64, patch domain.TeacherPatch) (*domain.Teacher, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{}
	if patch.EmployeeCode != nil {
		set["employee_code"] = *patch.EmployeeCode
	}
	if patch.GivenNames != nil {
		set["given_names"] = *patch.GivenNames
	}
	if patch.Surnames != nil {
		set["surnames"] = *patch.Surnames
	}
	if patch.TeachingHours != nil {
		set["teaching_hours"] = *patch.TeachingHours
	}
	if len(set) == 0 {
		return r.FindByID(ctx, id)
	}

	var t domain.Teacher
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&t)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			return nil, domain.ErrTeacherNotFound
		case mongo.IsDuplicateKeyError(err):
			return nil, domain.ErrEmployeeCodeTaken
		}
		return nil, fmt.Errorf("update teacher: %w", err)
	}
	return &t, nil
}

func (r *TeacherRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete teacher: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrTeacherNotFound
	}
	return nil
}

// EnsureIndexes creates the unique employee code index.
func (r *TeacherRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "employee_code", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
