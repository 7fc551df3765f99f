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

const collectionStudents = "students"

type StudentRepository struct {
	col *mongo.Collection
	ids sequence
}

func NewStudentRepository(db *mongo.Database) *StudentRepository {
	return &StudentRepository{
		col: db.Collection(collectionStudents),
		ids: newSequence(db, collectionStudents),
	}
}

// List returns every student ordered by id.
func (r *StudentRepository) List(ctx context.Context) ([]*domain.Student, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find students: %w", err)
	}
	out := []*domain.Student{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode students: %w", err)
	}
	return out, nil
}

func (r *StudentRepository) FindByID(ctx context.Context, id int64) (*domain.Student, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var s domain.Student
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrStudentNotFound
		}
		return nil, err
	}
	return &s, nil
}

// Create inserts the student under a fresh id. The unique index on
// enrollment_code rejects collisions atomically.
func (r *StudentRepository) Create(ctx context.Context, s *domain.Student) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.ids.next(ctx)
	if err != nil {
		return err
	}
	s.ID = id

	if _, err := r.col.InsertOne(ctx, s); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrEnrollmentCodeTaken
		}
		return fmt.Errorf("insert student: %w", err)
	}
	return nil
}

func (r *StudentRepository) Update(ctx context.Context, id int64, patch domain.StudentPatch) (*domain.Student, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{}
	if patch.GivenNames != nil {
		set["given_names"] = *patch.GivenNames
	}
	if patch.Surnames != nil {
		set["surnames"] = *patch.Surnames
	}
	if patch.EnrollmentCode != nil {
		set["enrollment_code"] = *patch.EnrollmentCode
	}
	if patch.GradeAverage != nil {
		set["grade_average"] = *patch.GradeAverage
	}
	if patch.ProfilePictureLocator != nil {
		set["profile_picture_locator"] = *patch.ProfilePictureLocator
	}
	if len(set) == 0 {
		return r.FindByID(ctx, id)
	}

	var s domain.Student
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&s)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			return nil, domain.ErrStudentNotFound
		case mongo.IsDuplicateKeyError(err):
			return nil, domain.ErrEnrollmentCodeTaken
		}
		return nil, fmt.Errorf("update student: %w", err)
	}
	return &s, nil
}

func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete student: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrStudentNotFound
	}
	return nil
}

// EnsureIndexes creates the unique enrollment code index.
func (r *StudentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "enrollment_code", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
