package mongodb

import (
	"context"
	"errors"

	"go-candidate-backend/internal/domain"
	"go-candidate-backend/pkg/apperror"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const candidatesCollection = "candidates"

type candidateRepo struct {
	coll *mongo.Collection
}

func NewCandidateRepository(db *mongo.Database) domain.CandidateRepository {
	return &candidateRepo{coll: db.Collection(candidatesCollection)}
}

func byUUID(id string) bson.D {
	return bson.D{{Key: "uuid", Value: id}}
}

func (r *candidateRepo) findOne(ctx context.Context, filter bson.D) (*domain.Candidate, error) {
	var c domain.Candidate
	err := r.coll.FindOne(ctx, filter).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, apperror.Internal(err)
	}
	return &c, nil
}

func (r *candidateRepo) FindByID(ctx context.Context, id string) (*domain.Candidate, error) {
	return r.findOne(ctx, byUUID(id))
}

func (r *candidateRepo) FindByEmail(ctx context.Context, email string) (*domain.Candidate, error) {
	return r.findOne(ctx, bson.D{{Key: "email", Value: email}})
}

func (r *candidateRepo) Create(ctx context.Context, candidate *domain.Candidate) error {
	if candidate.Skills == nil {
		candidate.Skills = []string{}
	}
	if _, err := r.coll.InsertOne(ctx, candidate); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperror.Conflict(domain.MsgEmailAlreadyExists)
		}
		return apperror.Internal(err)
	}
	return nil
}

func (r *candidateRepo) Update(ctx context.Context, id string, update domain.CandidateUpdate) (*domain.Candidate, error) {
	set := buildCandidateUpdate(update)
	if len(set) == 0 {
		return r.FindByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var c domain.Candidate
	err := r.coll.FindOneAndUpdate(ctx, byUUID(id), bson.D{{Key: "$set", Value: set}}, opts).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, apperror.Internal(err)
	}
	return &c, nil
}

func (r *candidateRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, byUUID(id))
	if err != nil {
		return false, apperror.Internal(err)
	}
	return res.DeletedCount > 0, nil
}

func (r *candidateRepo) Search(ctx context.Context, filter domain.CandidateFilter) ([]domain.Candidate, error) {
	cursor, err := r.coll.Find(ctx, buildCandidateFilter(filter))
	if err != nil {
		return nil, apperror.Internal(err)
	}

	candidates := make([]domain.Candidate, 0)
	if err := cursor.All(ctx, &candidates); err != nil {
		return nil, apperror.Internal(err)
	}
	return candidates, nil
}
