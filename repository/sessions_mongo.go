package repository

import (
	"context"
	"errors"
	"time"

	"main/config"
	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoSessionsRepo struct {
	MongoCollection *mongo.Collection
	Counters        *mongo.Collection
}

// Retrieves MongoDB collections for screen time sessions
func GetMongoSessionsRepo(client *mongo.Client, cfg config.DatabaseConfig) *MongoSessionsRepo {
	db := client.Database(cfg.DatabaseName)
	return &MongoSessionsRepo{
		MongoCollection: db.Collection(cfg.SessionsColl),
		Counters:        db.Collection("counters"),
	}
}

func (r *MongoSessionsRepo) CreateSession(ctx context.Context, session *model.ScreenTimeSession) error {
	timer := utils.TrackDBOperation("insert", "sessions")
	defer timer.ObserveDuration()

	if session.UserID == 0 {
		utils.TrackError("database", "missing_user_id")
		return errors.New("user ID is required")
	}

	id, err := nextSequence(ctx, r.Counters, "session_id")
	if err != nil {
		utils.TrackError("database", "session_id_allocation_failed")
		return err
	}
	session.SessionID = id
	session.CreatedAt = time.Now()

	if _, err := r.MongoCollection.InsertOne(ctx, session); err != nil {
		utils.TrackError("database", "session_creation_failed")
		return err
	}

	utils.TrackSessionOperation("create")
	return nil
}

func (r *MongoSessionsRepo) GetUserSessions(ctx context.Context, userID int) ([]*model.ScreenTimeSession, error) {
	timer := utils.TrackDBOperation("find", "sessions")
	defer timer.ObserveDuration()

	var sessions []*model.ScreenTimeSession
	cursor, err := r.MongoCollection.Find(ctx,
		bson.M{"user_id": userID},
		options.Find().SetSort(bson.M{"_id": 1}))
	if err != nil {
		utils.TrackError("database", "session_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &sessions); err != nil {
		utils.TrackError("database", "session_decode_failed")
		return nil, err
	}
	if sessions == nil {
		sessions = []*model.ScreenTimeSession{}
	}
	return sessions, nil
}

func (r *MongoSessionsRepo) GetUserSessionsByDate(ctx context.Context, userID int, date time.Time) ([]*model.ScreenTimeSession, error) {
	timer := utils.TrackDBOperation("find", "sessions")
	defer timer.ObserveDuration()

	startOfDay := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	endOfDay := startOfDay.AddDate(0, 0, 1)

	var sessions []*model.ScreenTimeSession
	cursor, err := r.MongoCollection.Find(ctx,
		bson.M{
			"user_id": userID,
			"created_at": bson.M{
				"$gte": startOfDay,
				"$lt":  endOfDay,
			},
		},
		options.Find().SetSort(bson.M{"_id": 1}))
	if err != nil {
		utils.TrackError("database", "session_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &sessions); err != nil {
		utils.TrackError("database", "session_decode_failed")
		return nil, err
	}
	if sessions == nil {
		sessions = []*model.ScreenTimeSession{}
	}
	return sessions, nil
}

func (r *MongoSessionsRepo) DeleteSession(ctx context.Context, sessionID int) error {
	timer := utils.TrackDBOperation("delete", "sessions")
	defer timer.ObserveDuration()

	// DeletedCount of zero is fine: deleting an unknown id is a no-op.
	if _, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": sessionID}); err != nil {
		utils.TrackError("database", "session_delete_failed")
		return err
	}

	utils.TrackSessionOperation("delete")
	return nil
}
