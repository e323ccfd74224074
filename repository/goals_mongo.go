package repository

import (
	"context"
	"errors"

	"main/config"
	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoGoalsRepo struct {
	MongoCollection *mongo.Collection
	Counters        *mongo.Collection
}

// Retrieves MongoDB collections for daily goals
func GetMongoGoalsRepo(client *mongo.Client, cfg config.DatabaseConfig) *MongoGoalsRepo {
	db := client.Database(cfg.DatabaseName)
	return &MongoGoalsRepo{
		MongoCollection: db.Collection(cfg.GoalsColl),
		Counters:        db.Collection("counters"),
	}
}

func (r *MongoGoalsRepo) GetUserGoal(ctx context.Context, userID int) (*model.DailyGoal, error) {
	timer := utils.TrackDBOperation("find", "goals")
	defer timer.ObserveDuration()

	var goal model.DailyGoal
	err := r.MongoCollection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&goal)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrGoalNotFound
	}
	if err != nil {
		utils.TrackError("database", "goal_fetch_failed")
		return nil, err
	}
	return &goal, nil
}

func (r *MongoGoalsRepo) UpsertGoal(ctx context.Context, goal *model.DailyGoal) error {
	timer := utils.TrackDBOperation("upsert", "goals")
	defer timer.ObserveDuration()

	if goal.UserID == 0 {
		utils.TrackError("database", "missing_user_id")
		return errors.New("user ID is required")
	}

	existing, err := r.GetUserGoal(ctx, goal.UserID)
	if err != nil && !errors.Is(err, ErrGoalNotFound) {
		return err
	}

	if existing != nil {
		goal.GoalID = existing.GoalID
		if goal.EnableReminders == "" {
			goal.EnableReminders = existing.EnableReminders
		}
		update := bson.M{
			"$set": bson.M{
				"total_goal":       goal.TotalGoal,
				"category_limits":  goal.CategoryLimits,
				"break_reminders":  goal.BreakReminders,
				"enable_reminders": goal.EnableReminders,
			},
		}
		if _, err := r.MongoCollection.UpdateOne(ctx, bson.M{"_id": existing.GoalID}, update); err != nil {
			utils.TrackError("database", "goal_update_failed")
			return err
		}
		return nil
	}

	id, err := nextSequence(ctx, r.Counters, "goal_id")
	if err != nil {
		utils.TrackError("database", "goal_id_allocation_failed")
		return err
	}
	goal.GoalID = id
	if goal.EnableReminders == "" {
		goal.EnableReminders = "true"
	}

	if _, err := r.MongoCollection.InsertOne(ctx, goal); err != nil {
		utils.TrackError("database", "goal_creation_failed")
		return err
	}
	return nil
}
