package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/worknest/workforce-api/internal/core/domain"
	"github.com/worknest/workforce-api/internal/core/ports"
)

const collectionTasks = "tasks"

type TaskRepository struct {
	col *mongo.Collection
}

func NewTaskRepository(db *mongo.Database) *TaskRepository {
	return &TaskRepository{col: db.Collection(collectionTasks)}
}

func (r *TaskRepository) Create(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if t.ID == "" {
		t.ID = primitive.NewObjectID().Hex()
	}

	if _, err := r.col.InsertOne(ctx, t); err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}
	return t, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id, employeeID string) (*domain.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var t domain.Task
	err := r.col.FindOne(ctx, bson.M{"_id": id, "employee_id": employeeID}).Decode(&t)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("find task: %w", err)
	}
	return &t, nil
}

func (r *TaskRepository) List(ctx context.Context, filter ports.TaskFilter) ([]domain.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{"employee_id": filter.EmployeeID}
	if filter.ProjectID != "" {
		query["project_id"] = filter.ProjectID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.DateFrom != nil && filter.DateTo != nil {
		query["date"] = bson.M{"$gte": *filter.DateFrom, "$lt": *filter.DateTo}
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer cur.Close(ctx)

	tasks := []domain.Task{}
	if err := cur.All(ctx, &tasks); err != nil {
		return nil, fmt.Errorf("decode tasks: %w", err)
	}
	return tasks, nil
}

func (r *TaskRepository) Update(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": t.ID, "employee_id": t.EmployeeID}, t)
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrTaskNotFound
	}
	return t, nil
}

func (r *TaskRepository) Delete(ctx context.Context, id, employeeID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id, "employee_id": employeeID})
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) CountByProject(ctx context.Context, projectID, employeeID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{"project_id": projectID, "employee_id": employeeID})
	if err != nil {
		return 0, fmt.Errorf("count tasks by project: %w", err)
	}
	return n, nil
}

// Stats runs one count per bucket, all scoped to the owner.
func (r *TaskRepository) Stats(ctx context.Context, employeeID string, dayStart, dayEnd time.Time) (*ports.TaskStats, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	owner := bson.M{"employee_id": employeeID}
	counts := []struct {
		dst    *int64
		filter bson.M
	}{
		{filter: owner},
		{filter: bson.M{"employee_id": employeeID, "status": domain.TaskPending}},
		{filter: bson.M{"employee_id": employeeID, "status": domain.TaskWorking}},
		{filter: bson.M{"employee_id": employeeID, "status": domain.TaskDone}},
		{filter: bson.M{"employee_id": employeeID, "date": bson.M{"$gte": dayStart, "$lt": dayEnd}}},
	}

	var stats ports.TaskStats
	counts[0].dst = &stats.Total
	counts[1].dst = &stats.Pending
	counts[2].dst = &stats.Working
	counts[3].dst = &stats.Done
	counts[4].dst = &stats.DueToday

	for _, c := range counts {
		n, err := r.col.CountDocuments(ctx, c.filter)
		if err != nil {
			return nil, fmt.Errorf("task stats: %w", err)
		}
		*c.dst = n
	}
	return &stats, nil
}

// EnsureIndexes creates the indexes backing owner-scoped queries and the
// date filter.
func (r *TaskRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "employee_id", Value: 1}, {Key: "date", Value: -1}}},
		{Keys: bson.D{{Key: "employee_id", Value: 1}, {Key: "project_id", Value: 1}}},
		{Keys: bson.D{{Key: "employee_id", Value: 1}, {Key: "status", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
