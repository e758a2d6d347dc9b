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

const collectionWorkflows = "workflows"

type WorkflowRepository struct {
	col *mongo.Collection
}

func NewWorkflowRepository(db *mongo.Database) *WorkflowRepository {
	return &WorkflowRepository{col: db.Collection(collectionWorkflows)}
}

func (r *WorkflowRepository) Create(ctx context.Context, w *domain.Workflow) (*domain.Workflow, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if w.ID == "" {
		w.ID = primitive.NewObjectID().Hex()
	}
	assignChildIDs(w)

	if _, err := r.col.InsertOne(ctx, w); err != nil {
		return nil, fmt.Errorf("insert workflow: %w", err)
	}
	return w, nil
}

// FindByID is deliberately unfiltered by viewer: the service layer decides
// between forbidden and not-found.
func (r *WorkflowRepository) FindByID(ctx context.Context, id string) (*domain.Workflow, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var w domain.Workflow
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&w); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrWorkflowNotFound
		}
		return nil, fmt.Errorf("find workflow: %w", err)
	}
	return &w, nil
}

// List applies the visibility scope and all filters inside the query. The
// scope and the search term each produce an $or, so they are combined under
// a single $and to keep both effective.
func (r *WorkflowRepository) List(ctx context.Context, filter ports.WorkflowListFilter) ([]domain.Workflow, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := buildScopedQuery(filter.Scope, filter.Search)
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Priority != "" {
		query["priority"] = filter.Priority
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count workflows: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list workflows: %w", err)
	}
	defer cur.Close(ctx)

	workflows := []domain.Workflow{}
	if err := cur.All(ctx, &workflows); err != nil {
		return nil, 0, fmt.Errorf("decode workflows: %w", err)
	}
	return workflows, total, nil
}

// Update replaces the whole document. Last write wins.
func (r *WorkflowRepository) Update(ctx context.Context, w *domain.Workflow) (*domain.Workflow, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	assignChildIDs(w)

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": w.ID}, w)
	if err != nil {
		return nil, fmt.Errorf("update workflow: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrWorkflowNotFound
	}
	return w, nil
}

func (r *WorkflowRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete workflow: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrWorkflowNotFound
	}
	return nil
}

// Stats computes the visibility-scoped summary: overall counts, per-status
// and per-priority breakdowns, and the five most recent workflows.
func (r *WorkflowRepository) Stats(ctx context.Context, scope domain.WorkflowScope, now time.Time) (*ports.WorkflowStats, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	scoped := func() bson.M { return buildScopedQuery(scope, "") }

	stats := &ports.WorkflowStats{
		ByStatus:   map[string]int64{},
		ByPriority: map[string]int64{},
	}

	var err error
	if stats.Total, err = r.col.CountDocuments(ctx, scoped()); err != nil {
		return nil, fmt.Errorf("workflow stats: %w", err)
	}

	q := scoped()
	q["status"] = domain.WorkflowActive
	if stats.Active, err = r.col.CountDocuments(ctx, q); err != nil {
		return nil, fmt.Errorf("workflow stats: %w", err)
	}

	q = scoped()
	q["status"] = domain.WorkflowCompleted
	if stats.Completed, err = r.col.CountDocuments(ctx, q); err != nil {
		return nil, fmt.Errorf("workflow stats: %w", err)
	}

	q = scoped()
	q["due_date"] = bson.M{"$lt": now}
	q["status"] = bson.M{"$nin": bson.A{domain.WorkflowCompleted, domain.WorkflowCancelled}}
	if stats.Overdue, err = r.col.CountDocuments(ctx, q); err != nil {
		return nil, fmt.Errorf("workflow stats: %w", err)
	}

	if stats.ByStatus, err = r.groupCount(ctx, scoped(), "$status"); err != nil {
		return nil, err
	}
	if stats.ByPriority, err = r.groupCount(ctx, scoped(), "$priority"); err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(5).
		SetProjection(bson.M{
			"title":      1,
			"status":     1,
			"priority":   1,
			"due_date":   1,
			"created_by": 1,
			"created_at": 1,
		})
	cur, err := r.col.Find(ctx, scoped(), opts)
	if err != nil {
		return nil, fmt.Errorf("workflow stats recent: %w", err)
	}
	defer cur.Close(ctx)

	stats.Recent = []domain.Workflow{}
	if err := cur.All(ctx, &stats.Recent); err != nil {
		return nil, fmt.Errorf("decode recent workflows: %w", err)
	}
	return stats, nil
}

func (r *WorkflowRepository) groupCount(ctx context.Context, match bson.M, field string) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{"_id": field, "count": bson.M{"$sum": 1}}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("workflow stats group %s: %w", field, err)
	}
	defer cur.Close(ctx)

	var rows []struct {
		ID    string `bson:"_id"`
		Count int64  `bson:"count"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode stats group: %w", err)
	}

	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.ID] = row.Count
	}
	return out, nil
}

// buildScopedQuery translates a WorkflowScope (and optional search term)
// into a mongo filter.
func buildScopedQuery(scope domain.WorkflowScope, search string) bson.M {
	clauses := bson.A{}
	if !scope.All {
		clauses = append(clauses, bson.M{"$or": bson.A{
			bson.M{"created_by": scope.ViewerID},
			bson.M{"assigned_to": scope.ViewerID},
			bson.M{"is_public": true},
		}})
	}
	if search != "" {
		regex := bson.M{"$regex": search, "$options": "i"}
		clauses = append(clauses, bson.M{"$or": bson.A{
			bson.M{"title": regex},
			bson.M{"description": regex},
		}})
	}

	switch len(clauses) {
	case 0:
		return bson.M{}
	case 1:
		q, _ := clauses[0].(bson.M)
		return q
	default:
		return bson.M{"$and": clauses}
	}
}

// assignChildIDs gives ids to steps and comments that do not have one yet.
// Children are only ever addressed through the parent workflow.
func assignChildIDs(w *domain.Workflow) {
	for i := range w.Steps {
		if w.Steps[i].ID == "" {
			w.Steps[i].ID = primitive.NewObjectID().Hex()
		}
	}
	for i := range w.Comments {
		if w.Comments[i].ID == "" {
			w.Comments[i].ID = primitive.NewObjectID().Hex()
		}
	}
}

// EnsureIndexes creates the indexes from the workflow access patterns.
func (r *WorkflowRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "priority", Value: 1}, {Key: "due_date", Value: 1}}},
		{Keys: bson.D{{Key: "created_by", Value: 1}}},
		{Keys: bson.D{{Key: "assigned_to", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
