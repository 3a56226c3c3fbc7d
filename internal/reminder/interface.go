package reminder

import "context"

// UseCase exposes the five reminder operations. Complete and Delete report
// an unknown id through ErrReminderNotFound; completing an already
// completed reminder is a success with AlreadyCompleted set.
type UseCase interface {
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Complete(ctx context.Context, id int64) (CompleteOutput, error)
	Delete(ctx context.Context, id int64) (DeleteOutput, error)
	Upcoming(ctx context.Context) (UpcomingOutput, error)
}
