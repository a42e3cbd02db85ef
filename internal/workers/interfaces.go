// Package workers provides the client's background execution helpers.
package workers

import "context"

// Queue runs tasks so that tasks sharing a key never overlap and start in
// submission order. Tasks with different keys run concurrently.
//
//	err := q.Do(ctx, noteID, func(ctx context.Context) error {
//	    return adapter.DeleteNote(ctx, noteID)
//	})
type Queue interface {
	Do(ctx context.Context, key string, task func(ctx context.Context) error) error
}
