// Package mocks provides centralized mock implementations for testing.
//
// Each mock has a function field per interface method. When a field is nil
// the mock falls back to an in-memory implementation backed by ForumData,
// so tests only override the calls they care about.
//
// Usage:
//
//	import "github.com/phrazzld/forum-api/internal/mocks"
//
//	func TestSomething(t *testing.T) {
//	    questions := mocks.NewMockQuestionStore(nil)
//	    questions.ExistsFn = func(ctx context.Context, id int64) (bool, error) {
//	        return false, errors.New("connection refused")
//	    }
//
//	    // Use the mock in your test...
//	}
//
// A question store and an answer store created from the same ForumData share
// state, which lets tests observe the cascade from question deletion.
package mocks
