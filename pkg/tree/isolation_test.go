package tree_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/barnowlsnest/go-ordset/pkg/compare"
	"github.com/barnowlsnest/go-ordset/pkg/tree"
)

// TestConcurrentOwnersDoNotShareState exercises §5's "exclusively owned by
// one caller at a time" contract: many goroutines each build and mutate
// their own BST/RBT, never touching another's. Nothing here shares a
// container across goroutines — that remains unsupported — it only checks
// that running many independently-owned containers concurrently is safe.
func TestConcurrentOwnersDoNotShareState(t *testing.T) {
	const workers = 32
	const perWorker = 200

	g, _ := errgroup.WithContext(context.Background())
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			bst, err := tree.NewBST(compare.Ascend[int])
			if err != nil {
				return err
			}
			rbt, err := tree.NewRBT(compare.Ascend[int])
			if err != nil {
				return err
			}

			for i := 0; i < perWorker; i++ {
				v := w*perWorker + i
				bst.Insert(v)
				rbt.Insert(v)
			}

			if bst.Size() != perWorker {
				return fmt.Errorf("worker %d: got size %d, want %d", w, bst.Size(), perWorker)
			}
			if err := rbt.Validate(); err != nil {
				return err
			}

			min, _ := bst.Min()
			if min != w*perWorker {
				return fmt.Errorf("worker %d: got min %d, want %d", w, min, w*perWorker)
			}
			return nil
		})
	}

	require.NoError(t, g.Wait())
}
