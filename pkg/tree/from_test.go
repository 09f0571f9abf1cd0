package tree_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/barnowlsnest/go-ordset/pkg/compare"
	"github.com/barnowlsnest/go-ordset/pkg/tree"
)

type FromSuite struct {
	suite.Suite
}

func TestFromSuite(t *testing.T) {
	suite.Run(t, new(FromSuite))
}

func (s *FromSuite) TestFromValuesBST() {
	bst, err := tree.FromValues(compare.Ascend[int], []int{5, 3, 8, 1})
	s.Require().NoError(err)
	s.Equal(4, bst.Size())
	s.Equal([]int{1, 3, 5, 8}, collect(bst.Lnr()))
}

func (s *FromSuite) TestFromValuesMappedBST() {
	words := []string{"aaa", "b", "cc"}
	bst, err := tree.FromValuesMapped(compare.Ascend[int], words, func(w string, _ int) int {
		return len(w)
	})
	s.Require().NoError(err)
	s.Equal([]int{1, 2, 3}, collect(bst.Lnr()))
}

func (s *FromSuite) TestCloneBSTDeepCopiesAndIsIndependent() {
	source, err := tree.FromValues(compare.Ascend[int], []int{5, 3, 8, 1})
	s.Require().NoError(err)

	clone := tree.CloneBST(source)
	s.Equal(source.Size(), clone.Size())
	s.Equal(collect(source.Lnr()), collect(clone.Lnr()))

	clone.Insert(100)
	s.NotEqual(source.Size(), clone.Size())
	_, ok := source.Find(100)
	s.False(ok)
}

func (s *FromSuite) TestRebuildBSTWithNewComparator() {
	source, err := tree.FromValues(compare.Ascend[int], []int{5, 3, 8, 1})
	s.Require().NoError(err)

	rebuilt, err := tree.RebuildBST(source, compare.Descend[int])
	s.Require().NoError(err)

	s.Equal([]int{8, 5, 3, 1}, collect(rebuilt.Lnr()))
}

func (s *FromSuite) TestFromRBTValues() {
	rbt, err := tree.FromRBTValues(compare.Ascend[int], []int{3, 10, 13, 4, 6, 7, 1, 14})
	s.Require().NoError(err)
	s.NoError(rbt.Validate())
	s.Equal(8, rbt.Size())
}

func (s *FromSuite) TestCloneRBTIsIndependent() {
	source, err := tree.FromRBTValues(compare.Ascend[int], []int{3, 10, 13, 4})
	s.Require().NoError(err)

	clone := tree.CloneRBT(source)
	s.Equal(collect(source.Lnr()), collect(clone.Lnr()))

	clone.Remove(3)
	s.NoError(clone.Validate())
	_, ok := source.Find(3)
	s.True(ok)
}

func (s *FromSuite) TestRebuildRBTWithNewComparator() {
	source, err := tree.FromRBTValues(compare.Ascend[int], []int{3, 10, 13, 4})
	s.Require().NoError(err)

	rebuilt, err := tree.RebuildRBT(source, compare.Descend[int])
	s.Require().NoError(err)
	s.NoError(rebuilt.Validate())
	s.Equal([]int{13, 10, 4, 3}, collect(rebuilt.Lnr()))
}
