package searcher

// Search parameters

const DefaultDepth = 5

// Score of a forced win for the root player; the negation is a forced loss.
const WinScore = 20000

// Sentinel every real score improves on
const Infinity = 30000

// Tuned evaluator weights ("best") and the swapped configuration they were measured against ("test")
const (
	BestThreeChainScore = 20
	BestTwoChainScore   = 10
	TestThreeChainScore = 10
	TestTwoChainScore   = 20
)
