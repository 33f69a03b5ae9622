package testcases

// All contains all test cases, grouped by category.
// The category name is used as a prefix in output file names.
var All = map[string][]TestCase{
	"basic":    basicCases,
	"boundary": boundaryCases,
	"inverted": invertedCases,
	"random":   randomCases,
}
