package tek

import (
	"os"
	"path/filepath"
	"testing"

	. "gopkg.in/check.v1"
)

// Hook up gocheck into the "go test" runner, the same way the teacher's
// pongo2_issues_test.go does.
func TestFixtures(t *testing.T) { TestingT(t) }

type FixtureSuite struct{}

var _ = Suite(&FixtureSuite{})

// cleanFixtures lists every program under testdata/clean, each expected to
// compile through the full pipeline with zero diagnostics.
func cleanFixtures(c *C) []string {
	entries, err := os.ReadDir("testdata/clean")
	c.Assert(err, IsNil)

	var paths []string
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".tek" {
			paths = append(paths, filepath.Join("testdata/clean", e.Name()))
		}
	}
	c.Assert(paths, Not(HasLen), 0)
	return paths
}

func (s *FixtureSuite) TestCleanFixturesCompileWithoutDiagnostics(c *C) {
	for _, path := range cleanFixtures(c) {
		data, err := os.ReadFile(path)
		c.Assert(err, IsNil)

		result := CompileFrontEnd(string(data), DefaultRuleSet())
		c.Check(result.Diagnostics, HasLen, 0, Commentf("fixture %s produced diagnostics: %v", path, result.Diagnostics))
		c.Check(result.AST, NotNil, Commentf("fixture %s", path))
	}
}

func (s *FixtureSuite) TestCleanFixturesSurviveDump(c *C) {
	for _, path := range cleanFixtures(c) {
		data, err := os.ReadFile(path)
		c.Assert(err, IsNil)

		result := CompileFrontEnd(string(data), DefaultRuleSet())
		dump := Dump(result.AST)
		c.Check(dump, Not(Equals), "", Commentf("fixture %s", path))
	}
}
