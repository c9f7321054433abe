package skillrepo

import (
	"testing"

	"github.com/roamly/roamly-api/internal/adapters/contracttest"
	"github.com/roamly/roamly-api/internal/adapters/postgres/testutil"
	skillrepoport "github.com/roamly/roamly-api/internal/ports/out/skillrepo"
)

func TestContract_PostgresSkillRepo(t *testing.T) {
	pool := testutil.OpenMigratedPool(t)

	contracttest.RunSkillRepo(t, func(t *testing.T) (skillrepoport.Repository, contracttest.CleanupFunc) {
		t.Helper()
		return NewRepo(pool), nil
	})
}
