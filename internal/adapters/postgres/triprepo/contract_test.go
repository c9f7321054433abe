package triprepo

import (
	"testing"

	"github.com/roamly/roamly-api/internal/adapters/contracttest"
	"github.com/roamly/roamly-api/internal/adapters/postgres/testutil"
	triprepoport "github.com/roamly/roamly-api/internal/ports/out/triprepo"
)

func TestContract_PostgresTripRepo(t *testing.T) {
	pool := testutil.OpenMigratedPool(t)
	testutil.SeedUser(t, pool, 1, "owner")

	contracttest.RunTripRepo(t, func(t *testing.T) (triprepoport.Repository, contracttest.CleanupFunc) {
		t.Helper()
		return NewRepo(pool), nil
	})
}
