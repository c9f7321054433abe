package skilllinkrepo_test

import (
	"testing"

	"github.com/roamly/roamly-api/internal/adapters/contracttest"
	memskilllinkrepo "github.com/roamly/roamly-api/internal/adapters/memory/skilllinkrepo"
	skilllinkrepoport "github.com/roamly/roamly-api/internal/ports/out/skilllinkrepo"
)

func TestMemorySkillLinkRepoContract(t *testing.T) {
	t.Parallel()
	contracttest.RunSkillLinkRepo(t, func(t *testing.T) (skilllinkrepoport.Repository, contracttest.CleanupFunc) {
		return memskilllinkrepo.NewRepo(), nil
	})
}
