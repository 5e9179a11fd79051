package memory_test

import (
	"testing"

	"github.com/aretw0/contentpub/pkg/adapters/memory"
	"github.com/aretw0/contentpub/pkg/domain"
	contract "github.com/aretw0/contentpub/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Contract(t *testing.T) {
	flows := map[string]domain.Flow{
		"bridge-of-death": {Name: "bridge-of-death", StartPageContentID: "start-id", FlowContentID: "flow-id"},
		"marriage-abroad": {Name: "marriage-abroad", Nodes: []domain.FlowNode{{Slug: "country"}}},
	}

	loader, err := memory.NewLoader(flows["marriage-abroad"], flows["bridge-of-death"])
	require.NoError(t, err)

	contract.FlowLoaderContractTest(t, loader, flows)
}

func TestLoader_RejectsInvalidFlows(t *testing.T) {
	_, err := memory.NewLoader(domain.Flow{})
	assert.Error(t, err)

	_, err = memory.NewLoader(domain.Flow{Name: "a"}, domain.Flow{Name: "a"})
	assert.Error(t, err)
}
