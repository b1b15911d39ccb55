package hunter

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"ownerhunter/internal/loader"
	"ownerhunter/internal/types"
)

type staticSource struct {
	entities []types.EntityRecord
	err      error
}

func (s staticSource) Entities(context.Context) ([]types.EntityRecord, error) {
	return s.entities, s.err
}

func TestRunClassifiesAndRanks(t *testing.T) {
	src := staticSource{entities: []types.EntityRecord{
		{LicenseID: "1", Name: "Active One", Status: "Active", Street: "1 Elm St", City: "Edina"},
		{LicenseID: "2", Name: "Closed Shell", Status: "Closed", Street: "", City: "Eagan"},
		{LicenseID: "3", Name: "Denied Two", Status: "Denied", StatusDate: "10/09/2025", Street: "Dakota County"},
	}}

	res, err := New(src, DefaultLinkGenerator(), zaptest.NewLogger(t)).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, res.Entities)
	assert.Equal(t, []string{"3", "1"}, ids(res.Targets))
	require.Len(t, res.GhostOffices, 2)
	assert.Equal(t, types.LicenseID("2"), res.GhostOffices[0].LicenseID, "ghost offices keep input order")
	assert.Equal(t, "Dakota County, ", res.GhostOffices[1].Address)
}

func TestRunEmpty(t *testing.T) {
	res, err := New(staticSource{entities: []types.EntityRecord{}}, DefaultLinkGenerator(), nil).Run(context.Background())
	require.NoError(t, err)
	assert.Zero(t, res.Entities)
	assert.Empty(t, res.Targets)
	assert.Empty(t, res.GhostOffices)
}

func TestRunPropagatesLoadError(t *testing.T) {
	wrapped := errors.Join(loader.ErrInputMalformed, errors.New("unexpected EOF"))
	_, err := New(staticSource{err: wrapped}, DefaultLinkGenerator(), nil).Run(context.Background())
	assert.ErrorIs(t, err, loader.ErrInputMalformed)
}
