package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/unigov-client/internal/models"
	appErrors "github.com/noah-isme/unigov-client/pkg/errors"
)

func TestDecisionWritesValidate(t *testing.T) {
	api := &fakeAPI{}
	svc := NewDecisionService(api, nil, nil)

	_, err := svc.Create(context.Background(), models.DecisionRequest{Title: "Budget"})
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
	_, err = svc.Update(context.Background(), 3, models.DecisionRequest{Content: "x"})
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
	assert.Equal(t, 0, api.total())

	created, err := svc.Create(context.Background(), models.DecisionRequest{Title: " Budget ", Content: "Voté", Status: "adopted"})
	require.NoError(t, err)
	assert.Equal(t, "Budget", created.Title)
	assert.Equal(t, "ADOPTED", created.Status)

	updated, err := svc.Update(context.Background(), 3, models.DecisionRequest{Title: "Budget", Content: "Révisé"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), updated.ID)

	require.NoError(t, svc.Delete(context.Background(), 3))
	assert.Equal(t, 1, api.called("DeleteDecision"))
}
