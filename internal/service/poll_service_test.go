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

func TestPollCreateDropsBlankOptions(t *testing.T) {
	api := &fakeAPI{}
	svc := NewPollService(api, nil, nil)

	_, err := svc.Create(context.Background(), models.CreatePollRequest{Question: "Horaires BU ?", Options: []string{"Oui", "  "}})
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
	_, err = svc.Create(context.Background(), models.CreatePollRequest{Question: " ", Options: []string{"Oui", "Non"}})
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
	assert.Equal(t, 0, api.total())

	_, err = svc.Create(context.Background(), models.CreatePollRequest{Question: "Horaires BU ?", Options: []string{" Oui ", "", "Non"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Oui", "Non"}, api.lastPoll.Options)
}

func TestPollVote(t *testing.T) {
	api := &fakeAPI{}
	svc := NewPollService(api, nil, nil)

	_, err := svc.Vote(context.Background(), 0)
	assert.True(t, errors.Is(err, appErrors.ErrValidation))

	poll, err := svc.Vote(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 1, poll.TotalVotes())
	assert.Equal(t, 1, api.called("Vote"))
}
