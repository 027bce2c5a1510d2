package services

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParticipantService(t *testing.T) {
	store := newMemStore()
	svc := NewParticipantService(participantRepo{store})
	ctx := context.Background()
	faker := gofakeit.New(7)

	name := faker.Name()
	p, err := svc.CreateParticipant(ctx, CreateParticipantInput{TournamentID: 5, Name: "  " + name + " "})
	require.NoError(t, err)
	assert.Equal(t, name, *p.Name)

	_, err = svc.CreateParticipant(ctx, CreateParticipantInput{TournamentID: 6, Name: faker.Name()})
	require.NoError(t, err)

	got, err := svc.GetParticipant(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)

	inFive, err := svc.ListParticipants(ctx, ptr(5))
	require.NoError(t, err)
	assert.Len(t, inFive, 1)

	all, err := svc.ListParticipants(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, svc.DeleteParticipant(ctx, p.ID))
	assert.ErrorIs(t, svc.DeleteParticipant(ctx, p.ID), ErrParticipantNotFound)
	_, err = svc.GetParticipant(ctx, p.ID)
	assert.ErrorIs(t, err, ErrParticipantNotFound)
}

func TestCreateParticipant_Validation(t *testing.T) {
	svc := NewParticipantService(participantRepo{newMemStore()})

	_, err := svc.CreateParticipant(context.Background(), CreateParticipantInput{TournamentID: 1, Name: " "})
	assert.ErrorIs(t, err, ErrParticipantName)

	_, err = svc.CreateParticipant(context.Background(), CreateParticipantInput{Name: "Ann"})
	assert.ErrorIs(t, err, ErrValidationFailed)
}
